package admin

import (
	"time"

	"samvidhansetu/models"
)

// GetLegalSections returns all legal documents.
func (a *DefaultAdminService) GetLegalSections() []models.LegalSection {
	now := time.Now().UTC().Format(time.RFC3339)

	return []models.LegalSection{
		{
			ID:           "privacy",
			Title:        "Privacy Policy",
			HindiTitle:   "गोपनीयता नीति",
			Summary:      "How Samvidhan Setu collects and uses personal data.",
			Content:      generatePrivacyPolicy(),
			HindiContent: generatePrivacyPolicyHindi(),
			Version:      "v1.0",
			Updated:      now,
		},
		{
			ID:           "disclaimer",
			Title:        "Legal Disclaimer",
			HindiTitle:   "कानूनी अस्वीकरण",
			Summary:      "Samvidhan Setu provides information, not legal advice.",
			Content:      generateDisclaimer(),
			HindiContent: generateDisclaimerHindi(),
			Version:      "v1.0",
			Updated:      now,
		},
	}
}

func generatePrivacyPolicy() string {
	return `Samvidhan Setu ("us", "we", or "our") operates the Samvidhan Setu service.

1. Information Collection: While using our service, we may ask you to provide certain personally identifiable information such as a username and email address, used only to operate your account.
2. Problem Descriptions: Text you submit to the problem solver or chatbot is forwarded to our AI provider to generate a response. Do not include information you are not comfortable sharing.
3. Storage: Account data and the law database are stored on our servers. Notifications are attached to your account and visible only to you.
4. No Sale of Data: We do not sell or rent personal data to third parties.
5. Contact: Questions about this policy can be sent through the contact page.`
}

func generatePrivacyPolicyHindi() string {
	return `संविधान सेतु ("हम" या "हमारा") संविधान सेतु सेवा का संचालन करता है।

1. सूचना संग्रह: हमारी सेवा का उपयोग करते समय, हम आपसे कुछ व्यक्तिगत पहचान योग्य जानकारी जैसे उपयोगकर्ता नाम और ईमेल पता मांग सकते हैं, जिसका उपयोग केवल आपके खाते के संचालन के लिए किया जाता है।
2. समस्या विवरण: समस्या समाधानकर्ता या चैटबॉट को भेजा गया पाठ उत्तर उत्पन्न करने के लिए हमारे AI प्रदाता को भेजा जाता है। ऐसी जानकारी शामिल न करें जिसे साझा करने में आप सहज नहीं हैं।
3. भंडारण: खाता डेटा और कानून डेटाबेस हमारे सर्वर पर संग्रहीत हैं। सूचनाएं आपके खाते से जुड़ी होती हैं और केवल आपको दिखाई देती हैं।
4. डेटा की बिक्री नहीं: हम व्यक्तिगत डेटा तीसरे पक्ष को नहीं बेचते या किराए पर नहीं देते।
5. संपर्क: इस नीति के बारे में प्रश्न संपर्क पृष्ठ के माध्यम से भेजे जा सकते हैं।`
}

func generateDisclaimer() string {
	return `Samvidhan Setu provides simplified explanations of Indian laws for general information only. Nothing on this service constitutes legal advice, and AI-generated responses may be incomplete or inaccurate. Always consult a qualified legal professional before acting on any information found here.`
}

func generateDisclaimerHindi() string {
	return `संविधान सेतु केवल सामान्य जानकारी के लिए भारतीय कानूनों की सरलीकृत व्याख्या प्रदान करता है। इस सेवा पर कुछ भी कानूनी सलाह नहीं है, और AI द्वारा उत्पन्न उत्तर अधूरे या गलत हो सकते हैं। यहां मिली किसी भी जानकारी पर कार्रवाई करने से पहले हमेशा एक योग्य कानूनी पेशेवर से परामर्श करें।`
}
