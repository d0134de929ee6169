// File: database/repository/law/seed.go
package lawRepo

import (
	"context"
	"fmt"
	"time"

	"samvidhansetu/models"
)

// EnsureSeed populates the laws collection with the built-in dataset when the
// collection is empty. A store that was wiped or never written degrades to the
// defaults instead of failing.
func (r *MongoLawRepo) EnsureSeed(ctx context.Context) error {
	n, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(seedLaws))
	for _, l := range SeedLaws() {
		docs = append(docs, l)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed laws: %w", err)
	}
	return nil
}

// SeedLaws returns a copy of the built-in default dataset.
func SeedLaws() []models.Law {
	out := make([]models.Law, len(seedLaws))
	copy(out, seedLaws)
	return out
}

func seedTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

var seedLaws = []models.Law{
	{
		ID:                    "law-1",
		Category:              "Constitutional Law",
		Title:                 "Right to Equality",
		ArticleOrSection:      "Article 14",
		HindiTitle:            "समानता का अधिकार",
		HindiArticleOrSection: "अनुच्छेद 14",
		Explanation:           "Article 14 states that the State shall not deny to any person equality before the law or the equal protection of the laws within the territory of India. This means everyone is equal in the eyes of the law.",
		HindiExplanation:      "अनुच्छेद 14 कहता है कि राज्य भारत के क्षेत्र के भीतर किसी भी व्यक्ति को कानून के समक्ष समानता या कानूनों के समान संरक्षण से वंचित नहीं करेगा। इसका मतलब है कि कानून की नजर में हर कोई समान है।",
		Keywords:              []string{"equality", "equal protection", "fundamental rights", "discrimination"},
		CreatedAt:             seedTime("2023-01-15T10:00:00Z"),
		UpdatedAt:             seedTime("2023-01-15T10:00:00Z"),
	},
	{
		ID:                    "law-2",
		Category:              "Criminal Law",
		Title:                 "Theft",
		ArticleOrSection:      "IPC Section 378",
		HindiTitle:            "चोरी",
		HindiArticleOrSection: "आईपीसी धारा 378",
		Explanation:           "Whoever intends to take dishonestly any movable property out of the possession of any person without that person’s consent, moves that property in order to such taking, is said to commit theft.",
		HindiExplanation:      "जो कोई भी बेईमानी से किसी व्यक्ति के कब्जे से उस व्यक्ति की सहमति के बिना कोई जंगम संपत्ति लेने का इरादा रखता है, ऐसी संपत्ति को इस तरह के लेने के लिए हटाता है, उसे चोरी करना कहा जाता है।",
		Keywords:              []string{"theft", "movable property", "dishonestly", "consent"},
		CreatedAt:             seedTime("2023-02-20T11:30:00Z"),
		UpdatedAt:             seedTime("2023-02-20T11:30:00Z"),
	},
	{
		ID:                    "law-3",
		Category:              "Consumer Protection",
		Title:                 "Consumer Rights",
		ArticleOrSection:      "Consumer Protection Act, 2019",
		HindiTitle:            "उपभोक्ता अधिकार",
		HindiArticleOrSection: "उपभोक्ता संरक्षण अधिनियम, 2019",
		Explanation:           "The Consumer Protection Act, 2019, grants various rights to consumers, including the right to safety, the right to be informed, the right to choose, the right to be heard, the right to seek redressal, and the right to consumer education.",
		HindiExplanation:      "उपभोक्ता संरक्षण अधिनियम, 2019, उपभोक्ताओं को विभिन्न अधिकार प्रदान करता है, जिसमें सुरक्षा का अधिकार, सूचित किए जाने का अधिकार, चुनने का अधिकार, सुने जाने का अधिकार, निवारण मांगने का अधिकार और उपभोक्ता शिक्षा का अधिकार शामिल है।",
		Keywords:              []string{"consumer", "rights", "protection", "goods", "services"},
		CreatedAt:             seedTime("2023-03-10T14:45:00Z"),
		UpdatedAt:             seedTime("2023-03-10T14:45:00Z"),
	},
	{
		ID:                    "law-4",
		Category:              "Family Law",
		Title:                 "Marriage under Hindu Law",
		ArticleOrSection:      "Hindu Marriage Act, 1955",
		HindiTitle:            "हिंदू कानून के तहत विवाह",
		HindiArticleOrSection: "हिंदू विवाह अधिनियम, 1955",
		Explanation:           "The Hindu Marriage Act, 1955, codifies the law relating to marriage among Hindus and provides conditions for a valid marriage, registration, and divorce.",
		HindiExplanation:      "हिंदू विवाह अधिनियम, 1955, हिंदुओं के बीच विवाह से संबंधित कानून को संहिताबद्ध करता है और एक वैध विवाह, पंजीकरण और तलाक के लिए शर्तें प्रदान करता है।",
		Keywords:              []string{"marriage", "divorce", "hindu", "family", "act"},
		CreatedAt:             seedTime("2023-04-01T09:00:00Z"),
		UpdatedAt:             seedTime("2023-04-01T09:00:00Z"),
	},
	{
		ID:                    "law-5",
		Category:              "Property Law",
		Title:                 "Transfer of Property",
		ArticleOrSection:      "Transfer of Property Act, 1882",
		HindiTitle:            "संपत्ति का हस्तांतरण",
		HindiArticleOrSection: "संपत्ति हस्तांतरण अधिनियम, 1882",
		Explanation:           "This Act regulates the transfer of property by act of parties and defines terms like sale, mortgage, lease, exchange, and gift.",
		HindiExplanation:      "यह अधिनियम पक्षों के कार्य द्वारा संपत्ति के हस्तांतरण को नियंत्रित करता है और बिक्री, गिरवी, पट्टा, विनिमय और उपहार जैसे शब्दों को परिभाषित करता है।",
		Keywords:              []string{"property", "transfer", "sale", "mortgage", "lease"},
		CreatedAt:             seedTime("2023-05-22T16:00:00Z"),
		UpdatedAt:             seedTime("2023-05-22T16:00:00Z"),
	},
	{
		ID:                    "law-6",
		Category:              "Constitutional Law",
		Title:                 "Right to Life and Personal Liberty",
		ArticleOrSection:      "Article 21",
		HindiTitle:            "जीवन और व्यक्तिगत स्वतंत्रता का अधिकार",
		HindiArticleOrSection: "अनुच्छेद 21",
		Explanation:           "No person shall be deprived of his life or personal liberty except according to procedure established by law. This article is considered the heart of fundamental rights.",
		HindiExplanation:      "किसी भी व्यक्ति को उसके जीवन या व्यक्तिगत स्वतंत्रता से कानून द्वारा स्थापित प्रक्रिया के अनुसार ही वंचित किया जाएगा। इस अनुच्छेद को मौलिक अधिकारों का हृदय माना जाता है।",
		Keywords:              []string{"life", "liberty", "personal liberty", "fundamental rights", "procedure established by law"},
		CreatedAt:             seedTime("2023-06-18T08:30:00Z"),
		UpdatedAt:             seedTime("2023-06-18T08:30:00Z"),
	},
	{
		ID:                    "law-7",
		Category:              "Criminal Law",
		Title:                 "Assault",
		ArticleOrSection:      "IPC Section 351",
		HindiTitle:            "हमला",
		HindiArticleOrSection: "आईपीसी धारा 351",
		Explanation:           "Whoever makes any gesture, or any preparation intending or knowing it to be likely that such gesture or preparation will cause any person present to apprehend that he is about to use criminal force to that person, is said to commit an assault.",
		HindiExplanation:      "जो कोई भी कोई हावभाव या कोई तैयारी करता है, जिसका इरादा या यह जानते हुए कि इस तरह के हावभाव या तैयारी से उपस्थित किसी व्यक्ति को यह आशंका होगी कि वह उस व्यक्ति पर आपराधिक बल का प्रयोग करने वाला है, उसे हमला करना कहा जाता है।",
		Keywords:              []string{"assault", "criminal force", "gesture", "preparation", "apprehension"},
		CreatedAt:             seedTime("2023-07-01T10:15:00Z"),
		UpdatedAt:             seedTime("2023-07-01T10:15:00Z"),
	},
	{
		ID:                    "law-8",
		Category:              "Cyber Law",
		Title:                 "Cyber Bullying",
		ArticleOrSection:      "IT Act, 2000 (Sections 66A, 67)",
		HindiTitle:            "साइबर बुलिंग",
		HindiArticleOrSection: "आईटी अधिनियम, 2000 (धारा 66ए, 67)",
		Explanation:           "While \"cyber bullying\" is not explicitly defined, actions like sending offensive messages (Section 66A, though largely struck down), publishing obscene material (Section 67), or identity theft (Section 66C) are covered under the IT Act, 2000.",
		HindiExplanation:      "हालांकि \"साइबर बुलिंग\" को स्पष्ट रूप से परिभाषित नहीं किया गया है, लेकिन आपत्तिजनक संदेश भेजना (धारा 66ए, हालांकि काफी हद तक हटा दी गई), अश्लील सामग्री प्रकाशित करना (धारा 67), या पहचान की चोरी (धारा 66सी) जैसे कार्य आईटी अधिनियम, 2000 के तहत आते हैं।",
		Keywords:              []string{"cyber", "bullying", "online harassment", "IT Act", "obscenity"},
		CreatedAt:             seedTime("2023-08-14T13:00:00Z"),
		UpdatedAt:             seedTime("2023-08-14T13:00:00Z"),
	},
	{
		ID:                    "law-9",
		Category:              "Labor Law",
		Title:                 "Minimum Wages Act",
		ArticleOrSection:      "Minimum Wages Act, 1948",
		HindiTitle:            "न्यूनतम मजदूरी अधिनियम",
		HindiArticleOrSection: "न्यूनतम मजदूरी अधिनियम, 1948",
		Explanation:           "This Act provides for fixing minimum rates of wages in certain employments. It ensures fair wages for workers and prevents exploitation.",
		HindiExplanation:      "यह अधिनियम कुछ रोजगारों में मजदूरी की न्यूनतम दरें तय करने का प्रावधान करता है। यह श्रमिकों के लिए उचित मजदूरी सुनिश्चित करता है और शोषण को रोकता है।",
		Keywords:              []string{"wages", "minimum", "labor", "employment", "worker"},
		CreatedAt:             seedTime("2023-09-05T09:40:00Z"),
		UpdatedAt:             seedTime("2023-09-05T09:40:00Z"),
	},
	{
		ID:                    "law-10",
		Category:              "Environmental Law",
		Title:                 "Environmental Protection Act",
		ArticleOrSection:      "Environmental Protection Act, 1986",
		HindiTitle:            "पर्यावरण संरक्षण अधिनियम",
		HindiArticleOrSection: "पर्यावरण संरक्षण अधिनियम, 1986",
		Explanation:           "The Environmental Protection Act, 1986, aims to protect and improve the human environment, prevent hazards to human beings, other living creatures, plants, and property.",
		HindiExplanation:      "पर्यावरण संरक्षण अधिनियम, 1986 का उद्देश्य मानव पर्यावरण की रक्षा और सुधार करना, मनुष्यों, अन्य जीवित प्राणियों, पौधों और संपत्ति को होने वाले खतरों को रोकना है।",
		Keywords:              []string{"environment", "pollution", "protection", "ecology", "nature"},
		CreatedAt:             seedTime("2023-10-11T12:00:00Z"),
		UpdatedAt:             seedTime("2023-10-11T12:00:00Z"),
	},
}
