package ai

import (
	"fmt"
	"strings"

	"samvidhansetu/models"
)

// chatSystemInstruction fixes the assistant's persona for the chatbot.
const chatSystemInstruction = `You are Samvidhan Setu, an AI legal assistant in India. Provide accurate, simplified explanations of Indian laws and legal concepts. Always advise users to consult a legal professional for specific advice. Keep answers concise and helpful. When asked in Hindi, respond in Hindi.`

// explainSystemInstructionEN and explainSystemInstructionHI fix the persona
// for the problem-solver explanation call.
const explainSystemInstructionEN = `You are Samvidhan Setu, an AI legal assistant in India. Based on the user's problem and the provided Indian laws from our database, explain how these laws relate to the problem in simple, easy-to-understand language. Do not introduce new laws outside the provided list. Always advise users to consult a legal professional for specific advice. Be concise and helpful.`

const explainSystemInstructionHI = `आप संविधान सेतु, भारत में एक AI कानूनी सहायक हैं। उपयोगकर्ता की समस्या और हमारे डेटाबेस से दिए गए भारतीय कानूनों के आधार पर, समझाएं कि ये कानून समस्या से कैसे संबंधित हैं, सरल, आसानी से समझने वाली भाषा में। दी गई सूची के बाहर नए कानूनों का परिचय न दें। हमेशा उपयोगकर्ताओं को विशिष्ट सलाह के लिए एक कानूनी पेशेवर से परामर्श करने की सलाह दें। संक्षिप्त और सहायक रहें।`

// keywordPrompt asks for the legal concepts behind a problem description. The
// model is constrained to a JSON array of strings via the response schema.
func keywordPrompt(problem string) string {
	return fmt.Sprintf(`Given the following real-life problem or incident in India, identify 3-7 key legal concepts, keywords, or areas of Indian law that are most relevant. For example, if the problem is "my landlord is trying to evict me illegally", relevant concepts might be "landlord-tenant dispute", "eviction law", "property rights". Return these concepts as a JSON array of strings. Do not include any other text or formatting, just the JSON array.

Problem: %s`, problem)
}

// explainPrompt builds the user prompt for the explanation call, embedding the
// matched law summaries in the requested language.
func explainPrompt(problem string, laws []models.Law, lang models.Language) string {
	summaries := make([]string, 0, len(laws))
	for _, l := range laws {
		summaries = append(summaries, l.Summary(lang))
	}
	joined := strings.Join(summaries, "\n\n")

	if lang == models.LanguageHindi {
		if joined == "" {
			joined = "समस्या से निकाले गए कीवर्ड से संबंधित हमारे डेटाबेस में कोई विशिष्ट कानून नहीं मिला। सामान्य मार्गदर्शन प्रदान करें या बताएं कि जानकारी के आधार पर विशिष्ट कानून नहीं मिल सके।"
		}
		return fmt.Sprintf(`यहाँ एक वास्तविक जीवन की समस्या है: "%s"।
यहाँ हमारे डेटाबेस से कुछ संभावित संबंधित भारतीय कानून दिए गए हैं:
%s
कृपया समस्या से संबंधित कानूनी पहलुओं को समझाएं, इस बात पर ध्यान केंद्रित करते हुए कि ये दिए गए कानून कैसे लागू हो सकते हैं। यदि कोई कानून प्रदान नहीं किया गया था, तो सामान्य कदम बताएं।`, problem, joined)
	}

	if joined == "" {
		joined = "No specific laws were found in our database related to the keywords extracted from the problem. Provide general guidance or state that specific laws could not be found based on the information."
	}
	return fmt.Sprintf(`Here is a real-life problem: "%s".
Here are some potentially relevant Indian laws from our database:
%s
Please explain the legal aspects related to the problem, focusing on how these provided laws might apply. If no laws were provided, explain general steps to take.`, problem, joined)
}

func explainSystemInstruction(lang models.Language) string {
	if lang == models.LanguageHindi {
		return explainSystemInstructionHI
	}
	return explainSystemInstructionEN
}
