package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, LanguageHindi, ParseLanguage("hi"))
	assert.Equal(t, LanguageHindi, ParseLanguage("HI"))
	assert.Equal(t, LanguageHindi, ParseLanguage("hi-IN"))
	assert.Equal(t, LanguageHindi, ParseLanguage("hindi"))

	assert.Equal(t, LanguageEnglish, ParseLanguage("en"))
	assert.Equal(t, LanguageEnglish, ParseLanguage(""))
	assert.Equal(t, LanguageEnglish, ParseLanguage("fr"))
}

func TestLawLanguageSelection(t *testing.T) {
	law := Law{
		Title:                 "Theft",
		HindiTitle:            "चोरी",
		ArticleOrSection:      "IPC Section 378",
		HindiArticleOrSection: "आईपीसी धारा 378",
		Explanation:           "Taking movable property dishonestly.",
		HindiExplanation:      "बेईमानी से जंगम संपत्ति लेना।",
	}

	assert.Equal(t, "Theft", law.TitleIn(LanguageEnglish))
	assert.Equal(t, "चोरी", law.TitleIn(LanguageHindi))

	assert.Equal(t, "Theft (IPC Section 378): Taking movable property dishonestly.", law.Summary(LanguageEnglish))
	assert.Equal(t, "चोरी (आईपीसी धारा 378): बेईमानी से जंगम संपत्ति लेना।", law.Summary(LanguageHindi))
}
