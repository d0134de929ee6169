package models

import (
	"strings"
	"time"
)

// Language selects which side of a bilingual field is used. It is resolved per
// request and never persisted.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageHindi   Language = "hi"
)

// ParseLanguage normalizes a language tag, defaulting to English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hi", "hi-in", "hindi":
		return LanguageHindi
	default:
		return LanguageEnglish
	}
}

// Law is a single entry of the legal database. Every user-facing text field
// carries an English and a Hindi variant; the category is stored in one form.
type Law struct {
	ID                    string    `bson:"id" json:"id"`
	Category              string    `bson:"category" json:"category"`
	Title                 string    `bson:"title" json:"title"`
	ArticleOrSection      string    `bson:"articleOrSection" json:"articleOrSection"`
	HindiTitle            string    `bson:"hindiTitle" json:"hindiTitle"`
	HindiArticleOrSection string    `bson:"hindiArticleOrSection" json:"hindiArticleOrSection"`
	Explanation           string    `bson:"explanation" json:"explanation"`
	HindiExplanation      string    `bson:"hindiExplanation" json:"hindiExplanation"`
	Keywords              []string  `bson:"keywords" json:"keywords"`
	CreatedAt             time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TitleIn returns the title in the given language.
func (l Law) TitleIn(lang Language) string {
	if lang == LanguageHindi {
		return l.HindiTitle
	}
	return l.Title
}

// ArticleOrSectionIn returns the article/section reference in the given language.
func (l Law) ArticleOrSectionIn(lang Language) string {
	if lang == LanguageHindi {
		return l.HindiArticleOrSection
	}
	return l.ArticleOrSection
}

// ExplanationIn returns the explanation in the given language.
func (l Law) ExplanationIn(lang Language) string {
	if lang == LanguageHindi {
		return l.HindiExplanation
	}
	return l.Explanation
}

// Summary renders the law as a single prompt-friendly line, e.g.
// "Theft (IPC Section 378): Whoever intends to take...".
func (l Law) Summary(lang Language) string {
	return l.TitleIn(lang) + " (" + l.ArticleOrSectionIn(lang) + "): " + l.ExplanationIn(lang)
}

// LawCategories is the fixed set of categories offered by the admin panel.
var LawCategories = []string{
	"Constitutional Law",
	"Criminal Law",
	"Civil Law",
	"Family Law",
	"Consumer Protection",
	"Property Law",
	"Cyber Law",
	"Labor Law",
	"Environmental Law",
	"Human Rights",
}
