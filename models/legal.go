package models

// LegalSection is a versioned piece of site legal documentation (privacy
// policy, terms, disclaimer), carried in both languages.
type LegalSection struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	HindiTitle   string `json:"hindiTitle"`
	Summary      string `json:"summary"`
	Content      string `json:"content"`
	HindiContent string `json:"hindiContent"`
	Version      string `json:"version"`
	Updated      string `json:"updated"`
}
