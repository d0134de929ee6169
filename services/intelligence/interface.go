package ai

import (
	"context"

	"samvidhansetu/models"
)

// AIService defines the Gemini-backed assistant surface: conversational chat,
// keyword extraction for the problem solver, and explanation generation.
type AIService interface {
	// Chat sends one user message in the account's ongoing conversation and
	// streams the reply. onChunk receives each incremental text fragment; the
	// full reply is returned once the stream ends.
	Chat(ctx context.Context, userID string, req models.ChatRequest, onChunk func(chunk string) error) (string, error)
	// ResetChat discards the account's conversation history.
	ResetChat(ctx context.Context, userID string) error
	// ExtractKeywords identifies the legal concepts relevant to a free-text
	// problem description.
	ExtractKeywords(ctx context.Context, problem string) ([]string, error)
	// Explain produces prose relating the given laws to the problem, in the
	// requested language.
	Explain(ctx context.Context, problem string, laws []models.Law, lang models.Language) (string, error)
	// Solve runs the full problem-solver flow: extract keywords, look up
	// matching laws, then explain them in context.
	Solve(ctx context.Context, problem string, lang models.Language) (*models.SolveResult, error)
}
