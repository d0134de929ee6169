package models

// ChatRequest is the payload coming from the frontend into /api/ai/chat.
type ChatRequest struct {
	Message string   `json:"message"`
	Reset   bool     `json:"reset,omitempty"` // start a fresh conversation before sending
	Lang    Language `json:"lang,omitempty"`
}

// ChatTurn is one stored exchange entry of a conversation, kept in the
// AI context store so the chat survives across requests.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// KeywordRequest asks for legal concepts relevant to a problem description.
type KeywordRequest struct {
	Problem string `json:"problem"`
}

// KeywordResponse carries the extracted legal concepts.
type KeywordResponse struct {
	Keywords []string `json:"keywords"`
}

// ExplainRequest asks for a prose explanation of a problem in terms of the
// given laws.
type ExplainRequest struct {
	Problem string   `json:"problem"`
	LawIDs  []string `json:"lawIds"`
	Lang    Language `json:"lang,omitempty"`
}

// SolveRequest runs the full problem-solver flow: keyword extraction, law
// lookup, then explanation.
type SolveRequest struct {
	Problem string   `json:"problem"`
	Lang    Language `json:"lang,omitempty"`
}

// SolveResult is the outcome of the problem-solver flow.
type SolveResult struct {
	Keywords    []string `json:"keywords"`
	Laws        []Law    `json:"laws"`
	Explanation string   `json:"explanation"`
}
