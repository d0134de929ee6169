// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"samvidhansetu/models"
	lawSvc "samvidhansetu/services/law"
	"samvidhansetu/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// DefaultAIService is the production AIService backed by the Gemini API.
type DefaultAIService struct {
	client         *genai.Client
	chatModel      string
	reasoningModel string
	ctxStore       ContextStore
	laws           lawSvc.LawService
}

// NewDefaultAIService builds the Gemini client. The chat model handles the
// conversational assistant; the reasoning model handles keyword extraction
// and explanation generation.
func NewDefaultAIService(apiKey, chatModel, reasoningModel string, ctxStore ContextStore, laws lawSvc.LawService) (*DefaultAIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not configured")
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &DefaultAIService{
		client:         client,
		chatModel:      chatModel,
		reasoningModel: reasoningModel,
		ctxStore:       ctxStore,
		laws:           laws,
	}, nil
}

// Chat replays the stored conversation, streams the model's reply through
// onChunk, and persists both turns once the stream completes.
func (s *DefaultAIService) Chat(ctx context.Context, userID string, req models.ChatRequest, onChunk func(chunk string) error) (string, error) {
	if strings.TrimSpace(req.Message) == "" {
		return "", fmt.Errorf("message is required")
	}
	if req.Reset {
		if err := s.ctxStore.Clear(ctx, userID); err != nil {
			utils.GetLogger().Warn("Chat: failed to reset conversation", zap.Error(err))
		}
	}

	model := s.client.GenerativeModel(s.chatModel)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(chatSystemInstruction)}}

	cs := model.StartChat()
	history, err := s.ctxStore.History(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to load conversation: %w", err)
	}
	for _, turn := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	var full strings.Builder
	iter := cs.SendMessageStream(ctx, genai.Text(req.Message))
	for {
		resp, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			utils.GetLogger().Error("Chat: stream failed", zap.Error(err))
			return full.String(), fmt.Errorf("the assistant is unavailable right now: %v", err)
		}
		chunk := collectText(resp)
		if chunk == "" {
			continue
		}
		full.WriteString(chunk)
		if onChunk != nil {
			if err := onChunk(chunk); err != nil {
				return full.String(), err
			}
		}
	}

	reply := full.String()
	if err := s.ctxStore.Append(ctx, userID,
		models.ChatTurn{Role: "user", Text: req.Message},
		models.ChatTurn{Role: "model", Text: reply},
	); err != nil {
		utils.GetLogger().Warn("Chat: failed to persist conversation", zap.Error(err))
	}
	return reply, nil
}

// ResetChat discards the account's conversation history.
func (s *DefaultAIService) ResetChat(ctx context.Context, userID string) error {
	return s.ctxStore.Clear(ctx, userID)
}

// ExtractKeywords asks the reasoning model for the legal concepts behind a
// problem description. The response is constrained to a JSON array of strings.
func (s *DefaultAIService) ExtractKeywords(ctx context.Context, problem string) ([]string, error) {
	if strings.TrimSpace(problem) == "" {
		return nil, fmt.Errorf("problem description is required")
	}

	model := s.client.GenerativeModel(s.reasoningModel)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(keywordPrompt(problem)))
	if err != nil {
		utils.GetLogger().Error("ExtractKeywords: generate failed", zap.Error(err))
		return nil, fmt.Errorf("failed to analyze problem: %v", err)
	}

	return parseKeywords(collectText(resp))
}

// Explain asks the reasoning model to relate the given laws to the problem,
// in the requested language.
func (s *DefaultAIService) Explain(ctx context.Context, problem string, laws []models.Law, lang models.Language) (string, error) {
	if strings.TrimSpace(problem) == "" {
		return "", fmt.Errorf("problem description is required")
	}

	model := s.client.GenerativeModel(s.reasoningModel)
	model.SetTemperature(0.5)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(explainSystemInstruction(lang))}}

	resp, err := model.GenerateContent(ctx, genai.Text(explainPrompt(problem, laws, lang)))
	if err != nil {
		utils.GetLogger().Error("Explain: generate failed", zap.Error(err))
		return "", fmt.Errorf("failed to get detailed explanation: %v", err)
	}

	text := collectText(resp)
	if text == "" {
		return "", fmt.Errorf("failed to get detailed explanation: the model returned no text")
	}
	return text, nil
}

// parseKeywords validates the model's JSON output: an array of non-empty
// strings, capped at seven entries.
func parseKeywords(raw string) ([]string, error) {
	var keywords []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &keywords); err != nil {
		return nil, fmt.Errorf("failed to analyze problem: the model returned an invalid keyword list")
	}

	cleaned := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		return nil, fmt.Errorf("failed to analyze problem: the model returned no keywords")
	}
	if len(cleaned) > 7 {
		cleaned = cleaned[:7]
	}
	return cleaned, nil
}

// collectText concatenates the text parts of the first candidate.
func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
