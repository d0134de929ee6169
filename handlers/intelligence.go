package handlers

import (
	"errors"
	"net/http"

	lawRepo "samvidhansetu/database/repository/law"
	"samvidhansetu/models"
	ai "samvidhansetu/services/intelligence"
	"samvidhansetu/services/law"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler exposes the Gemini-backed assistant endpoints.
type AIHandler struct {
	Service ai.AIService
	Laws    law.LawService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(svc ai.AIService, laws law.LawService) *AIHandler {
	return &AIHandler{Service: svc, Laws: laws}
}

// ChatHandler handles POST /api/ai/chat. The reply is streamed back as
// Server-Sent Events, one "message" event per model chunk, terminated by a
// "done" event carrying the full reply.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	userID := actingUserID(c)
	reply, err := h.Service.Chat(c.Request.Context(), userID, req, func(chunk string) error {
		c.SSEvent("message", chunk)
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		logger.Error("Chat failed", zap.String("userID", userID), zap.Error(err))
		c.SSEvent("error", err.Error())
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", reply)
	c.Writer.Flush()
}

// ResetChatHandler handles POST /api/ai/chat/reset.
func (h *AIHandler) ResetChatHandler(c *gin.Context) {
	userID := actingUserID(c)
	if err := h.Service.ResetChat(c.Request.Context(), userID); err != nil {
		getLogger(c).Error("Chat reset failed", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation reset"})
}

// KeywordsHandler handles POST /api/ai/keywords.
func (h *AIHandler) KeywordsHandler(c *gin.Context) {
	var req models.KeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	keywords, err := h.Service.ExtractKeywords(c.Request.Context(), req.Problem)
	if err != nil {
		getLogger(c).Error("Keyword extraction failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.KeywordResponse{Keywords: keywords})
}

// ExplainHandler handles POST /api/ai/explain. The client supplies the law
// ids it already matched; unknown ids are skipped so a stale client list does
// not block the explanation.
func (h *AIHandler) ExplainHandler(c *gin.Context) {
	var req models.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var laws []models.Law
	for _, id := range req.LawIDs {
		found, err := h.Laws.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, lawRepo.ErrLawNotFound) {
				continue
			}
			getLogger(c).Error("Explain: law lookup failed", zap.String("lawID", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load laws"})
			return
		}
		laws = append(laws, *found)
	}

	explanation, err := h.Service.Explain(c.Request.Context(), req.Problem, laws, models.ParseLanguage(string(req.Lang)))
	if err != nil {
		getLogger(c).Error("Explain failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"explanation": explanation})
}

// SolveHandler handles POST /api/ai/solve: keyword extraction, law lookup and
// explanation in a single round trip.
func (h *AIHandler) SolveHandler(c *gin.Context) {
	var req models.SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.Service.Solve(c.Request.Context(), req.Problem, models.ParseLanguage(string(req.Lang)))
	if err != nil {
		getLogger(c).Error("Solve failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
