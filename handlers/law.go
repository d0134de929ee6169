package handlers

import (
	"errors"
	"net/http"

	lawRepo "samvidhansetu/database/repository/law"
	"samvidhansetu/models"
	"samvidhansetu/services/law"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LawHandler exposes the law database over HTTP.
type LawHandler struct {
	Service law.LawService
}

// NewLawHandler creates a new LawHandler.
func NewLawHandler(svc law.LawService) *LawHandler {
	return &LawHandler{Service: svc}
}

// requestLanguage resolves the display language from the "lang" query
// parameter, defaulting to English.
func requestLanguage(c *gin.Context) models.Language {
	return models.ParseLanguage(c.Query("lang"))
}

// ListLawsHandler handles GET /api/laws.
func (h *LawHandler) ListLawsHandler(c *gin.Context) {
	laws, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list laws", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load laws"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"laws": laws, "count": len(laws)})
}

// GetLawHandler handles GET /api/laws/:id.
func (h *LawHandler) GetLawHandler(c *gin.Context) {
	id := c.Param("id")
	found, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, lawRepo.ErrLawNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Law not found"})
			return
		}
		getLogger(c).Error("Failed to fetch law", zap.String("lawID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load law"})
		return
	}
	c.JSON(http.StatusOK, found)
}

// SearchLawsHandler handles GET /api/laws/search?q=...&lang=... An empty query
// returns the full list, matching the behaviour of browsing without a filter.
func (h *LawHandler) SearchLawsHandler(c *gin.Context) {
	query := c.Query("q")
	lang := requestLanguage(c)

	laws, err := h.Service.Search(c.Request.Context(), query, lang)
	if err != nil {
		getLogger(c).Error("Law search failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"laws": laws, "count": len(laws), "query": query})
}

// CategoriesHandler handles GET /api/laws/categories.
func (h *LawHandler) CategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Service.Categories()})
}

// lawPayload is the request body for create and update operations.
type lawPayload struct {
	Category              string   `json:"category" binding:"required"`
	Title                 string   `json:"title" binding:"required"`
	ArticleOrSection      string   `json:"articleOrSection"`
	HindiTitle            string   `json:"hindiTitle"`
	HindiArticleOrSection string   `json:"hindiArticleOrSection"`
	Explanation           string   `json:"explanation" binding:"required"`
	HindiExplanation      string   `json:"hindiExplanation"`
	Keywords              []string `json:"keywords"`
}

func (p *lawPayload) toLaw() models.Law {
	return models.Law{
		Category:              p.Category,
		Title:                 p.Title,
		ArticleOrSection:      p.ArticleOrSection,
		HindiTitle:            p.HindiTitle,
		HindiArticleOrSection: p.HindiArticleOrSection,
		Explanation:           p.Explanation,
		HindiExplanation:      p.HindiExplanation,
		Keywords:              p.Keywords,
	}
}

// AddLawHandler handles POST /api/laws. Requires an admin session. The
// response carries the created law plus the actor's refreshed session so the
// client can pick up the new notification without refetching the list.
func (h *LawHandler) AddLawHandler(c *gin.Context) {
	var payload lawPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, session, err := h.Service.Add(c.Request.Context(), payload.toLaw(), actingUserID(c))
	if err != nil {
		getLogger(c).Error("Failed to add law", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"law": created, "user": session})
}

// UpdateLawHandler handles PUT /api/laws/:id.
func (h *LawHandler) UpdateLawHandler(c *gin.Context) {
	var payload lawPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	input := payload.toLaw()
	input.ID = c.Param("id")

	updated, session, err := h.Service.Update(c.Request.Context(), input, actingUserID(c))
	if err != nil {
		if errors.Is(err, lawRepo.ErrLawNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Law not found"})
			return
		}
		getLogger(c).Error("Failed to update law", zap.String("lawID", input.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"law": updated, "user": session})
}

// DeleteLawHandler handles DELETE /api/laws/:id.
func (h *LawHandler) DeleteLawHandler(c *gin.Context) {
	id := c.Param("id")

	removed, session, err := h.Service.Delete(c.Request.Context(), id, actingUserID(c))
	if err != nil {
		getLogger(c).Error("Failed to delete law", zap.String("lawID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete law"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Law not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id, "user": session})
}
