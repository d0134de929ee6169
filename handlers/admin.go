package handlers

import (
	"net/http"

	"samvidhansetu/services/admin"
	"samvidhansetu/services/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the admin dashboard and public legal endpoints.
type AdminHandler struct {
	Auth  auth.AuthService
	Admin admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authSvc auth.AuthService, adminSvc admin.AdminService) *AdminHandler {
	return &AdminHandler{Auth: authSvc, Admin: adminSvc}
}

// GetAllAccountsHandler handles GET /api/admin/accounts. Password hashes are
// never serialized.
func (h *AdminHandler) GetAllAccountsHandler(c *gin.Context) {
	accounts, err := h.Auth.GetAllAccounts(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list accounts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load accounts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts, "count": len(accounts)})
}

// LegalHandler handles GET /api/legal.
func (h *AdminHandler) LegalHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.Admin.GetLegalSections()})
}
