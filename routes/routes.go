package routes

import (
	"net/http"
	"time"

	"samvidhansetu/handlers"
	"samvidhansetu/middleware"
	"samvidhansetu/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.SignupHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.AccountRepo))
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.MeHandler)
		api.GET("/notifications", hb.Auth.NotificationsHandler)
	}
}

// RegisterLawRoutes registers the law database endpoints. Reading is public;
// mutations require an admin session.
func RegisterLawRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/laws")
	{
		api.GET("", hb.Laws.ListLawsHandler)
		api.GET("/search", hb.Laws.SearchLawsHandler)
		api.GET("/categories", hb.Laws.CategoriesHandler)
		api.GET("/:id", hb.Laws.GetLawHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.AccountRepo))
		protected.Use(middleware.AdminRoleMiddleware(hb.AccountRepo))
		protected.POST("", hb.Laws.AddLawHandler)
		protected.PUT("/:id", hb.Laws.UpdateLawHandler)
		protected.DELETE("/:id", hb.Laws.DeleteLawHandler)
	}
}

// RegisterAIRoutes registers the assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.AccountRepo))
		api.POST("/chat", hb.AI.ChatHandler)
		api.POST("/chat/reset", hb.AI.ResetChatHandler)
		api.POST("/keywords", hb.AI.KeywordsHandler)
		api.POST("/explain", hb.AI.ExplainHandler)
		api.POST("/solve", hb.AI.SolveHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.AccountRepo))
		adminGroup.Use(middleware.AdminRoleMiddleware(hb.AccountRepo))
		adminGroup.GET("/accounts", hb.Admin.GetAllAccountsHandler)
	}
}

// RegisterLegalRoute exposes the site's legal documents publicly.
func RegisterLegalRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/legal", hb.Admin.LegalHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "ok",
			"message":      "Hi, I'm Samvidhan Setu",
			"dependencies": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterLawRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterLegalRoute(r, hb)
	RegisterHealthRoute(r)
}
