package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/piggypal/piggypal-api/handlers"
	"github.com/piggypal/piggypal-api/services"
)

// SetupAuthRoutes sets up the public vault-lock routes.
func SetupAuthRoutes(rg *gin.RouterGroup, vault *services.VaultService) {
	authHandler := handlers.NewAuthHandler(vault)

	rg.GET("/auth/status", authHandler.Status)
	rg.POST("/auth/setup", authHandler.Setup)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupTOTPRoutes sets up the protected two-factor management routes.
func SetupTOTPRoutes(rg *gin.RouterGroup, vault *services.VaultService) {
	authHandler := handlers.NewAuthHandler(vault)

	rg.POST("/auth/totp/setup", authHandler.SetupTOTP)
	rg.POST("/auth/totp/verify", authHandler.VerifyTOTP)
	rg.POST("/auth/totp/disable", authHandler.DisableTOTP)
}

// SetupExpenseRoutes sets up the protected expense routes.
func SetupExpenseRoutes(rg *gin.RouterGroup, store *services.DomainStore, ws *handlers.WSHandler) {
	h := handlers.NewExpenseHandler(services.NewExpenseService(store), ws)

	rg.GET("/expenses", h.List)
	rg.POST("/expenses", h.Create)
	rg.PUT("/expenses/:id", h.Update)
	rg.DELETE("/expenses/:id", h.Delete)
}

// SetupBudgetRoutes sets up the protected budget routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, store *services.DomainStore, ws *handlers.WSHandler) {
	h := handlers.NewBudgetHandler(services.NewBudgetService(store), ws)

	rg.GET("/budget", h.Get)
	rg.POST("/budget/categories", h.CreateCategory)
	rg.PUT("/budget/categories/:name", h.UpdateCategory)
	rg.DELETE("/budget/categories/:name", h.DeleteCategory)
	rg.POST("/budget/plan", h.ApplyPlan)
	rg.POST("/budget/plan/preview", h.PlanPreview)
	rg.POST("/budget/recompute", h.Recompute)
}

// SetupGoalRoutes sets up the protected goal routes.
func SetupGoalRoutes(rg *gin.RouterGroup, store *services.DomainStore, ws *handlers.WSHandler) {
	h := handlers.NewGoalHandler(services.NewGoalService(store), ws)

	rg.GET("/goals", h.List)
	rg.POST("/goals", h.Create)
	rg.GET("/goals/milestones", h.Milestones)
	rg.POST("/goals/plan", h.Plan)
	rg.GET("/goals/:id", h.Get)
	rg.PUT("/goals/:id", h.Update)
	rg.POST("/goals/:id/deposits", h.AddDeposit)
}

// SetupTipRoutes sets up the protected tip routes.
func SetupTipRoutes(rg *gin.RouterGroup, store *services.DomainStore, ws *handlers.WSHandler) {
	h := handlers.NewTipHandler(services.NewTipService(store), ws)

	rg.GET("/tips", h.List)
	rg.POST("/tips", h.Create)
	rg.POST("/tips/:id/bookmark", h.ToggleBookmark)
}

// SetupSettingsRoutes sets up the protected settings routes.
func SetupSettingsRoutes(rg *gin.RouterGroup, store *services.DomainStore, ws *handlers.WSHandler) {
	h := handlers.NewSettingsHandler(services.NewSettingsService(store), ws)

	rg.GET("/settings", h.Get)
	rg.PUT("/settings", h.Update)
}

// SetupDashboardRoutes sets up the protected dashboard route.
func SetupDashboardRoutes(rg *gin.RouterGroup, store *services.DomainStore) {
	h := handlers.NewDashboardHandler(services.NewInsightsService(store))

	rg.GET("/dashboard", h.Get)
}
