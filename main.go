package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/piggypal/piggypal-api/config"
	"github.com/piggypal/piggypal-api/handlers"
	"github.com/piggypal/piggypal-api/middleware"
	"github.com/piggypal/piggypal-api/routes"
	"github.com/piggypal/piggypal-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	store, err := config.OpenStore()
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	defer store.Close()

	log.Println("✅ Store opened successfully")

	domainStore := services.NewDomainStore(store)

	initCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := domainStore.Init(initCtx); err != nil {
		cancel()
		log.Fatal("Failed to seed domain documents:", err)
	}
	cancel()

	vaultService := services.NewVaultService(domainStore)
	wsHandler := handlers.NewWSHandler()

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	corsConfig := cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(func(c *gin.Context) {
		start := time.Now()
		log.Printf("📨 %s %s from %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
		c.Next()
		duration := time.Since(start)
		log.Printf("✅ %s %s - %d (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), duration)
	})

	router.Use(middleware.RateLimiter(100, time.Minute))

	v1 := router.Group("/api/v1")
	{
		routes.SetupAuthRoutes(v1, vaultService)
		v1.GET("/ws", wsHandler.HandleWS)

		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(vaultService))
		{
			routes.SetupTOTPRoutes(protected, vaultService)
			routes.SetupExpenseRoutes(protected, domainStore, wsHandler)
			routes.SetupBudgetRoutes(protected, domainStore, wsHandler)
			routes.SetupGoalRoutes(protected, domainStore, wsHandler)
			routes.SetupTipRoutes(protected, domainStore, wsHandler)
			routes.SetupSettingsRoutes(protected, domainStore, wsHandler)
			routes.SetupDashboardRoutes(protected, domainStore)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.JSON(503, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
