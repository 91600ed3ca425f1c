package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"civicseva-be/ai"
	"civicseva-be/config"
	"civicseva-be/controllers"
	"civicseva-be/data"
	"civicseva-be/middlewares"
	"civicseva-be/routes"
	"civicseva-be/services"
	"civicseva-be/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	slot, rateLimiter := buildSlot()
	overrides := store.NewOverrideStore(slot)
	svc := services.NewIssueService(overrides, data.SeedIssues())

	aiClient := ai.New(ai.Config{
		APIKey: os.Getenv("GEMINI_API_KEY"),
		Model:  os.Getenv("GEMINI_MODEL"),
	})

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnvOrDefault("FRONTEND_ORIGIN", "http://localhost:3000")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	issueController := controllers.NewIssueController(svc)
	routes.AuthRoutes(r)
	routes.IssueRoutes(r, issueController, rateLimiter)
	routes.AdminRoutes(r, issueController)
	routes.AIRoutes(r, controllers.NewAIController(aiClient))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := getEnvOrDefault("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildSlot selects the override-store backend. Redis is the default; a
// mongo slot carries the identical single-payload layout, and the memory
// slot exists for local development without either.
func buildSlot() (store.Slot, gin.HandlerFunc) {
	slotKey := getEnvOrDefault("ISSUES_SLOT_KEY", "civicseva_issues")

	switch os.Getenv("STORE_BACKEND") {
	case "memory":
		log.Println("Using in-memory override store; state is lost on restart")
		return store.NewMemorySlot(), middlewares.ReportRateLimiter(nil, 0)
	case "mongo":
		collection := config.GetCollection("slots")
		return store.NewMongoSlot(collection, slotKey), middlewares.ReportRateLimiter(nil, 0)
	default:
		config.ConnectRedis()
		limit := reportLimit()
		return store.NewRedisSlot(config.RedisClient, slotKey),
			middlewares.ReportRateLimiter(config.RedisClient, limit)
	}
}

func reportLimit() int {
	raw := os.Getenv("REPORTS_PER_DAY_LIMIT")
	if raw == "" {
		return 10
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		log.Fatalf("Invalid REPORTS_PER_DAY_LIMIT: %q", raw)
	}
	return limit
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
