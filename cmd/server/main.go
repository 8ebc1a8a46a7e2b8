package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"legalease-backend/cache"
	"legalease-backend/handlers"
	"legalease-backend/knowledge"
	"legalease-backend/repository"
	"legalease-backend/service"
	"legalease-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// Optional database connection for the question log
	db := initPostgres()
	if db != nil {
		defer db.Close()
	}

	// Initialize storage for uploaded documents
	documentStorage, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Document storage initialized")

	// Load the bundled legal corpus once; the handle is passed into the
	// answer service rather than read from global state
	corpusRepo := repository.NewCorpusRepository(os.Getenv("CORPUS_PATH"))

	// Initialize Gemini generator; a missing key degrades to the static
	// fallback path instead of failing startup
	generator := initGenerator()

	classifier := knowledge.NewClassifier(knowledge.ParseMatchMode(os.Getenv("KEYWORD_MATCH_MODE")))
	respCache := cache.New(cacheCapacityFromEnv())

	opts := []service.AnswerServiceOption{
		service.WithClassifier(classifier),
		service.WithCorpusRepository(corpusRepo),
		service.WithResponseCache(respCache),
	}
	if generator != nil {
		opts = append(opts, service.WithGenerator(generator))
	}
	if db != nil {
		opts = append(opts, service.WithQuestionLogRepository(repository.NewQuestionLogRepository(db)))
	}
	answerService := service.NewAnswerService(opts...)

	// Initialize handlers
	answerHandler := handlers.NewAnswerHandler(answerService)
	documentHandler := handlers.NewDocumentHandler(service.NewDocumentService(), documentStorage)

	// Setup Gin router
	r := gin.Default()
	r.Use(corsMiddleware())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		api.GET("/ping", answerHandler.Ping)
		api.GET("/demo", answerHandler.Demo)

		// Legal guidance endpoints
		api.POST("/answer", answerHandler.Answer)
		api.POST("/gemini", answerHandler.Gemini)
		api.GET("/questions/recent", answerHandler.RecentQuestions)

		// Document endpoints
		api.POST("/analyze-document", documentHandler.Analyze)
		api.POST("/documents/upload", documentHandler.Upload)
		api.GET("/documents/:id", documentHandler.Get)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// initPostgres connects to Postgres when DATABASE_URL is set. The
// database only backs the question log, so a missing or unreachable
// database disables logging rather than preventing startup.
func initPostgres() *pgxpool.Pool {
	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Println("DATABASE_URL not set; question logging disabled")
		return nil
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		log.Printf("Warning: Failed to initialize Postgres: %v; question logging disabled", err)
		return nil
	}
	if err := pool.Ping(context.Background()); err != nil {
		log.Printf("Warning: Postgres unreachable: %v; question logging disabled", err)
		pool.Close()
		return nil
	}

	log.Println("Postgres connection established")
	return pool
}

// initGenerator creates the Gemini generator, or nil when no API key is
// configured
func initGenerator() service.Generator {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_AI_API_KEY")
	}
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set; answers degrade to static fallback when the knowledge base misses")
		return nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		log.Printf("Warning: Failed to initialize Gemini: %v; answers degrade to static fallback", err)
		return nil
	}

	log.Println("Gemini client initialized")
	return service.NewGeminiGenerator(client, os.Getenv("GEMINI_MODEL"))
}

func cacheCapacityFromEnv() int {
	if v := os.Getenv("CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("Warning: invalid CACHE_CAPACITY %q, using default", v)
	}
	return cache.DefaultCapacity
}

// corsMiddleware opens the API to all origins
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
