package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"tenfold/internal/auth"
	"tenfold/internal/catalog"
	"tenfold/internal/config"
	"tenfold/internal/domain/services"
	"tenfold/internal/handler"
	"tenfold/internal/middleware"
	"tenfold/internal/repository/postgres"
	"tenfold/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" || cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.LogDir != "" {
		f, err := config.SetupLogFile(cfg.LogDir, 10)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
	)

	// Create JWT verifier for the external identity provider
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	generationRepo := postgres.NewGenerationRepository(repoConfig)
	flashcardRepo := postgres.NewFlashcardRepository(repoConfig)
	errorLogRepo := postgres.NewErrorLogRepository(repoConfig)
	identityRepo := postgres.NewIdentityRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Model catalog (embedded YAML)
	modelCatalog, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load model catalog: %v", err)
	}

	// Provider admin client, only when the service role key is configured
	var providerAdmin services.ProviderAdmin
	if cfg.AuthServiceKey != "" && cfg.AuthIssuerURL != "" {
		providerAdmin = auth.NewAdminClient(cfg.AuthIssuerURL, cfg.AuthServiceKey)
	}

	// Create services
	generationService := service.NewGenerationService(generationRepo, modelCatalog, logger)
	flashcardService := service.NewFlashcardService(flashcardRepo, generationRepo, txManager, logger)
	errorLogService := service.NewErrorLogService(errorLogRepo, logger)
	identityService := service.NewIdentityService(identityRepo, providerAdmin, logger)

	// Create handlers
	generationHandler := handler.NewGenerationHandler(generationService, logger)
	flashcardHandler := handler.NewFlashcardHandler(flashcardService, logger)
	errorLogHandler := handler.NewErrorLogHandler(errorLogService, logger)
	identityHandler := handler.NewIdentityHandler(identityService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", flashcardHandler.HealthCheck)

	// Generation routes
	mux.HandleFunc("POST /api/generations", generationHandler.CreateGeneration)
	mux.HandleFunc("GET /api/generations", generationHandler.ListGenerations)
	mux.HandleFunc("GET /api/generations/{id}", generationHandler.GetGeneration)
	mux.HandleFunc("PATCH /api/generations/{id}", generationHandler.UpdateAcceptedCounts)
	mux.HandleFunc("DELETE /api/generations/{id}", generationHandler.DeleteGeneration)

	// Flashcard routes
	mux.HandleFunc("POST /api/flashcards", flashcardHandler.CreateFlashcard)
	mux.HandleFunc("POST /api/flashcards/batch", flashcardHandler.CreateFlashcardBatch)
	mux.HandleFunc("GET /api/flashcards", flashcardHandler.ListFlashcards)
	mux.HandleFunc("GET /api/flashcards/{id}", flashcardHandler.GetFlashcard)
	mux.HandleFunc("PATCH /api/flashcards/{id}", flashcardHandler.UpdateFlashcard)
	mux.HandleFunc("DELETE /api/flashcards/{id}", flashcardHandler.DeleteFlashcard)

	// Generation error log routes
	mux.HandleFunc("POST /api/generation-errors", errorLogHandler.LogGenerationError)
	mux.HandleFunc("GET /api/generation-errors", errorLogHandler.ListGenerationErrorLogs)
	mux.HandleFunc("DELETE /api/generation-errors/{id}", errorLogHandler.DeleteGenerationErrorLog)

	// Account-data deletion (cascades over everything the caller owns)
	mux.HandleFunc("DELETE /api/users/me", identityHandler.DeleteMe)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Auth → Routes
	httpHandler = middleware.Auth(jwtVerifier, identityService, logger)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)
	httpHandler = middleware.RequestID()(httpHandler)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
