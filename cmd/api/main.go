package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/assessment-gateway/internal/config"
	"alfredoptarigan/assessment-gateway/internal/handlers"
	"alfredoptarigan/assessment-gateway/internal/repositories"
	"alfredoptarigan/assessment-gateway/internal/server"
	"alfredoptarigan/assessment-gateway/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize completion provider
	provider, err := services.NewCompletionProvider(ctx, cfg.Completion)
	if err != nil {
		log.Fatalf("❌ Failed to initialize completion provider: %v", err)
	}
	log.Printf("✅ Completion provider %q initialized with model %s", cfg.Completion.Provider, provider.ModelID())

	// Initialize services
	generator, err := services.NewQuestionGenerator(provider, services.GeneratorOptions{
		MaxTokens:    cfg.Completion.MaxTokens,
		Temperature:  cfg.Completion.Temperature,
		MaxQuestions: cfg.Generation.MaxQuestions,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize question generator: %v", err)
	}

	evaluator := services.NewEvaluatorClient(cfg.Evaluator.BaseURL, cfg.Evaluator.Timeout)
	log.Printf("✅ Evaluator client targeting %s", cfg.Evaluator.BaseURL)

	// Initialize handlers
	h := server.Handlers{
		Evaluation: handlers.NewEvaluationHandler(evaluator),
		Generation: handlers.NewGenerationHandler(generator),
		ModelID:    provider.ModelID(),
	}

	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}

		analytics := services.NewAnalyticsService(
			repositories.NewAssignmentRepository(db),
			repositories.NewSubmissionRepository(db),
		)
		h.Analytics = handlers.NewAnalyticsHandler(analytics)
		log.Println("✅ Analytics API enabled")
	} else {
		log.Println("⚠️  DB_ENABLED is false, analytics API disabled")
	}
	log.Println("✅ Handlers initialized")

	app := server.New(cfg, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
