package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/job-analyzer/internal/config"
	"alfredoptarigan/job-analyzer/internal/handlers"
	"alfredoptarigan/job-analyzer/internal/logging"
	"alfredoptarigan/job-analyzer/internal/repositories"
	"alfredoptarigan/job-analyzer/internal/server"
	"alfredoptarigan/job-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logging.New(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Info("✅ Config loaded successfully")

	ctx := context.Background()

	// Analysis history is optional
	var analysisRepo repositories.AnalysisRepository
	if cfg.History.Enabled {
		db, err := config.InitDatabase(cfg, log)
		if err != nil {
			log.Fatalf("❌ Failed to initialize database: %v", err)
		}
		analysisRepo = repositories.NewAnalysisRepository(db)
		log.Info("✅ Analysis history enabled")
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini, log)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}

	// Initialize services
	analysisClient := services.NewAnalysisClient(geminiService, cfg.Gemini.MaxContextLength, log)
	analyzerService := services.NewAnalyzerService(
		services.NewPDFParserService(),
		analysisClient,
		analysisRepo,
		log,
	)
	uploadService := services.NewUploadService(cfg.Storage.MaxFileSize)
	log.Info("✅ Services initialized successfully")

	// Initialize handlers
	h := server.Handlers{
		Analyze: handlers.NewAnalyzeHandler(analyzerService, uploadService, log),
	}
	if analysisRepo != nil {
		h.History = handlers.NewHistoryHandler(analysisRepo, log)
	}

	// Multipart overhead on top of the file itself
	app := server.New(server.Options{
		BodyLimit:     int(cfg.Storage.MaxFileSize) + 1<<20,
		AccessLogging: true,
	}, h)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
