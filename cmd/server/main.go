package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"enableboard/internal/cache"
	"enableboard/internal/config"
	"enableboard/internal/dataset"
	"enableboard/internal/scoring"
	"enableboard/internal/service"
	"enableboard/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Model:    %s", aiConfig.Model)
	log.Printf("  BaseURL:  %s", aiConfig.BaseURL)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:  configured ✓")
	} else {
		log.Println("  API Key:  NOT SET (using canned narration)")
	}
	log.Printf("Coverage: model=%s summaryWindow=%dd minVisible=%d%%",
		cfg.CoverageModel, cfg.SummaryWindowDays, cfg.MinVisiblePct)

	// Thread state: Redis when configured, in-memory otherwise
	var threads cache.ThreadCache
	if cfg.RedisURI != "" {
		redisAddr := cfg.RedisURI
		// Remove redis:// prefix if present
		if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
			redisAddr = redisAddr[8:]
		}
		rdb := redis.NewClient(&redis.Options{
			Addr: redisAddr,
		})
		defer rdb.Close()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Fatal("Failed to ping Redis:", err)
		}
		log.Println("Connected to Redis")
		threads = cache.NewThreadCache(rdb)
	} else {
		log.Println("REDIS_URI not set, keeping thread state in memory")
		threads = cache.NewMemoryThreadCache()
	}

	// Initialize services
	loader := dataset.NewLoader(cfg.DataDir, cfg.DataBaseURL)
	calc := scoring.NewCalculator(scoring.DefaultScoreWeights())
	narrator := service.NewOpenAINarrator(aiConfig)
	authSvc := service.NewAuthService()
	briefSvc := service.NewBriefService(calc, scoring.CreditModel(cfg.CoverageModel), cfg.MinVisiblePct)
	askSvc := service.NewAskService(loader, briefSvc, narrator, threads)
	summarySvc := service.NewSummaryService(loader, calc, narrator, cfg)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		AskService:     askSvc,
		SummaryService: summarySvc,
		BriefService:   briefSvc,
		Loader:         loader,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST /v1/ask")
		log.Println("  POST /v1/summary")
		log.Println("  GET  /v1/brief")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
