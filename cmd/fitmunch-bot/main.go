package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/armctay85/FitMunch-sub002/internal/catalog"
	"github.com/armctay85/FitMunch-sub002/internal/config"
	"github.com/armctay85/FitMunch-sub002/internal/database"
	"github.com/armctay85/FitMunch-sub002/internal/llm"
	"github.com/armctay85/FitMunch-sub002/internal/metrics"
	"github.com/armctay85/FitMunch-sub002/internal/pantry"
	"github.com/armctay85/FitMunch-sub002/internal/planner"
	"github.com/armctay85/FitMunch-sub002/internal/pricefeed"
	"github.com/armctay85/FitMunch-sub002/internal/shopping"
	"github.com/armctay85/FitMunch-sub002/internal/telegram"
)

func main() {
	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable not set")
	}

	ctx := context.Background()

	var textGen llm.TextGenerator
	switch cfg.LLMProvider {
	case "gemini":
		textGen, err = llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
	default:
		textGen = llm.NewAnthropicClient(cfg)
	}
	if closer, ok := textGen.(llm.Closer); ok {
		defer closer.Close()
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	planRepo := planner.NewPlanRepository(db.SQL)
	listRepo := shopping.NewRepository(db.SQL)
	pantryRepo := pantry.NewRepository(db.SQL)
	priceRepo := pricefeed.NewRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)

	priceCatalog := catalog.Default()
	if err := pricefeed.Apply(ctx, priceCatalog, priceRepo); err != nil {
		log.Printf("Warning: failed to apply stored price overrides: %v", err)
	}

	mealPlanner := planner.NewPlanner(textGen)
	builder := shopping.NewBuilder(priceCatalog)

	bot, err := telegram.NewBot(cfg, mealPlanner, builder, metricsStore, planRepo, listRepo, pantryRepo)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	bot.RegisterHandlers()

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: nil,
	}

	go func() {
		log.Printf("Telegram Bot Server listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
