package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/armctay85/FitMunch-sub002/internal/app"
	"github.com/armctay85/FitMunch-sub002/internal/catalog"
	"github.com/armctay85/FitMunch-sub002/internal/config"
	"github.com/armctay85/FitMunch-sub002/internal/database"
	"github.com/armctay85/FitMunch-sub002/internal/llm"
	"github.com/armctay85/FitMunch-sub002/internal/metrics"
	"github.com/armctay85/FitMunch-sub002/internal/pantry"
	"github.com/armctay85/FitMunch-sub002/internal/planner"
	"github.com/armctay85/FitMunch-sub002/internal/pricefeed"
	"github.com/armctay85/FitMunch-sub002/internal/server"
	"github.com/armctay85/FitMunch-sub002/internal/shopping"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	textGen, err := newTextGenerator(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
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

	application := app.NewApp(
		mealPlanner,
		builder,
		priceCatalog,
		metricsStore,
		cfg,
		db,
		planRepo,
		listRepo,
		pantryRepo,
		priceRepo,
	)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		srv := server.NewServer(builder, mealPlanner, planRepo, listRepo, pantryRepo, metricsStore, filepath.Dir(cfg.DatabasePath))
		runHTTPServer(cfg.HTTPAddr, srv.Router())
	case "plan":
		if len(os.Args) < 3 {
			fmt.Println("Usage: fitmunch plan \"<goal>\"")
			os.Exit(1)
		}
		if err := application.GenerateMealPlan(ctx, os.Args[2]); err != nil {
			log.Fatalf("Plan generation failed: %v", err)
		}
	case "shopping":
		if err := application.ShowLatestList(ctx); err != nil {
			log.Fatalf("Shopping list failed: %v", err)
		}
	case "refresh-prices":
		if err := application.RefreshPrices(ctx); err != nil {
			log.Fatalf("Price refresh failed: %v", err)
		}
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		if err := application.CleanupMetrics(*days); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func newTextGenerator(ctx context.Context, cfg *config.Config) (llm.TextGenerator, error) {
	switch cfg.LLMProvider {
	case "gemini":
		return llm.NewGeminiClient(ctx, cfg)
	default:
		return llm.NewAnthropicClient(cfg), nil
	}
}

func runHTTPServer(addr string, handler http.Handler) {
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		log.Printf("FitMunch API listening on %s", addr)
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

func printUsage() {
	fmt.Println("Usage: fitmunch <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  serve              Run the HTTP API server")
	fmt.Println("  plan \"<goal>\"      Generate a meal plan and shopping list")
	fmt.Println("  shopping           Rebuild the shopping list from the latest plan")
	fmt.Println("  refresh-prices     Pull current prices from the configured feed")
	fmt.Println("  metrics-cleanup    Remove old metric records")
}
