package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/armctay85/FitMunch-sub002/internal/catalog"
	"github.com/armctay85/FitMunch-sub002/internal/config"
	"github.com/armctay85/FitMunch-sub002/internal/database"
	"github.com/armctay85/FitMunch-sub002/internal/metrics"
	"github.com/armctay85/FitMunch-sub002/internal/pantry"
	"github.com/armctay85/FitMunch-sub002/internal/planner"
	"github.com/armctay85/FitMunch-sub002/internal/pricefeed"
	"github.com/armctay85/FitMunch-sub002/internal/shopping"
)

// defaultUserID identifies the CLI owner in the single-user repositories.
const defaultUserID = "cli"

// App holds the application's dependencies.
type App struct {
	mealPlanner  *planner.Planner
	builder      *shopping.Builder
	priceCatalog *catalog.Catalog
	metricsStore *metrics.Store
	cfg          *config.Config

	db         *database.DB
	planRepo   *planner.PlanRepository
	listRepo   *shopping.Repository
	pantryRepo *pantry.Repository
	priceRepo  *pricefeed.Repository
}

// NewApp creates and initializes a new App instance.
func NewApp(
	mealPlanner *planner.Planner,
	builder *shopping.Builder,
	priceCatalog *catalog.Catalog,
	metricsStore *metrics.Store,
	cfg *config.Config,
	db *database.DB,
	planRepo *planner.PlanRepository,
	listRepo *shopping.Repository,
	pantryRepo *pantry.Repository,
	priceRepo *pricefeed.Repository,
) *App {
	return &App{
		mealPlanner:  mealPlanner,
		builder:      builder,
		priceCatalog: priceCatalog,
		metricsStore: metricsStore,
		cfg:          cfg,
		db:           db,
		planRepo:     planRepo,
		listRepo:     listRepo,
		pantryRepo:   pantryRepo,
		priceRepo:    priceRepo,
	}
}

// GenerateMealPlan creates a meal plan for the request, stores it, and
// prints the plan plus its shopping list.
func (a *App) GenerateMealPlan(ctx context.Context, request string) error {
	fmt.Printf("Generating meal plan for: \"%s\"...\n", request)

	plan, meta, err := a.mealPlanner.GeneratePlan(ctx, planner.PlanRequest{
		UserID: defaultUserID,
		Goal:   request,
	})

	if mErr := a.metricsStore.RecordMeta(meta); mErr != nil {
		log.Printf("Warning: failed to record metrics: %v", mErr)
	}

	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	var planID int64
	planJSON, err := json.Marshal(plan)
	if err != nil {
		log.Printf("Warning: failed to marshal meal plan to JSON for saving: %v", err)
	} else {
		planID, err = a.planRepo.Save(ctx, defaultUserID, planJSON)
		if err != nil {
			log.Printf("Warning: failed to save meal plan: %v", err)
		}
	}

	fmt.Println("\n=== MEAL PLAN ===")
	printPlan(plan)

	owned, err := a.pantryRepo.List(ctx, defaultUserID)
	if err != nil {
		log.Printf("Warning: failed to load pantry, building list without exclusions: %v", err)
	}

	list, err := a.builder.Build(plan, owned)
	if err != nil {
		return fmt.Errorf("failed to build shopping list: %w", err)
	}

	if planID != 0 {
		if _, err := a.listRepo.Save(ctx, defaultUserID, planID, list); err != nil {
			log.Printf("Warning: failed to save shopping list: %v", err)
		}
	}

	fmt.Println("\n=== SHOPPING LIST ===")
	printList(list)

	return nil
}

// ShowLatestList rebuilds and prints the shopping list from the most
// recently stored meal plan.
func (a *App) ShowLatestList(ctx context.Context) error {
	stored, err := a.planRepo.LatestByUserID(ctx, defaultUserID)
	if err != nil {
		return fmt.Errorf("failed to load latest plan: %w", err)
	}
	if stored == nil {
		fmt.Println("No meal plan found. Generate one with the plan command first.")
		return nil
	}

	plan := &shopping.MealPlan{}
	if err := json.Unmarshal(stored.PlanData, plan); err != nil {
		return fmt.Errorf("failed to parse stored plan: %w", err)
	}

	owned, err := a.pantryRepo.List(ctx, defaultUserID)
	if err != nil {
		log.Printf("Warning: failed to load pantry, building list without exclusions: %v", err)
	}

	list, err := a.builder.Build(plan, owned)
	if err != nil {
		return fmt.Errorf("failed to build shopping list: %w", err)
	}

	printList(list)
	return nil
}

// RefreshPrices pulls current prices for every catalog key from the
// configured feed and applies stored overrides to the catalog.
func (a *App) RefreshPrices(ctx context.Context) error {
	if a.cfg.PriceFeedSearchURL == "" {
		return fmt.Errorf("FITMUNCH_PRICE_FEED_URL environment variable not set")
	}

	importer := pricefeed.NewImporter(a.cfg.PriceFeedSearchURL, a.priceRepo)

	updated, err := importer.Refresh(ctx, a.priceCatalog.Keys())
	if err != nil {
		return fmt.Errorf("failed to refresh prices: %w", err)
	}
	fmt.Printf("Refreshed %d prices from the feed.\n", updated)

	if err := pricefeed.Apply(ctx, a.priceCatalog, a.priceRepo); err != nil {
		return fmt.Errorf("failed to apply price overrides: %w", err)
	}
	return nil
}

// CleanupMetrics deletes execution metrics older than the given number of days.
func (a *App) CleanupMetrics(olderThanDays int) error {
	removed, err := a.metricsStore.Cleanup(olderThanDays)
	if err != nil {
		return fmt.Errorf("failed to clean up metrics: %w", err)
	}
	fmt.Printf("Removed %d metric rows older than %d days.\n", removed, olderThanDays)
	return nil
}

func printPlan(plan *shopping.MealPlan) {
	for _, day := range plan.Days {
		fmt.Printf("%s\n", day.Label)
		slots := []struct {
			label string
			meal  *shopping.Meal
		}{
			{"Breakfast", day.Meals.Breakfast},
			{"Lunch", day.Meals.Lunch},
			{"Dinner", day.Meals.Dinner},
			{"Snack", day.Meals.Snack},
		}
		for _, s := range slots {
			if s.meal == nil {
				continue
			}
			fmt.Printf("  % -10s %s\n", s.label+":", s.meal.Name)
		}
	}
}

func printList(list *shopping.List) {
	for _, aisle := range list.AisleOrder {
		fmt.Printf("%s\n", aisle)
		for _, item := range list.ByAisle[aisle] {
			fmt.Printf("  - %s %s ($%.2f/%s)\n", item.Name, item.Qty, item.EstimatedPrice, item.Unit)
		}
	}
	fmt.Printf("\n%d items, estimated total $%.2f\n", list.ItemCount, list.TotalEstimated)
}
