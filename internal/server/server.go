package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/armctay85/FitMunch-sub002/internal/metrics"
	"github.com/armctay85/FitMunch-sub002/internal/pantry"
	"github.com/armctay85/FitMunch-sub002/internal/planner"
	"github.com/armctay85/FitMunch-sub002/internal/shopping"
)

// Server exposes the FitMunch API over HTTP. Authentication is out of
// scope; this is expected to sit behind the app's own gateway.
type Server struct {
	builder      *shopping.Builder
	mealPlanner  *planner.Planner
	planRepo     *planner.PlanRepository
	listRepo     *shopping.Repository
	pantryRepo   *pantry.Repository
	metricsStore *metrics.Store
	dataPath     string
}

// NewServer wires the API handlers. Repositories may be nil in tests that
// only exercise the stateless endpoints.
func NewServer(
	builder *shopping.Builder,
	mealPlanner *planner.Planner,
	planRepo *planner.PlanRepository,
	listRepo *shopping.Repository,
	pantryRepo *pantry.Repository,
	metricsStore *metrics.Store,
	dataPath string,
) *Server {
	return &Server{
		builder:      builder,
		mealPlanner:  mealPlanner,
		planRepo:     planRepo,
		listRepo:     listRepo,
		pantryRepo:   pantryRepo,
		metricsStore: metricsStore,
		dataPath:     dataPath,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plans", s.handleGeneratePlan)
		r.Post("/shopping-list", s.handleShoppingList)
		r.Get("/pantry/{userID}", s.handleGetPantry)
		r.Put("/pantry/{userID}", s.handlePutPantry)
	})

	return r
}

type generatePlanRequest struct {
	UserID             string   `json:"user_id"`
	Goal               string   `json:"goal"`
	DietaryPreferences []string `json:"dietary_preferences"`
	Days               int      `json:"days"`
	DailyCalories      int      `json:"daily_calories"`
}

type generatePlanResponse struct {
	PlanID int64              `json:"plan_id,omitempty"`
	Plan   *shopping.MealPlan `json:"plan"`
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Goal == "" {
		writeError(w, http.StatusBadRequest, "goal is required")
		return
	}

	plan, meta, err := s.mealPlanner.GeneratePlan(r.Context(), planner.PlanRequest{
		UserID:             req.UserID,
		Goal:               req.Goal,
		DietaryPreferences: req.DietaryPreferences,
		Days:               req.Days,
		DailyCalories:      req.DailyCalories,
	})

	if s.metricsStore != nil {
		if mErr := s.metricsStore.RecordMeta(meta); mErr != nil {
			log.Printf("Warning: failed to record metrics: %v", mErr)
		}
	}

	if err != nil {
		log.Printf("Plan generation failed: %v", err)
		writeError(w, http.StatusBadGateway, "plan generation failed")
		return
	}

	resp := generatePlanResponse{Plan: plan}
	if s.planRepo != nil && req.UserID != "" {
		planJSON, err := json.Marshal(plan)
		if err == nil {
			if id, err := s.planRepo.Save(r.Context(), req.UserID, planJSON); err != nil {
				log.Printf("Warning: failed to save meal plan: %v", err)
			} else {
				resp.PlanID = id
			}
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

type shoppingListRequest struct {
	UserID       string             `json:"user_id"`
	Plan         *shopping.MealPlan `json:"plan"`
	ExcludeOwned []string           `json:"exclude_owned"`
}

func (s *Server) handleShoppingList(w http.ResponseWriter, r *http.Request) {
	var req shoppingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	excludeOwned := req.ExcludeOwned
	if s.pantryRepo != nil && req.UserID != "" {
		owned, err := s.pantryRepo.List(r.Context(), req.UserID)
		if err != nil {
			log.Printf("Warning: failed to load pantry for %s: %v", req.UserID, err)
		} else {
			excludeOwned = append(excludeOwned, owned...)
		}
	}

	list, err := s.builder.Build(req.Plan, excludeOwned)
	if err != nil {
		if errors.Is(err, shopping.ErrInvalidPlan) {
			writeError(w, http.StatusBadRequest, "plan with a days sequence is required")
			return
		}
		log.Printf("Shopping list build failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to build shopping list")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

type pantryResponse struct {
	Items []string `json:"items"`
}

func (s *Server) handleGetPantry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	items, err := s.pantryRepo.List(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to list pantry for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "failed to load pantry")
		return
	}
	if items == nil {
		items = []string{}
	}
	writeJSON(w, http.StatusOK, pantryResponse{Items: items})
}

func (s *Server) handlePutPantry(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req pantryResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.pantryRepo.Replace(r.Context(), userID, req.Items); err != nil {
		log.Printf("Failed to replace pantry for %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "failed to save pantry")
		return
	}

	items, err := s.pantryRepo.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to reload pantry")
		return
	}
	writeJSON(w, http.StatusOK, pantryResponse{Items: items})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"sys":    metrics.GetSysHealth(s.dataPath),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
