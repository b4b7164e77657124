package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/armctay85/FitMunch-sub002/internal/catalog"
	"github.com/armctay85/FitMunch-sub002/internal/database"
	"github.com/armctay85/FitMunch-sub002/internal/llm"
	"github.com/armctay85/FitMunch-sub002/internal/pantry"
	"github.com/armctay85/FitMunch-sub002/internal/planner"
	"github.com/armctay85/FitMunch-sub002/internal/shopping"
)

type mockTextGenerator struct {
	response llm.ContentResponse
	err      error
}

func (m *mockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	return m.response, m.err
}

const validPlanJSON = `{
	"name": "Test Plan",
	"days": [
		{
			"label": "Monday",
			"meals": {
				"breakfast": {
					"name": "Scrambled Eggs",
					"ingredients": [{"item": "Eggs", "qty": "3"}]
				}
			}
		}
	]
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "server_test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gen := &mockTextGenerator{response: llm.ContentResponse{Content: validPlanJSON}}

	return NewServer(
		shopping.NewBuilder(catalog.Default()),
		planner.NewPlanner(gen),
		planner.NewPlanRepository(db.SQL),
		shopping.NewRepository(db.SQL),
		pantry.NewRepository(db.SQL),
		nil,
		t.TempDir(),
	)
}

func TestHandleShoppingList(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	t.Run("builds a list from a valid plan", func(t *testing.T) {
		body := `{"plan": ` + validPlanJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shopping-list", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var list shopping.List
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if list.ItemCount != 1 {
			t.Errorf("expected 1 item, got %d", list.ItemCount)
		}
		if list.TotalEstimated != 5.50 {
			t.Errorf("expected total 5.50, got %.2f", list.TotalEstimated)
		}
	})

	t.Run("rejects a request without a plan", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shopping-list", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shopping-list", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})

	t.Run("excludes pantry items for a known user", func(t *testing.T) {
		ctx := context.Background()
		if err := srv.pantryRepo.Replace(ctx, "user-1", []string{"eggs"}); err != nil {
			t.Fatalf("failed to seed pantry: %v", err)
		}

		body := `{"user_id": "user-1", "plan": ` + validPlanJSON + `}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/shopping-list", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var list shopping.List
		if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if list.ItemCount != 0 {
			t.Errorf("expected pantry eggs to be excluded, got %d items", list.ItemCount)
		}
	})
}

func TestHandleGeneratePlan(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	t.Run("generates and saves a plan", func(t *testing.T) {
		body := `{"user_id": "user-1", "goal": "muscle gain", "days": 1}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp generatePlanResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if resp.Plan == nil || len(resp.Plan.Days) != 1 {
			t.Fatalf("expected a one-day plan, got %+v", resp.Plan)
		}
		if resp.PlanID == 0 {
			t.Error("expected the saved plan id to be returned")
		}
	})

	t.Run("requires a goal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/plans", strings.NewReader(`{"days": 1}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestHandlePantry(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	t.Run("replaces and returns pantry items", func(t *testing.T) {
		body, _ := json.Marshal(pantryResponse{Items: []string{"rice", "olive oil"}})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/pantry/user-2", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
		}

		req = httptest.NewRequest(http.MethodGet, "/api/v1/pantry/user-2", nil)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var resp pantryResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to parse response: %v", err)
		}
		if len(resp.Items) != 2 {
			t.Errorf("expected 2 pantry items, got %v", resp.Items)
		}
	})

	t.Run("returns an empty list for an unknown user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/pantry/nobody", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"items":[]`) {
			t.Errorf("expected empty items array, got %s", rec.Body.String())
		}
	})
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("expected ok status in body, got %s", rec.Body.String())
	}
}
