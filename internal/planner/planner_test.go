package planner

import (
	"context"
	"strings"
	"testing"

	"github.com/armctay85/FitMunch-sub002/internal/llm"
)

type MockTextGenerator struct {
	Response    string
	LastPrompt  string
	ShouldError bool
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (llm.ContentResponse, error) {
	m.LastPrompt = prompt
	if m.ShouldError {
		return llm.ContentResponse{}, context.DeadlineExceeded
	}
	return llm.ContentResponse{Content: m.Response}, nil
}

const validPlanJSON = `{
	"name": "Lean bulk week",
	"days": [
		{
			"label": "Day 1",
			"meals": {
				"breakfast": {"name": "Scramble", "ingredients": [{"item": "Eggs", "qty": "3"}]},
				"lunch": {"name": "Chicken bowl", "ingredients": [{"item": "Chicken Breast", "qty": "200g"}, {"item": "Brown Rice", "qty": "1 cup"}]},
				"dinner": {"name": "Salmon", "ingredients": [{"item": "Salmon", "qty": "1 fillet"}]},
				"snack": {"name": "Fruit", "ingredients": [{"item": "Banana", "qty": "1"}]}
			}
		}
	]
}`

func TestGeneratePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock := &MockTextGenerator{Response: validPlanJSON}
		p := NewPlanner(mock)

		plan, meta, err := p.GeneratePlan(ctx, PlanRequest{
			UserID: "u1",
			Goal:   "high protein cut",
			Days:   1,
		})
		if err != nil {
			t.Fatalf("GeneratePlan failed: %v", err)
		}
		if plan.Name != "Lean bulk week" {
			t.Errorf("Expected plan name 'Lean bulk week', got '%s'", plan.Name)
		}
		if len(plan.Days) != 1 {
			t.Fatalf("Expected 1 day, got %d", len(plan.Days))
		}
		if plan.Days[0].Meals.Lunch == nil || len(plan.Days[0].Meals.Lunch.Ingredients) != 2 {
			t.Errorf("Expected 2 lunch ingredients, got %+v", plan.Days[0].Meals.Lunch)
		}
		if meta.AgentName != "Planner" {
			t.Errorf("Expected agent name 'Planner', got '%s'", meta.AgentName)
		}
		if !strings.Contains(mock.LastPrompt, "high protein cut") {
			t.Error("Expected the user goal to appear in the prompt")
		}
	})

	t.Run("DefaultsToSevenDays", func(t *testing.T) {
		mock := &MockTextGenerator{Response: validPlanJSON}
		p := NewPlanner(mock)

		if _, _, err := p.GeneratePlan(ctx, PlanRequest{Goal: "maintenance"}); err != nil {
			t.Fatalf("GeneratePlan failed: %v", err)
		}
		if !strings.Contains(mock.LastPrompt, "7-day meal plan") {
			t.Errorf("Expected a 7-day prompt, got: %s", mock.LastPrompt)
		}
	})

	t.Run("LLMError", func(t *testing.T) {
		p := NewPlanner(&MockTextGenerator{ShouldError: true})

		_, _, err := p.GeneratePlan(ctx, PlanRequest{Goal: "anything"})
		if err == nil {
			t.Fatal("Expected an error from the LLM, got nil")
		}
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		p := NewPlanner(&MockTextGenerator{Response: "this is not json"})

		_, _, err := p.GeneratePlan(ctx, PlanRequest{Goal: "anything"})
		if err == nil {
			t.Fatal("Expected an error for invalid JSON, got nil")
		}
		if !strings.Contains(err.Error(), "failed to parse meal plan JSON") {
			t.Errorf("Expected a JSON parse error, got: %v", err)
		}
	})

	t.Run("PlanWithoutDays", func(t *testing.T) {
		p := NewPlanner(&MockTextGenerator{Response: `{"name": "empty"}`})

		_, _, err := p.GeneratePlan(ctx, PlanRequest{Goal: "anything"})
		if err == nil {
			t.Fatal("Expected an error for a plan without days, got nil")
		}
	})
}
