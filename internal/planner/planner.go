package planner

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/armctay85/FitMunch-sub002/internal/llm"
	"github.com/armctay85/FitMunch-sub002/internal/shared"
	"github.com/armctay85/FitMunch-sub002/internal/shopping"
)

//go:embed plan_prompt.md
var planPrompt string

// PlanRequest describes what the user wants from a meal plan.
type PlanRequest struct {
	UserID             string
	Goal               string
	DietaryPreferences []string
	Days               int
	DailyCalories      int
}

// Planner generates meal plans with an LLM.
type Planner struct {
	textGen llm.TextGenerator
}

// NewPlanner creates a new Planner instance.
func NewPlanner(textGen llm.TextGenerator) *Planner {
	return &Planner{textGen: textGen}
}

// GeneratePlan asks the LLM for a structured meal plan matching the request.
func (p *Planner) GeneratePlan(ctx context.Context, req PlanRequest) (*shopping.MealPlan, shared.AgentMeta, error) {
	start := time.Now()

	if req.Days <= 0 {
		req.Days = 7
	}

	prompt, err := buildPlanPrompt(req)
	if err != nil {
		return nil, shared.AgentMeta{AgentName: "Planner"}, err
	}

	resp, err := p.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, shared.AgentMeta{AgentName: "Planner"}, fmt.Errorf("failed to generate meal plan from LLM: %w", err)
	}

	meta := shared.AgentMeta{
		AgentName: "Planner",
		Usage:     resp.Usage,
		Latency:   time.Since(start),
	}

	plan := &shopping.MealPlan{}
	if err := json.Unmarshal([]byte(resp.Content), plan); err != nil {
		return nil, meta, fmt.Errorf("failed to parse meal plan JSON: %w. Response: %s", err, resp.Content)
	}

	if plan.Days == nil {
		return nil, meta, fmt.Errorf("LLM returned a plan without days. Response: %s", resp.Content)
	}

	return plan, meta, nil
}

func buildPlanPrompt(req PlanRequest) (string, error) {
	tmpl, err := template.New("plan").Parse(planPrompt)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, req); err != nil {
		return "", err
	}

	return buf.String(), nil
}
