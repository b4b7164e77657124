package planner

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// StoredPlan is a persisted meal plan.
type StoredPlan struct {
	ID        int64
	UserID    string
	PlanData  []byte // Raw JSON of the meal plan
	CreatedAt time.Time
}

// PlanRepository is a database-backed repository for meal plans.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Save inserts a new meal plan and returns its ID.
func (r *PlanRepository) Save(ctx context.Context, userID string, planData []byte) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO meal_plans (user_id, plan_data, created_at) VALUES (?, ?, ?)`,
		userID, planData, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert meal plan: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read meal plan id: %w", err)
	}
	return id, nil
}

// LatestByUserID retrieves the most recent meal plan for a user.
// Returns nil without error when the user has none.
func (r *PlanRepository) LatestByUserID(ctx context.Context, userID string) (*StoredPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, plan_data, created_at FROM meal_plans WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		userID,
	)

	var plan StoredPlan
	if err := row.Scan(&plan.ID, &plan.UserID, &plan.PlanData, &plan.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest meal plan for user %s: %w", userID, err)
	}
	return &plan, nil
}

// ListRecentByUserID retrieves the N most recent meal plans for a given user.
func (r *PlanRepository) ListRecentByUserID(ctx context.Context, userID string, limit int) ([]StoredPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, plan_data, created_at FROM meal_plans WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent meal plans for user %s: %w", userID, err)
	}
	defer rows.Close()

	var plans []StoredPlan
	for rows.Next() {
		var plan StoredPlan
		if err := rows.Scan(&plan.ID, &plan.UserID, &plan.PlanData, &plan.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan row: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}
