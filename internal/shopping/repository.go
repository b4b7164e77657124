package shopping

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Repository handles persistence of generated shopping lists.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new shopping list repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save stores a shopping list for a user and returns its ID.
func (r *Repository) Save(ctx context.Context, userID string, mealPlanID int64, list *List) (int64, error) {
	data, err := json.Marshal(list)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal shopping list: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO shopping_lists (user_id, meal_plan_id, list_data, created_at) VALUES (?, ?, ?, ?)`,
		userID, mealPlanID, string(data), time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert shopping list: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read shopping list id: %w", err)
	}
	return id, nil
}

// LatestByUserID retrieves the most recent shopping list for a user.
// Returns nil without error when the user has none.
func (r *Repository) LatestByUserID(ctx context.Context, userID string) (*List, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT list_data FROM shopping_lists WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		userID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest shopping list: %w", err)
	}

	var list List
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shopping list: %w", err)
	}
	return &list, nil
}

// DeleteByMealPlanID deletes any shopping lists derived from a meal plan.
func (r *Repository) DeleteByMealPlanID(ctx context.Context, mealPlanID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM shopping_lists WHERE meal_plan_id = ?`, mealPlanID)
	return err
}
