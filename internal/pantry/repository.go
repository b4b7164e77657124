package pantry

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Repository stores the items a user already owns. The item names feed the
// shopping list builder's exclusion filter.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new pantry repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Add records that a user owns an item. Adding the same item twice is a no-op.
func (r *Repository) Add(ctx context.Context, userID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("pantry item name is empty")
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pantry_items (user_id, name, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (user_id, name) DO NOTHING`,
		userID, name, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to add pantry item: %w", err)
	}
	return nil
}

// Remove deletes an owned item. Removing an unknown item is not an error.
func (r *Repository) Remove(ctx context.Context, userID, name string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM pantry_items WHERE user_id = ? AND name = ?`,
		userID, strings.TrimSpace(name),
	)
	if err != nil {
		return fmt.Errorf("failed to remove pantry item: %w", err)
	}
	return nil
}

// List returns the user's owned item names in insertion order.
func (r *Repository) List(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name FROM pantry_items WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pantry items: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan pantry item: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Replace overwrites the user's pantry with the given item names.
func (r *Repository) Replace(ctx context.Context, userID string, names []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin pantry transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pantry_items WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear pantry: %w", err)
	}

	now := time.Now().UTC()
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO pantry_items (user_id, name, created_at) VALUES (?, ?, ?)
			 ON CONFLICT (user_id, name) DO NOTHING`,
			userID, name, now,
		); err != nil {
			return fmt.Errorf("failed to insert pantry item %q: %w", name, err)
		}
	}

	return tx.Commit()
}
