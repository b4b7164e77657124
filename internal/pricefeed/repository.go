package pricefeed

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Override is a scraped price for one catalog key.
type Override struct {
	Key       string
	Price     float64
	Unit      string
	Source    string
	UpdatedAt time.Time
}

// Repository persists price overrides.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new price override repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Upsert stores an override, replacing any previous value for the key.
func (r *Repository) Upsert(ctx context.Context, o Override) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO price_overrides (key, price, unit, source, updated_at) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (key) DO UPDATE SET price = excluded.price, unit = excluded.unit,
		 source = excluded.source, updated_at = excluded.updated_at`,
		o.Key, o.Price, o.Unit, o.Source, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert price override: %w", err)
	}
	return nil
}

// All returns every stored override.
func (r *Repository) All(ctx context.Context) ([]Override, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT key, price, unit, source, updated_at FROM price_overrides ORDER BY key`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query price overrides: %w", err)
	}
	defer rows.Close()

	var overrides []Override
	for rows.Next() {
		var o Override
		if err := rows.Scan(&o.Key, &o.Price, &o.Unit, &o.Source, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan price override: %w", err)
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}
