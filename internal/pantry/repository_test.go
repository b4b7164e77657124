package pantry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/armctay85/FitMunch-sub002/internal/database"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "pantry_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestPantryRepository(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("EmptyList", func(t *testing.T) {
		items, err := repo.List(ctx, "u1")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Expected empty pantry, got %v", items)
		}
	})

	t.Run("AddAndList", func(t *testing.T) {
		if err := repo.Add(ctx, "u1", "olive oil"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if err := repo.Add(ctx, "u1", "rice"); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		// Duplicate add is a no-op
		if err := repo.Add(ctx, "u1", "rice"); err != nil {
			t.Fatalf("Duplicate add failed: %v", err)
		}

		items, err := repo.List(ctx, "u1")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(items) != 2 || items[0] != "olive oil" || items[1] != "rice" {
			t.Errorf("Expected [olive oil rice], got %v", items)
		}
	})

	t.Run("PerUserIsolation", func(t *testing.T) {
		items, err := repo.List(ctx, "u2")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("Expected u2's pantry to be empty, got %v", items)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		if err := repo.Remove(ctx, "u1", "rice"); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		items, _ := repo.List(ctx, "u1")
		if len(items) != 1 || items[0] != "olive oil" {
			t.Errorf("Expected [olive oil], got %v", items)
		}
		// Removing an unknown item is fine
		if err := repo.Remove(ctx, "u1", "unicorn dust"); err != nil {
			t.Errorf("Expected no error removing unknown item, got %v", err)
		}
	})

	t.Run("Replace", func(t *testing.T) {
		if err := repo.Replace(ctx, "u1", []string{"eggs", "  ", "butter"}); err != nil {
			t.Fatalf("Replace failed: %v", err)
		}
		items, _ := repo.List(ctx, "u1")
		if len(items) != 2 || items[0] != "eggs" || items[1] != "butter" {
			t.Errorf("Expected [eggs butter], got %v", items)
		}
	})

	t.Run("AddEmptyName", func(t *testing.T) {
		if err := repo.Add(ctx, "u1", "   "); err == nil {
			t.Error("Expected an error adding a blank item name")
		}
	})
}
