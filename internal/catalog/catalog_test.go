package catalog

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	c := Default()

	t.Run("ExactKey", func(t *testing.T) {
		e := c.Lookup("chicken")
		if e.Price != 3.25 {
			t.Errorf("Expected price 3.25, got %.2f", e.Price)
		}
		if e.Aisle != "Meat & Seafood" {
			t.Errorf("Expected aisle 'Meat & Seafood', got '%s'", e.Aisle)
		}
	})

	t.Run("NameContainsKey", func(t *testing.T) {
		e := c.Lookup("Chicken Breast")
		if e.Price != 3.25 {
			t.Errorf("Expected 'Chicken Breast' to resolve via 'chicken', got price %.2f", e.Price)
		}
	})

	t.Run("KeyContainsFirstToken", func(t *testing.T) {
		// "choc" is not a catalog key, but the key "chocolate" contains it.
		e := c.Lookup("Choc chips")
		if e.Price != 5.00 || e.Aisle != "Pantry" {
			t.Errorf("Expected 'choc chips' to resolve via 'chocolate', got %+v", e)
		}
	})

	t.Run("PluralName", func(t *testing.T) {
		e := c.Lookup("Eggs (free range)")
		if e.Price != 5.50 {
			t.Errorf("Expected eggs at 5.50, got %.2f", e.Price)
		}
		if e.Aisle != "Dairy & Eggs" {
			t.Errorf("Expected aisle 'Dairy & Eggs', got '%s'", e.Aisle)
		}
	})

	t.Run("PunctuationStripped", func(t *testing.T) {
		e := c.Lookup("  Quick oats, 100% natural!  ")
		if e.Aisle != "Pantry" || e.Price != 4.00 {
			t.Errorf("Expected pantry oats at 4.00, got %+v", e)
		}
	})

	t.Run("SpecificKeyBeforeGeneric", func(t *testing.T) {
		e := c.Lookup("coconut milk")
		if e.Aisle != "Pantry" {
			t.Errorf("Expected 'coconut milk' in Pantry, got '%s'", e.Aisle)
		}
		e = c.Lookup("milk")
		if e.Aisle != "Dairy & Eggs" {
			t.Errorf("Expected plain 'milk' in Dairy & Eggs, got '%s'", e.Aisle)
		}
		e = c.Lookup("fish oil capsules")
		if e.Aisle != "Supplements" {
			t.Errorf("Expected 'fish oil' in Supplements, got '%s'", e.Aisle)
		}
	})

	t.Run("Fallback", func(t *testing.T) {
		e := c.Lookup("dragonfruit")
		if e != Fallback {
			t.Errorf("Expected fallback entry, got %+v", e)
		}
		if e.Price != 2.50 || e.Unit != "item" || e.Aisle != "Other" {
			t.Errorf("Unexpected fallback values: %+v", e)
		}
	})

	t.Run("NeverErrors", func(t *testing.T) {
		for _, name := range []string{"", "   ", "123!!", "ÿüñïçødé"} {
			e := c.Lookup(name)
			if e.Price <= 0 {
				t.Errorf("Expected a positive price for %q, got %+v", name, e)
			}
		}
	})

	t.Run("CrossMatchLeniency", func(t *testing.T) {
		// The substring rules are deliberately loose: "tuna steak" matches
		// the canned "tuna" key. Documented behavior, not a bug to fix.
		e := c.Lookup("tuna steak")
		if e.Price != 1.80 {
			t.Errorf("Expected loose match on 'tuna', got %+v", e)
		}
	})
}

func TestDefaultKeysAreCanonical(t *testing.T) {
	for _, key := range Default().Keys() {
		for _, r := range key {
			if !((r >= 'a' && r <= 'z') || r == ' ') {
				t.Errorf("Catalog key %q contains non-canonical rune %q", key, r)
			}
		}
		if key != strings.TrimSpace(key) {
			t.Errorf("Catalog key %q has surrounding whitespace", key)
		}
	}
}

func TestSetPrice(t *testing.T) {
	c := Default()
	if !c.SetPrice("chicken", 4.10) {
		t.Fatal("Expected SetPrice to find the 'chicken' key")
	}
	if e := c.Lookup("chicken"); e.Price != 4.10 {
		t.Errorf("Expected overridden price 4.10, got %.2f", e.Price)
	}
	if c.SetPrice("not a real key", 1.00) {
		t.Error("Expected SetPrice to report a missing key")
	}
}
