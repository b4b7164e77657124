package catalog

import "strings"

// Entry holds the estimated shelf price for one catalog ingredient.
type Entry struct {
	Price float64 `json:"price"` // AUD
	Unit  string  `json:"unit"`
	Per   string  `json:"per"`
	Aisle string  `json:"aisle"`
}

// Fallback is returned when no catalog key matches an ingredient name.
var Fallback = Entry{Price: 2.50, Unit: "item", Per: "1", Aisle: "Other"}

type keyedEntry struct {
	key   string
	entry Entry
}

// Catalog is an ordered, read-only price book. Lookup scans entries in the
// order they were added and the first match wins, so more specific keys
// ("coconut milk", "fish oil") must be added before their general
// substrings ("milk", "fish", "oil").
type Catalog struct {
	entries []keyedEntry
}

// New returns an empty catalog. Tests use this to inject alternate price books.
func New() *Catalog {
	return &Catalog{}
}

// Add appends an entry under the given key. Keys are expected to be
// lowercase letters and spaces only.
func (c *Catalog) Add(key string, e Entry) {
	c.entries = append(c.entries, keyedEntry{key: key, entry: e})
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Keys returns the catalog keys in lookup order.
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, ke := range c.entries {
		keys[i] = ke.key
	}
	return keys
}

// SetPrice updates the price of an existing key in place, preserving lookup
// order. It reports whether the key was found.
func (c *Catalog) SetPrice(key string, price float64) bool {
	for i := range c.entries {
		if c.entries[i].key == key {
			c.entries[i].entry.Price = price
			return true
		}
	}
	return false
}

// Lookup resolves an arbitrary ingredient name to a price entry.
//
// The input is lowercased, stripped of everything that is not a letter or
// whitespace, and trimmed. A key matches when the normalized input contains
// the key, or the key contains the first whitespace-delimited token of the
// input. Unmatched names fall back to a generic estimate instead of an
// error, so callers always get a plausible price.
//
// The bidirectional substring check can cross-match short keys (a name like
// "tuna salad" matches "tuna", but so would "fortunate"). That leniency is
// intentional, the resolver prefers a rough price over no price.
func (c *Catalog) Lookup(name string) Entry {
	normalized := normalizeName(name)
	first := firstToken(normalized)

	for _, ke := range c.entries {
		if strings.Contains(normalized, ke.key) {
			return ke.entry
		}
		if first != "" && strings.Contains(ke.key, first) {
			return ke.entry
		}
	}
	return Fallback
}

// normalizeName lowercases the input and strips every rune that is not a
// lowercase letter or whitespace.
func normalizeName(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || r == ' ' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func firstToken(normalized string) string {
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
