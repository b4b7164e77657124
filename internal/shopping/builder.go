package shopping

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"

	"github.com/armctay85/FitMunch-sub002/internal/catalog"
)

// ErrInvalidPlan is returned when the plan is absent or has no days
// sequence. Everything below that level degrades gracefully instead of
// failing, a shopping list with a generic price beats a failed request.
var ErrInvalidPlan = errors.New("meal plan has no days")

// aisleOrder is the canonical in-store walking order. Aisles not in this
// list sort after all listed aisles, in encounter order.
var aisleOrder = []string{
	"Meat & Seafood",
	"Produce",
	"Dairy & Eggs",
	"Pantry",
	"Bakery",
	"Frozen",
	"Supplements",
	"Other",
}

// Builder turns a meal plan into a grouped, priced shopping list. It is
// stateless apart from the injected read-only catalog, so a single Builder
// is safe for concurrent use.
type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder creates a Builder backed by the given price catalog.
func NewBuilder(c *catalog.Catalog) *Builder {
	return &Builder{catalog: c}
}

// aggregate accumulates all mentions of one ingredient across the plan.
type aggregate struct {
	name     string // first-seen casing
	mentions int
	qtys     []string // raw qty strings in traversal order
}

// Build aggregates every ingredient mention in the plan, drops items the
// user already owns, prices the rest against the catalog and groups them
// by aisle in canonical walking order.
//
// The only hard failure is a missing plan or days sequence. Per-item
// anomalies (unknown ingredient, empty quantity) are absorbed by fallback
// defaults and never surface as errors.
func (b *Builder) Build(plan *MealPlan, excludeOwned []string) (*List, error) {
	if plan == nil || plan.Days == nil {
		return nil, ErrInvalidPlan
	}

	// Aggregation pass: day-major, then the fixed meal slot order.
	// The key is the lowercased, trimmed ingredient text; no punctuation
	// stripping here, that leniency belongs to the price lookup only.
	byKey := make(map[string]*aggregate)
	var order []*aggregate
	for _, day := range plan.Days {
		for _, meal := range day.Meals.ordered() {
			if meal == nil {
				continue
			}
			for _, ing := range meal.Ingredients {
				key := strings.ToLower(strings.TrimSpace(ing.Item))
				if key == "" {
					continue
				}
				agg, ok := byKey[key]
				if !ok {
					agg = &aggregate{name: ing.Item}
					byKey[key] = agg
					order = append(order, agg)
				}
				agg.mentions++
				agg.qtys = append(agg.qtys, ing.Qty)
			}
		}
	}

	list := &List{
		Name:    plan.Name,
		ByAisle: make(map[string][]Item),
	}

	var total float64
	var seenAisles []string
	for _, agg := range order {
		if isOwned(agg.name, excludeOwned) {
			continue
		}

		entry := b.catalog.Lookup(agg.name)
		item := Item{
			Name:           agg.name,
			Qty:            displayQty(agg.mentions, agg.qtys),
			EstimatedPrice: entry.Price,
			Unit:           entry.Unit,
			Aisle:          entry.Aisle,
			WoolworthsURL:  woolworthsSearchURL(agg.name),
			ColesURL:       colesSearchURL(agg.name),
		}

		if _, ok := list.ByAisle[entry.Aisle]; !ok {
			seenAisles = append(seenAisles, entry.Aisle)
		}
		list.ByAisle[entry.Aisle] = append(list.ByAisle[entry.Aisle], item)
		total += entry.Price
		list.ItemCount++
	}

	list.AisleOrder = sortAisles(seenAisles)
	list.TotalEstimated = roundToCents(total)
	return list, nil
}

// isOwned reports whether the ingredient name matches any owned entry,
// case-insensitively and by substring in either direction.
func isOwned(name string, owned []string) bool {
	lowerName := strings.ToLower(name)
	for _, o := range owned {
		lowerOwned := strings.ToLower(o)
		if lowerOwned == "" {
			continue
		}
		if strings.Contains(lowerName, lowerOwned) || strings.Contains(lowerOwned, lowerName) {
			return true
		}
	}
	return false
}

// displayQty formats the quantity summary for an aggregated ingredient.
// Single mentions show the raw qty string; repeated mentions show the
// mention count plus the first two distinct qty strings.
func displayQty(mentions int, qtys []string) string {
	if mentions <= 1 {
		if len(qtys) > 0 && strings.TrimSpace(qtys[0]) != "" {
			return qtys[0]
		}
		return "1"
	}

	var distinct []string
	seen := make(map[string]struct{})
	for _, q := range qtys {
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		distinct = append(distinct, q)
		if len(distinct) == 2 {
			break
		}
	}
	return fmt.Sprintf("×%d (%s)", mentions, strings.Join(distinct, ", "))
}

// sortAisles orders the aisles actually present by canonical priority.
// Unknown aisles keep their encounter order after the known ones.
func sortAisles(seen []string) []string {
	rank := func(aisle string) int {
		for i, a := range aisleOrder {
			if a == aisle {
				return i
			}
		}
		return len(aisleOrder)
	}
	sorted := make([]string, len(seen))
	copy(sorted, seen)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rank(sorted[i]) < rank(sorted[j])
	})
	return sorted
}

// roundToCents rounds half-up to two decimal places, keeping the total
// deterministic across platforms.
func roundToCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

func woolworthsSearchURL(name string) string {
	return "https://www.woolworths.com.au/shop/search/products?searchTerm=" + url.QueryEscape(name)
}

func colesSearchURL(name string) string {
	return "https://www.coles.com.au/search?q=" + url.QueryEscape(name)
}
