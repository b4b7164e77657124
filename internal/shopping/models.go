package shopping

// Ingredient is one ingredient mention inside a meal. Item and Qty are
// free-text exactly as authored by the plan generator.
type Ingredient struct {
	Item string `json:"item"`
	Qty  string `json:"qty"`
}

// Meal is a single recipe slot within a day.
type Meal struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
}

// Meals holds the four fixed meal slots of a day. Any slot may be nil.
// Traversal order is always breakfast, lunch, dinner, snack.
type Meals struct {
	Breakfast *Meal `json:"breakfast,omitempty"`
	Lunch     *Meal `json:"lunch,omitempty"`
	Dinner    *Meal `json:"dinner,omitempty"`
	Snack     *Meal `json:"snack,omitempty"`
}

// ordered returns the meal slots in the fixed traversal order.
func (m Meals) ordered() []*Meal {
	return []*Meal{m.Breakfast, m.Lunch, m.Dinner, m.Snack}
}

// Day is one day of a meal plan.
type Day struct {
	Label string `json:"label"`
	Meals Meals  `json:"meals"`
}

// MealPlan is a multi-day structured meal plan, usually produced by the
// LLM planner.
type MealPlan struct {
	Name string `json:"name"`
	Days []Day  `json:"days"`
}

// Item is one priced, display-ready shopping list entry. The store search
// URLs are presentational conveniences only.
type Item struct {
	Name           string  `json:"name"`
	Qty            string  `json:"qty"`
	EstimatedPrice float64 `json:"estimated_price"`
	Unit           string  `json:"unit"`
	Aisle          string  `json:"aisle"`
	WoolworthsURL  string  `json:"woolworths_url"`
	ColesURL       string  `json:"coles_url"`
}

// List is the final shopping list: items grouped by supermarket aisle in
// walking order, with a total cost estimate.
type List struct {
	Name           string            `json:"name"`
	TotalEstimated float64           `json:"total_estimated"`
	ItemCount      int               `json:"item_count"`
	AisleOrder     []string          `json:"aisle_order"`
	ByAisle        map[string][]Item `json:"by_aisle"`
}
