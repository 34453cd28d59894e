package domain

// Category is a fixed spending category. The set is static and shared by
// every user; transactions and budgets reference categories by ID.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// UnknownCategoryName is used when a transaction references a category
// that no longer exists in the registry
const UnknownCategoryName = "Unknown"

// UnknownCategoryColor is the neutral color for unresolvable categories
const UnknownCategoryColor = "hsl(0, 0%, 70%)"

var categories = []Category{
	{ID: "groceries", Name: "Groceries", Icon: "shopping-bag", Color: "hsl(12, 76%, 61%)"},
	{ID: "utilities", Name: "Utilities", Icon: "lightbulb", Color: "hsl(173, 58%, 39%)"},
	{ID: "rent", Name: "Rent/Mortgage", Icon: "home", Color: "hsl(197, 37%, 24%)"},
	{ID: "transport", Name: "Transportation", Icon: "car", Color: "hsl(43, 74%, 66%)"},
	{ID: "health", Name: "Healthcare", Icon: "heart-pulse", Color: "hsl(27, 87%, 67%)"},
	{ID: "dining", Name: "Dining Out", Icon: "utensils", Color: "hsl(197, 71%, 73%)"},
	{ID: "entertain", Name: "Entertainment", Icon: "ticket", Color: "hsl(291, 71%, 73%)"},
	{ID: "income", Name: "Income", Icon: "landmark", Color: "hsl(120, 50%, 60%)"},
	{ID: "other", Name: "Other", Icon: "circle-dollar-sign", Color: "hsl(0, 0%, 70%)"},
}

var categoryIndex = func() map[string]Category {
	idx := make(map[string]Category, len(categories))
	for _, c := range categories {
		idx[c.ID] = c
	}
	return idx
}()

// Categories returns all registered categories in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category by its ID
func CategoryByID(id string) (Category, bool) {
	c, ok := categoryIndex[id]
	return c, ok
}

// IsValidCategory reports whether the given ID exists in the registry
func IsValidCategory(id string) bool {
	_, ok := categoryIndex[id]
	return ok
}

// CategoryName resolves a category ID to its display name, falling back
// to UnknownCategoryName for IDs not in the registry
func CategoryName(id string) string {
	if c, ok := categoryIndex[id]; ok {
		return c.Name
	}
	return UnknownCategoryName
}

// CategoryColor resolves a category ID to its chart color, falling back
// to the neutral color for IDs not in the registry
func CategoryColor(id string) string {
	if c, ok := categoryIndex[id]; ok {
		return c.Color
	}
	return UnknownCategoryColor
}
