package finance

// Category is one entry of the fixed expense category table.
type Category struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Categories is the closed set of expense categories. Expense records carry
// the key; label and icon are presentation metadata.
var Categories = []Category{
	{Key: "food", Label: "Food & Dining", Icon: "🍔"},
	{Key: "transport", Label: "Transport", Icon: "🚌"},
	{Key: "housing", Label: "Housing", Icon: "🏠"},
	{Key: "entertainment", Label: "Entertainment", Icon: "🎬"},
	{Key: "health", Label: "Health", Icon: "💊"},
	{Key: "shopping", Label: "Shopping", Icon: "🛍️"},
	{Key: "utilities", Label: "Utilities", Icon: "💡"},
	{Key: "other", Label: "Other", Icon: "📦"},
}

// ValidCategory reports whether key is in the category table.
func ValidCategory(key string) bool {
	for _, c := range Categories {
		if c.Key == key {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display label for a key, falling back to the key
// itself for unknown values.
func CategoryLabel(key string) string {
	for _, c := range Categories {
		if c.Key == key {
			return c.Label
		}
	}
	return key
}
