package model

// CategoryMeta carries static display metadata for a category. It is a
// pure lookup table; nothing in the computation path depends on it.
type CategoryMeta struct {
	Label string
	Icon  string
	Color string // terminal hex color
}

var categoryMeta = map[Category]CategoryMeta{
	CategoryGroceries:     {Label: "Groceries", Icon: "🛒", Color: "#4ECDC4"},
	CategoryTransport:     {Label: "Transport", Icon: "🚌", Color: "#45B7D1"},
	CategoryHousing:       {Label: "Housing", Icon: "🏠", Color: "#96CEB4"},
	CategoryUtilities:     {Label: "Utilities", Icon: "💡", Color: "#FFEAA7"},
	CategoryHealthcare:    {Label: "Healthcare", Icon: "🏥", Color: "#FF7675"},
	CategoryEducation:     {Label: "Education", Icon: "📚", Color: "#74B9FF"},
	CategoryDining:        {Label: "Dining", Icon: "🍽️", Color: "#FF6B6B"},
	CategoryEntertainment: {Label: "Entertainment", Icon: "🎬", Color: "#A29BFE"},
	CategoryShopping:      {Label: "Shopping", Icon: "🛍️", Color: "#FD79A8"},
	CategoryTravel:        {Label: "Travel", Icon: "✈️", Color: "#00CEC9"},
	CategorySubscriptions: {Label: "Subscriptions", Icon: "📺", Color: "#6C5CE7"},
	CategoryFitness:       {Label: "Fitness", Icon: "🏋️", Color: "#55EFC4"},
	CategoryBeauty:        {Label: "Beauty", Icon: "💄", Color: "#FAB1A0"},
	CategoryClothing:      {Label: "Clothing", Icon: "👕", Color: "#81ECEC"},
	CategorySelfCare:      {Label: "Self care", Icon: "🧖", Color: "#DFE6E9"},
	CategoryInsurance:     {Label: "Insurance", Icon: "🛡️", Color: "#B2BEC3"},
	CategorySavings:       {Label: "Savings", Icon: "🏦", Color: "#00B894"},
	CategoryInvestments:   {Label: "Investments", Icon: "📈", Color: "#0984E3"},
	CategoryFees:          {Label: "Fees", Icon: "🧾", Color: "#636E72"},
	CategoryGifts:         {Label: "Gifts", Icon: "🎁", Color: "#E17055"},
	CategoryPets:          {Label: "Pets", Icon: "🐾", Color: "#FDCB6E"},
	CategoryOther:         {Label: "Other", Icon: "📦", Color: "#95A5A6"},
}

// Meta returns display metadata for a category. Unknown categories get
// the metadata of CategoryOther.
func (c Category) Meta() CategoryMeta {
	if m, ok := categoryMeta[c]; ok {
		return m
	}
	return categoryMeta[CategoryOther]
}
