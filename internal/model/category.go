package model

// Category is one of the fixed expense categories. The set is closed:
// every category belongs to exactly one CategoryGroup.
type Category string

// Expense categories.
const (
	CategoryGroceries     Category = "groceries"
	CategoryTransport     Category = "transport"
	CategoryHousing       Category = "housing"
	CategoryUtilities     Category = "utilities"
	CategoryHealthcare    Category = "healthcare"
	CategoryEducation     Category = "education"
	CategoryDining        Category = "dining"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryTravel        Category = "travel"
	CategorySubscriptions Category = "subscriptions"
	CategoryFitness       Category = "fitness"
	CategoryBeauty        Category = "beauty"
	CategoryClothing      Category = "clothing"
	CategorySelfCare      Category = "self_care"
	CategoryInsurance     Category = "insurance"
	CategorySavings       Category = "savings"
	CategoryInvestments   Category = "investments"
	CategoryFees          Category = "fees"
	CategoryGifts         Category = "gifts"
	CategoryPets          Category = "pets"
	CategoryOther         Category = "other"
)

// CategoryGroup is the display/aggregation grouping for categories.
type CategoryGroup string

// Category groups.
const (
	GroupEssential     CategoryGroup = "essential"
	GroupLifestyle     CategoryGroup = "lifestyle"
	GroupPersonalCare  CategoryGroup = "personal-care"
	GroupFinancial     CategoryGroup = "financial"
	GroupMiscellaneous CategoryGroup = "miscellaneous"
)

// categoryGroups maps every category to its group.
var categoryGroups = map[Category]CategoryGroup{
	CategoryGroceries:     GroupEssential,
	CategoryTransport:     GroupEssential,
	CategoryHousing:       GroupEssential,
	CategoryUtilities:     GroupEssential,
	CategoryHealthcare:    GroupEssential,
	CategoryEducation:     GroupEssential,
	CategoryDining:        GroupLifestyle,
	CategoryEntertainment: GroupLifestyle,
	CategoryShopping:      GroupLifestyle,
	CategoryTravel:        GroupLifestyle,
	CategorySubscriptions: GroupLifestyle,
	CategoryFitness:       GroupLifestyle,
	CategoryBeauty:        GroupPersonalCare,
	CategoryClothing:      GroupPersonalCare,
	CategorySelfCare:      GroupPersonalCare,
	CategoryInsurance:     GroupFinancial,
	CategorySavings:       GroupFinancial,
	CategoryInvestments:   GroupFinancial,
	CategoryFees:          GroupFinancial,
	CategoryGifts:         GroupMiscellaneous,
	CategoryPets:          GroupMiscellaneous,
	CategoryOther:         GroupMiscellaneous,
}

// essentialCategories is the fixed subset used for the essential-spending
// ratio: the essential group plus insurance.
var essentialCategories = map[Category]bool{
	CategoryGroceries:  true,
	CategoryTransport:  true,
	CategoryHousing:    true,
	CategoryUtilities:  true,
	CategoryHealthcare: true,
	CategoryEducation:  true,
	CategoryInsurance:  true,
}

// discretionaryCategories is the fixed subset used for the discretionary
// ratio: lifestyle, personal care, and miscellaneous spending. Financial
// categories (savings, investments, fees) count toward neither subset.
var discretionaryCategories = map[Category]bool{
	CategoryDining:        true,
	CategoryEntertainment: true,
	CategoryShopping:      true,
	CategoryTravel:        true,
	CategorySubscriptions: true,
	CategoryFitness:       true,
	CategoryBeauty:        true,
	CategoryClothing:      true,
	CategorySelfCare:      true,
	CategoryGifts:         true,
	CategoryPets:          true,
	CategoryOther:         true,
}

// Categories returns all categories in a stable display order, grouped.
func Categories() []Category {
	return []Category{
		CategoryGroceries, CategoryTransport, CategoryHousing,
		CategoryUtilities, CategoryHealthcare, CategoryEducation,
		CategoryDining, CategoryEntertainment, CategoryShopping,
		CategoryTravel, CategorySubscriptions, CategoryFitness,
		CategoryBeauty, CategoryClothing, CategorySelfCare,
		CategoryInsurance, CategorySavings, CategoryInvestments, CategoryFees,
		CategoryGifts, CategoryPets, CategoryOther,
	}
}

// Group returns the group a category belongs to. Unknown categories fall
// into the miscellaneous group rather than failing.
func (c Category) Group() CategoryGroup {
	if g, ok := categoryGroups[c]; ok {
		return g
	}
	return GroupMiscellaneous
}

// IsValid reports whether c is one of the fixed categories.
func (c Category) IsValid() bool {
	_, ok := categoryGroups[c]
	return ok
}

// IsEssential reports whether c counts toward essential spending.
func (c Category) IsEssential() bool {
	return essentialCategories[c]
}

// IsDiscretionary reports whether c counts toward discretionary spending.
func (c Category) IsDiscretionary() bool {
	return discretionaryCategories[c]
}
