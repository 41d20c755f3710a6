package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategories_Complete(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 22, "category set is fixed at 22 values")

	seen := make(map[Category]bool)
	for _, c := range cats {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
		assert.False(t, seen[c], "category %q duplicated", c)
		seen[c] = true
	}
}

func TestCategory_Group(t *testing.T) {
	tests := []struct {
		category Category
		group    CategoryGroup
	}{
		{CategoryGroceries, GroupEssential},
		{CategoryHousing, GroupEssential},
		{CategoryDining, GroupLifestyle},
		{CategorySubscriptions, GroupLifestyle},
		{CategoryBeauty, GroupPersonalCare},
		{CategoryInsurance, GroupFinancial},
		{CategorySavings, GroupFinancial},
		{CategoryPets, GroupMiscellaneous},
		{Category("nonsense"), GroupMiscellaneous},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.group, tt.category.Group(), "group of %q", tt.category)
	}
}

func TestCategory_EveryCategoryHasExactlyOneGroup(t *testing.T) {
	for _, c := range Categories() {
		_, ok := categoryGroups[c]
		assert.True(t, ok, "category %q missing a group", c)
	}
	assert.Len(t, categoryGroups, len(Categories()))
}

func TestCategory_EssentialAndDiscretionaryDisjoint(t *testing.T) {
	for _, c := range Categories() {
		assert.False(t, c.IsEssential() && c.IsDiscretionary(),
			"category %q cannot be both essential and discretionary", c)
	}

	// Insurance is the one financial category that counts as essential.
	assert.True(t, CategoryInsurance.IsEssential())
	assert.False(t, CategorySavings.IsEssential())
	assert.False(t, CategorySavings.IsDiscretionary())
}

func TestCategory_Meta(t *testing.T) {
	for _, c := range Categories() {
		meta := c.Meta()
		assert.NotEmpty(t, meta.Label, "label for %q", c)
		assert.NotEmpty(t, meta.Icon, "icon for %q", c)
		assert.NotEmpty(t, meta.Color, "color for %q", c)
	}

	// Unknown categories borrow the fallback metadata.
	assert.Equal(t, CategoryOther.Meta(), Category("mystery").Meta())
}
