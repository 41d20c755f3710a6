package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/centsible/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyzeMonth(t *testing.T, expenses []model.Expense) Insights {
	t.Helper()
	conv := usdConverter()
	s := NewSummary(expenses, conv, "USD", model.FrameMonth, testNow)
	return Analyze(s, expenses, conv, testNow)
}

func findRecommendation(in Insights, title string) (Recommendation, bool) {
	for _, r := range in.Recommendations {
		if r.Title == title {
			return r, true
		}
	}
	return Recommendation{}, false
}

func hasObservation(in Insights, title string) bool {
	for _, o := range in.Observations {
		if o.Title == title {
			return true
		}
	}
	return false
}

func TestAnalyze_EmptyExpenses(t *testing.T) {
	in := analyzeMonth(t, nil)
	assert.Empty(t, in.Observations)
	assert.Empty(t, in.Recommendations)
}

func TestAnalyze_Observations(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		exp(t, 250, model.CategoryShopping, day.Add(19*time.Hour)),
		exp(t, 20, model.CategoryDining, day.Add(20*time.Hour)),
		exp(t, 30, model.CategoryGroceries, day.Add(18*time.Hour)),
		exp(t, 25, model.CategoryDining, day.AddDate(0, 0, 1).Add(19*time.Hour)),
		exp(t, 35, model.CategoryGroceries, day.AddDate(0, 0, 1).Add(18*time.Hour)),
	}

	in := analyzeMonth(t, expenses)

	assert.True(t, hasObservation(in, "Largest transaction"))
	assert.True(t, hasObservation(in, "Peak spending time"))
	assert.True(t, hasObservation(in, "Spending frequency"))
	assert.True(t, hasObservation(in, "Weekly peak"))

	// Dining and groceries shared a day twice.
	assert.True(t, hasObservation(in, "Categories that travel together"))

	for _, o := range in.Observations {
		if o.Title == "Largest transaction" {
			assert.Contains(t, o.Description, "250.00 USD")
		}
		if o.Title == "Peak spending time" {
			assert.Contains(t, o.Description, "evening")
		}
	}
}

func TestAnalyze_CategoryPairNeedsRepeats(t *testing.T) {
	day := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		exp(t, 20, model.CategoryDining, day),
		exp(t, 30, model.CategoryGroceries, day),
	}

	in := analyzeMonth(t, expenses)
	assert.False(t, hasObservation(in, "Categories that travel together"),
		"a single co-occurrence is not a pattern")
}

func TestAnalyze_TopCategoryCap(t *testing.T) {
	// Dining dominates, with three months of history behind it.
	var expenses []model.Expense
	for i := 0; i < 3; i++ {
		expenses = append(expenses, exp(t, 300, model.CategoryDining, testNow.AddDate(0, -i, 0).Add(-2*time.Hour)))
	}
	expenses = append(expenses, exp(t, 50, model.CategoryGroceries, testNow.Add(-time.Hour)))

	in := analyzeMonth(t, expenses)

	rec, ok := findRecommendation(in, "Cap your top category")
	require.True(t, ok)
	assert.InDelta(t, 300*0.20, rec.PotentialSaving, 1e-9, "saving is a fifth of the category's period total")
	assert.Contains(t, rec.Description, "Dining")
	// 80% of the 300/month average.
	assert.Contains(t, rec.Description, "240.00")
}

func TestAnalyze_WeekendHeavy(t *testing.T) {
	saturday := time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, saturday.Weekday())

	expenses := []model.Expense{
		exp(t, 300, model.CategoryEntertainment, saturday),
		exp(t, 100, model.CategoryGroceries, saturday.AddDate(0, 0, 2)),
	}

	in := analyzeMonth(t, expenses)

	rec, ok := findRecommendation(in, "Weekend spending")
	require.True(t, ok, "three quarters of spending fell on the weekend")
	assert.InDelta(t, 300*0.25, rec.PotentialSaving, 1e-9)

	// Balanced week: no trigger.
	balanced := []model.Expense{
		exp(t, 100, model.CategoryEntertainment, saturday),
		exp(t, 300, model.CategoryGroceries, saturday.AddDate(0, 0, 2)),
	}
	in = analyzeMonth(t, balanced)
	_, ok = findRecommendation(in, "Weekend spending")
	assert.False(t, ok)
}

func TestAnalyze_SubscriptionCreep(t *testing.T) {
	expenses := []model.Expense{
		exp(t, 60, model.CategorySubscriptions, testNow.Add(-time.Hour)),
		exp(t, 240, model.CategoryGroceries, testNow.Add(-2*time.Hour)),
	}

	in := analyzeMonth(t, expenses)

	rec, ok := findRecommendation(in, "Subscription audit")
	require.True(t, ok, "subscriptions are a fifth of spending")
	assert.InDelta(t, 60*0.30, rec.PotentialSaving, 1e-9)
}

func TestAnalyze_DiningOutpacesGroceries(t *testing.T) {
	expenses := []model.Expense{
		exp(t, 200, model.CategoryDining, testNow.Add(-time.Hour)),
		exp(t, 100, model.CategoryGroceries, testNow.Add(-2*time.Hour)),
	}

	in := analyzeMonth(t, expenses)

	rec, ok := findRecommendation(in, "Eat in more often")
	require.True(t, ok, "dining is double the grocery spend")
	assert.InDelta(t, 200*0.30, rec.PotentialSaving, 1e-9)

	// Exactly 1.5x does not trigger.
	borderline := []model.Expense{
		exp(t, 150, model.CategoryDining, testNow.Add(-time.Hour)),
		exp(t, 100, model.CategoryGroceries, testNow.Add(-2*time.Hour)),
	}
	in = analyzeMonth(t, borderline)
	_, ok = findRecommendation(in, "Eat in more often")
	assert.False(t, ok)
}

func TestAnalyze_LateNight(t *testing.T) {
	lateNight := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	earlyMorning := time.Date(2024, 3, 11, 2, 0, 0, 0, time.UTC)
	expenses := []model.Expense{
		exp(t, 40, model.CategoryShopping, lateNight),
		exp(t, 60, model.CategoryEntertainment, earlyMorning),
		exp(t, 100, model.CategoryGroceries, time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)),
	}

	in := analyzeMonth(t, expenses)

	rec, ok := findRecommendation(in, "Late-night purchases")
	require.True(t, ok)
	assert.InDelta(t, 100*0.50, rec.PotentialSaving, 1e-9, "half of the 100 spent late")
	assert.True(t, strings.Contains(rec.Description, "2 purchases"))
}

func TestAnalyze_ImpulsePurchases(t *testing.T) {
	// One big grocery run plus a cluster of tiny buys.
	expenses := []model.Expense{
		exp(t, 400, model.CategoryGroceries, time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)),
	}
	for d := 5; d <= 10; d++ {
		expenses = append(expenses, exp(t, 2, model.CategoryDining, time.Date(2024, 3, d, 13, 0, 0, 0, time.UTC)))
	}

	in := analyzeMonth(t, expenses)

	rec, ok := findRecommendation(in, "Impulse purchases")
	require.True(t, ok, "six of seven transactions are tiny non-grocery buys")
	assert.InDelta(t, 12*0.60, rec.PotentialSaving, 1e-9)
}

func TestAnalyze_SavingsNudge(t *testing.T) {
	expenses := []model.Expense{
		exp(t, 100, model.CategoryGroceries, testNow.Add(-time.Hour)),
		exp(t, 200, model.CategoryEntertainment, testNow.Add(-2*time.Hour)),
		exp(t, 100, model.CategoryShopping, testNow.Add(-3*time.Hour)),
	}

	in := analyzeMonth(t, expenses)

	rec, ok := findRecommendation(in, "Room to save")
	require.True(t, ok, "essential share is well under half")
	assert.InDelta(t, 300*0.20, rec.PotentialSaving, 1e-9)

	// Essential-heavy spending gets no nudge.
	heavy := []model.Expense{
		exp(t, 300, model.CategoryGroceries, testNow.Add(-time.Hour)),
		exp(t, 100, model.CategoryShopping, testNow.Add(-2*time.Hour)),
	}
	in = analyzeMonth(t, heavy)
	_, ok = findRecommendation(in, "Room to save")
	assert.False(t, ok)
}
