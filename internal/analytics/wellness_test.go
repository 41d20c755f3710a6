package analytics

import (
	"testing"
	"time"

	"github.com/Veraticus/centsible/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestScore_AtBudgetScoresSeventy(t *testing.T) {
	expenses := []model.Expense{
		exp(t, 50, model.CategoryGroceries, time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)),
		exp(t, 150, model.CategoryDining, time.Date(2024, 3, 10, 19, 0, 0, 0, time.UTC)),
	}
	budget := model.BudgetSettings{MonthlyBudget: 200, Currency: "USD"}

	result := Score(expenses, usdConverter(), "USD", budget, model.FrameMonth, testNow)

	assert.InDelta(t, 1.0, result.SpendingRatio, 1e-9)
	assert.InDelta(t, 70, result.BaseScore, 1e-9)
	assert.Zero(t, result.TrendPenalty)
	assert.Zero(t, result.EssentialPenalty, "essential share is only a quarter")
	assert.Zero(t, result.ConsistencyPenalty, "single active day is perfectly consistent")
	assert.Zero(t, result.Bonus, "month frame carries no bonus")
	assert.InDelta(t, 70, result.Score, 1e-9)
}

func TestScore_AlwaysWithinBounds(t *testing.T) {
	budget := model.BudgetSettings{MonthlyBudget: 100, Currency: "USD"}
	frames := []model.TimeFrame{
		model.FrameToday, model.FrameWeek, model.FrameMonth,
		model.FrameQuarter, model.FrameHalfYear, model.FrameYear,
	}

	// Wildly over budget with erratic, essential-heavy spending.
	var expenses []model.Expense
	for i := 0; i < 12; i++ {
		date := testNow.AddDate(0, -i, 0).Add(-time.Hour)
		expenses = append(expenses,
			exp(t, 900, model.CategoryHousing, date),
			exp(t, float64(50+i*200), model.CategoryUtilities, date.AddDate(0, 0, -3)),
		)
	}

	for _, frame := range frames {
		result := Score(expenses, usdConverter(), "USD", budget, frame, testNow)
		assert.GreaterOrEqual(t, result.Score, float64(MinScore), "frame %s", frame)
		assert.LessOrEqual(t, result.Score, float64(MaxScore), "frame %s", frame)
	}

	// And the empty record set.
	for _, frame := range frames {
		result := Score(nil, usdConverter(), "USD", budget, frame, testNow)
		assert.GreaterOrEqual(t, result.Score, float64(MinScore), "empty, frame %s", frame)
		assert.LessOrEqual(t, result.Score, float64(MaxScore), "empty, frame %s", frame)
	}
}

func TestBaseScore_Curve(t *testing.T) {
	tests := []struct {
		ratio float64
		want  float64
	}{
		{0, 100},
		{0.85, 90},
		{0.95, 80},
		{1.00, 70},
		{1.10, 50},
		{1.20, 30},
		{1.50, 15},
		{2.00, 10},
		{10.0, 10},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, baseScore(tt.ratio), 1e-9, "ratio %.2f", tt.ratio)
	}
}

func TestBaseScore_MonotonicallyDecreasing(t *testing.T) {
	prev := baseScore(0)
	for ratio := 0.01; ratio <= 3.0; ratio += 0.01 {
		score := baseScore(ratio)
		assert.LessOrEqual(t, score, prev, "score rose at ratio %.2f", ratio)
		assert.GreaterOrEqual(t, score, float64(MinScore))
		prev = score
	}
}

func TestScore_WeekBonus(t *testing.T) {
	expenses := []model.Expense{
		exp(t, 100, model.CategoryDining, testNow.Add(-time.Hour)),
	}
	budget := model.BudgetSettings{MonthlyBudget: 400, Currency: "USD"}

	result := Score(expenses, usdConverter(), "USD", budget, model.FrameWeek, testNow)

	assert.Equal(t, 5.0, result.Bonus)
	// Spent 100 of the 100 weekly budget: base 70 plus the bonus.
	assert.InDelta(t, 75, result.Score, 1e-9)
}

func TestScore_NoBudgetReadsAsAtBudget(t *testing.T) {
	expenses := []model.Expense{
		exp(t, 9999, model.CategoryShopping, testNow.Add(-time.Hour)),
	}

	result := Score(expenses, usdConverter(), "USD", model.DefaultBudgetSettings(), model.FrameMonth, testNow)

	assert.InDelta(t, 1.0, result.SpendingRatio, 1e-9)
	assert.InDelta(t, 70, result.BaseScore, 1e-9)
}

func TestTrendPenalty_QuarterStableMonths(t *testing.T) {
	// Equal spending in each of the last three months: zero variation.
	var expenses []model.Expense
	for i := 0; i < 3; i++ {
		expenses = append(expenses, exp(t, 300, model.CategoryGroceries, testNow.AddDate(0, -i, 0).Add(-time.Hour)))
	}
	budget := model.BudgetSettings{MonthlyBudget: 400, Currency: "USD"}

	penalty := trendPenalty(expenses, usdConverter(), "USD", budget, model.FrameQuarter, testNow)
	assert.Zero(t, penalty)

	// Make one month triple the others and the penalty appears.
	expenses = append(expenses, exp(t, 600, model.CategoryShopping, testNow.Add(-2*time.Hour)))
	penalty = trendPenalty(expenses, usdConverter(), "USD", budget, model.FrameQuarter, testNow)
	assert.Greater(t, penalty, 0.0)
	assert.LessOrEqual(t, penalty, 15.0)
}

func TestTrendPenalty_HalfYearOverBudgetMonths(t *testing.T) {
	budget := model.BudgetSettings{MonthlyBudget: 100, Currency: "USD"}

	// Two of the last six months exceed the monthly budget.
	expenses := []model.Expense{
		exp(t, 150, model.CategoryShopping, testNow.AddDate(0, -1, 0).Add(-time.Hour)),
		exp(t, 150, model.CategoryShopping, testNow.AddDate(0, -4, 0).Add(-time.Hour)),
		exp(t, 50, model.CategoryGroceries, testNow.Add(-time.Hour)),
	}

	penalty := trendPenalty(expenses, usdConverter(), "USD", budget, model.FrameHalfYear, testNow)
	assert.Equal(t, 6.0, penalty, "three points per over-budget month")

	none := trendPenalty(expenses, usdConverter(), "USD", model.DefaultBudgetSettings(), model.FrameHalfYear, testNow)
	assert.Zero(t, none, "no budget means no over-budget months")
}

func TestEssentialPenalty(t *testing.T) {
	assert.Zero(t, essentialPenalty(70, model.FrameMonth))
	assert.Zero(t, essentialPenalty(25, model.FrameMonth))
	assert.InDelta(t, 10, essentialPenalty(85, model.FrameMonth), 1e-9)
	assert.InDelta(t, 20, essentialPenalty(100, model.FrameMonth), 1e-9)
	assert.InDelta(t, 8, essentialPenalty(85, model.FrameWeek), 1e-9, "week scales down by 0.8")
	assert.Equal(t, 20.0, essentialPenalty(100, model.FrameYear), "capped at 20")
}

func TestConsistencyPenalty(t *testing.T) {
	assert.Zero(t, consistencyPenalty(1.0, model.FrameMonth))
	assert.Zero(t, consistencyPenalty(0.5, model.FrameMonth))
	assert.InDelta(t, 4, consistencyPenalty(0.3, model.FrameMonth), 1e-9)
	assert.InDelta(t, 10, consistencyPenalty(0, model.FrameMonth), 1e-9)
	assert.Equal(t, 10.0, consistencyPenalty(0, model.FrameYear), "capped at 10")
}

func TestFrameBonus_ImprovingTrend(t *testing.T) {
	// Spending declines every month: every transition is flat-or-down.
	var improving []model.Expense
	for i := 0; i < 3; i++ {
		improving = append(improving, exp(t, float64(200+i*50), model.CategoryGroceries, testNow.AddDate(0, -i, 0).Add(-time.Hour)))
	}
	bonus := frameBonus(improving, usdConverter(), "USD", model.FrameQuarter, testNow)
	assert.InDelta(t, 10, bonus, 1e-9)

	// Spending rises every month: no transition qualifies.
	var worsening []model.Expense
	for i := 0; i < 3; i++ {
		worsening = append(worsening, exp(t, float64(300-i*50), model.CategoryGroceries, testNow.AddDate(0, -i, 0).Add(-time.Hour)))
	}
	bonus = frameBonus(worsening, usdConverter(), "USD", model.FrameQuarter, testNow)
	assert.Zero(t, bonus)
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierExcellent, TierFor(95))
	assert.Equal(t, TierExcellent, TierFor(90))
	assert.Equal(t, TierGood, TierFor(89))
	assert.Equal(t, TierGood, TierFor(70))
	assert.Equal(t, TierFair, TierFor(69))
	assert.Equal(t, TierFair, TierFor(50))
	assert.Equal(t, TierWarning, TierFor(49))
	assert.Equal(t, TierWarning, TierFor(30))
	assert.Equal(t, TierCritical, TierFor(29))
	assert.Equal(t, TierCritical, TierFor(10))
}

func TestDescribe_CoversEveryFrameAndTier(t *testing.T) {
	frames := []model.TimeFrame{
		model.FrameWeek, model.FrameMonth, model.FrameQuarter,
		model.FrameHalfYear, model.FrameYear,
	}
	scores := []float64{95, 75, 55, 35, 15}

	for _, frame := range frames {
		for _, score := range scores {
			a := Describe(score, frame)
			assert.NotEmpty(t, a.Title, "frame %s score %.0f", frame, score)
			assert.NotEmpty(t, a.Description, "frame %s score %.0f", frame, score)
			assert.Equal(t, TierFor(score), a.Tier)
		}
	}

	// Frames without dedicated copy borrow the month text.
	fallback := Describe(75, model.FrameToday)
	assert.Equal(t, Describe(75, model.FrameMonth).Title, fallback.Title)
}
