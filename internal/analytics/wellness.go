package analytics

import (
	"math"
	"time"

	"github.com/Veraticus/centsible/internal/currency"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/Veraticus/centsible/internal/timewindow"
)

// Score bounds.
const (
	MinScore = 10
	MaxScore = 100
)

// ScoreResult carries the wellness score with the intermediate values
// that produced it, for reporting.
type ScoreResult struct {
	Frame              model.TimeFrame
	Score              float64
	SpendingRatio      float64
	BaseScore          float64
	TrendPenalty       float64
	EssentialPenalty   float64
	ConsistencyPenalty float64
	Bonus              float64
}

// Score computes the financial wellness score for the given frame. It is
// a pure function of its inputs; expenses should be the full record set
// so trend penalties can look at months outside the frame's window.
func Score(expenses []model.Expense, conv *currency.Converter, displayCurrency string, settings model.BudgetSettings, frame model.TimeFrame, now time.Time) ScoreResult {
	summary := NewSummary(expenses, conv, displayCurrency, frame, now)

	result := ScoreResult{
		Frame:         frame,
		SpendingRatio: summary.SpendingRatio(settings, conv),
	}
	result.BaseScore = baseScore(result.SpendingRatio)
	result.TrendPenalty = trendPenalty(expenses, conv, displayCurrency, settings, frame, now)
	result.EssentialPenalty = essentialPenalty(summary.EssentialPercentage(), frame)
	result.ConsistencyPenalty = consistencyPenalty(summary.Consistency(), frame)
	result.Bonus = frameBonus(expenses, conv, displayCurrency, frame, now)

	score := result.BaseScore -
		result.TrendPenalty -
		result.EssentialPenalty -
		result.ConsistencyPenalty +
		result.Bonus
	result.Score = clamp(score, MinScore, MaxScore)
	return result
}

// baseScore maps the spending ratio onto the tiered score curve. Each
// tier interpolates linearly between its endpoints and the curve is
// continuous and monotonically decreasing.
func baseScore(ratio float64) float64 {
	switch {
	case ratio <= 0:
		return 100
	case ratio <= 0.85:
		return 100 - ratio/0.85*10
	case ratio <= 0.95:
		return 90 - (ratio-0.85)/0.10*10
	case ratio <= 1.00:
		return 80 - (ratio-0.95)/0.05*10
	case ratio <= 1.10:
		return 70 - (ratio-1.00)/0.10*20
	case ratio <= 1.20:
		return 50 - (ratio-1.10)/0.10*20
	case ratio <= 1.50:
		return 30 - (ratio-1.20)/0.30*15
	default:
		return math.Max(MinScore, 15-(ratio-1.50)*10)
	}
}

// periodMultiplier scales the lifestyle penalties with the length of the
// period under review.
func periodMultiplier(frame model.TimeFrame) float64 {
	switch frame {
	case model.FrameWeek:
		return 0.8
	case model.FrameQuarter:
		return 1.2
	case model.FrameHalfYear:
		return 1.35
	case model.FrameYear:
		return 1.5
	default:
		return 1.0
	}
}

// trendPenalty penalizes erratic or persistently over-budget spending in
// the longer frames. Week and month are too short to carry a trend.
func trendPenalty(expenses []model.Expense, conv *currency.Converter, displayCurrency string, settings model.BudgetSettings, frame model.TimeFrame, now time.Time) float64 {
	switch frame {
	case model.FrameQuarter:
		totals := windowTotals(expenses, conv, displayCurrency, timewindow.RollingMonths(now, 3))
		return math.Min(15, coefficientOfVariation(totals)*15)
	case model.FrameHalfYear:
		monthlyBudget := conv.ConvertValue(settings.MonthlyBudget, settings.Currency, displayCurrency)
		if monthlyBudget <= 0 {
			return 0
		}
		var over int
		for _, total := range windowTotals(expenses, conv, displayCurrency, timewindow.RollingMonths(now, 6)) {
			if total > monthlyBudget {
				over++
			}
		}
		return float64(over) * 3
	case model.FrameYear:
		totals := windowTotals(expenses, conv, displayCurrency, timewindow.RollingQuarters(now, 4))
		return math.Min(15, coefficientOfVariation(totals)*15)
	default:
		return 0
	}
}

// essentialPenalty kicks in when essential spending dominates the budget,
// leaving no room for anything else. Up to 20 points.
func essentialPenalty(essentialPct float64, frame model.TimeFrame) float64 {
	if essentialPct <= 70 {
		return 0
	}
	raw := (essentialPct - 70) / 30 * 20
	return math.Min(20, raw*periodMultiplier(frame))
}

// consistencyPenalty kicks in for highly uneven daily spending. Up to 10
// points.
func consistencyPenalty(consistency float64, frame model.TimeFrame) float64 {
	if consistency >= 0.5 {
		return 0
	}
	raw := (0.5 - consistency) * 20
	return math.Min(10, raw*periodMultiplier(frame))
}

// frameBonus rewards short review cycles and improving month-over-month
// trends in the longer frames.
func frameBonus(expenses []model.Expense, conv *currency.Converter, displayCurrency string, frame model.TimeFrame, now time.Time) float64 {
	switch frame {
	case model.FrameWeek:
		return 5
	case model.FrameQuarter, model.FrameHalfYear, model.FrameYear:
		months := int(timewindow.Months(frame))
		totals := windowTotals(expenses, conv, displayCurrency, timewindow.RollingMonths(now, months))
		if len(totals) < 2 {
			return 0
		}
		var flat int
		for i := 1; i < len(totals); i++ {
			if totals[i] <= totals[i-1] {
				flat++
			}
		}
		return float64(flat) / float64(len(totals)-1) * 10
	default:
		return 0
	}
}

// windowTotals sums converted spending per window.
func windowTotals(expenses []model.Expense, conv *currency.Converter, displayCurrency string, windows []timewindow.Window) []float64 {
	totals := make([]float64, len(windows))
	for _, e := range expenses {
		for i, w := range windows {
			if w.Contains(e.Date) {
				totals[i] += conv.ConvertedAmount(e, displayCurrency)
				break
			}
		}
	}
	return totals
}

// coefficientOfVariation is stddev over mean, 0 for degenerate inputs.
func coefficientOfVariation(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if mean <= 0 {
		return 0
	}
	var variance float64
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance) / mean
}
