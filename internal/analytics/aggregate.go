// Package analytics reduces filtered, converted expenses into totals,
// series, wellness scores, and spending insights.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/Veraticus/centsible/internal/currency"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/Veraticus/centsible/internal/timewindow"
)

const dayKeyFormat = "2006-01-02"

// CategoryTotal is one row of a per-category breakdown.
type CategoryTotal struct {
	Category model.Category
	Amount   float64
	Count    int
}

// Summary aggregates the expenses that fall inside a time window, with
// every amount converted to a single display currency. It is immutable
// once built and all methods are pure.
type Summary struct {
	now      time.Time
	window   timewindow.Window
	frame    model.TimeFrame
	currency string
	expenses []model.Expense
	amounts  []float64
	total    float64
}

// NewSummary filters expenses through the window implied by frame and
// converts them to the display currency.
func NewSummary(expenses []model.Expense, conv *currency.Converter, displayCurrency string, frame model.TimeFrame, now time.Time) *Summary {
	return NewSummaryWindow(expenses, conv, displayCurrency, frame, timewindow.Resolve(frame, now), now)
}

// NewSummaryWindow is NewSummary with an explicit window, for custom
// ranges.
func NewSummaryWindow(expenses []model.Expense, conv *currency.Converter, displayCurrency string, frame model.TimeFrame, window timewindow.Window, now time.Time) *Summary {
	s := &Summary{
		now:      now,
		window:   window,
		frame:    frame,
		currency: displayCurrency,
	}
	for _, e := range expenses {
		if !window.Contains(e.Date) {
			continue
		}
		amount := conv.ConvertedAmount(e, displayCurrency)
		s.expenses = append(s.expenses, e)
		s.amounts = append(s.amounts, amount)
		s.total += amount
	}
	return s
}

// Frame returns the time frame the summary was built for.
func (s *Summary) Frame() model.TimeFrame { return s.frame }

// Currency returns the display currency every amount is expressed in.
func (s *Summary) Currency() string { return s.currency }

// Expenses returns the expenses inside the window, in input order.
func (s *Summary) Expenses() []model.Expense { return s.expenses }

// Amounts returns the converted amount for each expense, aligned with
// Expenses.
func (s *Summary) Amounts() []float64 { return s.amounts }

// Count returns the number of expenses inside the window.
func (s *Summary) Count() int { return len(s.expenses) }

// Total returns the sum of converted amounts.
func (s *Summary) Total() float64 { return s.total }

// ByCategory returns per-category totals sorted by amount, descending.
func (s *Summary) ByCategory() []CategoryTotal {
	byCat := make(map[model.Category]*CategoryTotal)
	for i, e := range s.expenses {
		ct, ok := byCat[e.Category]
		if !ok {
			ct = &CategoryTotal{Category: e.Category}
			byCat[e.Category] = ct
		}
		ct.Amount += s.amounts[i]
		ct.Count++
	}

	totals := make([]CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Amount != totals[j].Amount {
			return totals[i].Amount > totals[j].Amount
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// CategoryAmount returns the converted total for a single category.
func (s *Summary) CategoryAmount(cat model.Category) float64 {
	var total float64
	for i, e := range s.expenses {
		if e.Category == cat {
			total += s.amounts[i]
		}
	}
	return total
}

// ByDay returns per-day totals keyed by calendar date (2006-01-02).
func (s *Summary) ByDay() map[string]float64 {
	days := make(map[string]float64)
	for i, e := range s.expenses {
		days[e.Date.Format(dayKeyFormat)] += s.amounts[i]
	}
	return days
}

// ByWeekday returns per-weekday totals.
func (s *Summary) ByWeekday() map[time.Weekday]float64 {
	weekdays := make(map[time.Weekday]float64)
	for i, e := range s.expenses {
		weekdays[e.Date.Weekday()] += s.amounts[i]
	}
	return weekdays
}

// WeekdayAverages returns the average spend per active day for each
// weekday that has any spending.
func (s *Summary) WeekdayAverages() map[time.Weekday]float64 {
	totals := make(map[time.Weekday]float64)
	dayCounts := make(map[time.Weekday]map[string]bool)
	for i, e := range s.expenses {
		wd := e.Date.Weekday()
		totals[wd] += s.amounts[i]
		if dayCounts[wd] == nil {
			dayCounts[wd] = make(map[string]bool)
		}
		dayCounts[wd][e.Date.Format(dayKeyFormat)] = true
	}

	averages := make(map[time.Weekday]float64, len(totals))
	for wd, total := range totals {
		averages[wd] = total / float64(len(dayCounts[wd]))
	}
	return averages
}

// DaysInPeriod returns the day count used for per-day averages: the
// fixed per-frame table, or the observed expense span for frames without
// a defined length.
func (s *Summary) DaysInPeriod() int {
	if days := timewindow.Days(s.frame, s.now); days > 0 {
		return days
	}
	if s.frame == model.FrameCustom && !s.window.All {
		days := int(s.window.End.Sub(s.window.Start).Hours() / 24)
		if days < 1 {
			days = 1
		}
		return days
	}
	return s.observedSpanDays()
}

// observedSpanDays is the inclusive day span from the earliest expense
// to now, used for the open-ended "all" frame.
func (s *Summary) observedSpanDays() int {
	if len(s.expenses) == 0 {
		return 1
	}
	earliest := s.expenses[0].Date
	for _, e := range s.expenses[1:] {
		if e.Date.Before(earliest) {
			earliest = e.Date
		}
	}
	days := int(s.now.Sub(earliest).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// DailyAverage returns total spending divided by the period day count.
func (s *Summary) DailyAverage() float64 {
	days := s.DaysInPeriod()
	if days <= 0 {
		return 0
	}
	return s.total / float64(days)
}

// Consistency measures how evenly spending is spread across active days:
// 1 minus half the coefficient of variation of daily totals, clamped to
// [0, 1]. An empty set is perfectly consistent by convention.
func (s *Summary) Consistency() float64 {
	days := s.ByDay()
	if len(days) == 0 {
		return 1.0
	}

	var mean float64
	for _, total := range days {
		mean += total
	}
	mean /= float64(len(days))
	if mean <= 0 {
		return 1.0
	}

	var variance float64
	for _, total := range days {
		diff := total - mean
		variance += diff * diff
	}
	variance /= float64(len(days))

	cv := math.Sqrt(variance) / mean
	return clamp(1-cv/2, 0, 1)
}

// EssentialPercentage returns the share of spending in essential
// categories, as a percentage. Zero totals yield 0.
func (s *Summary) EssentialPercentage() float64 {
	return s.subsetPercentage(func(c model.Category) bool { return c.IsEssential() })
}

// DiscretionaryPercentage returns the share of spending in discretionary
// categories, as a percentage. Zero totals yield 0.
func (s *Summary) DiscretionaryPercentage() float64 {
	return s.subsetPercentage(func(c model.Category) bool { return c.IsDiscretionary() })
}

func (s *Summary) subsetPercentage(in func(model.Category) bool) float64 {
	if s.total <= 0 {
		return 0
	}
	var subset float64
	for i, e := range s.expenses {
		if in(e.Category) {
			subset += s.amounts[i]
		}
	}
	return subset / s.total * 100
}

// PeriodComparison relates a summary's total to the immediately
// preceding window of the same length.
type PeriodComparison struct {
	PreviousTotal float64
	Defined       bool
}

// ChangePercent returns the spending change versus the previous period
// as a percentage. Only meaningful when Defined and the previous total
// is positive.
func (p PeriodComparison) ChangePercent(current float64) float64 {
	if !p.Defined || p.PreviousTotal <= 0 {
		return 0
	}
	return (current - p.PreviousTotal) / p.PreviousTotal * 100
}

// ComparePrevious totals converted spending in the window preceding the
// summary's own. all should be the full record set, since the previous
// window lies outside the summary. Frames without a defined predecessor
// (all, custom) yield an undefined comparison.
func (s *Summary) ComparePrevious(all []model.Expense, conv *currency.Converter) PeriodComparison {
	switch s.frame {
	case model.FrameToday, model.FrameWeek, model.FrameMonth,
		model.FrameQuarter, model.FrameHalfYear, model.FrameYear:
	default:
		return PeriodComparison{}
	}

	window := timewindow.Previous(s.frame, s.now)
	var total float64
	for _, e := range all {
		if window.Contains(e.Date) {
			total += conv.ConvertedAmount(e, s.currency)
		}
	}
	return PeriodComparison{PreviousTotal: total, Defined: true}
}

// PeriodBudget converts the monthly budget to the display currency and
// scales it to the frame's month count.
func PeriodBudget(settings model.BudgetSettings, conv *currency.Converter, displayCurrency string, frame model.TimeFrame) float64 {
	monthly := conv.ConvertValue(settings.MonthlyBudget, settings.Currency, displayCurrency)
	return monthly * timewindow.Months(frame)
}

// SpendingRatio returns spending relative to the period budget. A
// non-positive budget reads as exactly at budget.
func (s *Summary) SpendingRatio(settings model.BudgetSettings, conv *currency.Converter) float64 {
	budget := PeriodBudget(settings, conv, s.currency, s.frame)
	if budget <= 0 {
		return 1.0
	}
	return s.total / budget
}

// Remaining returns the period budget minus total spending. It can be
// negative when over budget.
func (s *Summary) Remaining(settings model.BudgetSettings, conv *currency.Converter) float64 {
	return PeriodBudget(settings, conv, s.currency, s.frame) - s.total
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
