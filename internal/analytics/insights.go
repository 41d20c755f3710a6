package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/Veraticus/centsible/internal/currency"
	"github.com/Veraticus/centsible/internal/model"
	"github.com/Veraticus/centsible/internal/timewindow"
)

// Insight is a single detected spending pattern.
type Insight struct {
	Title       string
	Description string
}

// Recommendation is an actionable suggestion with an estimated saving in
// the display currency.
type Recommendation struct {
	Title           string
	Description     string
	PotentialSaving float64
}

// Insights bundles pattern observations and recommendations for one
// summary. Every detector is independent and tolerates an empty expense
// set by producing nothing.
type Insights struct {
	Observations    []Insight
	Recommendations []Recommendation
}

// timeBucket is a time-of-day bucket for peak detection.
type timeBucket struct {
	name  string
	start int // inclusive hour
	end   int // exclusive hour
}

var timeBuckets = []timeBucket{
	{"morning", 5, 12},
	{"afternoon", 12, 17},
	{"evening", 17, 22},
	{"night", 22, 5}, // wraps midnight
}

func (b timeBucket) contains(hour int) bool {
	if b.start < b.end {
		return hour >= b.start && hour < b.end
	}
	return hour >= b.start || hour < b.end
}

// Analyze runs every pattern detector and recommendation trigger over
// the summary. allExpenses is the full record set, used where a detector
// needs history beyond the summary's window.
func Analyze(summary *Summary, allExpenses []model.Expense, conv *currency.Converter, now time.Time) Insights {
	var out Insights

	out.observeLargestTransaction(summary)
	out.observePeakTimeOfDay(summary)
	out.observeSpendingFrequency(summary)
	out.observeCategoryPair(summary)
	out.observeWeeklyPeak(summary)

	out.recommendTopCategoryBudget(summary, allExpenses, conv, now)
	out.recommendWeekendReview(summary)
	out.recommendSubscriptionReview(summary)
	out.recommendDiningBalance(summary)
	out.recommendLateNightReview(summary)
	out.recommendImpulseControl(summary)
	out.recommendSavingsNudge(summary)

	return out
}

func (in *Insights) observe(title, format string, args ...any) {
	in.Observations = append(in.Observations, Insight{
		Title:       title,
		Description: fmt.Sprintf(format, args...),
	})
}

func (in *Insights) recommend(saving float64, title, format string, args ...any) {
	in.Recommendations = append(in.Recommendations, Recommendation{
		Title:           title,
		Description:     fmt.Sprintf(format, args...),
		PotentialSaving: saving,
	})
}

// observeLargestTransaction reports the biggest single converted amount.
func (in *Insights) observeLargestTransaction(s *Summary) {
	if s.Count() == 0 {
		return
	}
	best := 0
	for i := range s.amounts {
		if s.amounts[i] > s.amounts[best] {
			best = i
		}
	}
	e := s.expenses[best]
	in.observe("Largest transaction",
		"Your biggest expense was %.2f %s on %s (%s).",
		s.amounts[best], s.currency, e.Date.Format("Jan 2"), e.Category.Meta().Label)
}

// observePeakTimeOfDay reports the bucket with the most transactions.
func (in *Insights) observePeakTimeOfDay(s *Summary) {
	if s.Count() == 0 {
		return
	}
	counts := make(map[string]int, len(timeBuckets))
	for _, e := range s.expenses {
		hour := e.Date.Hour()
		for _, b := range timeBuckets {
			if b.contains(hour) {
				counts[b.name]++
				break
			}
		}
	}

	peak := timeBuckets[0].name
	for _, b := range timeBuckets[1:] {
		if counts[b.name] > counts[peak] {
			peak = b.name
		}
	}
	in.observe("Peak spending time",
		"Most of your purchases (%d of %d) happen in the %s.",
		counts[peak], s.Count(), peak)
}

// observeSpendingFrequency reports how many days of the period saw any
// spending, and the transaction rate.
func (in *Insights) observeSpendingFrequency(s *Summary) {
	if s.Count() == 0 {
		return
	}
	days := s.DaysInPeriod()
	if days <= 0 {
		return
	}
	activeDays := len(s.ByDay())
	frequency := float64(activeDays) / float64(days) * 100
	perDay := float64(s.Count()) / float64(days)
	in.observe("Spending frequency",
		"You spent money on %.0f%% of days (%d of %d), averaging %.1f transactions per day.",
		frequency, activeDays, days, perDay)
}

// observeCategoryPair reports the category pair that most often shares a
// day.
func (in *Insights) observeCategoryPair(s *Summary) {
	byDay := make(map[string]map[model.Category]bool)
	for _, e := range s.expenses {
		key := e.Date.Format(dayKeyFormat)
		if byDay[key] == nil {
			byDay[key] = make(map[model.Category]bool)
		}
		byDay[key][e.Category] = true
	}

	type pair struct{ a, b model.Category }
	pairCounts := make(map[pair]int)
	for _, cats := range byDay {
		list := make([]model.Category, 0, len(cats))
		for c := range cats {
			list = append(list, c)
		}
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				pairCounts[pair{list[i], list[j]}]++
			}
		}
	}
	if len(pairCounts) == 0 {
		return
	}

	var top pair
	topCount := 0
	for p, count := range pairCounts {
		if count > topCount || (count == topCount && (p.a < top.a || (p.a == top.a && p.b < top.b))) {
			top, topCount = p, count
		}
	}
	if topCount < 2 {
		return
	}
	in.observe("Categories that travel together",
		"%s and %s showed up on the same day %d times.",
		top.a.Meta().Label, top.b.Meta().Label, topCount)
}

// observeWeeklyPeak reports the weekday with the highest average spend.
func (in *Insights) observeWeeklyPeak(s *Summary) {
	averages := s.WeekdayAverages()
	if len(averages) == 0 {
		return
	}
	peak := time.Sunday
	found := false
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		avg, ok := averages[wd]
		if !ok {
			continue
		}
		if !found || avg > averages[peak] {
			peak, found = wd, true
		}
	}
	in.observe("Weekly peak",
		"%s is your most expensive day, averaging %.2f %s.",
		peak, averages[peak], s.currency)
}

// recommendTopCategoryBudget suggests a ceiling for the dominant
// category at 80% of its three-month average.
func (in *Insights) recommendTopCategoryBudget(s *Summary, all []model.Expense, conv *currency.Converter, now time.Time) {
	byCategory := s.ByCategory()
	if len(byCategory) == 0 {
		return
	}
	top := byCategory[0]

	var threeMonthTotal float64
	window := timewindow.Window{Start: now.AddDate(0, -3, 0), End: now, IncludeEnd: true}
	for _, e := range all {
		if e.Category == top.Category && window.Contains(e.Date) {
			threeMonthTotal += conv.ConvertedAmount(e, s.currency)
		}
	}
	if threeMonthTotal <= 0 {
		return
	}
	monthlyAverage := threeMonthTotal / 3
	in.recommend(top.Amount*0.20, "Cap your top category",
		"%s is your biggest category. Try a monthly cap of %.2f %s, 80%% of your recent average.",
		top.Category.Meta().Label, monthlyAverage*0.80, s.currency)
}

// recommendWeekendReview flags weekend-heavy spending.
func (in *Insights) recommendWeekendReview(s *Summary) {
	if s.total <= 0 {
		return
	}
	var weekend float64
	for i, e := range s.expenses {
		wd := e.Date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			weekend += s.amounts[i]
		}
	}
	if weekend <= s.total*0.40 {
		return
	}
	in.recommend(weekend*0.25, "Weekend spending",
		"Weekends account for %.0f%% of your spending. Planning one cheap weekend activity could save around %.2f %s.",
		weekend/s.total*100, weekend*0.25, s.currency)
}

// recommendSubscriptionReview flags subscription creep.
func (in *Insights) recommendSubscriptionReview(s *Summary) {
	if s.total <= 0 {
		return
	}
	subs := s.CategoryAmount(model.CategorySubscriptions)
	if subs <= s.total*0.10 {
		return
	}
	in.recommend(subs*0.30, "Subscription audit",
		"Subscriptions are %.0f%% of your spending (%.2f %s). Cancel the ones you have not used this month.",
		subs/s.total*100, subs, s.currency)
}

// recommendDiningBalance flags dining spend outpacing groceries.
func (in *Insights) recommendDiningBalance(s *Summary) {
	dining := s.CategoryAmount(model.CategoryDining)
	groceries := s.CategoryAmount(model.CategoryGroceries)
	if dining <= 0 || dining <= groceries*1.5 {
		return
	}
	in.recommend(dining*0.30, "Eat in more often",
		"You spent %.2f %s on dining versus %.2f %s on groceries. Shifting a few meals home could save about %.2f %s.",
		dining, s.currency, groceries, s.currency, dining*0.30, s.currency)
}

// recommendLateNightReview flags purchases made between 22:00 and 05:00.
func (in *Insights) recommendLateNightReview(s *Summary) {
	var lateTotal float64
	var lateCount int
	for i, e := range s.expenses {
		hour := e.Date.Hour()
		if hour >= 22 || hour < 5 {
			lateTotal += s.amounts[i]
			lateCount++
		}
	}
	if lateCount == 0 {
		return
	}
	in.recommend(lateTotal*0.50, "Late-night purchases",
		"%d purchases were made between 22:00 and 05:00, totaling %.2f %s. Sleep on it before buying.",
		lateCount, lateTotal, s.currency)
}

// recommendImpulseControl flags clusters of small non-grocery purchases.
func (in *Insights) recommendImpulseControl(s *Summary) {
	if s.Count() == 0 {
		return
	}
	threshold := s.DailyAverage() * 0.10
	if threshold <= 0 {
		return
	}
	var impulseTotal float64
	var impulseCount int
	for i, e := range s.expenses {
		if s.amounts[i] < threshold && e.Category != model.CategoryGroceries {
			impulseTotal += s.amounts[i]
			impulseCount++
		}
	}
	if float64(impulseCount) <= float64(s.Count())*0.25 {
		return
	}
	in.recommend(impulseTotal*0.60, "Impulse purchases",
		"%d of %d transactions are small non-grocery buys. They add up to %.2f %s.",
		impulseCount, s.Count(), impulseTotal, s.currency)
}

// recommendSavingsNudge nudges low-essential spenders toward saving the
// slack.
func (in *Insights) recommendSavingsNudge(s *Summary) {
	if s.total <= 0 {
		return
	}
	essential := s.EssentialPercentage()
	if essential >= 50 {
		return
	}
	var discretionary float64
	for i, e := range s.expenses {
		if e.Category.IsDiscretionary() {
			discretionary += s.amounts[i]
		}
	}
	in.recommend(discretionary*0.20, "Room to save",
		"Only %.0f%% of your spending is essential. Redirecting a fifth of the rest would save %.2f %s.",
		essential, discretionary*0.20, s.currency)
}
