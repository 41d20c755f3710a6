package report

import (
	"fmt"
	"strings"

	"github.com/Veraticus/centsible/internal/analytics"
	"github.com/Veraticus/centsible/internal/currency"
	"github.com/Veraticus/centsible/internal/model"
)

// Formatter renders summaries, scores, and insights for terminal display.
type Formatter struct {
	styles *Styles
}

// NewFormatter creates a formatter with default styles.
func NewFormatter() *Formatter {
	return &Formatter{styles: NewStyles()}
}

// FormatWellness renders the full wellness report: spending overview
// with the previous-period trend, score box, and category breakdown.
func (f *Formatter) FormatWellness(summary *analytics.Summary, result analytics.ScoreResult, settings model.BudgetSettings, conv *currency.Converter, comparison analytics.PeriodComparison) string {
	var sections []string

	title := f.styles.Title.Render(fmt.Sprintf("💰 Spending report — %s", frameLabel(summary.Frame())))
	sections = append(sections, title)

	sections = append(sections, f.formatOverview(summary, settings, conv, comparison))
	sections = append(sections, f.formatScore(result))

	if byCategory := summary.ByCategory(); len(byCategory) > 0 {
		sections = append(sections, f.formatCategories(byCategory, summary.Total(), summary.Currency()))
	}

	return strings.Join(sections, "\n\n")
}

// FormatInsights renders pattern observations and recommendations.
func (f *Formatter) FormatInsights(insights analytics.Insights, displayCurrency string) string {
	if len(insights.Observations) == 0 && len(insights.Recommendations) == 0 {
		return f.styles.Subtle.Render("Not enough spending history for insights yet.")
	}

	var sections []string

	if len(insights.Observations) > 0 {
		var lines []string
		lines = append(lines, f.styles.Subtitle.Render("Patterns"))
		for _, obs := range insights.Observations {
			lines = append(lines,
				fmt.Sprintf("%s %s", f.styles.Info.Render("•"), f.styles.Normal.Bold(true).Render(obs.Title)),
				"  "+obs.Description)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(insights.Recommendations) > 0 {
		var lines []string
		lines = append(lines, f.styles.Subtitle.Render("Recommendations"))
		for _, rec := range insights.Recommendations {
			saving := f.styles.Success.Render(
				fmt.Sprintf("save ~%.2f %s", rec.PotentialSaving, displayCurrency))
			lines = append(lines,
				fmt.Sprintf("%s %s (%s)", f.styles.Info.Render("→"), f.styles.Normal.Bold(true).Render(rec.Title), saving),
				"  "+rec.Description)
		}
		sections = append(sections, f.styles.InsightBox.Render(strings.Join(lines, "\n")))
	}

	return strings.Join(sections, "\n\n")
}

func (f *Formatter) formatOverview(summary *analytics.Summary, settings model.BudgetSettings, conv *currency.Converter, comparison analytics.PeriodComparison) string {
	cur := summary.Currency()
	lines := []string{
		fmt.Sprintf("Total spent:     %s", f.styles.Amount.Render(fmt.Sprintf("%.2f %s", summary.Total(), cur))),
		fmt.Sprintf("Transactions:    %d", summary.Count()),
		fmt.Sprintf("Daily average:   %.2f %s", summary.DailyAverage(), cur),
		fmt.Sprintf("Essential share: %.0f%%", summary.EssentialPercentage()),
	}

	if comparison.Defined && comparison.PreviousTotal > 0 {
		change := comparison.ChangePercent(summary.Total())
		rendered := f.styles.Success.Render(fmt.Sprintf("%+.0f%%", change))
		if change > 0 {
			rendered = f.styles.Warning.Render(fmt.Sprintf("%+.0f%%", change))
		}
		lines = append(lines, fmt.Sprintf("Vs previous:     %s (%.2f %s then)",
			rendered, comparison.PreviousTotal, cur))
	}

	if budget := analytics.PeriodBudget(settings, conv, cur, summary.Frame()); budget > 0 {
		remaining := summary.Remaining(settings, conv)
		rendered := f.styles.Success.Render(fmt.Sprintf("%.2f %s", remaining, cur))
		if remaining < 0 {
			rendered = f.styles.OverBudget.Render(fmt.Sprintf("%.2f %s over", -remaining, cur))
		}
		lines = append(lines,
			fmt.Sprintf("Period budget:   %.2f %s", budget, cur),
			fmt.Sprintf("Remaining:       %s", rendered))
	}

	return strings.Join(lines, "\n")
}

func (f *Formatter) formatScore(result analytics.ScoreResult) string {
	assessment := analytics.Describe(result.Score, result.Frame)
	tierStyle := f.styles.ForTier(assessment.Tier)

	scoreLine := fmt.Sprintf("%s  %s",
		f.styles.Score.Render(fmt.Sprintf("%.0f/100", result.Score)),
		tierStyle.Render(assessment.Title))

	bar := f.styles.RenderProgressBar(result.Score/100, 30)

	content := strings.Join([]string{
		scoreLine,
		bar,
		f.styles.Subtle.Render(assessment.Description),
	}, "\n")

	return f.styles.ScoreBox.Render(content)
}

func (f *Formatter) formatCategories(totals []analytics.CategoryTotal, total float64, cur string) string {
	lines := []string{f.styles.Subtitle.Render("By category")}

	for _, ct := range totals {
		share := 0.0
		if total > 0 {
			share = ct.Amount / total
		}
		meta := ct.Category.Meta()
		lines = append(lines, fmt.Sprintf("%s %-14s %10.2f %s  %s %3.0f%%",
			meta.Icon,
			meta.Label,
			ct.Amount,
			cur,
			f.styles.RenderProgressBar(share, 16),
			share*100))
	}

	return f.styles.CategoryBox.Render(strings.Join(lines, "\n"))
}

func frameLabel(frame model.TimeFrame) string {
	switch frame {
	case model.FrameAll:
		return "all time"
	case model.FrameToday:
		return "today"
	case model.FrameWeek:
		return "this week"
	case model.FrameMonth:
		return "this month"
	case model.FrameQuarter:
		return "last 3 months"
	case model.FrameHalfYear:
		return "last 6 months"
	case model.FrameYear:
		return "this year"
	default:
		return string(frame)
	}
}
