package analytics

import "github.com/Veraticus/centsible/internal/model"

// Tier is a qualitative wellness band.
type Tier string

// Wellness tiers, banded at 90/70/50/30.
const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierWarning   Tier = "warning"
	TierCritical  Tier = "critical"
)

// Assessment is the user-facing reading of a wellness score for one
// time frame.
type Assessment struct {
	Tier        Tier
	Title       string
	Description string
	Color       string // terminal hex color
}

// TierFor maps a score onto its band.
func TierFor(score float64) Tier {
	switch {
	case score >= 90:
		return TierExcellent
	case score >= 70:
		return TierGood
	case score >= 50:
		return TierFair
	case score >= 30:
		return TierWarning
	default:
		return TierCritical
	}
}

var tierColors = map[Tier]string{
	TierExcellent: "#4ECDC4",
	TierGood:      "#95E1D3",
	TierFair:      "#FFE66D",
	TierWarning:   "#FFA94D",
	TierCritical:  "#FF6B6B",
}

// tierText holds the frame-specific title and description per tier.
type tierText struct {
	title       string
	description string
}

var tierTexts = map[model.TimeFrame]map[Tier]tierText{
	model.FrameWeek: {
		TierExcellent: {"Stellar week", "Spending this week is comfortably inside your budget. Keep the streak going."},
		TierGood:      {"Solid week", "A few purchases added up, but the week still fits your plan."},
		TierFair:      {"Wobbly week", "This week is drifting past your weekly slice of the budget. A quiet weekend would help."},
		TierWarning:   {"Heavy week", "Spending is well over the weekly pace. Hold off on anything optional for a few days."},
		TierCritical:  {"Blowout week", "This week alone has burned a serious share of the monthly budget. Stop discretionary spending now."},
	},
	model.FrameMonth: {
		TierExcellent: {"Excellent month", "You are on track to finish the month under budget with room to spare."},
		TierGood:      {"Good month", "The month is tracking close to plan. Watch the last week, that is where budgets slip."},
		TierFair:      {"Tight month", "At the current pace you will land over budget. Trim one or two recurring costs."},
		TierWarning:   {"Over-budget month", "The month has already passed its budget. Move remaining spending to essentials only."},
		TierCritical:  {"Runaway month", "Spending is far beyond this month's budget. Review every category for cuts."},
	},
	model.FrameQuarter: {
		TierExcellent: {"Strong quarter", "Three months of steady, under-budget spending. Your habits are working."},
		TierGood:      {"Stable quarter", "The quarter is in decent shape with only mild swings between months."},
		TierFair:      {"Uneven quarter", "Monthly totals are swinging and the quarter is near its limit. Smooth out the big months."},
		TierWarning:   {"Slipping quarter", "The quarter trend points the wrong way. Set a hard monthly ceiling for the next one."},
		TierCritical:  {"Broken quarter", "Most of the quarter ran over budget. A reset of your monthly target is overdue."},
	},
	model.FrameHalfYear: {
		TierExcellent: {"Great half-year", "Six months of discipline. Consider raising your savings rate."},
		TierGood:      {"Healthy half-year", "The half-year mostly stayed on plan, with a couple of heavy months."},
		TierFair:      {"Mixed half-year", "Several months ran over budget. Find the recurring culprits before they compound."},
		TierWarning:   {"Strained half-year", "Over-budget months outnumber the good ones. Your budget and your habits disagree."},
		TierCritical:  {"Unsustainable half-year", "The last six months consistently overshot the budget. Rebuild the plan from essentials up."},
	},
	model.FrameYear: {
		TierExcellent: {"Outstanding year", "A full year inside budget. Your financial base is solid."},
		TierGood:      {"Good year", "The year held together well despite some volatile quarters."},
		TierFair:      {"Patchy year", "Quarterly swings kept the year from settling. Aim for steadier months next year."},
		TierWarning:   {"Difficult year", "Spending outgrew the budget across the year. A materially lower baseline is needed."},
		TierCritical:  {"Critical year", "The year ran far past its budget. Treat next month as a fresh start with a realistic target."},
	},
}

// Describe maps a score and frame to its qualitative assessment. Frames
// without dedicated copy (today, all, custom) borrow the month text.
func Describe(score float64, frame model.TimeFrame) Assessment {
	tier := TierFor(score)
	texts, ok := tierTexts[frame]
	if !ok {
		texts = tierTexts[model.FrameMonth]
	}
	text := texts[tier]
	return Assessment{
		Tier:        tier,
		Title:       text.title,
		Description: text.description,
		Color:       tierColors[tier],
	}
}
