// Package report renders wellness reports and insights for the terminal.
package report

import (
	"strings"

	"github.com/Veraticus/centsible/internal/analytics"
	"github.com/Veraticus/centsible/internal/cli"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all styling definitions for report formatting.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style

	ScoreBox      lipgloss.Style
	Score         lipgloss.Style
	CategoryBox   lipgloss.Style
	InsightBox    lipgloss.Style
	Amount        lipgloss.Style
	OverBudget    lipgloss.Style
	ProgressFill  lipgloss.Style
	ProgressEmpty lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	s := &Styles{
		Title:    cli.TitleStyle,
		Subtitle: cli.SubtitleStyle,
		Success:  cli.SuccessStyle,
		Warning:  cli.WarningStyle,
		Error:    cli.ErrorStyle,
		Info:     cli.InfoStyle,
		Subtle:   cli.SubtleStyle,
		Normal:   lipgloss.NewStyle(),
	}

	s.ScoreBox = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(cli.PrimaryColor).
		Padding(0, 2)

	s.Score = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.PrimaryColor)

	s.CategoryBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.InfoColor).
		Padding(0, 1).
		MarginTop(1)

	s.InsightBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.SuccessColor).
		Padding(0, 1).
		MarginTop(1)

	s.Amount = lipgloss.NewStyle().Bold(true)

	s.OverBudget = lipgloss.NewStyle().
		Bold(true).
		Foreground(cli.ErrorColor)

	s.ProgressFill = lipgloss.NewStyle().
		Foreground(cli.SuccessColor)

	s.ProgressEmpty = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#333333"))

	return s
}

// ForTier returns the style matching a wellness tier.
func (s *Styles) ForTier(tier analytics.Tier) lipgloss.Style {
	switch tier {
	case analytics.TierExcellent, analytics.TierGood:
		return s.Success
	case analytics.TierFair:
		return s.Warning
	default:
		return s.Error
	}
}

// RenderProgressBar creates a progress bar for a 0..1 fraction.
func (s *Styles) RenderProgressBar(progress float64, width int) string {
	if width <= 0 {
		width = 30
	}

	filled := int(float64(width) * progress)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return s.ProgressFill.Render(strings.Repeat("█", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("░", width-filled))
}
