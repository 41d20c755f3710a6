// Package timewindow resolves time-frame selectors into concrete
// intervals relative to a reference instant.
package timewindow

import (
	"time"

	"github.com/Veraticus/centsible/internal/model"
)

// Window is a resolved time interval. Calendar windows are half-open
// [Start, End); rolling windows include their end instant. An All window
// admits everything.
type Window struct {
	Start      time.Time
	End        time.Time
	All        bool
	IncludeEnd bool
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.All {
		return true
	}
	if t.Before(w.Start) {
		return false
	}
	if w.IncludeEnd {
		return !t.After(w.End)
	}
	return t.Before(w.End)
}

// Custom builds an explicit half-open window.
func Custom(start, end time.Time) Window {
	return Window{Start: start, End: end}
}

// Resolve maps a time frame to its window given now. Calendar frames
// (today, week, month, year) align to calendar boundaries; quarter and
// halfYear are rolling lookbacks ending at now.
func Resolve(frame model.TimeFrame, now time.Time) Window {
	switch frame {
	case model.FrameAll:
		return Window{All: true}
	case model.FrameToday:
		start := startOfDay(now)
		return Window{Start: start, End: start.AddDate(0, 0, 1)}
	case model.FrameWeek:
		start := startOfISOWeek(now)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}
	case model.FrameMonth:
		start := startOfMonth(now)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}
	case model.FrameYear:
		start := startOfYear(now)
		return Window{Start: start, End: start.AddDate(1, 0, 0)}
	case model.FrameQuarter:
		return Window{Start: now.AddDate(0, -3, 0), End: now, IncludeEnd: true}
	case model.FrameHalfYear:
		return Window{Start: now.AddDate(0, -6, 0), End: now, IncludeEnd: true}
	default:
		return Window{All: true}
	}
}

// Previous returns the immediately preceding same-length window:
// calendar-adjacent for calendar frames, rolling-adjacent for rolling
// frames. All and custom frames have no defined predecessor; the returned
// window matches nothing.
func Previous(frame model.TimeFrame, now time.Time) Window {
	switch frame {
	case model.FrameToday:
		start := startOfDay(now).AddDate(0, 0, -1)
		return Window{Start: start, End: start.AddDate(0, 0, 1)}
	case model.FrameWeek:
		end := startOfISOWeek(now)
		return Window{Start: end.AddDate(0, 0, -7), End: end}
	case model.FrameMonth:
		end := startOfMonth(now)
		return Window{Start: end.AddDate(0, -1, 0), End: end}
	case model.FrameYear:
		end := startOfYear(now)
		return Window{Start: end.AddDate(-1, 0, 0), End: end}
	case model.FrameQuarter:
		return Window{Start: now.AddDate(0, -6, 0), End: now.AddDate(0, -3, 0), IncludeEnd: true}
	case model.FrameHalfYear:
		return Window{Start: now.AddDate(0, -12, 0), End: now.AddDate(0, -6, 0), IncludeEnd: true}
	default:
		return Window{}
	}
}

// Days returns the day count used for per-day averages. Open calendar
// frames count elapsed days so far; quarter and halfYear use the fixed
// 90 and 180 day approximations. All returns 0 and callers substitute
// the observed span.
func Days(frame model.TimeFrame, now time.Time) int {
	switch frame {
	case model.FrameToday:
		return 1
	case model.FrameWeek:
		return daysSinceISOWeekStart(now) + 1
	case model.FrameMonth:
		return now.Day()
	case model.FrameYear:
		return now.YearDay()
	case model.FrameQuarter:
		return 90
	case model.FrameHalfYear:
		return 180
	default:
		return 0
	}
}

// Months returns the month count used for period budgets. Frames without
// a defined month span (today, all, custom) fall back to one month.
func Months(frame model.TimeFrame) float64 {
	switch frame {
	case model.FrameWeek:
		return 0.25
	case model.FrameMonth:
		return 1
	case model.FrameQuarter:
		return 3
	case model.FrameHalfYear:
		return 6
	case model.FrameYear:
		return 12
	default:
		return 1
	}
}

// RollingMonths slices the n months before now into month-long rolling
// segments, oldest first. Used for month-over-month trend analysis.
func RollingMonths(now time.Time, n int) []Window {
	windows := make([]Window, 0, n)
	for i := n - 1; i >= 0; i-- {
		windows = append(windows, Window{
			Start:      now.AddDate(0, -(i + 1), 0),
			End:        now.AddDate(0, -i, 0),
			IncludeEnd: i == 0,
		})
	}
	return windows
}

// RollingQuarters slices the 3n months before now into quarter-long
// rolling segments, oldest first.
func RollingQuarters(now time.Time, n int) []Window {
	windows := make([]Window, 0, n)
	for i := n - 1; i >= 0; i-- {
		windows = append(windows, Window{
			Start:      now.AddDate(0, -3*(i+1), 0),
			End:        now.AddDate(0, -3*i, 0),
			IncludeEnd: i == 0,
		})
	}
	return windows
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
}

func daysSinceISOWeekStart(t time.Time) int {
	// ISO weeks start on Monday.
	return (int(t.Weekday()) + 6) % 7
}

func startOfISOWeek(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, -daysSinceISOWeekStart(t))
}
