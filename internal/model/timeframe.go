package model

import (
	"errors"
	"fmt"
)

// TimeFrame selects a reporting window relative to "now". Calendar frames
// (today, week, month, year) align to calendar boundaries; quarter and
// halfYear are rolling lookbacks ending at now.
type TimeFrame string

// Time frames.
const (
	FrameAll      TimeFrame = "all"
	FrameToday    TimeFrame = "today"
	FrameWeek     TimeFrame = "week"
	FrameMonth    TimeFrame = "month"
	FrameQuarter  TimeFrame = "quarter"
	FrameHalfYear TimeFrame = "halfyear"
	FrameYear     TimeFrame = "year"
	FrameCustom   TimeFrame = "custom"
)

// ErrUnknownTimeFrame is returned when parsing an unrecognized frame name.
var ErrUnknownTimeFrame = errors.New("unknown time frame")

// ParseTimeFrame converts a user-supplied frame name to a TimeFrame.
func ParseTimeFrame(s string) (TimeFrame, error) {
	switch TimeFrame(s) {
	case FrameAll, FrameToday, FrameWeek, FrameMonth,
		FrameQuarter, FrameHalfYear, FrameYear, FrameCustom:
		return TimeFrame(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTimeFrame, s)
}

// IsRolling reports whether the frame is a rolling lookback rather than a
// calendar-aligned window.
func (f TimeFrame) IsRolling() bool {
	return f == FrameQuarter || f == FrameHalfYear
}
