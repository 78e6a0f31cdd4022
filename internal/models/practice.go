package models

import "fmt"

// LineItem is one line of a practice: an Exercise, a Rest, or a Comment.
// Consumers switch on the concrete type.
type LineItem interface {
	lineItem()
}

// Exercise is a single swim instruction like "4 x 50 Free fast 1:00".
type Exercise struct {
	Reps           int    // repetition count, at least 1
	Distance       int    // yards per repetition
	Stroke         string // canonical stroke name, or title-cased free text
	Specifications string // residual qualifier text, e.g. "left arm"
	Pace           string // fast/easy/moderate/build/desc as typed, or empty
	Interval       int    // send-off seconds per rep, 0 when none given
	TotalYardage   int    // Reps * Distance
	EstimatedTime  int    // seconds
	OriginalText   string // source line, kept for round-trip display
}

func (Exercise) lineItem() {}

// Rest is an explicit recovery period between swims.
type Rest struct {
	Duration     int // seconds
	OriginalText string
}

func (Rest) lineItem() {}

// Comment is a free-text annotation that contributes no yardage or time.
type Comment struct {
	Text string
}

func (Comment) lineItem() {}

// Set is an ordered group of line items sharing one repetition multiplier.
// Yardage and EstimatedTime are per-round sums; the multiplier is applied
// once at the practice level.
type Set struct {
	Multiplier    int
	Items         []LineItem
	Yardage       int
	EstimatedTime int // seconds
}

// Practice is the parsed form of a full practice text. All fields are
// computed during parsing; the struct is never mutated afterwards.
type Practice struct {
	Sets          []Set
	TotalYardage  int
	EstimatedTime int // seconds
	Difficulty    int // 0-100
	Comments      []string
}

// FormatDuration renders seconds as "H:MM:SS" when at least an hour,
// otherwise "M:SS".
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := seconds % 3600 / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
