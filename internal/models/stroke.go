package models

import "strings"

// Canonical stroke display names.
const (
	StrokeFree   = "Free"
	StrokeBack   = "Back"
	StrokeBreast = "Breast"
	StrokeFly    = "Fly"
	StrokeIM     = "IM"
	StrokeDrill  = "Drill"
	StrokeKick   = "Kick"
	StrokeChoice = "Choice"
)

// strokeMap maps lowercased stroke tokens as coaches type them to their
// canonical display names. Tokens absent here (bk, br, bf, nf, stroke, ...)
// pass through unchanged.
var strokeMap = map[string]string{
	"fr":                StrokeFree,
	"free":              StrokeFree,
	"freestyle":         StrokeFree,
	"back":              StrokeBack,
	"backstroke":        StrokeBack,
	"breast":            StrokeBreast,
	"breaststroke":      StrokeBreast,
	"fly":               StrokeFly,
	"butterfly":         StrokeFly,
	"im":                StrokeIM,
	"individual medley": StrokeIM,
	"drill":             StrokeDrill,
	"kick":              StrokeKick,
	"choice":            StrokeChoice,
}

// NormalizeStroke returns the canonical display name for a stroke token.
func NormalizeStroke(token string) string {
	if canonical, ok := strokeMap[strings.ToLower(token)]; ok {
		return canonical
	}
	return token
}

// basePacePer100 is a rough seconds-per-100-yards pace per stroke, used to
// estimate swim time when no send-off interval is given.
var basePacePer100 = map[string]int{
	StrokeFree:   75,
	StrokeBack:   85,
	StrokeBreast: 95,
	StrokeFly:    90,
	StrokeIM:     90,
	StrokeDrill:  120,
	StrokeKick:   150,
}

// BasePace returns the base pace for a stroke. Unknown strokes swim at the
// freestyle pace.
func BasePace(stroke string) int {
	if pace, ok := basePacePer100[stroke]; ok {
		return pace
	}
	return basePacePer100[StrokeFree]
}

// paceMultipliers adjust the base pace for pace keywords.
var paceMultipliers = map[string]float64{
	"fast":     0.85,
	"moderate": 1.0,
	"easy":     1.15,
	"build":    1.0,
	"desc":     1.0,
	"descend":  1.0,
}

// PaceMultiplier returns the time multiplier for a pace keyword, 1.0 for
// anything unrecognized (including the empty pace).
func PaceMultiplier(pace string) float64 {
	if m, ok := paceMultipliers[strings.ToLower(pace)]; ok {
		return m
	}
	return 1.0
}

// BasePaces returns a copy of the per-stroke base pace table.
func BasePaces() map[string]int {
	out := make(map[string]int, len(basePacePer100))
	for stroke, pace := range basePacePer100 {
		out[stroke] = pace
	}
	return out
}
