package practice

import (
	"math"
	"regexp"
	"strings"

	"github.com/meltforce/swimnotes/internal/models"
)

// Difficulty component caps. Yardage dominates: 10,000 total yards alone
// saturates its component.
const (
	yardageCap        = 60.0
	yardageSaturation = 10000.0
	intervalCap       = 25.0
	intensityCap      = 15.0
)

// referenceIntervals holds "moderate" send-off intervals in seconds by
// stroke and distance. An exercise swum on a tighter interval than the
// reference scores higher.
var referenceIntervals = map[string]map[int]int{
	models.StrokeFree:   {25: 25, 50: 50, 100: 75, 200: 160, 400: 340, 500: 430},
	models.StrokeBack:   {25: 30, 50: 60, 100: 90, 200: 190, 400: 400},
	models.StrokeBreast: {25: 35, 50: 70, 100: 110, 200: 230, 400: 480},
	models.StrokeFly:    {25: 30, 50: 65, 100: 100, 200: 220, 400: 460},
	models.StrokeIM:     {100: 100, 200: 220, 400: 460},
}

// Intensity keyword tiers, matched against the raw lowercased text.
// The gap patterns tolerate small fillers, e.g. "all-out", "all out".
var (
	highIntensityRes = compileAll(
		"sprint", "fast", "afap", `all.{0,5}out`, `race.{0,5}pace`, "max", "explosive",
	)
	mediumIntensityRes = compileAll(
		"pace", "tempo", "threshold", "build", `neg.{0,5}split`, "descend",
	)
	challengingFormatRes = compileAll(
		"ladder", "pyramid", "broken", `negative.{0,5}split`, `time.{0,5}trial`,
	)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}

// Breakdown carries the three difficulty components, each already capped,
// plus the final rounded score.
type Breakdown struct {
	Yardage   float64 `json:"yardage"`
	Interval  float64 `json:"interval"`
	Intensity float64 `json:"intensity"`
	Total     int     `json:"total"`
}

// difficulty computes the 0-100 score stored on the practice during Parse.
func difficulty(p *models.Practice, raw string) int {
	return ScoreBreakdown(p, raw).Total
}

// ScoreBreakdown computes the difficulty components for a parsed practice
// and its original text.
func ScoreBreakdown(p *models.Practice, raw string) Breakdown {
	b := Breakdown{
		Yardage:   math.Min(yardageCap, float64(p.TotalYardage)/yardageSaturation*yardageCap),
		Interval:  intervalDifficulty(p),
		Intensity: intensityBonus(raw),
	}
	b.Total = int(math.Round(math.Min(100, b.Yardage+b.Interval+b.Intensity)))
	return b
}

// intervalDifficulty averages per-exercise interval tightness, weighted by
// each exercise's yardage contribution, scaled to the interval cap.
// Exercises without a send-off, or with a stroke/distance pair outside the
// reference table, do not participate.
func intervalDifficulty(p *models.Practice) float64 {
	var weightedSum, totalWeight float64

	for _, set := range p.Sets {
		for _, item := range set.Items {
			ex, ok := item.(models.Exercise)
			if !ok || ex.Interval <= 0 {
				continue
			}
			frac, ok := intervalFraction(ex.Distance, ex.Stroke, ex.Interval)
			if !ok {
				continue
			}
			weight := float64(ex.TotalYardage * set.Multiplier)
			weightedSum += frac * weight
			totalWeight += weight
		}
	}

	if totalWeight == 0 {
		return 0
	}
	return math.Min(intervalCap, weightedSum/totalWeight*intervalCap)
}

// intervalFraction maps one exercise's send-off to a [0,1] tightness
// fraction relative to the reference interval for its stroke and distance.
func intervalFraction(distance int, stroke string, interval int) (float64, bool) {
	table, ok := referenceIntervals[stroke]
	if !ok {
		// All off-table strokes swim the freestyle references.
		table = referenceIntervals[models.StrokeFree]
	}
	reference, ok := table[distance]
	if !ok {
		return 0, false
	}

	ratio := float64(reference) / float64(interval)
	switch {
	case ratio >= 1.5:
		return 1.0, true
	case ratio <= 0.8:
		return 0.0, true
	default:
		return (ratio - 0.8) / 0.7, true
	}
}

// intensityBonus scans the raw text for intensity language. Each tier is
// capped independently before weighting.
func intensityBonus(text string) float64 {
	lower := strings.ToLower(text)

	// High tier: 3 points per occurrence, at most 3 counted.
	high := 0
	for _, re := range highIntensityRes {
		high = min(3, high+len(re.FindAllString(lower, -1)))
	}
	bonus := float64(high * 3)

	// Medium tier: 1.5 points per occurrence, at most 2 counted.
	medium := 0
	for _, re := range mediumIntensityRes {
		medium = min(2, medium+len(re.FindAllString(lower, -1)))
	}
	bonus += float64(medium) * 1.5

	// Format tier: flat presence bonus.
	format := 0
	for _, re := range challengingFormatRes {
		if re.MatchString(lower) {
			format = min(1, format+1)
		}
	}
	bonus += float64(format) * 3

	return math.Min(intensityCap, bonus)
}
