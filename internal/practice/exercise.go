package practice

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/meltforce/swimnotes/internal/models"
)

var (
	// "4x50", "4 x 50", "4x50s"
	repsDistanceRe = regexp.MustCompile(`(?i)^(\d+)\s*x\s*(\d+)s?`)
	// "200 Free", a single distance directly followed by a word
	singleDistanceRe = regexp.MustCompile(`(?i)^(\d+)s?\s+[a-z]`)
	// fallback extraction for lines that fit neither shape
	leadingRepsRe    = regexp.MustCompile(`(?i)^(\d+)\s*x`)
	looseDistanceRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)x?\s*(\d+)\s`),
		regexp.MustCompile(`\s(\d+)\s`),
	}

	// "@1:30", "on 1:30", bare "1:30"
	intervalClockRe = regexp.MustCompile(`(?i)(@|on\s+)?(\d+):(\d+)`)
	// "on 2 minutes"
	intervalMinutesRe = regexp.MustCompile(`(?i)on\s+(\d+)\s+minutes?`)
	// "on 1 : 30"
	intervalSpacedRe = regexp.MustCompile(`(?i)on\s+(\d+)\s*:\s*(\d+)`)

	// "desc" is listed before "descend" on purpose: the alternation matches
	// leftmost-first, so "descend" in a line stores pace "desc", which the
	// formatter then round-trips unchanged.
	paceRe = regexp.MustCompile(`(?i)(fast|easy|moderate|build|desc|descend)`)
)

// strokeTokens are tried in this order against the cleaned residual line;
// the first whole-word match wins, so "free" beats "back" in
// "backstroke free drill".
var strokeTokens = []string{
	"free", "freestyle", "fr",
	"back", "backstroke", "bk",
	"breast", "breaststroke", "br",
	"fly", "butterfly", "bf",
	"im", "individual medley",
	"choice", "stroke",
	"nf", "nonfree", "non-free",
	"free-im", "freeim",
}

var strokeTokenRes = compileStrokeTokens()

func compileStrokeTokens() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(strokeTokens))
	for i, tok := range strokeTokens {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(tok) + `\b`)
	}
	return res
}

// residual-cleaning patterns for stroke extraction
var (
	leadingCountsRe   = regexp.MustCompile(`^\d+\s*x?\s*\d+s?\s*`)
	clockRe           = regexp.MustCompile(`\d+:\d+`)
	intervalMarkerRe  = regexp.MustCompile(`(?i)@|\bon\b`)
	paceWordRe        = regexp.MustCompile(`(?i)\b(fast|easy|moderate|build|desc|descend)\b`)
	onMinutesPhraseRe = regexp.MustCompile(`(?i)\bon\s+\d+\s+minutes?\b`)
	whitespaceRe      = regexp.MustCompile(`\s+`)
)

// transitionSeconds is added between consecutive repetitions when estimating
// swim time without a send-off interval.
const transitionSeconds = 10

// parseExercise extracts an Exercise from a line already classified as one.
// Extraction never fails: unreadable pieces fall back to reps 1, distance 50,
// stroke Free.
func parseExercise(line string) models.Exercise {
	reps, distance := 1, 50

	if m := repsDistanceRe.FindStringSubmatch(line); m != nil {
		reps = atoiDefault(m[1], 1)
		distance = atoiDefault(m[2], 50)
	} else if m := singleDistanceRe.FindStringSubmatch(line); m != nil {
		reps = 1
		distance = atoiDefault(m[1], 50)
	} else {
		if m := leadingRepsRe.FindStringSubmatch(line); m != nil {
			reps = atoiDefault(m[1], 1)
		}
		for _, re := range looseDistanceRes {
			if m := re.FindStringSubmatch(line); m != nil {
				distance = atoiDefault(m[1], 50)
				break
			}
		}
	}

	// Invariant: reps and distance stay positive even for degenerate input
	// like "0x0 free".
	if reps < 1 {
		reps = 1
	}
	if distance < 1 {
		distance = 50
	}

	interval := parseInterval(line)

	pace := ""
	if m := paceRe.FindStringSubmatch(line); m != nil {
		pace = m[1]
	}

	stroke, specs := parseStroke(line)

	// With a send-off the exercise is assumed to consume its full interval
	// each repetition; otherwise fall back to the base pace estimate.
	estimated := reps * interval
	if interval == 0 {
		estimated = estimateSwimTime(reps, distance, stroke, pace)
	}

	return models.Exercise{
		Reps:           reps,
		Distance:       distance,
		Stroke:         stroke,
		Specifications: specs,
		Pace:           pace,
		Interval:       interval,
		TotalYardage:   reps * distance,
		EstimatedTime:  estimated,
		OriginalText:   line,
	}
}

// parseInterval extracts the send-off interval in seconds, 0 when none is
// present. Patterns are tried in a fixed order; the clock form wins.
func parseInterval(line string) int {
	if m := intervalClockRe.FindStringSubmatch(line); m != nil {
		return atoiDefault(m[2], 0)*60 + atoiDefault(m[3], 0)
	}
	if m := intervalMinutesRe.FindStringSubmatch(line); m != nil {
		return atoiDefault(m[1], 0) * 60
	}
	if m := intervalSpacedRe.FindStringSubmatch(line); m != nil {
		return atoiDefault(m[1], 0)*60 + atoiDefault(m[2], 0)
	}
	return 0
}

// parseStroke strips counts, clock times, interval markers and pace words
// from the line, then looks for a canonical stroke token in what remains.
// Leftover words around a found token become the specification string. When
// no token is found the whole residual (title-cased) is the stroke, or Free
// if nothing remains.
func parseStroke(line string) (stroke, specifications string) {
	clean := strings.ToLower(line)
	clean = leadingCountsRe.ReplaceAllString(clean, "")
	clean = clockRe.ReplaceAllString(clean, "")
	clean = intervalMarkerRe.ReplaceAllString(clean, "")
	clean = paceWordRe.ReplaceAllString(clean, "")
	clean = onMinutesPhraseRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	for i, re := range strokeTokenRes {
		if !re.MatchString(clean) {
			continue
		}
		specs := re.ReplaceAllString(clean, "")
		specs = whitespaceRe.ReplaceAllString(specs, " ")
		specs = strings.TrimSpace(specs)
		return models.NormalizeStroke(strokeTokens[i]), specs
	}

	if clean == "" {
		return models.StrokeFree, ""
	}
	return titleCaseWords(clean), ""
}

// estimateSwimTime estimates seconds for reps x distance of a stroke from
// the base pace table, adjusted by pace and with a transition penalty
// between repetitions.
func estimateSwimTime(reps, distance int, stroke, pace string) int {
	perRep := float64(distance) / 100 * float64(models.BasePace(stroke)) * models.PaceMultiplier(pace)
	total := float64(reps)*perRep + float64(reps-1)*transitionSeconds
	return int(math.Round(total))
}

func titleCaseWords(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

func atoiDefault(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
