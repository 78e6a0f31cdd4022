// Package practice parses free-form swim practice notes into structured
// sets, derives total yardage, estimated duration and a difficulty score,
// and renders the structure back to canonical text.
//
// Lines are classified by an ordered first-match-wins rule list:
// blank, set multiplier, exercise, rest, comment. Exercise is deliberately
// checked before rest: an exercise line may carry a leading "mm:ss"
// send-off that would otherwise read as a rest declaration, while a bare
// "1:30" line matches no exercise pattern and falls through to rest.
package practice

import (
	"regexp"
	"strconv"
)

var (
	// "3x", "2 rounds", "3 sets"
	multiplierPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\d+x\s*$`),
		regexp.MustCompile(`(?i)^\d+\s*(rounds?|sets?)\s*$`),
	}
	multiplierValueRe = regexp.MustCompile(`^(\d+)`)

	// distance-and-stroke, or any bare "4x50" shape
	exercisePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\d+x?\s*\d+\s*(fr|free|freestyle|back|backstroke|breast|breaststroke|fly|butterfly|im|individual\s*medley|drill|kick)`),
		regexp.MustCompile(`(?i)\d+\s*x\s*\d+`),
	}

	restPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)rest`),
		regexp.MustCompile(`(?i)\d+\s*(min|minutes?|sec|seconds?)\s*(rest|break)?`),
		regexp.MustCompile(`(?i)^\d+:\d+\s*(rest|break)?`),
	}
)

func isSetMultiplier(line string) bool {
	return matchesAny(multiplierPatterns, line)
}

// parseMultiplier extracts the leading integer of a multiplier line.
func parseMultiplier(line string) int {
	m := multiplierValueRe.FindStringSubmatch(line)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 1
	}
	return n
}

func isExercise(line string) bool {
	return matchesAny(exercisePatterns, line)
}

func isRest(line string) bool {
	return matchesAny(restPatterns, line)
}

func matchesAny(patterns []*regexp.Regexp, line string) bool {
	for _, re := range patterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
