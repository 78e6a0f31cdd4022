package practice

import (
	"regexp"

	"github.com/meltforce/swimnotes/internal/models"
)

var (
	restClockRe   = regexp.MustCompile(`(\d+):(\d+)`)
	restMinutesRe = regexp.MustCompile(`(?i)(\d+)\s*(min|minutes?)`)
)

// defaultRestSeconds is used when a rest-like line carries no readable
// duration, e.g. "30 sec rest" (only clock and minute forms are understood).
const defaultRestSeconds = 60

// parseRest extracts a Rest from a line already classified as one.
func parseRest(line string) models.Rest {
	duration := defaultRestSeconds
	if m := restClockRe.FindStringSubmatch(line); m != nil {
		duration = atoiDefault(m[1], 0)*60 + atoiDefault(m[2], 0)
	} else if m := restMinutesRe.FindStringSubmatch(line); m != nil {
		duration = atoiDefault(m[1], 1) * 60
	}
	return models.Rest{Duration: duration, OriginalText: line}
}
