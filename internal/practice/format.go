package practice

import (
	"fmt"
	"strings"

	"github.com/meltforce/swimnotes/internal/models"
)

// yardageColumn is the fixed page width the running cumulative-yardage
// markers are right-aligned to. Kept literal for output compatibility with
// existing practice sheets.
const yardageColumn = 190

// Format renders a parsed practice back to canonical text: multiplier
// headers, one tab of indentation under them, and a right-aligned running
// yardage total between sets.
func Format(p *models.Practice) string {
	var b strings.Builder
	cumulative := 0

	for setIndex, set := range p.Sets {
		indent := ""
		if set.Multiplier > 1 {
			fmt.Fprintf(&b, "%dx\n", set.Multiplier)
			indent = "\t"
		}

		for _, item := range set.Items {
			switch it := item.(type) {
			case models.Comment:
				b.WriteString(indent + it.Text + "\n")
			case models.Rest:
				b.WriteString(indent + "Rest " + models.FormatDuration(it.Duration) + "\n")
			case models.Exercise:
				b.WriteString(indent + exerciseLine(it) + "\n")
			}
		}

		cumulative += set.Yardage * set.Multiplier
		if setIndex < len(p.Sets)-1 {
			marker := fmt.Sprintf("%d yards", cumulative)
			padding := yardageColumn - len(marker)
			if padding < 0 {
				padding = 0
			}
			b.WriteString("\n" + strings.Repeat(" ", padding) + marker + "\n\n")
		} else {
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String())
}

// exerciseLine renders one exercise without indentation. Reps are shown only
// when greater than one.
func exerciseLine(ex models.Exercise) string {
	stroke := ex.Stroke
	if ex.Specifications != "" {
		stroke = fmt.Sprintf("%s (%s)", ex.Stroke, ex.Specifications)
	}

	pace := ""
	if ex.Pace != "" {
		pace = " " + ex.Pace
	}

	interval := ""
	if ex.Interval > 0 {
		interval = " " + models.FormatDuration(ex.Interval)
	}

	if ex.Reps > 1 {
		return fmt.Sprintf("%d x %d %s%s%s", ex.Reps, ex.Distance, stroke, pace, interval)
	}
	return fmt.Sprintf("%d %s%s%s", ex.Distance, stroke, pace, interval)
}
