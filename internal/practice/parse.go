package practice

import (
	"strings"

	"github.com/meltforce/swimnotes/internal/models"
)

// Parse converts raw practice text into a Practice. It is total over its
// input: lines that match nothing become comments, and empty input yields an
// empty practice with all-zero metrics. Parse never returns an error.
func Parse(raw string) *models.Practice {
	p := &models.Practice{
		Sets:     []models.Set{},
		Comments: []string{},
	}
	if raw == "" {
		return p
	}

	var current *models.Set

	commit := func() {
		if current != nil && len(current.Items) > 0 {
			p.Sets = append(p.Sets, *current)
		}
	}

	for _, rawLine := range strings.Split(raw, "\n") {
		line := strings.TrimSpace(rawLine)

		switch {
		case line == "":
			// Blank line closes the open set.
			commit()
			current = nil

		case isSetMultiplier(line):
			commit()
			current = &models.Set{Multiplier: parseMultiplier(line)}

		case isExercise(line):
			ex := parseExercise(line)
			if current == nil {
				current = &models.Set{Multiplier: 1}
			}
			current.Items = append(current.Items, ex)
			current.Yardage += ex.TotalYardage
			current.EstimatedTime += ex.EstimatedTime

		case isRest(line):
			rest := parseRest(line)
			if current == nil {
				current = &models.Set{Multiplier: 1}
			}
			current.Items = append(current.Items, rest)
			current.EstimatedTime += rest.Duration

		default:
			if current == nil {
				current = &models.Set{Multiplier: 1}
			}
			current.Items = append(current.Items, models.Comment{Text: line})
		}
	}
	commit()

	// The multiplier applies once per set, at the practice level.
	for _, set := range p.Sets {
		p.TotalYardage += set.Yardage * set.Multiplier
		p.EstimatedTime += set.EstimatedTime * set.Multiplier
	}

	p.Difficulty = difficulty(p, raw)
	return p
}
