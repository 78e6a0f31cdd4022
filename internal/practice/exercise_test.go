package practice

import "testing"

// TestParseExerciseRepsDistance verifies the extraction precedence:
// "NxM" first, then a leading single distance, then the loose fallback.
func TestParseExerciseRepsDistance(t *testing.T) {
	cases := []struct {
		line         string
		reps, dist   int
		totalYardage int
	}{
		{"4x50 Free", 4, 50, 200},
		{"4 x 50 Free", 4, 50, 200},
		{"4x50s back", 4, 50, 200},
		{"30x50 fr on 1:00", 30, 50, 1500},
		{"200 Free easy", 1, 200, 200},
		{"500s choice", 1, 500, 500},
		// Degenerate counts keep the positivity invariant.
		{"0x50 Free", 1, 50, 50},
	}
	for _, c := range cases {
		ex := parseExercise(c.line)
		if ex.Reps != c.reps || ex.Distance != c.dist {
			t.Errorf("parseExercise(%q) reps/dist = %d/%d, want %d/%d",
				c.line, ex.Reps, ex.Distance, c.reps, c.dist)
		}
		if ex.TotalYardage != c.totalYardage {
			t.Errorf("parseExercise(%q) yardage = %d, want %d", c.line, ex.TotalYardage, c.totalYardage)
		}
		if ex.OriginalText != c.line {
			t.Errorf("parseExercise(%q) originalText = %q", c.line, ex.OriginalText)
		}
	}
}

// TestParseExerciseInterval verifies every interval notation.
func TestParseExerciseInterval(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		{"4x50 Free @1:30", 90},
		{"4x50 Free on 1:30", 90},
		{"4x50 Free 1:30", 90},
		{"4x100 Free on 2 minutes", 120},
		{"4x100 Free on 1 minute", 60},
		{"4x50 Free fast", 0},
	}
	for _, c := range cases {
		if got := parseExercise(c.line).Interval; got != c.want {
			t.Errorf("parseExercise(%q) interval = %d, want %d", c.line, got, c.want)
		}
	}
}

// TestParseExercisePace verifies pace keyword capture, preserving the
// coach's capitalization, and the desc/descend alternation order.
func TestParseExercisePace(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"4x50 Free fast 1:00", "fast"},
		{"4x50 Free Fast 1:00", "Fast"},
		{"200 Free easy", "easy"},
		{"4x100 IM moderate 2:30", "moderate"},
		{"4x50 Free descend", "desc"},
		{"4x50 Free", ""},
	}
	for _, c := range cases {
		if got := parseExercise(c.line).Pace; got != c.want {
			t.Errorf("parseExercise(%q) pace = %q, want %q", c.line, got, c.want)
		}
	}
}

// TestParseExerciseStroke verifies stroke normalization and the
// specification residual.
func TestParseExerciseStroke(t *testing.T) {
	cases := []struct {
		line   string
		stroke string
		specs  string
	}{
		{"4x50 Free fast 1:00", "Free", ""},
		{"4x50 fr", "Free", ""},
		{"4x50 backstroke", "Back", ""},
		{"2x100 individual medley", "IM", ""},
		{"4x25 fly 25 left arm 25 right arm", "Fly", "25 left arm 25 right arm"},
		{"4x50 free kick", "Free", "kick"},
		// "free" is searched before "back", so it wins as the stroke and
		// the rest becomes the specification.
		{"4x50 backstroke free drill", "Free", "backstroke drill"},
		// Unmapped token passes through as typed.
		{"4x50 bk", "bk", ""},
		// No token at all: residual is title-cased.
		{"4x50 kick", "Kick", ""},
		{"4x25 dolphin dives", "Dolphin Dives", ""},
		// Nothing left after cleaning: freestyle by default.
		{"4x50 fast", "Free", ""},
	}
	for _, c := range cases {
		ex := parseExercise(c.line)
		if ex.Stroke != c.stroke {
			t.Errorf("parseExercise(%q) stroke = %q, want %q", c.line, ex.Stroke, c.stroke)
		}
		if ex.Specifications != c.specs {
			t.Errorf("parseExercise(%q) specs = %q, want %q", c.line, ex.Specifications, c.specs)
		}
	}
}

// TestParseExerciseEstimatedTime verifies both the interval-based estimate
// and the base-pace fallback with its transition penalty.
func TestParseExerciseEstimatedTime(t *testing.T) {
	cases := []struct {
		line string
		want int
	}{
		// With a send-off: reps x interval.
		{"4x50 Free fast 1:00", 240},
		{"2x100 IM moderate 2:30", 300},
		// Base pace: 4 reps x (50/100 x 75) + 3 x 10.
		{"4x50 Free", 180},
		// Easy 200 free: 200/100 x 75 x 1.15 = 172.5, rounded.
		{"200 Free easy", 173},
		// Fly: 4 x (25/100 x 90) + 30.
		{"4x25 fly", 120},
		// Kick pace dominates: 4 x (50/100 x 150) + 30.
		{"4x50 kick", 330},
	}
	for _, c := range cases {
		if got := parseExercise(c.line).EstimatedTime; got != c.want {
			t.Errorf("parseExercise(%q) estimatedTime = %d, want %d", c.line, got, c.want)
		}
	}
}
