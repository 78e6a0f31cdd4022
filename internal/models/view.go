package models

// ItemView is the JSON-friendly flattened form of a LineItem, tagged by Type.
type ItemView struct {
	Type           string `json:"type"` // "exercise", "rest" or "comment"
	Reps           int    `json:"reps,omitempty"`
	Distance       int    `json:"distance,omitempty"`
	Stroke         string `json:"stroke,omitempty"`
	Specifications string `json:"specifications,omitempty"`
	Pace           string `json:"pace,omitempty"`
	Interval       int    `json:"interval,omitempty"`
	TotalYardage   int    `json:"total_yardage,omitempty"`
	EstimatedTime  int    `json:"estimated_time,omitempty"`
	Duration       int    `json:"duration,omitempty"`
	Text           string `json:"text,omitempty"`
}

// SetView is the JSON form of a Set.
type SetView struct {
	Multiplier    int        `json:"multiplier"`
	Items         []ItemView `json:"items"`
	Yardage       int        `json:"yardage"`
	EstimatedTime int        `json:"estimated_time"`
}

// PracticeView is the JSON form of a Practice, as consumed by the CLI and
// the MCP tools.
type PracticeView struct {
	Sets          []SetView `json:"sets"`
	TotalYardage  int       `json:"total_yardage"`
	EstimatedTime int       `json:"estimated_time"`
	Difficulty    int       `json:"difficulty"`
	Comments      []string  `json:"comments"`
}

// NewPracticeView flattens a Practice into its JSON form.
func NewPracticeView(p *Practice) PracticeView {
	view := PracticeView{
		Sets:          make([]SetView, 0, len(p.Sets)),
		TotalYardage:  p.TotalYardage,
		EstimatedTime: p.EstimatedTime,
		Difficulty:    p.Difficulty,
		Comments:      p.Comments,
	}
	if view.Comments == nil {
		view.Comments = []string{}
	}
	for _, set := range p.Sets {
		sv := SetView{
			Multiplier:    set.Multiplier,
			Items:         make([]ItemView, 0, len(set.Items)),
			Yardage:       set.Yardage,
			EstimatedTime: set.EstimatedTime,
		}
		for _, item := range set.Items {
			sv.Items = append(sv.Items, viewOf(item))
		}
		view.Sets = append(view.Sets, sv)
	}
	return view
}

func viewOf(item LineItem) ItemView {
	switch it := item.(type) {
	case Exercise:
		return ItemView{
			Type:           "exercise",
			Reps:           it.Reps,
			Distance:       it.Distance,
			Stroke:         it.Stroke,
			Specifications: it.Specifications,
			Pace:           it.Pace,
			Interval:       it.Interval,
			TotalYardage:   it.TotalYardage,
			EstimatedTime:  it.EstimatedTime,
		}
	case Rest:
		return ItemView{Type: "rest", Duration: it.Duration}
	case Comment:
		return ItemView{Type: "comment", Text: it.Text}
	}
	return ItemView{}
}
