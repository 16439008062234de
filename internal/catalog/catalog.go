// Package catalog lists the calculators the site publishes. The list drives
// the calculators API, sitemap.xml and robots.txt, and is read either from
// memory or from the calculators table.
package catalog

import (
	"context"
	"fmt"
	"slices"
)

type Entry struct {
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Path        string  `json:"path"`
	Priority    float64 `json:"priority"`
	ChangeFreq  string  `json:"change_freq"`
	Position    int     `json:"position"`
}

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Get(ctx context.Context, slug string) (Entry, error)
}

// Defaults is the built-in catalog. The seed migration inserts the same rows.
func Defaults() []Entry {
	return []Entry{
		{"dunk", "Dunk Calculator", "Find the vertical jump you need to dunk on any rim height.", "/dunk-calculator", 1.0, "monthly", 1},
		{"vertical", "Vertical Jump Calculator", "Measure your vertical from hang time, reach or a direct measurement.", "/vertical-jump-calculator", 0.9, "monthly", 2},
		{"reach", "Standing Reach Calculator", "Estimate or verify your standing reach from height and arm span.", "/standing-reach-calculator", 0.8, "monthly", 3},
		{"approach", "Approach vs Standing Jump", "Compare your approach and standing jumps to find your jumping style.", "/approach-vs-standing-jump", 0.8, "monthly", 4},
		{"fatigue", "Jump Fatigue Calculator", "Track jump-height loss after training and estimate recovery time.", "/jump-fatigue-calculator", 0.7, "monthly", 5},
		{"potential", "Max Vertical Potential", "Project the highest vertical jump you can train for.", "/max-vertical-potential", 0.8, "monthly", 6},
		{"bodyweight", "Ideal Body Weight for Jumping", "Find the body weight and composition that maximise your jump.", "/ideal-jumping-weight", 0.7, "monthly", 7},
	}
}

// Static serves a fixed list of entries.
type Static struct {
	entries []Entry
}

func NewStatic(entries []Entry) *Static {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int { return a.Position - b.Position })
	return &Static{entries: sorted}
}

func (s *Static) List(context.Context) ([]Entry, error) {
	return slices.Clone(s.entries), nil
}

func (s *Static) Get(_ context.Context, slug string) (Entry, error) {
	for _, e := range s.entries {
		if e.Slug == slug {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
}
