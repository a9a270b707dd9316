// Package scene holds the static page content drawn over the backdrop. It
// only supplies hit areas and target descriptions; it has no behavior of its own.
package scene

import (
	"fmt"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/cursor"
)

// Region is an axis-aligned rectangle of page content.
type Region struct {
	ID      string
	Label   string
	X, Y    float64
	Width   float64
	Height  float64
	Role    string
	Classes []string
}

// Contains reports whether (x, y) lies inside the region.
func (r Region) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

func (r Region) Target() cursor.Target {
	return cursor.Target{ID: r.ID, Role: r.Role, Classes: r.Classes}
}

// Scene is an ordered list of regions; later regions are drawn on top.
type Scene struct {
	regions []Region
}

func New(regions []config.RegionConfig) (*Scene, error) {
	s := &Scene{}
	for _, rc := range regions {
		err := s.Add(Region{
			ID:      rc.ID,
			Label:   rc.Label,
			X:       rc.X,
			Y:       rc.Y,
			Width:   rc.Width,
			Height:  rc.Height,
			Role:    rc.Role,
			Classes: rc.Classes,
		})
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends r on top of the existing regions.
func (s *Scene) Add(r Region) error {
	if r.ID == "" {
		return fmt.Errorf("scene: region %q has no id", r.Label)
	}
	for _, existing := range s.regions {
		if existing.ID == r.ID {
			return fmt.Errorf("scene: duplicate region id %q", r.ID)
		}
	}
	s.regions = append(s.regions, r)
	return nil
}

func (s *Scene) Regions() []Region { return s.regions }

// At returns the topmost region containing (x, y).
func (s *Scene) At(x, y float64) (Region, bool) {
	for i := len(s.regions) - 1; i >= 0; i-- {
		if s.regions[i].Contains(x, y) {
			return s.regions[i], true
		}
	}
	return Region{}, false
}

// Targets lists every region as a cursor target. It satisfies cursor.TargetQuery.
func (s *Scene) Targets() []cursor.Target {
	targets := make([]cursor.Target, len(s.regions))
	for i, r := range s.regions {
		targets[i] = r.Target()
	}
	return targets
}
