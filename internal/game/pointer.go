package game

import (
	"github.com/iburimskiy/particle-backdrop/internal/input"
	"github.com/iburimskiy/particle-backdrop/internal/scene"
)

// pointerTracker turns polled cursor positions into enter/leave/move events.
// Only the topmost region under the pointer counts as hovered.
type pointerTracker struct {
	bus   *input.Bus
	scene *scene.Scene

	seen    bool
	inside  bool
	x, y    float64
	hovered string
}

func newPointerTracker(bus *input.Bus, s *scene.Scene) *pointerTracker {
	return &pointerTracker{bus: bus, scene: s, inside: true}
}

// Update feeds one cursor sample in logical viewport coordinates.
func (p *pointerTracker) Update(x, y, width, height float64) {
	in := x >= 0 && y >= 0 && x < width && y < height

	if in != p.inside {
		p.inside = in
		if in {
			p.emit(input.Enter, input.Document, x, y)
		} else {
			p.hover("", x, y)
			p.emit(input.Leave, input.Document, x, y)
		}
	}
	if !in {
		p.seen = true
		p.x, p.y = x, y
		return
	}

	if !p.seen || x != p.x || y != p.y {
		p.emit(input.Move, input.Document, x, y)
		p.emit(input.Move, input.Surface, x, y)
	}
	p.seen = true
	p.x, p.y = x, y

	id := ""
	if r, ok := p.scene.At(x, y); ok {
		id = r.ID
	}
	p.hover(id, x, y)
}

func (p *pointerTracker) hover(id string, x, y float64) {
	if id == p.hovered {
		return
	}
	if p.hovered != "" {
		p.emit(input.Leave, input.Scope(p.hovered), x, y)
	}
	p.hovered = id
	if id != "" {
		p.emit(input.Enter, input.Scope(id), x, y)
	}
}

func (p *pointerTracker) emit(kind input.Kind, scope input.Scope, x, y float64) {
	p.bus.Emit(input.Event{Kind: kind, Scope: scope, X: x, Y: y})
}

// Hovered returns the id of the region under the pointer, if any.
func (p *pointerTracker) Hovered() string { return p.hovered }
