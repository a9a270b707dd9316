// Package cursor implements the two-marker pointer indicator: a dot that
// jumps to the pointer on every move and an outline that is repositioned
// once per frame and doubles in size over interactive targets.
package cursor

import (
	"errors"

	"github.com/iburimskiy/particle-backdrop/internal/input"
	"github.com/iburimskiy/particle-backdrop/internal/tick"
)

var (
	// ErrNoMarkers means one of the marker sprites is missing; the indicator is not created.
	ErrNoMarkers = errors.New("cursor: marker missing")
	ErrRunning   = errors.New("cursor: indicator already started")
)

// Marker is one visual element of the indicator.
type Marker interface {
	Move(x, y, scale float64)
	SetOpacity(alpha float64)
}

type Mode int

const (
	Hidden Mode = iota
	Normal
	Enlarged
)

func (m Mode) String() string {
	switch m {
	case Hidden:
		return "hidden"
	case Normal:
		return "visible-normal"
	case Enlarged:
		return "visible-enlarged"
	default:
		return "unknown"
	}
}

// State is the indicator's pointer state in viewport coordinates.
type State struct {
	X, Y     float64
	Visible  bool
	Enlarged bool
}

func (s State) Mode() Mode {
	switch {
	case !s.Visible:
		return Hidden
	case s.Enlarged:
		return Enlarged
	default:
		return Normal
	}
}

// Tracking selects how interactive targets are discovered.
type Tracking int

const (
	// Snapshot queries targets once at Start; later targets are not tracked.
	Snapshot Tracking = iota
	// Delegated listens on every element and consults the query per event.
	Delegated
)

type Options struct {
	Selector      Selector
	Tracking      Tracking
	EnlargedScale float64
}

type Indicator struct {
	dot     Marker
	outline Marker
	query   TargetQuery
	opts    Options

	state   State
	tracked []string

	cancelTick func()
	offs       []func()
}

func New(dot, outline Marker, query TargetQuery, opts Options) (*Indicator, error) {
	if dot == nil || outline == nil {
		return nil, ErrNoMarkers
	}
	if opts.EnlargedScale <= 0 {
		opts.EnlargedScale = 2
	}
	return &Indicator{
		dot:     dot,
		outline: outline,
		query:   query,
		opts:    opts,
		state:   State{Visible: true},
	}, nil
}

// Start registers document and element listeners on bus and subscribes the
// outline update to ticks.
func (ind *Indicator) Start(ticks tick.Source, bus *input.Bus) error {
	if ind.Running() {
		return ErrRunning
	}

	ind.offs = append(ind.offs,
		bus.On(input.Move, input.Document, ind.onMove),
		bus.On(input.Enter, input.Document, func(input.Event) { ind.setVisible(true) }),
		bus.On(input.Leave, input.Document, func(input.Event) { ind.setVisible(false) }),
	)

	switch ind.opts.Tracking {
	case Delegated:
		ind.offs = append(ind.offs,
			bus.On(input.Enter, input.AnyElement, func(e input.Event) {
				if ind.interactive(e.Scope) {
					ind.state.Enlarged = true
				}
			}),
			bus.On(input.Leave, input.AnyElement, func(e input.Event) {
				if ind.interactive(e.Scope) {
					ind.state.Enlarged = false
				}
			}),
		)
	default:
		ind.tracked = ind.tracked[:0]
		for _, t := range ind.targets() {
			if !ind.opts.Selector.Match(t) {
				continue
			}
			scope := input.Scope(t.ID)
			ind.tracked = append(ind.tracked, t.ID)
			ind.offs = append(ind.offs,
				bus.On(input.Enter, scope, func(input.Event) { ind.state.Enlarged = true }),
				bus.On(input.Leave, scope, func(input.Event) { ind.state.Enlarged = false }),
			)
		}
	}

	ind.applyOpacity()
	ind.cancelTick = ticks.Subscribe(ind.Tick)
	return nil
}

// Stop removes every listener registered by Start and cancels the tick.
func (ind *Indicator) Stop() {
	if ind.cancelTick != nil {
		ind.cancelTick()
		ind.cancelTick = nil
	}
	for _, off := range ind.offs {
		off()
	}
	ind.offs = nil
}

func (ind *Indicator) Running() bool { return ind.cancelTick != nil }

// Tick moves the outline to the last pointer position at the current scale.
func (ind *Indicator) Tick() {
	ind.outline.Move(ind.state.X, ind.state.Y, ind.Scale())
}

// Scale is the outline scale for the current state.
func (ind *Indicator) Scale() float64 {
	if ind.state.Enlarged {
		return ind.opts.EnlargedScale
	}
	return 1
}

func (ind *Indicator) State() State { return ind.state }

// Tracked returns the ids captured by a snapshot Start.
func (ind *Indicator) Tracked() []string { return ind.tracked }

func (ind *Indicator) onMove(e input.Event) {
	ind.setVisible(true)
	ind.state.X, ind.state.Y = e.X, e.Y
	ind.dot.Move(e.X, e.Y, 1)
}

func (ind *Indicator) setVisible(v bool) {
	ind.state.Visible = v
	ind.applyOpacity()
}

func (ind *Indicator) applyOpacity() {
	alpha := 0.0
	if ind.state.Visible {
		alpha = 1
	}
	ind.dot.SetOpacity(alpha)
	ind.outline.SetOpacity(alpha)
}

func (ind *Indicator) targets() []Target {
	if ind.query == nil {
		return nil
	}
	return ind.query()
}

func (ind *Indicator) interactive(scope input.Scope) bool {
	for _, t := range ind.targets() {
		if input.Scope(t.ID) == scope {
			return ind.opts.Selector.Match(t)
		}
	}
	return false
}
