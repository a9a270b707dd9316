// Package input is a small listener registry standing in for the host's
// event targets. Components register handlers on a scope and keep the
// returned off funcs so teardown can remove exactly what they added.
package input

import "fmt"

type Kind int

const (
	Move Kind = iota
	Enter
	Leave
	Resize
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Enter:
		return "enter"
	case Leave:
		return "leave"
	case Resize:
		return "resize"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Scope names an event target. Anything other than the built-in scopes is
// an element id.
type Scope string

const (
	Document Scope = "document"
	Surface  Scope = "surface"
	Viewport Scope = "viewport"

	// AnyElement receives every element-scoped event.
	AnyElement Scope = "*"
)

// IsElement reports whether s names a page element.
func (s Scope) IsElement() bool {
	switch s {
	case Document, Surface, Viewport, AnyElement, "":
		return false
	}
	return true
}

// Event carries pointer coordinates for Move, element identity through
// Scope for element Enter/Leave, and logical size plus device scale for Resize.
type Event struct {
	Kind   Kind
	Scope  Scope
	X, Y   float64
	Width  float64
	Height float64
	Scale  float64
}

type Handler func(Event)

type listener struct {
	kind  Kind
	scope Scope
	fn    Handler
}

// Bus dispatches events synchronously in registration order.
type Bus struct {
	listeners []*listener
}

func NewBus() *Bus {
	return &Bus{}
}

// On registers fn for events of kind on scope. The returned func removes it
// and is safe to call more than once.
func (b *Bus) On(kind Kind, scope Scope, fn Handler) (off func()) {
	l := &listener{kind: kind, scope: scope, fn: fn}
	b.listeners = append(b.listeners, l)
	return func() {
		for i, other := range b.listeners {
			if other == l {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers e to listeners on e.Scope and, for element scopes, to
// AnyElement listeners. Listeners removed by an earlier handler during the
// same Emit are not called.
func (b *Bus) Emit(e Event) {
	current := make([]*listener, len(b.listeners))
	copy(current, b.listeners)
	for _, l := range current {
		if l.kind != e.Kind {
			continue
		}
		if l.scope != e.Scope && !(l.scope == AnyElement && e.Scope.IsElement()) {
			continue
		}
		if !b.registered(l) {
			continue
		}
		l.fn(e)
	}
}

func (b *Bus) registered(l *listener) bool {
	for _, other := range b.listeners {
		if other == l {
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int { return len(b.listeners) }
