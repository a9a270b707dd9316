package input_test

import (
	"testing"

	"github.com/iburimskiy/particle-backdrop/internal/input"
	"github.com/stretchr/testify/assert"
)

func TestBusScopedDelivery(t *testing.T) {
	bus := input.NewBus()

	var doc, surface []input.Event
	bus.On(input.Move, input.Document, func(e input.Event) { doc = append(doc, e) })
	bus.On(input.Move, input.Surface, func(e input.Event) { surface = append(surface, e) })

	bus.Emit(input.Event{Kind: input.Move, Scope: input.Document, X: 1, Y: 2})
	bus.Emit(input.Event{Kind: input.Leave, Scope: input.Document})

	assert.Len(t, doc, 1)
	assert.Equal(t, 1.0, doc[0].X)
	assert.Empty(t, surface)
}

func TestBusElementDelegation(t *testing.T) {
	bus := input.NewBus()

	var direct, delegated []input.Scope
	bus.On(input.Enter, "projects", func(e input.Event) { direct = append(direct, e.Scope) })
	bus.On(input.Enter, input.AnyElement, func(e input.Event) { delegated = append(delegated, e.Scope) })

	bus.Emit(input.Event{Kind: input.Enter, Scope: "projects"})
	bus.Emit(input.Event{Kind: input.Enter, Scope: "skills"})
	bus.Emit(input.Event{Kind: input.Enter, Scope: input.Document})

	assert.Equal(t, []input.Scope{"projects"}, direct)
	assert.Equal(t, []input.Scope{"projects", "skills"}, delegated)
}

func TestBusOff(t *testing.T) {
	bus := input.NewBus()

	calls := 0
	off := bus.On(input.Resize, input.Viewport, func(input.Event) { calls++ })
	assert.Equal(t, 1, bus.Len())

	bus.Emit(input.Event{Kind: input.Resize, Scope: input.Viewport})
	off()
	off()
	bus.Emit(input.Event{Kind: input.Resize, Scope: input.Viewport})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len())
}

func TestBusOffDuringEmit(t *testing.T) {
	bus := input.NewBus()

	var offSecond func()
	second := 0
	bus.On(input.Move, input.Document, func(input.Event) { offSecond() })
	offSecond = bus.On(input.Move, input.Document, func(input.Event) { second++ })

	bus.Emit(input.Event{Kind: input.Move, Scope: input.Document})

	assert.Equal(t, 0, second)
	assert.Equal(t, 1, bus.Len())
}

func TestScopeIsElement(t *testing.T) {
	assert.True(t, input.Scope("contact").IsElement())
	assert.False(t, input.Document.IsElement())
	assert.False(t, input.AnyElement.IsElement())
	assert.Equal(t, "resize", input.Resize.String())
}
