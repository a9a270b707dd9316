package game

import (
	"fmt"
	"testing"

	"github.com/iburimskiy/particle-backdrop/internal/input"
	"github.com/iburimskiy/particle-backdrop/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrackerHarness(t *testing.T) (*pointerTracker, *[]string) {
	t.Helper()
	s, err := scene.New(nil)
	require.NoError(t, err)
	require.NoError(t, s.Add(scene.Region{ID: "link", X: 10, Y: 10, Width: 20, Height: 20, Role: "link"}))

	bus := input.NewBus()
	var log []string
	record := func(e input.Event) { log = append(log, fmt.Sprintf("%s %s", e.Kind, e.Scope)) }
	for _, kind := range []input.Kind{input.Move, input.Enter, input.Leave} {
		bus.On(kind, input.Document, record)
		bus.On(kind, input.Surface, record)
		bus.On(kind, input.AnyElement, record)
	}
	return newPointerTracker(bus, s), &log
}

func TestTrackerMove(t *testing.T) {
	tracker, log := newTrackerHarness(t)

	tracker.Update(100, 100, 200, 200)
	assert.Equal(t, []string{"move document", "move surface"}, *log)

	*log = nil
	tracker.Update(100, 100, 200, 200)
	assert.Empty(t, *log, "a still pointer emits nothing")
}

func TestTrackerElementHover(t *testing.T) {
	tracker, log := newTrackerHarness(t)

	tracker.Update(15, 15, 200, 200)
	assert.Equal(t, []string{"move document", "move surface", "enter link"}, *log)
	assert.Equal(t, "link", tracker.Hovered())

	*log = nil
	tracker.Update(50, 50, 200, 200)
	assert.Equal(t, []string{"move document", "move surface", "leave link"}, *log)
	assert.Equal(t, "", tracker.Hovered())
}

func TestTrackerLeaveAndEnterDocument(t *testing.T) {
	tracker, log := newTrackerHarness(t)

	tracker.Update(15, 15, 200, 200)
	*log = nil

	tracker.Update(-1, 15, 200, 200)
	assert.Equal(t, []string{"leave link", "leave document"}, *log)

	*log = nil
	tracker.Update(-3, 15, 200, 200)
	assert.Empty(t, *log, "moving outside the window emits nothing")

	tracker.Update(100, 100, 200, 200)
	assert.Equal(t, []string{"enter document", "move document", "move surface"}, *log)
}

func TestTrackerStartsOutside(t *testing.T) {
	tracker, log := newTrackerHarness(t)

	tracker.Update(500, 500, 200, 200)
	assert.Equal(t, []string{"leave document"}, *log)
}
