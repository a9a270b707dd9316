package scene_test

import (
	"testing"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/cursor"
	"github.com/iburimskiy/particle-backdrop/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneFromConfig(t *testing.T) {
	s, err := scene.New(config.Default().Regions)
	require.NoError(t, err)

	require.Len(t, s.Regions(), len(config.Default().Regions))
	targets := s.Targets()
	assert.Equal(t, cursor.Target{ID: "home", Role: "link"}, targets[0])
}

func TestSceneAtPrefersTopmost(t *testing.T) {
	s, err := scene.New(nil)
	require.NoError(t, err)

	require.NoError(t, s.Add(scene.Region{ID: "panel", X: 0, Y: 0, Width: 200, Height: 200, Role: "panel"}))
	require.NoError(t, s.Add(scene.Region{ID: "button", X: 50, Y: 50, Width: 40, Height: 20, Role: "button"}))

	r, ok := s.At(60, 60)
	require.True(t, ok)
	assert.Equal(t, "button", r.ID)

	r, ok = s.At(10, 10)
	require.True(t, ok)
	assert.Equal(t, "panel", r.ID)

	_, ok = s.At(500, 500)
	assert.False(t, ok)
}

func TestSceneRejectsBadRegions(t *testing.T) {
	s, err := scene.New(nil)
	require.NoError(t, err)

	require.NoError(t, s.Add(scene.Region{ID: "a"}))
	assert.Error(t, s.Add(scene.Region{ID: "a"}))
	assert.Error(t, s.Add(scene.Region{Label: "no id"}))

	_, err = scene.New([]config.RegionConfig{{ID: "x"}, {ID: "x"}})
	assert.Error(t, err)
}

func TestRegionContainsEdges(t *testing.T) {
	r := scene.Region{X: 10, Y: 10, Width: 5, Height: 5}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(15, 15))
	assert.False(t, r.Contains(15.1, 12))
}
