package particle_test

import (
	"testing"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/particle"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestPaletteWraps(t *testing.T) {
	palette := particle.NewPalette(config.Default().Colors.Palette)

	assert.Len(t, palette, 4)
	assert.Equal(t, palette[0], palette.At(4))
	assert.Equal(t, palette[3], palette.At(-1))
	assert.Equal(t, 0, palette.Next(3))
	assert.Equal(t, 2, palette.Next(1))
}

func TestEmptyPalette(t *testing.T) {
	var palette particle.Palette
	assert.Equal(t, colorful.Color{R: 1, G: 1, B: 1}, palette.At(2))
	assert.Equal(t, 0, palette.Next(5))
}

func TestThreeStop(t *testing.T) {
	from := colorful.Color{R: 1, G: 0, B: 0}
	mid := colorful.Color{R: 0, G: 1, B: 0}
	to := colorful.Color{R: 0, G: 0, B: 1}

	assert.True(t, particle.ThreeStop(from, mid, to, 0).AlmostEqualRgb(from))
	assert.True(t, particle.ThreeStop(from, mid, to, 0.5).AlmostEqualRgb(mid))
	assert.True(t, particle.ThreeStop(from, mid, to, 1).AlmostEqualRgb(to))
	assert.True(t, particle.ThreeStop(from, mid, to, 2).AlmostEqualRgb(to))

	quarter := particle.ThreeStop(from, mid, to, 0.25)
	assert.InDelta(t, 0.5, quarter.R, 1e-9)
	assert.InDelta(t, 0.5, quarter.G, 1e-9)
	assert.InDelta(t, 0.0, quarter.B, 1e-9)
}
