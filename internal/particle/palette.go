package particle

import (
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the ordered list of hover colors shared by every point of a field.
type Palette []colorful.Color

func NewPalette(colors []config.Color) Palette {
	p := make(Palette, len(colors))
	for i, c := range colors {
		p[i] = c.Color
	}
	return p
}

// At returns the color for index i, wrapping out-of-range indices.
func (p Palette) At(i int) colorful.Color {
	n := len(p)
	if n == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return p[((i%n)+n)%n]
}

// Next returns the index following i.
func (p Palette) Next(i int) int {
	if len(p) == 0 {
		return 0
	}
	return (i + 1) % len(p)
}

// ThreeStop interpolates along from -> mid -> to, with mid at t = 0.5.
func ThreeStop(from, mid, to colorful.Color, t float64) colorful.Color {
	t = clamp(t, 0, 1)
	if t < 0.5 {
		return from.BlendRgb(mid, t*2)
	}
	return mid.BlendRgb(to, (t-0.5)*2)
}
