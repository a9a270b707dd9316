package particle

import (
	"math"

	"github.com/iburimskiy/particle-backdrop/internal/config"
)

// Point is a single glowing particle. Color is an index into the field's
// palette; the palette itself is shared and never owned by a point.
type Point struct {
	X, Y    float64
	DX, DY  float64
	Opacity float64
	Size    float64
	Color   int
}

// Speed returns the velocity magnitude.
func (p *Point) Speed() float64 {
	return math.Hypot(p.DX, p.DY)
}

// DistanceTo returns the euclidean distance from p to (x, y).
func (p *Point) DistanceTo(x, y float64) float64 {
	return math.Hypot(p.X-x, p.Y-y)
}

// capSpeed rescales velocity to limit while keeping its direction.
func (p *Point) capSpeed(limit float64) {
	speed := p.Speed()
	if speed > limit {
		p.DX = p.DX / speed * limit
		p.DY = p.DY / speed * limit
	}
}

func (p *Point) clampPosition(width, height float64) {
	p.X = clamp(p.X, 0, width)
	p.Y = clamp(p.Y, 0, height)
}

func (p *Point) clampOpacity() {
	p.Opacity = clamp(p.Opacity, config.MinOpacity, config.MaxOpacity)
}

func (p *Point) clampSize() {
	p.Size = clamp(p.Size, config.MinSize, config.MaxSize)
}

// Glow returns the render-only opacity boost for a point d units from the
// pointer: strength at d == 0, falling linearly to 0 at radius and beyond.
func Glow(d, radius, strength float64) float64 {
	return math.Max(0, 1-d/radius) * strength
}

// LinkAlpha returns the opacity of a connection of length d, or 0 when the
// pair is at or beyond threshold.
func LinkAlpha(d, threshold, opacity float64) float64 {
	if d >= threshold {
		return 0
	}
	return (1 - d/threshold) * opacity
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
