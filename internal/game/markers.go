package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// markerSprite is one cursor marker. The indicator sets its transform and
// opacity; Draw renders whatever was set last.
type markerSprite struct {
	x, y    float64
	scale   float64
	opacity float64

	radius float64
	stroke float64 // zero for a filled dot
	color  colorful.Color
}

func newDot(radius float64, c colorful.Color) *markerSprite {
	return &markerSprite{radius: radius, color: c, scale: 1, opacity: 1}
}

func newOutline(radius float64, c colorful.Color) *markerSprite {
	return &markerSprite{radius: radius, stroke: 2, color: c, scale: 1, opacity: 1}
}

func (m *markerSprite) Move(x, y, scale float64) {
	m.x, m.y, m.scale = x, y, scale
}

func (m *markerSprite) SetOpacity(alpha float64) {
	m.opacity = alpha
}

func (m *markerSprite) Draw(dst *ebiten.Image, deviceScale float64) {
	if m.opacity <= 0 {
		return
	}
	cx := float32(m.x * deviceScale)
	cy := float32(m.y * deviceScale)
	r := float32(m.radius * m.scale * deviceScale)
	if m.stroke == 0 {
		vector.DrawFilledCircle(dst, cx, cy, r, toNRGBA(m.color, m.opacity), true)
		return
	}
	vector.StrokeCircle(dst, cx, cy, r, float32(m.stroke*deviceScale), toNRGBA(m.color, m.opacity*0.6), true)
}
