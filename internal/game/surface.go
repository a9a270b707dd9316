package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// fanSegments is the number of rim vertices in a radial disc.
const fanSegments = 32

// Surface is the persistent offscreen image the particle field draws into.
// It is never cleared, only faded, so moving points leave short trails.
// Drawing uses logical coordinates scaled to the device resolution.
type Surface struct {
	img    *ebiten.Image
	white  *ebiten.Image
	width  float64
	height float64
	scale  float64
}

func NewSurface() *Surface {
	return &Surface{scale: 1}
}

// Resize records the new logical size; the backing image is reallocated on
// the next draw.
func (s *Surface) Resize(width, height, scale float64) {
	pw, ph := backingSize(width, height, scale)
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == pw && b.Dy() == ph {
			s.width, s.height, s.scale = width, height, scale
			return
		}
		s.img.Deallocate()
		s.img = nil
	}
	s.width, s.height, s.scale = width, height, scale
}

// Image returns the backing image, or nil before the first draw.
func (s *Surface) Image() *ebiten.Image { return s.img }

func (s *Surface) ensure() *ebiten.Image {
	if s.img == nil {
		pw, ph := backingSize(s.width, s.height, s.scale)
		s.img = ebiten.NewImage(pw, ph)
	}
	return s.img
}

// source is a single opaque white texel; vertex colors tint it.
func (s *Surface) source() *ebiten.Image {
	if s.white == nil {
		base := ebiten.NewImage(3, 3)
		base.Fill(color.White)
		s.white = base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.white
}

func (s *Surface) triangles(vs []ebiten.Vertex, is []uint16) {
	if len(vs) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.ensure().DrawTriangles(vs, is, s.source(), op)
}

func (s *Surface) Fade(c colorful.Color, alpha float64) {
	img := s.ensure()
	b := img.Bounds()
	vector.DrawFilledRect(img, 0, 0, float32(b.Dx()), float32(b.Dy()), toNRGBA(c, alpha), false)
}

func (s *Surface) Disc(x, y, radius float64, c colorful.Color, alpha float64) {
	vector.DrawFilledCircle(s.ensure(), s.px(x), s.px(y), s.px(radius), toNRGBA(c, alpha), true)
}

func (s *Surface) RadialDisc(x, y, radius, fade float64, c colorful.Color, alpha float64) {
	s.triangles(radialFan(s.px(x), s.px(y), s.px(radius), s.px(fade), c, alpha))
}

func (s *Surface) GradientLine(x0, y0, x1, y1, width float64, from, mid, to colorful.Color, alpha float64) {
	s.triangles(gradientStrip(s.px(x0), s.px(y0), s.px(x1), s.px(y1), s.px(width), from, mid, to, alpha))
}

func (s *Surface) px(v float64) float32 {
	return float32(v * s.scale)
}

// radialFan builds a disc of the given radius as a triangle fan. Alpha falls
// linearly from alpha at the centre and reaches zero at fade, so the rim of
// the disc carries alpha*(1-radius/fade).
func radialFan(cx, cy, radius, fade float32, c colorful.Color, alpha float64) ([]ebiten.Vertex, []uint16) {
	if radius <= 0 {
		return nil, nil
	}
	a := float32(clamp01(alpha))
	rim := float32(0)
	if fade > radius {
		rim = a * (1 - radius/fade)
	}

	vs := make([]ebiten.Vertex, 0, fanSegments+1)
	vs = append(vs, vertex(cx, cy, c, a))
	for i := 0; i < fanSegments; i++ {
		theta := 2 * math.Pi * float64(i) / fanSegments
		x := cx + radius*float32(math.Cos(theta))
		y := cy + radius*float32(math.Sin(theta))
		vs = append(vs, vertex(x, y, c, rim))
	}

	is := make([]uint16, 0, fanSegments*3)
	for i := 1; i <= fanSegments; i++ {
		next := i%fanSegments + 1
		is = append(is, 0, uint16(i), uint16(next))
	}
	return vs, is
}

// gradientStrip builds a line of the given width as two quads with the
// gradient stops at the start, the middle and the end. Vertex colors are
// interpolated linearly in RGB, which is the same blend as ThreeStop.
func gradientStrip(x0, y0, x1, y1, width float32, from, mid, to colorful.Color, alpha float64) ([]ebiten.Vertex, []uint16) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 || width <= 0 {
		return nil, nil
	}
	// half-width normal
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	a := float32(clamp01(alpha))

	mx, my := x0+dx/2, y0+dy/2
	vs := []ebiten.Vertex{
		vertex(x0+nx, y0+ny, from, a),
		vertex(x0-nx, y0-ny, from, a),
		vertex(mx+nx, my+ny, mid, a),
		vertex(mx-nx, my-ny, mid, a),
		vertex(x1+nx, y1+ny, to, a),
		vertex(x1-nx, y1-ny, to, a),
	}
	is := []uint16{0, 1, 2, 1, 3, 2, 2, 3, 4, 3, 5, 4}
	return vs, is
}

func vertex(x, y float32, c colorful.Color, alpha float32) ebiten.Vertex {
	c = c.Clamped()
	return ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 1, SrcY: 1,
		ColorR: float32(c.R), ColorG: float32(c.G), ColorB: float32(c.B), ColorA: alpha,
	}
}

func backingSize(width, height, scale float64) (int, int) {
	pw := int(math.Ceil(width * scale))
	ph := int(math.Ceil(height * scale))
	return max(pw, 1), max(ph, 1)
}
