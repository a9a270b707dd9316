// Package particle implements the animated, pointer-reactive point field:
// drifting glowing points, a distance-based connection graph, a glow around
// the pointer and short-lived points spawned along the pointer's trail.
package particle

import (
	"errors"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/input"
	"github.com/iburimskiy/particle-backdrop/internal/tick"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrNoSurface means there is nothing to draw into; the field is not created.
	ErrNoSurface = errors.New("particle: no drawing surface")
	ErrRunning   = errors.New("particle: field already started")
)

// offSurface is the pointer position before the first move event. It is far
// enough away that no point receives glow.
const offSurface = -1e6

// Options configures a Field. Width and Height are logical units; Scale is
// the device pixel density used for the canvas backing store.
type Options struct {
	Field  config.FieldConfig
	Colors config.ColorConfig
	Width  float64
	Height float64
	Scale  float64
	Rand   *rand.Rand
}

// Field owns the point collection, the shared palette cursor and the last
// pointer position. All methods must be called from one goroutine.
type Field struct {
	cfg     config.FieldConfig
	colors  config.ColorConfig
	palette Palette
	canvas  Canvas
	rng     *rand.Rand

	width, height, scale float64

	points     []*Point
	colorIndex int
	pointerX   float64
	pointerY   float64

	cancelTick func()
	offs       []func()
}

// New allocates the canvas at the requested size and seeds the field.
func New(canvas Canvas, opts Options) (*Field, error) {
	if canvas == nil {
		return nil, ErrNoSurface
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	f := &Field{
		cfg:      opts.Field,
		colors:   opts.Colors,
		palette:  NewPalette(opts.Colors.Palette),
		canvas:   canvas,
		rng:      rng,
		pointerX: offSurface,
		pointerY: offSurface,
	}
	f.Resize(opts.Width, opts.Height, scale)
	f.seed()
	return f, nil
}

func (f *Field) seed() {
	f.points = make([]*Point, 0, f.cfg.MaxPoints)
	for i := 0; i < f.cfg.SeedCount; i++ {
		f.points = append(f.points, &Point{
			X:       f.rng.Float64() * f.width,
			Y:       f.rng.Float64() * f.height,
			DX:      f.jitter(f.cfg.SeedVelocity),
			DY:      f.jitter(f.cfg.SeedVelocity),
			Opacity: config.MinOpacity + f.rng.Float64()*(config.MaxOpacity-config.MinOpacity),
			Size:    config.MinSize + f.rng.Float64()*(config.MaxSize-config.MinSize),
			Color:   0,
		})
	}
}

// Start subscribes the field to ticks and registers its pointer and resize
// listeners on bus.
func (f *Field) Start(ticks tick.Source, bus *input.Bus) error {
	if f.Running() {
		return ErrRunning
	}
	f.offs = append(f.offs,
		bus.On(input.Move, input.Surface, func(e input.Event) { f.PointerMoved(e.X, e.Y) }),
		bus.On(input.Resize, input.Viewport, func(e input.Event) { f.Resize(e.Width, e.Height, e.Scale) }),
	)
	f.cancelTick = ticks.Subscribe(f.Step)
	return nil
}

// Stop cancels the tick subscription and removes every listener. Calling it
// on a stopped field is a no-op.
func (f *Field) Stop() {
	if f.cancelTick != nil {
		f.cancelTick()
		f.cancelTick = nil
	}
	for _, off := range f.offs {
		off()
	}
	f.offs = nil
}

func (f *Field) Running() bool { return f.cancelTick != nil }

// Resize updates the logical bounds and the canvas backing resolution.
// Points keep their positions and are clamped on the next Step.
func (f *Field) Resize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	f.width, f.height, f.scale = math.Max(0, width), math.Max(0, height), scale
	f.canvas.Resize(f.width, f.height, f.scale)
}

// Step advances and renders one frame.
func (f *Field) Step() {
	f.canvas.Fade(f.colors.Fade.Color, f.cfg.FadeAlpha)
	for _, p := range f.points {
		f.advance(p)
		f.draw(p)
	}
}

func (f *Field) advance(p *Point) {
	p.X += p.DX
	p.Y += p.DY

	if p.X <= 0 || p.X >= f.width {
		p.DX = -p.DX + f.jitter(f.cfg.BounceJitter)
	}
	if p.Y <= 0 || p.Y >= f.height {
		p.DY = -p.DY + f.jitter(f.cfg.BounceJitter)
	}
	p.clampPosition(f.width, f.height)

	if f.rng.Float64() < f.cfg.DriftChance {
		p.DX += f.jitter(f.cfg.DriftJitter)
		p.DY += f.jitter(f.cfg.DriftJitter)
	}
	p.capSpeed(f.cfg.MaxSpeed)

	p.Opacity += f.jitter(f.cfg.OpacityPulse)
	p.clampOpacity()

	if f.rng.Float64() < f.cfg.BreathChance {
		p.Size += f.jitter(f.cfg.BreathJitter)
		p.clampSize()
	}
}

func (f *Field) draw(p *Point) {
	// Points take the current hover color once drawn, which also ends a
	// trail point's own tint.
	p.Color = f.colorIndex
	col := f.palette.At(p.Color)

	alpha := p.Opacity + f.Glow(p.DistanceTo(f.pointerX, f.pointerY))
	f.canvas.RadialDisc(p.X, p.Y, p.Size, p.Size*2, col, alpha)
	f.canvas.Disc(p.X, p.Y, p.Size*config.OuterGlowSize, f.colors.OuterGlow.Color, alpha*config.OuterGlowTint)

	for _, other := range f.points {
		if other == p {
			continue
		}
		d := p.DistanceTo(other.X, other.Y)
		if d >= f.cfg.ConnectDistance {
			continue
		}
		f.canvas.GradientLine(p.X, p.Y, other.X, other.Y, f.cfg.LineWidth,
			col, f.colors.LineMid.Color, f.palette.At(other.Color), f.LinkAlpha(d))
	}
}

// PointerMoved records the pointer position in surface coordinates, may
// advance the palette when hovering near a point and may spawn trail points.
func (f *Field) PointerMoved(x, y float64) {
	f.pointerX, f.pointerY = x, y

	if f.hovering() && f.rng.Float64() < f.cfg.RecolorChance {
		f.colorIndex = f.palette.Next(f.colorIndex)
	}

	if f.rng.Float64() < f.cfg.TrailChance {
		f.spawnTrail(x, y)
	}
}

func (f *Field) hovering() bool {
	for _, p := range f.points {
		if p.DistanceTo(f.pointerX, f.pointerY) < f.cfg.HoverRadius {
			return true
		}
	}
	return false
}

func (f *Field) spawnTrail(x, y float64) {
	n := f.rng.IntN(f.cfg.TrailMaxBurst) + 1
	for i := 0; i < n; i++ {
		angle := f.rng.Float64() * 2 * math.Pi
		dist := f.rng.Float64() * f.cfg.TrailSpread
		f.points = append(f.points, &Point{
			X:       x + math.Cos(angle)*dist,
			Y:       y + math.Sin(angle)*dist,
			DX:      f.jitter(f.cfg.TrailVelocity),
			DY:      f.jitter(f.cfg.TrailVelocity),
			Opacity: config.TrailMinOpacity + f.rng.Float64()*(config.MaxOpacity-config.TrailMinOpacity),
			Size:    config.MinSize + f.rng.Float64()*(config.MaxSize-config.MinSize),
			Color:   f.colors.TrailIndex,
		})
		f.evict()
	}
}

// evict drops the oldest points until the collection is back at the cap.
func (f *Field) evict() {
	for len(f.points) > f.cfg.MaxPoints {
		copy(f.points, f.points[1:])
		f.points[len(f.points)-1] = nil
		f.points = f.points[:len(f.points)-1]
	}
}

// Glow is the render-only opacity boost for a point d units from the pointer.
func (f *Field) Glow(d float64) float64 {
	return Glow(d, f.cfg.GlowRadius, f.cfg.GlowStrength)
}

// LinkAlpha is the opacity of a connection of length d.
func (f *Field) LinkAlpha(d float64) float64 {
	return LinkAlpha(d, f.cfg.ConnectDistance, f.cfg.LineOpacity)
}

// jitter returns a uniform value in [-scale/2, scale/2).
func (f *Field) jitter(scale float64) float64 {
	return (f.rng.Float64() - 0.5) * scale
}

// Points returns the live collection in order, oldest first. Callers must
// not retain it across frames.
func (f *Field) Points() []*Point { return f.points }

func (f *Field) ColorIndex() int { return f.colorIndex }

// CurrentColor returns the palette entry used for rendering points.
func (f *Field) CurrentColor() colorful.Color { return f.palette.At(f.colorIndex) }

func (f *Field) Pointer() (x, y float64) { return f.pointerX, f.pointerY }

func (f *Field) Bounds() (width, height, scale float64) { return f.width, f.height, f.scale }
