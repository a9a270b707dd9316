// Package game hosts the particle field and the pointer indicator in an
// ebiten window and translates polled input into their events.
package game

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/cursor"
	"github.com/iburimskiy/particle-backdrop/internal/input"
	"github.com/iburimskiy/particle-backdrop/internal/particle"
	"github.com/iburimskiy/particle-backdrop/internal/scene"
	"github.com/iburimskiy/particle-backdrop/internal/tick"
)

type Game struct {
	cfg    config.Config
	logger *log.Logger

	bus   *input.Bus
	loop  *tick.Loop
	scene *scene.Scene

	// surface and field are nil when the backdrop is disabled.
	surface *Surface
	field   *particle.Field

	// indicator is nil when the markers could not be created.
	dot       *markerSprite
	outline   *markerSprite
	indicator *cursor.Indicator

	tracker *pointerTracker

	// logical viewport and device scale from the last Layout
	width, height, scale float64

	started time.Time
	closed  bool
}

// New builds and starts both subsystems. A subsystem that cannot start is
// logged and left out; the rest of the window keeps working.
func New(cfg config.Config, logger *log.Logger) (*Game, error) {
	surface := NewSurface()
	g, err := newGame(cfg, logger, surface)
	if err != nil {
		return nil, err
	}
	if g.field != nil {
		g.surface = surface
	}
	return g, nil
}

func newGame(cfg config.Config, logger *log.Logger, canvas particle.Canvas) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s, err := scene.New(cfg.Regions)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		logger:  logger,
		bus:     input.NewBus(),
		loop:    tick.NewLoop(),
		scene:   s,
		width:   float64(cfg.Window.Width),
		height:  float64(cfg.Window.Height),
		scale:   1,
		started: time.Now(),
	}
	g.tracker = newPointerTracker(g.bus, s)

	g.startField(canvas)
	g.startIndicator(
		newDot(cfg.Cursor.DotRadius, cfg.Colors.Marker.Color),
		newOutline(cfg.Cursor.OutlineRadius, cfg.Colors.Marker.Color),
	)
	return g, nil
}

func (g *Game) startField(canvas particle.Canvas) {
	field, err := particle.New(canvas, particle.Options{
		Field:  g.cfg.Field,
		Colors: g.cfg.Colors,
		Width:  g.width,
		Height: g.height,
		Scale:  g.scale,
		Rand:   newRand(g.cfg.Seed),
	})
	if err != nil {
		g.logger.Printf("particle field disabled: %v", err)
		return
	}
	if err := field.Start(g.loop, g.bus); err != nil {
		g.logger.Printf("particle field disabled: %v", err)
		return
	}
	g.field = field
	g.logger.Printf("particle field started with %d points", len(field.Points()))
}

func (g *Game) startIndicator(dot, outline *markerSprite) {
	tracking := cursor.Snapshot
	if g.cfg.Cursor.Delegate {
		tracking = cursor.Delegated
	}

	var dm, om cursor.Marker
	if dot != nil {
		dm = dot
	}
	if outline != nil {
		om = outline
	}
	ind, err := cursor.New(dm, om, g.scene.Targets, cursor.Options{
		Selector:      cursor.Selector(g.cfg.Cursor.Selector),
		Tracking:      tracking,
		EnlargedScale: g.cfg.Cursor.EnlargedScale,
	})
	if err != nil {
		g.logger.Printf("warning: pointer indicator disabled: %v", err)
		return
	}
	if err := ind.Start(g.loop, g.bus); err != nil {
		g.logger.Printf("warning: pointer indicator disabled: %v", err)
		return
	}
	g.dot, g.outline, g.indicator = dot, outline, ind
	if tracking == cursor.Snapshot {
		g.logger.Printf("pointer indicator tracking %d interactive regions", len(ind.Tracked()))
	} else {
		g.logger.Printf("pointer indicator tracking interactive regions by delegation")
	}
}

// Close stops both subsystems and removes their listeners.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.field != nil {
		g.field.Stop()
	}
	if g.indicator != nil {
		g.indicator.Stop()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	mx, my := ebiten.CursorPosition()
	g.frame(float64(mx)/g.scale, float64(my)/g.scale)
	return nil
}

// frame runs one host frame: input first, then every tick subscriber.
func (g *Game) frame(x, y float64) {
	g.tracker.Update(x, y, g.width, g.height)
	g.loop.Advance()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toNRGBA(g.cfg.Colors.Background.Color, 1))

	if g.surface != nil && g.surface.Image() != nil {
		screen.DrawImage(g.surface.Image(), nil)
	}

	g.drawScene(screen)

	status := g.status(time.Since(g.started), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, status, 12, screen.Bounds().Dy()-20)

	if g.indicator != nil {
		g.outline.Draw(screen, g.scale)
		g.dot.Draw(screen, g.scale)
	}
}

// status is the bottom line: uptime, frames advanced, live points and fps.
func (g *Game) status(uptime time.Duration, fps float64) string {
	status := fmt.Sprintf("%s | frame %d", formatDuration(uptime), g.loop.Frames())
	if g.field != nil {
		status += fmt.Sprintf(" | %d points", len(g.field.Points()))
	}
	return status + fmt.Sprintf(" | %.0f fps", fps)
}

func (g *Game) drawScene(screen *ebiten.Image) {
	border := toNRGBA(g.cfg.Colors.Marker.Color, 0.35)
	hover := toNRGBA(g.cfg.Colors.Marker.Color, 0.12)
	for _, r := range g.scene.Regions() {
		x, y := float32(r.X*g.scale), float32(r.Y*g.scale)
		w, h := float32(r.Width*g.scale), float32(r.Height*g.scale)
		if r.ID == g.tracker.Hovered() {
			vector.DrawFilledRect(screen, x, y, w, h, hover, false)
		}
		vector.StrokeRect(screen, x, y, w, h, float32(g.scale), border, false)
		ebitenutil.DebugPrintAt(screen, r.Label, int(x)+6, int(y+h/2)-8)
	}
}

// Layout renders at device resolution so strokes stay crisp on high
// density displays, and reports size changes as viewport resize events.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	g.resize(float64(outsideWidth), float64(outsideHeight), scale)
	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

func (g *Game) resize(width, height, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	if width == g.width && height == g.height && scale == g.scale {
		return
	}
	g.width, g.height, g.scale = width, height, scale
	g.bus.Emit(input.Event{Kind: input.Resize, Scope: input.Viewport, Width: width, Height: height, Scale: scale})
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
