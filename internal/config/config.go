package config

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Particle Backdrop - Esc/Q: Quit"

	// Field population
	SeedCount = 50
	MaxPoints = 70

	// Point physics
	MaxSpeed      = 2.5
	SeedVelocity  = 0.7
	BounceJitter  = 0.2
	DriftChance   = 0.02
	DriftJitter   = 0.2
	MinOpacity    = 0.6
	MaxOpacity    = 1.0
	OpacityPulse  = 0.03
	MinSize       = 2.0
	MaxSize       = 5.0
	BreathChance  = 0.05
	BreathJitter  = 0.5
	OuterGlowSize = 2.5
	OuterGlowTint = 0.3

	// Pointer interaction
	GlowRadius      = 200
	GlowStrength    = 0.7
	HoverRadius     = 120
	RecolorChance   = 0.1
	TrailChance     = 0.3
	TrailMaxBurst   = 3
	TrailSpread     = 20
	TrailVelocity   = 1.0
	TrailMinOpacity = 0.8

	// Connections
	ConnectDistance = 150
	LineOpacity     = 0.6
	LineWidth       = 1.8

	// Fade overlay alpha applied every frame instead of a hard clear
	FadeAlpha = 0.1

	// Cursor markers
	DotRadius     = 4
	OutlineRadius = 18
	EnlargedScale = 2
)

// Config holds every tunable of the backdrop. Zero values are never used
// directly; Default fills them and Load overlays a file on top.
type Config struct {
	Seed    uint64         `yaml:"seed" toml:"seed"`
	Window  WindowConfig   `yaml:"window" toml:"window"`
	Field   FieldConfig    `yaml:"field" toml:"field"`
	Colors  ColorConfig    `yaml:"colors" toml:"colors"`
	Cursor  CursorConfig   `yaml:"cursor" toml:"cursor"`
	Regions []RegionConfig `yaml:"regions" toml:"regions"`
}

type WindowConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Title  string `yaml:"title" toml:"title"`
}

// FieldConfig tunes the particle field. Probabilities are per tick for
// physics and per pointer-move event for recolor and trail spawning.
type FieldConfig struct {
	SeedCount       int     `yaml:"seedCount" toml:"seed_count"`
	MaxPoints       int     `yaml:"maxPoints" toml:"max_points"`
	MaxSpeed        float64 `yaml:"maxSpeed" toml:"max_speed"`
	SeedVelocity    float64 `yaml:"seedVelocity" toml:"seed_velocity"`
	BounceJitter    float64 `yaml:"bounceJitter" toml:"bounce_jitter"`
	DriftChance     float64 `yaml:"driftChance" toml:"drift_chance"`
	DriftJitter     float64 `yaml:"driftJitter" toml:"drift_jitter"`
	OpacityPulse    float64 `yaml:"opacityPulse" toml:"opacity_pulse"`
	BreathChance    float64 `yaml:"breathChance" toml:"breath_chance"`
	BreathJitter    float64 `yaml:"breathJitter" toml:"breath_jitter"`
	GlowRadius      float64 `yaml:"glowRadius" toml:"glow_radius"`
	GlowStrength    float64 `yaml:"glowStrength" toml:"glow_strength"`
	HoverRadius     float64 `yaml:"hoverRadius" toml:"hover_radius"`
	RecolorChance   float64 `yaml:"recolorChance" toml:"recolor_chance"`
	TrailChance     float64 `yaml:"trailChance" toml:"trail_chance"`
	TrailMaxBurst   int     `yaml:"trailMaxBurst" toml:"trail_max_burst"`
	TrailSpread     float64 `yaml:"trailSpread" toml:"trail_spread"`
	TrailVelocity   float64 `yaml:"trailVelocity" toml:"trail_velocity"`
	ConnectDistance float64 `yaml:"connectDistance" toml:"connect_distance"`
	LineOpacity     float64 `yaml:"lineOpacity" toml:"line_opacity"`
	LineWidth       float64 `yaml:"lineWidth" toml:"line_width"`
	FadeAlpha       float64 `yaml:"fadeAlpha" toml:"fade_alpha"`
}

// ColorConfig is the shared palette plus the fixed tints drawn around it.
// TrailIndex selects the palette entry given to freshly spawned trail points.
type ColorConfig struct {
	Palette    []Color `yaml:"palette" toml:"palette"`
	TrailIndex int     `yaml:"trailIndex" toml:"trail_index"`
	OuterGlow  Color   `yaml:"outerGlow" toml:"outer_glow"`
	LineMid    Color   `yaml:"lineMid" toml:"line_mid"`
	Fade       Color   `yaml:"fade" toml:"fade"`
	Background Color   `yaml:"background" toml:"background"`
	Marker     Color   `yaml:"marker" toml:"marker"`
}

type CursorConfig struct {
	// Selector lists the roles and classes that count as interactive.
	Selector      []string `yaml:"selector" toml:"selector"`
	Delegate      bool     `yaml:"delegate" toml:"delegate"`
	DotRadius     float64  `yaml:"dotRadius" toml:"dot_radius"`
	OutlineRadius float64  `yaml:"outlineRadius" toml:"outline_radius"`
	EnlargedScale float64  `yaml:"enlargedScale" toml:"enlarged_scale"`
}

// RegionConfig describes one piece of page content the cursor can hover.
type RegionConfig struct {
	ID      string   `yaml:"id" toml:"id"`
	Label   string   `yaml:"label" toml:"label"`
	X       float64  `yaml:"x" toml:"x"`
	Y       float64  `yaml:"y" toml:"y"`
	Width   float64  `yaml:"width" toml:"width"`
	Height  float64  `yaml:"height" toml:"height"`
	Role    string   `yaml:"role" toml:"role"`
	Classes []string `yaml:"classes" toml:"classes"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  WindowTitle,
		},
		Field: FieldConfig{
			SeedCount:       SeedCount,
			MaxPoints:       MaxPoints,
			MaxSpeed:        MaxSpeed,
			SeedVelocity:    SeedVelocity,
			BounceJitter:    BounceJitter,
			DriftChance:     DriftChance,
			DriftJitter:     DriftJitter,
			OpacityPulse:    OpacityPulse,
			BreathChance:    BreathChance,
			BreathJitter:    BreathJitter,
			GlowRadius:      GlowRadius,
			GlowStrength:    GlowStrength,
			HoverRadius:     HoverRadius,
			RecolorChance:   RecolorChance,
			TrailChance:     TrailChance,
			TrailMaxBurst:   TrailMaxBurst,
			TrailSpread:     TrailSpread,
			TrailVelocity:   TrailVelocity,
			ConnectDistance: ConnectDistance,
			LineOpacity:     LineOpacity,
			LineWidth:       LineWidth,
			FadeAlpha:       FadeAlpha,
		},
		Colors: ColorConfig{
			Palette: []Color{
				MustColor("#ffffff"), // white
				MustColor("#e6e6fa"), // lavender
				MustColor("#b0c4de"), // light steel blue
				MustColor("#8a2be2"), // blue violet
			},
			TrailIndex: 3,
			OuterGlow:  MustColor("#8a2be2"),
			LineMid:    MustColor("#b0c4de"),
			Fade:       MustColor("#f8f8ff"),
			Background: MustColor("#fcfcfc"),
			Marker:     MustColor("#8a2be2"),
		},
		Cursor: CursorConfig{
			Selector:      []string{"link", "button", "interactive"},
			DotRadius:     DotRadius,
			OutlineRadius: OutlineRadius,
			EnlargedScale: EnlargedScale,
		},
		Regions: []RegionConfig{
			{ID: "home", Label: "Home", X: 40, Y: 32, Width: 80, Height: 28, Role: "link"},
			{ID: "projects", Label: "Projects", X: 140, Y: 32, Width: 100, Height: 28, Role: "link"},
			{ID: "skills", Label: "Skills", X: 260, Y: 32, Width: 80, Height: 28, Role: "link"},
			{ID: "contact", Label: "Get in touch", X: 40, Y: 520, Width: 140, Height: 40, Role: "button"},
			{ID: "card-ar", Label: "AR learning app", X: 420, Y: 260, Width: 220, Height: 120, Role: "panel", Classes: []string{"interactive"}},
			{ID: "headline", Label: "Hello, I build things", X: 40, Y: 200, Width: 320, Height: 40, Role: "heading"},
		},
	}
}
