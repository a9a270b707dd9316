package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for paths that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Color is a hex color ("#rrggbb") usable from both YAML and TOML.
type Color struct {
	colorful.Color
}

// MustColor parses hex and panics on malformed input. Only used for literals.
func MustColor(hex string) Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return Color{c}
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := colorful.Hex(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", text, err)
	}
	c.Color = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Load reads a YAML or TOML file over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	// Slices replace rather than merge, so an explicit palette or region list wins.
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse yaml config: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse toml config: %w", err)
		}
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

type namedValue struct {
	name  string
	value float64
}

// Validate checks that values are usable by the field and the cursor.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	f := c.Field
	if f.SeedCount < 1 {
		return fmt.Errorf("seedCount must be at least 1, got %d", f.SeedCount)
	}
	if f.MaxPoints < f.SeedCount {
		return fmt.Errorf("maxPoints (%d) must not be below seedCount (%d)", f.MaxPoints, f.SeedCount)
	}
	if f.TrailMaxBurst < 1 {
		return fmt.Errorf("trailMaxBurst must be at least 1, got %d", f.TrailMaxBurst)
	}
	// slices, not maps: the first bad field reported must be stable
	probabilities := []namedValue{
		{"driftChance", f.DriftChance},
		{"breathChance", f.BreathChance},
		{"recolorChance", f.RecolorChance},
		{"trailChance", f.TrailChance},
		{"fadeAlpha", f.FadeAlpha},
		{"lineOpacity", f.LineOpacity},
	}
	for _, p := range probabilities {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", p.name, p.value)
		}
	}
	positive := []namedValue{
		{"maxSpeed", f.MaxSpeed},
		{"glowRadius", f.GlowRadius},
		{"hoverRadius", f.HoverRadius},
		{"connectDistance", f.ConnectDistance},
		{"lineWidth", f.LineWidth},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}

	if len(c.Colors.Palette) == 0 {
		return errors.New("palette must have at least one color")
	}
	if c.Colors.TrailIndex < 0 || c.Colors.TrailIndex >= len(c.Colors.Palette) {
		return fmt.Errorf("trailIndex %d out of palette range [0, %d)", c.Colors.TrailIndex, len(c.Colors.Palette))
	}

	if len(c.Cursor.Selector) == 0 {
		return errors.New("cursor selector must not be empty")
	}
	if c.Cursor.EnlargedScale < 1 {
		return fmt.Errorf("enlargedScale must be at least 1, got %v", c.Cursor.EnlargedScale)
	}
	if c.Cursor.DotRadius <= 0 || c.Cursor.OutlineRadius <= 0 {
		return errors.New("cursor radii must be positive")
	}

	seen := make(map[string]bool, len(c.Regions))
	for _, r := range c.Regions {
		if r.ID == "" {
			return fmt.Errorf("region %q has no id", r.Label)
		}
		if seen[r.ID] {
			return fmt.Errorf("duplicate region id %q", r.ID)
		}
		seen[r.ID] = true
	}
	return nil
}
