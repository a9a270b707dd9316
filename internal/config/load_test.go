package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.Field.SeedCount)
	assert.Equal(t, 70, cfg.Field.MaxPoints)
	assert.Equal(t, 2.5, cfg.Field.MaxSpeed)
	assert.Len(t, cfg.Colors.Palette, 4)
	assert.Equal(t, "#8a2be2", cfg.Colors.Palette[cfg.Colors.TrailIndex].Hex())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "backdrop.yaml", `
seed: 42
window:
  width: 800
  height: 600
field:
  maxPoints: 90
  trailChance: 0.5
colors:
  palette: ["#000000", "#ff0000"]
  trailIndex: 1
cursor:
  delegate: true
regions:
  - id: about
    label: About
    x: 10
    y: 10
    width: 60
    height: 20
    role: link
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 90, cfg.Field.MaxPoints)
	assert.Equal(t, 0.5, cfg.Field.TrailChance)
	assert.Equal(t, config.SeedCount, cfg.Field.SeedCount, "unset keys keep defaults")
	require.Len(t, cfg.Colors.Palette, 2)
	assert.Equal(t, "#ff0000", cfg.Colors.Palette[1].Hex())
	assert.True(t, cfg.Cursor.Delegate)
	require.Len(t, cfg.Regions, 1)
	assert.Equal(t, "about", cfg.Regions[0].ID)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "backdrop.toml", `
seed = 7

[field]
connect_distance = 120.0
fade_alpha = 0.2

[colors]
line_mid = "#112233"

[cursor]
selector = ["button"]
enlarged_scale = 3.0
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 120.0, cfg.Field.ConnectDistance)
	assert.Equal(t, 0.2, cfg.Field.FadeAlpha)
	assert.Equal(t, "#112233", cfg.Colors.LineMid.Hex())
	assert.Equal(t, []string{"button"}, cfg.Cursor.Selector)
	assert.Equal(t, 3.0, cfg.Cursor.EnlargedScale)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "backdrop.json", `{}`))
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)

	_, err = config.Load(writeFile(t, "bad.yaml", "colors:\n  fade: not-a-color\n"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "invalid.yaml", "field:\n  maxPoints: 10\n"))
	assert.ErrorContains(t, err, "maxPoints")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"window":        func(c *config.Config) { c.Window.Width = 0 },
		"seed count":    func(c *config.Config) { c.Field.SeedCount = 0 },
		"burst":         func(c *config.Config) { c.Field.TrailMaxBurst = 0 },
		"probability":   func(c *config.Config) { c.Field.TrailChance = 1.5 },
		"radius":        func(c *config.Config) { c.Field.GlowRadius = 0 },
		"palette":       func(c *config.Config) { c.Colors.Palette = nil },
		"trail index":   func(c *config.Config) { c.Colors.TrailIndex = 9 },
		"selector":      func(c *config.Config) { c.Cursor.Selector = nil },
		"scale":         func(c *config.Config) { c.Cursor.EnlargedScale = 0.5 },
		"marker radius": func(c *config.Config) { c.Cursor.DotRadius = 0 },
		"duplicate":     func(c *config.Config) { c.Regions = append(c.Regions, c.Regions[0]) },
		"missing id":    func(c *config.Config) { c.Regions[0].ID = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidateReportsFirstInvalidField(t *testing.T) {
	cfg := config.Default()
	cfg.Field.TrailChance = 2
	cfg.Field.DriftChance = -1
	cfg.Field.LineWidth = 0
	cfg.Field.MaxSpeed = 0

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "driftChance")
	}

	cfg.Field.TrailChance = 0.3
	cfg.Field.DriftChance = 0.02
	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "maxSpeed")
	}
}
