package particle

import "github.com/lucasb-eyer/go-colorful"

// Canvas is the 2D drawing context the field renders into. Coordinates are
// logical units; the implementation maps them to its backing resolution.
// Alpha values may exceed 1 and are clamped by the implementation.
type Canvas interface {
	// Resize reallocates the backing store for a width x height logical
	// surface at the given device scale.
	Resize(width, height, scale float64)

	// Fade composites c at alpha over the whole surface.
	Fade(c colorful.Color, alpha float64)

	// Disc fills a solid circle.
	Disc(x, y, radius float64, c colorful.Color, alpha float64)

	// RadialDisc fills a circle of radius whose alpha falls from alpha at
	// the centre to zero at fade.
	RadialDisc(x, y, radius, fade float64, c colorful.Color, alpha float64)

	// GradientLine strokes a line colored from -> mid -> to.
	GradientLine(x0, y0, x1, y1, width float64, from, mid, to colorful.Color, alpha float64)
}
