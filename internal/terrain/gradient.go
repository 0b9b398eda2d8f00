package terrain

import (
	"math"

	"github.com/jengzang/velomap-backend-go/internal/models"
	"github.com/lucasb-eyer/go-colorful"
)

// Gradient maps a vertex height to a colour
type Gradient interface {
	Color(height float64) models.RGB
}

// GradientFunc adapts a plain function to Gradient
type GradientFunc func(height float64) models.RGB

// Color calls f(height)
func (f GradientFunc) Color(height float64) models.RGB {
	return f(height)
}

// HueGradient walks the hue down from blue towards red as height grows:
// hue = BaseHue - height/(20*MountainScale)
type HueGradient struct {
	BaseHue       float64
	MountainScale float64
	Saturation    float64
	Lightness     float64
}

// NewHueGradient returns the default blue-to-red gradient for a mountain scale
func NewHueGradient(mountainScale float64) HueGradient {
	return HueGradient{
		BaseHue:       0.6,
		MountainScale: mountainScale,
		Saturation:    0.7,
		Lightness:     0.5,
	}
}

// Color implements Gradient
func (g HueGradient) Color(height float64) models.RGB {
	hue := g.BaseHue
	if g.MountainScale != 0 {
		hue -= height / (20 * g.MountainScale)
	}
	// hue is periodic in [0,1)
	hue -= math.Floor(hue)

	c := colorful.Hsl(hue*360, g.Saturation, g.Lightness)
	return models.RGB{R: c.R, G: c.G, B: c.B}
}

// FlatGradient paints every raised vertex with the same colour
type FlatGradient models.RGB

// Color implements Gradient
func (g FlatGradient) Color(float64) models.RGB {
	return models.RGB(g)
}
