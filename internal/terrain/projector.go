package terrain

import "github.com/golang/geo/r2"

// Reference point of the equirectangular projection. Only valid close to
// Antwerp; stations far from it land outside the grid.
const (
	OriginLat    = 51.3
	OriginLon    = 4.35
	ScaleDegrees = 0.15
)

// Projector maps latitude/longitude into viewport pixels
type Projector struct {
	Width  float64
	Height float64
}

// NewProjector creates a projector for a viewport of the given size
func NewProjector(width, height float64) Projector {
	return Projector{Width: width, Height: height}
}

// Project returns the viewport position of a coordinate, with (OriginLat,
// OriginLon) at (0,0), x growing east and y growing south
func (p Projector) Project(lat, lon float64) r2.Point {
	return r2.Point{
		X: (lon - OriginLon) * (p.Width / ScaleDegrees),
		Y: (OriginLat - lat) * (p.Height / ScaleDegrees),
	}
}

// PlanePosition returns the projected point in the grid plane's frame, which
// is centred on the viewport with y growing north
func (p Projector) PlanePosition(lat, lon float64) r2.Point {
	v := p.Project(lat, lon)
	return r2.Point{X: v.X - p.Width/2, Y: -v.Y + p.Height/2}
}
