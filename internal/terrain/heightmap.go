package terrain

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/jengzang/velomap-backend-go/internal/models"
)

// Accumulator raises grid vertices under stations. Each station contributes
// influence*weight where influence = max(0, 1-d/Radius) and
// weight = FreeBikes*MountainScale. A vertex keeps the largest contribution
// it sees; contributions never add up.
type Accumulator struct {
	Projector     Projector
	Radius        float64
	MountainScale float64
	Gradient      Gradient
}

// Weight returns the peak height a station can produce
func (a Accumulator) Weight(s models.Station) float64 {
	return float64(s.FreeBikes) * a.MountainScale
}

// Influence returns the falloff factor at planar distance d, clamped at 0
func (a Accumulator) Influence(d float64) float64 {
	if a.Radius <= 0 {
		return 0
	}
	return math.Max(0, 1-d/a.Radius)
}

// Accumulate raises g in place. Heights only ever go up. When two stations
// produce the same height at a vertex, the later one sets the colour.
func (a Accumulator) Accumulate(g *Grid, stations []models.Station) {
	if len(stations) == 0 {
		return
	}

	positions := make([]stationPeak, len(stations))
	for i, s := range stations {
		positions[i] = stationPeak{
			pos:    a.Projector.PlanePosition(s.Latitude, s.Longitude),
			weight: a.Weight(s),
		}
	}

	for i := range g.Vertices {
		v := &g.Vertices[i]
		for _, sp := range positions {
			candidate := a.Influence(v.Position.Sub(sp.pos).Norm()) * sp.weight
			if candidate <= g.Floor || candidate < v.Height {
				continue
			}
			v.Height = candidate
			if a.Gradient != nil {
				v.Color = a.Gradient.Color(candidate)
			}
		}
	}
}

type stationPeak struct {
	pos    r2.Point
	weight float64
}
