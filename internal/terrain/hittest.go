package terrain

import (
	"math"

	"github.com/jengzang/velomap-backend-go/internal/models"
)

// HitTest resolves a click to the station whose projected position is
// closest to the point where the click ray meets the surface. That is the
// nearest station on the plane, not necessarily the tallest peak under the
// cursor. Equal distances go to the earlier station. A miss or an empty
// station list reports false.
func HitTest(cam Camera, mesh Mesh, proj Projector, stations []models.Station, x, y float64) (models.Station, bool) {
	if len(stations) == 0 {
		return models.Station{}, false
	}

	hit, ok := mesh.Intersect(cam.Ray(x, y))
	if !ok {
		return models.Station{}, false
	}
	p := mesh.ToPlane(hit)

	bestIdx := -1
	bestDist := math.Inf(1)
	for i, s := range stations {
		d := proj.PlanePosition(s.Latitude, s.Longitude).Sub(p).Norm()
		if d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return models.Station{}, false
	}
	return stations[bestIdx], true
}
