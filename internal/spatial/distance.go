package spatial

import (
	"sort"

	"github.com/golang/geo/s2"
	"github.com/jengzang/velomap-backend-go/internal/models"
)

// EarthRadiusMeters is Earth's mean radius
const EarthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// NearestStations returns up to k stations closest to origin, nearest first.
// origin itself (same id) is skipped. Equal distances keep snapshot order.
func NearestStations(origin models.Station, stations []models.Station, k int) []models.NearbyStation {
	if k <= 0 {
		return []models.NearbyStation{}
	}

	nearby := make([]models.NearbyStation, 0, len(stations))
	for _, s := range stations {
		if s.ID == origin.ID {
			continue
		}
		nearby = append(nearby, models.NearbyStation{
			Station:        s,
			DistanceMeters: HaversineDistance(origin.Latitude, origin.Longitude, s.Latitude, s.Longitude),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	if len(nearby) > k {
		nearby = nearby[:k]
	}
	return nearby
}
