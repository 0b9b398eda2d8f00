package stats

import (
	"math"
	"sort"

	"github.com/jengzang/velomap-backend-go/internal/models"
)

// StationOccupancy summarizes free bikes and slots across stations
func StationOccupancy(stations []models.Station) models.Occupancy {
	var occ models.Occupancy
	if len(stations) == 0 {
		return occ
	}

	bikes := make([]float64, len(stations))
	var totalBikes, totalSlots int
	for i, st := range stations {
		bikes[i] = float64(st.FreeBikes)
		totalBikes += st.FreeBikes
		totalSlots += st.EmptySlots
		if st.FreeBikes == 0 {
			occ.EmptyStations++
		}
		if st.EmptySlots == 0 {
			occ.FullStations++
		}
	}

	sort.Float64s(bikes)
	occ.MedianFreeBikes = quantileSorted(bikes, 0.5)
	occ.P90FreeBikes = quantileSorted(bikes, 0.9)
	if docks := totalBikes + totalSlots; docks > 0 {
		occ.FillRatio = float64(totalBikes) / float64(docks)
	}
	return occ
}

// quantileSorted interpolates linearly between the closest ranks
func quantileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}

	index := q * float64(len(sorted)-1)
	lower := int(math.Floor(index))
	upper := int(math.Ceil(index))
	if lower == upper {
		return sorted[lower]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
