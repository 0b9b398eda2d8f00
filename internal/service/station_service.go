package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jengzang/velomap-backend-go/internal/favourites"
	"github.com/jengzang/velomap-backend-go/internal/models"
	"github.com/jengzang/velomap-backend-go/internal/network"
	"github.com/jengzang/velomap-backend-go/internal/spatial"
	"github.com/jengzang/velomap-backend-go/internal/stats"
)

// ErrStationNotFound is returned when a station id is absent from the snapshot
var ErrStationNotFound = errors.New("station not found")

// NearbyCount is how many neighbours the detail view lists
const NearbyCount = 5

// StationService handles the index, detail and about views
type StationService struct {
	fetcher network.Fetcher
	store   favourites.Store
}

// NewStationService creates a new station service
func NewStationService(fetcher network.Fetcher, store favourites.Store) *StationService {
	return &StationService{fetcher: fetcher, store: store}
}

// Load runs one load cycle and returns the snapshot, or an error wrapping
// network.ErrLoadFailed. Every view calls this once; nothing is cached.
func (s *StationService) Load(ctx context.Context) (*models.Network, error) {
	state := network.Load(ctx, s.fetcher)
	if state.Phase != network.PhaseLoaded {
		log.Printf("[StationService] Load failed: %v", state.Err)
		return nil, state.Err
	}
	return state.Network, nil
}

// Favourites loads the favourites set of a device
func (s *StationService) Favourites(ctx context.Context, deviceID string) (favourites.Set, error) {
	return favourites.Load(ctx, s.store, favourites.Key(deviceID))
}

// ListStations builds the index view: stations matching the query and the
// device's favourite stations, each flagged
func (s *StationService) ListStations(ctx context.Context, filter models.StationFilter, deviceID string) (*models.StationListResponse, error) {
	net, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	favs, err := s.Favourites(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	matching := FilterStations(net.Stations, filter.Query)
	return &models.StationListResponse{
		Network:    net.Name,
		Query:      filter.Query,
		Favourites: toRows(FavouriteStations(net.Stations, favs), favs),
		Stations:   toRows(matching, favs),
		Count:      len(matching),
	}, nil
}

// GetStation builds the detail view for one station
func (s *StationService) GetStation(ctx context.Context, id, deviceID string) (*models.StationDetailResponse, error) {
	net, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	station, ok := FindStation(net.Stations, id)
	if !ok {
		return nil, ErrStationNotFound
	}

	favs, err := s.Favourites(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	return &models.StationDetailResponse{
		Station:   station,
		Favourite: favs.Has(station.ID),
		Path:      StationPath(station.ID),
		Nearby:    spatial.NearestStations(station, net.Stations, NearbyCount),
	}, nil
}

// Summary builds the about view
func (s *StationService) Summary(ctx context.Context) (*models.NetworkSummary, error) {
	net, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.NetworkSummary{
		Name:         net.Name,
		StationCount: len(net.Stations),
		Occupancy:    stats.StationOccupancy(net.Stations),
	}
	for _, st := range net.Stations {
		summary.FreeBikes += st.FreeBikes
		summary.EmptySlots += st.EmptySlots
	}
	return summary, nil
}

// FilterStations keeps stations whose name contains query, ignoring case.
// An empty query keeps everything.
func FilterStations(stations []models.Station, query string) []models.Station {
	needle := strings.ToLower(query)
	out := make([]models.Station, 0, len(stations))
	for _, st := range stations {
		if strings.Contains(strings.ToLower(st.Name), needle) {
			out = append(out, st)
		}
	}
	return out
}

// FavouriteStations keeps the stations in favs, in snapshot order
func FavouriteStations(stations []models.Station, favs favourites.Set) []models.Station {
	out := make([]models.Station, 0, favs.Len())
	for _, st := range stations {
		if favs.Has(st.ID) {
			out = append(out, st)
		}
	}
	return out
}

// FindStation looks a station up by id
func FindStation(stations []models.Station, id string) (models.Station, bool) {
	for _, st := range stations {
		if st.ID == id {
			return st, true
		}
	}
	return models.Station{}, false
}

// StationPath is the route of a station's detail view
func StationPath(id string) string {
	return "/stations/" + id
}

func toRows(stations []models.Station, favs favourites.Set) []models.StationRow {
	rows := make([]models.StationRow, len(stations))
	for i, st := range stations {
		rows[i] = models.StationRow{Station: st, Favourite: favs.Has(st.ID)}
	}
	return rows
}
