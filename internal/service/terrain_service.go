package service

import (
	"context"

	"github.com/jengzang/velomap-backend-go/internal/models"
	"github.com/jengzang/velomap-backend-go/internal/terrain"
)

// TerrainService builds heightmaps from fresh snapshots
type TerrainService struct {
	stations *StationService
	overview *terrain.Builder
	detail   *terrain.Builder
}

// NewTerrainService creates a terrain service. base carries the options
// shared by every view; the detail view adds the close-up camera.
func NewTerrainService(stations *StationService, base *terrain.Builder) *TerrainService {
	if base == nil {
		base = terrain.NewBuilder()
	}
	return &TerrainService{
		stations: stations,
		overview: base,
		detail:   base.With(terrain.WithCamera(terrain.CloseUpCamera)),
	}
}

// Overview builds the terrain for all stations matching the filter
func (s *TerrainService) Overview(ctx context.Context, filter models.TerrainFilter) (*models.TerrainResponse, error) {
	t, err := s.buildOverview(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := t.Response()
	return &resp, nil
}

// Detail builds the single-mountain terrain of one station
func (s *TerrainService) Detail(ctx context.Context, id string, filter models.TerrainFilter) (*models.TerrainResponse, error) {
	net, err := s.stations.Load(ctx)
	if err != nil {
		return nil, err
	}

	station, ok := FindStation(net.Stations, id)
	if !ok {
		return nil, ErrStationNotFound
	}

	t, err := s.detail.With(viewOptions(filter)...).BuildDetail(station)
	if err != nil {
		return nil, err
	}
	resp := t.Response()
	return &resp, nil
}

// Pick resolves a click on the overview terrain. A click that hits nothing
// is a normal, empty result.
func (s *TerrainService) Pick(ctx context.Context, req models.PickRequest) (*models.PickResponse, error) {
	t, err := s.buildOverview(ctx, models.TerrainFilter{
		Query:     req.Query,
		Width:     req.Width,
		Height:    req.Height,
		Segments:  req.Segments,
		Smoothing: req.Smoothing,
	})
	if err != nil {
		return nil, err
	}

	station, ok := t.Pick(req.X, req.Y)
	if !ok {
		return &models.PickResponse{Hit: false}, nil
	}
	return &models.PickResponse{
		Hit:     true,
		Station: &station,
		Path:    StationPath(station.ID),
	}, nil
}

func (s *TerrainService) buildOverview(ctx context.Context, filter models.TerrainFilter) (*terrain.Terrain, error) {
	net, err := s.stations.Load(ctx)
	if err != nil {
		return nil, err
	}

	stations := FilterStations(net.Stations, filter.Query)
	return s.overview.With(viewOptions(filter)...).Build(stations)
}

// viewOptions turns request parameters into builder options; zero values
// keep the builder's own settings
func viewOptions(filter models.TerrainFilter) []terrain.Option {
	var opts []terrain.Option
	if filter.Width > 0 && filter.Height > 0 {
		opts = append(opts, terrain.WithViewport(filter.Width, filter.Height))
	}
	if filter.Segments > 0 {
		opts = append(opts, terrain.WithSegments(filter.Segments, filter.Segments))
	}
	if filter.Smoothing != 0 {
		opts = append(opts, terrain.WithSmoothing(filter.Smoothing))
	}
	return opts
}
