package service

import (
	"context"
	"log"
	"sync"

	"github.com/jengzang/velomap-backend-go/internal/favourites"
	"github.com/jengzang/velomap-backend-go/internal/models"
)

// FavouriteService reads and flips a device's favourites
type FavouriteService struct {
	stations *StationService
	store    favourites.Store
	locks    keyedMutex
}

// NewFavouriteService creates a new favourite service
func NewFavouriteService(stations *StationService, store favourites.Store) *FavouriteService {
	return &FavouriteService{
		stations: stations,
		store:    store,
		locks:    keyedMutex{locks: make(map[string]*keyLock)},
	}
}

// List returns the device's favourite ids and the matching stations of a
// fresh snapshot
func (s *FavouriteService) List(ctx context.Context, deviceID string) (*models.FavouritesResponse, error) {
	favs, err := favourites.Load(ctx, s.store, favourites.Key(deviceID))
	if err != nil {
		return nil, err
	}

	net, err := s.stations.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &models.FavouritesResponse{
		IDs:      favs.IDs(),
		Stations: FavouriteStations(net.Stations, favs),
	}, nil
}

// Toggle flips one station's favourite status and persists the new set
func (s *FavouriteService) Toggle(ctx context.Context, deviceID, stationID string) (*models.ToggleResponse, error) {
	key := favourites.Key(deviceID)
	unlock := s.locks.Lock(key)
	defer unlock()

	next, err := favourites.Toggle(ctx, s.store, key, stationID)
	if err != nil {
		return nil, err
	}

	log.Printf("[FavouriteService] Toggled %s for device %s (now %d favourites)", stationID, deviceID, next.Len())
	return &models.ToggleResponse{
		StationID: stationID,
		Favourite: next.Has(stationID),
		IDs:       next.IDs(),
	}, nil
}

// keyedMutex serializes read-modify-write cycles on the same favourites
// entry. Locks are dropped once nobody holds or waits for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

// Lock blocks until key is free and returns its unlock function
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
