package models

// Station is one docking station in a network snapshot
type Station struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	FreeBikes  int     `json:"free_bikes"`
	EmptySlots int     `json:"empty_slots"`
}

// Network is a named collection of stations, replaced wholesale on every fetch
type Network struct {
	Name     string    `json:"name"`
	Stations []Station `json:"stations"`
}

// NetworkEnvelope mirrors the upstream response shape: {"network": {...}}
type NetworkEnvelope struct {
	Network *Network `json:"network"`
}

// StationRow is a station as listed in the index view
type StationRow struct {
	Station
	Favourite bool `json:"favourite"`
}

// NearbyStation is a station with its great-circle distance from another station
type NearbyStation struct {
	Station
	DistanceMeters float64 `json:"distance_meters"`
}

// StationListResponse is the index view payload
type StationListResponse struct {
	Network    string       `json:"network"`
	Query      string       `json:"query,omitempty"`
	Favourites []StationRow `json:"favourites"`
	Stations   []StationRow `json:"stations"`
	Count      int          `json:"count"`
}

// StationDetailResponse is the per-station view payload
type StationDetailResponse struct {
	Station   Station         `json:"station"`
	Favourite bool            `json:"favourite"`
	Path      string          `json:"path"`
	Nearby    []NearbyStation `json:"nearby"`
}

// NetworkSummary is the about view payload
type NetworkSummary struct {
	Name         string    `json:"name"`
	StationCount int       `json:"station_count"`
	FreeBikes    int       `json:"free_bikes"`
	EmptySlots   int       `json:"empty_slots"`
	Occupancy    Occupancy `json:"occupancy"`
}

// Occupancy describes how bikes are spread over a network's stations
type Occupancy struct {
	MedianFreeBikes float64 `json:"median_free_bikes"`
	P90FreeBikes    float64 `json:"p90_free_bikes"`
	EmptyStations   int     `json:"empty_stations"` // no bikes to take
	FullStations    int     `json:"full_stations"`  // no slot to return to
	FillRatio       float64 `json:"fill_ratio"`     // bikes / (bikes + slots)
}

