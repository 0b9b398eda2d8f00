package models

// FavouritesResponse lists a device's favourite station ids and the
// matching stations of the current snapshot
type FavouritesResponse struct {
	IDs      []string  `json:"ids"`
	Stations []Station `json:"stations,omitempty"`
}

// ToggleResponse is returned after flipping one station's favourite status
type ToggleResponse struct {
	StationID string   `json:"station_id"`
	Favourite bool     `json:"favourite"`
	IDs       []string `json:"ids"`
}
