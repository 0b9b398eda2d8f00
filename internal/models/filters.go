package models

// StationFilter represents the search box of the index view
type StationFilter struct {
	Query string `form:"q"`
}

// TerrainFilter represents query parameters for terrain requests
type TerrainFilter struct {
	Query     string  `form:"q"`
	Width     float64 `form:"width" binding:"omitempty,gt=0,max=10000"`
	Height    float64 `form:"height" binding:"omitempty,gt=0,max=10000"`
	Segments  int     `form:"segments" binding:"omitempty,min=1,max=400"`
	Smoothing float64 `form:"smooth" binding:"omitempty,min=0,max=1"`
}

// PickRequest is a click on the rendered surface. X and Y are normalized
// device coordinates in [-1,1], Y pointing up. The remaining fields repeat
// the terrain request the surface was rendered from.
type PickRequest struct {
	X         float64 `json:"x" binding:"gte=-1,lte=1"`
	Y         float64 `json:"y" binding:"gte=-1,lte=1"`
	Width     float64 `json:"width" binding:"omitempty,gt=0,max=10000"`
	Height    float64 `json:"height" binding:"omitempty,gt=0,max=10000"`
	Segments  int     `json:"segments" binding:"omitempty,min=1,max=400"`
	Smoothing float64 `json:"smooth" binding:"omitempty,min=0,max=1"`
	Query     string  `json:"q"`
}
