package models

// RGB is a colour with channels in [0,1]
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Vec3 is a world-space point
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// TerrainResponse carries everything a renderer needs to draw the heightmap.
// Heights are row-major, (HeightSegments+1) rows of (WidthSegments+1) vertices,
// row 0 at the top edge of the plane. Colors is flat r,g,b per vertex.
type TerrainResponse struct {
	Width          float64    `json:"width"`
	Height         float64    `json:"height"`
	WidthSegments  int        `json:"width_segments"`
	HeightSegments int        `json:"height_segments"`
	Heights        []float64  `json:"heights"`
	Colors         []float64  `json:"colors"`
	MaxHeight      float64    `json:"max_height"`
	Offset         Vec3       `json:"offset"`
	Camera         CameraInfo `json:"camera"`
	StationCount   int        `json:"station_count"`
}

// CameraInfo describes the camera the hit tester assumes
type CameraInfo struct {
	Style  string  `json:"style"`
	Eye    Vec3    `json:"eye"`
	Target Vec3    `json:"target"`
	FovY   float64 `json:"fov_y,omitempty"`
	Near   float64 `json:"near"`
	Far    float64 `json:"far"`
}

// PickResponse is the result of a click on the surface
type PickResponse struct {
	Hit     bool     `json:"hit"`
	Station *Station `json:"station,omitempty"`
	Path    string   `json:"path,omitempty"`
}
