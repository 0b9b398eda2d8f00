package terrain

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/jengzang/velomap-backend-go/internal/models"
)

// ErrInvalidOptions is returned when a builder is configured with unusable values
var ErrInvalidOptions = errors.New("invalid terrain options")

// Defaults matching the map front end
const (
	DefaultWidth          = 1000.0
	DefaultHeight         = 1000.0
	DefaultSegments       = 100
	DefaultRadiusFraction = 0.1
	DefaultMountainScale  = 5.0
	// DetailDrop lowers a single-station mountain so it sits in the lower
	// half of the close-up view
	DetailDrop = 110.0
)

// Options configures a Builder
type Options struct {
	Width          float64
	Height         float64
	WidthSegments  int
	HeightSegments int
	RadiusFraction float64 // of Width
	MountainScale  float64
	Floor          float64
	FloorColor     models.RGB
	Gradient       Gradient // nil means NewHueGradient(MountainScale)
	Smoothing      float64  // 0 disables the smoothing pass
	Camera         CameraFactory
}

// Option mutates Options
type Option func(*Options)

// WithViewport sets the plane size in world units
func WithViewport(width, height float64) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithSegments sets the number of grid segments along each axis
func WithSegments(cols, rows int) Option {
	return func(o *Options) {
		o.WidthSegments = cols
		o.HeightSegments = rows
	}
}

// WithRadiusFraction sets the influence radius as a fraction of the width
func WithRadiusFraction(f float64) Option {
	return func(o *Options) { o.RadiusFraction = f }
}

// WithMountainScale sets the height per free bike
func WithMountainScale(scale float64) Option {
	return func(o *Options) { o.MountainScale = scale }
}

// WithFloor sets the starting height and colour of every vertex
func WithFloor(height float64, color models.RGB) Option {
	return func(o *Options) {
		o.Floor = height
		o.FloorColor = color
	}
}

// WithGradient replaces the default hue gradient
func WithGradient(g Gradient) Option {
	return func(o *Options) { o.Gradient = g }
}

// WithSmoothing enables one neighbour smoothing pass with factor alpha
func WithSmoothing(alpha float64) Option {
	return func(o *Options) { o.Smoothing = alpha }
}

// WithCamera selects the camera the terrain is viewed and picked through
func WithCamera(f CameraFactory) Option {
	return func(o *Options) { o.Camera = f }
}

// Builder turns station snapshots into terrains. One builder serves every
// view; the variants only differ in their options.
type Builder struct {
	opts Options
}

// NewBuilder creates a builder with defaults overridden by opts
func NewBuilder(opts ...Option) *Builder {
	o := Options{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		WidthSegments:  DefaultSegments,
		HeightSegments: DefaultSegments,
		RadiusFraction: DefaultRadiusFraction,
		MountainScale:  DefaultMountainScale,
		Camera:         OverviewCamera,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{opts: o}
}

// Options returns the effective options
func (b *Builder) Options() Options {
	return b.opts
}

// With returns a copy of the builder with extra options applied
func (b *Builder) With(opts ...Option) *Builder {
	o := b.opts
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder{opts: o}
}

func (b *Builder) validate() error {
	o := b.opts
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: viewport %gx%g", ErrInvalidOptions, o.Width, o.Height)
	case o.WidthSegments < 1 || o.HeightSegments < 1:
		return fmt.Errorf("%w: segments %dx%d", ErrInvalidOptions, o.WidthSegments, o.HeightSegments)
	case o.RadiusFraction <= 0:
		return fmt.Errorf("%w: radius fraction %g", ErrInvalidOptions, o.RadiusFraction)
	case o.Smoothing < 0 || o.Smoothing > 1:
		return fmt.Errorf("%w: %w", ErrInvalidOptions, ErrInvalidSmoothing)
	case o.Camera == nil:
		return fmt.Errorf("%w: no camera", ErrInvalidOptions)
	}
	return nil
}

func (b *Builder) gradient() Gradient {
	if b.opts.Gradient != nil {
		return b.opts.Gradient
	}
	return NewHueGradient(b.opts.MountainScale)
}

// Terrain is a built heightmap together with what is needed to pick on it
type Terrain struct {
	Mesh      Mesh
	Camera    Camera
	Projector Projector
	Stations  []models.Station
}

// Build creates the overview terrain for a set of stations
func (b *Builder) Build(stations []models.Station) (*Terrain, error) {
	return b.build(stations, r3.Vector{})
}

// BuildDetail creates a terrain with a single mountain for s, moved so the
// peak sits above the origin and lowered by DetailDrop
func (b *Builder) BuildDetail(s models.Station) (*Terrain, error) {
	t, err := b.build([]models.Station{s}, r3.Vector{})
	if err != nil {
		return nil, err
	}

	offset := r3.Vector{Y: -DetailDrop}
	if peak, ok := t.Mesh.Grid.Peak(); ok {
		offset.X = -peak.Position.X
		offset.Z = peak.Position.Y
	}
	t.Mesh.Offset = offset
	return t, nil
}

func (b *Builder) build(stations []models.Station, offset r3.Vector) (*Terrain, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	o := b.opts

	grid, err := NewGrid(o.Width, o.Height, o.WidthSegments, o.HeightSegments, o.Floor, o.FloorColor)
	if err != nil {
		return nil, err
	}

	proj := NewProjector(o.Width, o.Height)
	gradient := b.gradient()

	acc := Accumulator{
		Projector:     proj,
		Radius:        o.Width * o.RadiusFraction,
		MountainScale: o.MountainScale,
		Gradient:      gradient,
	}
	acc.Accumulate(grid, stations)

	if o.Smoothing > 0 {
		if err := Smooth(grid, o.Smoothing, gradient); err != nil {
			return nil, err
		}
	}

	return &Terrain{
		Mesh:      Mesh{Grid: grid, Offset: offset},
		Camera:    o.Camera(o.Width, o.Height),
		Projector: proj,
		Stations:  stations,
	}, nil
}

// Pick resolves a click in normalized device coordinates to a station
func (t *Terrain) Pick(x, y float64) (models.Station, bool) {
	return HitTest(t.Camera, t.Mesh, t.Projector, t.Stations, x, y)
}

// Response converts the terrain into its API representation
func (t *Terrain) Response() models.TerrainResponse {
	g := t.Mesh.Grid

	maxHeight := g.Floor
	if peak, ok := g.Peak(); ok {
		maxHeight = peak.Height
	}

	info := models.CameraInfo{
		Style:  t.Camera.Style(),
		Eye:    toModelVec(t.Camera.Eye()),
		Target: toModelVec(t.Camera.Target()),
	}
	switch c := t.Camera.(type) {
	case PerspectiveCamera:
		info.FovY = c.FovY
		info.Near = c.Near
		info.Far = c.Far
	case OrthographicCamera:
		info.Near = c.Near
		info.Far = c.Far
	}

	return models.TerrainResponse{
		Width:          g.Width,
		Height:         g.Height,
		WidthSegments:  g.Cols,
		HeightSegments: g.Rows,
		Heights:        g.Heights(),
		Colors:         g.Colors(),
		MaxHeight:      maxHeight,
		Offset:         toModelVec(t.Mesh.Offset),
		Camera:         info,
		StationCount:   len(t.Stations),
	}
}

func toModelVec(v r3.Vector) models.Vec3 {
	return models.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}
