package terrain

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/jengzang/velomap-backend-go/internal/models"
)

var (
	north = models.Station{ID: "n", Name: "Noord", Latitude: 51.27, Longitude: 4.42, FreeBikes: 6}
	south = models.Station{ID: "s", Name: "Zuid", Latitude: 51.22, Longitude: 4.45, FreeBikes: 3}
)

// clickAt returns the NDC position a top-down camera needs to look at a plane point
func clickAt(proj Projector, s models.Station) (float64, float64) {
	p := proj.PlanePosition(s.Latitude, s.Longitude)
	return p.X / (proj.Width / 2), p.Y / (proj.Height / 2)
}

func buildTopDown(t *testing.T, stations []models.Station) *Terrain {
	t.Helper()
	terr, err := NewBuilder(WithCamera(TopDownCamera), WithSegments(47, 47)).Build(stations)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return terr
}

func TestHitTestFindsNearestStation(t *testing.T) {
	stations := []models.Station{north, south}
	terr := buildTopDown(t, stations)

	for _, want := range stations {
		x, y := clickAt(terr.Projector, want)
		got, ok := terr.Pick(x, y)
		if !ok {
			t.Fatalf("Expected a hit for %s", want.ID)
		}
		if got.ID != want.ID {
			t.Errorf("Expected station %s, got %s", want.ID, got.ID)
		}
	}
}

func TestHitTestEmptyStationList(t *testing.T) {
	terr := buildTopDown(t, nil)

	if _, ok := terr.Pick(0, 0); ok {
		t.Error("Expected no hit without stations")
	}
}

func TestHitTestRayMiss(t *testing.T) {
	terr := buildTopDown(t, []models.Station{north})
	terr.Camera = PerspectiveCamera{
		FovY:     60,
		Aspect:   1,
		Near:     0.1,
		Far:      1000,
		Position: r3.Vector{Y: 100},
		LookAt:   r3.Vector{Y: 200},
		Up:       r3.Vector{Z: -1},
	}

	if _, ok := terr.Pick(0, 0); ok {
		t.Error("Expected a ray pointing away from the surface to miss")
	}
}

func TestHitTestTieGoesToFirstStation(t *testing.T) {
	twin := north
	twin.ID = "twin"
	terr := buildTopDown(t, []models.Station{north, twin})

	x, y := clickAt(terr.Projector, north)
	got, ok := terr.Pick(x, y)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if got.ID != north.ID {
		t.Errorf("Expected first station to win the tie, got %s", got.ID)
	}
}

func TestPerspectiveCentreRayHitsTarget(t *testing.T) {
	g, err := NewGrid(1000, 1000, 20, 20, 0, models.RGB{})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	// shift the grid so the origin falls inside a triangle, off any edge
	mesh := Mesh{Grid: g, Offset: r3.Vector{X: 10, Z: 7}}

	hit, ok := mesh.Intersect(OverviewCamera(1000, 1000).Ray(0, 0))
	if !ok {
		t.Fatal("Expected centre ray to hit the plane")
	}
	if hit.Norm() > 1e-6 {
		t.Errorf("Expected hit at origin, got %v", hit)
	}
}

func TestIntersectHitsRaisedSurfaceFirst(t *testing.T) {
	g, err := NewGrid(100, 100, 2, 2, 0, models.RGB{})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.At(1, 1).Height = 40
	mesh := Mesh{Grid: g}

	// the face under (2,-1) slopes from 40 at the centre to 0 at x=50
	ray := Ray{Origin: r3.Vector{X: 2, Y: 100, Z: -1}, Direction: r3.Vector{Y: -1}}
	hit, ok := mesh.Intersect(ray)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.Y-38.4) > 1e-9 {
		t.Errorf("Expected to hit the slope at height 38.4, got %g", hit.Y)
	}
}

func TestMeshPlaneRoundTrip(t *testing.T) {
	mesh := Mesh{Offset: r3.Vector{X: 12, Y: -110, Z: -7}}
	v := Vertex{Height: 3}
	v.Position.X, v.Position.Y = 40, -25

	p := mesh.ToPlane(mesh.World(v))
	if math.Abs(p.X-40) > 1e-12 || math.Abs(p.Y+25) > 1e-12 {
		t.Errorf("Expected (40,-25), got (%g,%g)", p.X, p.Y)
	}
}
