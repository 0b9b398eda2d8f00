package terrain

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

const rayEpsilon = 1e-9

// Mesh places a grid in the world. The plane is laid flat (rotated -90°
// about X) so that world Y is vertex height and world Z is the negated plane
// y, then moved by Offset.
type Mesh struct {
	Grid   *Grid
	Offset r3.Vector
}

// World returns the world-space position of a vertex
func (m Mesh) World(v Vertex) r3.Vector {
	return r3.Vector{
		X: v.Position.X + m.Offset.X,
		Y: v.Height + m.Offset.Y,
		Z: -v.Position.Y + m.Offset.Z,
	}
}

// ToPlane drops a world-space point back onto the grid plane
func (m Mesh) ToPlane(p r3.Vector) r2.Point {
	return r2.Point{X: p.X - m.Offset.X, Y: -(p.Z - m.Offset.Z)}
}

// Intersect returns the closest point where ray meets the surface. Both faces
// of every triangle count.
func (m Mesh) Intersect(ray Ray) (r3.Vector, bool) {
	g := m.Grid
	if g == nil {
		return r3.Vector{}, false
	}

	best := math.Inf(1)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			a := m.World(g.Vertices[g.index(col, row)])
			b := m.World(g.Vertices[g.index(col, row+1)])
			c := m.World(g.Vertices[g.index(col+1, row+1)])
			d := m.World(g.Vertices[g.index(col+1, row)])

			if t, ok := intersectTriangle(ray, a, b, d); ok && t < best {
				best = t
			}
			if t, ok := intersectTriangle(ray, b, c, d); ok && t < best {
				best = t
			}
		}
	}

	if math.IsInf(best, 1) {
		return r3.Vector{}, false
	}
	return ray.At(best), true
}

// intersectTriangle is the Möller-Trumbore test; it returns the distance
// along the ray
func intersectTriangle(ray Ray, a, b, c r3.Vector) (float64, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)

	p := ray.Direction.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < rayEpsilon {
		return 0, false
	}
	inv := 1 / det

	s := ray.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := ray.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t <= rayEpsilon {
		return 0, false
	}
	return t, true
}
