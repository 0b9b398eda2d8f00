package terrain

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
)

// Ray is a half-line in world space. Direction is unit length.
type Ray struct {
	Origin    r3.Vector
	Direction r3.Vector
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) r3.Vector {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Camera turns a click in normalized device coordinates (x,y in [-1,1], y up)
// into a picking ray
type Camera interface {
	Ray(x, y float64) Ray
	Style() string
	Eye() r3.Vector
	Target() r3.Vector
}

// PerspectiveCamera is a pinhole camera looking from Position at LookAt
type PerspectiveCamera struct {
	FovY     float64 // degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position r3.Vector
	LookAt   r3.Vector
	Up       r3.Vector
}

// Ray implements Camera
func (c PerspectiveCamera) Ray(x, y float64) Ray {
	proj := mgl64.Perspective(mgl64.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
	inv := proj.Mul4(lookAt(c.Position, c.LookAt, c.Up)).Inv()

	through := unproject(inv, x, y, 0.5)
	return Ray{Origin: c.Position, Direction: through.Sub(c.Position).Normalize()}
}

// Style implements Camera
func (c PerspectiveCamera) Style() string { return "perspective" }

// Eye implements Camera
func (c PerspectiveCamera) Eye() r3.Vector { return c.Position }

// Target implements Camera
func (c PerspectiveCamera) Target() r3.Vector { return c.LookAt }

// OrthographicCamera projects along its view direction without perspective.
// Left/Right/Bottom/Top bound the view volume in camera space.
type OrthographicCamera struct {
	Left, Right, Bottom, Top float64
	Near, Far                float64
	Position                 r3.Vector
	LookAt                   r3.Vector
	Up                       r3.Vector
}

// Ray implements Camera
func (c OrthographicCamera) Ray(x, y float64) Ray {
	proj := mgl64.Ortho(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
	inv := proj.Mul4(lookAt(c.Position, c.LookAt, c.Up)).Inv()

	near := unproject(inv, x, y, -1)
	far := unproject(inv, x, y, 1)
	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

// Style implements Camera
func (c OrthographicCamera) Style() string { return "orthographic" }

// Eye implements Camera
func (c OrthographicCamera) Eye() r3.Vector { return c.Position }

// Target implements Camera
func (c OrthographicCamera) Target() r3.Vector { return c.LookAt }

// CameraFactory builds a camera for a viewport
type CameraFactory func(width, height float64) Camera

// OverviewCamera looks down on the whole plane at an angle
func OverviewCamera(width, height float64) Camera {
	return PerspectiveCamera{
		FovY:     75,
		Aspect:   width / height,
		Near:     0.1,
		Far:      5000,
		Position: r3.Vector{X: 0, Y: height * 0.6, Z: height * 0.6},
		LookAt:   r3.Vector{},
		Up:       r3.Vector{Y: 1},
	}
}

// TopDownCamera looks straight down, the flat map view
func TopDownCamera(width, height float64) Camera {
	return OrthographicCamera{
		Left:     -width / 2,
		Right:    width / 2,
		Bottom:   -height / 2,
		Top:      height / 2,
		Near:     0.1,
		Far:      5000,
		Position: r3.Vector{Y: 1000},
		LookAt:   r3.Vector{},
		Up:       r3.Vector{Z: -1},
	}
}

// CloseUpCamera frames a single mountain from the front
func CloseUpCamera(width, height float64) Camera {
	return PerspectiveCamera{
		FovY:     70,
		Aspect:   width / height,
		Near:     1,
		Far:      1000,
		Position: r3.Vector{Z: 350},
		LookAt:   r3.Vector{},
		Up:       r3.Vector{Y: 1},
	}
}

func lookAt(eye, center, up r3.Vector) mgl64.Mat4 {
	return mgl64.LookAtV(toVec3(eye), toVec3(center), toVec3(up))
}

// unproject maps an NDC point back to world space through an inverse
// view-projection matrix
func unproject(inv mgl64.Mat4, x, y, z float64) r3.Vector {
	p := inv.Mul4x1(mgl64.Vec4{x, y, z, 1})
	if p[3] != 0 {
		p = p.Mul(1 / p[3])
	}
	return r3.Vector{X: p[0], Y: p[1], Z: p[2]}
}

func toVec3(v r3.Vector) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

