package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/jengzang/velomap-backend-go/internal/models"
)

// ErrInvalidGrid is returned for grids without area or segments
var ErrInvalidGrid = errors.New("invalid grid dimensions")

// Vertex is one sample point of the heightmap
type Vertex struct {
	Position r2.Point
	Height   float64
	Color    models.RGB
}

// Grid is a regular (Cols+1)x(Rows+1) lattice spanning
// [-Width/2, Width/2] x [-Height/2, Height/2]. Vertices are stored row-major
// with row 0 on the top edge (y = +Height/2), the same order a plane mesh uses.
type Grid struct {
	Cols       int
	Rows       int
	Width      float64
	Height     float64
	Floor      float64
	FloorColor models.RGB
	Vertices   []Vertex
}

// NewGrid creates a grid with every vertex at the floor height and colour
func NewGrid(width, height float64, cols, rows int, floor float64, floorColor models.RGB) (*Grid, error) {
	if width <= 0 || height <= 0 || cols < 1 || rows < 1 {
		return nil, fmt.Errorf("%w: %gx%g with %dx%d segments", ErrInvalidGrid, width, height, cols, rows)
	}

	g := &Grid{
		Cols:       cols,
		Rows:       rows,
		Width:      width,
		Height:     height,
		Floor:      floor,
		FloorColor: floorColor,
		Vertices:   make([]Vertex, (cols+1)*(rows+1)),
	}

	segW := width / float64(cols)
	segH := height / float64(rows)
	for row := 0; row <= rows; row++ {
		y := height/2 - float64(row)*segH
		for col := 0; col <= cols; col++ {
			g.Vertices[g.index(col, row)] = Vertex{
				Position: r2.Point{X: float64(col)*segW - width/2, Y: y},
				Height:   floor,
				Color:    floorColor,
			}
		}
	}

	return g, nil
}

func (g *Grid) index(col, row int) int {
	return row*(g.Cols+1) + col
}

// At returns the vertex at a column and row
func (g *Grid) At(col, row int) *Vertex {
	return &g.Vertices[g.index(col, row)]
}

// Nearest returns the column and row of the vertex closest to p, clamped to the grid
func (g *Grid) Nearest(p r2.Point) (col, row int) {
	segW := g.Width / float64(g.Cols)
	segH := g.Height / float64(g.Rows)

	col = int(math.Round((p.X + g.Width/2) / segW))
	row = int(math.Round((g.Height/2 - p.Y) / segH))

	return clamp(col, 0, g.Cols), clamp(row, 0, g.Rows)
}

// Peak returns the tallest vertex. ok is false when nothing rose above the floor.
func (g *Grid) Peak() (peak Vertex, ok bool) {
	peak.Height = g.Floor
	for _, v := range g.Vertices {
		if v.Height > peak.Height {
			peak = v
			ok = true
		}
	}
	return peak, ok
}

// Heights returns a copy of all vertex heights in storage order
func (g *Grid) Heights() []float64 {
	heights := make([]float64, len(g.Vertices))
	for i, v := range g.Vertices {
		heights[i] = v.Height
	}
	return heights
}

// Colors returns all vertex colours flattened to r,g,b triples
func (g *Grid) Colors() []float64 {
	colors := make([]float64, 0, len(g.Vertices)*3)
	for _, v := range g.Vertices {
		colors = append(colors, v.Color.R, v.Color.G, v.Color.B)
	}
	return colors
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
