package terrain

import (
	"errors"
	"fmt"
)

// ErrInvalidSmoothing is returned for a smoothing factor outside [0,1]
var ErrInvalidSmoothing = errors.New("smoothing factor must be within [0,1]")

// Smooth blends every vertex with the mean of itself and its up to four grid
// neighbours: h' = mean*alpha + h*(1-alpha). All means are taken from the
// heights as they were before the pass. Vertices whose height changes are
// recoloured through gradient; a nil gradient leaves colours alone.
func Smooth(g *Grid, alpha float64, gradient Gradient) error {
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("%w: got %g", ErrInvalidSmoothing, alpha)
	}
	if alpha == 0 {
		return nil
	}

	before := g.Heights()

	for row := 0; row <= g.Rows; row++ {
		for col := 0; col <= g.Cols; col++ {
			i := g.index(col, row)
			sum := before[i]
			count := 1.0

			if col > 0 {
				sum += before[g.index(col-1, row)]
				count++
			}
			if col < g.Cols {
				sum += before[g.index(col+1, row)]
				count++
			}
			if row > 0 {
				sum += before[g.index(col, row-1)]
				count++
			}
			if row < g.Rows {
				sum += before[g.index(col, row+1)]
				count++
			}

			h := (sum/count)*alpha + before[i]*(1-alpha)
			if h == before[i] {
				continue
			}

			v := &g.Vertices[i]
			v.Height = h
			if gradient == nil {
				continue
			}
			if h > g.Floor {
				v.Color = gradient.Color(h)
			} else {
				v.Color = g.FloorColor
			}
		}
	}

	return nil
}
