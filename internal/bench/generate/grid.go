package generate

import (
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/engine"
	"github.com/DjordjeVuckovic/motif-bench/internal/bench/spec"
)

// Point is one parameter combination of a generation grid.
type Point struct {
	Shape      string
	Height     string
	Randomness string
	Size       string
	Window     string
}

func (p Point) get(dim string) string {
	switch dim {
	case spec.DimShape:
		return p.Shape
	case spec.DimHeight:
		return p.Height
	case spec.DimRandomness:
		return p.Randomness
	case spec.DimSize:
		return p.Size
	case spec.DimWindow:
		return p.Window
	}
	return ""
}

func (p *Point) set(dim, v string) {
	switch dim {
	case spec.DimShape:
		p.Shape = v
	case spec.DimHeight:
		p.Height = v
	case spec.DimRandomness:
		p.Randomness = v
	case spec.DimSize:
		p.Size = v
	case spec.DimWindow:
		p.Window = v
	}
}

// Params exposes the point to the generator argument template.
func (p Point) Params(length int) engine.Params {
	params := engine.Params{"length": length}
	for _, dim := range spec.DefaultOrder {
		params[dim] = p.get(dim)
	}
	return params
}

func values(g spec.Group, dim string) []string {
	switch dim {
	case spec.DimShape:
		return g.Shapes
	case spec.DimHeight:
		return g.Heights
	case spec.DimRandomness:
		return g.Randomness
	case spec.DimSize:
		return g.Sizes
	case spec.DimWindow:
		return g.Windows
	}
	return nil
}

// Expand lists the cartesian product of the group, iterating the dimensions
// in g.Order with the last one varying fastest. An empty dimension yields no
// points.
func Expand(g spec.Group) []Point {
	order := g.Order
	if len(order) == 0 {
		order = spec.DefaultOrder
	}

	var out []Point
	var walk func(depth int, cur Point)
	walk = func(depth int, cur Point) {
		if depth == len(order) {
			out = append(out, cur)
			return
		}
		for _, v := range values(g, order[depth]) {
			next := cur
			next.set(order[depth], v)
			walk(depth+1, next)
		}
	}
	walk(0, Point{})
	return out
}
