package enclosure

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/bakelite/pkg/param"
)

// HoleSpec is one mounting hole in outer shell coordinates.
type HoleSpec struct {
	Position r2.Vec
	Diameter float64
	Depth    float64
}

// MountingHoles returns the canonical corner hole list. Both shells and
// the cavity consume this exact list; the holes stay coaxial because
// nothing else ever computes a hole position.
func MountingHoles(t param.Table) []HoleSpec {
	in := t.HoleInset
	w := t.OuterWidth()
	h := t.OuterHeight()
	positions := []r2.Vec{
		{X: in, Y: in},
		{X: w - in, Y: in},
		{X: in, Y: h - in},
		{X: w - in, Y: h - in},
	}
	holes := make([]HoleSpec, len(positions))
	for i, p := range positions {
		holes[i] = HoleSpec{Position: p, Diameter: t.HoleDiameter, Depth: t.HoleDepth}
	}
	return holes
}
