package enclosure

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/form"
	"github.com/chazu/bakelite/pkg/param"
)

// LogoIndent is the decorative delta glyph stamped into the bottom
// shell's underside: a hand-authored triangle outline, stroke-rounded
// with a disc sweep, with the inner triangle cut back out.
func LogoIndent(t param.Table) csg.Solid {
	return logoGlyph(t, t.LogoDepth)
}

// logoGlyph builds the glyph to an arbitrary depth so cutters can
// overshoot the surface they engrave.
func logoGlyph(t param.Table, depth float64) csg.Solid {
	s := t.LogoSize
	outer := []r2.Vec{
		{X: 0, Y: 0},
		{X: s, Y: 0},
		{X: s / 2, Y: 0.866 * s},
	}
	inner := []r2.Vec{
		{X: 0.25 * s, Y: 0.14 * s},
		{X: 0.75 * s, Y: 0.14 * s},
		{X: 0.5 * s, Y: 0.57 * s},
	}

	stroke := form.RoundedOutline(outer, t.LogoRound, depth, t.Segments.Decor)
	hole := csg.TranslateXYZ(csg.Polygon(inner, depth+2*overshoot), 0, 0, -overshoot)
	return csg.Difference(stroke, hole)
}
