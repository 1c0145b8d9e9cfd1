package enclosure

import (
	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/param"
)

// overshoot extends cutting tools past the surfaces they cut so boolean
// boundaries never land exactly on a face.
const overshoot = 1.0

// Cavity returns the negative solid the bottom shell hollows itself
// with: the board pocket plus the screw wells beneath it. Local origin
// is the pocket's bottom-left corner at the pocket floor; the wells
// descend below z=0.
//
// Subtracting the square reliefs from this negative leaves the square
// seats that carry the board one clearance above the pocket floor, and
// unioning the cylinders into it carves the wells the inserts seat in.
func Cavity(t param.Table) csg.Solid {
	slab := csg.NewBox(t.BoardWidth, t.CaseHeight, t.CavityThickness())

	seat := t.StandoffSeat
	var seats []csg.Solid
	var wells []csg.Solid
	for _, hs := range MountingHoles(t) {
		// Rebase from outer shell coordinates to cavity-local.
		x := hs.Position.X - t.Border
		y := hs.Position.Y - t.Border

		relief := csg.NewBox(seat, seat, t.StandoffClearance+overshoot)
		seats = append(seats, csg.TranslateXYZ(relief, x-seat/2, y-seat/2, -overshoot))

		well := csg.NewCylinder(t.WellDepth()+overshoot, hs.Diameter/2, t.Segments.Hole)
		wells = append(wells, csg.TranslateXYZ(well, x, y, -t.WellDepth()))
	}

	pocket := csg.Difference(slab, seats...)
	return csg.Union(append([]csg.Solid{pocket}, wells...)...)
}
