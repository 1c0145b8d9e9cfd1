package enclosure

import (
	"math"

	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/param"
)

// DisplayFrame builds the tilted display mounting frame. The frame is
// designed flat in the display module's own coordinates, rotated about
// X by the tilt angle, and clipped to the half-space above its floor
// plane, leaving a wedge with a flat underside and an angled mounting
// face. At zero tilt it degenerates to a flat plate of exactly the
// configured minimum height.
func DisplayFrame(t param.Table) csg.Solid {
	w := t.DisplayWidth
	h := t.DisplayHeight
	rad := t.DisplayTilt * math.Pi / 180

	// Thick enough that the clip plane reaches the underside everywhere;
	// collapses to the minimum height at zero tilt.
	thickness := t.DisplayMinHeight/math.Cos(rad) + h*math.Tan(rad)

	plate := csg.NewBox(w, h, thickness)
	cx := w / 2
	cy := h / 2

	var cuts []csg.Solid
	// Corner mounting holes: one offset pair mirrored through sign
	// multipliers, so the pattern cannot go asymmetric.
	for _, sgn := range [4][2]float64{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
		hole := csg.NewCylinder(thickness+2*overshoot, t.DisplayHoleDiameter/2, t.Segments.Hole)
		cuts = append(cuts, csg.TranslateXYZ(hole,
			cx+sgn[0]*t.DisplayHoleX, cy+sgn[1]*t.DisplayHoleY, -overshoot))
	}

	window := csg.NewBox(t.DisplayWindowWidth, t.DisplayWindowHeight, thickness+2*overshoot)
	cuts = append(cuts, csg.TranslateXYZ(window,
		cx-t.DisplayWindowWidth/2, cy-t.DisplayWindowHeight/2, -overshoot))

	// Connector cable slot, aligned to the front edge.
	slot := csg.NewBox(t.DisplaySlotWidth, t.DisplaySlotHeight+overshoot, thickness+2*overshoot)
	cuts = append(cuts, csg.TranslateXYZ(slot, cx-t.DisplaySlotWidth/2, -overshoot, -overshoot))

	flat := csg.Difference(plate, cuts...)

	// Mounting face to z=0, tilt, raise to the minimum height, clip.
	s := csg.TranslateXYZ(flat, 0, 0, -thickness)
	s = csg.RotateX(s, t.DisplayTilt)
	s = csg.TranslateXYZ(s, 0, 0, t.DisplayMinHeight)
	return csg.KeepAbove(s, 0)
}
