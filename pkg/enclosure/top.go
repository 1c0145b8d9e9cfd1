package enclosure

import (
	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/form"
	"github.com/chazu/bakelite/pkg/param"
)

// TopShell builds the upper half of the case: a constant-thickness rim
// matching the bottom shell's silhouette, the key surround deck with
// its functional cutouts, and the display frame seated on top.
func TopShell(t param.Table) csg.Solid {
	w := t.OuterWidth()
	h := t.OuterHeight()
	d := t.RimDepth

	// Same outline parameters as the bottom shell, minus an inset
	// duplicate: a wall of exactly one border thickness all around.
	outer := form.RoundedRect(w, h, t.Border, d, t.Segments.Fillet)
	inset := form.RoundedRect(w-2*t.Border, h-2*t.Border, t.Border, d+2*overshoot, t.Segments.Fillet)
	ring := csg.Difference(outer,
		csg.TranslateXYZ(inset, t.Border, t.Border, -overshoot))

	var cuts []csg.Solid
	for _, hs := range MountingHoles(t) {
		drill := csg.NewCylinder(d+2*overshoot, hs.Diameter/2, t.Segments.Hole)
		cuts = append(cuts, csg.TranslateXYZ(drill, hs.Position.X, hs.Position.Y, -overshoot))
	}
	cuts = append(cuts, portCutout(t, -overshoot, d))

	// Rounding runs along the top, mirrored in the build direction
	// relative to the bottom shell.
	round := form.RoundAllEdgesAndCorners(w, h, t.Border, t.Segments.Fillet)
	cuts = append(cuts, csg.TranslateXYZ(csg.RotateX(round, 180), 0, h, d))

	ring = csg.Difference(ring, cuts...)

	frame := csg.TranslateXYZ(DisplayFrame(t), t.DisplayMountX(), t.DisplayMountY, d)
	return csg.Union(ring, keySurround(t), frame)
}

// keySurround is the raised structure around the key-switch footprint:
// side and front strips plus the deck running up to the display, with
// the cable window, the rotary hole, and the angled button slot cut
// through it.
func keySurround(t param.Table) csg.Solid {
	x0 := t.KeyAreaX()
	y0 := t.KeyAreaY()
	kw := t.KeyAreaWidth()
	kh := t.KeyAreaHeight
	sw := t.KeyRimWidth
	z0 := t.RimSpacing
	sd := t.RimDepth - t.RimSpacing

	left := csg.TranslateXYZ(csg.NewBox(sw, t.DisplayMountY-(y0-sw), sd), x0-sw, y0-sw, z0)
	right := csg.TranslateXYZ(csg.NewBox(sw, t.DisplayMountY-(y0-sw), sd), x0+kw, y0-sw, z0)
	front := csg.TranslateXYZ(csg.NewBox(kw, sw, sd), x0, y0-sw, z0)
	deck := csg.TranslateXYZ(csg.NewBox(kw, t.DisplayMountY-(y0+kh), sd), x0, y0+kh, z0)

	body := csg.Union(left, right, front, deck)

	var window csg.Solid = csg.NewBox(t.DisplaySlotWidth, t.DisplaySlotHeight+overshoot, sd+2*overshoot)
	window = csg.TranslateXYZ(window,
		x0+(kw-t.DisplaySlotWidth)/2,
		t.DisplayMountY-t.DisplaySlotHeight,
		z0-overshoot)

	var rotary csg.Solid = csg.NewCylinder(sd+2*overshoot, t.RotaryDiameter/2, t.Segments.Hole)
	rotary = csg.TranslateXYZ(rotary, t.RotaryX, t.RotaryY, z0-overshoot)

	var slot csg.Solid = csg.NewBox(t.ButtonWidth, t.ButtonLength, sd+2*overshoot)
	slot = csg.TranslateXYZ(slot, -t.ButtonWidth/2, -t.ButtonLength/2, 0)
	slot = csg.RotateZ(slot, t.ButtonAngle)
	slot = csg.TranslateXYZ(slot, t.ButtonX, t.ButtonY, z0-overshoot)

	return csg.Difference(body, window, rotary, slot)
}
