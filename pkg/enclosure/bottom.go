package enclosure

import (
	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/form"
	"github.com/chazu/bakelite/pkg/param"
)

// BottomShell builds the lower half of the case: the rounded outer
// block, hollowed by the cavity, drilled at the canonical hole list,
// opened at the port, stamped with the logo, and rounded along its
// bottom edges.
func BottomShell(t param.Table) csg.Solid {
	w := t.OuterWidth()
	h := t.OuterHeight()

	shell := form.RoundedRect(w, h, t.Border, t.CaseDepth, t.Segments.Fillet)
	shell = csg.Difference(shell,
		csg.TranslateXYZ(Cavity(t), t.Border, t.Border, t.CavityElevation()))

	var cuts []csg.Solid
	for _, hs := range MountingHoles(t) {
		drill := csg.NewCylinder(t.CaseDepth+2*overshoot, hs.Diameter/2, t.Segments.Hole)
		cuts = append(cuts, csg.TranslateXYZ(drill, hs.Position.X, hs.Position.Y, -overshoot))

		bore := csg.NewCylinder(t.CounterboreDepth+overshoot, t.CounterboreDiameter/2, t.Segments.Hole)
		cuts = append(cuts, csg.TranslateXYZ(bore, hs.Position.X, hs.Position.Y, -overshoot))
	}

	cuts = append(cuts, portCutout(t, t.CavityElevation(), t.CaseDepth))

	logo := logoGlyph(t, t.LogoDepth+overshoot)
	cuts = append(cuts, csg.TranslateXYZ(logo,
		(w-t.LogoSize)/2, (h-0.866*t.LogoSize)/2, -overshoot))

	cuts = append(cuts, form.RoundAllEdgesAndCorners(w, h, t.Border, t.Segments.Fillet))

	return csg.Difference(shell, cuts...)
}

// portCutout opens the shared port in the back wall between the given
// elevations. Both shells call this with the same center and width, so
// the opening lines up across the parting plane.
func portCutout(t param.Table, zFrom, zTo float64) csg.Solid {
	cut := csg.NewBox(t.PortWidth, t.Border+2*overshoot, zTo-zFrom+overshoot)
	return csg.TranslateXYZ(cut,
		t.PortCenter-t.PortWidth/2,
		t.OuterHeight()-t.Border-overshoot,
		zFrom)
}
