package enclosure

import (
	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/form"
	"github.com/chazu/bakelite/pkg/param"
)

// ButtonCap is the blank for the angled button: a stem sized to slide
// in the top shell's slot with the configured fit clearance, under a
// rounded cap that overhangs the slot. The legend engraver consumes
// this blank downstream; it carries no glyphs here.
func ButtonCap(t param.Table) csg.Solid {
	stemW := t.ButtonWidth - 2*t.ButtonFit
	stemL := t.ButtonLength - 2*t.ButtonFit
	stemH := t.RimDepth - t.RimSpacing

	capW := t.ButtonWidth + 2*t.KeyRimWidth
	capL := t.ButtonLength + 2*t.KeyRimWidth
	capH := t.RimSpacing

	stem := csg.TranslateXYZ(csg.NewBox(stemW, stemL, stemH+overshoot),
		(capW-stemW)/2, (capL-stemL)/2, 0)
	cap := csg.TranslateXYZ(
		form.RoundedRect(capW, capL, t.FilletRadius, capH, t.Segments.Fillet),
		0, 0, stemH)

	return csg.Union(stem, cap)
}
