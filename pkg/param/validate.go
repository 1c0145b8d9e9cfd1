package param

import (
	"errors"
	"fmt"
	"math"
)

// ValidationError describes a single configuration finding. Any finding
// blocks solid construction; a table that derives a non-positive wall or
// an escaping cutout would produce parts that silently fail to mate.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate runs every configuration check and returns all findings.
// An empty slice means the table is safe to build from. Validate is
// read-only and performs no geometry.
func Validate(t Table) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validatePositive(t)...)
	errs = append(errs, validateDerived(t)...)
	errs = append(errs, validateHoles(t)...)
	errs = append(errs, validateCutouts(t)...)
	errs = append(errs, validateDisplay(t)...)
	errs = append(errs, validateSegments(t)...)
	return errs
}

// Check wraps Validate into a single error for callers that only need
// pass/fail.
func Check(t Table) error {
	errs := Validate(t)
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return fmt.Errorf("invalid parameter table: %w", errors.Join(joined...))
}

func validatePositive(t Table) []ValidationError {
	var errs []ValidationError
	positives := []struct {
		name  string
		value float64
	}{
		{"board_width", t.BoardWidth},
		{"board_height", t.BoardHeight},
		{"board_thickness", t.BoardThickness},
		{"case_height", t.CaseHeight},
		{"case_depth", t.CaseDepth},
		{"border", t.Border},
		{"hole_inset", t.HoleInset},
		{"hole_diameter", t.HoleDiameter},
		{"hole_depth", t.HoleDepth},
		{"counterbore_diameter", t.CounterboreDiameter},
		{"counterbore_depth", t.CounterboreDepth},
		{"standoff_depth", t.StandoffDepth},
		{"standoff_clearance", t.StandoffClearance},
		{"standoff_seat", t.StandoffSeat},
		{"port_width", t.PortWidth},
		{"display_width", t.DisplayWidth},
		{"display_height", t.DisplayHeight},
		{"display_hole_diameter", t.DisplayHoleDiameter},
		{"display_window_width", t.DisplayWindowWidth},
		{"display_window_height", t.DisplayWindowHeight},
		{"display_slot_width", t.DisplaySlotWidth},
		{"display_slot_height", t.DisplaySlotHeight},
		{"display_min_height", t.DisplayMinHeight},
		{"rim_depth", t.RimDepth},
		{"key_rim_width", t.KeyRimWidth},
		{"key_area_height", t.KeyAreaHeight},
		{"rotary_diameter", t.RotaryDiameter},
		{"button_width", t.ButtonWidth},
		{"button_length", t.ButtonLength},
		{"fillet_radius", t.FilletRadius},
		{"logo_size", t.LogoSize},
		{"logo_depth", t.LogoDepth},
	}
	for _, p := range positives {
		if p.value <= 0 {
			errs = append(errs, ValidationError{
				Field:   p.name,
				Message: fmt.Sprintf("is %.4f, must be positive", p.value),
			})
		}
	}
	return errs
}

func validateDerived(t Table) []ValidationError {
	var errs []ValidationError
	if t.BoardHeight > t.CaseHeight {
		errs = append(errs, ValidationError{
			Field: "case_height",
			Message: fmt.Sprintf("cavity height %.4f is smaller than board height %.4f",
				t.CaseHeight, t.BoardHeight),
		})
	}
	if t.FloorThickness() <= 0 {
		errs = append(errs, ValidationError{
			Field: "case_depth",
			Message: fmt.Sprintf("derived floor thickness %.4f is not positive; "+
				"case depth must exceed board thickness plus standoff depth",
				t.FloorThickness()),
		})
	}
	if t.CavityThickness()+t.StandoffDepth > t.CaseDepth {
		errs = append(errs, ValidationError{
			Field: "standoff_depth",
			Message: fmt.Sprintf("cavity depth %.4f plus standoff depth %.4f exceeds shell depth %.4f",
				t.CavityThickness(), t.StandoffDepth, t.CaseDepth),
		})
	}
	if t.WellDepth() <= 0 {
		errs = append(errs, ValidationError{
			Field: "standoff_clearance",
			Message: fmt.Sprintf("derived screw well depth %.4f is not positive; "+
				"clearance must be smaller than standoff depth", t.WellDepth()),
		})
	}
	if t.RimSpacing >= t.RimDepth {
		errs = append(errs, ValidationError{
			Field:   "rim_spacing",
			Message: fmt.Sprintf("is %.4f, must be smaller than rim depth %.4f", t.RimSpacing, t.RimDepth),
		})
	}
	if t.HoleDepth > t.CaseDepth {
		errs = append(errs, ValidationError{
			Field:   "hole_depth",
			Message: fmt.Sprintf("is %.4f, exceeds shell depth %.4f", t.HoleDepth, t.CaseDepth),
		})
	}
	return errs
}

func validateHoles(t Table) []ValidationError {
	var errs []ValidationError
	r := t.HoleDiameter / 2
	if t.HoleInset-t.CounterboreDiameter/2 <= 0 {
		errs = append(errs, ValidationError{
			Field: "hole_inset",
			Message: fmt.Sprintf("counterbore of diameter %.4f at inset %.4f escapes the shell edge",
				t.CounterboreDiameter, t.HoleInset),
		})
	}
	// Mirrored hole pairs collapse into duplicates when the inset reaches
	// the footprint midline.
	if 2*t.HoleInset >= t.OuterWidth() {
		errs = append(errs, ValidationError{
			Field: "hole_inset",
			Message: fmt.Sprintf("inset %.4f across width %.4f makes mirrored holes coincide",
				t.HoleInset, t.OuterWidth()),
		})
	}
	if 2*t.HoleInset >= t.OuterHeight() {
		errs = append(errs, ValidationError{
			Field: "hole_inset",
			Message: fmt.Sprintf("inset %.4f across height %.4f makes mirrored holes coincide",
				t.HoleInset, t.OuterHeight()),
		})
	}
	if t.CounterboreDiameter <= t.HoleDiameter {
		errs = append(errs, ValidationError{
			Field: "counterbore_diameter",
			Message: fmt.Sprintf("is %.4f, must be wider than hole diameter %.4f",
				t.CounterboreDiameter, t.HoleDiameter),
		})
	}
	if t.StandoffSeat/2 < r {
		errs = append(errs, ValidationError{
			Field: "standoff_seat",
			Message: fmt.Sprintf("seat side %.4f is too small for hole diameter %.4f",
				t.StandoffSeat, t.HoleDiameter),
		})
	}
	return errs
}

func validateCutouts(t Table) []ValidationError {
	var errs []ValidationError
	// Keep the port clear of the rounded corners, not just the footprint.
	if t.PortCenter-t.PortWidth/2 < t.Border || t.PortCenter+t.PortWidth/2 > t.OuterWidth()-t.Border {
		errs = append(errs, ValidationError{
			Field: "port_center",
			Message: fmt.Sprintf("port spanning %.4f..%.4f escapes the straight back wall (%.4f..%.4f)",
				t.PortCenter-t.PortWidth/2, t.PortCenter+t.PortWidth/2,
				t.Border, t.OuterWidth()-t.Border),
		})
	}
	halfDiag := math.Hypot(t.ButtonWidth, t.ButtonLength) / 2
	if t.ButtonX-halfDiag < 0 || t.ButtonX+halfDiag > t.OuterWidth() ||
		t.ButtonY-halfDiag < 0 || t.ButtonY+halfDiag > t.OuterHeight() {
		errs = append(errs, ValidationError{
			Field: "button_x",
			Message: fmt.Sprintf("button slot at (%.4f, %.4f) with half-diagonal %.4f escapes the outer footprint",
				t.ButtonX, t.ButtonY, halfDiag),
		})
	}
	rr := t.RotaryDiameter / 2
	if t.RotaryX-rr < 0 || t.RotaryX+rr > t.OuterWidth() ||
		t.RotaryY-rr < 0 || t.RotaryY+rr > t.OuterHeight() {
		errs = append(errs, ValidationError{
			Field: "rotary_x",
			Message: fmt.Sprintf("rotary hole at (%.4f, %.4f) radius %.4f escapes the outer footprint",
				t.RotaryX, t.RotaryY, rr),
		})
	}
	if t.KeyAreaY()+t.KeyAreaHeight > t.OuterHeight()-t.Border {
		errs = append(errs, ValidationError{
			Field: "key_area_height",
			Message: fmt.Sprintf("key footprint reaching %.4f collides with the back wall at %.4f",
				t.KeyAreaY()+t.KeyAreaHeight, t.OuterHeight()-t.Border),
		})
	}
	if t.KeyAreaWidth() <= 0 {
		errs = append(errs, ValidationError{
			Field:   "key_padding_x",
			Message: fmt.Sprintf("derived key footprint width %.4f is not positive", t.KeyAreaWidth()),
		})
	}
	if t.DisplayMountY <= t.KeyAreaY()+t.KeyAreaHeight {
		errs = append(errs, ValidationError{
			Field: "display_mount_y",
			Message: fmt.Sprintf("is %.4f, must sit past the key footprint ending at %.4f",
				t.DisplayMountY, t.KeyAreaY()+t.KeyAreaHeight),
		})
	}
	if t.LogoSize >= t.BoardWidth {
		errs = append(errs, ValidationError{
			Field:   "logo_size",
			Message: fmt.Sprintf("is %.4f, must fit within board width %.4f", t.LogoSize, t.BoardWidth),
		})
	}
	return errs
}

func validateDisplay(t Table) []ValidationError {
	var errs []ValidationError
	if t.DisplayTilt < 0 || t.DisplayTilt >= 90 {
		errs = append(errs, ValidationError{
			Field:   "display_tilt",
			Message: fmt.Sprintf("is %.4f, must be in [0, 90)", t.DisplayTilt),
		})
	}
	if t.DisplayWindowWidth >= t.DisplayWidth || t.DisplayWindowHeight >= t.DisplayHeight {
		errs = append(errs, ValidationError{
			Field: "display_window_width",
			Message: fmt.Sprintf("window %.4f x %.4f does not fit inside the %.4f x %.4f frame",
				t.DisplayWindowWidth, t.DisplayWindowHeight, t.DisplayWidth, t.DisplayHeight),
		})
	}
	hr := t.DisplayHoleDiameter / 2
	if t.DisplayHoleX+hr >= t.DisplayWidth/2 || t.DisplayHoleY+hr >= t.DisplayHeight/2 {
		errs = append(errs, ValidationError{
			Field: "display_hole_x",
			Message: fmt.Sprintf("hole offset (%.4f, %.4f) escapes the %.4f x %.4f frame",
				t.DisplayHoleX, t.DisplayHoleY, t.DisplayWidth, t.DisplayHeight),
		})
	}
	if t.DisplayWidth > t.OuterWidth() {
		errs = append(errs, ValidationError{
			Field: "display_width",
			Message: fmt.Sprintf("is %.4f, wider than the shell %.4f",
				t.DisplayWidth, t.OuterWidth()),
		})
	}
	return errs
}

func validateSegments(t Table) []ValidationError {
	var errs []ValidationError
	if t.Segments.Hole < 8 {
		errs = append(errs, ValidationError{
			Field:   "segments.hole",
			Message: fmt.Sprintf("is %d, functional mating holes need at least 8 segments", t.Segments.Hole),
		})
	}
	for _, s := range []struct {
		name  string
		value int
	}{
		{"segments.fillet", t.Segments.Fillet},
		{"segments.decor", t.Segments.Decor},
	} {
		if s.value < 3 {
			errs = append(errs, ValidationError{
				Field:   s.name,
				Message: fmt.Sprintf("is %d, must be at least 3", s.value),
			})
		}
	}
	return errs
}
