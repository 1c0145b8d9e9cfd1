// Package param holds the measured constants the enclosure is generated
// from. One Table is computed per run and is immutable thereafter; every
// builder reads the same table, so mating dimensions cannot diverge.
//
// All lengths are millimetres, all angles degrees. The coordinate
// convention is shared by every part: the outer shell's bottom-left
// corner is the origin, the PCB cavity starts one border width in, and
// derived outer dimensions are always the inner footprint plus the
// border added symmetrically.
package param

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Segments is the tessellation-quality knob per curved feature class.
// Functional mating holes want more segments than decorative curves;
// slivers at boolean boundaries between mating parts show up first on
// under-segmented holes.
type Segments struct {
	Hole   int `yaml:"hole"`   // mounting and rotary holes
	Fillet int `yaml:"fillet"` // edge and corner rounding
	Decor  int `yaml:"decor"`  // logo and other cosmetic curves
}

// Table enumerates every primary measurement. Derived measurements are
// methods so they cannot be set independently of their inputs.
type Table struct {
	// Main PCB and inner cavity.
	BoardWidth     float64 `yaml:"board_width"`
	BoardHeight    float64 `yaml:"board_height"`
	BoardThickness float64 `yaml:"board_thickness"`
	CaseHeight     float64 `yaml:"case_height"` // inner cavity height, >= board height
	CaseDepth      float64 `yaml:"case_depth"`  // bottom shell total depth
	Border         float64 `yaml:"border"`      // wall thickness and outline corner radius

	// Corner mounting holes, shared by both shells.
	HoleInset           float64 `yaml:"hole_inset"` // from each outer shell edge
	HoleDiameter        float64 `yaml:"hole_diameter"`
	HoleDepth           float64 `yaml:"hole_depth"` // insert engagement depth
	CounterboreDiameter float64 `yaml:"counterbore_diameter"`
	CounterboreDepth    float64 `yaml:"counterbore_depth"`

	// Board standoffs inside the cavity.
	StandoffDepth     float64 `yaml:"standoff_depth"`
	StandoffClearance float64 `yaml:"standoff_clearance"`
	StandoffSeat      float64 `yaml:"standoff_seat"` // square seat side

	// Port cutout in the back wall, shared by both shells.
	PortCenter float64 `yaml:"port_center"` // from the left outer edge
	PortWidth  float64 `yaml:"port_width"`

	// Display frame.
	DisplayWidth        float64 `yaml:"display_width"`
	DisplayHeight       float64 `yaml:"display_height"`
	DisplayHoleX        float64 `yaml:"display_hole_x"` // hole offset pair, mirrored
	DisplayHoleY        float64 `yaml:"display_hole_y"`
	DisplayHoleDiameter float64 `yaml:"display_hole_diameter"`
	DisplayWindowWidth  float64 `yaml:"display_window_width"`
	DisplayWindowHeight float64 `yaml:"display_window_height"`
	DisplaySlotWidth    float64 `yaml:"display_slot_width"` // connector cable slot
	DisplaySlotHeight   float64 `yaml:"display_slot_height"`
	DisplayTilt         float64 `yaml:"display_tilt"` // degrees, 0 <= tilt < 90
	DisplayMinHeight    float64 `yaml:"display_min_height"`
	DisplayMountY       float64 `yaml:"display_mount_y"` // frame front edge on the top shell

	// Top shell rim and key surround.
	RimDepth      float64 `yaml:"rim_depth"`
	RimSpacing    float64 `yaml:"rim_spacing"` // surround strips start here
	KeyRimWidth   float64 `yaml:"key_rim_width"`
	KeyPaddingX   float64 `yaml:"key_padding_x"` // board edge to key footprint
	KeyPaddingY   float64 `yaml:"key_padding_y"`
	KeyAreaHeight float64 `yaml:"key_area_height"`

	// Rotary control and angled button, in outer shell coordinates.
	RotaryX        float64 `yaml:"rotary_x"`
	RotaryY        float64 `yaml:"rotary_y"`
	RotaryDiameter float64 `yaml:"rotary_diameter"`
	ButtonX        float64 `yaml:"button_x"`
	ButtonY        float64 `yaml:"button_y"`
	ButtonWidth    float64 `yaml:"button_width"`
	ButtonLength   float64 `yaml:"button_length"`
	ButtonAngle    float64 `yaml:"button_angle"` // degrees, matches actuation direction
	ButtonFit      float64 `yaml:"button_fit"`   // cap-to-slot clearance per side

	// Cosmetics.
	FilletRadius float64 `yaml:"fillet_radius"` // small rounds (button cap)
	LogoSize     float64 `yaml:"logo_size"`
	LogoRound    float64 `yaml:"logo_round"`
	LogoDepth    float64 `yaml:"logo_depth"`

	Segments Segments `yaml:"segments"`
}

// Default returns the shipped device's measurements.
func Default() Table {
	return Table{
		BoardWidth:     100.95,
		BoardHeight:    159.87,
		BoardThickness: 1.6,
		CaseHeight:     200,
		CaseDepth:      13,
		Border:         8,

		HoleInset:           5.5,
		HoleDiameter:        3.2,
		HoleDepth:           8,
		CounterboreDiameter: 6,
		CounterboreDepth:    3.5,

		StandoffDepth:     5,
		StandoffClearance: 1,
		StandoffSeat:      7,

		PortCenter: 30,
		PortWidth:  14,

		DisplayWidth:        98,
		DisplayHeight:       60,
		DisplayHoleX:        46.5,
		DisplayHoleY:        27.5,
		DisplayHoleDiameter: 3,
		DisplayWindowWidth:  76,
		DisplayWindowHeight: 26,
		DisplaySlotWidth:    16,
		DisplaySlotHeight:   8,
		DisplayTilt:         12,
		DisplayMinHeight:    3,
		DisplayMountY:       140,

		RimDepth:      9,
		RimSpacing:    3,
		KeyRimWidth:   3,
		KeyPaddingX:   8,
		KeyPaddingY:   10,
		KeyAreaHeight: 92,

		RotaryX:        97,
		RotaryY:        120,
		RotaryDiameter: 7,
		ButtonX:        22,
		ButtonY:        120,
		ButtonWidth:    6,
		ButtonLength:   14,
		ButtonAngle:    30,
		ButtonFit:      0.2,

		FilletRadius: 2,
		LogoSize:     24,
		LogoRound:    1,
		LogoDepth:    0.4,

		Segments: Segments{Hole: 64, Fillet: 32, Decor: 16},
	}
}

// OuterWidth is the outer shell width: inner footprint plus the border
// on both sides.
func (t Table) OuterWidth() float64 { return t.BoardWidth + 2*t.Border }

// OuterHeight is the outer shell height: cavity height plus the border
// on both sides.
func (t Table) OuterHeight() float64 { return t.CaseHeight + 2*t.Border }

// CavityThickness is the open pocket depth the board and its underside
// clearance occupy.
func (t Table) CavityThickness() float64 { return t.BoardThickness + t.StandoffClearance }

// WellDepth is how far the screw wells descend below the pocket floor.
func (t Table) WellDepth() float64 { return t.StandoffDepth - t.StandoffClearance }

// FloorThickness is the solid material left beneath the cavity.
func (t Table) FloorThickness() float64 {
	return t.CaseDepth - t.BoardThickness - t.StandoffDepth
}

// CavityElevation is the z of the pocket floor in bottom shell coordinates.
func (t Table) CavityElevation() float64 { return t.FloorThickness() + t.WellDepth() }

// DisplayMountX centers the display frame across the shell.
func (t Table) DisplayMountX() float64 { return (t.OuterWidth() - t.DisplayWidth) / 2 }

// KeyAreaWidth is the key footprint width: the board minus the side padding.
func (t Table) KeyAreaWidth() float64 { return t.BoardWidth - 2*t.KeyPaddingX }

// KeyAreaX is the key footprint left edge in outer shell coordinates.
func (t Table) KeyAreaX() float64 { return t.Border + t.KeyPaddingX }

// KeyAreaY is the key footprint front edge in outer shell coordinates.
func (t Table) KeyAreaY() float64 { return t.Border + t.KeyPaddingY }

// Load reads a Table from a YAML file, starting from Default so a file
// only needs to name the measurements it changes. Unknown keys are errors.
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read parameter file: %w", err)
	}
	return FromYAML(raw)
}

// FromYAML decodes a Table over the defaults. Unknown keys are errors.
func FromYAML(raw []byte) (Table, error) {
	t := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return Table{}, fmt.Errorf("decode parameter file: %w", err)
	}
	return t, nil
}
