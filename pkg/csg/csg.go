package csg

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is a node in a CSG expression tree. A Solid is a pure value:
// constructing one performs no geometry evaluation and no mutation.
// Concrete node types are restricted to this package via the marker method.
type Solid interface {
	solid()
}

// Op enumerates boolean operations.
type Op int

const (
	OpUnion Op = iota
	OpDifference
	OpIntersection
)

func (o Op) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Axis names a principal rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Box is a rectangular solid with its minimum corner at the origin, so
// placement translations read the same way the measurements do.
type Box struct {
	Size r3.Vec
}

// Cylinder is a circular cylinder along +Z with its base center at the
// origin. Segments is a tessellation hint for faceting kernels; SDF
// kernels represent the surface smoothly and ignore it.
//
// A zero-height cylinder is a disc and is only meaningful as the brush
// of a Minkowski node. Disc is the constructor for that case.
type Cylinder struct {
	Height   float64
	Radius   float64
	Segments int
}

// Sphere is centered at the origin.
type Sphere struct {
	Radius   float64
	Segments int
}

// ExtrudedPolygon is a counter-clockwise 2D outline extruded from z=0
// to z=Height.
type ExtrudedPolygon struct {
	Vertices []r2.Vec
	Height   float64
}

// Translate moves its child by Offset.
type Translate struct {
	Offset r3.Vec
	Child  Solid
}

// Rotate rotates its child about the named axis through the origin.
// Degrees follows the right-hand rule.
type Rotate struct {
	Axis    Axis
	Degrees float64
	Child   Solid
}

// Boolean combines an ordered sequence of children. For OpDifference the
// first child is the base and the rest are subtracted from it.
type Boolean struct {
	Op       Op
	Children []Solid
}

// Minkowski is the Minkowski sum of A swept by the brush B. Kernels
// support spherical brushes and disc brushes over extruded outlines;
// anything else is reported as a geometry error at evaluation time.
type Minkowski struct {
	A Solid
	B Solid
}

// ClipAbove keeps the part of its child on the side of the plane its
// Normal points to. This is the explicit form of the tilt-then-discard
// idiom used for angled mounting surfaces.
type ClipAbove struct {
	Point  r3.Vec
	Normal r3.Vec
	Child  Solid
}

func (Box) solid()             {}
func (Cylinder) solid()        {}
func (Sphere) solid()          {}
func (ExtrudedPolygon) solid() {}
func (Translate) solid()       {}
func (Rotate) solid()          {}
func (Boolean) solid()         {}
func (Minkowski) solid()       {}
func (ClipAbove) solid()       {}
