package csg

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// NewBox returns a box of the given size with its minimum corner at the origin.
func NewBox(x, y, z float64) Box {
	return Box{Size: r3.Vec{X: x, Y: y, Z: z}}
}

// NewCylinder returns a cylinder along +Z with its base at the origin.
func NewCylinder(height, radius float64, segments int) Cylinder {
	if height <= 0 {
		panic("csg: cylinder height must be positive, use Disc for brushes")
	}
	return Cylinder{Height: height, Radius: radius, Segments: segments}
}

// Disc returns a zero-height cylinder for use as a Minkowski brush.
func Disc(radius float64, segments int) Cylinder {
	return Cylinder{Height: 0, Radius: radius, Segments: segments}
}

// NewSphere returns a sphere centered at the origin.
func NewSphere(radius float64, segments int) Sphere {
	return Sphere{Radius: radius, Segments: segments}
}

// Polygon returns a counter-clockwise outline extruded upward from z=0.
func Polygon(vertices []r2.Vec, height float64) ExtrudedPolygon {
	return ExtrudedPolygon{Vertices: vertices, Height: height}
}

// Union combines solids. Nil children are dropped; a union of one solid
// is that solid.
func Union(ss ...Solid) Solid {
	kept := compact(ss)
	if len(kept) == 1 {
		return kept[0]
	}
	return Boolean{Op: OpUnion, Children: kept}
}

// Difference subtracts each cut from base, in order. Nil cuts are dropped.
func Difference(base Solid, cuts ...Solid) Solid {
	if base == nil {
		panic("csg: nil base solid")
	}
	kept := compact(cuts)
	if len(kept) == 0 {
		return base
	}
	return Boolean{Op: OpDifference, Children: append([]Solid{base}, kept...)}
}

// Intersect intersects solids. Nil children are dropped; an intersection
// of one solid is that solid.
func Intersect(ss ...Solid) Solid {
	kept := compact(ss)
	if len(kept) == 1 {
		return kept[0]
	}
	return Boolean{Op: OpIntersection, Children: kept}
}

// TranslateXYZ moves a solid by (x, y, z).
func TranslateXYZ(s Solid, x, y, z float64) Solid {
	if s == nil {
		panic("csg: nil solid")
	}
	return Translate{Offset: r3.Vec{X: x, Y: y, Z: z}, Child: s}
}

// RotateX rotates a solid about the X axis through the origin.
func RotateX(s Solid, degrees float64) Solid {
	return rotate(s, AxisX, degrees)
}

// RotateY rotates a solid about the Y axis through the origin.
func RotateY(s Solid, degrees float64) Solid {
	return rotate(s, AxisY, degrees)
}

// RotateZ rotates a solid about the Z axis through the origin.
func RotateZ(s Solid, degrees float64) Solid {
	return rotate(s, AxisZ, degrees)
}

func rotate(s Solid, axis Axis, degrees float64) Solid {
	if s == nil {
		panic("csg: nil solid")
	}
	return Rotate{Axis: axis, Degrees: degrees, Child: s}
}

// Round is the Minkowski sum of a solid with a brush.
func Round(a, brush Solid) Solid {
	if a == nil || brush == nil {
		panic("csg: nil solid")
	}
	return Minkowski{A: a, B: brush}
}

// KeepAbove clips a solid to the half-space above the horizontal plane
// through z=elevation.
func KeepAbove(s Solid, elevation float64) Solid {
	if s == nil {
		panic("csg: nil solid")
	}
	return ClipAbove{
		Point:  r3.Vec{Z: elevation},
		Normal: r3.Vec{Z: 1},
		Child:  s,
	}
}

func compact(ss []Solid) []Solid {
	kept := make([]Solid, 0, len(ss))
	for _, s := range ss {
		if s != nil {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		panic("csg: boolean operation with no solids")
	}
	return kept
}
