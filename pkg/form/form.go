// Package form provides the reusable rounding shapes the enclosure
// parts are built from: minkowski-rounded outlines and quarter-round
// fillet negatives. The fillet router is deliberately specialized to
// axis-aligned rectangular footprints.
package form

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/bakelite/pkg/csg"
)

// overshoot extends cutting tools past the surfaces they cut so boolean
// boundaries never land exactly on a face.
const overshoot = 1.0

// RoundedRect returns a w x h x depth slab with every vertical edge
// rounded at radius r: a rect shrunk by r on each side, swept with a
// disc of radius r. Every rounded silhouette in the enclosure comes
// from here, so mating parts cannot diverge in rounding radius.
func RoundedRect(w, h, r, depth float64, segments int) csg.Solid {
	inner := []r2.Vec{
		{X: r, Y: r},
		{X: w - r, Y: r},
		{X: w - r, Y: h - r},
		{X: r, Y: h - r},
	}
	return csg.Round(csg.Polygon(inner, depth), csg.Disc(r, segments))
}

// RoundedOutline sweeps an arbitrary hand-authored outline with a disc
// of radius r and extrudes it, giving consistent stroke rounding
// regardless of how sharp the outline's vertices are.
func RoundedOutline(vertices []r2.Vec, r, depth float64, segments int) csg.Solid {
	return csg.Round(csg.Polygon(vertices, depth), csg.Disc(r, segments))
}

// EdgeFillet returns the quarter-round negative for one straight edge:
// an r x r square profile minus the quarter cylinder at its far corner,
// extruded along +X. Subtracting it from a solid whose edge runs along
// the X axis at y=0, z=0 leaves that edge rounded at radius r.
func EdgeFillet(r, length float64, segments int) csg.Solid {
	bar := csg.NewBox(length, r, r)
	var quarter csg.Solid = csg.NewCylinder(length+2*overshoot, r, segments)
	quarter = csg.TranslateXYZ(quarter, 0, 0, -overshoot)
	quarter = csg.RotateY(quarter, 90) // axis along +X
	return csg.Difference(bar, csg.TranslateXYZ(quarter, 0, r, r))
}

// CornerFillet returns the spherical negative for one corner: an r cube
// minus the octant sphere at its far corner. Subtracting it at a corner
// whose material extends toward +X, +Y, +Z rounds that corner.
func CornerFillet(r float64, segments int) csg.Solid {
	return csg.Difference(
		csg.NewBox(r, r, r),
		csg.TranslateXYZ(csg.NewSphere(r, segments), r, r, r),
	)
}

// RoundAllEdgesAndCorners returns the combined negative that rounds the
// four bottom edges and four bottom corners of an axis-aligned w x h
// footprint sitting at z=0. This router only handles rectangles; the
// enclosure has no call for filleting general polygons.
func RoundAllEdgesAndCorners(w, h, r float64, segments int) csg.Solid {
	return csg.Union(
		// Edges: front, back, left, right.
		EdgeFillet(r, w, segments),
		csg.TranslateXYZ(csg.RotateZ(EdgeFillet(r, w, segments), 180), w, h, 0),
		csg.TranslateXYZ(csg.RotateZ(EdgeFillet(r, h, segments), -90), 0, h, 0),
		csg.TranslateXYZ(csg.RotateZ(EdgeFillet(r, h, segments), 90), w, 0, 0),
		// Corners, counter-clockwise from the origin.
		CornerFillet(r, segments),
		csg.TranslateXYZ(csg.RotateZ(CornerFillet(r, segments), 90), w, 0, 0),
		csg.TranslateXYZ(csg.RotateZ(CornerFillet(r, segments), 180), w, h, 0),
		csg.TranslateXYZ(csg.RotateZ(CornerFillet(r, segments), 270), 0, h, 0),
	)
}
