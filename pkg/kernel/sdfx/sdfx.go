// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library. A csg tree is lowered
// node by node into signed distance functions, then meshed with
// marching cubes.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct {
	cells int
}

// New returns a Kernel meshing at the given marching-cubes resolution.
// Non-positive cells selects the default.
func New(cells int) *Kernel {
	if cells <= 0 {
		cells = defaultMeshCells
	}
	return &Kernel{cells: cells}
}

// Mesh lowers a csg tree and runs marching cubes over it.
func (k *Kernel) Mesh(part string, s csg.Solid) (*kernel.Mesh, error) {
	l := lowerer{part: part}
	s3, err := l.lower(s)
	if err != nil {
		return nil, err
	}

	renderer := render.NewMarchingCubesUniform(k.cells)
	triangles := render.ToTriangles(s3, renderer)
	if len(triangles) == 0 {
		return nil, &kernel.GeometryError{
			Part:   part,
			Op:     "mesh",
			Reason: "marching cubes produced no triangles (empty or degenerate solid)",
		}
	}

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)
		for j := 0; j < 3; j++ {
			v := tri.V[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
		PartName: part,
	}, nil
}

// lowerer carries the part identity so every diagnostic can name it.
type lowerer struct {
	part string
}

func (l lowerer) fail(op, format string, args ...interface{}) error {
	return &kernel.GeometryError{Part: l.part, Op: op, Reason: fmt.Sprintf(format, args...)}
}

func (l lowerer) lower(s csg.Solid) (sdf.SDF3, error) {
	switch n := s.(type) {
	case csg.Box:
		return l.box(n)
	case csg.Cylinder:
		return l.cylinder(n)
	case csg.Sphere:
		return l.sphere(n)
	case csg.ExtrudedPolygon:
		return l.extrudedPolygon(n)
	case csg.Translate:
		child, err := l.lower(n.Child)
		if err != nil {
			return nil, err
		}
		m := sdf.Translate3d(v3.Vec{X: n.Offset.X, Y: n.Offset.Y, Z: n.Offset.Z})
		return sdf.Transform3D(child, m), nil
	case csg.Rotate:
		return l.rotate(n)
	case csg.Boolean:
		return l.boolean(n)
	case csg.Minkowski:
		return l.minkowski(n)
	case csg.ClipAbove:
		child, err := l.lower(n.Child)
		if err != nil {
			return nil, err
		}
		a := v3.Vec{X: n.Point.X, Y: n.Point.Y, Z: n.Point.Z}
		dir := v3.Vec{X: n.Normal.X, Y: n.Normal.Y, Z: n.Normal.Z}
		return sdf.Cut3D(child, a, dir), nil
	case nil:
		return nil, l.fail("lower", "nil solid")
	default:
		return nil, l.fail("lower", "unsupported node type %T", s)
	}
}

// box lowers with the min-corner-at-origin convention: sdf.Box3D
// centers the box, so shift by half the size.
func (l lowerer) box(n csg.Box) (sdf.SDF3, error) {
	s, err := sdf.Box3D(v3.Vec{X: n.Size.X, Y: n.Size.Y, Z: n.Size.Z}, 0)
	if err != nil {
		return nil, l.fail("box", "%v", err)
	}
	m := sdf.Translate3d(v3.Vec{X: n.Size.X / 2, Y: n.Size.Y / 2, Z: n.Size.Z / 2})
	return sdf.Transform3D(s, m), nil
}

// cylinder lowers with its base center at the origin. The segments
// hint is ignored: SDF surfaces are smooth. Zero-height discs are only
// legal as minkowski brushes and are rejected here.
func (l lowerer) cylinder(n csg.Cylinder) (sdf.SDF3, error) {
	if n.Height <= 0 {
		return nil, l.fail("cylinder", "height %.4f outside a minkowski brush", n.Height)
	}
	s, err := sdf.Cylinder3D(n.Height, n.Radius, 0)
	if err != nil {
		return nil, l.fail("cylinder", "%v", err)
	}
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: n.Height / 2})), nil
}

func (l lowerer) sphere(n csg.Sphere) (sdf.SDF3, error) {
	s, err := sdf.Sphere3D(n.Radius)
	if err != nil {
		return nil, l.fail("sphere", "%v", err)
	}
	return s, nil
}

// extrudedPolygon lowers an outline extruded from z=0 to z=height.
// sdf.Extrude3D centers the extrusion, so shift up by half the height.
func (l lowerer) extrudedPolygon(n csg.ExtrudedPolygon) (sdf.SDF3, error) {
	s2, err := l.polygon(n)
	if err != nil {
		return nil, err
	}
	if n.Height <= 0 {
		return nil, l.fail("extrude", "height %.4f must be positive", n.Height)
	}
	s := sdf.Extrude3D(s2, n.Height)
	return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: n.Height / 2})), nil
}

func (l lowerer) polygon(n csg.ExtrudedPolygon) (sdf.SDF2, error) {
	if len(n.Vertices) < 3 {
		return nil, l.fail("polygon", "outline with %d vertices is degenerate", len(n.Vertices))
	}
	pts := make([]v2.Vec, len(n.Vertices))
	for i, v := range n.Vertices {
		pts[i] = v2.Vec{X: v.X, Y: v.Y}
	}
	s2, err := sdf.Polygon2D(pts)
	if err != nil {
		return nil, l.fail("polygon", "%v", err)
	}
	return s2, nil
}

func (l lowerer) rotate(n csg.Rotate) (sdf.SDF3, error) {
	child, err := l.lower(n.Child)
	if err != nil {
		return nil, err
	}
	rad := n.Degrees * math.Pi / 180.0
	var m sdf.M44
	switch n.Axis {
	case csg.AxisX:
		m = sdf.RotateX(rad)
	case csg.AxisY:
		m = sdf.RotateY(rad)
	case csg.AxisZ:
		m = sdf.RotateZ(rad)
	default:
		return nil, l.fail("rotate", "unknown axis %v", n.Axis)
	}
	return sdf.Transform3D(child, m), nil
}

// boolean folds the ordered children pairwise, matching the tree's
// left-to-right semantics.
func (l lowerer) boolean(n csg.Boolean) (sdf.SDF3, error) {
	if len(n.Children) == 0 {
		return nil, l.fail(n.Op.String(), "no children")
	}
	acc, err := l.lower(n.Children[0])
	if err != nil {
		return nil, err
	}
	for _, c := range n.Children[1:] {
		child, err := l.lower(c)
		if err != nil {
			return nil, err
		}
		switch n.Op {
		case csg.OpUnion:
			acc = sdf.Union3D(acc, child)
		case csg.OpDifference:
			acc = sdf.Difference3D(acc, child)
		case csg.OpIntersection:
			acc = sdf.Intersect3D(acc, child)
		default:
			return nil, l.fail("boolean", "unknown operation %v", n.Op)
		}
	}
	return acc, nil
}

// minkowski supports the two brush shapes the builders use. A sphere
// brush is an exact 3D offset of the SDF; a disc brush over an
// extruded outline is an exact 2D offset re-extruded. General
// minkowski sums have no closed SDF form and are rejected.
func (l lowerer) minkowski(n csg.Minkowski) (sdf.SDF3, error) {
	switch brush := n.B.(type) {
	case csg.Sphere:
		a, err := l.lower(n.A)
		if err != nil {
			return nil, err
		}
		return sdf.Offset3D(a, brush.Radius), nil
	case csg.Cylinder:
		poly, ok := n.A.(csg.ExtrudedPolygon)
		if !ok {
			return nil, l.fail("minkowski",
				"disc brush needs an extruded outline, got %T", n.A)
		}
		s2, err := l.polygon(poly)
		if err != nil {
			return nil, err
		}
		height := poly.Height + brush.Height
		if height <= 0 {
			return nil, l.fail("minkowski", "swept height %.4f must be positive", height)
		}
		s := sdf.Extrude3D(sdf.Offset2D(s2, brush.Radius), height)
		return sdf.Transform3D(s, sdf.Translate3d(v3.Vec{Z: height / 2})), nil
	default:
		return nil, l.fail("minkowski", "unsupported brush type %T", n.B)
	}
}
