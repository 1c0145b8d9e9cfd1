package form

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/bakelite/pkg/csg"
)

func TestRoundedRect(t *testing.T) {
	s := RoundedRect(100, 60, 8, 13, 32)
	m, ok := s.(csg.Minkowski)
	if !ok {
		t.Fatalf("rounded rect = %T, want Minkowski", s)
	}

	poly, ok := m.A.(csg.ExtrudedPolygon)
	if !ok {
		t.Fatalf("swept solid = %T, want ExtrudedPolygon", m.A)
	}
	if poly.Height != 13 {
		t.Errorf("slab depth = %f, want 13", poly.Height)
	}
	// The outline is inset by the radius so the sweep restores the
	// requested footprint.
	want := []r2.Vec{{X: 8, Y: 8}, {X: 92, Y: 8}, {X: 92, Y: 52}, {X: 8, Y: 52}}
	if len(poly.Vertices) != 4 {
		t.Fatalf("outline has %d vertices, want 4", len(poly.Vertices))
	}
	for i, v := range poly.Vertices {
		if v != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, v, want[i])
		}
	}

	brush, ok := m.B.(csg.Cylinder)
	if !ok {
		t.Fatalf("brush = %T, want Cylinder", m.B)
	}
	if brush.Height != 0 || brush.Radius != 8 {
		t.Errorf("brush = disc r=%f h=%f, want r=8 h=0", brush.Radius, brush.Height)
	}
}

func TestEdgeFillet(t *testing.T) {
	s := EdgeFillet(2, 50, 32)
	d, ok := s.(csg.Boolean)
	if !ok || d.Op != csg.OpDifference {
		t.Fatalf("edge fillet = %T, want a difference", s)
	}
	bar, ok := d.Children[0].(csg.Box)
	if !ok {
		t.Fatalf("fillet base = %T, want Box", d.Children[0])
	}
	if bar.Size.X != 50 || bar.Size.Y != 2 || bar.Size.Z != 2 {
		t.Errorf("fillet bar = %v, want 50 x 2 x 2", bar.Size)
	}

	// The subtracted quarter cylinder runs along the bar and overshoots
	// both ends.
	var cyl *csg.Cylinder
	csg.Walk(s, func(n csg.Solid) {
		if c, ok := n.(csg.Cylinder); ok {
			cyl = &c
		}
	})
	if cyl == nil {
		t.Fatal("no cylinder in the fillet negative")
	}
	if cyl.Radius != 2 {
		t.Errorf("cylinder radius = %f, want 2", cyl.Radius)
	}
	if cyl.Height <= 50 {
		t.Errorf("cylinder length = %f, should overshoot the 50 bar", cyl.Height)
	}
}

func TestCornerFillet(t *testing.T) {
	s := CornerFillet(3, 16)
	d, ok := s.(csg.Boolean)
	if !ok || d.Op != csg.OpDifference {
		t.Fatalf("corner fillet = %T, want a difference", s)
	}
	if cube := d.Children[0].(csg.Box); cube.Size.X != 3 || cube.Size.Y != 3 || cube.Size.Z != 3 {
		t.Errorf("corner cube = %v, want 3 x 3 x 3", cube.Size)
	}
	tr, ok := d.Children[1].(csg.Translate)
	if !ok {
		t.Fatalf("sphere placement = %T, want Translate", d.Children[1])
	}
	if tr.Offset.X != 3 || tr.Offset.Y != 3 || tr.Offset.Z != 3 {
		t.Errorf("sphere center = %v, want (3, 3, 3)", tr.Offset)
	}
	if sph := tr.Child.(csg.Sphere); sph.Radius != 3 {
		t.Errorf("sphere radius = %f, want 3", sph.Radius)
	}
}

func TestRoundAllEdgesAndCorners(t *testing.T) {
	s := RoundAllEdgesAndCorners(100, 200, 8, 32)
	u, ok := s.(csg.Boolean)
	if !ok || u.Op != csg.OpUnion {
		t.Fatalf("router = %T, want a union", s)
	}
	if len(u.Children) != 8 {
		t.Fatalf("router has %d pieces, want 4 edges + 4 corners", len(u.Children))
	}

	// Four spheres, one per corner.
	var spheres, cylinders int
	csg.Walk(s, func(n csg.Solid) {
		switch n.(type) {
		case csg.Sphere:
			spheres++
		case csg.Cylinder:
			cylinders++
		}
	})
	if spheres != 4 {
		t.Errorf("spheres = %d, want 4", spheres)
	}
	if cylinders != 4 {
		t.Errorf("quarter cylinders = %d, want 4", cylinders)
	}
}
