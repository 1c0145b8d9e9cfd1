package sdfx

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/enclosure"
	"github.com/chazu/bakelite/pkg/form"
	"github.com/chazu/bakelite/pkg/kernel"
	"github.com/chazu/bakelite/pkg/param"
)

// Coarse resolution keeps the marching cubes runs fast; these tests
// check topology and diagnostics, not surface quality.
const testCells = 48

func TestMeshBox(t *testing.T) {
	k := New(testCells)
	mesh, err := k.Mesh("test", csg.NewBox(20, 10, 5))
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 {
		t.Fatal("expected non-zero vertex count")
	}
	// Verify vertex, normal, and index array sizes are consistent.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
	if mesh.PartName != "test" {
		t.Errorf("part name = %q, want %q", mesh.PartName, "test")
	}
}

func TestMeshDifference(t *testing.T) {
	k := New(testCells)

	box := csg.NewBox(20, 20, 20)
	boxMesh, err := k.Mesh("box", box)
	if err != nil {
		t.Fatalf("Mesh(box) failed: %v", err)
	}

	drill := csg.TranslateXYZ(csg.NewCylinder(24, 4, 32), 10, 10, -2)
	diffMesh, err := k.Mesh("drilled", csg.Difference(box, drill))
	if err != nil {
		t.Fatalf("Mesh(diff) failed: %v", err)
	}
	// A box with a hole should have more triangles than a plain box.
	if diffMesh.TriangleCount() <= boxMesh.TriangleCount() {
		t.Fatalf("difference (%d triangles) should have more triangles than box (%d triangles)",
			diffMesh.TriangleCount(), boxMesh.TriangleCount())
	}
}

func TestMeshRoundedRect(t *testing.T) {
	k := New(testCells)
	mesh, err := k.Mesh("slab", form.RoundedRect(30, 20, 4, 6, 32))
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("rounded slab mesh is empty")
	}
}

func TestMeshSphereBrush(t *testing.T) {
	k := New(testCells)
	rounded := csg.Round(csg.NewBox(10, 10, 10), csg.NewSphere(2, 16))
	mesh, err := k.Mesh("rounded-box", rounded)
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("sphere-rounded mesh is empty")
	}
}

func TestMeshClipAbove(t *testing.T) {
	k := New(testCells)
	halfBox := csg.KeepAbove(csg.NewBox(10, 10, 10), 5)
	mesh, err := k.Mesh("clipped", halfBox)
	if err != nil {
		t.Fatalf("Mesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("clipped mesh is empty")
	}
}

func TestMeshEveryPart(t *testing.T) {
	if testing.Short() {
		t.Skip("meshing full-size parts is slow")
	}
	table := param.Default()
	for _, p := range enclosure.Parts() {
		solid, err := enclosure.Build(p, table)
		if err != nil {
			t.Fatalf("Build(%q) = %v", p, err)
		}
		// The logo indent is a fraction of a millimetre thick; it needs
		// a grid fine enough for at least one sample layer inside it.
		cells := testCells
		if p == enclosure.PartLogoIndent {
			cells = 192
		}
		mesh, err := New(cells).Mesh(string(p), solid)
		if err != nil {
			t.Errorf("Mesh(%q) = %v", p, err)
			continue
		}
		if mesh.IsEmpty() {
			t.Errorf("part %q meshed empty", p)
		}
		if len(mesh.Vertices) != len(mesh.Normals) {
			t.Errorf("part %q: vertices length %d != normals length %d",
				p, len(mesh.Vertices), len(mesh.Normals))
		}
	}
}

func TestUnsupportedBrush(t *testing.T) {
	k := New(testCells)
	bad := csg.Round(csg.NewBox(10, 10, 10), csg.NewBox(1, 1, 1))
	_, err := k.Mesh("bad-part", bad)
	if err == nil {
		t.Fatal("box brush should be rejected")
	}
	var gerr *kernel.GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("err = %T, want *kernel.GeometryError", err)
	}
	if gerr.Part != "bad-part" {
		t.Errorf("diagnostic names part %q, want %q", gerr.Part, "bad-part")
	}
	if gerr.Op != "minkowski" {
		t.Errorf("diagnostic op = %q, want minkowski", gerr.Op)
	}
}

func TestDiscBrushNeedsOutline(t *testing.T) {
	k := New(testCells)
	bad := csg.Round(csg.NewBox(10, 10, 10), csg.Disc(2, 16))
	_, err := k.Mesh("bad-part", bad)
	var gerr *kernel.GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("disc brush over a box should be a geometry error, got %v", err)
	}
	if !strings.Contains(gerr.Reason, "extruded outline") {
		t.Errorf("diagnostic reason %q should name the outline requirement", gerr.Reason)
	}
}

func TestBareDiscRejected(t *testing.T) {
	k := New(testCells)
	_, err := k.Mesh("bad-part", csg.Disc(3, 16))
	var gerr *kernel.GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("bare disc should be a geometry error, got %v", err)
	}
	if gerr.Op != "cylinder" {
		t.Errorf("diagnostic op = %q, want cylinder", gerr.Op)
	}
}

func TestDegenerateOutlineRejected(t *testing.T) {
	k := New(testCells)
	bad := csg.Polygon([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}}, 5)
	_, err := k.Mesh("bad-part", bad)
	var gerr *kernel.GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("two-vertex outline should be a geometry error, got %v", err)
	}
}

func TestNilSolidRejected(t *testing.T) {
	k := New(testCells)
	_, err := k.Mesh("nothing", nil)
	var gerr *kernel.GeometryError
	if !errors.As(err, &gerr) {
		t.Fatalf("nil solid should be a geometry error, got %v", err)
	}
}

func TestDefaultResolution(t *testing.T) {
	if k := New(0); k.cells != defaultMeshCells {
		t.Errorf("cells = %d, want the default %d", k.cells, defaultMeshCells)
	}
	if k := New(64); k.cells != 64 {
		t.Errorf("cells = %d, want 64", k.cells)
	}
}
