// Package kernel defines the contract with the geometry evaluation
// stage. The enclosure builders only produce csg trees; a Kernel turns
// one tree into a watertight triangle mesh or reports a diagnostic
// naming the part and the operation that failed. Implementations
// (sdfx today) live behind this interface so backends can be swapped
// without touching the builders.
package kernel

import (
	"fmt"

	"github.com/chazu/bakelite/pkg/csg"
)

// Kernel evaluates one csg tree per call. The part name is carried
// through so diagnostics identify what was being built.
type Kernel interface {
	Mesh(part string, s csg.Solid) (*Mesh, error)
}

// GeometryError is a fatal evaluation diagnostic: a degenerate or
// non-manifold result, or a construct the backend cannot represent.
// It names the offending part and operation so the failure is never
// silently dropped.
type GeometryError struct {
	Part   string
	Op     string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("part %q: %s: %s", e.Part, e.Op, e.Reason)
}
