package enclosure

import (
	"errors"
	"fmt"

	"github.com/chazu/bakelite/pkg/csg"
	"github.com/chazu/bakelite/pkg/param"
)

// Part names one enclosure part. Exactly one part is built per
// invocation; there is no default.
type Part string

const (
	PartBottomShell  Part = "bottom-shell"
	PartTopShell     Part = "top-shell"
	PartDisplayFrame Part = "display-frame"
	PartLogoIndent   Part = "logo-indent"
	PartButtonCap    Part = "button-cap"
)

// ErrUnknownPart reports a part name outside the registry.
var ErrUnknownPart = errors.New("unknown part")

// Parts lists every buildable part in stable order.
func Parts() []Part {
	return []Part{
		PartBottomShell,
		PartTopShell,
		PartDisplayFrame,
		PartLogoIndent,
		PartButtonCap,
	}
}

// Build validates the table and constructs the named part. The table is
// validated before any solid exists, so a bad configuration can never
// reach the geometry kernel.
func Build(p Part, t param.Table) (csg.Solid, error) {
	if err := param.Check(t); err != nil {
		return nil, err
	}
	switch p {
	case PartBottomShell:
		return BottomShell(t), nil
	case PartTopShell:
		return TopShell(t), nil
	case PartDisplayFrame:
		return DisplayFrame(t), nil
	case PartLogoIndent:
		return LogoIndent(t), nil
	case PartButtonCap:
		return ButtonCap(t), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPart, p)
	}
}
