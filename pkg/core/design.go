package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// DesignKind
// =============================================================================

// DesignKind identifies the HDL dialect of a design and its testbench.
type DesignKind string

// Supported design kinds. DesignVHDL is known to the catalog but no tool builds it.
const (
	DesignVerilog DesignKind = "verilog"
	DesignSV      DesignKind = "sv"
	DesignSVUVM12 DesignKind = "sv_uvm12"
	DesignVHDL    DesignKind = "vhdl"
)

var designKinds = []DesignKind{DesignVerilog, DesignSV, DesignSVUVM12, DesignVHDL}

// AllDesignKinds returns every design kind in declaration order.
func AllDesignKinds() []DesignKind {
	out := make([]DesignKind, len(designKinds))
	copy(out, designKinds)
	return out
}

// String returns the serialized form of the design kind.
func (d DesignKind) String() string {
	return string(d)
}

// Valid reports whether d is one of the declared design kinds.
func (d DesignKind) Valid() bool {
	for _, k := range designKinds {
		if k == d {
			return true
		}
	}
	return false
}

// ParseDesignKind converts a string to a DesignKind (case-insensitive).
func ParseDesignKind(s string) (DesignKind, error) {
	d := DesignKind(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown design kind %q (available: %s)", s, joinKinds(designKinds))
	}
	return d, nil
}

func joinKinds[T ~string](kinds []T) string {
	parts := make([]string, len(kinds))
	for i, k := range kinds {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
