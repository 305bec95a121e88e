package tools

import (
	"github.com/leapstack-labs/playhdl/pkg/core"
)

// catalog is the static kind -> spec table. Every core.ToolKind has an entry.
var catalog = map[core.ToolKind]*Spec{
	core.ToolModelsim:  modelsim,
	core.ToolXcelium:   xcelium,
	core.ToolVerilator: verilator,
	core.ToolIcarus:    icarus,
	core.ToolVCS:       vcs,
	core.ToolVivado:    vivado,
}

// Lookup returns the spec registered for a tool kind.
func Lookup(kind core.ToolKind) (*Spec, error) {
	if s, ok := catalog[kind]; ok {
		return s, nil
	}
	return nil, &core.UnknownToolKindError{Kind: kind, Available: registeredKinds()}
}

// Specs returns all registered specs in core.AllToolKinds order.
func Specs() []*Spec {
	specs := make([]*Spec, 0, len(catalog))
	for _, k := range core.AllToolKinds() {
		if s, ok := catalog[k]; ok {
			specs = append(specs, s)
		}
	}
	return specs
}

func registeredKinds() []core.ToolKind {
	specs := Specs()
	kinds := make([]core.ToolKind, len(specs))
	for i, s := range specs {
		kinds[i] = s.kind
	}
	return kinds
}
