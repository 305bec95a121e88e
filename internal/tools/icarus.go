package tools

import (
	"strings"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

// icarus is Icarus Verilog. It compiles all sources at once into a vvp image.
var icarus = &Spec{
	kind:       core.ToolIcarus,
	title:      "Icarus Verilog",
	executable: "iverilog",
	designs:    []core.DesignKind{core.DesignVerilog, core.DesignSV},
	script:     icarusScript,
}

func icarusScript(_ *Tool, design core.DesignKind, srcs []string) core.Pipeline {
	langVer := "-g2001"
	if design == core.DesignSV {
		langVer = "-g2012"
	}
	return core.Pipeline{
		Build: []string{cmdline("iverilog", "-Wall", langVer, strings.Join(srcs, " "), "-o", "tb.out")},
		Sim:   []string{"vvp tb.out"},
		Waves: []string{"gtkwave tb.vcd"},
	}
}
