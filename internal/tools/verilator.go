package tools

import (
	"strings"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

// verilator is Veripool Verilator. Tracing is always enabled so the
// testbench can dump waves.
var verilator = &Spec{
	kind:       core.ToolVerilator,
	title:      "Veripool Verilator",
	executable: "verilator",
	designs:    []core.DesignKind{core.DesignVerilog, core.DesignSV},
	script:     verilatorScript,
}

func verilatorScript(_ *Tool, design core.DesignKind, srcs []string) core.Pipeline {
	langExt := "+verilog2001ext+v"
	if design == core.DesignSV {
		langExt = "+systemverilogext+sv"
	}
	return core.Pipeline{
		Build: []string{cmdline("verilator", langExt, "--trace", "--binary", "-j", "0", strings.Join(srcs, " "))},
		Sim:   []string{"./obj_dir/Vtb"},
		Waves: []string{"gtkwave tb.vcd"},
	}
}
