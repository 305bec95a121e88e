package tools

import (
	"github.com/leapstack-labs/playhdl/pkg/core"
)

// vivado is the Xilinx Vivado simulator (xvlog/xelab/xsim). UVM designs link
// the bundled uvm library at both compile and elaboration.
var vivado = &Spec{
	kind:       core.ToolVivado,
	title:      "Xilinx Vivado",
	executable: "xsim",
	designs:    []core.DesignKind{core.DesignVerilog, core.DesignSV, core.DesignSVUVM12},
	script:     vivadoScript,
}

func vivadoScript(_ *Tool, design core.DesignKind, srcs []string) core.Pipeline {
	var vlogOpts, elabOpts string
	switch design {
	case core.DesignSV:
		vlogOpts = "-sv"
	case core.DesignSVUVM12:
		vlogOpts = "-sv -uvm_version 1.2 -L uvm"
		elabOpts = "-L uvm"
	}

	build := make([]string, 0, len(srcs)+1)
	for _, s := range srcs {
		build = append(build, cmdline("xvlog", "-work", "worklib", vlogOpts, s))
	}
	build = append(build, cmdline("xelab", "worklib.tb", elabOpts, "--debug", "all", "-s", "tbsim"))

	return core.Pipeline{
		Build: build,
		Sim: []string{
			`echo "log_wave -recursive *;run all;quit" > sim.tcl`,
			"xsim tbsim --wdb tb.wdb --t sim.tcl",
		},
		Waves: []string{
			`echo "open_wave_database tb.wdb" > waves.tcl`,
			"vivado -source waves.tcl",
		},
	}
}
