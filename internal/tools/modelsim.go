package tools

import (
	"github.com/leapstack-labs/playhdl/pkg/core"
)

// modelsim is Siemens (Mentor Graphics) ModelSim/Questa. The work library
// is created and mapped before sources are compiled one by one.
var modelsim = &Spec{
	kind:       core.ToolModelsim,
	title:      "Siemens ModelSim",
	executable: "vsim",
	designs:    []core.DesignKind{core.DesignVerilog, core.DesignSV},
	script:     modelsimScript,
}

func modelsimScript(_ *Tool, design core.DesignKind, srcs []string) core.Pipeline {
	vlogOpts := ""
	if design == core.DesignSV {
		vlogOpts = "-sv"
	}

	build := []string{"vlib worklib", "vmap work worklib"}
	for _, s := range srcs {
		build = append(build, cmdline("vlog", vlogOpts, s))
	}

	return core.Pipeline{
		Build: build,
		Sim:   []string{`vsim -c worklib.tb -do "log -r *;run -all"`},
		Waves: []string{"vsim -view vsim.wlf"},
	}
}
