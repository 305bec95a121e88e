package tools

import (
	"github.com/leapstack-labs/playhdl/pkg/core"
)

// xcelium is Cadence Xcelium: per-file xmvlog, one xmelab snapshot, xmsim.
var xcelium = &Spec{
	kind:       core.ToolXcelium,
	title:      "Cadence Xcelium",
	executable: "xmsim",
	designs:    []core.DesignKind{core.DesignVerilog, core.DesignSV},
	script:     xceliumScript,
}

func xceliumScript(_ *Tool, design core.DesignKind, srcs []string) core.Pipeline {
	vlogOpts := ""
	if design == core.DesignSV {
		vlogOpts = "-sv"
	}

	build := make([]string, 0, len(srcs)+1)
	for _, s := range srcs {
		build = append(build, cmdline("xmvlog", vlogOpts, s))
	}
	build = append(build, "xmelab -access +rwc -snapshot tbsim tb")

	return core.Pipeline{
		Build: build,
		Sim:   []string{"xmsim tbsim"},
		Waves: []string{
			`echo "database open -overwrite tb.vcd" > waves.cmd`,
			"simvision -input waves.cmd -waves",
		},
	}
}
