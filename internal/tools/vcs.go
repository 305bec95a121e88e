package tools

import (
	"strings"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

// vcs is Synopsys VCS. It is the only tool with a viewer choice (Verdi or DVE);
// both waveform formats are always dumped so the choice only affects the
// waves phase.
var vcs = &Spec{
	kind:       core.ToolVCS,
	title:      "Synopsys VCS",
	executable: "vcs",
	designs:    []core.DesignKind{core.DesignVerilog, core.DesignSV, core.DesignSVUVM12},
	script:     vcsScript,
}

func vcsScript(t *Tool, design core.DesignKind, srcs []string) core.Pipeline {
	var langOpts string
	switch design {
	case core.DesignSV:
		langOpts = "-sverilog"
	case core.DesignSVUVM12:
		langOpts = "-sverilog -ntb_opts uvm-1.2"
	}

	build := cmdline("vcs", "-full64", langOpts, "-debug_acc+all", "+vcs+vcdpluson", "+vcs+fsdbon", strings.Join(srcs, " "))

	waves := "verdi -ssf novas.fsdb"
	if t.viewer == core.ViewerDVE {
		waves = "dve -vpd vcdplus.vpd"
	}

	return core.Pipeline{
		Build: []string{build},
		Sim:   []string{"./simv"},
		Waves: []string{waves},
	}
}
