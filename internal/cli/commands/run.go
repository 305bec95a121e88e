package commands

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/playhdl/internal/cli/output"
	"github.com/leapstack-labs/playhdl/internal/project"
	"github.com/leapstack-labs/playhdl/internal/runner"
	"github.com/leapstack-labs/playhdl/internal/settings"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Waves bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <tool>",
		Short: "Build and simulate the project with a tool",
		Long: `Execute the build and simulation commands stored in the project for one tool.

Commands run in a fresh working directory named after the tool label, below
the project directory. The directory is recreated on every run. The first
failing command stops the run and leaves the directory for inspection.`,
		Example: `  # Simulate with Icarus Verilog
  playhdl run icarus

  # Simulate and open the waveform viewer
  playhdl run vcs --waves`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeProjectTools,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runRun(cmd, cmdCtx, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Waves, "waves", false, "Open the waveform viewer after the simulation")

	return cmd
}

type runResult struct {
	Tool     string  `json:"tool"`
	WorkDir  string  `json:"work_dir"`
	Waves    bool    `json:"waves"`
	Duration float64 `json:"duration_seconds"`
}

func runRun(cmd *cobra.Command, c *CommandContext, label string, opts *RunOptions) error {
	p, err := project.Load(c.Cfg.ProjectFile)
	if err != nil {
		return err
	}
	us, err := settings.Load(c.Cfg.SettingsFile)
	if err != nil {
		return err
	}

	r := c.Renderer
	stdout := cmd.OutOrStdout()
	if r.EffectiveMode() == output.ModeJSON {
		// keep stdout parseable
		stdout = cmd.ErrOrStderr()
	}

	rn := runner.New(runner.Config{
		ProjectDir: c.Cfg.ProjectDir,
		Stdout:     stdout,
		Stderr:     cmd.ErrOrStderr(),
		Logger:     c.Logger,
	})

	start := time.Now()
	if err := rn.Run(cmd.Context(), p, us, label, runner.Options{Waves: opts.Waves}); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(runResult{
			Tool:     label,
			WorkDir:  rn.WorkDir(label),
			Waves:    opts.Waves,
			Duration: elapsed.Seconds(),
		})
	}

	r.Println("")
	r.Success(fmt.Sprintf("%s finished in %s", label, elapsed.Round(time.Millisecond)))
	r.Muted(fmt.Sprintf("Working directory: %s", rn.WorkDir(label)))
	return nil
}

// completeProjectTools completes tool labels from the project file.
func completeProjectTools(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg, err := getConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	p, err := project.Load(cfg.ProjectFile)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return p.Labels(), cobra.ShellCompDirectiveNoFileComp
}
