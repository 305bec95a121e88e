package commands

import (
	"context"
	"fmt"

	"github.com/leapstack-labs/playhdl/internal/cli/output"
	"github.com/leapstack-labs/playhdl/internal/settings"
	"github.com/leapstack-labs/playhdl/pkg/core"
	"github.com/spf13/cobra"
)

// NewSetupCommand creates the setup command.
func NewSetupCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Discover installed simulators and write user settings",
		Long: `Scan PATH for every supported simulator and store the ones found in the
user settings file (~/.playhdl/settings.yaml by default).

Each found tool is stored under a label equal to its kind. Edit the file to
add more installations of the same tool under different labels, to set
environment variables (license servers, vendor paths) or to pick the VCS
waveform viewer.`,
		Example: `  # Discover simulators
  playhdl setup

  # Rescan and replace existing settings
  playhdl setup --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runSetup(cmd.Context(), cmdCtx, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing settings")

	return cmd
}

type setupResult struct {
	SettingsFile string                     `json:"settings_file"`
	Tools        map[string]core.ToolConfig `json:"tools"`
}

func runSetup(ctx context.Context, c *CommandContext, force bool) error {
	us, err := settings.Setup(ctx, c.Cfg.AppDir, c.Cfg.SettingsFile, binDirFinder, force, c.Logger)
	if err != nil {
		return err
	}

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(setupResult{SettingsFile: c.Cfg.SettingsFile, Tools: us.Tools})
	}

	r.Header(1, "Simulators")
	for _, kind := range core.AllToolKinds() {
		if cfg, ok := us.Tool(kind.String()); ok {
			r.StatusLine(kind.String(), "success", cfg.BinDir)
		} else {
			r.StatusLine(kind.String(), "skipped", "not found")
		}
	}

	r.Println("")
	r.Success(fmt.Sprintf("Settings saved to %s", c.Cfg.SettingsFile))
	if len(us.Tools) == 0 {
		r.Warning("No simulators found in PATH. Add tools to the settings file by hand")
	}
	r.Println("")
	r.Println("Next steps:")
	r.Println("  playhdl init <design>   Create a testbench and a project (verilog, sv, sv_uvm12)")
	r.Println("  playhdl info            Show supported designs per tool")

	return nil
}
