package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/leapstack-labs/playhdl/internal/cli/output"
	"github.com/leapstack-labs/playhdl/internal/project"
	"github.com/leapstack-labs/playhdl/internal/settings"
	"github.com/leapstack-labs/playhdl/internal/templates"
	"github.com/leapstack-labs/playhdl/pkg/core"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init <design>",
		Short: "Create a testbench and a project for a design kind",
		Long: `Create a starter testbench and a playhdl project in the project directory.

The project file (playhdl.json) holds the build, simulation and waveform
commands of every configured tool that supports the design kind. Edit it
freely: 'playhdl run' executes whatever it contains.

Design kinds: verilog, sv, sv_uvm12.`,
		Example: `  # Verilog testbench
  playhdl init verilog

  # SystemVerilog with UVM 1.2
  playhdl init sv_uvm12

  # Regenerate over existing files
  playhdl init sv --force`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: designKindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			design, err := core.ParseDesignKind(args[0])
			if err != nil {
				return err
			}
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runInit(cmd.Context(), cmdCtx, design, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing testbench and project files")

	return cmd
}

func designKindNames() []string {
	kinds := core.AllDesignKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

type initResult struct {
	Design      core.DesignKind `json:"design"`
	Files       []string        `json:"files"`
	ProjectFile string          `json:"project_file"`
	Tools       []string        `json:"tools"`
}

func runInit(ctx context.Context, c *CommandContext, design core.DesignKind, force bool) error {
	us, err := settings.Load(c.Cfg.SettingsFile)
	if err != nil {
		return err
	}

	// A missing tool is reported before a missing template.
	files, templateErr := templates.Generate(design)
	p, err := project.Create(ctx, design, us, templates.Names(files), c.Logger)
	if err != nil {
		return err
	}
	if templateErr != nil {
		return templateErr
	}
	c.Logger.InfoContext(ctx, "generated templates", "design", design, "files", templates.Names(files))

	if !force {
		if _, err := os.Stat(c.Cfg.ProjectFile); err == nil {
			return fmt.Errorf("%s: %w. Use --force to overwrite", c.Cfg.ProjectFile, project.ErrExists)
		}
	}
	if err := os.MkdirAll(c.Cfg.ProjectDir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.Cfg.ProjectDir, err)
	}
	if err := templates.Write(c.Cfg.ProjectDir, files, force); err != nil {
		return err
	}
	if err := project.Save(c.Cfg.ProjectFile, p, force); err != nil {
		return err
	}
	c.Logger.InfoContext(ctx, "project saved", "file", c.Cfg.ProjectFile, "tools", p.Labels())

	r := c.Renderer
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(initResult{
			Design:      design,
			Files:       templates.Names(files),
			ProjectFile: c.Cfg.ProjectFile,
			Tools:       p.Labels(),
		})
	}

	r.Header(2, "Files")
	for _, f := range files {
		r.StatusLine(f.Name, "success", "")
	}
	r.StatusLine(c.Cfg.ProjectFile, "success", "")

	r.Println("")
	r.Header(2, "Tools")
	for _, label := range p.Labels() {
		r.StatusLine(label, "success", string(us.Tools[label].Kind))
	}

	r.Println("")
	r.Success(fmt.Sprintf("Project initialized for %s design", design))
	r.Println("")
	r.Println("Next steps:")
	r.Printf("  playhdl run %s           Build and simulate\n", p.Labels()[0])
	r.Printf("  playhdl run %s --waves   Also open the waveform viewer\n", p.Labels()[0])

	return nil
}
