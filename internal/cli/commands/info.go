package commands

import (
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/leapstack-labs/playhdl/internal/cli/output"
	"github.com/leapstack-labs/playhdl/internal/project"
	"github.com/leapstack-labs/playhdl/internal/settings"
	"github.com/leapstack-labs/playhdl/internal/tools"
	"github.com/leapstack-labs/playhdl/pkg/core"
	"github.com/spf13/cobra"
)

// NewInfoCommand creates the info command.
func NewInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show supported designs per tool and the configured tools",
		Long: `Print the tool/design compatibility table, the tools stored in the user
settings and, when a project exists, the tools it was generated for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return runInfo(cmdCtx)
		},
	}
}

type infoTool struct {
	Label  string            `json:"label"`
	Kind   core.ToolKind     `json:"kind"`
	BinDir string            `json:"bin_dir"`
	Env    map[string]string `json:"env,omitempty"`
	Viewer core.WaveViewer   `json:"viewer,omitempty"`
}

type infoResult struct {
	Compatibility map[core.ToolKind][]core.DesignKind `json:"compatibility"`
	SettingsFile  string                              `json:"settings_file"`
	Tools         []infoTool                          `json:"tools"`
	ProjectFile   string                              `json:"project_file,omitempty"`
	ProjectTools  []string                            `json:"project_tools,omitempty"`
}

func runInfo(c *CommandContext) error {
	r := c.Renderer

	// Missing settings or project files are expected before setup/init.
	us, err := settings.Load(c.Cfg.SettingsFile)
	if err != nil && fileExists(c.Cfg.SettingsFile) {
		return err
	}
	p, err := project.Load(c.Cfg.ProjectFile)
	if err != nil && fileExists(c.Cfg.ProjectFile) {
		return err
	}

	res := infoResult{
		Compatibility: make(map[core.ToolKind][]core.DesignKind),
		SettingsFile:  c.Cfg.SettingsFile,
		Tools:         []infoTool{},
	}
	for _, s := range tools.Specs() {
		res.Compatibility[s.Kind()] = s.Designs()
	}
	if us != nil {
		for _, label := range us.Labels() {
			cfg := us.Tools[label]
			res.Tools = append(res.Tools, infoTool{
				Label:  label,
				Kind:   cfg.Kind,
				BinDir: cfg.BinDir,
				Env:    cfg.Env,
				Viewer: cfg.Options.Viewer,
			})
		}
	}
	if p != nil {
		res.ProjectFile = c.Cfg.ProjectFile
		res.ProjectTools = p.Labels()
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(res)
	}

	r.Header(1, "Compatibility")
	tools.WriteCompatibilityTable(r.Writer())
	r.Println("")

	r.Header(1, "Configured tools")
	if us == nil {
		r.Warning("Settings file not found. Run 'playhdl setup' first")
	} else if len(res.Tools) == 0 {
		r.Muted("No tools configured in " + c.Cfg.SettingsFile)
	} else {
		rows := make([][]string, 0, len(res.Tools))
		for _, t := range res.Tools {
			rows = append(rows, []string{t.Label, string(t.Kind), t.BinDir, formatEnv(t.Env)})
		}
		r.Table([]string{"Label", "Kind", "Bin dir", "Env"}, rows)
	}

	if p != nil {
		r.Println("")
		r.Header(1, "Project")
		r.Println(output.FormatKeyValue("File", c.Cfg.ProjectFile))
		if p.Design != "" {
			r.Println(output.FormatKeyValue("Design", p.Design.String()))
		}
		r.Println(output.FormatKeyValue("Tools", strings.Join(p.Labels(), ", ")))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}

func formatEnv(env map[string]string) string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + env[k]
	}
	return strings.Join(parts, " ")
}
