package commands

import (
	"log/slog"

	"github.com/leapstack-labs/playhdl/internal/cli/config"
	"github.com/leapstack-labs/playhdl/internal/cli/output"
	"github.com/leapstack-labs/playhdl/internal/settings"
	"github.com/leapstack-labs/playhdl/internal/tools"
	"github.com/spf13/cobra"
)

// binDirFinder locates simulator installations during setup.
var binDirFinder settings.FinderFunc = tools.FindBinDir

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the loaded configuration,
// the logger from the command context and a renderer for the command's
// output streams.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg, err := getConfig()
	if err != nil {
		return nil, err
	}
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}, nil
}

// getConfig returns the configuration loaded by the root command, loading
// it from file and environment when the command runs standalone.
func getConfig() (*config.Config, error) {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg, nil
	}
	return config.LoadConfig("", nil)
}
