// Package runner executes a project's pipeline for one configured tool.
//
// A run walks through the phases preparing -> building -> simulating ->
// [waves] -> done. The first command exiting with a non-zero status stops
// the whole run; nothing is retried and the working directory is left in
// place for inspection until the next run recreates it.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/leapstack-labs/playhdl/internal/project"
	"github.com/leapstack-labs/playhdl/internal/settings"
	"github.com/leapstack-labs/playhdl/pkg/core"
)

// Phase is a state of a run.
type Phase string

// Run phases.
const (
	PhasePreparing  Phase = "preparing"
	PhaseBuilding   Phase = "building"
	PhaseSimulating Phase = "simulating"
	PhaseWaves      Phase = "waves"
	PhaseDone       Phase = "done"
	PhaseFailed     Phase = "failed"
)

// Config holds runner dependencies.
type Config struct {
	// ProjectDir is the directory holding the project file. Working
	// directories are created directly below it. Defaults to the current
	// directory.
	ProjectDir string

	// Stdout and Stderr receive child process output. Default to the
	// process's own streams.
	Stdout io.Writer
	Stderr io.Writer

	// Environ returns the base environment. Defaults to os.Environ.
	Environ func() []string
	Logger  *slog.Logger
}

// Runner executes tool pipelines.
type Runner struct {
	projectDir string
	stdout     io.Writer
	stderr     io.Writer
	environ    func() []string
	logger     *slog.Logger
}

// New creates a runner.
func New(cfg Config) *Runner {
	r := &Runner{
		projectDir: cfg.ProjectDir,
		stdout:     cfg.Stdout,
		stderr:     cfg.Stderr,
		environ:    cfg.Environ,
		logger:     cfg.Logger,
	}
	if r.projectDir == "" {
		r.projectDir = "."
	}
	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	if r.environ == nil {
		r.environ = os.Environ
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}
	return r
}

// Options controls a single run.
type Options struct {
	Waves bool
}

type stage struct {
	phase Phase
	cmds  []string
}

// WorkDir returns the working directory used for a tool label.
func (r *Runner) WorkDir(label string) string {
	return filepath.Join(r.projectDir, label)
}

// Run executes the pipeline of the tool label: build, sim and, when
// requested, waves.
func (r *Runner) Run(ctx context.Context, p *project.Project, us *settings.UserSettings, label string, opts Options) error {
	pl, ok := p.Pipeline(label)
	if !ok {
		return &core.UnknownToolLabelError{Label: label, Source: "project", Available: p.Labels()}
	}
	cfg, ok := us.Tool(label)
	if !ok {
		return &core.UnknownToolLabelError{Label: label, Source: "settings", Available: us.Labels()}
	}

	logger := r.logger.With("run_id", uuid.NewString(), "tool", label)

	logger.InfoContext(ctx, "preparing working directory", "phase", PhasePreparing, "dir", r.WorkDir(label))
	workDir, err := r.prepareWorkDir(label)
	if err != nil {
		logger.ErrorContext(ctx, "run failed", "phase", PhaseFailed, "error", err)
		return err
	}

	env := buildEnv(r.environ(), cfg)

	phases := []stage{
		{PhaseBuilding, pl.Build},
		{PhaseSimulating, pl.Sim},
	}
	if opts.Waves {
		phases = append(phases, stage{PhaseWaves, pl.Waves})
	}

	for _, ph := range phases {
		logger.InfoContext(ctx, "entering phase", "phase", ph.phase, "commands", len(ph.cmds))
		for _, cmd := range ph.cmds {
			if err := r.runCommand(ctx, logger, ph.phase, cmd, workDir, env); err != nil {
				logger.ErrorContext(ctx, "run failed", "phase", PhaseFailed, "error", err)
				return err
			}
		}
	}

	logger.InfoContext(ctx, "run finished", "phase", PhaseDone)
	return nil
}

// prepareWorkDir removes and recreates the tool's working directory.
func (r *Runner) prepareWorkDir(label string) (string, error) {
	if err := validateLabel(label); err != nil {
		return "", err
	}
	dir := r.WorkDir(label)
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("failed to clear working directory %s: %w", dir, err)
	}
	if err := os.Mkdir(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create working directory %s: %w", dir, err)
	}
	return dir, nil
}

// validateLabel rejects labels that would not name a single directory
// directly below the project directory.
func validateLabel(label string) error {
	if label == "" || label == "." || label == ".." ||
		strings.ContainsRune(label, '/') || strings.ContainsRune(label, filepath.Separator) {
		return fmt.Errorf("tool label %q can't be used as a working directory name", label)
	}
	return nil
}

// runCommand runs one shell command in the working directory.
func (r *Runner) runCommand(ctx context.Context, logger *slog.Logger, phase Phase, command, dir string, env []string) error {
	if strings.TrimSpace(command) == "" {
		logger.WarnContext(ctx, "command is empty, nothing to do", "phase", phase)
		return nil
	}

	logger.InfoContext(ctx, "exec", "phase", phase, "cmd", command)

	c := exec.CommandContext(ctx, "sh", "-c", command)
	c.Dir = dir
	c.Env = env
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	if err := c.Run(); err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &core.CommandError{Phase: string(phase), Command: command, ExitCode: code, Err: err}
	}
	return nil
}

// buildEnv overlays the tool environment on the base environment and puts
// the tool's bin directory first on PATH.
func buildEnv(base []string, cfg core.ToolConfig) []string {
	vars := make(map[string]string, len(base)+len(cfg.Env)+1)
	for _, kv := range base {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		vars[k] = v
	}
	for k, v := range cfg.Env {
		vars[k] = v
	}
	if cfg.BinDir != "" {
		if path := vars["PATH"]; path != "" {
			vars["PATH"] = cfg.BinDir + string(os.PathListSeparator) + path
		} else {
			vars["PATH"] = cfg.BinDir
		}
	}

	env := make([]string, 0, len(vars))
	for k, v := range vars {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}
