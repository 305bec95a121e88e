// Package project assembles and persists the per-tool pipelines of a
// playhdl project.
package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/leapstack-labs/playhdl/internal/settings"
	"github.com/leapstack-labs/playhdl/internal/tools"
	"github.com/leapstack-labs/playhdl/pkg/core"
)

// DefaultFile is the project file name in the project directory.
const DefaultFile = "playhdl.json"

// ErrExists is returned when a save would overwrite an existing project file.
var ErrExists = errors.New("project file already exists")

// Project holds the pipelines generated for one design, keyed by tool label.
type Project struct {
	Design  core.DesignKind          `json:"design,omitempty"`
	Sources []string                 `json:"sources,omitempty"`
	Tools   map[string]core.Pipeline `json:"tools"`
}

// Labels returns the tool labels of the project, sorted.
func (p *Project) Labels() []string {
	labels := make([]string, 0, len(p.Tools))
	for label := range p.Tools {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Pipeline returns the pipeline of a tool label.
func (p *Project) Pipeline(label string) (core.Pipeline, bool) {
	pl, ok := p.Tools[label]
	return pl, ok
}

// Create generates a pipeline for every configured tool able to build the
// design. Tools that don't support the design are skipped; any other
// generation error is returned as is.
func Create(ctx context.Context, design core.DesignKind, us *settings.UserSettings, sources []string, logger *slog.Logger) (*Project, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	p := &Project{
		Design:  design,
		Sources: append([]string(nil), sources...),
		Tools:   make(map[string]core.Pipeline),
	}

	for _, label := range us.Labels() {
		cfg := us.Tools[label]
		pl, err := tools.GenerateScript(cfg, design, sources)
		if err != nil {
			var unsupported *core.UnsupportedDesignError
			if errors.As(err, &unsupported) {
				logger.DebugContext(ctx, "skipping tool", "tool", label, "kind", cfg.Kind, "reason", err.Error())
				continue
			}
			return nil, fmt.Errorf("tool %q: %w", label, err)
		}
		logger.DebugContext(ctx, "generated pipeline", "tool", label, "build", len(pl.Build), "sim", len(pl.Sim), "waves", len(pl.Waves))
		p.Tools[label] = *pl
	}

	if len(p.Tools) == 0 {
		return nil, &core.NoSuitableToolError{Design: design}
	}
	return p, nil
}

// Save writes the project as indented JSON. An existing file is only
// replaced with force.
func Save(file string, p *Project, force bool) error {
	if !force {
		if _, err := os.Stat(file); err == nil {
			return fmt.Errorf("%s: %w. Use --force to overwrite", file, ErrExists)
		}
	}
	data, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := os.WriteFile(file, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("failed to write project %s: %w", file, err)
	}
	return nil
}

// Load reads a project file.
func Load(file string) (*Project, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("project file %s not found\nHint: Run 'playhdl init <design>' first", file)
		}
		return nil, fmt.Errorf("failed to read project %s: %w", file, err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project %s: %w", file, err)
	}
	if p.Tools == nil {
		p.Tools = make(map[string]core.Pipeline)
	}
	return &p, nil
}
