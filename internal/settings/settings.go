// Package settings holds the user's tool configuration: one record per
// configured tool label, persisted as YAML in the application directory.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

// ErrExists is returned when a save would overwrite an existing file.
var ErrExists = errors.New("file already exists")

// UserSettings maps tool labels to their configuration.
type UserSettings struct {
	Tools map[string]core.ToolConfig `yaml:"tools"`
}

// FinderFunc locates the bin directory of an installed tool.
type FinderFunc func(kind core.ToolKind) (string, bool)

// Labels returns the configured tool labels, sorted.
func (s *UserSettings) Labels() []string {
	labels := make([]string, 0, len(s.Tools))
	for label := range s.Tools {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Tool returns the configuration of a tool label.
func (s *UserSettings) Tool(label string) (core.ToolConfig, bool) {
	cfg, ok := s.Tools[label]
	return cfg, ok
}

// Validate checks that every configured tool declares a known kind.
func (s *UserSettings) Validate() error {
	for _, label := range s.Labels() {
		cfg := s.Tools[label]
		if !cfg.Kind.Valid() {
			return fmt.Errorf("tool %q: %w", label, &core.UnknownToolKindError{Kind: cfg.Kind, Available: core.AllToolKinds()})
		}
	}
	return nil
}

// Scan probes the host for every tool kind and returns the tools found,
// each labeled by its kind.
func Scan(ctx context.Context, find FinderFunc, logger *slog.Logger) *UserSettings {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &UserSettings{Tools: make(map[string]core.ToolConfig)}
	for _, kind := range core.AllToolKinds() {
		dir, ok := find(kind)
		if !ok {
			logger.InfoContext(ctx, "tool not found", "tool", kind)
			continue
		}
		logger.InfoContext(ctx, "tool found", "tool", kind, "bin_dir", dir)
		s.Tools[kind.String()] = core.ToolConfig{Kind: kind, BinDir: dir}
	}
	return s
}

// Setup creates the application directory and writes freshly scanned settings.
func Setup(ctx context.Context, appDir, file string, find FinderFunc, force bool, logger *slog.Logger) (*UserSettings, error) {
	if err := os.MkdirAll(appDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create application directory %s: %w", appDir, err)
	}
	s := Scan(ctx, find, logger)
	if err := Save(file, s, force); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes settings to file. An existing file is only replaced with force.
func Save(file string, s *UserSettings, force bool) error {
	if !force {
		if _, err := os.Stat(file); err == nil {
			return fmt.Errorf("%s: %w. Use --force to overwrite", file, ErrExists)
		}
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(file); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(file, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", file, err)
	}
	return nil
}

// Load reads and validates settings from file.
func Load(file string) (*UserSettings, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("settings file %s not found\nHint: Run 'playhdl setup' first", file)
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", file, err)
	}
	var s UserSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", file, err)
	}
	if s.Tools == nil {
		s.Tools = make(map[string]core.ToolConfig)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", file, err)
	}
	return &s, nil
}
