// Package tools is the simulator catalog. It maps every tool kind to the
// design kinds it can build and to the script generator producing the
// build/sim/waves command pipeline for it.
package tools

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

// scriptFunc assembles a pipeline from sources already rewritten relative to
// the working directory. The design kind is guaranteed to be supported.
type scriptFunc func(t *Tool, design core.DesignKind, srcs []string) core.Pipeline

// Spec describes one simulator family.
type Spec struct {
	kind       core.ToolKind
	title      string
	executable string
	designs    []core.DesignKind
	script     scriptFunc
}

// Kind returns the tool kind.
func (s *Spec) Kind() core.ToolKind { return s.kind }

// Title returns the vendor product name.
func (s *Spec) Title() string { return s.title }

// Executable returns the binary used to probe for an installation.
func (s *Spec) Executable() string { return s.executable }

// Designs returns the design kinds this tool can build.
func (s *Spec) Designs() []core.DesignKind {
	out := make([]core.DesignKind, len(s.designs))
	copy(out, s.designs)
	return out
}

// Supports reports whether the tool can build the design kind.
func (s *Spec) Supports(design core.DesignKind) bool {
	for _, d := range s.designs {
		if d == design {
			return true
		}
	}
	return false
}

// New creates a tool instance from its configuration.
// The configuration must declare the same kind as the spec.
func (s *Spec) New(cfg core.ToolConfig) (*Tool, error) {
	if cfg.Kind != s.kind {
		return nil, &core.ConfigMismatchError{Declared: cfg.Kind, Expected: s.kind}
	}
	viewer, err := s.viewer(cfg.Options.Viewer)
	if err != nil {
		return nil, err
	}
	return &Tool{spec: s, cfg: cfg, viewer: viewer}, nil
}

// viewer resolves the waveform viewer option. Only VCS has a choice.
func (s *Spec) viewer(v core.WaveViewer) (core.WaveViewer, error) {
	if s.kind != core.ToolVCS {
		if v != core.ViewerDefault {
			return "", &core.InvalidOptionError{Tool: s.kind, Option: "viewer", Value: string(v)}
		}
		return core.ViewerDefault, nil
	}
	switch v {
	case core.ViewerDefault, core.ViewerVerdi:
		return core.ViewerVerdi, nil
	case core.ViewerDVE:
		return core.ViewerDVE, nil
	default:
		return "", &core.InvalidOptionError{Tool: s.kind, Option: "viewer", Value: string(v)}
	}
}

// Tool is a configured simulator instance.
type Tool struct {
	spec   *Spec
	cfg    core.ToolConfig
	viewer core.WaveViewer
}

// Spec returns the catalog entry of the tool.
func (t *Tool) Spec() *Spec { return t.spec }

// Config returns the configuration the tool was built from.
func (t *Tool) Config() core.ToolConfig { return t.cfg }

// GenerateScript produces the command pipeline for the design and its sources.
// Sources are paths relative to the project directory.
func (t *Tool) GenerateScript(design core.DesignKind, sources []string) (*core.Pipeline, error) {
	if !t.spec.Supports(design) {
		return nil, &core.UnsupportedDesignError{Tool: t.spec.kind, Design: design}
	}
	p := t.spec.script(t, design, WorkdirSources(sources))
	return &p, nil
}

// GenerateScript looks up the tool for cfg.Kind and generates its pipeline.
func GenerateScript(cfg core.ToolConfig, design core.DesignKind, sources []string) (*core.Pipeline, error) {
	spec, err := Lookup(cfg.Kind)
	if err != nil {
		return nil, err
	}
	t, err := spec.New(cfg)
	if err != nil {
		return nil, err
	}
	return t.GenerateScript(design, sources)
}

// WorkdirSources rewrites project-relative sources so they resolve from the
// per-tool working directory one level below the project root.
// Absolute paths are returned unchanged.
func WorkdirSources(sources []string) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		if filepath.IsAbs(s) {
			out = append(out, s)
			continue
		}
		out = append(out, path.Join("..", filepath.ToSlash(s)))
	}
	return out
}

// cmdline joins the non-empty parts of a command with single spaces.
func cmdline(parts ...string) string {
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			words = append(words, p)
		}
	}
	return strings.Join(words, " ")
}
