package core

import (
	"fmt"
	"strings"
)

// =============================================================================
// ToolKind
// =============================================================================

// ToolKind identifies a simulator product family.
type ToolKind string

// Supported simulator families.
const (
	ToolModelsim  ToolKind = "modelsim"
	ToolXcelium   ToolKind = "xcelium"
	ToolVerilator ToolKind = "verilator"
	ToolIcarus    ToolKind = "icarus"
	ToolVCS       ToolKind = "vcs"
	ToolVivado    ToolKind = "vivado"
)

var toolKinds = []ToolKind{ToolModelsim, ToolXcelium, ToolVerilator, ToolIcarus, ToolVCS, ToolVivado}

// AllToolKinds returns every tool kind in declaration order.
func AllToolKinds() []ToolKind {
	out := make([]ToolKind, len(toolKinds))
	copy(out, toolKinds)
	return out
}

// String returns the serialized form of the tool kind.
func (k ToolKind) String() string {
	return string(k)
}

// Valid reports whether k is one of the declared tool kinds.
func (k ToolKind) Valid() bool {
	for _, t := range toolKinds {
		if t == k {
			return true
		}
	}
	return false
}

// ParseToolKind converts a string to a ToolKind (case-insensitive).
func ParseToolKind(s string) (ToolKind, error) {
	k := ToolKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown tool kind %q (available: %s)", s, joinKinds(toolKinds))
	}
	return k, nil
}

// =============================================================================
// WaveViewer
// =============================================================================

// WaveViewer selects the waveform GUI for tools that ship more than one.
type WaveViewer string

// Known waveform viewers. The zero value selects the tool's default.
const (
	ViewerDefault WaveViewer = ""
	ViewerVerdi   WaveViewer = "verdi"
	ViewerDVE     WaveViewer = "dve"
)

// =============================================================================
// ToolConfig
// =============================================================================

// ToolOptions holds tool-specific settings that do not depend on the design.
type ToolOptions struct {
	// Viewer is only honored by VCS.
	Viewer WaveViewer `json:"viewer,omitempty" yaml:"viewer,omitempty"`
}

// ToolConfig describes one configured tool instance.
type ToolConfig struct {
	Kind    ToolKind          `json:"kind" yaml:"kind"`
	BinDir  string            `json:"bin_dir" yaml:"bin_dir"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
	Options ToolOptions       `json:"options,omitempty" yaml:"options,omitempty"`
}

// =============================================================================
// Pipeline
// =============================================================================

// Pipeline is the ordered list of shell commands for one tool and design.
type Pipeline struct {
	Build []string `json:"build"`
	Sim   []string `json:"sim"`
	Waves []string `json:"waves"`
}

// Empty reports whether the pipeline has no commands at all.
func (p Pipeline) Empty() bool {
	return len(p.Build) == 0 && len(p.Sim) == 0 && len(p.Waves) == 0
}
