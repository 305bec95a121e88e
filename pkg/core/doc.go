// Package core defines the shared language of playhdl.
//
// This package contains:
//   - Design and tool identities (DesignKind, ToolKind)
//   - Per-tool configuration records (ToolConfig, ToolOptions)
//   - Generated command pipelines (Pipeline)
//   - Typed errors shared by the generator, the assembler and the runner
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
