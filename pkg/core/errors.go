package core

import (
	"fmt"
	"strings"
)

// ConfigMismatchError is returned when a tool is built from a configuration
// declaring a different tool kind. It is never recovered from.
type ConfigMismatchError struct {
	Declared ToolKind
	Expected ToolKind
}

func (e *ConfigMismatchError) Error() string {
	return fmt.Sprintf("tool kind %q in settings doesn't match expected kind %q", e.Declared, e.Expected)
}

// UnsupportedDesignError is returned when a tool cannot build a design kind.
type UnsupportedDesignError struct {
	Tool   ToolKind
	Design DesignKind
}

func (e *UnsupportedDesignError) Error() string {
	return fmt.Sprintf("%s doesn't support design kind %q", e.Tool, e.Design)
}

// UnknownToolKindError is returned when the catalog has no entry for a kind.
type UnknownToolKindError struct {
	Kind      ToolKind
	Available []ToolKind
}

func (e *UnknownToolKindError) Error() string {
	return fmt.Sprintf("no tool registered for kind %q\nAvailable tools: %s", e.Kind, joinKinds(e.Available))
}

// InvalidOptionError is returned when a tool option holds an unknown value.
type InvalidOptionError struct {
	Tool   ToolKind
	Option string
	Value  string
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("%s: invalid value %q for option %q", e.Tool, e.Value, e.Option)
}

// NoSuitableToolError is returned when no configured tool can build a design.
type NoSuitableToolError struct {
	Design DesignKind
}

func (e *NoSuitableToolError) Error() string {
	return fmt.Sprintf("can't find any suitable tool for design kind %q", e.Design)
}

// UnknownToolLabelError is returned when a tool label is missing from the
// project or from the user settings.
type UnknownToolLabelError struct {
	Label     string
	Source    string // "project" or "settings"
	Available []string
}

func (e *UnknownToolLabelError) Error() string {
	return fmt.Sprintf("tool %q was not found in your %s. Available tools: [%s]\nHint: Check your settings and project file, then run again",
		e.Label, e.Source, strings.Join(e.Available, ", "))
}

// CommandError is returned when a pipeline command exits with a non-zero status.
type CommandError struct {
	Phase    string
	Command  string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: command '%s' returned %d. Check the output above for diagnostics", e.Phase, e.Command, e.ExitCode)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
