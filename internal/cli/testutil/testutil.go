// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

// TestProject is a temporary playhdl environment: an app directory, a
// project directory and a directory of fake simulator executables.
type TestProject struct {
	AppDir     string
	ProjectDir string
	BinDir     string
}

// SettingsFile returns the settings file path inside the app directory.
func (p *TestProject) SettingsFile() string {
	return filepath.Join(p.AppDir, "settings.yaml")
}

// ProjectFile returns the project file path inside the project directory.
func (p *TestProject) ProjectFile() string {
	return filepath.Join(p.ProjectDir, "playhdl.json")
}

// Args returns the global flags pointing the CLI at the test directories.
func (p *TestProject) Args(args ...string) []string {
	return append([]string{"--app-dir", p.AppDir, "--project-dir", p.ProjectDir}, args...)
}

// SetupTestProject creates a temporary environment with fake Icarus Verilog
// executables: iverilog creates tb.out, vvp prints a line and gtkwave leaves
// a marker file.
func SetupTestProject(t *testing.T) *TestProject {
	t.Helper()

	p := &TestProject{
		AppDir:     t.TempDir(),
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}

	scripts := map[string]string{
		"iverilog": "touch tb.out",
		"vvp":      `echo "vvp: simulating $1"`,
		"gtkwave":  "touch gtkwave.opened",
	}
	for name, body := range scripts {
		path := filepath.Join(p.BinDir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", path, err)
		}
	}

	return p
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}
