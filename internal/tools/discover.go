package tools

import (
	"os/exec"
	"path/filepath"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

// FindBinDir searches PATH for the tool's probe executable and returns the
// directory containing it.
func FindBinDir(kind core.ToolKind) (string, bool) {
	spec, err := Lookup(kind)
	if err != nil {
		return "", false
	}
	exe, err := exec.LookPath(spec.executable)
	if err != nil {
		return "", false
	}
	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return filepath.Dir(exe), true
	}
	return dir, true
}
