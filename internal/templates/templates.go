// Package templates provides the starter testbench files written by
// `playhdl init`. Every template has a top-level module named tb, which is
// what the generated pipelines elaborate and simulate.
package templates

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

//go:embed testbench
var testbenchFS embed.FS

// ErrExists is returned when a template would overwrite an existing file.
var ErrExists = errors.New("file already exists")

// File is a generated template file.
type File struct {
	Name    string
	Content string
}

// UnsupportedTemplateError is returned for design kinds without a template.
type UnsupportedTemplateError struct {
	Design core.DesignKind
}

func (e *UnsupportedTemplateError) Error() string {
	return fmt.Sprintf("no testbench template for design kind %q", e.Design)
}

var fileNames = map[core.DesignKind]string{
	core.DesignVerilog: "tb.v",
	core.DesignSV:      "tb.sv",
	core.DesignSVUVM12: "tb_uvm12.sv",
}

// Generate returns the template files for a design kind.
func Generate(design core.DesignKind) ([]File, error) {
	name, ok := fileNames[design]
	if !ok {
		return nil, &UnsupportedTemplateError{Design: design}
	}
	content, err := testbenchFS.ReadFile("testbench/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return []File{{Name: name, Content: string(content)}}, nil
}

// Names returns the file names of the generated templates.
func Names(files []File) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return names
}

// Write stores files in dir. Without force nothing is written when any of
// the files already exists.
func Write(dir string, files []File, force bool) error {
	if !force {
		for _, f := range files {
			path := filepath.Join(dir, f.Name)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s: %w. Use --force to overwrite", path, ErrExists)
			}
		}
	}

	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return nil
}
