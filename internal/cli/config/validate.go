package config

import (
	"fmt"
	"strings"
)

var validOutputs = []string{"auto", "text", "markdown", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.AppDir == "" {
		return fmt.Errorf("app_dir is required")
	}
	if c.SettingsFile == "" {
		return fmt.Errorf("settings_file is required")
	}
	if c.ProjectFile == "" {
		return fmt.Errorf("project_file is required")
	}

	if c.OutputFormat != "" {
		for _, o := range validOutputs {
			if o == c.OutputFormat {
				return nil
			}
		}
		return fmt.Errorf("invalid output format %q\nHint: Use one of %s", c.OutputFormat, strings.Join(validOutputs, ", "))
	}
	return nil
}
