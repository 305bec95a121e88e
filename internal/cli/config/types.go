// Package config provides configuration management for the playhdl CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults, the
// optional playhdl.yaml in the project directory, PLAYHDL_* environment
// variables and explicitly set command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// AppDir holds per-user playhdl data, including the settings file.
	AppDir       string `koanf:"app_dir"`
	SettingsFile string `koanf:"settings_file"`

	// ProjectDir holds the project file and the per-tool working directories.
	ProjectDir  string `koanf:"project_dir"`
	ProjectFile string `koanf:"project_file"`

	Verbose      bool   `koanf:"verbose"`
	Debug        bool   `koanf:"debug"`
	OutputFormat string `koanf:"output"`
}

// Default configuration values.
const (
	DefaultAppDir       = "~/.playhdl"
	DefaultSettingsFile = "settings.yaml"
	DefaultProjectFile  = "playhdl.json"
	DefaultOutput       = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// configFileNames are looked up in the project directory, in order.
var configFileNames = []string{"playhdl.yaml", "playhdl.yml"}

// LogDebug reports whether debug logging was requested.
func (c *Config) LogDebug() bool {
	return c.Verbose || c.Debug
}
