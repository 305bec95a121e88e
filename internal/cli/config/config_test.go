package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("config", "", "config file")
	flags.String("project-dir", "", "project directory")
	flags.String("app-dir", "", "app directory")
	flags.BoolP("verbose", "v", false, "verbose")
	flags.StringP("output", "o", "", "output format")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	projectDir := t.TempDir()
	t.Setenv("PLAYHDL_PROJECT_DIR", projectDir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".playhdl"), cfg.AppDir)
	assert.Equal(t, filepath.Join(home, ".playhdl", "settings.yaml"), cfg.SettingsFile)
	assert.Equal(t, projectDir, cfg.ProjectDir)
	assert.Equal(t, filepath.Join(projectDir, "playhdl.json"), cfg.ProjectFile)
	assert.Equal(t, "auto", cfg.OutputFormat)
	assert.False(t, cfg.LogDebug())
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_ConfigFileInProjectDir(t *testing.T) {
	ResetConfig()
	projectDir := t.TempDir()
	appDir := t.TempDir()
	content := "app_dir: " + appDir + "\nproject_file: sim.json\noutput: markdown\n"
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "playhdl.yaml"), []byte(content), 0600))

	flags := testFlags()
	require.NoError(t, flags.Set("project-dir", projectDir))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(projectDir, "playhdl.yaml"), GetConfigFileUsed())
	assert.Equal(t, appDir, cfg.AppDir)
	assert.Equal(t, filepath.Join(appDir, "settings.yaml"), cfg.SettingsFile)
	assert.Equal(t, filepath.Join(projectDir, "sim.json"), cfg.ProjectFile)
	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	projectDir := t.TempDir()
	cfgPath := filepath.Join(projectDir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("app_dir: /from/file\n"), 0600))

	t.Setenv("PLAYHDL_APP_DIR", "/from/env")

	flags := testFlags()
	require.NoError(t, flags.Set("app-dir", "/from/flag"))

	cfg, err := LoadConfig(cfgPath, flags)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.AppDir, "flag value should override config file and env var")
}

func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	cfgPath := filepath.Join(t.TempDir(), "playhdl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("app_dir: /from/file\n"), 0600))

	t.Setenv("PLAYHDL_APP_DIR", "/from/env")

	cfg, err := LoadConfig(cfgPath, testFlags())
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.AppDir, "env var should be used when flag is not set")
}

func TestLoadConfig_Debug(t *testing.T) {
	t.Run("env", func(t *testing.T) {
		ResetConfig()
		t.Setenv("PLAYHDL_PROJECT_DIR", t.TempDir())
		t.Setenv("PLAYHDL_DEBUG", "true")

		cfg, err := LoadConfig("", nil)
		require.NoError(t, err)
		assert.True(t, cfg.Debug)
		assert.True(t, cfg.LogDebug())
	})

	t.Run("verbose flag", func(t *testing.T) {
		ResetConfig()
		flags := testFlags()
		require.NoError(t, flags.Set("project-dir", t.TempDir()))
		require.NoError(t, flags.Set("verbose", "true"))

		cfg, err := LoadConfig("", flags)
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
		assert.True(t, cfg.LogDebug())
	})
}

func TestLoadConfig_InvalidOutput(t *testing.T) {
	ResetConfig()
	flags := testFlags()
	require.NoError(t, flags.Set("project-dir", t.TempDir()))
	require.NoError(t, flags.Set("output", "yaml"))

	_, err := LoadConfig("", flags)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestLoadConfig_BadConfigFile(t *testing.T) {
	ResetConfig()
	cfgPath := filepath.Join(t.TempDir(), "playhdl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("app_dir: [unclosed\n"), 0600))

	_, err := LoadConfig(cfgPath, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, filepath.Join(home, "tools"), expandHome("~/tools"))
	assert.Equal(t, "/opt/tools", expandHome("/opt/tools"))
	assert.Equal(t, "~user/tools", expandHome("~user/tools"))
}

func TestResolvePathRelativeTo(t *testing.T) {
	assert.Equal(t, "", resolvePathRelativeTo("", "/base"))
	assert.Equal(t, "/abs/file", resolvePathRelativeTo("/abs/file", "/base"))
	assert.Equal(t, "/base/file", resolvePathRelativeTo("file", "/base"))
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{AppDir: "/a", SettingsFile: "/a/s.yaml", ProjectFile: "/p/playhdl.json", OutputFormat: "json"}
	assert.NoError(t, valid.Validate())

	noApp := valid
	noApp.AppDir = ""
	assert.ErrorContains(t, noApp.Validate(), "app_dir is required")

	badOut := valid
	badOut.OutputFormat = "html"
	assert.ErrorContains(t, badOut.Validate(), "auto, text, markdown, json")
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()))

	logger := slog.New(slog.DiscardHandler)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
