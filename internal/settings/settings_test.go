package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/playhdl/internal/testutil"
	"github.com/leapstack-labs/playhdl/pkg/core"
)

func fakeFinder(found map[core.ToolKind]string) FinderFunc {
	return func(kind core.ToolKind) (string, bool) {
		dir, ok := found[kind]
		return dir, ok
	}
}

func TestSetup(t *testing.T) {
	tmp := t.TempDir()
	appDir := filepath.Join(tmp, "home", ".playhdl")
	file := filepath.Join(appDir, "settings.yaml")

	find := fakeFinder(map[core.ToolKind]string{
		core.ToolIcarus:    "/usr/bin",
		core.ToolVerilator: "/opt/verilator/bin",
	})

	s, err := Setup(context.Background(), appDir, file, find, false, testutil.NewTestLogger(t))
	require.NoError(t, err)
	assert.DirExists(t, appDir)
	assert.FileExists(t, file)
	assert.Equal(t, []string{"icarus", "verilator"}, s.Labels())

	loaded, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestSetup_ExistingFile(t *testing.T) {
	appDir := t.TempDir()
	file := filepath.Join(appDir, "settings.yaml")
	require.NoError(t, os.WriteFile(file, []byte("The answer is 42"), 0600))

	_, err := Setup(context.Background(), appDir, file, fakeFinder(nil), false, nil)
	require.ErrorIs(t, err, ErrExists)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "The answer is 42", string(data))

	_, err = Setup(context.Background(), appDir, file, fakeFinder(nil), true, nil)
	require.NoError(t, err)
	data, err = os.ReadFile(file)
	require.NoError(t, err)
	assert.NotEqual(t, "The answer is 42", string(data))
}

func TestSaveLoad(t *testing.T) {
	file := filepath.Join(t.TempDir(), "settings.yaml")
	want := &UserSettings{Tools: map[string]core.ToolConfig{
		"modelsim20": {Kind: core.ToolModelsim, BinDir: "/home/modelsim"},
		"verilator5": {Kind: core.ToolVerilator, BinDir: "/home/verilator5", Env: map[string]string{"FOO": "1"}},
		"vcs2020": {
			Kind:    core.ToolVCS,
			BinDir:  "/home/vcs",
			Options: core.ToolOptions{Viewer: core.ViewerDVE},
		},
	}}

	require.NoError(t, Save(file, want, false))
	got, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []string{"modelsim20", "vcs2020", "verilator5"}, got.Labels())

	cfg, ok := got.Tool("vcs2020")
	require.True(t, ok)
	assert.Equal(t, core.ViewerDVE, cfg.Options.Viewer)
}

func TestLoad_HandEdited(t *testing.T) {
	file := filepath.Join(t.TempDir(), "settings.yaml")
	content := `tools:
  questa:
    kind: modelsim
    bin_dir: /opt/questa/bin
    env:
      LM_LICENSE_FILE: 1717@license
  vcs:
    kind: vcs
    bin_dir: /opt/vcs/bin
    options:
      viewer: verdi
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	s, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, core.ToolModelsim, s.Tools["questa"].Kind)
	assert.Equal(t, "1717@license", s.Tools["questa"].Env["LM_LICENSE_FILE"])
	assert.Equal(t, core.ViewerVerdi, s.Tools["vcs"].Options.Viewer)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "playhdl setup")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tools:\n  ghdl:\n    kind: ghdl\n    bin_dir: /usr/bin\n"), 0600))
	_, err = Load(bad)
	var unknown *core.UnknownToolKindError
	require.ErrorAs(t, err, &unknown)
	assert.Contains(t, err.Error(), "ghdl")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte(""), 0600))
	s, err := Load(empty)
	require.NoError(t, err)
	assert.Empty(t, s.Labels())
}
