package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		design   core.DesignKind
		wantName string
		contains []string
	}{
		{core.DesignVerilog, "tb.v", []string{"module tb;", "endmodule", "$dumpfile(\"tb.vcd\")"}},
		{core.DesignSV, "tb.sv", []string{"module tb;", "bit clk", "endmodule"}},
		{core.DesignSVUVM12, "tb_uvm12.sv", []string{"module tb;", "import uvm_pkg::*;", "run_test", "endmodule"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.design), func(t *testing.T) {
			files, err := Generate(tt.design)
			require.NoError(t, err)
			require.Len(t, files, 1)
			assert.Equal(t, tt.wantName, files[0].Name)
			for _, s := range tt.contains {
				assert.Contains(t, files[0].Content, s)
			}
		})
	}
}

func TestGenerate_VHDL(t *testing.T) {
	_, err := Generate(core.DesignVHDL)
	require.Error(t, err)

	var unsupported *UnsupportedTemplateError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, core.DesignVHDL, unsupported.Design)
}

func TestGenerate_EveryToolDesignHasTemplate(t *testing.T) {
	for _, d := range core.AllDesignKinds() {
		files, err := Generate(d)
		if d == core.DesignVHDL {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err, d)
		assert.True(t, strings.HasPrefix(files[0].Name, "tb"), files[0].Name)
	}
}

func TestNames(t *testing.T) {
	files := []File{{Name: "a.v"}, {Name: "b.sv"}}
	assert.Equal(t, []string{"a.v", "b.sv"}, Names(files))
	assert.Empty(t, Names(nil))
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	first := []File{{Name: "test", Content: "The answer is\n42\n"}}
	second := []File{{Name: "test", Content: "Cake is a lie!\n"}}
	path := filepath.Join(dir, "test")

	read := func() string {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}

	require.NoError(t, Write(dir, first, false))
	assert.Equal(t, first[0].Content, read())

	err := Write(dir, second, false)
	require.ErrorIs(t, err, ErrExists)
	assert.Equal(t, first[0].Content, read())

	require.NoError(t, Write(dir, second, true))
	assert.Equal(t, second[0].Content, read())
}

func TestWrite_NothingWrittenOnConflict(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.sv"), []byte("keep"), 0600))

	err := Write(dir, []File{{Name: "a.v", Content: "a"}, {Name: "b.sv", Content: "b"}}, false)
	require.ErrorIs(t, err, ErrExists)
	assert.NoFileExists(t, filepath.Join(dir, "a.v"))
}
