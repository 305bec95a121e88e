package tools

import (
	"bytes"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

// WriteCompatibilityTable renders tool kinds (rows) against design kinds
// (columns), marking supported pairs with "X".
func WriteCompatibilityTable(w io.Writer) {
	designs := core.AllDesignKinds()

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Format.Header = text.FormatDefault

	header := make(table.Row, 0, len(designs)+1)
	header = append(header, "")
	for _, d := range designs {
		header = append(header, d.String())
	}
	t.AppendHeader(header)

	for _, s := range Specs() {
		row := make(table.Row, 0, len(designs)+1)
		row = append(row, s.kind.String())
		for _, d := range designs {
			mark := ""
			if s.Supports(d) {
				mark = "X"
			}
			row = append(row, mark)
		}
		t.AppendRow(row)
	}

	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignRight}}
	for i := range designs {
		configs = append(configs, table.ColumnConfig{Number: i + 2, Align: text.AlignCenter, AlignHeader: text.AlignCenter})
	}
	t.SetColumnConfigs(configs)

	t.RenderMarkdown()
}

// CompatibilityTable returns the compatibility table as text.
func CompatibilityTable() string {
	var buf bytes.Buffer
	WriteCompatibilityTable(&buf)
	return buf.String()
}
