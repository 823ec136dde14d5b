// Package format renders command output tables.
package format

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// ColumnConfig controls per-column formatting.
type ColumnConfig struct {
	Number     int  // 1-based column index
	MaxWidth   int  // wrap content beyond this width (0 = unlimited)
	AlignRight bool // right-align, for counts
}

// Table builds a table once and renders it in its Mode.
type Table struct {
	writer table.Writer
	mode   Mode
}

// NewTable returns an empty table.
func NewTable(m Mode) *Table {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &Table{writer: w, mode: m}
}

// Header sets the column headers.
func (t *Table) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	t.writer.AppendHeader(row)
}

// Row appends a data row.
func (t *Table) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendRow(row)
}

// Footer appends a footer row, e.g. a result count.
func (t *Table) Footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	t.writer.AppendFooter(row)
}

// Columns applies per-column configuration.
func (t *Table) Columns(cfgs ...ColumnConfig) {
	out := make([]table.ColumnConfig, len(cfgs))
	for i, c := range cfgs {
		out[i] = table.ColumnConfig{Number: c.Number, WidthMax: c.MaxWidth}
		if c.AlignRight {
			out[i].Align = text.AlignRight
		}
	}
	t.writer.SetColumnConfigs(out)
}

// String renders the table.
func (t *Table) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}
