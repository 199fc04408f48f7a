// Package table renders result tables as aligned text columns.
package table

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/fwojciec/docscrape"
	"github.com/mattn/go-isatty"
	"github.com/rodaine/table"
)

// Renderer prints tables with left-aligned, padded columns.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer returns a Renderer writing to w. The header is coloured when
// w is a terminal and colour output is not disabled.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, color: isTerminal(w) && !color.NoColor}
}

// Render validates t and prints it.
func (r *Renderer) Render(t *docscrape.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	tbl := table.New(cells(t.Header)...).WithWriter(r.w)
	if r.color {
		tbl = tbl.WithHeaderFormatter(color.New(color.FgGreen, color.Underline).SprintfFunc())
	}
	for _, row := range t.Rows {
		tbl.AddRow(cells(row)...)
	}
	tbl.Print()
	return nil
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
