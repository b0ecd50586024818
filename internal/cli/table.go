package cli

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// column is one column of the show tables.
type column struct {
	header string
	right  bool
	warn   bool // highlighted on a terminal
}

var (
	groupColumns = []column{
		{header: "Group", right: true},
		{header: "Start"},
		{header: "End"},
		{header: "Size", right: true},
		{header: "Jump", right: true, warn: true},
		{header: "Text"},
	}
	segmentColumns = []column{
		{header: "Seg", right: true},
		{header: "Group", right: true},
		{header: "Pos", right: true},
		{header: "Start"},
		{header: "End"},
		{header: "Text"},
	}
)

// newTable prepares a table for out. Colours are only used on a terminal.
func newTable(out io.Writer, columns []column) table.Writer {
	colorize := isTerminal(out)

	tw := table.NewWriter()
	if colorize {
		tw.SetStyle(table.StyleColoredDark)
	} else {
		tw.SetStyle(table.StyleRounded)
	}

	header := make(table.Row, len(columns))
	configs := make([]table.ColumnConfig, len(columns))
	for i, c := range columns {
		header[i] = c.header
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       text.AlignLeft,
			AlignHeader: text.AlignLeft,
		}
		if c.right {
			configs[i].Align = text.AlignRight
		}
		if c.warn && colorize {
			configs[i].Colors = text.Colors{text.FgHiYellow}
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)
	return tw
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
