package ui

import (
	"io"

	"github.com/rodaine/table"
)

// FileTable renders file rows in aligned columns.
func FileTable(out io.Writer, headers []string, rows [][]any) {
	cols := make([]any, len(headers))
	for i, h := range headers {
		cols[i] = h
	}

	tbl := table.New(cols...).WithWriter(out)
	for _, row := range rows {
		tbl.AddRow(row...)
	}
	tbl.Print()
}
