package run

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/applauseoss/sdkmigrate/pkg/safeconv"
)

// Render writes the closing summary table for a run.
func (s *Summary) Render(writer io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(writer)
	tw.AppendHeader(table.Row{"Metric", "Value"})
	tw.AppendRows([]table.Row{
		{"files converted", s.Converted},
		{"files skipped", s.Skipped},
		{"warnings", s.WarningCount()},
		{"bytes processed", humanize.Bytes(safeconv.MustInt64ToUint64(s.Bytes))},
	})
	tw.Render()
}
