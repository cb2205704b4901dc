package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/mediafold/mediafold/consolidate"
)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderCounts renders label/value rows as a rounded table on a terminal,
// plain "label: value" lines otherwise.
func renderCounts(title string, rows [][2]string) string {
	if !stdoutIsTerminal() {
		var b strings.Builder
		b.WriteString(title + "\n")
		for _, row := range rows {
			fmt.Fprintf(&b, "  %s: %s\n", row[0], row[1])
		}
		return strings.TrimRight(b.String(), "\n")
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1]})
	}
	return tw.Render()
}

func renderSummary(s consolidate.Summary) string {
	rows := [][2]string{
		{"Folders discovered", strconv.Itoa(s.FoldersSeen)},
		{"Folders merged", strconv.Itoa(s.FoldersMerged)},
		{"Files placed", strconv.Itoa(s.FilesPlaced)},
		{"Metadata records", strconv.Itoa(s.Records)},
		{"Thumbnails excluded", strconv.Itoa(s.Thumbnails)},
		{"Filtered by mode", strconv.Itoa(s.FilteredOut)},
		{"Unsupported skipped", strconv.Itoa(s.Unsupported)},
		{"Sidecar parse errors", strconv.Itoa(s.ParseErrors)},
		{"Missing files", strconv.Itoa(s.MissingFiles)},
		{"Collision faults", strconv.Itoa(s.CollisionFaults)},
	}
	title := "Consolidation complete"
	if s.DryRun {
		title = "Consolidation plan"
	}
	return renderCounts(title, rows)
}
