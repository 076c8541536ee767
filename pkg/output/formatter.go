// Package output provides formatters for displaying CPU time results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/danpilch/cpustat/pkg/cpustats"
)

// Format represents the output format type.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatTSV   Format = "tsv"
)

// Formatter handles output formatting.
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Render outputs the stats in the configured format.
func (f *Formatter) Render(stats cpustats.CPUStats, ticksPerSec int64) error {
	switch f.format {
	case FormatJSON:
		return f.renderJSON(stats, ticksPerSec)
	case FormatTSV:
		return f.renderTSV(stats, ticksPerSec)
	default:
		return f.renderTable(stats, ticksPerSec)
	}
}

// renderJSON outputs stats as JSON.
func (f *Formatter) renderJSON(stats cpustats.CPUStats, ticksPerSec int64) error {
	output := struct {
		Stats       cpustats.CPUStats `json:"stats"`
		TicksPerSec int64             `json:"ticks_per_sec"`
	}{
		Stats:       stats,
		TicksPerSec: ticksPerSec,
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// renderTSV outputs stats as tab-separated values for scripting.
func (f *Formatter) renderTSV(stats cpustats.CPUStats, ticksPerSec int64) error {
	fmt.Fprintln(f.writer, "mode\tduration")
	fmt.Fprintf(f.writer, "user\t%s\n", stats.User)
	fmt.Fprintf(f.writer, "system\t%s\n", stats.System)
	fmt.Fprintf(f.writer, "ticks_per_sec\t%d\n", ticksPerSec)
	return nil
}

// renderTable outputs stats as a styled table.
func (f *Formatter) renderTable(stats cpustats.CPUStats, ticksPerSec int64) error {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Padding(0, 1)

	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	fmt.Fprintln(f.writer, titleStyle.Render("Aggregate CPU Time Since Boot"))
	fmt.Fprintln(f.writer, strings.Repeat("═", 60))
	fmt.Fprintln(f.writer)

	rows := [][]string{
		{"User", formatDuration(stats.User)},
		{"System", formatDuration(stats.System)},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("MODE", "TIME").
		Rows(rows...)

	fmt.Fprintln(f.writer, t)
	fmt.Fprintf(f.writer, "\nClock ticks per second: %d\n", ticksPerSec)
	return nil
}

// formatDuration renders a duration truncated to whole seconds; the
// tick-based counters carry no meaningful sub-second precision.
func formatDuration(d time.Duration) string {
	return d.Truncate(time.Second).String()
}
