package crosscheck

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Padding(0, 1)
	validStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	suspectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Report outputs cross-check results as a styled table.
func Report(w io.Writer, results []Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Cross-Check Report"))
	fmt.Fprintln(w, dimStyle.Render(strings.Repeat("═", 60)))
	fmt.Fprintf(w, "  %-20s %-12s %-12s %-10s %s\n",
		headerStyle.Render("METRIC"), headerStyle.Render("CONSENSUS"),
		headerStyle.Render("MAX DEV"), headerStyle.Render("STATUS"),
		headerStyle.Render("SOURCES"))
	fmt.Fprintln(w, "  "+dimStyle.Render(strings.Repeat("─", 80)))

	for _, r := range results {
		sourceNames := make([]string, len(r.Sources))
		for i, s := range r.Sources {
			sourceNames[i] = fmt.Sprintf("%s=%.1f%s", s.Name, s.Value, s.Unit)
		}
		var statusStr string
		switch r.Status {
		case StatusConflict:
			statusStr = conflictStyle.Render("CONFLICT")
		case StatusSuspect:
			statusStr = suspectStyle.Render("SUSPECT")
		default:
			statusStr = validStyle.Render("VALID")
		}
		fmt.Fprintf(w, "  %-20s %-12.1f %-12.1f%% %-10s %s\n",
			r.Metric, r.Consensus, r.MaxDeviation, statusStr,
			dimStyle.Render(strings.Join(sourceNames, ", ")))
	}
}

// ReportJSON outputs cross-check results as JSON.
func ReportJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Results []Result `json:"results"`
	}{Results: results})
}
