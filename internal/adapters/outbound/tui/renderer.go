package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Figglewatts/sanity/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle     = lipgloss.NewStyle().Foreground(dim)
	faintStyle   = lipgloss.NewStyle().Foreground(faint)
	passStyle    = lipgloss.NewStyle().Foreground(success)
	failStyle    = lipgloss.NewStyle().Foreground(danger)
	warnTagStyle = lipgloss.NewStyle().Foreground(warning).Bold(true)
	passTagStyle = lipgloss.NewStyle().Foreground(success).Bold(true)
	failTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(fg)
	pathStyle    = lipgloss.NewStyle().Foreground(dim)

	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderRunReport renders a RunReport as a styled terminal string. Results
// are printed in report order, which the dispatch engine keeps
// deterministic.
func RenderRunReport(report *domain.RunReport) string {
	var b strings.Builder

	title := headerStyle.Render("sanity")
	subtitle := dimStyle.Render(report.Root)

	var verdict string
	if report.Passed() {
		verdict = passTagStyle.Render("All checks PASSED")
	} else {
		verdict = failTagStyle.Render(fmt.Sprintf("%d of %d checks FAILED", report.Failed(), len(report.Results)))
	}

	header := title + "\n" + subtitle
	if report.CommitHash != "" {
		header += "\n" + faintStyle.Render(shortHash(report.CommitHash))
	}
	b.WriteString(boxStyle.Render(header + "\n\n" + verdict))
	b.WriteString("\n\n")

	for _, res := range report.Results {
		renderResult(&b, res)
	}

	if len(report.Results) == 0 {
		b.WriteString("  " + dimStyle.Render("No checks matched anything in the target directory.") + "\n")
	} else {
		b.WriteString("\n")
		b.WriteString("  " + separatorLine)
		b.WriteString("\n\n")
		passed := len(report.Results) - report.Failed()
		b.WriteString("  " + titleStyle.Render("Summary") + "  ")
		b.WriteString(passStyle.Render(fmt.Sprintf("%d passed", passed)))
		if failed := report.Failed(); failed > 0 {
			b.WriteString("  " + failStyle.Render(fmt.Sprintf("%d failed", failed)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderResult(b *strings.Builder, res domain.CheckResult) {
	tag := passTagStyle.Render("PASS")
	if !res.Passed {
		tag = failTagStyle.Render("FAIL")
	}

	fmt.Fprintf(b, "  [%s] %s %s\n", tag, titleStyle.Render(res.Checker), pathStyle.Render(res.Path))
	if !res.Passed && res.Reason != "" {
		fmt.Fprintf(b, "         %s\n", dimStyle.Render(res.Reason))
	}
}

// RenderLoadFailures renders warnings for checker units that failed to load
// and were excluded from the run.
func RenderLoadFailures(failures []domain.LoadFailure) string {
	if len(failures) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("  " + warnTagStyle.Render(fmt.Sprintf("%d checker unit(s) failed to load", len(failures))) + "\n")
	for _, f := range failures {
		fmt.Fprintf(&b, "    %s %s  %s\n",
			warnTagStyle.Render("warn"),
			titleStyle.Render(f.Unit),
			dimStyle.Render(f.Reason),
		)
	}
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
