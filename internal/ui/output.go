package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/model"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects all printing helpers.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

// Reset restores the classic theme, colors and the process stdout/stderr.
func Reset() {
	SetTheme("classic")
	SetOutput(os.Stdout, os.Stderr)
	if savedProfile != nil {
		lipgloss.SetColorProfile(*savedProfile)
		savedProfile = nil
	}
}

func OK(msg string)   { fmt.Fprintln(stdout, current.Success.Render(current.SymOK+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(stderr, current.Error.Render(current.SymFail+" "+msg)) }
func Warn(msg string) { fmt.Fprintln(stderr, current.Pending.Render(current.SymWarn+" "+msg)) }
func Say(msg string)  { fmt.Fprintln(stdout, current.Muted.Render(msg)) }
func Print(s string)  { fmt.Fprintln(stdout, s) }

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(lines))
}

func PanelString(lines []string) string {
	return lipgloss.NewStyle().
		Border(current.Border).
		BorderForeground(current.BorderColor).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// Row renders one entry as "<box> <text>".
func Row(it model.Item, checked bool) string {
	if checked {
		return current.Success.Render(current.BoxChecked) + " " + current.Done.Render(it.Item())
	}
	return current.Muted.Render(current.BoxUnchecked) + " " + it.Item()
}

// Header is the title line with the entry count.
func Header(n int) string {
	return fmt.Sprintf("%s  %s %d",
		current.Title.Render("Checklist"),
		current.Accent.Render("Total"), n,
	)
}

// ListLines is the static view of a list: header, one numbered row per
// entry, and a tip line.
func ListLines(items []model.Item) []string {
	lines := []string{Header(len(items)), ""}
	if len(items) == 0 {
		lines = append(lines, current.Muted.Render("no items"))
	}
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s %s",
			current.Muted.Render(fmt.Sprintf("%3d.", it.ID())), Row(it, false)))
	}
	lines = append(lines, "", current.Muted.Render("Tip: check off with `tada check <id>`"))
	return lines
}
