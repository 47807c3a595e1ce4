package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/tada/internal/model"
)

func useMono(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	SetTheme("mono")
	DisableColor()
	SetOutput(&out, &errOut)
	t.Cleanup(Reset)
	return &out, &errOut
}

func TestListLines(t *testing.T) {
	useMono(t)

	lines := ListLines([]model.Item{model.NewItem(1, "Buy milk"), model.NewItem(12, "Walk dog")})
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Total 2")
	assert.Contains(t, joined, "1. [ ] Buy milk")
	assert.Contains(t, joined, "12. [ ] Walk dog")

	assert.Contains(t, strings.Join(ListLines(nil), "\n"), "no items")
}

func TestRowChecked(t *testing.T) {
	useMono(t)
	assert.Equal(t, "[x] Buy milk", Row(model.NewItem(1, "Buy milk"), true))
	assert.Equal(t, "[ ] Buy milk", Row(model.NewItem(1, "Buy milk"), false))
}

func TestPrinters(t *testing.T) {
	out, errOut := useMono(t)

	OK("added")
	Fail("boom")
	Panel([]string{"hello"})

	assert.Contains(t, out.String(), "ok added")
	assert.Contains(t, out.String(), "| hello |")
	assert.Contains(t, errOut.String(), "error: boom")
}

func TestResetRestoresGlobals(t *testing.T) {
	before := lipgloss.ColorProfile()
	useMono(t)
	Reset()

	assert.Same(t, os.Stdout, stdout)
	assert.Same(t, os.Stderr, stderr)
	assert.Equal(t, "classic", Current().Name)
	assert.Equal(t, before, lipgloss.ColorProfile())
}

func TestSetThemeFallsBackToClassic(t *testing.T) {
	SetTheme("does-not-exist")
	assert.Equal(t, "classic", Current().Name)
	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("classic")
}
