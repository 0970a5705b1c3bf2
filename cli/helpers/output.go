package helpers

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/tidwall/pretty"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func render(w io.Writer, style lipgloss.Style, text string) string {
	if !IsTerminal(w) {
		return text
	}
	return style.Render(text)
}

// PrintSuccess writes a success line.
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, render(w, successStyle, "✅ "+msg))
}

// PrintInfo writes an informational line.
func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, render(w, infoStyle, "📊 "+msg))
}

// PrintError writes the user-facing error line.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, render(w, errorStyle, "❌ Error: "+err.Error()))
}

// WriteJSON writes already-encoded JSON, colorized when w is a terminal.
func WriteJSON(w io.Writer, data []byte) error {
	if IsTerminal(w) {
		data = pretty.Color(pretty.Pretty(data), nil)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
