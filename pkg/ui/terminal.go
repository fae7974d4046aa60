package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Logo printed above interactive commands
const Logo = `
  ┌─┐┬┌─┐┌─┐┌─┐┬  ┬┌─┐┬─┐
  │ ┬│├┤ └─┐├─┤└┐┌┘├┤ ├┬┘
  └─┘┴└  └─┘┴ ┴ └┘ └─┘┴└─
`

var (
	cyan    = lipgloss.Color("#00FFFF")
	magenta = lipgloss.Color("#FF00FF")
	green   = lipgloss.Color("#39FF14")
	yellow  = lipgloss.Color("#FFFF00")
	red     = lipgloss.Color("#FF3131")
	dim     = lipgloss.Color("#808080")

	cyanStyle      = lipgloss.NewStyle().Foreground(cyan)
	magentaStyle   = lipgloss.NewStyle().Foreground(magenta).Bold(true)
	greenStyle     = lipgloss.NewStyle().Foreground(green)
	yellowStyle    = lipgloss.NewStyle().Foreground(yellow)
	redStyle       = lipgloss.NewStyle().Foreground(red).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(dim)
	headerStyle    = lipgloss.NewStyle().Foreground(cyan).Bold(true).Padding(0, 1)
	cellStyle      = lipgloss.NewStyle().Padding(0, 1)
	tableLineStyle = lipgloss.NewStyle().Foreground(magenta)
)

// Terminal writes styled output. Colour is dropped when the destination is
// not a terminal, when NO_COLOR is set or after SetNoColor(true).
type Terminal struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

// NewTerminal creates a terminal writing to out
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		out:   out,
		color: isTerminal(out) && os.Getenv("NO_COLOR") == "",
	}
}

// isTerminal reports whether w is a file attached to a TTY
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SetNoColor disables (or re-enables) styling
func (t *Terminal) SetNoColor(noColor bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.color = !noColor
}

// ColorEnabled reports whether output is styled
func (t *Terminal) ColorEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.color
}

func (t *Terminal) render(style lipgloss.Style, text string) string {
	if !t.ColorEnabled() {
		return text
	}
	return style.Render(text)
}

// Cyan renders text in cyan
func (t *Terminal) Cyan(text string) string { return t.render(cyanStyle, text) }

// Magenta renders text in bold magenta
func (t *Terminal) Magenta(text string) string { return t.render(magentaStyle, text) }

// Green renders text in green
func (t *Terminal) Green(text string) string { return t.render(greenStyle, text) }

// Yellow renders text in yellow
func (t *Terminal) Yellow(text string) string { return t.render(yellowStyle, text) }

// Red renders text in bold red
func (t *Terminal) Red(text string) string { return t.render(redStyle, text) }

// Dim renders text in grey
func (t *Terminal) Dim(text string) string { return t.render(dimStyle, text) }

// Printf writes formatted text without styling
func (t *Terminal) Printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

// Println writes a line without styling
func (t *Terminal) Println(text string) {
	fmt.Fprintln(t.out, text)
}

// PrintLogo prints the logo. It is skipped when output is not styled, so
// piped output stays clean.
func (t *Terminal) PrintLogo() {
	if !t.ColorEnabled() {
		return
	}
	fmt.Fprint(t.out, t.Cyan(Logo))
}

// PrintError prints an error message in red, followed by err when given
func (t *Terminal) PrintError(msg string, err error) {
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	fmt.Fprintln(t.out, t.Red("✗ "+msg))
}

// PrintSuccess prints a success message in green
func (t *Terminal) PrintSuccess(msg string) {
	fmt.Fprintln(t.out, t.Green("✓ "+msg))
}

// PrintInfo prints a label and its value
func (t *Terminal) PrintInfo(label, value string) {
	fmt.Fprintf(t.out, "%s: %s\n", t.Cyan(label), t.Yellow(value))
}

// PrintWarning prints a warning in yellow
func (t *Terminal) PrintWarning(msg string) {
	fmt.Fprintln(t.out, t.Yellow("! "+msg))
}

// PrintHighlight prints a highlighted message in magenta
func (t *Terminal) PrintHighlight(msg string) {
	fmt.Fprintln(t.out, t.Magenta(msg))
}
