package ui

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTerminalNonTTYHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	assert.False(t, term.ColorEnabled())
	assert.Equal(t, "plain", term.Red("plain"))
}

func TestSetNoColor(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})
	term.SetNoColor(false)
	assert.True(t, term.ColorEnabled())
	term.SetNoColor(true)
	assert.False(t, term.ColorEnabled())
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.PrintError("export failed", fmt.Errorf("boom"))
	term.PrintError("no cause", nil)
	term.PrintSuccess("done")
	term.PrintInfo("Output", "saved")
	term.PrintWarning("careful")
	term.PrintHighlight("hello")

	assert.Equal(t,
		"✗ export failed: boom\n"+
			"✗ no cause\n"+
			"✓ done\n"+
			"Output: saved\n"+
			"! careful\n"+
			"hello\n",
		buf.String())
}

func TestPrintLogo(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.PrintLogo()
	assert.Empty(t, buf.String(), "logo is only shown on styled output")

	term.SetNoColor(false)
	term.PrintLogo()
	assert.Contains(t, buf.String(), "┌─┐┬┌─┐")
}
