package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewUI_SelectsImplementation(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
}

func TestIsTTY_BufferIsNotATerminal(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestTUI_DelegatesDisplayBeforeStart(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	tui := NewTUI(cmd)

	// Display calls and Close are safe without a running program.
	tui.FileAudited("lib/a.ex", 1)
	tui.Close()
	tui.DisplayMessage("done")

	assert.Contains(t, buf.String(), "done")
}
