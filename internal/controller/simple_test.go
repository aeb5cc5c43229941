package controller

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "liveaudit/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func demoReport() m.AuditReport {
	return m.AuditReport{
		GeneratedAt: time.Now(),
		Scanned:     5,
		Files: []m.FileReport{
			{
				File: "lib/demo_web/live/clock_live.ex",
				Violations: []m.Violation{
					{
						Message:  `module lacks required section labels. Missing sections: ["RENDERING"]`,
						File:     "lib/demo_web/live/clock_live.ex",
						Line:     12,
						Severity: m.SeverityWarning,
						Rule:     "sections",
					},
					{
						Message:  "file has 512 lines, maximum is 400",
						File:     "lib/demo_web/live/clock_live.ex",
						Severity: m.SeverityError,
						Rule:     "file_size",
					},
				},
			},
		},
	}
}

func TestSimpleUI_DisplayReport(t *testing.T) {
	ui, buf := newBufferedUI()

	require.NoError(t, ui.DisplayReport(demoReport()))

	out := buf.String()

	assert.Contains(t, out, "lib/demo_web/live/clock_live.ex:12")
	assert.Contains(t, out, `Missing sections: ["RENDERING"]`)
	assert.Contains(t, out, "(sections)")
	assert.Contains(t, out, "file has 512 lines")
	assert.Contains(t, out, "Scanned 5 files: 1 warning(s), 1 error(s)")
}

func TestSimpleUI_SummaryTableCountsPerRule(t *testing.T) {
	ui, buf := newBufferedUI()

	require.NoError(t, ui.DisplayReport(demoReport()))

	out := buf.String()

	assert.Contains(t, out, "RULE")
	assert.Contains(t, out, "sections")
	assert.Contains(t, out, "file_size")
	assert.Contains(t, out, "TOTAL")
}

func TestSimpleUI_CleanReportHasNoTable(t *testing.T) {
	ui, buf := newBufferedUI()

	require.NoError(t, ui.DisplayReport(m.AuditReport{Scanned: 2}))

	out := buf.String()

	assert.NotContains(t, out, "RULE")
	assert.Contains(t, out, "Scanned 2 files: 0 warning(s), 0 error(s)")
}

func TestSimpleUI_ViolationWithoutLineOmitsLocation(t *testing.T) {
	ui, buf := newBufferedUI()

	report := m.AuditReport{
		Scanned: 1,
		Files: []m.FileReport{{
			File: "lib/a.ex",
			Violations: []m.Violation{
				{Message: "coverage below minimum", File: "lib/a.ex", Severity: m.SeverityWarning, Rule: "coverage"},
			},
		}},
	}

	require.NoError(t, ui.DisplayReport(report))

	assert.Contains(t, buf.String(), "lib/a.ex [")
	assert.NotContains(t, buf.String(), "lib/a.ex:0")
}

func TestSimpleUI_DisplayPreviewAndMessage(t *testing.T) {
	ui, buf := newBufferedUI()

	ui.DisplayPreview("preview body\n")
	ui.DisplayMessage("Inserted section labels in %d file(s)", 2)

	assert.Contains(t, buf.String(), "preview body")
	assert.Contains(t, buf.String(), "Inserted section labels in 2 file(s)")
}

func TestSimpleUI_LifecycleIsNoOp(t *testing.T) {
	ui, _ := newBufferedUI()

	require.NoError(t, ui.Start(10))
	ui.FileAudited("lib/a.ex", 0)
	ui.Close()
}
