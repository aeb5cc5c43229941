package domain

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveaudit/internal/adapter"
	"liveaudit/internal/controller"
	m "liveaudit/internal/model"
)

// fakeFS is an in-memory SourceFS so workflow logic can be exercised without
// touching the disk.
type fakeFS struct {
	files  map[string]string
	writes map[string]string
}

func newFakeFS(files map[string]string) *fakeFS {
	return &fakeFS{files: files, writes: map[string]string{}}
}

func (f *fakeFS) Collect(_ []m.Path, _ []string) ([]m.Path, error) {
	paths := make([]string, 0, len(f.files))
	for path := range f.files {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	out := make([]m.Path, 0, len(paths))
	for _, path := range paths {
		out = append(out, m.Path(path))
	}

	return out, nil
}

func (f *fakeFS) Walk(_ m.Path, _ bool, _ adapter.FilepathWalkFunc) error {
	return nil
}

func (f *fakeFS) ReadFile(path m.Path) ([]byte, error) {
	content, ok := f.files[string(path)]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}

	return []byte(content), nil
}

func (f *fakeFS) WriteFile(path m.Path, content []byte, _ os.FileMode) error {
	f.writes[string(path)] = string(content)
	f.files[string(path)] = string(content)

	return nil
}

func (f *fakeFS) FileInfo(_ m.Path) (os.FileInfo, error) {
	// Workflow only needs the mode of an existing file; stat the test binary
	// directory instead of faking the full interface.
	return os.Stat(".")
}

func (f *fakeFS) FindConfigFile(_ m.Path, fileName string) (m.Path, error) {
	return "", fmt.Errorf("%s not found", fileName)
}

type fakeStore struct {
	saved []m.AuditReport
}

func (s *fakeStore) SaveReport(_ m.Path, report m.AuditReport) (m.Path, error) {
	s.saved = append(s.saved, report)

	return "report.json", nil
}

func (s *fakeStore) LoadReport(_ m.Path) (m.AuditReport, error) {
	return m.AuditReport{GeneratedAt: time.Now()}, nil
}

func newTestUI() (controller.UI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return controller.NewSimpleUI(cmd), &buf
}

func testConfig() adapter.Config {
	cfg := adapter.DefaultConfig()
	cfg.Parallel = 2

	return cfg
}

func TestWorkflowAudit_ReportsViolationsPerFile(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/demo_web/live/clock_live.ex": unlabeledModule,
		"lib/demo/accounts.ex":            "defmodule Demo.Accounts do\n  def list, do: []\nend\n",
	})

	ui, _ := newTestUI()
	wf := NewWorkflow(fs, &fakeStore{}, ui, nil)

	report, err := wf.Audit(AuditArgs{Roots: []m.Path{"lib"}, Config: testConfig()})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Scanned)
	require.Len(t, report.Files, 1, "the plain context module is clean")
	assert.Equal(t, m.Path("lib/demo_web/live/clock_live.ex"), report.Files[0].File)

	require.Len(t, report.Files[0].Violations, 1)
	assert.Contains(t, report.Files[0].Violations[0].Message, "Missing sections")
}

func TestWorkflowAudit_OnlyFilter(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/demo_web/live/clock_live.ex": unlabeledModule,
	})

	ui, _ := newTestUI()
	wf := NewWorkflow(fs, &fakeStore{}, ui, nil)

	cfg := testConfig()
	cfg.Only = []string{FileSizeRuleName}

	report, err := wf.Audit(AuditArgs{Roots: []m.Path{"lib"}, Config: cfg})
	require.NoError(t, err)

	assert.Zero(t, report.Total(), "the sections rule is filtered out and the file is small")
}

func TestWorkflowAudit_IgnoreDirective(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/clock_live.ex": "# liveaudit:ignore sections\n" + unlabeledModule,
	})

	ui, _ := newTestUI()
	wf := NewWorkflow(fs, &fakeStore{}, ui, nil)

	report, err := wf.Audit(AuditArgs{Roots: []m.Path{"lib"}, Config: testConfig()})
	require.NoError(t, err)

	assert.Zero(t, report.Total())
}

func TestWorkflowAudit_PersistsReport(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/clock_live.ex": unlabeledModule,
	})

	store := &fakeStore{}
	ui, _ := newTestUI()
	wf := NewWorkflow(fs, store, ui, nil)

	_, err := wf.Audit(AuditArgs{
		Roots:      []m.Path{"lib"},
		Config:     testConfig(),
		ReportsDir: ".liveaudit-reports",
	})
	require.NoError(t, err)

	require.Len(t, store.saved, 1)
	assert.Equal(t, 1, store.saved[0].Total())
}

func TestWorkflowFix_WritesFixedFiles(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/clock_live.ex":    unlabeledModule,
		"lib/demo/accounts.ex": "defmodule Demo.Accounts do\n  def list, do: []\nend\n",
	})

	ui, out := newTestUI()
	wf := NewWorkflow(fs, &fakeStore{}, ui, nil)

	err := wf.Fix(FixArgs{Roots: []m.Path{"lib"}, Config: testConfig()})
	require.NoError(t, err)

	require.Contains(t, fs.writes, "lib/clock_live.ex")
	assert.Contains(t, fs.writes["lib/clock_live.ex"], string(m.SectionLifecycle))
	assert.NotContains(t, fs.writes, "lib/demo/accounts.ex",
		"non-candidate files are never rewritten")
	assert.Contains(t, out.String(), "1 file(s)")
}

func TestWorkflowFix_PreviewWritesNothing(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/clock_live.ex": unlabeledModule,
	})

	ui, out := newTestUI()
	wf := NewWorkflow(fs, &fakeStore{}, ui, nil)

	err := wf.Fix(FixArgs{Roots: []m.Path{"lib"}, Config: testConfig(), Preview: true})
	require.NoError(t, err)

	assert.Empty(t, fs.writes)
	assert.Contains(t, out.String(), string(m.SectionLifecycle))
}

func TestWorkflowFix_SecondRunIsQuietNoOp(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/clock_live.ex": unlabeledModule,
	})

	ui, _ := newTestUI()
	wf := NewWorkflow(fs, &fakeStore{}, ui, nil)

	require.NoError(t, wf.Fix(FixArgs{Roots: []m.Path{"lib"}, Config: testConfig()}))

	fixedOnce := fs.files["lib/clock_live.ex"]

	require.NoError(t, wf.Fix(FixArgs{Roots: []m.Path{"lib"}, Config: testConfig()}))

	assert.Equal(t, fixedOnce, fs.files["lib/clock_live.ex"],
		"a second fix run must not change the file again")
	assert.Equal(t, strings.Count(fixedOnce, string(m.SectionLifecycle)), 1)
}

func TestWorkflowFix_ConfiguredLabelStyle(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/clock_live.ex": unlabeledModule,
	})

	ui, _ := newTestUI()
	wf := NewWorkflow(fs, &fakeStore{}, ui, nil)

	cfg := testConfig()
	cfg.Rules[SectionsRuleName] = m.RuleConfig{"label_fill": "=", "label_width": 4}

	require.NoError(t, wf.Fix(FixArgs{Roots: []m.Path{"lib"}, Config: cfg}))

	assert.Contains(t, fs.writes["lib/clock_live.ex"], "# ==== LIFECYCLE CALLBACKS ====")
}

func TestWorkflowList(t *testing.T) {
	fs := newFakeFS(map[string]string{
		"lib/a.ex": "",
		"lib/b.ex": "",
	})

	ui, _ := newTestUI()
	wf := NewWorkflow(fs, &fakeStore{}, ui, nil)

	files, err := wf.List([]m.Path{"lib"}, nil)
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"lib/a.ex", "lib/b.ex"}, files)
}
