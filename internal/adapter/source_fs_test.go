package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "liveaudit/internal/model"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dir
}

func relPaths(t *testing.T, base string, paths []m.Path) []string {
	t.Helper()

	out := make([]string, 0, len(paths))

	for _, path := range paths {
		rel, err := filepath.Rel(base, string(path))
		require.NoError(t, err)

		out = append(out, filepath.ToSlash(rel))
	}

	return out
}

func TestCollect_RecursiveGathersOnlyElixirSources(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"lib/a.ex":             "defmodule A do\nend\n",
		"lib/sub/b.exs":        "defmodule B do\nend\n",
		"lib/sub/readme.md":    "notes\n",
		"_build/generated.ex":  "defmodule G do\nend\n",
		".hidden/secret.ex":    "defmodule S do\nend\n",
		"deps/vendor/dep.ex":   "defmodule D do\nend\n",
		"assets/js/app.js":     "console.log(1)\n",
		"node_modules/x/y.exs": "defmodule Y do\nend\n",
	})

	fs := NewLocalSourceFS()

	files, err := fs.Collect([]m.Path{m.Path(dir + "/...")}, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"lib/a.ex", "lib/sub/b.exs"},
		relPaths(t, dir, files))
}

func TestCollect_NonRecursiveStaysInRoot(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"top.ex":    "defmodule T do\nend\n",
		"lib/a.ex":  "defmodule A do\nend\n",
		"lib/b.exs": "defmodule B do\nend\n",
	})

	fs := NewLocalSourceFS()

	files, err := fs.Collect([]m.Path{m.Path(dir)}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"top.ex"}, relPaths(t, dir, files))
}

func TestCollect_SingleFileRoot(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"lib/a.ex": "defmodule A do\nend\n",
	})

	fs := NewLocalSourceFS()
	target := filepath.Join(dir, "lib", "a.ex")

	files, err := fs.Collect([]m.Path{m.Path(target)}, nil)
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, target, string(files[0]))
}

func TestCollect_ExcludePatterns(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"lib/a.ex":            "defmodule A do\nend\n",
		"lib/generated/g.ex":  "defmodule G do\nend\n",
		"test/a_test.exs":     "defmodule AT do\nend\n",
		"test/support/f.exs":  "defmodule F do\nend\n",
	})

	fs := NewLocalSourceFS()

	files, err := fs.Collect([]m.Path{m.Path(dir + "/...")}, []string{`generated/`, `test/support`})
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"lib/a.ex", "test/a_test.exs"},
		relPaths(t, dir, files))
}

func TestCollect_InvalidExcludePattern(t *testing.T) {
	dir := writeTree(t, map[string]string{"lib/a.ex": ""})

	fs := NewLocalSourceFS()

	_, err := fs.Collect([]m.Path{m.Path(dir + "/...")}, []string{"("})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestCollect_DuplicateRootsDeduplicate(t *testing.T) {
	dir := writeTree(t, map[string]string{"lib/a.ex": ""})

	fs := NewLocalSourceFS()

	files, err := fs.Collect([]m.Path{
		m.Path(dir + "/..."),
		m.Path(filepath.Join(dir, "lib") + "/..."),
	}, nil)
	require.NoError(t, err)

	assert.Len(t, files, 1)
}

func TestCollect_MissingRoot(t *testing.T) {
	fs := NewLocalSourceFS()

	_, err := fs.Collect([]m.Path{m.Path(filepath.Join(t.TempDir(), "nope"))}, nil)
	assert.Error(t, err)
}

func TestFindConfigFile_WalksUp(t *testing.T) {
	dir := writeTree(t, map[string]string{
		ConfigFileName:     "strict: true\n",
		"lib/deep/mod.ex":  "",
	})

	fs := NewLocalSourceFS()

	found, err := fs.FindConfigFile(m.Path(filepath.Join(dir, "lib", "deep")), ConfigFileName)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), string(found))
}

func TestFindConfigFile_NotFound(t *testing.T) {
	fs := NewLocalSourceFS()

	_, err := fs.FindConfigFile(m.Path(t.TempDir()), "definitely-not-here.yml")
	assert.Error(t, err)
}

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := m.Path(filepath.Join(dir, "mod.ex"))

	fs := NewLocalSourceFS()

	require.NoError(t, fs.WriteFile(path, []byte("defmodule M do\nend\n"), 0o600))

	raw, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "defmodule M do\nend\n", string(raw))

	info, err := fs.FileInfo(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}
