// Package adapter contains infrastructure adapters for the liveaudit CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	m "liveaudit/internal/model"
)

// SourceFS abstracts the filesystem operations the domain layer relies on
// when scanning user projects. It hides direct os access so the workflow
// logic can be tested without touching the disk.
type SourceFS interface {
	// Collect gathers the Elixir source files under the provided roots.
	// Roots support the /... suffix for recursive scanning; exclude entries
	// are regular expressions matched against the full path.
	Collect(roots []m.Path, exclude []string) ([]m.Path, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation limits itself to the root directory.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// FindConfigFile searches for the named configuration file walking up
	// the directory tree from startPath.
	FindConfigFile(startPath m.Path, fileName string) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain
// layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// sourceExtensions are the file types the auditor recognizes.
var sourceExtensions = map[string]struct{}{
	".ex":  {},
	".exs": {},
}

// LocalSourceFS is the disk-backed SourceFS implementation.
type LocalSourceFS struct{}

// NewLocalSourceFS constructs a LocalSourceFS ready to be wired into the
// workflow.
func NewLocalSourceFS() *LocalSourceFS {
	return &LocalSourceFS{}
}

// Collect gathers source files for the provided roots, deduplicated by
// absolute path.
func (a *LocalSourceFS) Collect(roots []m.Path, exclude []string) ([]m.Path, error) {
	if len(roots) == 0 {
		roots = []m.Path{"./..."}
	}

	excludePatterns, err := compileExcludes(exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var files []m.Path

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if includePath(rootPath, excludePatterns) {
				appendUnique(&files, seen, rootPath)
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			if includePath(path, excludePatterns) {
				abs, err := filepath.Abs(path)
				if err != nil {
					return err
				}

				appendUnique(&files, seen, abs)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Walk iterates over files under root, optionally descending into
// subdirectories. Hidden directories and build output are skipped.
func (a *LocalSourceFS) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() {
			if !recursive && path != rootStr {
				return filepath.SkipDir
			}

			base := filepath.Base(path)
			if path != rootStr && (strings.HasPrefix(base, ".") || base == "_build" || base == "deps" || base == "node_modules") {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFS) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFS) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// FindConfigFile searches for fileName walking up the directory tree.
func (a *LocalSourceFS) FindConfigFile(startPath m.Path, fileName string) (m.Path, error) {
	dir := string(startPath)

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, fileName)
		if _, err := os.Stat(candidate); err == nil {
			return m.Path(candidate), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%s not found in any parent directory of %s", fileName, startPath)
		}

		dir = parent
	}
}

func appendUnique(files *[]m.Path, seen map[string]struct{}, path string) {
	if _, exists := seen[path]; exists {
		return
	}

	seen[path] = struct{}{}
	*files = append(*files, m.Path(path))
}

func includePath(path string, exclude []*regexp.Regexp) bool {
	if _, ok := sourceExtensions[filepath.Ext(path)]; !ok {
		return false
	}

	for _, pattern := range exclude {
		if pattern.MatchString(filepath.ToSlash(path)) {
			return false
		}
	}

	return true
}

func compileExcludes(exclude []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exclude))

	for _, raw := range exclude {
		pattern, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", raw, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
