// Package filecontext describes the file a document came from.
package filecontext

import (
	"os"
	"path/filepath"
	"strings"
)

// FileContext is an immutable snapshot of where a document lives.
type FileContext struct {
	AbsolutePath   string `json:"file_path"`
	FileName       string `json:"filename"`
	Directory      string `json:"directory"`
	RelativeToRoot string `json:"relative_to_root"`
}

// Build derives a FileContext for path using only path arithmetic; the file
// does not have to exist. Relative paths are resolved against root. When the
// file is not under root, RelativeToRoot falls back to the absolute path.
func Build(path, root string) FileContext {
	root = filepath.Clean(root)

	abs := filepath.Clean(path)
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(root, abs)
	}

	return FileContext{
		AbsolutePath:   abs,
		FileName:       filepath.Base(abs),
		Directory:      filepath.Dir(abs),
		RelativeToRoot: relativeTo(abs, root),
	}
}

// FromWorkingDir builds a FileContext rooted at the process working directory.
func FromWorkingDir(path string) (FileContext, error) {
	wd, err := os.Getwd()
	if err != nil {
		return FileContext{}, err
	}
	return Build(path, wd), nil
}

func relativeTo(abs, root string) string {
	if !filepath.IsAbs(root) {
		return abs
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return abs
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs
	}
	return rel
}
