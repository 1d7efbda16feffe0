// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/text/encoding"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk, name is file name in archive decoded to UTF-8 and file is the entry
// itself. If an error is returned, processing stops.
type WalkFunc func(archive, name string, file *zip.File) error

// Options changes Walk behavior.
type Options struct {
	// CodePage is used to decode entry names not flagged as UTF-8. Old
	// archivers did not mark names at all.
	CodePage encoding.Encoding
}

// Walk visits all files in the archive whose decoded names start with
// pattern, in natural order of names. Archives with entries containing path
// traversal components ("..") or absolute paths are rejected.
func Walk(archive, pattern string, opts Options, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	type item struct {
		name string
		file *zip.File
	}
	items := make([]item, 0, len(r.File))
	for _, f := range r.File {
		name := decodeName(f, opts.CodePage)
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			items = append(items, item{name: name, file: f})
		}
	}
	slices.SortStableFunc(items, func(a, b item) int {
		switch {
		case natural.Less(a.name, b.name):
			return -1
		case natural.Less(b.name, a.name):
			return 1
		}
		return 0
	})

	for _, it := range items {
		if err := walkFn(archive, it.name, it.file); err != nil {
			return err
		}
	}
	return nil
}

func decodeName(f *zip.File, cp encoding.Encoding) string {
	if cp == nil || !f.NonUTF8 {
		return f.Name
	}
	if n, err := cp.NewDecoder().String(f.Name); err == nil {
		return n
	}
	return f.Name
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	return !slices.Contains(strings.Split(name, "/"), "..")
}
