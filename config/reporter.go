package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/multierr"

	"dbc/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates empty report. When configured destination cannot be
// created report goes to temporary directory.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	return &Report{file: f, entries: make(map[string]entry)}, nil
}

type entryKind string

const (
	// file is read when report is finalized, logs keep growing till then
	entryFile entryKind = "file"
	// content captured at the time of the call
	entryData entryKind = "data"
)

type entry struct {
	kind   entryKind
	origin string
	stamp  time.Time
	data   []byte
}

// Report collects sources, document dumps, results and logs of a debug run
// into a single zip archive. Not safe for concurrent use.
//
// All methods are no-ops on nil Report, so callers do not have to check
// whether debugging was requested.
type Report struct {
	file    *os.File
	entries map[string]entry
}

// Name returns absolute name of the report archive.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store registers file to be put into report under name when report is
// closed. Registering different files under the same name is a programming
// error.
func (r *Report) Store(name, file string) {
	if r == nil {
		return
	}
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}
	if old, exists := r.entries[name]; exists {
		if old.kind == entryFile && old.origin == file {
			return
		}
		panic(fmt.Sprintf("report entry [%s] is already taken by %s, cannot store %s", name, old.origin, file))
	}
	r.entries[name] = entry{kind: entryFile, origin: file}
}

// StoreData puts data into report. When name is already taken a numeric
// suffix is added before extension.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	r.entries[r.uniqueName(name)] = entry{kind: entryData, data: data, stamp: time.Now()}
}

// StoreCopy puts current content of file into report, later changes of the
// file do not affect it.
func (r *Report) StoreCopy(name, file string) error {
	if r == nil {
		return nil
	}
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("unable to copy %s into report: not a regular file", file)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	if abs, err := filepath.Abs(file); err == nil {
		file = abs
	}
	r.entries[r.uniqueName(name)] = entry{kind: entryData, origin: file, data: data, stamp: info.ModTime()}
	return nil
}

func (r *Report) uniqueName(name string) string {
	if _, exists := r.entries[name]; !exists {
		return name
	}
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i) + ext
		if _, exists := r.entries[candidate]; !exists {
			return candidate
		}
	}
}

// Close writes report archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := multierr.Append(r.finalize(), r.file.Close())
	r.file = nil
	return err
}

func (r *Report) finalize() (err error) {
	arc := zip.NewWriter(r.file)
	defer func() {
		err = multierr.Append(err, arc.Close())
	}()

	now := time.Now()
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))

	var manifest bytes.Buffer
	for _, name := range names {
		e := r.entries[name]
		stamp := e.stamp
		if stamp.IsZero() {
			stamp = now
		}
		fmt.Fprintf(&manifest, "%s\t%s\t%s\t%s\n", stamp.UTC().Format(time.RFC3339), e.kind, name, e.origin)
	}
	if err := addEntry(arc, "MANIFEST", now, &manifest); err != nil {
		return err
	}

	for _, name := range names {
		e := r.entries[name]
		if e.kind == entryData {
			if err := addEntry(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}
		if err := addFile(arc, name, e.origin); err != nil {
			return err
		}
	}
	return nil
}

// addFile copies file into archive, files which are gone by now are skipped.
func addFile(arc *zip.Writer, name, file string) error {
	f, err := os.Open(file)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	return addEntry(arc, name, info.ModTime(), f)
}

func addEntry(arc *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("unable to write %s to report: %w", name, err)
	}
	return nil
}
