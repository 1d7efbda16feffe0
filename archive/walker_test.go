package archive

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

type entry struct {
	name    string
	content string
	nonUTF8 bool
}

func makeZip(t *testing.T, entries ...entry) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, e := range entries {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: e.name, Method: zip.Deflate, NonUTF8: e.nonUTF8})
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", e.name, err)
		}
		if _, err := io.WriteString(fw, e.content); err != nil {
			t.Fatalf("Failed to write content for %s: %v", e.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return zipPath
}

func visit(t *testing.T, zipPath, pattern string, opts Options) []string {
	t.Helper()
	var visited []string
	err := Walk(zipPath, pattern, opts, func(archive, name string, _ *zip.File) error {
		if archive != zipPath {
			t.Errorf("archive = %s, want %s", archive, zipPath)
		}
		visited = append(visited, name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return visited
}

func TestWalk(t *testing.T) {
	zipPath := makeZip(t,
		entry{name: "docs/page10.md"},
		entry{name: "docs/page2.md"},
		entry{name: "docs/"},
		entry{name: "src/landing.txt"},
		entry{name: "index.html"},
	)

	tests := []struct {
		pattern string
		want    []string
	}{
		{"docs/", []string{"docs/page2.md", "docs/page10.md"}},
		{"src/", []string{"src/landing.txt"}},
		{"", []string{"docs/page2.md", "docs/page10.md", "index.html", "src/landing.txt"}},
		{"Docs/", nil},
	}
	for _, tt := range tests {
		t.Run("pattern "+tt.pattern, func(t *testing.T) {
			if got := visit(t, zipPath, tt.pattern, Options{}); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("visited %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWalk_CodePage(t *testing.T) {
	// "привет.txt" in cp866
	raw, err := charmap.CodePage866.NewEncoder().String("привет.txt")
	if err != nil {
		t.Fatal(err)
	}
	zipPath := makeZip(t, entry{name: raw, nonUTF8: true})

	got := visit(t, zipPath, "", Options{CodePage: charmap.CodePage866})
	if len(got) != 1 || got[0] != "привет.txt" {
		t.Errorf("visited %q, want decoded name", got)
	}
	got = visit(t, zipPath, "", Options{})
	if len(got) != 1 || got[0] != raw {
		t.Errorf("visited %q, want raw name", got)
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	zipPath := makeZip(t, entry{name: "ok.txt"}, entry{name: "../evil.txt"})
	err := Walk(zipPath, "", Options{}, func(string, string, *zip.File) error { return nil })
	if err == nil {
		t.Error("expected error for path traversal entry")
	}
}

func TestWalk_InvalidArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.zip")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Walk(path, "", Options{}, func(string, string, *zip.File) error { return nil }); err == nil {
		t.Error("expected error for invalid archive")
	}
	if err := Walk(filepath.Join(t.TempDir(), "absent.zip"), "", Options{}, nil); err == nil {
		t.Error("expected error for missing archive")
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	zipPath := makeZip(t, entry{name: "a.txt"}, entry{name: "b.txt"}, entry{name: "c.txt"})
	stop := errors.New("stop")
	count := 0
	err := Walk(zipPath, "", Options{}, func(string, string, *zip.File) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want stop", err)
	}
	if count != 2 {
		t.Errorf("visited %d files, want 2", count)
	}
}

func TestWalk_FileContent(t *testing.T) {
	zipPath := makeZip(t, entry{name: "doc.md", content: "# Title"})
	err := Walk(zipPath, "", Options{}, func(_, _ string, f *zip.File) error {
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return err
		}
		if string(data) != "# Title" {
			t.Errorf("content = %q", data)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
}
