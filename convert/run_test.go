package convert

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"

	"dbc/config"
	"dbc/state"
)

const sampleSource = `[SEO_TITLE:Acme]
[LAYOUT:media right]
# Our services
[IMG:https://example.com/a.png|Team]
We build fast websites.
[LAYOUT:faq accordion]
Q: Why?
A: Because.
`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T, mode config.OutputMode) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	env.Mode = mode
	return ctx, env
}

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

// listFiles returns all files under dir relative to it with forward slashes
func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			rel, _ := filepath.Rel(dir, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", dir, err)
	}
	sort.Strings(files)
	return files
}

func TestProcess_NonExistentPath(t *testing.T) {
	ctx, _ := setupTestEnv(t, config.OutputModeFragment)

	err := process(ctx, filepath.Join(t.TempDir(), "nonexistent", "page.md"), t.TempDir(), testLogger(t))
	if err == nil {
		t.Fatal("Expected error for non-existent path, got nil")
	}
	if !strings.Contains(err.Error(), "input source was not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, _ := setupTestEnv(t, config.OutputModeFragment)
	cancelCtx, cancel := context.WithCancel(ctx)
	cancel()

	tmpDir := t.TempDir()
	if err := process(cancelCtx, tmpDir, tmpDir, testLogger(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled error, got %v", err)
	}
}

func TestProcess_SingleFile(t *testing.T) {
	ctx, _ := setupTestEnv(t, config.OutputModeFragment)
	srcDir, dstDir := t.TempDir(), t.TempDir()

	src := filepath.Join(srcDir, "landing.txt")
	if err := os.WriteFile(src, []byte(sampleSource), 0644); err != nil {
		t.Fatal(err)
	}
	if err := process(ctx, src, dstDir, testLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}

	html, err := os.ReadFile(filepath.Join(dstDir, "landing.html"))
	if err != nil {
		t.Fatalf("fragment not written: %v", err)
	}
	if !strings.Contains(string(html), `class="dbc-scope"`) || !strings.Contains(string(html), "<script>") {
		t.Errorf("unexpected fragment:\n%s", html)
	}
	css, err := os.ReadFile(filepath.Join(dstDir, "landing.css"))
	if err != nil {
		t.Fatalf("stylesheet not written: %v", err)
	}
	if !strings.Contains(string(css), ".dbc-section") {
		t.Errorf("unexpected stylesheet:\n%s", css)
	}
}

func TestProcess_Overwrite(t *testing.T) {
	ctx, env := setupTestEnv(t, config.OutputModeDocument)
	srcDir, dstDir := t.TempDir(), t.TempDir()

	src := filepath.Join(srcDir, "landing.md")
	if err := os.WriteFile(src, []byte("# Title\n\nBody"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dstDir, "landing.html")
	if err := os.WriteFile(out, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	// per file failures are logged, not returned
	if err := process(ctx, src, dstDir, testLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if data, _ := os.ReadFile(out); string(data) != "old" {
		t.Error("existing file was overwritten without permission")
	}

	env.Overwrite = true
	if err := process(ctx, src, dstDir, testLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	data, _ := os.ReadFile(out)
	if !strings.HasPrefix(string(data), "<!DOCTYPE html>") || !strings.Contains(string(data), "<title>Title</title>") {
		t.Errorf("unexpected document:\n%s", data)
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, _ := setupTestEnv(t, config.OutputModeFragment)
	srcDir, dstDir := t.TempDir(), t.TempDir()

	for name, content := range map[string]string{
		"a.md":           "# A",
		"sub/b.txt":      sampleSource,
		"sub/notes.json": "{}",
		"image.txt":      string(pngHeader),
	} {
		path := filepath.Join(srcDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := process(ctx, srcDir, dstDir, testLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	got := strings.Join(listFiles(t, dstDir), ",")
	if want := "a.css,a.html,sub/b.css,sub/b.html"; got != want {
		t.Errorf("produced %s, want %s", got, want)
	}
}

func TestProcess_DirectoryWithTail(t *testing.T) {
	ctx, _ := setupTestEnv(t, config.OutputModeFragment)
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := process(ctx, filepath.Join(tmpDir, "subdir", "absent.md"), tmpDir, testLogger(t)); err == nil {
		t.Fatal("Expected error for directory with tail, got nil")
	}
}

func TestProcess_NotSource(t *testing.T) {
	ctx, _ := setupTestEnv(t, config.OutputModeFragment)
	src := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(src, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	err := process(ctx, src, t.TempDir(), testLogger(t))
	if err == nil || !strings.Contains(err.Error(), "not recognized") {
		t.Errorf("process() error = %v", err)
	}
}

func TestProcess_Archive(t *testing.T) {
	ctx, _ := setupTestEnv(t, config.OutputModeFragment)
	srcDir := t.TempDir()
	zipPath := filepath.Join(srcDir, "site.zip")
	writeZip(t, zipPath, map[string][]byte{
		"pages/home.md":  []byte("# Home"),
		"pages/about.md": []byte("# About"),
		"other/x.txt":    []byte(sampleSource),
		"style.css":      []byte("p{}"),
	})

	t.Run("whole archive", func(t *testing.T) {
		dstDir := t.TempDir()
		if err := process(ctx, zipPath, dstDir, testLogger(t)); err != nil {
			t.Fatalf("process() error = %v", err)
		}
		got := strings.Join(listFiles(t, dstDir), ",")
		if want := "other/x.css,other/x.html,pages/about.css,pages/about.html,pages/home.css,pages/home.html"; got != want {
			t.Errorf("produced %s, want %s", got, want)
		}
	})

	t.Run("path inside archive", func(t *testing.T) {
		dstDir := t.TempDir()
		if err := process(ctx, filepath.Join(zipPath, "pages", "home.md"), dstDir, testLogger(t)); err != nil {
			t.Fatalf("process() error = %v", err)
		}
		got := strings.Join(listFiles(t, dstDir), ",")
		if want := "pages/home.css,pages/home.html"; got != want {
			t.Errorf("produced %s, want %s", got, want)
		}
	})
}

func TestProcess_ArchiveCodePage(t *testing.T) {
	ctx, env := setupTestEnv(t, config.OutputModeFragment)
	env.NoDirs = true
	env.CodePage = charmap.CodePage866

	name, err := charmap.CodePage866.NewEncoder().String("страница.md")
	if err != nil {
		t.Fatal(err)
	}
	zipPath := filepath.Join(t.TempDir(), "old.zip")
	f, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)
	fw, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, NonUTF8: true})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte("# Title")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	dstDir := t.TempDir()
	if err := process(ctx, zipPath, dstDir, testLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dstDir, "страница.html")); err != nil {
		t.Errorf("decoded output name missing: %v", err)
	}
}

func TestProcessSource_Bundle(t *testing.T) {
	for _, fix := range []bool{false, true} {
		t.Run(map[bool]string{false: "plain", true: "fixed"}[fix], func(t *testing.T) {
			ctx, env := setupTestEnv(t, config.OutputModeBundle)
			env.Cfg.Document.FixZip = fix
			dstDir := t.TempDir()

			if err := processSource(ctx, strings.NewReader(sampleSource), "landing.txt", "text", dstDir, testLogger(t)); err != nil {
				t.Fatalf("processSource() error = %v", err)
			}

			r, err := zip.OpenReader(filepath.Join(dstDir, "landing.zip"))
			if err != nil {
				t.Fatalf("bundle not readable: %v", err)
			}
			defer r.Close()

			var names []string
			for _, f := range r.File {
				names = append(names, f.Name)
				if fix && f.Flags&0x8 != 0 {
					t.Errorf("%s still has data descriptor", f.Name)
				}
			}
			if len(names) < 5 || strings.Join(names[:3], ",") != "index.html,fragment.html,style.css" {
				t.Fatalf("unexpected bundle entries %q", names)
			}
			for _, want := range []string{"sections/01-media.html", "sections/02-faq.html"} {
				if !slices.Contains(names, want) {
					t.Errorf("bundle lacks %s: %q", want, names)
				}
			}
		})
	}
}

func TestProcessSource_Report(t *testing.T) {
	ctx, env := setupTestEnv(t, config.OutputModeFragment)
	rpt, err := (&config.ReporterConfig{Destination: filepath.Join(t.TempDir(), "report.zip")}).Prepare()
	if err != nil {
		t.Fatal(err)
	}
	env.Rpt = rpt

	if err := processSource(ctx, strings.NewReader("# Title"), "page.md", "markdown", t.TempDir(), testLogger(t)); err != nil {
		t.Fatalf("processSource() error = %v", err)
	}
	if err := rpt.Close(); err != nil {
		t.Fatalf("report close: %v", err)
	}

	r, err := zip.OpenReader(rpt.Name())
	if err != nil {
		t.Fatalf("report not readable: %v", err)
	}
	defer r.Close()
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	joined := strings.Join(names, ",")
	for _, prefix := range []string{"source-", "document-", "result-"} {
		if !strings.Contains(joined, prefix) {
			t.Errorf("report lacks %s entries: %s", prefix, joined)
		}
	}
}

func TestProcessSource_BadFormat(t *testing.T) {
	ctx, _ := setupTestEnv(t, config.OutputModeFragment)
	if err := processSource(ctx, strings.NewReader("x"), "x.bin", "binary", t.TempDir(), testLogger(t)); err == nil {
		t.Error("expected error for unsupported format")
	}
}
