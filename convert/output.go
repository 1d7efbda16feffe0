package convert

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	fixzip "github.com/hidez8891/zip"
	"go.uber.org/zap"

	"dbc/compiler"
	"dbc/config"
	"dbc/misc"
	"dbc/state"
)

// names of bundle entries
const (
	bundlePage       = "index.html"
	bundleFragment   = "fragment.html"
	bundleStylesheet = "style.css"
	bundleSections   = "sections"
)

// prepareOutputFile makes sure file could be written: either it does not
// exist or overwrite was requested. Output directory is created if necessary.
func prepareOutputFile(name string, env *state.LocalEnv, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		if err = os.Remove(name); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

// writeOutput produces requested artifacts and returns names of all written
// files, main one first.
func writeOutput(res *compiler.Result, outputName, title string, env *state.LocalEnv, log *zap.Logger) ([]string, error) {
	switch env.Mode {
	case config.OutputModeFragment:
		cssName := siblingPath(outputName, ".css")
		for _, name := range []string{outputName, cssName} {
			if err := prepareOutputFile(name, env, log); err != nil {
				return nil, err
			}
		}
		if err := os.WriteFile(outputName, []byte(res.HTML), 0644); err != nil {
			return nil, fmt.Errorf("unable to write fragment: %w", err)
		}
		if err := os.WriteFile(cssName, []byte(res.CSS), 0644); err != nil {
			return nil, fmt.Errorf("unable to write stylesheet: %w", err)
		}
		return []string{outputName, cssName}, nil

	case config.OutputModeDocument:
		if err := prepareOutputFile(outputName, env, log); err != nil {
			return nil, err
		}
		data, err := compiler.Page(res, env.Lang, title)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(outputName, data, 0644); err != nil {
			return nil, fmt.Errorf("unable to write document: %w", err)
		}
		return []string{outputName}, nil

	case config.OutputModeBundle:
		if err := prepareOutputFile(outputName, env, log); err != nil {
			return nil, err
		}
		if err := writeBundle(res, outputName, title, env, log); err != nil {
			return nil, err
		}
		return []string{outputName}, nil
	}
	// this should never happen
	return nil, fmt.Errorf("unsupported output mode %q", env.Mode)
}

// writeBundle puts page, fragment, stylesheet and every section markup into
// a single zip archive.
func writeBundle(res *compiler.Result, outputName, title string, env *state.LocalEnv, log *zap.Logger) error {
	page, err := compiler.Page(res, env.Lang, title)
	if err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", misc.GetAppName()+"-b-")
	if err != nil {
		return fmt.Errorf("unable to create temporary directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)
	tmpName := filepath.Join(tmpDir, filepath.Base(outputName))

	f, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	defer f.Close()

	// entries get fixed time so bundles are reproducible
	stamp := time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

	zw := zip.NewWriter(f)
	defer zw.Close()

	add := func(name string, data []byte) error {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: stamp})
		if err != nil {
			return fmt.Errorf("unable to add %s to bundle: %w", name, err)
		}
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("unable to write %s to bundle: %w", name, err)
		}
		return nil
	}

	if err := add(bundlePage, page); err != nil {
		return err
	}
	if err := add(bundleFragment, []byte(res.HTML)); err != nil {
		return err
	}
	if err := add(bundleStylesheet, []byte(res.CSS)); err != nil {
		return err
	}
	for i, s := range res.Sections {
		base := fmt.Sprintf("%s/%02d-%s", bundleSections, i+1, s.Type)
		if err := add(base+".html", []byte(s.HTML)); err != nil {
			return err
		}
		if s.CSS == "" {
			continue
		}
		if err := add(base+".css", []byte(s.CSS)); err != nil {
			return err
		}
	}

	// make sure buffers are flushed before continuing
	if err := zw.Close(); err != nil {
		return fmt.Errorf("unable to close output archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to finalize output file: %w", err)
	}

	log.Debug("Bundle prepared", zap.Int("sections", len(res.Sections)), zap.Bool("fix_zip", env.Cfg.Document.FixZip))

	if env.Cfg.Document.FixZip {
		return copyZipWithoutDataDescriptors(tmpName, outputName)
	}
	return copyFile(tmpName, outputName)
}

func copyZipWithoutDataDescriptors(from, to string) error {

	out, err := os.Create(to)
	if err != nil {
		return fmt.Errorf("unable to create target file (%s): %w", to, err)
	}
	defer out.Close()

	r, err := fixzip.OpenReader(from)
	if err != nil {
		return fmt.Errorf("unable to read archive file (%s): %w", from, err)
	}
	defer r.Close()

	w := fixzip.NewWriter(out)
	defer w.Close()

	for _, file := range r.File {
		// unset data descriptor flag.
		file.Flags &= ^fixzip.FlagDataDescriptor

		// copy zip entry
		if err := w.CopyFile(file); err != nil {
			return fmt.Errorf("unable to write target file (%s): %w", to, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("unable to finalize target file (%s): %w", to, err)
	}
	return out.Close()
}

func copyFile(src, dst string) error {

	sourceFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err = destinationFile.Close(); err != nil {
		return fmt.Errorf("failed to close destination file: %w", err)
	}
	return nil
}
