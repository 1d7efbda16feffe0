// Package convert drives compilation of source documents found in files,
// directories and archives.
package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/language"

	"dbc/archive"
	"dbc/compiler"
	"dbc/config"
	"dbc/source"
	"dbc/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Mode = env.Cfg.Document.OutputMode
	if cmd.IsSet("mode") {
		mode, err := config.ParseOutputMode(cmd.String("mode"))
		if err != nil {
			log.Warn("Unknown output mode requested, using configured one", zap.Stringer("mode", env.Mode), zap.Error(err))
		} else {
			env.Mode = mode
		}
	}

	if env.Cfg.Document.Lang != "" {
		tag, err := language.Parse(env.Cfg.Document.Lang)
		if err != nil {
			log.Warn("Unable to parse document language, using default", zap.String("lang", env.Cfg.Document.Lang), zap.Error(err))
		} else {
			env.Lang = tag
		}
	}

	if env.Cfg.Document.StylesheetPath != "" {
		data, err := os.ReadFile(env.Cfg.Document.StylesheetPath)
		if err != nil {
			return fmt.Errorf("unable to read style css from %q: %w", env.Cfg.Document.StylesheetPath, err)
		}
		env.Stylesheet = data
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	env.CodePage = lookupEncoding(cmd.String("force-zip-cp"), "Forcefully converting all non UTF-8 file names in archives", log)
	// plain text has no way to declare its encoding
	env.Encoding = lookupEncoding(cmd.String("encoding"), "Forcefully decoding all sources", log)

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst), zap.Stringer("mode", env.Mode))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

func lookupEncoding(name, msg string, log *zap.Logger) encoding.Encoding {
	if len(name) == 0 {
		return nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", name), zap.Error(err))
		return nil
	}
	n, _ := ianaindex.IANA.Name(enc)
	log.Debug(msg, zap.String("charset", n))
	return enc
}

// process handles the core logic independently of CLI framework. It
// determines the input type (directory, archive, or single file) and processes
// accordingly.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			// we need to look inside to see if path makes sense
			tail = filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, tail, "", dst, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		format, err := isSourceFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check file type: %w", err)
		}
		if format != source.FormatUnknown && len(tail) == 0 {
			// source document cannot have tail
			if err := processFile(ctx, head, filepath.Base(head), format, dst, log); err != nil {
				log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
			}
			break
		}
		return fmt.Errorf("input was not recognized as source document (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree in natural order finding source documents
// and archives and processes them.
func processDir(ctx context.Context, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return err
	}
	sort.Sort(natural.StringSlice(files))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		isArchive, err := isArchiveFile(path)
		if err != nil {
			// checking format - but cannot open target file
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if isArchive {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			continue
		}

		format, err := isSourceFile(path)
		if err != nil {
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			continue
		}
		if format == source.FormatUnknown {
			log.Debug("Skipping file, not recognized as source or archive", zap.String("file", path))
			continue
		}

		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processFile(ctx, path, src, format, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
	}
	return nil
}

// processArchive walks all files inside archive, finds source documents under
// "pathIn" and processes them.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	env := state.EnvFromContext(ctx)
	err = archive.Walk(path, pathIn, archive.Options{CodePage: env.CodePage}, func(archive, name string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		format, err := isSourceInArchive(name, f)
		if err != nil {
			log.Warn("Skipping file in archive",
				zap.String("archive", archive), zap.String("path", name), zap.Error(err))
			return nil
		}
		if format == source.FormatUnknown {
			log.Debug("Skipping file, not recognized as source", zap.String("archive", archive), zap.String("file", name))
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", name), zap.Error(err))
			return nil
		}
		defer r.Close()

		if err := processSource(ctx, r, filepath.Join(pathOut, filepath.FromSlash(name)), format, dst, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", archive), zap.String("file", name), zap.Error(err))
		}
		return nil
	})
	return err
}

func processFile(ctx context.Context, path, src string, format source.Format, dst string, log *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return processSource(ctx, file, src, format, dst, log)
}

// processSource compiles single source document. "src" is part of the source
// path (always including file name) relative to the original path. When actual
// file was specified it will be just base file name without a path. When
// looking inside archive or directory it will be relative path inside archive
// or directory (including base file name). "dst" is the destination directory
// where results should be written.
func processSource(ctx context.Context, r io.Reader, src string, format source.Format, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var docID, outputName string

	log.Info("Compilation starting", zap.String("from", src), zap.String("format", string(format)))
	defer func(start time.Time) {
		// one broken document should not stop processing of the rest
		if r := recover(); r != nil {
			log.Error("Compilation ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("compilation panic: %v", r)
		} else if rerr == nil {
			log.Info("Compilation completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("id", docID))
		}
	}(time.Now())

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("unable to read source (%s): %w", src, err)
	}

	tokens, err := source.Read(bytes.NewReader(data), format, env.Encoding)
	if err != nil {
		return fmt.Errorf("unable to parse source (%s): %w", src, err)
	}

	doc := &env.Cfg.Document
	res, err := compiler.Compile(ctx, tokens, compiler.Options{
		Name:             filepath.ToSlash(src),
		Prefix:           doc.ClassPrefix,
		AutoDescription:  doc.SEO.AutoDescription,
		DescriptionLimit: doc.SEO.DescriptionLimit,
		Language:         env.Lang,
		Stylesheet:       env.Stylesheet,
		NoBaseStylesheet: doc.NoBaseStylesheet,
		Log:              log,
	})
	if err != nil {
		return err
	}
	docID = res.Document.ID

	values := newValues(res, src, env.Mode, env.Lang.String())
	// Determine output file name and path based on input and configuration.
	outputName = buildOutputPath(values, src, dst, env)

	written, err := writeOutput(res, outputName, values.SourceFile, env, log)
	if err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	// Store compilation results for debugging
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("source-%s%s", docID, filepath.Ext(src)), data)
		env.Rpt.StoreData(fmt.Sprintf("document-%s.txt", docID), []byte(res.Document.String()))
		for _, name := range written {
			env.Rpt.Store(fmt.Sprintf("result-%s%s", docID, filepath.Ext(name)), name)
		}
	}
	return nil
}
