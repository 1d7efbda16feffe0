package convert

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"dbc/source"
)

// enough for any matcher filetype knows about
const sniffLen = 262

func sniff(r io.Reader) ([]byte, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return head[:n], nil
}

// isArchiveFile checks if file is a zip archive by extension and content.
func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	head, err := sniff(file)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

// sourceFormat rejects files with source extension but binary content
// (images, archives, office documents and such) filetype recognizes.
func sourceFormat(name string, r io.Reader) (source.Format, error) {
	format := source.FormatFromName(name)
	if format == source.FormatUnknown {
		return format, nil
	}
	head, err := sniff(r)
	if err != nil {
		return source.FormatUnknown, err
	}
	if len(head) > 0 {
		if kind, _ := filetype.Match(head); kind != filetype.Unknown {
			return source.FormatUnknown, nil
		}
	}
	return format, nil
}

// isSourceFile returns format of the source document or FormatUnknown if
// file should be skipped.
func isSourceFile(path string) (source.Format, error) {
	if source.FormatFromName(path) == source.FormatUnknown {
		return source.FormatUnknown, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return source.FormatUnknown, err
	}
	defer file.Close()

	return sourceFormat(path, file)
}

// isSourceInArchive is isSourceFile for archive entries, name is decoded entry name.
func isSourceInArchive(name string, f *zip.File) (source.Format, error) {
	if source.FormatFromName(name) == source.FormatUnknown {
		return source.FormatUnknown, nil
	}

	r, err := f.Open()
	if err != nil {
		return source.FormatUnknown, err
	}
	defer r.Close()

	return sourceFormat(name, r)
}
