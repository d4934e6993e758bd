// Package interchange moves grid contents between cellar and other
// spreadsheet formats: .xlsx workbooks, tab-separated text and bare or
// keyed JSON records.
package interchange

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/cellar/internal/clipboard"
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/persist"
)

// ErrUnsupported is returned for file extensions cellar cannot read or write.
var ErrUnsupported = errors.New("unsupported file type")

// Format names.
const (
	FormatXLSX = "xlsx"
	FormatTSV  = "tsv"
	FormatJSON = "json"
)

// FormatOf maps a path's extension to a format name.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".tsv", ".txt":
		return FormatTSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
}

// ReadFile returns the cell matrix stored at path. Rows may be ragged; use
// grid.Grid.Overlay to place them.
func ReadFile(ctx context.Context, path string) ([][]string, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	if format == FormatJSON {
		return readJSON(ctx, path)
	}

	f, err := os.Open(path) //nolint:gosec // user-chosen import path
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if format == FormatXLSX {
		return ReadXLSX(f)
	}
	return ReadTSV(f)
}

// WriteFile exports g to path in the format its extension names.
func WriteFile(path string, g grid.Grid) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch format {
	case FormatXLSX:
		err = WriteXLSX(&buf, g)
	case FormatTSV:
		err = WriteTSV(&buf, g)
	case FormatJSON:
		var data []byte
		data, err = persist.Encode(g)
		buf.Write(data)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadTSV parses tab-separated rows. The layout is the clipboard payload
// plus the newline that terminates the file; CRLF line endings are tolerated.
func ReadTSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading tsv: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return clipboard.Parse(strings.TrimSuffix(text, "\r")), nil
}

// WriteTSV writes every row of g, tab-separated and newline-terminated.
func WriteTSV(w io.Writer, g grid.Grid) error {
	text := clipboard.Serialize(g.Matrix())
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("writing tsv: %w", err)
	}
	return nil
}

// readJSON accepts either a bare array of rows or a record file holding the
// default key.
func readJSON(ctx context.Context, path string) ([][]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-chosen import path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		g, err := persist.Decode(data)
		if err != nil {
			return nil, err
		}
		return g.Matrix(), nil
	}
	rec, err := persist.NewFileSlot(path, persist.DefaultKey).Load(ctx)
	if err != nil {
		return nil, err
	}
	return rec.Grid.Matrix(), nil
}
