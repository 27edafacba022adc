// Package cleaner turns one source DXF file into its cleaned counterpart:
// read, parse, rebuild, write atomically. Callers decide where outputs live
// and what happens to inputs afterwards.
package cleaner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fusion17com/dxf-cleaner/pkg/dxf"
	"github.com/fusion17com/dxf-cleaner/pkg/format"
	"github.com/fusion17com/dxf-cleaner/pkg/parser"
)

// DefaultSuffix is appended to the input base name when Options leaves the
// suffix empty.
const DefaultSuffix = "_cleaned"

// Options controls where one cleaned file is written.
type Options struct {
	OutputDir string // destination directory, created if missing
	Suffix    string // appended to the input base name (default "_cleaned")
	Logger    *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result describes one successful clean.
type Result struct {
	InputPath  string
	OutputPath string
	Layers     int
	Entities   int
	Warnings   []parser.Warning
}

// Clean reads the DXF file at path, rebuilds it with only the layer table
// and the supported entities, and writes the result into opts.OutputDir.
// The output is written to a temporary file and renamed into place, so a
// failure never leaves a partial file behind or corrupts a previous output.
func Clean(path string, opts Options) (*Result, error) {
	log := opts.logger()

	res, doc, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	log.Debug("parsed file", "path", path,
		"layers", len(doc.Layers), "entities", len(doc.Entities), "warnings", len(res.Warnings))

	outPath := filepath.Join(opts.OutputDir, OutputName(path, opts.Suffix))
	if err := writeAtomic(outPath, format.Rebuild(doc)); err != nil {
		return nil, err
	}
	log.Debug("wrote cleaned file", "path", outPath)

	return &Result{
		InputPath:  path,
		OutputPath: outPath,
		Layers:     len(doc.Layers),
		Entities:   len(doc.Entities),
		Warnings:   res.Warnings,
	}, nil
}

// Parse reads and parses the file at path without writing anything. Used by
// inspection commands.
func Parse(path string) (*parser.Result, error) {
	res, _, err := parseFile(path)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func parseFile(path string) (*parser.Result, *dxf.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, &NotFoundError{Path: path}
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := parser.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, res.Doc, nil
}

// OutputName returns the file name a cleaned copy of path is written under:
// the input base name with the suffix appended before the .dxf extension.
func OutputName(path, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base)) + suffix + ".dxf"
}

// writeAtomic writes data to path via a temporary file in the same
// directory. The temporary file is removed when anything fails.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".dxfclean-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
