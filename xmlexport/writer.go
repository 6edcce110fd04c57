// SPDX-License-Identifier: MIT
// Package: pinlat/xmlexport
//
// writer.go — Writer: Render + write into a directory.
//
// Contract:
//   - The directory is created if missing.
//   - Files are written in a fixed order: materials, geometry, settings, plots.
//   - A canceled context stops before the next file; files already written stay.
//   - A document the model does not produce (plots.xml without plots) is
//     removed from the directory if present.

package xmlexport

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/katalvlaran/pinlat/model"
)

const (
	defaultDirMode  os.FileMode = 0o755
	defaultFileMode os.FileMode = 0o644
)

// Option customizes a Writer.
type Option func(*Writer)

// WithLogger sets the logger used to report written files.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("xmlexport: WithLogger(nil)")
	}

	return func(w *Writer) { w.log = l }
}

// WithFileMode sets the permission bits of written files.
// Panics on a mode without the owner write bit.
func WithFileMode(mode os.FileMode) Option {
	if mode&0o200 == 0 {
		panic(fmt.Sprintf("xmlexport: WithFileMode(%v): owner cannot write", mode))
	}

	return func(w *Writer) { w.fileMode = mode }
}

// Writer exports a model as solver input files. It implements model.Exporter.
type Writer struct {
	dir      string
	fileMode os.FileMode
	log      *zap.Logger
}

var _ model.Exporter = (*Writer)(nil)

// New returns a Writer targeting dir.
func New(dir string, opts ...Option) *Writer {
	w := &Writer{dir: dir, fileMode: defaultFileMode, log: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Dir returns the target directory.
func (w *Writer) Dir() string { return w.dir }

// Export renders m and writes the documents into the target directory.
func (w *Writer) Export(ctx context.Context, m *model.Model) error {
	docs, err := Render(m)
	if err != nil {
		return fmt.Errorf("Export: %w", err)
	}
	if err := os.MkdirAll(w.dir, defaultDirMode); err != nil {
		return fmt.Errorf("Export: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{MaterialsFile, docs.Materials},
		{GeometryFile, docs.Geometry},
		{SettingsFile, docs.Settings},
		{PlotsFile, docs.Plots},
	}
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		path := filepath.Join(w.dir, f.name)
		if f.data == nil {
			// Drop a document left by an earlier export of another model.
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("Export: %w", err)
			}
			continue
		}
		if err := os.WriteFile(path, f.data, w.fileMode); err != nil {
			return fmt.Errorf("Export: %w", err)
		}
		w.log.Debug("wrote solver input", zap.String("path", path), zap.Int("bytes", len(f.data)))
	}
	w.log.Info("exported model", zap.String("dir", w.dir))

	return nil
}
