// Package writer persists combined icons to the output directory.
package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kpango/glg"
	"golang.org/x/sync/errgroup"

	"github.com/gucio321/figicons/pkg/icon"
	"github.com/gucio321/figicons/pkg/optimize"
)

// Writer writes assets as <dir>/<name>.svg.
type Writer struct {
	dir       string
	optimizer optimize.Optimizer
}

// New creates a Writer. A nil optimizer means optimize.Noop.
func New(dir string, optimizer optimize.Optimizer) *Writer {
	if optimizer == nil {
		optimizer = optimize.Noop
	}

	return &Writer{
		dir:       dir,
		optimizer: optimizer,
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Reset deletes the output directory with all its contents and creates it again.
func (w *Writer) Reset() error {
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("cleaning %s: %w", w.dir, err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", w.dir, err)
	}

	return nil
}

// Emit resets the output directory and writes all assets concurrently.
// It returns paths of written files in the order of assets.
func (w *Writer) Emit(ctx context.Context, assets []icon.Asset) ([]string, error) {
	if err := w.Reset(); err != nil {
		return nil, err
	}

	paths := make([]string, len(assets))

	g, gctx := errgroup.WithContext(ctx)
	for i, asset := range assets {
		i, asset := i, asset
		g.Go(func() error {
			path, err := filepath.Abs(filepath.Join(w.dir, asset.FileName()))
			if err != nil {
				return fmt.Errorf("resolving path of %s: %w", asset.Name, err)
			}

			markup := w.optimize(gctx, asset.Markup, path)
			if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			paths[i] = path

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	glg.Infof("writer: %d icons written to %s", len(paths), w.dir)

	return paths, nil
}

// optimize returns optimized markup, or markup itself when the optimizer fails.
func (w *Writer) optimize(ctx context.Context, markup, path string) string {
	result, err := w.optimizer.Optimize(ctx, markup, path)
	if err == nil {
		err = optimize.Validate(result)
	}

	if err != nil {
		glg.Warnf("writer: optimizing %s failed, writing unoptimized markup: %v", filepath.Base(path), err)
		return markup
	}

	return result
}
