// Package optimize provides SVG optimizers.
// An optimizer takes markup and the path it will be written to and returns optimized markup.
package optimize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gucio321/figicons/pkg/svgdoc"
)

// ErrEmptyOutput is returned when an optimizer produced nothing.
var ErrEmptyOutput = errors.New("optimizer produced empty output")

// Optimizer optimizes SVG markup. path is the destination of the result and may
// influence decisions of the optimizer; it is never written to by the optimizer.
type Optimizer interface {
	Optimize(ctx context.Context, markup, path string) (string, error)
}

// Func adapts a function to Optimizer.
type Func func(ctx context.Context, markup, path string) (string, error)

// Optimize implements Optimizer.
func (f Func) Optimize(ctx context.Context, markup, path string) (string, error) {
	return f(ctx, markup, path)
}

// Noop returns markup unchanged.
var Noop Optimizer = Func(func(_ context.Context, markup, _ string) (string, error) {
	return markup, nil
})

// Compact strips comments, metadata and formatting whitespace.
var Compact Optimizer = Func(func(_ context.Context, markup, _ string) (string, error) {
	return svgdoc.Compact(markup)
})

// Chain runs optimizers one after another. The first failure stops the chain.
func Chain(optimizers ...Optimizer) Optimizer {
	return Func(func(ctx context.Context, markup, path string) (string, error) {
		var err error
		for i, o := range optimizers {
			if markup, err = o.Optimize(ctx, markup, path); err != nil {
				return "", fmt.Errorf("optimizer %d: %w", i, err)
			}
		}

		return markup, nil
	})
}

// Validate checks that optimizer output is a usable SVG document.
func Validate(markup string) error {
	if strings.TrimSpace(markup) == "" {
		return ErrEmptyOutput
	}

	if _, err := svgdoc.Parse(markup); err != nil {
		return fmt.Errorf("optimizer output: %w", err)
	}

	return nil
}
