// Package figicons builds combined SVG icons out of a design file.
//
// The pipeline: classify components, fetch their artwork, sanitize, combine two-toned and
// filled variants of every icon into one document and write optimized files.
// Per-icon problems never stop the run; they are recorded in a ledger.Ledger.
package figicons

import (
	"context"
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/figicons/pkg/figma"
	"github.com/gucio321/figicons/pkg/icon"
	"github.com/gucio321/figicons/pkg/ledger"
	"github.com/gucio321/figicons/pkg/optimize"
	"github.com/gucio321/figicons/pkg/svgdoc"
	"github.com/gucio321/figicons/pkg/writer"
)

// DefaultOutputDir is where icons are written unless set otherwise.
const DefaultOutputDir = "src/svg"

// Source is everything the pipeline needs from the design API. *figma.Client implements it.
type Source interface {
	File(ctx context.Context) (*figma.FileExport, error)
	icon.LocatorSource
	icon.MarkupSource
}

// Pipeline is a single configured run.
type Pipeline struct {
	source      Source
	ledger      *ledger.Ledger
	outputDir   string
	optimizer   optimize.Optimizer
	palette     *svgdoc.Palette
	concurrency int
}

// Result summarizes a run.
type Result struct {
	Components  int
	Descriptors int
	Artworks    int
	Sanitized   int
	// Written are paths of the written icons.
	Written []string
}

// NewPipeline creates a pipeline reporting problems to l.
func NewPipeline(source Source, l *ledger.Ledger) *Pipeline {
	return &Pipeline{
		source:    source,
		ledger:    l,
		outputDir: DefaultOutputDir,
		optimizer: optimize.Noop,
	}
}

// OutputDir sets the icon directory. It is wiped on every run.
func (p *Pipeline) OutputDir(dir string) *Pipeline {
	p.outputDir = dir
	return p
}

// Optimizer sets optimizer applied to every icon before writing.
func (p *Pipeline) Optimizer(o optimize.Optimizer) *Pipeline {
	p.optimizer = o
	return p
}

// Palette sets recolor rules (default: svgdoc.DefaultPalette).
func (p *Pipeline) Palette(palette *svgdoc.Palette) *Pipeline {
	p.palette = palette
	return p
}

// Concurrency limits parallel artwork downloads (<= 0: unlimited).
func (p *Pipeline) Concurrency(n int) *Pipeline {
	p.concurrency = n
	return p
}

// Ledger returns the ledger of the pipeline.
func (p *Pipeline) Ledger() *ledger.Ledger {
	return p.ledger
}

// Run executes the pipeline. Only infrastructure failures are returned as errors.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	// 1.0: export
	file, err := p.source.File(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	result.Components = len(file.Components)

	// 2.0: classify
	descriptors := icon.Classify(file.Components, file.ComponentSets, p.ledger)
	result.Descriptors = len(descriptors)

	// 3.0: fetch
	artworks, err := icon.NewFetcher(p.source, p.source).
		Concurrency(p.concurrency).
		Fetch(ctx, descriptors, p.ledger)
	if err != nil {
		return nil, fmt.Errorf("fetching artwork: %w", err)
	}

	result.Artworks = len(artworks)

	// 4.0: sanitize
	artworks = icon.Sanitize(artworks, p.ledger)
	result.Sanitized = len(artworks)

	// 5.0: combine
	assets := icon.Combine(artworks, p.palette, p.ledger)

	// 6.0: write
	result.Written, err = writer.New(p.outputDir, p.optimizer).Emit(ctx, assets)
	if err != nil {
		return nil, fmt.Errorf("writing icons: %w", err)
	}

	glg.Infof("done: %d components, %d icons written, %d issues", result.Components, len(result.Written), p.ledger.Len())

	return result, nil
}
