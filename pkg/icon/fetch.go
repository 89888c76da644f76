package icon

import (
	"context"
	"fmt"

	"github.com/kpango/glg"
	"golang.org/x/sync/errgroup"

	"github.com/gucio321/figicons/pkg/ledger"
)

// DefaultBatchSize is the largest number of ids sent in one locator request.
const DefaultBatchSize = 50

// LocatorSource resolves component ids to rendered image urls.
type LocatorSource interface {
	ImageLocators(ctx context.Context, ids []string) (map[string]string, error)
}

// MarkupSource downloads rendered vector markup.
type MarkupSource interface {
	RawMarkup(ctx context.Context, url string) (string, error)
}

// Fetcher downloads artwork for descriptors.
type Fetcher struct {
	locators    LocatorSource
	markup      MarkupSource
	batchSize   int
	concurrency int
}

// NewFetcher creates a Fetcher with DefaultBatchSize and unlimited download concurrency.
func NewFetcher(locators LocatorSource, markup MarkupSource) *Fetcher {
	return &Fetcher{
		locators:  locators,
		markup:    markup,
		batchSize: DefaultBatchSize,
	}
}

// BatchSize sets how many ids are resolved per locator request.
func (f *Fetcher) BatchSize(n int) *Fetcher {
	if n > 0 {
		f.batchSize = n
	}

	return f
}

// Concurrency limits parallel downloads. n <= 0 means no limit.
func (f *Fetcher) Concurrency(n int) *Fetcher {
	f.concurrency = n
	return f
}

// Fetch resolves and downloads artwork for every descriptor.
// A descriptor without locator is recorded as ledger.ImageURLNotFound and dropped.
// A failed download yields Artwork with empty markup, which is rejected later by Sanitize.
// A failing locator request or a cancelled ctx is returned as an error.
func (f *Fetcher) Fetch(ctx context.Context, descriptors []Descriptor, l *ledger.Ledger) ([]Artwork, error) {
	// 1.0: resolve locators
	locators, err := f.resolve(ctx, descriptors)
	if err != nil {
		return nil, err
	}

	// 2.0: drop descriptors without locators
	pending := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if _, ok := locators[d.ID]; !ok {
			l.Add(d, ledger.ImageURLNotFound)
			continue
		}

		pending = append(pending, d)
	}

	// 3.0: download
	result := make([]Artwork, len(pending))

	var g errgroup.Group
	if f.concurrency > 0 {
		g.SetLimit(f.concurrency)
	}

	for i, d := range pending {
		i, d := i, d
		g.Go(func() error {
			result[i] = Artwork{Descriptor: d}

			markup, err := f.markup.RawMarkup(ctx, locators[d.ID])
			if err != nil {
				glg.Warnf("fetch: downloading %s: %v", d, err)
				return nil
			}

			result[i].Markup = markup

			return nil
		})
	}

	// goroutines never fail
	_ = g.Wait()

	// downloads interrupted by cancellation are not missing artwork
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("downloading artwork: %w", err)
	}

	glg.Infof("fetch: %d descriptors -> %d artworks", len(descriptors), len(result))

	return result, nil
}

func (f *Fetcher) resolve(ctx context.Context, descriptors []Descriptor) (map[string]string, error) {
	ids := make([]string, len(descriptors))
	for i, d := range descriptors {
		ids[i] = d.ID
	}

	batches := chunk(ids, f.batchSize)
	tables := make([]map[string]string, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		i, batch := i, batch
		g.Go(func() error {
			table, err := f.locators.ImageLocators(gctx, batch)
			if err != nil {
				return fmt.Errorf("resolving batch %d/%d: %w", i+1, len(batches), err)
			}

			tables[i] = table

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// batches are disjoint so keys never collide
	result := make(map[string]string, len(ids))
	for _, table := range tables {
		for id, u := range table {
			result[id] = u
		}
	}

	glg.Debugf("fetch: resolved %d/%d locators in %d batches", len(result), len(ids), len(batches))

	return result, nil
}

func chunk[T any](s []T, size int) [][]T {
	var result [][]T
	for size < len(s) {
		s, result = s[size:], append(result, s[:size:size])
	}

	if len(s) > 0 {
		result = append(result, s)
	}

	return result
}
