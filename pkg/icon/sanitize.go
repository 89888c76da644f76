package icon

import (
	"strings"

	"github.com/kpango/glg"

	"github.com/gucio321/figicons/pkg/ledger"
)

// Sanitize drops artwork with empty markup (ledger.SVGNotFound) and artwork whose
// (name, style, size) was already taken by an earlier record (ledger.ComponentNameDuplicated).
// The first record with markup wins; order is preserved.
// Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(records []Artwork, l *ledger.Ledger) []Artwork {
	result := make([]Artwork, 0, len(records))
	seen := make(map[identity]bool, len(records))

	for _, record := range records {
		if strings.TrimSpace(record.Markup) == "" {
			l.Add(record.Descriptor, ledger.SVGNotFound)
			continue
		}

		key := record.identity()
		if seen[key] {
			l.Add(record.Descriptor, ledger.ComponentNameDuplicated)
			continue
		}

		seen[key] = true
		result = append(result, record)
	}

	glg.Infof("sanitize: %d artworks -> %d", len(records), len(result))

	return result
}
