package icon

import (
	"github.com/kpango/glg"

	"github.com/gucio321/figicons/pkg/ledger"
	"github.com/gucio321/figicons/pkg/svgdoc"
)

// Group holds all style variants of one icon at one size.
type Group struct {
	Key      string
	Filled   *Artwork
	TwoToned *Artwork
}

// GroupArtwork groups records by GroupKey. Groups are ordered by first appearance.
// Styles other than filled and twotoned do not participate.
// Keys of different sizes may collide (e.g. 20px "NavFoo" and 24px "Foo"); the first record
// keeps the slot and every later one is recorded in l as ledger.ComponentNameDuplicated.
func GroupArtwork(records []Artwork, l *ledger.Ledger) []*Group {
	var result []*Group
	index := make(map[string]*Group)

	for i := range records {
		record := &records[i]
		key := record.GroupKey()

		group, ok := index[key]
		if !ok {
			group = &Group{Key: key}
			index[key] = group
			result = append(result, group)
		}

		var slot **Artwork
		switch record.Style {
		case StyleFilled:
			slot = &group.Filled
		case StyleTwoToned:
			slot = &group.TwoToned
		default:
			continue
		}

		if *slot != nil {
			glg.Warnf("combine: %s collides with %s under %q", record.Descriptor, (*slot).Descriptor, key)
			l.Add(record.Descriptor, ledger.ComponentNameDuplicated)

			continue
		}

		*slot = record
	}

	return result
}

// Combine merges each group into a single asset: the two-toned document with the filled
// layer appended on top, recolored with palette (nil means svgdoc.DefaultPalette).
// Incomplete or unmergeable groups are recorded in l and skipped.
func Combine(records []Artwork, palette *svgdoc.Palette, l *ledger.Ledger) []Asset {
	if palette == nil {
		palette = svgdoc.DefaultPalette()
	}

	groups := GroupArtwork(records, l)
	result := make([]Asset, 0, len(groups))

	for _, group := range groups {
		if group.Filled == nil {
			l.Add(ledger.Named(group.Key), ledger.MissingFilledSVG)
			continue
		}

		if group.TwoToned == nil {
			l.Add(ledger.Named(group.Key), ledger.MissingTwoTonedSVG)
			continue
		}

		combined, err := svgdoc.Merge(group.TwoToned.Markup, group.Filled.Markup)
		if err != nil || combined == "" {
			glg.Warnf("combine: %s: %v", group.Key, err)
			l.Add(ledger.Named(group.Key), ledger.CombineFail)

			continue
		}

		result = append(result, Asset{
			Name:   group.Key,
			Markup: palette.Recolor(combined),
		})
	}

	glg.Infof("combine: %d groups -> %d assets", len(groups), len(result))

	return result
}
