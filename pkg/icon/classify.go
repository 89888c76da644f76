package icon

import (
	"strings"
	"unicode"

	"github.com/kpango/glg"

	"github.com/gucio321/figicons/pkg/figma"
	"github.com/gucio321/figicons/pkg/ledger"
)

// CanonicalName strips whitespace, dashes, parentheses and slashes from a set name.
func CanonicalName(setName string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		switch r {
		case '-', '(', ')', '/':
			return -1
		}

		return r
	}, setName)
}

// Classify derives descriptors from raw components.
// Components without a known set, or with a missing/invalid style or size, are recorded in l.
// Outlined and dark components are dropped silently: they are out of scope, not malformed.
// The order of components is preserved.
func Classify(components []figma.RawComponent, sets map[string]figma.RawComponentSet, l *ledger.Ledger) []Descriptor {
	result := make([]Descriptor, 0, len(components))
	skipped := 0

	for _, component := range components {
		set, ok := sets[component.ComponentSetID]
		if component.ComponentSetID == "" || !ok {
			l.Add(component, ledger.ComponentSetNotFound)
			continue
		}

		props := ParseProperties(component.Name)
		d := Descriptor{
			ID:            component.ID,
			Name:          CanonicalName(set.Name),
			Style:         props.Style.Value,
			Size:          props.Size.Value,
			Motif:         MotifLight,
			SetName:       set.Name,
			ComponentName: component.Name,
		}

		if props.Motif.OK() {
			d.Motif = props.Motif.Value
		}

		if code, failed := props.Code(); failed {
			l.Add(d, code)
			continue
		}

		if d.Style == StyleOutlined || d.Motif == MotifDark {
			skipped++
			continue
		}

		result = append(result, d)
	}

	glg.Infof("classify: %d components -> %d descriptors (%d out of scope)", len(components), len(result), skipped)

	return result
}
