package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/figicons/pkg/figma"
	"github.com/gucio321/figicons/pkg/ledger"
)

func TestCanonicalName(t *testing.T) {
	tests := map[string]string{
		"Arrow - Left":        "ArrowLeft",
		"Chevron (Down)":      "ChevronDown",
		"Nav/Home":            "NavHome",
		"Tab\tName  Spaced":   "TabNameSpaced",
		"AlreadyCanonical123": "AlreadyCanonical123",
	}

	for in, want := range tests {
		got := CanonicalName(in)
		assert.Equal(t, want, got, in)
		assert.NotContainsf(t, got, " ", "%q", got)
		assert.NotContainsf(t, got, "-", "%q", got)
	}
}

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		style Property[Style]
		size  Property[Size]
		motif Property[Motif]
	}{
		{
			name:  "all present",
			in:    "Style=Two-Toned, Size=24px, Mode=Dark",
			style: Property[Style]{Value: StyleTwoToned, Raw: "twotoned"},
			size:  Property[Size]{Value: Size24, Raw: "24px"},
			motif: Property[Motif]{Value: MotifDark, Raw: "dark"},
		},
		{
			name:  "case insensitive keys, no spaces",
			in:    "size=20PX,STYLE=filled",
			style: Property[Style]{Value: StyleFilled, Raw: "filled"},
			size:  Property[Size]{Value: Size20, Raw: "20px"},
			motif: Property[Motif]{Err: ErrPropertyMissing},
		},
		{
			name:  "missing",
			in:    "Variant=Default",
			style: Property[Style]{Err: ErrPropertyMissing},
			size:  Property[Size]{Err: ErrPropertyMissing},
			motif: Property[Motif]{Err: ErrPropertyMissing},
		},
		{
			name:  "empty value is missing",
			in:    "Style=, Size=16px",
			style: Property[Style]{Err: ErrPropertyMissing},
			size:  Property[Size]{Raw: "16px", Err: ErrInvalidValue},
			motif: Property[Motif]{Err: ErrPropertyMissing},
		},
		{
			name:  "invalid",
			in:    "Style=Sharp, Size=20px, Mode=Sepia",
			style: Property[Style]{Raw: "sharp", Err: ErrInvalidValue},
			size:  Property[Size]{Value: Size20, Raw: "20px"},
			motif: Property[Motif]{Raw: "sepia", Err: ErrInvalidValue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParseProperties(tt.in)
			assert.Equal(t, tt.style, p.Style)
			assert.Equal(t, tt.size, p.Size)
			assert.Equal(t, tt.motif, p.Motif)
		})
	}
}

func TestPropertiesCode(t *testing.T) {
	tests := map[string]ledger.Code{
		"Size=20px":                ledger.StylePropertyNotExisted,
		"Style=Bold, Size=20px":    ledger.StyleInvalidValue,
		"Style=Filled":             ledger.SizePropertyNotExisted,
		"Style=Filled, Size=32px":  ledger.SizeInvalidValue,
		"Style=Bold, Size=32px":    ledger.StyleInvalidValue,
		"Size=2-0px, Style=Filled": 0,
	}

	for in, want := range tests {
		code, failed := ParseProperties(in).Code()
		assert.Equal(t, want != 0, failed, in)
		assert.Equal(t, want, code, in)
	}
}

func sets() map[string]figma.RawComponentSet {
	return map[string]figma.RawComponentSet{
		"S": {ID: "S", Name: "Foo"},
		"T": {ID: "T", Name: "Bar - Baz (Alt)"},
	}
}

func TestClassify(t *testing.T) {
	components := []figma.RawComponent{
		{ID: "1", Name: "Style=Filled, Size=20px", ComponentSetID: "S"},
		{ID: "2", Name: "Style=TwoToned, Size=20px, Mode=Light", ComponentSetID: "S"},
		{ID: "3", Name: "Style=Filled, Size=24px", ComponentSetID: "T"},
	}

	l := ledger.New("")
	got := Classify(components, sets(), l)

	require.Len(t, got, 3)
	assert.Zero(t, l.Len())

	assert.Equal(t, Descriptor{
		ID:            "1",
		Name:          "Foo",
		Style:         StyleFilled,
		Size:          Size20,
		Motif:         MotifLight,
		SetName:       "Foo",
		ComponentName: "Style=Filled, Size=20px",
	}, got[0])
	assert.Equal(t, StyleTwoToned, got[1].Style)
	assert.Equal(t, "BarBazAlt", got[2].Name)
	assert.Equal(t, "NavBarBazAlt", got[2].GroupKey())
}

func TestClassifyMissingSet(t *testing.T) {
	components := []figma.RawComponent{
		{ID: "1", Name: "Style=Filled, Size=20px"},
		{ID: "2", Name: "Style=Filled, Size=20px", ComponentSetID: "unknown"},
	}

	l := ledger.New("")
	got := Classify(components, sets(), l)

	assert.Empty(t, got)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 2, l.Count(ledger.ComponentSetNotFound))
	assert.Equal(t, "1", l.Entries()[0].Raw.LedgerID())
}

func TestClassifyPolicyExclusion(t *testing.T) {
	components := []figma.RawComponent{
		{ID: "1", Name: "Style=Outlined, Size=20px", ComponentSetID: "S"},
		{ID: "2", Name: "Style=Filled, Size=20px, Mode=Dark", ComponentSetID: "S"},
		{ID: "3", Name: "Style=Two-Toned, Size=24px, mode=dark", ComponentSetID: "S"},
	}

	l := ledger.New("")
	got := Classify(components, sets(), l)

	assert.Empty(t, got)
	assert.Zero(t, l.Len(), "out of scope is not an error")
}

func TestClassifyInvalidProperties(t *testing.T) {
	components := []figma.RawComponent{
		{ID: "1", Name: "Size=20px", ComponentSetID: "S"},
		{ID: "2", Name: "Style=Bold, Size=20px", ComponentSetID: "S"},
		{ID: "3", Name: "Style=Filled", ComponentSetID: "S"},
		{ID: "4", Name: "Style=Filled, Size=16px", ComponentSetID: "S"},
		// validation comes before the policy filter
		{ID: "5", Name: "Style=Outlined, Size=16px", ComponentSetID: "S"},
	}

	l := ledger.New("")
	got := Classify(components, sets(), l)

	assert.Empty(t, got)

	entries := l.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, ledger.StylePropertyNotExisted, entries[0].Code)
	assert.Equal(t, ledger.StyleInvalidValue, entries[1].Code)
	assert.Equal(t, ledger.SizePropertyNotExisted, entries[2].Code)
	assert.Equal(t, ledger.SizeInvalidValue, entries[3].Code)
	assert.Equal(t, ledger.SizeInvalidValue, entries[4].Code)
	assert.Equal(t, "Foo", entries[0].Raw.LedgerName())
}
