package icon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/figicons/pkg/ledger"
	"github.com/gucio321/figicons/pkg/svgdoc"
)

const (
	twoTonedSVG = `<svg width="20" height="20" viewBox="0 0 20 20" fill="none" xmlns="http://www.w3.org/2000/svg"><path d="M2 2H18V18H2Z" fill="#E5F1FF"/></svg>`
	filledSVG   = `<svg width="20" height="20" viewBox="0 0 20 20" fill="none" xmlns="http://www.w3.org/2000/svg"><path d="M4 4H16V16H4Z" fill="#838691"/><path d="M8 8H12V12H8Z" fill="#838691"/></svg>`
)

func TestGroupKey(t *testing.T) {
	assert.Equal(t, "Foo", GroupKey("Foo", Size20))
	assert.Equal(t, "NavFoo", GroupKey("Foo", Size24))
}

func TestGroupArtwork(t *testing.T) {
	records := []Artwork{
		art("1", "Foo", StyleFilled, Size20, "a"),
		art("2", "Foo", StyleFilled, Size24, "b"),
		art("3", "Bar", StyleTwoToned, Size20, "c"),
		art("4", "Foo", StyleTwoToned, Size20, "d"),
		art("5", "Foo", StyleOutlined, Size20, "e"),
	}

	l := ledger.New("")
	groups := GroupArtwork(records, l)
	require.Len(t, groups, 3)
	assert.Zero(t, l.Len())

	assert.Equal(t, "Foo", groups[0].Key)
	assert.Equal(t, "1", groups[0].Filled.ID)
	assert.Equal(t, "4", groups[0].TwoToned.ID)

	assert.Equal(t, "NavFoo", groups[1].Key)
	assert.Nil(t, groups[1].TwoToned)

	assert.Equal(t, "Bar", groups[2].Key)
	assert.Nil(t, groups[2].Filled)
}

func TestGroupArtworkKeyCollision(t *testing.T) {
	// a 20px "NavFoo" and a 24px "Foo" both land on "NavFoo"
	records := []Artwork{
		art("1", "NavFoo", StyleFilled, Size20, filledSVG),
		art("2", "NavFoo", StyleTwoToned, Size20, twoTonedSVG),
		art("3", "Foo", StyleFilled, Size24, filledSVG),
		art("4", "Foo", StyleTwoToned, Size24, twoTonedSVG),
	}

	l := ledger.New("KEY")
	groups := GroupArtwork(records, l)

	require.Len(t, groups, 1)
	assert.Equal(t, "1", groups[0].Filled.ID)
	assert.Equal(t, "2", groups[0].TwoToned.ID)

	require.Equal(t, 2, l.Len())
	for i, e := range l.Entries() {
		assert.Equal(t, ledger.ComponentNameDuplicated, e.Code)
		assert.Equal(t, records[i+2].ID, e.Raw.LedgerID())
	}

	l = ledger.New("")
	assets := Combine(records, nil, l)
	require.Len(t, assets, 1)
	assert.Equal(t, 2, l.Count(ledger.ComponentNameDuplicated))
}

func TestCombine(t *testing.T) {
	records := []Artwork{
		art("A", "Foo", StyleFilled, Size20, filledSVG),
		art("B", "Foo", StyleTwoToned, Size20, twoTonedSVG),
	}

	l := ledger.New("")
	assets := Combine(records, nil, l)

	require.Len(t, assets, 1)
	assert.Zero(t, l.Len())
	assert.Equal(t, "Foo", assets[0].Name)
	assert.Equal(t, "Foo.svg", assets[0].FileName())

	markup := assets[0].Markup
	assert.NotContains(t, markup, "#838691")
	assert.NotContains(t, markup, "#E5F1FF")
	assert.Equal(t, 2, strings.Count(markup, `fill="currentColor" class="filled"`))
	assert.Equal(t, 1, strings.Count(markup, `fill="currentColor" class="twoToned"`))
	assert.Less(t, strings.Index(markup, "twoToned"), strings.Index(markup, `class="filled"`), "filled layer is on top")

	doc, err := svgdoc.Parse(markup)
	require.NoError(t, err)
	assert.Equal(t, "none", doc.Attr("fill"), "two-toned root attributes are preserved")
	assert.Equal(t, 3, doc.ChildCount())
}

func TestCombineMissingVariants(t *testing.T) {
	records := []Artwork{
		art("A", "OnlyFilled", StyleFilled, Size20, filledSVG),
		art("B", "OnlyTwoToned", StyleTwoToned, Size24, twoTonedSVG),
		art("C", "Ok", StyleFilled, Size24, filledSVG),
		art("D", "Ok", StyleTwoToned, Size24, twoTonedSVG),
	}

	l := ledger.New("")
	assets := Combine(records, nil, l)

	require.Len(t, assets, 1)
	assert.Equal(t, "NavOk", assets[0].Name)

	rows := l.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "NavOnlyTwoToned", rows[0].Name)
	assert.Contains(t, rows[0].Error, "[3003]")
	assert.Equal(t, "OnlyFilled", rows[1].Name)
	assert.Contains(t, rows[1].Error, "[3004]")
	assert.Empty(t, rows[1].URL)
}

func TestCombineFail(t *testing.T) {
	records := []Artwork{
		art("A", "Broken", StyleFilled, Size20, filledSVG),
		art("B", "Broken", StyleTwoToned, Size20, "<html>not an svg</html>"),
	}

	l := ledger.New("")
	assets := Combine(records, nil, l)

	assert.Empty(t, assets)
	require.Equal(t, 1, l.Len())
	assert.Equal(t, ledger.CombineFail, l.Entries()[0].Code)
	assert.Equal(t, "Broken", l.Entries()[0].Raw.LedgerName())
}

func TestCombineCustomPalette(t *testing.T) {
	records := []Artwork{
		art("A", "Foo", StyleFilled, Size20, filledSVG),
		art("B", "Foo", StyleTwoToned, Size20, twoTonedSVG),
	}

	p := svgdoc.NewPalette("none")
	assets := Combine(records, p, ledger.New(""))

	require.Len(t, assets, 1)
	assert.Contains(t, assets[0].Markup, "#838691")
}
