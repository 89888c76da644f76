// Package icon turns design-file components into combined icon assets:
// classification, artwork fetching, sanitization, grouping and combination.
package icon

import "fmt"

// Style is a visual treatment of an icon.
type Style string

const (
	StyleFilled   Style = "filled"
	StyleOutlined Style = "outlined"
	StyleTwoToned Style = "twotoned"
)

// Size is a pixel size of an icon.
type Size string

const (
	Size20 Size = "20px"
	Size24 Size = "24px"
)

// Motif is a color scheme variant.
type Motif string

const (
	MotifLight Motif = "light"
	MotifDark  Motif = "dark"
)

// NavPrefix is prepended to names of 24px icons.
const NavPrefix = "Nav"

// Descriptor is a validated icon identity derived from one component.
type Descriptor struct {
	// ID is the component node id.
	ID string
	// Name is the canonical icon name (no whitespace, dashes, parentheses or slashes).
	Name  string
	Style Style
	Size  Size
	Motif Motif
	// SetName and ComponentName are the raw labels the descriptor was derived from.
	SetName       string
	ComponentName string
}

// LedgerName implements ledger.Subject.
func (d Descriptor) LedgerName() string { return d.Name }

// LedgerID implements ledger.Subject.
func (d Descriptor) LedgerID() string { return d.ID }

// GroupKey returns the output name of the group d belongs to.
func (d Descriptor) GroupKey() string {
	return GroupKey(d.Name, d.Size)
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", d.Name, d.Style, d.Size, d.Motif)
}

// identity is what must be unique among sanitized artwork.
type identity struct {
	name  string
	style Style
	size  Size
}

func (d Descriptor) identity() identity {
	return identity{d.Name, d.Style, d.Size}
}

// GroupKey maps a name and size to the output name: 20px icons keep the bare name,
// 24px icons get NavPrefix.
func GroupKey(name string, size Size) string {
	if size == Size20 {
		return name
	}

	return NavPrefix + name
}

// Artwork is a Descriptor with its downloaded vector markup.
type Artwork struct {
	Descriptor
	Markup string
}

// Asset is a combined icon ready to be written as Name.svg.
type Asset struct {
	Name   string
	Markup string
}

// FileName returns the output file name of the asset.
func (a Asset) FileName() string {
	return a.Name + ".svg"
}
