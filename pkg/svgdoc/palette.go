package svgdoc

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

//go:embed palettes.json
var palettes []byte

// ErrUnknownPalette is returned by GetPalette for names not in palettes.json.
var ErrUnknownPalette = errors.New("unknown palette")

// Rule replaces a literal fill color with currentColor and a CSS class.
type Rule struct {
	Fill  string `json:"fill"`
	Class string `json:"class"`

	re *regexp.Regexp
}

// Palette is a named set of recolor rules.
type Palette struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rules       []Rule `json:"rules"`
}

func decodePalettes() ([]Palette, error) {
	var result []Palette
	if err := json.Unmarshal(palettes, &result); err != nil {
		return nil, err
	}

	for i := range result {
		result[i].compile()
	}

	return result, nil
}

// GetPalette returns the embedded palette called name.
func GetPalette(name string) (*Palette, error) {
	all, err := decodePalettes()
	if err != nil {
		return nil, fmt.Errorf("decoding palettes: %w", err)
	}

	for _, p := range all {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
}

// DefaultPalette returns the "default" palette.
func DefaultPalette() *Palette {
	p, err := GetPalette("default")
	if err != nil {
		panic(err)
	}

	return p
}

// NewPalette builds a palette from rules.
func NewPalette(name string, rules ...Rule) *Palette {
	p := &Palette{Name: name, Rules: rules}
	p.compile()

	return p
}

func (p *Palette) compile() {
	for i := range p.Rules {
		p.Rules[i].re = regexp.MustCompile(`(?i)fill="` + regexp.QuoteMeta(p.Rules[i].Fill) + `"`)
	}
}

// Recolor textually replaces every fill="<rule fill>" (case-insensitive)
// with fill="currentColor" class="<rule class>".
func (p *Palette) Recolor(markup string) string {
	for _, r := range p.Rules {
		markup = r.re.ReplaceAllLiteralString(markup, fmt.Sprintf(`fill="currentColor" class="%s"`, r.Class))
	}

	return markup
}
