package svgdoc

import (
	"strings"

	"github.com/beevik/etree"
)

// Compact removes comments, <metadata> elements and formatting whitespace.
// The result has no prolog.
func Compact(markup string) (string, error) {
	d, err := Parse(markup)
	if err != nil {
		return "", err
	}

	compactElement(d.root())

	return d.String()
}

func compactElement(e *etree.Element) {
	for i := len(e.Child) - 1; i >= 0; i-- {
		switch t := e.Child[i].(type) {
		case *etree.Comment:
			e.RemoveChildAt(i)
		case *etree.CharData:
			if strings.TrimSpace(t.Data) == "" {
				e.RemoveChildAt(i)
			}
		case *etree.Element:
			if t.Tag == "metadata" {
				e.RemoveChildAt(i)
				continue
			}

			compactElement(t)
		}
	}
}
