// Package svgdoc is a narrow model of standalone SVG documents.
// It knows how to parse a root with children, append children and serialize the root.
package svgdoc

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"
)

// ErrNoRoot is returned for markup without an <svg> root element.
var ErrNoRoot = errors.New("no <svg> root element")

// Document is a parsed SVG document.
type Document struct {
	doc *etree.Document
}

// Parse parses markup as a standalone SVG document.
func Parse(markup string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	if root := doc.Root(); root == nil || root.Tag != "svg" {
		return nil, ErrNoRoot
	}

	return &Document{doc: doc}, nil
}

func (d *Document) root() *etree.Element {
	return d.doc.Root()
}

// Attr returns value of root attribute key (empty if absent).
func (d *Document) Attr(key string) string {
	return d.root().SelectAttrValue(key, "")
}

// ChildCount returns number of child nodes (elements, text, comments) of the root.
func (d *Document) ChildCount() int {
	return len(d.root().Child)
}

// ChildTags returns tags of root child elements in order.
func (d *Document) ChildTags() []string {
	children := d.root().ChildElements()
	result := make([]string, len(children))
	for i, c := range children {
		result[i] = c.Tag
	}

	return result
}

// Append moves all root children of other to the end of d's root.
// Namespace declarations of other's root that d's root lacks are copied over.
// other is left with an empty root.
func (d *Document) Append(other *Document) {
	for i := range other.root().Attr {
		a := &other.root().Attr[i]
		if !isNamespaceDecl(a) || d.root().SelectAttr(fullKey(a)) != nil {
			continue
		}

		d.root().CreateAttr(fullKey(a), a.Value)
	}

	children := make([]etree.Token, len(other.root().Child))
	copy(children, other.root().Child)

	for _, c := range children {
		d.root().AddChild(c)
	}
}

func isNamespaceDecl(a *etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

func fullKey(a *etree.Attr) string {
	if a.Space == "" {
		return a.Key
	}

	return a.Space + ":" + a.Key
}

// ElementCount returns number of child elements of the root.
func (d *Document) ElementCount() int {
	return len(d.root().ChildElements())
}

// String serializes the root element (without prolog).
func (d *Document) String() (string, error) {
	out := etree.NewDocument()
	out.SetRoot(d.root().Copy())

	result, err := out.WriteToString()
	if err != nil {
		return "", fmt.Errorf("serializing svg: %w", err)
	}

	return result, nil
}

// Merge appends the inner content of overlay to base and returns the serialized base root.
// Later children render on top, so overlay ends up above base.
func Merge(base, overlay string) (string, error) {
	baseDoc, err := Parse(base)
	if err != nil {
		return "", fmt.Errorf("base: %w", err)
	}

	overlayDoc, err := Parse(overlay)
	if err != nil {
		return "", fmt.Errorf("overlay: %w", err)
	}

	baseDoc.Append(overlayDoc)

	return baseDoc.String()
}
