package icon

import (
	"errors"
	"slices"
	"strings"

	"github.com/gucio321/figicons/pkg/ledger"
)

var (
	// ErrPropertyMissing - the component name has no token for the property.
	ErrPropertyMissing = errors.New("property not specified")
	// ErrInvalidValue - the token exists but its value is not allowed.
	ErrInvalidValue = errors.New("invalid property value")
)

// Property is the result of reading a single key=value token from a component name.
// Exactly one of Value and Err is meaningful.
type Property[T ~string] struct {
	Value T
	// Raw is the normalized token value (empty when missing).
	Raw string
	Err error
}

// OK reports whether the property holds a valid value.
func (p Property[T]) OK() bool {
	return p.Err == nil
}

// Properties are all properties encoded in a component name.
type Properties struct {
	Style Property[Style]
	Size  Property[Size]
	Motif Property[Motif]
}

// ParseProperties reads style=, size= and mode= tokens from a component name
// like "Style=Two-Toned, Size=20px, Mode=Light". Keys are case-insensitive;
// dashes are stripped from values.
func ParseProperties(name string) Properties {
	tokens := strings.Split(name, ",")

	return Properties{
		Style: parseProperty(tokens, "style", StyleFilled, StyleOutlined, StyleTwoToned),
		Size:  parseProperty(tokens, "size", Size20, Size24),
		Motif: parseProperty(tokens, "mode", MotifLight, MotifDark),
	}
}

// Code returns the ledger code of the first invalid required property (style, then size).
func (p Properties) Code() (code ledger.Code, failed bool) {
	switch {
	case errors.Is(p.Style.Err, ErrPropertyMissing):
		return ledger.StylePropertyNotExisted, true
	case errors.Is(p.Style.Err, ErrInvalidValue):
		return ledger.StyleInvalidValue, true
	case errors.Is(p.Size.Err, ErrPropertyMissing):
		return ledger.SizePropertyNotExisted, true
	case errors.Is(p.Size.Err, ErrInvalidValue):
		return ledger.SizeInvalidValue, true
	}

	return 0, false
}

func parseProperty[T ~string](tokens []string, key string, allowed ...T) Property[T] {
	raw, found := lookup(tokens, key)
	if !found || raw == "" {
		return Property[T]{Err: ErrPropertyMissing}
	}

	if !slices.Contains(allowed, T(raw)) {
		return Property[T]{Raw: raw, Err: ErrInvalidValue}
	}

	return Property[T]{Value: T(raw), Raw: raw}
}

// lookup finds the first key= token and returns its normalized value.
func lookup(tokens []string, key string) (value string, found bool) {
	prefix := key + "="
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if !strings.HasPrefix(strings.ToLower(token), prefix) {
			continue
		}

		value = token[len(prefix):]
		value = strings.ReplaceAll(value, "-", "")
		value = strings.ToLower(strings.TrimSpace(value))

		return value, true
	}

	return "", false
}
