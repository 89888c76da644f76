package ledger

import "fmt"

// Code identifies a class of pipeline failure.
// Thousands group the taxonomy: 1xxx style property, 2xxx size property, 3xxx source/content.
type Code int

const (
	// StylePropertyNotExisted - component name has no style= token
	StylePropertyNotExisted Code = 1000
	// StyleInvalidValue - style= token present but not a known style
	StyleInvalidValue Code = 1001
	// SizePropertyNotExisted - component name has no size= token
	SizePropertyNotExisted Code = 2000
	// SizeInvalidValue - size= token present but not a known size
	SizeInvalidValue Code = 2001

	ImageURLNotFound        Code = 3000
	SVGNotFound             Code = 3001
	ComponentNameDuplicated Code = 3002
	MissingFilledSVG        Code = 3003
	MissingTwoTonedSVG      Code = 3004
	CombineFail             Code = 3005
	ComponentSetNotFound    Code = 3006
)

var codeNames = map[Code]string{
	StylePropertyNotExisted: "STYLE_PROPERTY_NOT_EXISTED",
	StyleInvalidValue:       "STYLE_INVALID_VALUE",
	SizePropertyNotExisted:  "SIZE_PROPERTY_NOT_EXISTED",
	SizeInvalidValue:        "SIZE_INVALID_VALUE",
	ImageURLNotFound:        "IMAGE_URL_NOT_FOUND",
	SVGNotFound:             "SVG_NOT_FOUND",
	ComponentNameDuplicated: "COMPONENT_NAME_DUPLICATED",
	MissingFilledSVG:        "MISSING_FILLED_SVG",
	MissingTwoTonedSVG:      "MISSING_TWOTONED_SVG",
	CombineFail:             "COMBINE_FAIL",
	ComponentSetNotFound:    "COMPONENT_SET_NOT_FOUND",
}

var messages = map[Code]string{
	StylePropertyNotExisted: `Can't find Component Property 'Style'`,
	StyleInvalidValue:       `The value of Component Property 'Style' should be 'Filled', 'TwoToned', 'Outlined'`,
	SizePropertyNotExisted:  `Can't find Component Property 'Size'`,
	SizeInvalidValue:        `The value of Component Property 'Size' should be '20px', '24px'`,
	ImageURLNotFound:        `Can't find source url`,
	SVGNotFound:             `Can't find svg`,
	ComponentSetNotFound:    `Can't find icon name from parents' layer`,
	ComponentNameDuplicated: `There are duplicated naming for several svgs`,
	MissingFilledSVG:        `svg for 'Filled' style is missing`,
	MissingTwoTonedSVG:      `svg for 'TwoToned' style is missing`,
	CombineFail:             `Can't combine 'Filled' and 'TwoToned' svgs`,
}

// Name returns symbolic name of the code (e.g. COMBINE_FAIL).
func (c Code) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}

	return fmt.Sprintf("CODE_%d", int(c))
}

// Message returns a human-readable message for the code.
// Unknown codes yield an empty string.
func (c Code) Message() string {
	return messages[c]
}

// String renders the code the way it appears in reports: "[code] message".
func (c Code) String() string {
	msg := c.Message()
	if msg == "" {
		return ""
	}

	return fmt.Sprintf("[%d] %s", int(c), msg)
}
