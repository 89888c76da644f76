package figma

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidExport is returned when the file response is not valid JSON.
var ErrInvalidExport = errors.New("invalid file export")

// ParseFile decodes a file response body.
// Unlike encoding/json maps, the component order of the document is preserved.
func ParseFile(data []byte) (*FileExport, error) {
	// 0.0: validate
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidExport
	}

	doc := gjson.ParseBytes(data)
	result := &FileExport{
		Name:          doc.Get("name").String(),
		LastModified:  doc.Get("lastModified").String(),
		Version:       doc.Get("version").String(),
		ComponentSets: make(map[string]RawComponentSet),
	}

	// 1.0: components
	doc.Get("components").ForEach(func(id, value gjson.Result) bool {
		result.Components = append(result.Components, RawComponent{
			ID:             id.String(),
			Key:            value.Get("key").String(),
			Name:           value.Get("name").String(),
			Description:    value.Get("description").String(),
			ComponentSetID: value.Get("componentSetId").String(),
		})

		return true
	})

	// 2.0: component sets
	doc.Get("componentSets").ForEach(func(id, value gjson.Result) bool {
		result.ComponentSets[id.String()] = RawComponentSet{
			ID:          id.String(),
			Key:         value.Get("key").String(),
			Name:        value.Get("name").String(),
			Description: value.Get("description").String(),
		}

		return true
	})

	return result, nil
}
