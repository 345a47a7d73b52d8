package allspaceslib

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Space is one entry of `yabai -m query --spaces`.
// Every field is optional; absent keys stay nil.
type Space struct {
	ID      *int    `mapstructure:"id"`
	Index   *int    `mapstructure:"index"`
	Label   *string `mapstructure:"label"`
	Display *int    `mapstructure:"display"`
	// Older yabai releases report "focused" as 0/1, newer ones report "has-focus".
	Focused  *bool `mapstructure:"focused"`
	HasFocus *bool `mapstructure:"has-focus"`
}

func (s Space) IsFocused() bool {
	return (s.Focused != nil && *s.Focused) || (s.HasFocus != nil && *s.HasFocus)
}

// FocusedIndex returns the index of the first focused space, or -1.
func FocusedIndex(spaces []Space) int {
	for _, s := range spaces {
		if s.Index != nil && s.IsFocused() {
			return *s.Index
		}
	}
	return -1
}

// DecodeSpaces parses yabai's JSON output. Unknown keys are ignored but known keys
// with the wrong type are reported with the position of the offending space.
func DecodeSpaces(data []byte) ([]Space, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing spaces: %w", err)
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("parsing spaces: got %s, expected an array", jsonKind(raw))
	}

	spaces := make([]Space, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("parsing space %d: got %s, expected an object", i, jsonKind(item))
		}

		var s Space
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: spaceFieldHook,
			Result:     &s,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(obj); err != nil {
			return nil, fmt.Errorf("parsing space %d: %w", i, err)
		}

		spaces = append(spaces, s)
	}

	return spaces, nil
}

// JSON numbers arrive as float64. Accept 0/1 for booleans and reject fractional integers,
// which mapstructure would otherwise truncate.
func spaceFieldHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	f, ok := data.(float64)
	if !ok {
		return data, nil
	}

	switch to.Kind() {
	case reflect.Bool:
		switch f {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
		return nil, fmt.Errorf("expected a boolean, got %v", f)
	case reflect.Int:
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("expected an integer, got %v", f)
		}
	}

	return data, nil
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case []interface{}:
		return "an array"
	case map[string]interface{}:
		return "an object"
	}
	return fmt.Sprintf("%T", v)
}
