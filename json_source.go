package reqparse

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")
)

// FromJSON flattens a JSON object into Values.
//
// Each top-level member becomes one key. Strings contribute their decoded
// text, numbers and booleans their literal, nested objects their raw JSON.
// An array contributes one value per element, which is how Append arguments
// receive lists from JSON clients. Null members and null elements are
// skipped, so they count as absent.
func FromJSON(data []byte) (Values, error) {
	if len(data) == 0 {
		return Values{}, nil
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrFailedToParseJSON
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: expected a JSON object, got %s", ErrFailedToParseJSON, root.Type)
	}

	values := make(Values)
	root.ForEach(func(key, member gjson.Result) bool {
		name := key.String()
		if member.IsArray() {
			for _, elem := range member.Array() {
				if s, ok := jsonScalar(elem); ok {
					values.Add(name, s)
				}
			}
			return true
		}
		if s, ok := jsonScalar(member); ok {
			values.Add(name, s)
		}
		return true
	})

	return values, nil
}

func jsonScalar(r gjson.Result) (string, bool) {
	switch r.Type {
	case gjson.Null:
		return "", false
	case gjson.String:
		return r.String(), true
	default:
		return r.Raw, true
	}
}
