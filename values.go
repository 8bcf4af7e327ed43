package reqparse

import (
	"slices"
	"sort"
)

// Values is the raw input of a parse: parameter names mapped to every value
// submitted for them, in submission order. It has the shape of url.Values.
//
// A key mapped to an empty slice counts as absent.
type Values map[string][]string

// Get returns the first value for key, or "".
func (v Values) Get(key string) string {
	vs := v[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Has reports whether key carries at least one value.
func (v Values) Has(key string) bool {
	return len(v[key]) > 0
}

// Add appends value to the values of key.
func (v Values) Add(key, value string) {
	v[key] = append(v[key], value)
}

// Set replaces the values of key with value.
func (v Values) Set(key, value string) {
	v[key] = []string{value}
}

// Keys returns the keys of v, sorted.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Merge appends every value of other after the values already held by v.
func (v Values) Merge(other Values) {
	for key, vs := range other {
		v[key] = append(v[key], vs...)
	}
}

// Clone returns a deep copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, vs := range v {
		out[key] = slices.Clone(vs)
	}
	return out
}
