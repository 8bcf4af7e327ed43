package reqparse

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// ordered is an insertion-ordered string-keyed map. Lookups go through the
// index map, iteration follows keys.
type ordered[V any] struct {
	keys   []string
	values map[string]V
}

func newOrdered[V any](capacity int) ordered[V] {
	return ordered[V]{
		keys:   make([]string, 0, capacity),
		values: make(map[string]V, capacity),
	}
}

func (o *ordered[V]) set(key string, value V) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

func (o *ordered[V]) get(key string) (V, bool) {
	v, ok := o.values[key]
	return v, ok
}

func (o *ordered[V]) len() int {
	return len(o.keys)
}

func (o *ordered[V]) keyList() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

func (o *ordered[V]) toMap() map[string]V {
	out := make(map[string]V, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

func (o *ordered[V]) marshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

///////////////////////////////////////////////////////////////////////////////
// Namespace
///////////////////////////////////////////////////////////////////////////////

// Namespace maps argument names to parsed values, in the order the arguments
// were registered on the parser.
//
// Every declared argument that did not fail has an entry: its coerced value,
// its default, or nil when it was absent, optional and without default.
type Namespace struct {
	ordered[any]
}

func newNamespace(capacity int) *Namespace {
	return &Namespace{ordered: newOrdered[any](capacity)}
}

// Get returns the value stored under name.
func (ns *Namespace) Get(name string) (any, bool) {
	if ns == nil {
		return nil, false
	}
	return ns.get(name)
}

// Has reports whether name has an entry, even a nil one.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.Get(name)
	return ok
}

// Len returns the number of entries.
func (ns *Namespace) Len() int {
	if ns == nil {
		return 0
	}
	return ns.len()
}

// Keys returns the entry names in registration order.
func (ns *Namespace) Keys() []string {
	if ns == nil {
		return []string{}
	}
	return ns.keyList()
}

// Map returns a copy of the namespace as a plain map.
func (ns *Namespace) Map() map[string]any {
	if ns == nil {
		return map[string]any{}
	}
	return ns.toMap()
}

// String returns the value under name if it is a string, "" otherwise.
func (ns *Namespace) String(name string) string {
	v, _ := ns.Get(name)
	s, _ := v.(string)
	return s
}

// Int returns the value under name if it is an int, 0 otherwise.
func (ns *Namespace) Int(name string) int {
	v, _ := ns.Get(name)
	i, _ := v.(int)
	return i
}

// Bool returns the value under name if it is a bool, false otherwise.
func (ns *Namespace) Bool(name string) bool {
	v, _ := ns.Get(name)
	b, _ := v.(bool)
	return b
}

// UUID returns the value under name if it is a uuid.UUID, uuid.Nil otherwise.
func (ns *Namespace) UUID(name string) uuid.UUID {
	v, _ := ns.Get(name)
	id, _ := v.(uuid.UUID)
	return id
}

// Strings returns the string elements of an Append argument.
func (ns *Namespace) Strings(name string) []string {
	v, _ := ns.Get(name)
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the namespace as a JSON object in registration order.
func (ns *Namespace) MarshalJSON() ([]byte, error) {
	if ns == nil {
		return []byte("{}"), nil
	}
	return ns.marshalJSON()
}

///////////////////////////////////////////////////////////////////////////////
// Messages
///////////////////////////////////////////////////////////////////////////////

// Messages maps field names to client-facing messages.
type Messages struct {
	ordered[string]
}

func newMessages(capacity int) *Messages {
	return &Messages{ordered: newOrdered[string](capacity)}
}

// Get returns the message for name.
func (m *Messages) Get(name string) (string, bool) {
	if m == nil {
		return "", false
	}
	return m.get(name)
}

// Len returns the number of messages.
func (m *Messages) Len() int {
	if m == nil {
		return 0
	}
	return m.len()
}

// Keys returns the field names in report order.
func (m *Messages) Keys() []string {
	if m == nil {
		return []string{}
	}
	return m.keyList()
}

// Map returns a copy of the messages as a plain map.
func (m *Messages) Map() map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m.toMap()
}

// MarshalJSON encodes the messages as a JSON object in report order.
func (m *Messages) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return m.marshalJSON()
}
