package callhelpers

import (
	"cmp"
	"slices"
)

// Map is an insertion-ordered mapping from string keys to Values.
// A Map is not safe for concurrent mutation.
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{values: make(map[string]Value)}
}

// MapOf builds a map from alternating key/value pairs.
// A trailing key without a value is ignored.
func MapOf(pairs ...any) *Map {
	m := NewMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			continue
		}
		m.Set(k, FromAny(pairs[i+1]))
	}
	return m
}

// MapFromAny converts a plain map. Keys are inserted in sorted order since
// Go maps carry no order of their own.
func MapFromAny(src map[string]any) *Map {
	m := NewMap()
	for _, k := range sortedKeys(src) {
		m.Set(k, FromAny(src[k]))
	}
	return m
}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Get returns the value for key or Absent.
func (m *Map) Get(key string) Value {
	if m == nil {
		return Absent()
	}
	return m.values[key]
}

// Has reports whether key is set, even to an absent value.
func (m *Map) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Set assigns key, keeping the original position of existing keys.
func (m *Map) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Clone returns a shallow copy.
func (m *Map) Clone() *Map {
	out := NewMap()
	if m == nil {
		return out
	}
	out.keys = slices.Clone(m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// ToAny converts the map into map[string]any recursively.
func (m *Map) ToAny() map[string]any {
	out := make(map[string]any, m.Len())
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out[k] = m.values[k].Any()
	}
	return out
}

func sortedKeys[V any](src map[string]V) []string {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, cmp.Compare[string])
	return keys
}
