package property

import (
	"encoding/json"
	"fmt"
)

// Bag is the flat, string-keyed store a test element persists its
// configuration in.
type Bag interface {
	// Clear removes every property.
	Clear()
	// Get returns the value stored under key, or def when the key is absent.
	Get(key, def string) string
	// Set stores value under key.
	Set(key, value string)
	// SetWithDefault stores value under key unless it equals def, in which
	// case the key is removed so only non-default values are persisted.
	SetWithDefault(key, value, def string)
	// Has reports whether key is present.
	Has(key string) bool
}

// Compile-time interface check.
var _ Bag = (*Map)(nil)

// Property is a single name/value pair.
type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Map is an insertion-ordered Bag. The zero value is ready to use.
type Map struct {
	order  []string
	values map[string]string
}

// NewMap creates an empty ordered property map
func NewMap() *Map {
	return &Map{values: make(map[string]string)}
}

// Clear removes every property.
func (m *Map) Clear() {
	m.order = nil
	m.values = make(map[string]string)
}

// Get returns the value for key, or def if it is not set.
func (m *Map) Get(key, def string) string {
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// Set stores value under key. An existing key keeps its position.
func (m *Map) Set(key, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[key]; !ok {
		m.order = append(m.order, key)
	}
	m.values[key] = value
}

// SetWithDefault stores value under key, or removes key when value equals def.
func (m *Map) SetWithDefault(key, value, def string) {
	if value == def {
		m.Remove(key)
		return
	}
	m.Set(key, value)
}

// Has reports whether key is set.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Remove deletes key if present.
func (m *Map) Remove(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of properties.
func (m *Map) Len() int {
	return len(m.order)
}

// Keys returns the property names in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.order))
	copy(keys, m.order)
	return keys
}

// Each calls fn for every property in insertion order.
func (m *Map) Each(fn func(name, value string)) {
	for _, k := range m.order {
		fn(k, m.values[k])
	}
}

// Properties returns the properties as an ordered slice.
func (m *Map) Properties() []Property {
	props := make([]Property, 0, len(m.order))
	m.Each(func(name, value string) {
		props = append(props, Property{Name: name, Value: value})
	})
	return props
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := NewMap()
	m.Each(c.Set)
	return c
}

// Equal reports whether both maps hold the same properties in the same order.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i, k := range m.order {
		if other.order[i] != k || other.values[k] != m.values[k] {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the map as an ordered array of name/value pairs.
func (m *Map) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Properties())
}

// UnmarshalJSON decodes an ordered array of name/value pairs.
func (m *Map) UnmarshalJSON(data []byte) error {
	var props []Property
	if err := json.Unmarshal(data, &props); err != nil {
		return fmt.Errorf("unmarshal properties: %w", err)
	}

	m.Clear()
	for _, p := range props {
		m.Set(p.Name, p.Value)
	}
	return nil
}

// ToMap returns an unordered copy of the properties, keyed by name.
func (m *Map) ToMap() map[string]string {
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
