package property

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_GetDefault(t *testing.T) {
	m := NewMap()

	assert.Equal(t, "fallback", m.Get("missing", "fallback"))
	assert.False(t, m.Has("missing"))

	m.Set("key", "")
	assert.True(t, m.Has("key"))
	assert.Equal(t, "", m.Get("key", "fallback"), "present empty value wins over default")
}

func TestMap_SetKeepsPosition(t *testing.T) {
	m := NewMap()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, "3", m.Get("a", ""))
}

func TestMap_SetWithDefault(t *testing.T) {
	tests := []struct {
		name    string
		initial map[string]string
		value   string
		def     string
		wantHas bool
	}{
		{name: "non-default value stored", value: "<amf/>", def: "", wantHas: true},
		{name: "default value not stored", value: "", def: "", wantHas: false},
		{name: "default value removes existing", initial: map[string]string{"k": "old"}, value: "", def: "", wantHas: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMap()
			for k, v := range tt.initial {
				m.Set(k, v)
			}

			m.SetWithDefault("k", tt.value, tt.def)

			assert.Equal(t, tt.wantHas, m.Has("k"))
			assert.Equal(t, tt.value, m.Get("k", tt.def))
		})
	}
}

func TestMap_Clear(t *testing.T) {
	m := NewMap()
	m.Set("a", "1")
	m.Set("b", "2")

	m.Clear()

	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
	assert.False(t, m.Has("a"))
}

func TestMap_Remove(t *testing.T) {
	m := NewMap()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	m.Remove("b")
	m.Remove("missing")

	assert.Equal(t, []string{"a", "c"}, m.Keys())
}

func TestMap_CloneIsIndependent(t *testing.T) {
	m := NewMap()
	m.Set("a", "1")

	c := m.Clone()
	c.Set("a", "2")
	c.Set("b", "3")

	assert.Equal(t, "1", m.Get("a", ""))
	assert.False(t, m.Has("b"))
	assert.False(t, m.Equal(c))
}

func TestMap_ZeroValue(t *testing.T) {
	var m Map
	m.Set("a", "1")
	assert.Equal(t, "1", m.Get("a", ""))
}

func TestMap_JSONKeepsOrder(t *testing.T) {
	m := NewMap()
	m.Set("z", "last-inserted-first")
	m.Set("a", "second")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"z","value":"last-inserted-first"},{"name":"a","value":"second"}]`, string(data))

	decoded := NewMap()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.True(t, m.Equal(decoded))
	assert.Equal(t, []string{"z", "a"}, decoded.Keys())
}

func TestMap_UnmarshalInvalid(t *testing.T) {
	m := NewMap()
	err := json.Unmarshal([]byte(`{"not":"an array"}`), m)
	assert.Error(t, err)
}
