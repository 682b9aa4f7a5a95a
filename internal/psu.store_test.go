package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGet(t *testing.T) {
	store := NewStore()

	_, ok := store.Get("missing")
	assert.False(t, ok)

	store.Set("name", NewStringValue("Alice"))
	v, ok := store.Get("name")
	require.True(t, ok)
	assert.Equal(t, "Alice", v.String())

	// Overwrite keeps the latest value.
	store.Set("name", NewStringValue("Bob"))
	v, _ = store.Get("name")
	assert.Equal(t, "Bob", v.String())
	assert.Equal(t, 1, store.Len())
}

func TestStore_Names(t *testing.T) {
	store := NewStore()
	store.Set("zeta", NewIntValue(1))
	store.Set("alpha", NewIntValue(2))
	store.Set("mid", NewIntValue(3))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, store.Names())
}

func TestStore_Interpolate(t *testing.T) {
	store := NewStore()
	store.Set("user", NewStringValue("Bob"))
	store.Set("count", NewIntValue(3))
	store.Set("price", NewFloatValue(2))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no markers", "plain text", "plain text"},
		{"single marker", "Hello ${user}", "Hello Bob"},
		{"multiple markers", "${user} has ${count}", "Bob has 3"},
		{"undefined variable", "Hi ${ghost}", "Hi UNDEFINED_VAR_ghost"},
		{"number formatting", "total ${price}", "total 2.0"},
		{"incomplete marker left verbatim", "cost: ${price", "cost: ${price"},
		{"empty marker left verbatim", "${}", "${}"},
		{"dollar without brace", "$user", "$user"},
		{"adjacent markers", "${user}${user}", "BobBob"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, store.Interpolate(tt.input))
		})
	}
}
