package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttrList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AttrList
	}{
		{"empty", "", nil},
		{"single quoted", `class="big"`, AttrList{{Name: "class", Value: "big"}}},
		{"multiple quoted", `id="a" class="b"`, AttrList{{Name: "id", Value: "a"}, {Name: "class", Value: "b"}}},
		{"bare value", "full_width=true", AttrList{{Name: "full_width", Value: "true"}}},
		{"mixed quoted and bare", `class="hero" hidden=yes`, AttrList{{Name: "class", Value: "hero"}, {Name: "hidden", Value: "yes"}}},
		{"comma separated", `a="1", b="2"`, AttrList{{Name: "a", Value: "1"}, {Name: "b", Value: "2"}}},
		{"quoted value with spaces", `alt="a red car"`, AttrList{{Name: "alt", Value: "a red car"}}},
		{"repeated name keeps position takes last", `a="1" b="2" a="3"`, AttrList{{Name: "a", Value: "3"}, {Name: "b", Value: "2"}}},
		{"garbage is skipped", `??? class="ok"`, AttrList{{Name: "class", Value: "ok"}}},
		{"name without value is skipped", `loose class="ok"`, AttrList{{Name: "class", Value: "ok"}}},
		{"unterminated quote drops the pair", `class="ok`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAttrList(tt.input))
		})
	}
}

func TestAttrList_Access(t *testing.T) {
	attrs := ParseAttrList(`id="x" class="y" data=raw`)

	value, ok := attrs.Get("class")
	require.True(t, ok)
	assert.Equal(t, "y", value)

	_, ok = attrs.Get("missing")
	assert.False(t, ok)

	assert.True(t, attrs.Has("data"))

	trimmed := attrs.Without("class", "data")
	assert.Equal(t, AttrList{{Name: "id", Value: "x"}}, trimmed)
	// Original list is untouched.
	assert.Len(t, attrs, 3)
}

func TestRenderAttrs(t *testing.T) {
	store := NewStore()
	store.Set("user", NewStringValue("Bob"))

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty renders empty", "", ""},
		{"single", `class="big"`, `class="big"`},
		{"ordered output", `id="a" class="b"`, `id="a" class="b"`},
		{"values interpolated", `alt="for ${user}"`, `alt="for Bob"`},
		{"bare value quoted on output", "full_width=true", `full_width="true"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderAttrs(ParseAttrList(tt.input), store.Interpolate))
		})
	}
}
