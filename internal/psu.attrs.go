package internal

import (
	"fmt"
	"strings"
)

// Attr is one parsed attribute: a name and its raw string value.
type Attr struct {
	Name  string
	Value string
}

// AttrList is an ordered attribute mapping. Order follows first appearance
// in the source; a repeated name keeps its position and takes the new value.
type AttrList []Attr

// Get returns the value for name and whether it is present.
func (a AttrList) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether name is present.
func (a AttrList) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Without returns a copy of the list with the named attributes removed.
func (a AttrList) Without(names ...string) AttrList {
	if len(a) == 0 {
		return nil
	}
	out := make(AttrList, 0, len(a))
	for _, attr := range a {
		drop := false
		for _, name := range names {
			if attr.Name == name {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, attr)
		}
	}
	return out
}

// ParseAttrList parses an inline attribute string into an ordered list.
// The grammar is zero or more of ident="quoted" or ident=bare, separated
// by whitespace and commas; a bare value runs to the next whitespace,
// comma, or double quote. Text that matches neither form is skipped, so
// parsing never fails.
func ParseAttrList(s string) AttrList {
	var attrs AttrList
	i := 0
	for i < len(s) {
		start := i
		name, value, next, ok := scanAttr(s, i)
		if !ok {
			i = start + 1
			continue
		}
		attrs = setAttr(attrs, name, value)
		i = next
	}
	return attrs
}

// scanAttr attempts to read one ident=value pair starting at or after pos.
func scanAttr(s string, pos int) (name, value string, next int, ok bool) {
	i := pos
	for i < len(s) && isAttrSeparator(s[i]) {
		i++
	}
	if i >= len(s) {
		return "", "", len(s), false
	}

	nameStart := i
	for i < len(s) && isWordChar(s[i]) {
		i++
	}
	if i == nameStart || i >= len(s) || s[i] != CharEquals {
		return "", "", 0, false
	}
	name = s[nameStart:i]
	i++ // consume '='

	if i < len(s) && s[i] == CharDoubleQuote {
		i++
		valueStart := i
		for i < len(s) && s[i] != CharDoubleQuote {
			i++
		}
		if i >= len(s) {
			return "", "", 0, false
		}
		value = s[valueStart:i]
		return name, value, i + 1, true
	}

	valueStart := i
	for i < len(s) && !isAttrSeparator(s[i]) && s[i] != CharDoubleQuote {
		i++
	}
	if i == valueStart {
		return "", "", 0, false
	}
	return name, s[valueStart:i], i, true
}

// setAttr stores a value, updating in place when the name already exists.
func setAttr(attrs AttrList, name, value string) AttrList {
	for i := range attrs {
		if attrs[i].Name == name {
			attrs[i].Value = value
			return attrs
		}
	}
	return append(attrs, Attr{Name: name, Value: value})
}

// isAttrSeparator reports whether c separates attribute pairs.
func isAttrSeparator(c byte) bool {
	return c == CharSpace || c == CharTab || c == CharComma || c == CharCarriageRet
}

// RenderAttrs renders the list as `a="1" b="2"` with every value passed
// through the interpolator. An empty list renders as the empty string.
func RenderAttrs(attrs AttrList, interpolate func(string) string) string {
	if len(attrs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		value := attr.Value
		if interpolate != nil {
			value = interpolate(value)
		}
		parts = append(parts, fmt.Sprintf(FmtAttr, attr.Name, value))
	}
	return strings.Join(parts, " ")
}
