package internal

import (
	"sort"
	"strings"
)

// Store holds the variables of one interpreter run.
type Store struct {
	values map[string]Value
}

// NewStore creates an empty variable store
func NewStore() *Store {
	return &Store{values: make(map[string]Value)}
}

// Set stores a value under name, overwriting any previous value.
func (s *Store) Set(name string, v Value) {
	s.values[name] = v
}

// Get returns the value stored under name and whether it exists.
func (s *Store) Get(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Names returns all defined variable names, sorted.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined variables.
func (s *Store) Len() int {
	return len(s.values)
}

// Interpolate replaces every ${name} occurrence in text with the
// stringified stored value, or UNDEFINED_VAR_name when the name was never
// set. Markers that do not form a complete ${ident} are left verbatim.
// Interpolation never fails.
func (s *Store) Interpolate(text string) string {
	if !strings.ContainsRune(text, CharDollar) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	i := 0
	for i < len(text) {
		if text[i] == CharDollar && i+1 < len(text) && text[i+1] == CharOpenBrace {
			j := i + 2
			for j < len(text) && isWordChar(text[j]) {
				j++
			}
			if j > i+2 && j < len(text) && text[j] == CharCloseBrace {
				name := text[i+2 : j]
				if v, ok := s.values[name]; ok {
					sb.WriteString(v.String())
				} else {
					sb.WriteString(UndefinedVarPrefix)
					sb.WriteString(name)
				}
				i = j + 1
				continue
			}
		}
		sb.WriteByte(text[i])
		i++
	}
	return sb.String()
}
