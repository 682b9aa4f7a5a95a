package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{"string", NewStringValue("hello"), "hello"},
		{"bool true", NewBoolValue(true), "true"},
		{"bool false", NewBoolValue(false), "false"},
		{"integral number", NewIntValue(5), "5"},
		{"integral negative", NewIntValue(-12), "-12"},
		{"whole fractional keeps decimal", NewFloatValue(2), "2.0"},
		{"fractional", NewFloatValue(3.14), "3.14"},
		{"undefined", NewUndefinedValue(), "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}

func TestValue_Truthy(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected bool
	}{
		{"non-empty string", NewStringValue("yes"), true},
		{"empty string", NewStringValue(""), false},
		{"string false lowercase", NewStringValue("false"), false},
		{"string false mixed case", NewStringValue("False"), false},
		{"bool true", NewBoolValue(true), true},
		{"bool false", NewBoolValue(false), false},
		{"nonzero number", NewIntValue(7), true},
		{"zero", NewIntValue(0), false},
		{"undefined", NewUndefinedValue(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.Truthy())
		})
	}
}

func TestClassifyExpr(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		expected   string
		classified bool
	}{
		{"quoted string", `"hello"`, "hello", true},
		{"quoted with spaces", `"hello world"`, "hello world", true},
		{"bool true", "true", "true", true},
		{"bool true uppercase", "TRUE", "true", true},
		{"bool false", "false", "false", true},
		{"integer", "42", "42", true},
		{"negative integer", "-3", "-3", true},
		{"float", "2.5", "2.5", true},
		{"whole float keeps decimal", "5.0", "5.0", true},
		{"arithmetic is not a literal", "2 + 3", "", false},
		{"identifier is not a literal", "other", "", false},
		{"trailing dot is not numeric", "5.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := ClassifyExpr(tt.expr)

			require.Equal(t, tt.classified, ok)
			if tt.classified {
				assert.Equal(t, tt.expected, value.String())
			}
		})
	}
}
