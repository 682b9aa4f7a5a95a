package internal

import (
	"math"
	"strconv"
	"strings"
)

// Value is a stored variable value: a tagged union over String, Bool,
// Number, and Undefined. Number remembers whether it was written as an
// integer so stringification can tell 5 from 5.0.
type Value struct {
	Kind    ValueKind
	Str     string
	Bool    bool
	Num     float64
	Integer bool
}

// NewStringValue creates a String value
func NewStringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// NewBoolValue creates a Bool value
func NewBoolValue(b bool) Value {
	return Value{Kind: ValueBool, Bool: b}
}

// NewIntValue creates an integral Number value
func NewIntValue(n float64) Value {
	return Value{Kind: ValueNumber, Num: n, Integer: true}
}

// NewFloatValue creates a fractional Number value
func NewFloatValue(n float64) Value {
	return Value{Kind: ValueNumber, Num: n}
}

// NewUndefinedValue creates the Undefined marker value
func NewUndefinedValue() Value {
	return Value{Kind: ValueUndefined}
}

// String renders the value the way interpolation and comparisons see it.
// Integral numbers drop the decimal part entirely; whole-valued fractional
// numbers keep one decimal so a literal 5.0 stays 5.0.
func (v Value) String() string {
	switch v.Kind {
	case ValueString:
		return v.Str
	case ValueBool:
		if v.Bool {
			return StrTrue
		}
		return StrFalse
	case ValueNumber:
		if v.Integer {
			return strconv.FormatFloat(v.Num, 'f', -1, 64)
		}
		if v.Num == math.Trunc(v.Num) && !math.IsInf(v.Num, 0) {
			return strconv.FormatFloat(v.Num, 'f', 1, 64)
		}
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	default:
		return UndefinedString
	}
}

// Truthy reports the value's boolean weight: Undefined, false, the string
// "false" in any case, zero, and the empty string are false.
func (v Value) Truthy() bool {
	switch v.Kind {
	case ValueString:
		return v.Str != "" && !strings.EqualFold(v.Str, StrFalse)
	case ValueBool:
		return v.Bool
	case ValueNumber:
		return v.Num != 0
	default:
		return false
	}
}

// ClassifyExpr classifies a set expression as a direct literal. The order
// is fixed: quoted string, boolean word, numeric literal. Anything else is
// left to the restricted expression evaluator and reported as unhandled.
func ClassifyExpr(expr string) (Value, bool) {
	if len(expr) >= 1 && expr[0] == CharDoubleQuote && expr[len(expr)-1] == CharDoubleQuote {
		return NewStringValue(strings.Trim(expr, string(CharDoubleQuote))), true
	}
	if strings.EqualFold(expr, StrTrue) {
		return NewBoolValue(true), true
	}
	if strings.EqualFold(expr, StrFalse) {
		return NewBoolValue(false), true
	}
	if isNumericLiteral(expr) {
		n, err := strconv.ParseFloat(expr, 64)
		if err != nil {
			return NewUndefinedValue(), false
		}
		if strings.ContainsRune(expr, CharDot) {
			return NewFloatValue(n), true
		}
		return NewIntValue(n), true
	}
	return NewUndefinedValue(), false
}

// isNumericLiteral reports whether s matches an optional minus, one or
// more digits, and an optional fraction of one or more digits.
func isNumericLiteral(s string) bool {
	i := 0
	if i < len(s) && s[i] == CharMinus {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if digits == 0 {
		return false
	}
	if i == len(s) {
		return true
	}
	if s[i] != CharDot {
		return false
	}
	i++
	fraction := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		fraction++
	}
	return fraction > 0 && i == len(s)
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
