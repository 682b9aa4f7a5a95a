package internal

import "strings"

// EvalCondition resolves an if condition to a boolean. Forms are tried in
// order: equality against a variable, inequality, a bare true/false
// literal, and finally variable truthiness. The left operand of == and !=
// is always a variable name; comparison is case-insensitive on the
// stringified value. Unknown names are false; nothing here ever fails.
func EvalCondition(cond string, vars *Store) bool {
	if strings.Contains(cond, CondOpEq) {
		left, right := splitCondition(cond, CondOpEq)
		return compareCondition(left, right, vars)
	}
	if strings.Contains(cond, CondOpNeq) {
		left, right := splitCondition(cond, CondOpNeq)
		return !compareCondition(left, right, vars)
	}
	if strings.EqualFold(cond, StrTrue) {
		return true
	}
	if strings.EqualFold(cond, StrFalse) {
		return false
	}
	v, ok := vars.Get(cond)
	if !ok {
		return false
	}
	return v.Truthy()
}

// splitCondition splits on the first occurrence of op and trims both sides.
func splitCondition(cond, op string) (left, right string) {
	parts := strings.SplitN(cond, op, 2)
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

// compareCondition resolves the left side as a variable and the right side
// as a quoted or bare literal, then compares case-insensitively.
func compareCondition(left, right string, vars *Store) bool {
	leftValue := UndefinedString
	if v, ok := vars.Get(left); ok {
		leftValue = v.String()
	}

	if len(right) >= 1 && right[0] == CharDoubleQuote && right[len(right)-1] == CharDoubleQuote {
		right = strings.Trim(right, string(CharDoubleQuote))
	}

	return strings.EqualFold(leftValue, right)
}
