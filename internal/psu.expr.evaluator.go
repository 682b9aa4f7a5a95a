package internal

import "fmt"

// ExprEvaluator evaluates set expression AST nodes against a variable
// store. It has read access to existing variables and nothing else: no
// functions, no host state.
type ExprEvaluator struct {
	vars *Store
}

// NewExprEvaluator creates a new expression evaluator
func NewExprEvaluator(vars *Store) *ExprEvaluator {
	return &ExprEvaluator{vars: vars}
}

// Evaluate evaluates an expression and returns the result
func (e *ExprEvaluator) Evaluate(node ExprNode) (Value, error) {
	if node == nil {
		return NewUndefinedValue(), NewExprEvalError(ErrMsgExprNilNode, "")
	}

	switch n := node.(type) {
	case *LiteralNode:
		return n.Value, nil

	case *IdentifierNode:
		return e.evaluateIdentifier(n)

	case *UnaryNode:
		return e.evaluateUnary(n)

	case *BinaryNode:
		return e.evaluateBinary(n)

	default:
		return NewUndefinedValue(), NewExprEvalError(ErrMsgExprUnknownNodeType, fmt.Sprintf("%T", node))
	}
}

// evaluateIdentifier looks up a variable from the store. An unset name is
// an evaluation failure; a name set to Undefined passes through so that
// copying a poisoned variable does not raise a second warning.
func (e *ExprEvaluator) evaluateIdentifier(node *IdentifierNode) (Value, error) {
	if e.vars == nil {
		return NewUndefinedValue(), NewExprEvalError(ErrMsgExprNoStore, node.Name)
	}

	v, ok := e.vars.Get(node.Name)
	if !ok {
		return NewUndefinedValue(), NewExprEvalError(ErrMsgExprUndefinedName, node.Name)
	}
	return v, nil
}

// evaluateUnary evaluates a unary minus
func (e *ExprEvaluator) evaluateUnary(node *UnaryNode) (Value, error) {
	right, err := e.Evaluate(node.Right)
	if err != nil {
		return NewUndefinedValue(), err
	}

	if node.Op != ExprTokenTypeMinus {
		return NewUndefinedValue(), NewExprEvalError(ErrMsgExprUnknownOperator, string(node.Op))
	}
	if right.Kind != ValueNumber {
		return NewUndefinedValue(), NewExprEvalError(ErrMsgExprTypeMismatch,
			fmt.Sprintf(ErrFmtExprNegate, right.Kind))
	}

	return Value{Kind: ValueNumber, Num: -right.Num, Integer: right.Integer}, nil
}

// evaluateBinary evaluates an arithmetic operation. Two numbers work with
// all four operators; two strings work with + only. Division of two
// integers yields a fractional number, matching how the numbers stringify.
func (e *ExprEvaluator) evaluateBinary(node *BinaryNode) (Value, error) {
	left, err := e.Evaluate(node.Left)
	if err != nil {
		return NewUndefinedValue(), err
	}

	right, err := e.Evaluate(node.Right)
	if err != nil {
		return NewUndefinedValue(), err
	}

	if left.Kind == ValueString && right.Kind == ValueString && node.Op == ExprTokenTypePlus {
		return NewStringValue(left.Str + right.Str), nil
	}

	if left.Kind != ValueNumber || right.Kind != ValueNumber {
		return NewUndefinedValue(), NewExprEvalError(ErrMsgExprTypeMismatch,
			fmt.Sprintf(ErrFmtExprOperands, node.Op, left.Kind, right.Kind))
	}

	integer := left.Integer && right.Integer
	switch node.Op {
	case ExprTokenTypePlus:
		return Value{Kind: ValueNumber, Num: left.Num + right.Num, Integer: integer}, nil
	case ExprTokenTypeMinus:
		return Value{Kind: ValueNumber, Num: left.Num - right.Num, Integer: integer}, nil
	case ExprTokenTypeStar:
		return Value{Kind: ValueNumber, Num: left.Num * right.Num, Integer: integer}, nil
	case ExprTokenTypeSlash:
		if right.Num == 0 {
			return NewUndefinedValue(), NewExprEvalError(ErrMsgExprDivisionByZero, "")
		}
		return Value{Kind: ValueNumber, Num: left.Num / right.Num, Integer: false}, nil
	default:
		return NewUndefinedValue(), NewExprEvalError(ErrMsgExprUnknownOperator, string(node.Op))
	}
}

// ExprEvalError represents an expression evaluation error
type ExprEvalError struct {
	Message string
	Detail  string
}

// NewExprEvalError creates a new expression evaluation error
func NewExprEvalError(message, detail string) *ExprEvalError {
	return &ExprEvalError{
		Message: message,
		Detail:  detail,
	}
}

// Error implements the error interface
func (e *ExprEvalError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

// Expression evaluator error messages
const (
	ErrMsgExprNilNode         = "nil expression node"
	ErrMsgExprUnknownNodeType = "unknown expression node type"
	ErrMsgExprNoStore         = "no variable store available"
	ErrMsgExprUndefinedName   = "undefined variable"
	ErrMsgExprUnknownOperator = "unknown operator"
	ErrMsgExprTypeMismatch    = "type mismatch"
	ErrMsgExprDivisionByZero  = "division by zero"
)

// Expression evaluator error detail formats
const (
	ErrFmtExprNegate   = "cannot negate a %s value"
	ErrFmtExprOperands = "cannot apply %s to %s and %s"
)

// EvaluateSetExpression parses and evaluates a set expression string
// against the store. This is the restricted fallback for set commands
// whose expression is not a direct literal.
func EvaluateSetExpression(expr string, vars *Store) (Value, error) {
	node, err := ParseExpression(expr)
	if err != nil {
		return NewUndefinedValue(), err
	}

	evaluator := NewExprEvaluator(vars)
	return evaluator.Evaluate(node)
}
