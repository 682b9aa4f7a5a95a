package internal

import (
	"fmt"
	"strings"
)

// ExprTokenType represents the type of an expression token
type ExprTokenType string

// Expression token type constants
const (
	ExprTokenTypeIdentifier ExprTokenType = "IDENT"
	ExprTokenTypeString     ExprTokenType = "STRING"
	ExprTokenTypeNumber     ExprTokenType = "NUMBER"
	ExprTokenTypeLParen     ExprTokenType = "LPAREN"
	ExprTokenTypeRParen     ExprTokenType = "RPAREN"

	// Operators
	ExprTokenTypePlus  ExprTokenType = "PLUS"
	ExprTokenTypeMinus ExprTokenType = "MINUS"
	ExprTokenTypeStar  ExprTokenType = "STAR"
	ExprTokenTypeSlash ExprTokenType = "SLASH"

	ExprTokenTypeEOF ExprTokenType = "EOF"
)

// Expression operator strings
const (
	ExprOpPlus  = "+"
	ExprOpMinus = "-"
	ExprOpStar  = "*"
	ExprOpSlash = "/"
)

// ExprToken represents a token in a set expression
type ExprToken struct {
	Type    ExprTokenType
	Value   string
	Pos     int
	Num     float64
	Integer bool
}

// String returns the string representation of the token
func (t ExprToken) String() string {
	if t.Value != "" {
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
	return string(t.Type)
}

// ExprTokenizer tokenizes set expression strings
type ExprTokenizer struct {
	input string
	pos   int
	len   int
}

// NewExprTokenizer creates a new expression tokenizer
func NewExprTokenizer(input string) *ExprTokenizer {
	return &ExprTokenizer{
		input: input,
		pos:   0,
		len:   len(input),
	}
}

// Tokenize converts the input string into a slice of tokens
func (t *ExprTokenizer) Tokenize() ([]ExprToken, error) {
	var tokens []ExprToken

	for {
		t.skipWhitespace()

		if t.pos >= t.len {
			tokens = append(tokens, ExprToken{Type: ExprTokenTypeEOF, Pos: t.pos})
			break
		}

		token, err := t.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}

// nextToken reads the next token from the input
func (t *ExprTokenizer) nextToken() (ExprToken, error) {
	startPos := t.pos
	ch := t.peek()

	// String literals, either quote style
	if ch == CharDoubleQuote || ch == CharSingleQuote {
		return t.readString()
	}

	// Numbers
	if isDigit(ch) || (ch == CharDot && t.pos+1 < t.len && isDigit(t.input[t.pos+1])) {
		return t.readNumber()
	}

	// Identifiers
	if isWordChar(ch) {
		return t.readIdentifier()
	}

	// Single-character tokens
	t.pos++
	switch ch {
	case '+':
		return ExprToken{Type: ExprTokenTypePlus, Value: ExprOpPlus, Pos: startPos}, nil
	case '-':
		return ExprToken{Type: ExprTokenTypeMinus, Value: ExprOpMinus, Pos: startPos}, nil
	case '*':
		return ExprToken{Type: ExprTokenTypeStar, Value: ExprOpStar, Pos: startPos}, nil
	case '/':
		return ExprToken{Type: ExprTokenTypeSlash, Value: ExprOpSlash, Pos: startPos}, nil
	case '(':
		return ExprToken{Type: ExprTokenTypeLParen, Value: "(", Pos: startPos}, nil
	case ')':
		return ExprToken{Type: ExprTokenTypeRParen, Value: ")", Pos: startPos}, nil
	}

	return ExprToken{}, NewExprTokenError(ErrMsgExprUnexpectedChar, startPos, string(ch))
}

// readString reads a string literal delimited by single or double quotes
func (t *ExprTokenizer) readString() (ExprToken, error) {
	startPos := t.pos
	quote := t.input[t.pos]
	t.pos++ // skip opening quote

	var sb strings.Builder
	for t.pos < t.len {
		ch := t.input[t.pos]
		if ch == quote {
			t.pos++ // skip closing quote
			return ExprToken{
				Type:  ExprTokenTypeString,
				Value: sb.String(),
				Pos:   startPos,
			}, nil
		}
		if ch == '\\' && t.pos+1 < t.len {
			t.pos++
			escaped := t.input[t.pos]
			switch escaped {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case '\\':
				sb.WriteByte('\\')
			case CharDoubleQuote:
				sb.WriteByte(CharDoubleQuote)
			case CharSingleQuote:
				sb.WriteByte(CharSingleQuote)
			default:
				sb.WriteByte(escaped)
			}
			t.pos++
			continue
		}
		sb.WriteByte(ch)
		t.pos++
	}

	return ExprToken{}, NewExprTokenError(ErrMsgExprUnterminatedStr, startPos, "")
}

// readNumber reads a numeric literal
func (t *ExprTokenizer) readNumber() (ExprToken, error) {
	startPos := t.pos
	hasDecimal := false

	for t.pos < t.len {
		ch := t.input[t.pos]
		if ch == CharDot {
			if hasDecimal {
				break
			}
			hasDecimal = true
			t.pos++
			continue
		}
		if !isDigit(ch) {
			break
		}
		t.pos++
	}

	value := t.input[startPos:t.pos]

	var num float64
	_, err := fmt.Sscanf(value, "%f", &num)
	if err != nil {
		return ExprToken{}, NewExprTokenError(ErrMsgExprInvalidNumber, startPos, value)
	}

	return ExprToken{
		Type:    ExprTokenTypeNumber,
		Value:   value,
		Pos:     startPos,
		Num:     num,
		Integer: !hasDecimal,
	}, nil
}

// readIdentifier reads a variable name
func (t *ExprTokenizer) readIdentifier() (ExprToken, error) {
	startPos := t.pos

	for t.pos < t.len && isWordChar(t.input[t.pos]) {
		t.pos++
	}

	return ExprToken{
		Type:  ExprTokenTypeIdentifier,
		Value: t.input[startPos:t.pos],
		Pos:   startPos,
	}, nil
}

// peek returns the current character without advancing
func (t *ExprTokenizer) peek() byte {
	if t.pos >= t.len {
		return 0
	}
	return t.input[t.pos]
}

// skipWhitespace skips whitespace characters
func (t *ExprTokenizer) skipWhitespace() {
	for t.pos < t.len {
		switch t.input[t.pos] {
		case CharSpace, CharTab, CharCarriageRet, '\n', CharVerticalTab, CharFormFeed:
			t.pos++
		default:
			return
		}
	}
}

// ExprTokenError represents an error during expression tokenization
type ExprTokenError struct {
	Message string
	Pos     int
	Detail  string
}

// NewExprTokenError creates a new expression token error
func NewExprTokenError(message string, pos int, detail string) *ExprTokenError {
	return &ExprTokenError{
		Message: message,
		Pos:     pos,
		Detail:  detail,
	}
}

// Error implements the error interface
func (e *ExprTokenError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s at position %d: %s", e.Message, e.Pos, e.Detail)
	}
	return fmt.Sprintf("%s at position %d", e.Message, e.Pos)
}

// Expression tokenizer error messages
const (
	ErrMsgExprUnexpectedChar  = "unexpected character"
	ErrMsgExprUnterminatedStr = "unterminated string literal"
	ErrMsgExprInvalidNumber   = "invalid number format"
)
