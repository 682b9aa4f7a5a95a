package internal

import "strings"

// argScanner walks a command's argument string. Each command grammar is an
// explicit parsing function built on it, returning typed fields and a
// success flag; the handler turns a failure into a structural error.
type argScanner struct {
	input string
	pos   int
}

func newArgScanner(input string) *argScanner {
	return &argScanner{input: input}
}

// skipSpace advances past spaces and tabs.
func (s *argScanner) skipSpace() {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c != CharSpace && c != CharTab {
			return
		}
		s.pos++
	}
}

// quoted reads a double-quoted string with non-empty content.
func (s *argScanner) quoted() (string, bool) {
	if s.pos >= len(s.input) || s.input[s.pos] != CharDoubleQuote {
		return "", false
	}
	end := strings.IndexByte(s.input[s.pos+1:], CharDoubleQuote)
	if end <= 0 {
		return "", false
	}
	value := s.input[s.pos+1 : s.pos+1+end]
	s.pos += end + 2
	return value, true
}

// literal consumes the exact prefix if present.
func (s *argScanner) literal(prefix string) bool {
	if !strings.HasPrefix(s.input[s.pos:], prefix) {
		return false
	}
	s.pos += len(prefix)
	return true
}

// ident reads a run of word characters.
func (s *argScanner) ident() (string, bool) {
	start := s.pos
	for s.pos < len(s.input) && isWordChar(s.input[s.pos]) {
		s.pos++
	}
	if s.pos == start {
		return "", false
	}
	return s.input[start:s.pos], true
}

// digits reads a run of ASCII digits.
func (s *argScanner) digits() (int, bool) {
	start := s.pos
	n := 0
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		n = n*10 + int(s.input[s.pos]-'0')
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	return n, true
}

// rest returns whatever remains, trimmed.
func (s *argScanner) rest() string {
	return strings.TrimSpace(s.input[s.pos:])
}

// ParseQuotedArgs parses `"text" [attrs]`, the shared grammar of page,
// section, paragraph, image, button, and item.
func ParseQuotedArgs(args string) (text string, attrs AttrList, ok bool) {
	s := newArgScanner(args)
	text, ok = s.quoted()
	if !ok {
		return "", nil, false
	}
	return text, ParseAttrList(s.rest()), true
}

// ParseLinkArgs parses `"text" "href" [attrs]`.
func ParseLinkArgs(args string) (text, href string, attrs AttrList, ok bool) {
	s := newArgScanner(args)
	text, ok = s.quoted()
	if !ok {
		return "", "", nil, false
	}
	s.skipSpace()
	href, ok = s.quoted()
	if !ok {
		return "", "", nil, false
	}
	return text, href, ParseAttrList(s.rest()), true
}

// ParseHeadingArgs parses `level=N "text" [attrs]`. The level's range is
// the handler's concern; this only requires digits.
func ParseHeadingArgs(args string) (level int, text string, attrs AttrList, ok bool) {
	s := newArgScanner(args)
	if !s.literal(AttrLevel) || !s.literal(string(CharEquals)) {
		return 0, "", nil, false
	}
	level, ok = s.digits()
	if !ok {
		return 0, "", nil, false
	}
	s.skipSpace()
	text, ok = s.quoted()
	if !ok {
		return 0, "", nil, false
	}
	return level, text, ParseAttrList(s.rest()), true
}

// ParseListArgs parses `type="ordered|unordered" [attrs]` and maps the
// closed type enum to its HTML tag. Any other type value fails.
func ParseListArgs(args string) (tag string, attrs AttrList, ok bool) {
	s := newArgScanner(args)
	if !s.literal(AttrType) || !s.literal(string(CharEquals)) {
		return "", nil, false
	}
	listType, ok := s.quoted()
	if !ok {
		return "", nil, false
	}
	switch listType {
	case ListTypeOrdered:
		tag = TagOrderedList
	case ListTypeUnordered:
		tag = TagUnorderedList
	default:
		return "", nil, false
	}
	return tag, ParseAttrList(s.rest()), true
}

// ParseCardArgs parses `title="text" [attrs]`.
func ParseCardArgs(args string) (title string, attrs AttrList, ok bool) {
	s := newArgScanner(args)
	if !s.literal(AttrTitle) || !s.literal(string(CharEquals)) {
		return "", nil, false
	}
	title, ok = s.quoted()
	if !ok {
		return "", nil, false
	}
	return title, ParseAttrList(s.rest()), true
}

// ParseSetArgs parses `name = expr;`. The expression runs greedily to the
// last semicolon; anything after it is ignored.
func ParseSetArgs(args string) (name, expr string, ok bool) {
	s := newArgScanner(args)
	name, ok = s.ident()
	if !ok {
		return "", "", false
	}
	s.skipSpace()
	if !s.literal(string(CharEquals)) {
		return "", "", false
	}
	rest := s.input[s.pos:]
	end := strings.LastIndexByte(rest, CharSemicolon)
	if end < 0 {
		return "", "", false
	}
	expr = strings.TrimSpace(rest[:end])
	if expr == "" {
		return "", "", false
	}
	return name, expr, true
}

// ParseOutputArgs parses `"filename"`. Trailing text after the closing
// quote is ignored.
func ParseOutputArgs(args string) (name string, ok bool) {
	s := newArgScanner(args)
	return s.quoted()
}
