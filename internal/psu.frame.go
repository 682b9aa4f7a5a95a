package internal

// Frame is the runtime record of one open block: its kind, the indent
// column it opened at, and its closing data. Section, Container, and List
// frames carry the HTML tag to close; If frames carry their branch result
// inline, so there is no parallel conditional stack to keep in step.
type Frame struct {
	Kind   FrameKind
	Indent int
	Tag    string
	Taken  bool
}

// NewTagFrame creates a frame that closes the given HTML tag.
func NewTagFrame(kind FrameKind, indent int, tag string) Frame {
	return Frame{Kind: kind, Indent: indent, Tag: tag}
}

// NewIfFrame creates an If frame carrying its condition result.
func NewIfFrame(indent int, taken bool) Frame {
	return Frame{Kind: FrameIf, Indent: indent, Taken: taken}
}

// NewFrame creates a frame with no closing payload.
func NewFrame(kind FrameKind, indent int) Frame {
	return Frame{Kind: kind, Indent: indent}
}
