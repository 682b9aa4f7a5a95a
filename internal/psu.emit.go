package internal

import (
	"fmt"
	"strings"
)

// Emitter owns the open-tag stack and the output buffer. The tag stack is
// bookkeeping only: it decides output indentation and guards pops, while
// the block frames decide which tag actually closes.
type Emitter struct {
	tags  []string
	lines []string
}

// NewEmitter creates an empty emitter
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit appends one line, pre-indented by the current open-tag depth.
func (e *Emitter) Emit(content string) {
	e.lines = append(e.lines, strings.Repeat(HTMLIndentUnit, len(e.tags))+content)
}

// PushTag records an opened HTML tag.
func (e *Emitter) PushTag(tag string) {
	e.tags = append(e.tags, tag)
}

// PopTag removes the top tag if it matches. A mismatch leaves the stack
// alone; the block frame already decided what closes.
func (e *Emitter) PopTag(tag string) {
	if len(e.tags) > 0 && e.tags[len(e.tags)-1] == tag {
		e.tags = e.tags[:len(e.tags)-1]
	}
}

// Depth returns the number of open tags.
func (e *Emitter) Depth() int {
	return len(e.tags)
}

// LineCount returns the number of emitted lines.
func (e *Emitter) LineCount() int {
	return len(e.lines)
}

// LinesSince returns a copy of the lines emitted at or after index n.
func (e *Emitter) LinesSince(n int) []string {
	if n < 0 || n >= len(e.lines) {
		return nil
	}
	out := make([]string, len(e.lines)-n)
	copy(out, e.lines[n:])
	return out
}

// HTML joins the buffer with newlines. No trailing newline is added.
func (e *Emitter) HTML() string {
	return strings.Join(e.lines, "\n")
}

// Clone returns an independent copy of the emitter.
func (e *Emitter) Clone() *Emitter {
	clone := &Emitter{
		tags:  make([]string, len(e.tags)),
		lines: make([]string, len(e.lines)),
	}
	copy(clone.tags, e.tags)
	copy(clone.lines, e.lines)
	return clone
}

// OpenTag assembles an opening tag from the element name and rendered
// attribute pieces, skipping empty pieces so no stray spaces appear.
func OpenTag(name string, pieces ...string) string {
	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(name)
	for _, piece := range pieces {
		if piece == "" {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(piece)
	}
	sb.WriteByte('>')
	return sb.String()
}

// TextTag assembles `<name pieces>text</name>`.
func TextTag(name, text string, pieces ...string) string {
	return OpenTag(name, pieces...) + text + CloseTag(name)
}

// CloseTag assembles `</name>`.
func CloseTag(name string) string {
	return fmt.Sprintf(FmtCloseTag, name)
}
