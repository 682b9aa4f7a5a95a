package psu

import (
	"context"
	"errors"

	"github.com/celesteidev/PseudoScript-Utility/internal"
)

// sessionFirstLine is the line number of the first fed line: the psload
// and psstart directives are pre-fed, so the user starts at line 3.
const sessionFirstLine = 3

// Binding is one defined variable and its rendered value.
type Binding struct {
	Name  string
	Value string
}

// FeedResult carries what one fed line produced.
type FeedResult struct {
	// Lines are the HTML output lines emitted by this input, already
	// indented.
	Lines []string
	// Warnings are the diagnostics this input raised.
	Warnings []Warning
}

// Session is an incremental interpreter run: lines are fed one at a time
// and the output buffer grows as they are processed. The header directives
// are implicit; feeding starts directly at the command stream.
type Session struct {
	engine *Engine
	interp *internal.Interp
	next   int
}

// NewSession starts an incremental run for line-at-a-time interpretation.
func (e *Engine) NewSession(ctx context.Context) *Session {
	return &Session{
		engine: e,
		interp: internal.NewInterp(e.logger),
		next:   sessionFirstLine,
	}
}

// Feed processes one script line and returns what it emitted. Blank and
// comment lines are consumed silently. A structural error is returned but
// does not end the session.
func (s *Session) Feed(text string) (*FeedResult, error) {
	number := s.next
	s.next++

	line, ok := internal.ParseLine(text, number)
	if !ok {
		return &FeedResult{}, nil
	}

	lineStart := s.interp.LineCount()
	warnStart := len(s.interp.Warnings())

	if err := s.interp.Process(line); err != nil {
		var scriptErr *internal.ScriptError
		if errors.As(err, &scriptErr) {
			return nil, newStructuralError(scriptErr)
		}
		return nil, err
	}

	return &FeedResult{
		Lines:    s.interp.LinesSince(lineStart),
		Warnings: publicWarnings(s.interp.Warnings()[warnStart:]),
	}, nil
}

// Render snapshots the output with every currently open block closed. The
// live run is not disturbed; feeding may continue afterwards.
func (s *Session) Render() string {
	return s.interp.Snapshot()
}

// Vars lists the defined variables, sorted by name.
func (s *Session) Vars() []Binding {
	internalBindings := s.interp.Bindings()
	bindings := make([]Binding, len(internalBindings))
	for i, b := range internalBindings {
		bindings[i] = Binding{Name: b.Name, Value: b.Value}
	}
	return bindings
}

// OutputName returns the artifact name the session would write.
func (s *Session) OutputName() string {
	return s.interp.OutputName()
}

// Reset discards all session state and starts over.
func (s *Session) Reset() {
	s.interp = internal.NewInterp(s.engine.logger)
	s.next = sessionFirstLine
}
