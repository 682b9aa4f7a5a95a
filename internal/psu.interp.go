package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Line is one source line of the command stream, already split from its
// surroundings: the 1-based file line number, the leading-whitespace
// count, and the trimmed text.
type Line struct {
	Number int
	Indent int
	Text   string
}

// ParseLine builds a Line record from a raw source line. The second result
// is false for blank and comment lines, which carry no indent signal and
// never reach the interpreter.
func ParseLine(raw string, number int) (Line, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, CommentPrefix) {
		return Line{}, false
	}
	return Line{Number: number, Indent: IndentWidth(raw), Text: trimmed}, true
}

// CheckHeader validates the psload/psstart directives on the first two raw
// lines. Leading and trailing whitespace is tolerated on the comparison.
func CheckHeader(raw []string) *ScriptError {
	if len(raw) < 1 || strings.TrimSpace(raw[0]) != HeaderPsload {
		return NewScriptError(1, "", ErrMsgMissingPsload)
	}
	if len(raw) < 2 || strings.TrimSpace(raw[1]) != HeaderPsstart {
		return NewScriptError(2, "", ErrMsgMissingPsstart)
	}
	return nil
}

// Warning is a non-fatal diagnostic collected during a run.
type Warning struct {
	Kind    WarningKind
	Line    int
	Command string
	Message string
}

// Binding is one defined variable and its rendered value.
type Binding struct {
	Name  string
	Value string
}

// Interp holds the complete state of one interpreter run: variable store,
// block frame stack, emitter, output name, and collected warnings. All
// state is created fresh per run; nothing is shared between runs.
type Interp struct {
	logger   *zap.Logger
	vars     *Store
	frames   []Frame
	emitter  *Emitter
	output   string
	warnings []Warning
}

// NewInterp creates a fresh interpreter run. A nil logger disables logging.
func NewInterp(logger *zap.Logger) *Interp {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interp{
		logger:  logger,
		vars:    NewStore(),
		emitter: NewEmitter(),
		output:  DefaultOutputName,
	}
}

// Run interprets a complete script source: header check, every command
// line in order, then the end-of-input closing pass.
func (in *Interp) Run(source string) error {
	in.logger.Debug(LogMsgRunStarted)

	raw := SplitSource(source)
	if err := CheckHeader(raw); err != nil {
		return err
	}
	in.logger.Debug(LogMsgHeaderValidated)

	for i := 2; i < len(raw); i++ {
		line, ok := ParseLine(raw[i], i+1)
		if !ok {
			continue
		}
		if err := in.Process(line); err != nil {
			return err
		}
	}

	in.Finish()
	return nil
}

// Process runs the per-line pipeline: the block-closing pass, conditional
// suppression, then command dispatch. Skipped lines still participate in
// block bookkeeping but are never parsed further, so malformed commands
// inside a false branch pass silently.
func (in *Interp) Process(line Line) error {
	head, rest := SplitCommand(line.Text)
	isElse := head == CmdElse

	in.closeBlocks(line.Indent, isElse)

	// An else that matches the preserved If frame flips that frame's
	// result even when the branch so far was suppressed; everything else
	// honors the skip state first.
	if isElse && in.elseApplies(line.Indent) {
		top := &in.frames[len(in.frames)-1]
		top.Taken = !top.Taken
		in.logger.Debug(LogMsgCommandHandled,
			zap.Int(LogFieldLine, line.Number),
			zap.String(LogFieldCommand, CmdElse),
			zap.Bool(LogFieldResult, top.Taken))
		return nil
	}

	if in.skipping() {
		in.logger.Debug(LogMsgLineSkipped, zap.Int(LogFieldLine, line.Number))
		return nil
	}

	if head == "" {
		return NewScriptError(line.Number, "", fmt.Sprintf("%s: '%s'", ErrMsgMalformedLine, line.Text))
	}
	if isElse {
		return NewScriptError(line.Number, CmdElse, ErrMsgOrphanElse)
	}

	args := StripTrailingColons(rest)
	return in.dispatch(line, head, args)
}

// Finish closes every frame still open at end of input. End of script is
// an implicit dedent below every possible column.
func (in *Interp) Finish() {
	for len(in.frames) > 0 {
		frame := in.frames[len(in.frames)-1]
		in.frames = in.frames[:len(in.frames)-1]
		in.closeFrame(frame)
	}
	in.logger.Debug(LogMsgRunFinished,
		zap.Int(LogFieldLineCount, in.emitter.LineCount()),
		zap.Int(LogFieldWarnings, len(in.warnings)))
}

// closeBlocks pops and closes every frame whose indent is at or beyond the
// incoming line's indent. When the incoming command is an else and the top
// frame is an If opened at exactly this indent, that frame stays: the else
// handler mutates it in place.
func (in *Interp) closeBlocks(indent int, incomingElse bool) {
	for len(in.frames) > 0 {
		top := in.frames[len(in.frames)-1]
		if indent > top.Indent {
			break
		}
		if incomingElse && top.Kind == FrameIf && top.Indent == indent {
			break
		}
		in.frames = in.frames[:len(in.frames)-1]
		in.closeFrame(top)
	}
}

// closeFrame emits the closing markup for one popped frame. Closing tags
// land in the same column as their opener: the tag pops first, then the
// line is emitted at the reduced depth.
func (in *Interp) closeFrame(frame Frame) {
	switch frame.Kind {
	case FramePage:
		in.emitter.PopTag(TagBody)
		in.emitter.Emit(CloseTag(TagBody))
		in.emitter.PopTag(TagHTML)
		in.emitter.Emit(CloseTag(TagHTML))
	case FrameSection, FrameContainer, FrameList:
		in.emitter.PopTag(frame.Tag)
		in.emitter.Emit(CloseTag(frame.Tag))
	case FrameCard, FrameCardBody, FrameCardFooter:
		in.emitter.PopTag(TagDiv)
		in.emitter.Emit(CloseTag(TagDiv))
	case FrameIf, FrameLoop:
		// Conditional bookkeeping only; skip state derives from the
		// remaining frames.
	}
	in.logger.Debug(LogMsgBlockClosed,
		zap.Stringer(LogFieldFrame, frame.Kind),
		zap.Int(LogFieldIndent, frame.Indent))
}

// skipping reports whether the current line falls inside a suppressed
// branch: any open If frame whose branch was not taken, or any open Loop
// frame, suppresses execution.
func (in *Interp) skipping() bool {
	for _, frame := range in.frames {
		if frame.Kind == FrameIf && !frame.Taken {
			return true
		}
		if frame.Kind == FrameLoop {
			return true
		}
	}
	return false
}

// elseApplies reports whether an else at the given indent addresses the
// top frame.
func (in *Interp) elseApplies(indent int) bool {
	if len(in.frames) == 0 {
		return false
	}
	top := in.frames[len(in.frames)-1]
	return top.Kind == FrameIf && top.Indent == indent
}

// pushFrame opens a block frame.
func (in *Interp) pushFrame(frame Frame) {
	in.frames = append(in.frames, frame)
}

// topFrameKind returns the kind of the top frame and whether one exists.
func (in *Interp) topFrameKind() (FrameKind, bool) {
	if len(in.frames) == 0 {
		return 0, false
	}
	return in.frames[len(in.frames)-1].Kind, true
}

// warn records a non-fatal diagnostic and logs it.
func (in *Interp) warn(kind WarningKind, line Line, command, message string) {
	in.warnings = append(in.warnings, Warning{
		Kind:    kind,
		Line:    line.Number,
		Command: command,
		Message: message,
	})
	in.logger.Warn(LogMsgWarningRaised,
		zap.Stringer(LogFieldKind, kind),
		zap.Int(LogFieldLine, line.Number),
		zap.String(LogFieldCommand, command))
}

// interpolate runs variable interpolation against the run's store.
func (in *Interp) interpolate(text string) string {
	return in.vars.Interpolate(text)
}

// HTML returns the output buffer joined with newlines.
func (in *Interp) HTML() string {
	return in.emitter.HTML()
}

// OutputName returns the configured artifact name.
func (in *Interp) OutputName() string {
	return in.output
}

// Warnings returns the warnings collected so far, in order.
func (in *Interp) Warnings() []Warning {
	return in.warnings
}

// LineCount returns the number of emitted output lines.
func (in *Interp) LineCount() int {
	return in.emitter.LineCount()
}

// LinesSince returns the output lines emitted at or after index n.
func (in *Interp) LinesSince(n int) []string {
	return in.emitter.LinesSince(n)
}

// Bindings returns the defined variables, sorted by name.
func (in *Interp) Bindings() []Binding {
	names := in.vars.Names()
	bindings := make([]Binding, 0, len(names))
	for _, name := range names {
		v, _ := in.vars.Get(name)
		bindings = append(bindings, Binding{Name: name, Value: v.String()})
	}
	return bindings
}

// Snapshot renders the buffer with every currently open block closed,
// without disturbing the live run. Used by incremental sessions.
func (in *Interp) Snapshot() string {
	clone := &Interp{
		logger:  zap.NewNop(),
		vars:    in.vars,
		frames:  make([]Frame, len(in.frames)),
		emitter: in.emitter.Clone(),
		output:  in.output,
	}
	copy(clone.frames, in.frames)
	clone.Finish()
	return clone.HTML()
}
