package internal

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// dispatch routes one live (non-suppressed) command line to its handler.
// An identifier head that is not a known command raises a warning and the
// run continues; the line contributes nothing to the output.
func (in *Interp) dispatch(line Line, head, args string) error {
	switch head {
	case CmdOutputHTML:
		return in.handleOutputHTML(line, args)
	case CmdSet:
		return in.handleSet(line, args)
	case CmdPage:
		return in.handlePage(line, args)
	case CmdMetaInfo:
		return in.handleMetaInfo(line, args)
	case CmdSection:
		return in.handleSection(line, args)
	case CmdContainer:
		return in.handleContainer(line, args)
	case CmdHeading:
		return in.handleHeading(line, args)
	case CmdParagraph:
		return in.handleTextElement(line, CmdParagraph, TagParagraph, args, ErrMsgInvalidParagraph)
	case CmdImage:
		return in.handleImage(line, args)
	case CmdButton:
		return in.handleTextElement(line, CmdButton, TagButton, args, ErrMsgInvalidButton)
	case CmdLink:
		return in.handleLink(line, args)
	case CmdList:
		return in.handleList(line, args)
	case CmdItem:
		return in.handleItem(line, args)
	case CmdCard:
		return in.handleCard(line, args)
	case CmdCardBody:
		return in.handleCardBody(line)
	case CmdCardFooter:
		return in.handleCardFooter(line)
	case CmdIf:
		return in.handleIf(line, args)
	case CmdLoop:
		return in.handleLoop(line)
	default:
		in.warnUnknown(line, head)
		return nil
	}
}

// warnUnknown raises an UnknownCommandWarning, attaching a did-you-mean
// suggestion when a command name is within editing distance.
func (in *Interp) warnUnknown(line Line, head string) {
	message := fmt.Sprintf(FmtWarnUnknownCommand, line.Text)
	suggestions := SuggestCommands(head)
	message += FormatSuggestions(suggestions)
	in.warn(WarningUnknownCommand, line, head, message)
	if len(suggestions) > 0 {
		in.logger.Debug(LogMsgCommandHandled,
			zap.Int(LogFieldLine, line.Number),
			zap.String(LogFieldCommand, head),
			zap.Strings(LogFieldSuggestion, suggestions))
	}
}

func (in *Interp) handleOutputHTML(line Line, args string) error {
	name, ok := ParseOutputArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdOutputHTML, ErrMsgInvalidOutputHTML)
	}
	in.output = name
	in.logger.Debug(LogMsgOutputNameSet,
		zap.Int(LogFieldLine, line.Number),
		zap.String(LogFieldOutput, name))
	return nil
}

func (in *Interp) handleSet(line Line, args string) error {
	name, expr, ok := ParseSetArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdSet, ErrMsgInvalidSet)
	}
	value, ok := ClassifyExpr(expr)
	if !ok {
		evaluated, err := EvaluateSetExpression(expr, in.vars)
		if err != nil {
			in.warn(WarningEvaluation, line, CmdSet,
				fmt.Sprintf(FmtWarnEvalFailed, name, expr))
			value = NewUndefinedValue()
		} else {
			value = evaluated
		}
	}
	in.vars.Set(name, value)
	in.logger.Debug(LogMsgVariableSet,
		zap.Int(LogFieldLine, line.Number),
		zap.String(LogFieldVariable, name),
		zap.String(LogFieldValue, value.String()))
	return nil
}

// handlePage emits the document preamble. The head block opens and closes
// inside the handler; only html and body stay on the open-tag stack, to be
// closed when the Page frame pops.
func (in *Interp) handlePage(line Line, args string) error {
	title, attrs, ok := ParseQuotedArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdPage, ErrMsgInvalidPage)
	}
	in.emitter.Emit(HTMLDoctype)
	in.emitter.Emit(HTMLOpenHTML)
	in.emitter.PushTag(TagHTML)
	in.emitter.Emit(HTMLOpenHead)
	in.emitter.PushTag(TagHead)
	in.emitter.Emit(fmt.Sprintf(FmtTitle, in.interpolate(title)))
	if href, found := attrs.Get(AttrStylesheet); found {
		in.emitter.Emit(fmt.Sprintf(FmtStylesheetLink, in.interpolate(href)))
	}
	if src, found := attrs.Get(AttrScript); found {
		in.emitter.Emit(fmt.Sprintf(FmtScriptTag, in.interpolate(src)))
	}
	if href, found := attrs.Get(AttrFavicon); found {
		in.emitter.Emit(fmt.Sprintf(FmtFaviconLink, in.interpolate(href)))
	}
	in.emitter.PopTag(TagHead)
	in.emitter.Emit(CloseTag(TagHead))
	in.emitter.Emit(HTMLOpenBody)
	in.emitter.PushTag(TagBody)
	in.pushFrame(NewFrame(FramePage, line.Indent))
	return nil
}

func (in *Interp) handleMetaInfo(line Line, args string) error {
	attrs := ParseAttrList(args)
	in.emitter.Emit(OpenTag(TagMeta, RenderAttrs(attrs, in.interpolate)))
	return nil
}

func (in *Interp) handleSection(line Line, args string) error {
	id, attrs, ok := ParseQuotedArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdSection, ErrMsgInvalidSection)
	}
	var classes []string
	if class, found := attrs.Get(AttrClass); found && class != "" {
		classes = append(classes, class)
	}
	if full, found := attrs.Get(AttrFullWidth); found && strings.EqualFold(full, StrTrue) {
		classes = append(classes, ClassFullWidth)
	}
	idPiece := fmt.Sprintf(FmtAttr, AttrID, in.interpolate(id))
	classPiece := ""
	if len(classes) > 0 {
		classPiece = fmt.Sprintf(FmtAttr, AttrClass, in.interpolate(strings.Join(classes, " ")))
	}
	rest := RenderAttrs(attrs.Without(AttrClass, AttrFullWidth), in.interpolate)
	in.emitter.Emit(OpenTag(TagSection, idPiece, classPiece, rest))
	in.emitter.PushTag(TagSection)
	in.pushFrame(NewTagFrame(FrameSection, line.Indent, TagSection))
	return nil
}

func (in *Interp) handleContainer(line Line, args string) error {
	attrs := ParseAttrList(args)
	in.emitter.Emit(OpenTag(TagDiv, RenderAttrs(attrs, in.interpolate)))
	in.emitter.PushTag(TagDiv)
	in.pushFrame(NewTagFrame(FrameContainer, line.Indent, TagDiv))
	return nil
}

func (in *Interp) handleHeading(line Line, args string) error {
	level, text, attrs, ok := ParseHeadingArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdHeading, ErrMsgInvalidHeading)
	}
	if level < 1 || level > 6 {
		return NewScriptError(line.Number, CmdHeading, ErrMsgHeadingLevelRange)
	}
	tag := fmt.Sprintf(FmtHeadingTag, level)
	in.emitter.Emit(TextTag(tag, in.interpolate(text), RenderAttrs(attrs, in.interpolate)))
	return nil
}

// handleTextElement serves the commands that emit a single
// `<tag …>text</tag>` line: paragraph, button, and item (after its
// context check).
func (in *Interp) handleTextElement(line Line, command, tag, args, errMsg string) error {
	text, attrs, ok := ParseQuotedArgs(args)
	if !ok {
		return NewScriptError(line.Number, command, errMsg)
	}
	in.emitter.Emit(TextTag(tag, in.interpolate(text), RenderAttrs(attrs, in.interpolate)))
	return nil
}

func (in *Interp) handleImage(line Line, args string) error {
	src, attrs, ok := ParseQuotedArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdImage, ErrMsgInvalidImage)
	}
	srcPiece := fmt.Sprintf(FmtAttr, AttrSrc, in.interpolate(src))
	in.emitter.Emit(OpenTag(TagImage, srcPiece, RenderAttrs(attrs, in.interpolate)))
	return nil
}

func (in *Interp) handleLink(line Line, args string) error {
	text, href, attrs, ok := ParseLinkArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdLink, ErrMsgInvalidLink)
	}
	hrefPiece := fmt.Sprintf(FmtAttr, AttrHref, in.interpolate(href))
	in.emitter.Emit(TextTag(TagAnchor, in.interpolate(text), hrefPiece, RenderAttrs(attrs, in.interpolate)))
	return nil
}

func (in *Interp) handleList(line Line, args string) error {
	tag, attrs, ok := ParseListArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdList, ErrMsgInvalidList)
	}
	in.emitter.Emit(OpenTag(tag, RenderAttrs(attrs, in.interpolate)))
	in.emitter.PushTag(tag)
	in.pushFrame(NewTagFrame(FrameList, line.Indent, tag))
	return nil
}

func (in *Interp) handleItem(line Line, args string) error {
	if kind, ok := in.topFrameKind(); !ok || kind != FrameList {
		return NewScriptError(line.Number, CmdItem, ErrMsgItemOutsideList)
	}
	return in.handleTextElement(line, CmdItem, TagListItem, args, ErrMsgInvalidItem)
}

// handleCard opens the outer card div, renders the fixed header block, and
// leaves the outer div open for the card's body content.
func (in *Interp) handleCard(line Line, args string) error {
	title, attrs, ok := ParseCardArgs(args)
	if !ok {
		return NewScriptError(line.Number, CmdCard, ErrMsgInvalidCard)
	}
	classes := []string{ClassCard}
	if class, found := attrs.Get(AttrClass); found && class != "" {
		classes = append(classes, class)
	}
	classPiece := fmt.Sprintf(FmtAttr, AttrClass, in.interpolate(strings.Join(classes, " ")))
	rest := RenderAttrs(attrs.Without(AttrClass), in.interpolate)
	in.emitter.Emit(OpenTag(TagDiv, classPiece, rest))
	in.emitter.PushTag(TagDiv)
	in.pushFrame(NewTagFrame(FrameCard, line.Indent, TagDiv))

	headerPiece := fmt.Sprintf(FmtAttr, AttrClass, ClassCardHeader)
	in.emitter.Emit(OpenTag(TagDiv, headerPiece))
	in.emitter.PushTag(TagDiv)
	in.emitter.Emit(TextTag(TagCardTitle, in.interpolate(title)))
	in.emitter.PopTag(TagDiv)
	in.emitter.Emit(CloseTag(TagDiv))
	return nil
}

func (in *Interp) handleCardBody(line Line) error {
	if kind, ok := in.topFrameKind(); !ok || kind != FrameCard {
		return NewScriptError(line.Number, CmdCardBody, ErrMsgCardBodyOutsideCard)
	}
	in.openCardPart(line, FrameCardBody, ClassCardBody)
	return nil
}

func (in *Interp) handleCardFooter(line Line) error {
	if kind, ok := in.topFrameKind(); !ok || kind != FrameCard {
		return NewScriptError(line.Number, CmdCardFooter, ErrMsgCardFooterOutsideCard)
	}
	in.openCardPart(line, FrameCardFooter, ClassCardFooter)
	return nil
}

func (in *Interp) openCardPart(line Line, kind FrameKind, class string) {
	piece := fmt.Sprintf(FmtAttr, AttrClass, class)
	in.emitter.Emit(OpenTag(TagDiv, piece))
	in.emitter.PushTag(TagDiv)
	in.pushFrame(NewTagFrame(kind, line.Indent, TagDiv))
}

func (in *Interp) handleIf(line Line, args string) error {
	result := EvalCondition(args, in.vars)
	in.pushFrame(NewIfFrame(line.Indent, result))
	in.logger.Debug(LogMsgCommandHandled,
		zap.Int(LogFieldLine, line.Number),
		zap.String(LogFieldCommand, CmdIf),
		zap.String(LogFieldCondition, args),
		zap.Bool(LogFieldResult, result))
	return nil
}

// handleLoop pushes a Loop frame so the body is suppressed and raises an
// UnimplementedWarning. Nothing is emitted.
func (in *Interp) handleLoop(line Line) error {
	in.pushFrame(NewFrame(FrameLoop, line.Indent))
	in.warn(WarningUnimplemented, line, CmdLoop, WarnMsgLoopPlaceholder)
	return nil
}
