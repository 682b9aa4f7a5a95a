package internal

// Command name constants
const (
	CmdOutputHTML = "output_html"
	CmdSet        = "set"
	CmdPage       = "page"
	CmdMetaInfo   = "meta_info"
	CmdSection    = "section"
	CmdContainer  = "container"
	CmdHeading    = "heading"
	CmdParagraph  = "paragraph"
	CmdImage      = "image"
	CmdButton     = "button"
	CmdLink       = "link"
	CmdList       = "list"
	CmdItem       = "item"
	CmdCard       = "card"
	CmdCardBody   = "card_body"
	CmdCardFooter = "card_footer"
	CmdIf         = "if"
	CmdElse       = "else"
	CmdLoop       = "loop"
)

// commandNames lists every recognized command in dispatch order.
var commandNames = []string{
	CmdOutputHTML,
	CmdSet,
	CmdPage,
	CmdMetaInfo,
	CmdSection,
	CmdContainer,
	CmdHeading,
	CmdParagraph,
	CmdImage,
	CmdButton,
	CmdLink,
	CmdList,
	CmdItem,
	CmdCard,
	CmdCardBody,
	CmdCardFooter,
	CmdIf,
	CmdElse,
	CmdLoop,
}

// CommandNames returns the full command vocabulary in a fresh slice.
func CommandNames() []string {
	names := make([]string, len(commandNames))
	copy(names, commandNames)
	return names
}

// FrameKind identifies the kind of an open block frame
type FrameKind int

// Frame kind constants
const (
	FramePage FrameKind = iota
	FrameSection
	FrameContainer
	FrameList
	FrameCard
	FrameCardBody
	FrameCardFooter
	FrameIf
	FrameLoop
)

// Frame kind names for debugging and logs
const (
	FrameKindNamePage       = "page"
	FrameKindNameSection    = "section"
	FrameKindNameContainer  = "container"
	FrameKindNameList       = "list"
	FrameKindNameCard       = "card"
	FrameKindNameCardBody   = "card_body"
	FrameKindNameCardFooter = "card_footer"
	FrameKindNameIf         = "if"
	FrameKindNameLoop       = "loop"
)

// String returns the string representation of the frame kind
func (k FrameKind) String() string {
	switch k {
	case FramePage:
		return FrameKindNamePage
	case FrameSection:
		return FrameKindNameSection
	case FrameContainer:
		return FrameKindNameContainer
	case FrameList:
		return FrameKindNameList
	case FrameCard:
		return FrameKindNameCard
	case FrameCardBody:
		return FrameKindNameCardBody
	case FrameCardFooter:
		return FrameKindNameCardFooter
	case FrameIf:
		return FrameKindNameIf
	case FrameLoop:
		return FrameKindNameLoop
	default:
		return FrameKindNamePage
	}
}

// ValueKind identifies the kind of a stored variable value
type ValueKind int

// Value kind constants
const (
	ValueUndefined ValueKind = iota
	ValueString
	ValueBool
	ValueNumber
)

// Value kind names for debugging and logs
const (
	ValueKindNameUndefined = "undefined"
	ValueKindNameString    = "string"
	ValueKindNameBool      = "bool"
	ValueKindNameNumber    = "number"
)

// String returns the string representation of the value kind
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return ValueKindNameString
	case ValueBool:
		return ValueKindNameBool
	case ValueNumber:
		return ValueKindNameNumber
	default:
		return ValueKindNameUndefined
	}
}

// WarningKind identifies the kind of a non-fatal diagnostic
type WarningKind int

// Warning kind constants
const (
	WarningEvaluation WarningKind = iota
	WarningUnknownCommand
	WarningUnimplemented
)

// Warning kind names
const (
	WarningKindNameEvaluation     = "evaluation"
	WarningKindNameUnknownCommand = "unknown_command"
	WarningKindNameUnimplemented  = "unimplemented"
)

// String returns the string representation of the warning kind
func (k WarningKind) String() string {
	switch k {
	case WarningUnknownCommand:
		return WarningKindNameUnknownCommand
	case WarningUnimplemented:
		return WarningKindNameUnimplemented
	default:
		return WarningKindNameEvaluation
	}
}

// Script header directives
const (
	HeaderPsload  = "psload"
	HeaderPsstart = "psstart"
)

// Comment and structure markers
const (
	CommentPrefix = ".."
	ColonSuffix   = ":"
)

// Default values
const (
	DefaultOutputName  = "index.html"
	HTMLIndentUnit     = "    "
	UndefinedVarPrefix = "UNDEFINED_VAR_"
	UndefinedString    = "undefined"
)

// Character constants
const (
	CharDoubleQuote = '"'
	CharSingleQuote = '\''
	CharEquals      = '='
	CharComma       = ','
	CharSpace       = ' '
	CharTab         = '\t'
	CharSemicolon   = ';'
	CharDollar      = '$'
	CharOpenBrace   = '{'
	CharCloseBrace  = '}'
	CharUnderscore  = '_'
	CharMinus       = '-'
	CharDot         = '.'
	CharCarriageRet = '\r'
	CharVerticalTab = '\v'
	CharFormFeed    = '\f'
)

// HTML tag names tracked on the open-tag stack
const (
	TagHTML          = "html"
	TagHead          = "head"
	TagBody          = "body"
	TagSection       = "section"
	TagDiv           = "div"
	TagOrderedList   = "ol"
	TagUnorderedList = "ul"
)

// HTML element names emitted without stack tracking
const (
	TagMeta      = "meta"
	TagParagraph = "p"
	TagImage     = "img"
	TagButton    = "button"
	TagAnchor    = "a"
	TagListItem  = "li"
	TagCardTitle = "h2"
)

// Fixed HTML lines
const (
	HTMLDoctype  = "<!DOCTYPE html>"
	HTMLOpenHTML = "<html>"
	HTMLOpenHead = "<head>"
	HTMLOpenBody = "<body>"
)

// HTML format strings
const (
	FmtCloseTag       = "</%s>"
	FmtTitle          = "<title>%s</title>"
	FmtStylesheetLink = `<link rel="stylesheet" href="%s">`
	FmtScriptTag      = `<script src="%s"></script>`
	FmtFaviconLink    = `<link rel="icon" href="%s">`
	FmtAttr           = `%s="%s"`
	FmtHeadingTag     = "h%d"
)

// Attribute name constants
const (
	AttrID         = "id"
	AttrClass      = "class"
	AttrType       = "type"
	AttrTitle      = "title"
	AttrLevel      = "level"
	AttrFullWidth  = "full_width"
	AttrStylesheet = "stylesheet"
	AttrScript     = "script"
	AttrFavicon    = "favicon"
	AttrSrc        = "src"
	AttrHref       = "href"
)

// Attribute and literal values
const (
	StrTrue  = "true"
	StrFalse = "false"
)

// List type values
const (
	ListTypeOrdered   = "ordered"
	ListTypeUnordered = "unordered"
)

// CSS class constants
const (
	ClassCard       = "psu-card"
	ClassCardHeader = "psu-card-header"
	ClassCardBody   = "psu-card-body"
	ClassCardFooter = "psu-card-footer"
	ClassFullWidth  = "full-width-section"
)

// Condition operator strings
const (
	CondOpEq  = "=="
	CondOpNeq = "!="
)

// Structural error messages
const (
	ErrMsgMissingPsload         = "script must start with psload on the first line"
	ErrMsgMissingPsstart        = "script must have psstart on the second line"
	ErrMsgMalformedLine         = "malformed line"
	ErrMsgInvalidOutputHTML     = "output_html expects a quoted filename"
	ErrMsgInvalidSet            = "invalid set command syntax"
	ErrMsgInvalidPage           = "invalid page command syntax"
	ErrMsgInvalidSection        = "invalid section command syntax"
	ErrMsgInvalidHeading        = "invalid heading command syntax"
	ErrMsgHeadingLevelRange     = "heading level must be between 1 and 6"
	ErrMsgInvalidParagraph      = "invalid paragraph command syntax"
	ErrMsgInvalidImage          = "invalid image command syntax"
	ErrMsgInvalidButton         = "invalid button command syntax"
	ErrMsgInvalidLink           = "invalid link command syntax"
	ErrMsgInvalidList           = "invalid list command syntax"
	ErrMsgInvalidItem           = "invalid item command syntax"
	ErrMsgInvalidCard           = "invalid card command syntax"
	ErrMsgItemOutsideList       = "item must be directly inside a list block"
	ErrMsgCardBodyOutsideCard   = "card_body must be directly inside a card block"
	ErrMsgCardFooterOutsideCard = "card_footer must be directly inside a card block"
	ErrMsgOrphanElse            = "else must immediately follow an if block at the same indentation level"
)

// Warning message formats
const (
	FmtWarnUnknownCommand  = "unknown command or malformed syntax: '%s'"
	FmtWarnEvalFailed      = "could not evaluate expression for '%s': '%s'"
	WarnMsgLoopPlaceholder = "loop is a placeholder; its body is not executed"
)

// Log message constants
const (
	LogMsgRunStarted      = "interpreter run started"
	LogMsgHeaderValidated = "psload and psstart directives validated"
	LogMsgCommandHandled  = "command handled"
	LogMsgBlockClosed     = "block closed"
	LogMsgLineSkipped     = "line suppressed by conditional"
	LogMsgWarningRaised   = "warning raised"
	LogMsgVariableSet     = "variable set"
	LogMsgOutputNameSet   = "output filename set"
	LogMsgRunFinished     = "interpreter run finished"
)

// Log field names
const (
	LogFieldLine       = "line"
	LogFieldCommand    = "command"
	LogFieldIndent     = "indent"
	LogFieldFrame      = "frame"
	LogFieldVariable   = "variable"
	LogFieldKind       = "kind"
	LogFieldValue      = "value"
	LogFieldOutput     = "output"
	LogFieldCondition  = "condition"
	LogFieldResult     = "result"
	LogFieldLineCount  = "line_count"
	LogFieldWarnings   = "warning_count"
	LogFieldSuggestion = "suggestion"
)

// Suggestion tuning constants
const (
	SuggestionMaxDistance = 2
	SuggestionMaxCount    = 3
)

// Output file permissions
const (
	FilePermissions = 0644
	DirPermissions  = 0755
)
