package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// script builds a source string from the implicit header plus body lines.
func script(lines ...string) string {
	all := append([]string{HeaderPsload, HeaderPsstart}, lines...)
	return strings.Join(all, "\n")
}

func runScript(t *testing.T, source string) *Interp {
	t.Helper()
	interp := NewInterp(nil)
	require.NoError(t, interp.Run(source))
	return interp
}

func TestInterp_Run_MinimalPage(t *testing.T) {
	interp := runScript(t, script(
		`set user = "Bob";`,
		`page "Hi ${user}":`,
		`    paragraph "Hello ${user}":`,
	))

	expected := "<!DOCTYPE html>\n" +
		"<html>\n" +
		"    <head>\n" +
		"        <title>Hi Bob</title>\n" +
		"    </head>\n" +
		"    <body>\n" +
		"        <p>Hello Bob</p>\n" +
		"    </body>\n" +
		"</html>"
	assert.Equal(t, expected, interp.HTML())
	assert.Equal(t, DefaultOutputName, interp.OutputName())
	assert.Empty(t, interp.Warnings())
}

func TestInterp_Run_HeaderValidation(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		expectedLine int
	}{
		{"missing psload", "psstart\npage \"T\":", 1},
		{"missing psstart", "psload\npage \"T\":", 2},
		{"empty source", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := NewInterp(nil)
			err := interp.Run(tt.source)

			var scriptErr *ScriptError
			require.ErrorAs(t, err, &scriptErr)
			assert.Equal(t, tt.expectedLine, scriptErr.Line)
		})
	}
}

func TestInterp_Run_PageHeadBlock(t *testing.T) {
	interp := runScript(t, script(
		`page "Home" stylesheet="site.css" script="app.js" favicon="icon.png" theme="dark":`,
	))

	expected := "<!DOCTYPE html>\n" +
		"<html>\n" +
		"    <head>\n" +
		"        <title>Home</title>\n" +
		`        <link rel="stylesheet" href="site.css">` + "\n" +
		`        <script src="app.js"></script>` + "\n" +
		`        <link rel="icon" href="icon.png">` + "\n" +
		"    </head>\n" +
		"    <body>\n" +
		"    </body>\n" +
		"</html>"
	assert.Equal(t, expected, interp.HTML())
}

func TestInterp_Run_ConditionalElse(t *testing.T) {
	source := func(flag string) string {
		return script(
			"set show = "+flag+";",
			`page "T":`,
			"    if show:",
			`        paragraph "yes":`,
			"    else:",
			`        paragraph "no":`,
		)
	}

	t.Run("false takes else branch", func(t *testing.T) {
		interp := runScript(t, source("false"))
		assert.Contains(t, interp.HTML(), "<p>no</p>")
		assert.NotContains(t, interp.HTML(), "<p>yes</p>")
	})

	t.Run("true takes if branch", func(t *testing.T) {
		interp := runScript(t, source("true"))
		assert.Contains(t, interp.HTML(), "<p>yes</p>")
		assert.NotContains(t, interp.HTML(), "<p>no</p>")
	})
}

func TestInterp_Run_NestedConditionalSuppression(t *testing.T) {
	// An inner if body never emits while any enclosing if evaluated false,
	// even when the inner condition itself is true.
	source := func(outer string) string {
		return script(
			"set outer = "+outer+";",
			"set inner = true;",
			`page "T":`,
			"    if outer:",
			"        if inner:",
			`            paragraph "deep":`,
			`    paragraph "after":`,
		)
	}

	t.Run("false outer suppresses true inner", func(t *testing.T) {
		interp := runScript(t, source("false"))
		assert.NotContains(t, interp.HTML(), "<p>deep</p>")
		assert.Contains(t, interp.HTML(), "<p>after</p>")
	})

	t.Run("true outer lets inner emit", func(t *testing.T) {
		interp := runScript(t, source("true"))
		assert.Contains(t, interp.HTML(), "<p>deep</p>")
		assert.Contains(t, interp.HTML(), "<p>after</p>")
	})
}

func TestInterp_Run_SkippedBranchIsNotValidated(t *testing.T) {
	// Malformed lines inside a false branch are structurally scanned but
	// never parsed as commands.
	interp := runScript(t, script(
		`page "T":`,
		"    if false:",
		`        item "orphan without list":`,
		"        ??? not even a command",
		`    paragraph "after":`,
	))

	assert.Contains(t, interp.HTML(), "<p>after</p>")
	assert.Empty(t, interp.Warnings())
}

func TestInterp_Run_LoopSuppressesBody(t *testing.T) {
	interp := runScript(t, script(
		`page "T":`,
		"    loop 3 times:",
		`        paragraph "hidden":`,
		`    paragraph "after":`,
	))

	assert.NotContains(t, interp.HTML(), "hidden")
	assert.Contains(t, interp.HTML(), "<p>after</p>")

	warnings := interp.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningUnimplemented, warnings[0].Kind)
	assert.Equal(t, CmdLoop, warnings[0].Command)
	assert.Equal(t, 4, warnings[0].Line)
}

func TestInterp_Run_UnknownCommandWarning(t *testing.T) {
	interp := runScript(t, script(
		`page "T":`,
		`    sectoin "hero":`,
		`    paragraph "still here":`,
	))

	assert.Contains(t, interp.HTML(), "<p>still here</p>")

	warnings := interp.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningUnknownCommand, warnings[0].Kind)
	assert.Equal(t, 4, warnings[0].Line)
	assert.Contains(t, warnings[0].Message, "Did you mean 'section'")
}

func TestInterp_Run_SetEvaluationWarning(t *testing.T) {
	interp := runScript(t, script(
		"set broken = ghost + 1;",
		`page "Value: ${broken}":`,
	))

	assert.Contains(t, interp.HTML(), "<title>Value: undefined</title>")

	warnings := interp.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningEvaluation, warnings[0].Kind)
	assert.Equal(t, CmdSet, warnings[0].Command)
}

func TestInterp_Run_SetArithmetic(t *testing.T) {
	interp := runScript(t, script(
		"set a = 2 + 3;",
		"set b = 4 / 2;",
		`set title = "Mr. ";`,
		`set name = "Smith";`,
		"set c = title + name;",
		`page "${a} ${b} ${c}":`,
	))

	assert.Contains(t, interp.HTML(), "<title>5 2.0 Mr. Smith</title>")
}

func TestInterp_Run_StructuralErrors(t *testing.T) {
	tests := []struct {
		name            string
		lines           []string
		expectedLine    int
		expectedCommand string
		expectedMsg     string
	}{
		{
			"item outside list",
			[]string{`page "T":`, `    item "x":`},
			4, CmdItem, ErrMsgItemOutsideList,
		},
		{
			"orphan else",
			[]string{`page "T":`, "    else:"},
			4, CmdElse, ErrMsgOrphanElse,
		},
		{
			"heading level out of range",
			[]string{`page "T":`, `    heading level=7 "x":`},
			4, CmdHeading, ErrMsgHeadingLevelRange,
		},
		{
			"card_body outside card",
			[]string{`page "T":`, "    card_body:"},
			4, CmdCardBody, ErrMsgCardBodyOutsideCard,
		},
		{
			"card_footer outside card",
			[]string{`page "T":`, "    card_footer:"},
			4, CmdCardFooter, ErrMsgCardFooterOutsideCard,
		},
		{
			"unquoted page title",
			[]string{"page Home:"},
			3, CmdPage, ErrMsgInvalidPage,
		},
		{
			"set without semicolon",
			[]string{"set n = 1"},
			3, CmdSet, ErrMsgInvalidSet,
		},
		{
			"bad list type",
			[]string{`page "T":`, `    list type="fancy":`},
			4, CmdList, ErrMsgInvalidList,
		},
		{
			"non-identifier head",
			[]string{`page "T":`, `    "stray text"`},
			4, "", ErrMsgMalformedLine,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interp := NewInterp(nil)
			err := interp.Run(script(tt.lines...))

			var scriptErr *ScriptError
			require.ErrorAs(t, err, &scriptErr)
			assert.Equal(t, tt.expectedLine, scriptErr.Line)
			assert.Equal(t, tt.expectedCommand, scriptErr.Command)
			assert.Contains(t, scriptErr.Msg, tt.expectedMsg)
		})
	}
}

func TestInterp_Run_OutputName(t *testing.T) {
	interp := runScript(t, script(
		`output_html "custom.html":`,
		`page "T":`,
	))

	assert.Equal(t, "custom.html", interp.OutputName())
}

func TestInterp_Run_SectionClassMerge(t *testing.T) {
	interp := runScript(t, script(
		`page "T":`,
		`    section "hero" class="big" full_width=true data="x":`,
	))

	assert.Contains(t, interp.HTML(),
		`<section id="hero" class="big full-width-section" data="x">`)
	// class and full_width never pass through separately.
	assert.NotContains(t, interp.HTML(), `full_width=`)
}

func TestInterp_Run_CardStructure(t *testing.T) {
	interp := runScript(t, script(
		`page "T":`,
		`    card title="Stats" class="wide":`,
		"        card_body:",
		`            paragraph "inside":`,
		"        card_footer:",
		`            paragraph "foot":`,
	))

	expected := "        " + `<div class="psu-card wide">` + "\n" +
		"            " + `<div class="psu-card-header">` + "\n" +
		"                <h2>Stats</h2>\n" +
		"            </div>\n" +
		"            " + `<div class="psu-card-body">` + "\n" +
		"                <p>inside</p>\n" +
		"            </div>\n" +
		"            " + `<div class="psu-card-footer">` + "\n" +
		"                <p>foot</p>\n" +
		"            </div>\n" +
		"        </div>"
	assert.Contains(t, interp.HTML(), expected)
}

func TestInterp_Run_ListAndItems(t *testing.T) {
	interp := runScript(t, script(
		`page "T":`,
		`    list type="ordered" class="steps":`,
		`        item "first":`,
		`        item "second":`,
		`    paragraph "done":`,
	))

	expected := "        " + `<ol class="steps">` + "\n" +
		"            <li>first</li>\n" +
		"            <li>second</li>\n" +
		"        </ol>\n" +
		"        <p>done</p>"
	assert.Contains(t, interp.HTML(), expected)
}

func TestInterp_Run_DedentClosesNestedBlocks(t *testing.T) {
	interp := runScript(t, script(
		`page "T":`,
		`    section "a":`,
		"        container:",
		`            paragraph "deep":`,
		`    section "b":`,
	))

	expected := "        " + `<section id="a">` + "\n" +
		"            <div>\n" +
		"                <p>deep</p>\n" +
		"            </div>\n" +
		"        </section>\n" +
		"        " + `<section id="b">` + "\n" +
		"        </section>"
	assert.Contains(t, interp.HTML(), expected)
}

func TestInterp_Run_BlankAndCommentLinesIgnored(t *testing.T) {
	interp := runScript(t, script(
		`page "T":`,
		"",
		"    .. a comment at depth",
		`    paragraph "kept":`,
	))

	assert.Contains(t, interp.HTML(), "<p>kept</p>")
}

func TestInterp_Snapshot(t *testing.T) {
	interp := NewInterp(nil)
	require.NoError(t, interp.Process(Line{Number: 3, Indent: 0, Text: `page "T":`}))
	require.NoError(t, interp.Process(Line{Number: 4, Indent: 4, Text: `paragraph "hi":`}))

	snapshot := interp.Snapshot()
	assert.True(t, strings.HasSuffix(snapshot, "</html>"))

	// The live run is untouched: feeding continues and Finish still closes.
	require.NoError(t, interp.Process(Line{Number: 5, Indent: 4, Text: `paragraph "more":`}))
	interp.Finish()
	assert.Contains(t, interp.HTML(), "<p>more</p>")
	assert.True(t, strings.HasSuffix(interp.HTML(), "</html>"))
}

func TestInterp_Bindings(t *testing.T) {
	interp := runScript(t, script(
		`set z = "last";`,
		"set a = 5;",
	))

	bindings := interp.Bindings()
	require.Len(t, bindings, 2)
	assert.Equal(t, Binding{Name: "a", Value: "5"}, bindings[0])
	assert.Equal(t, Binding{Name: "z", Value: "last"}, bindings[1])
}
