package psu

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Feed(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	result, err := session.Feed(`page "Home":`)
	require.NoError(t, err)
	require.NotEmpty(t, result.Lines)
	assert.Equal(t, "<!DOCTYPE html>", result.Lines[0])
	assert.Contains(t, result.Lines, "        <title>Home</title>")

	result, err = session.Feed(`    paragraph "hello":`)
	require.NoError(t, err)
	assert.Equal(t, []string{"        <p>hello</p>"}, result.Lines)
}

func TestSession_Feed_BlankAndCommentLines(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	result, err := session.Feed("")
	require.NoError(t, err)
	assert.Empty(t, result.Lines)

	result, err = session.Feed(".. just a note")
	require.NoError(t, err)
	assert.Empty(t, result.Lines)
	assert.Empty(t, result.Warnings)
}

func TestSession_Feed_Warning(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	_, err := session.Feed(`page "Home":`)
	require.NoError(t, err)

	result, err := session.Feed(`    paragrph "oops":`)
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, WarningUnknownCommand, result.Warnings[0].Kind)
}

func TestSession_Feed_StructuralError(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	_, err := session.Feed(`heading 7 "too deep":`)
	require.Error(t, err)

	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindStructural, kind)

	// the session survives a bad line
	result, err := session.Feed(`paragraph "still here":`)
	require.NoError(t, err)
	assert.Equal(t, []string{"<p>still here</p>"}, result.Lines)
}

func TestSession_Feed_LineNumbersStartAfterHeader(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	_, err := session.Feed(`heading 0 "bad":`)
	require.Error(t, err)

	line, ok := ErrorLine(err)
	require.True(t, ok)
	assert.Equal(t, 3, line)
}

func TestSession_Render(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	_, err := session.Feed(`page "Home":`)
	require.NoError(t, err)
	_, err = session.Feed(`    paragraph "hi":`)
	require.NoError(t, err)

	html := session.Render()
	assert.Contains(t, html, "</body>")
	assert.Contains(t, html, "</html>")

	// rendering does not close the live session
	result, err := session.Feed(`    paragraph "more":`)
	require.NoError(t, err)
	assert.Equal(t, []string{"        <p>more</p>"}, result.Lines)
}

func TestSession_Vars(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	_, err := session.Feed(`set name = "Ada";`)
	require.NoError(t, err)
	_, err = session.Feed(`set age = 36;`)
	require.NoError(t, err)

	vars := session.Vars()
	require.Len(t, vars, 2)
	assert.Equal(t, Binding{Name: "age", Value: "36"}, vars[0])
	assert.Equal(t, Binding{Name: "name", Value: "Ada"}, vars[1])
}

func TestSession_Reset(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	_, err := session.Feed(`set name = "Ada";`)
	require.NoError(t, err)
	_, err = session.Feed(`page "Home":`)
	require.NoError(t, err)

	session.Reset()

	assert.Empty(t, session.Vars())

	// line numbering restarts after the implicit header
	_, err = session.Feed(`heading 9 "bad":`)
	require.Error(t, err)
	line, ok := ErrorLine(err)
	require.True(t, ok)
	assert.Equal(t, 3, line)
}

func TestSession_OutputName(t *testing.T) {
	engine := MustNew()
	session := engine.NewSession(context.Background())

	assert.Equal(t, "index.html", session.OutputName())

	_, err := session.Feed(`output_html "repl.html";`)
	require.NoError(t, err)
	assert.Equal(t, "repl.html", session.OutputName())
}
