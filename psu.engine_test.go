package psu

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalScript = `psload
psstart
set user = "Bob";
page "Hi ${user}":
    paragraph "Hello ${user}":`

const minimalHTML = `<!DOCTYPE html>
<html>
    <head>
        <title>Hi Bob</title>
    </head>
    <body>
        <p>Hello Bob</p>
    </body>
</html>`

func TestEngine_Compile(t *testing.T) {
	engine := MustNew()

	doc, err := engine.Compile(context.Background(), minimalScript)

	require.NoError(t, err)
	assert.Equal(t, minimalHTML, doc.HTML)
	assert.Equal(t, "index.html", doc.OutputName)
	assert.False(t, doc.HasWarnings())
}

func TestEngine_Compile_StructuralError(t *testing.T) {
	engine := MustNew()

	_, err := engine.Compile(context.Background(), "psload\npsstart\npage Home:")

	require.Error(t, err)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))

	line, ok := customErr.GetMetadata(MetaKeyLine)
	require.True(t, ok)
	assert.Equal(t, "3", line)

	command, ok := customErr.GetMetadata(MetaKeyCommand)
	require.True(t, ok)
	assert.Equal(t, "page", command)

	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindStructural, kind)
}

func TestEngine_Compile_CanceledContext(t *testing.T) {
	engine := MustNew()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Compile(ctx, minimalScript)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestEngine_Compile_CollectsWarnings(t *testing.T) {
	engine := MustNew()

	doc, err := engine.Compile(context.Background(),
		"psload\npsstart\npage \"T\":\n    sectoin \"x\":")

	require.NoError(t, err)
	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, WarningUnknownCommand, doc.Warnings[0].Kind)
	assert.Equal(t, 4, doc.Warnings[0].Line)
}

func TestEngine_CompileFile(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "site.psu")
	require.NoError(t, os.WriteFile(scriptPath, []byte(minimalScript), 0644))

	outDir := filepath.Join(dir, "dist")
	engine := MustNew(WithOutputDir(outDir))

	doc, err := engine.CompileFile(context.Background(), scriptPath)

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(outDir, doc.OutputName))
	require.NoError(t, err)
	assert.Equal(t, minimalHTML, string(data))
}

func TestEngine_CompileFile_ExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "site.PSU")
	require.NoError(t, os.WriteFile(scriptPath, []byte(minimalScript), 0644))

	engine := MustNew(WithOutputDir(dir))
	_, err := engine.CompileFile(context.Background(), scriptPath)

	assert.NoError(t, err)
}

func TestEngine_CompileFile_BadExtension(t *testing.T) {
	engine := MustNew()

	_, err := engine.CompileFile(context.Background(), "site.txt")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), ErrMsgBadExtension))

	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindIO, kind)
}

func TestEngine_CompileFile_MissingFile(t *testing.T) {
	engine := MustNew()

	_, err := engine.CompileFile(context.Background(), filepath.Join(t.TempDir(), "ghost.psu"))

	require.Error(t, err)
	kind, ok := ErrorKind(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindIO, kind)
}

func TestEngine_Check(t *testing.T) {
	t.Run("valid script", func(t *testing.T) {
		engine := MustNew()
		result := engine.Check(context.Background(), minimalScript)

		assert.True(t, result.IsValid())
		assert.Empty(t, result.Issues())
	})

	t.Run("structural error becomes error issue", func(t *testing.T) {
		engine := MustNew()
		result := engine.Check(context.Background(), "psload\npsstart\n    else:")

		require.False(t, result.IsValid())
		errs := result.Errors()
		require.Len(t, errs, 1)
		assert.Equal(t, 3, errs[0].Line)
	})

	t.Run("warnings stay warnings by default", func(t *testing.T) {
		engine := MustNew()
		result := engine.Check(context.Background(),
			"psload\npsstart\npage \"T\":\n    blorp \"x\":")

		assert.True(t, result.IsValid())
		assert.True(t, result.HasWarnings())
	})

	t.Run("strict promotes warnings to errors", func(t *testing.T) {
		engine := MustNew(WithStrict(true))
		result := engine.Check(context.Background(),
			"psload\npsstart\npage \"T\":\n    blorp \"x\":")

		assert.False(t, result.IsValid())
		require.Len(t, result.Errors(), 1)
		assert.Equal(t, WarningUnknownCommand, result.Errors()[0].Kind)
	})
}
