package psu

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/celesteidev/PseudoScript-Utility/internal"
)

// Default constants
const (
	// DefaultOutputDir is where CompileFile writes artifacts.
	DefaultOutputDir = "."
	// ScriptExtension is the required script file extension.
	ScriptExtension = ".psu"
)

// Log message constants
const (
	logMsgCompileStarted = "compile started"
	logMsgCompileDone    = "compile finished"
	logMsgArtifactWrote  = "artifact written"
)

// Log field constants
const (
	logFieldScript   = "script"
	logFieldOutput   = "output"
	logFieldWarnings = "warning_count"
)

// Engine is the main entry point for the PSU interpreter. It holds the
// run-independent configuration; every compile builds a fresh interpreter,
// so one Engine may serve concurrent calls.
type Engine struct {
	config *engineConfig
	logger *zap.Logger
}

// New creates a new PSU Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Compile interprets a script source and returns the generated document.
// No file I/O happens; the caller owns the artifact.
func (e *Engine) Compile(ctx context.Context, source string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.logger.Debug(logMsgCompileStarted)
	interp := internal.NewInterp(e.logger)
	if err := interp.Run(source); err != nil {
		var scriptErr *internal.ScriptError
		if errors.As(err, &scriptErr) {
			return nil, newStructuralError(scriptErr)
		}
		return nil, err
	}

	doc := &Document{
		HTML:       interp.HTML(),
		OutputName: interp.OutputName(),
		Warnings:   publicWarnings(interp.Warnings()),
	}
	e.logger.Debug(logMsgCompileDone,
		zap.String(logFieldOutput, doc.OutputName),
		zap.Int(logFieldWarnings, len(doc.Warnings)))
	return doc, nil
}

// CompileFile reads a .psu script, interprets it, and writes the HTML
// artifact into the configured output directory. The extension check is
// case-insensitive.
func (e *Engine) CompileFile(ctx context.Context, path string) (*Document, error) {
	if !strings.EqualFold(filepath.Ext(path), ScriptExtension) {
		return nil, NewBadExtensionError(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewScriptReadError(path, err)
	}

	doc, err := e.Compile(ctx, string(data))
	if err != nil {
		return nil, err
	}

	sink := internal.NewDirSink(e.config.outputDir)
	if err := sink.Write(doc.OutputName, []byte(doc.HTML)); err != nil {
		return nil, NewOutputWriteError(doc.OutputName, err)
	}
	e.logger.Debug(logMsgArtifactWrote,
		zap.String(logFieldScript, path),
		zap.String(logFieldOutput, filepath.Join(e.config.outputDir, doc.OutputName)))
	return doc, nil
}

// Strict reports whether the engine promotes warnings to errors in Check
// results.
func (e *Engine) Strict() bool {
	return e.config.strict
}

// OutputDir returns the directory CompileFile writes artifacts into.
func (e *Engine) OutputDir() string {
	return e.config.outputDir
}
