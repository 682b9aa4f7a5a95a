package main

import (
	"fmt"
	"io"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	psu "github.com/celesteidev/PseudoScript-Utility"
)

// buildLogger creates a development zap logger to stderr when verbose is
// set, a no-op logger otherwise.
func buildLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(writerSyncer{stderr}),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}

// writerSyncer adapts an io.Writer to zapcore.WriteSyncer.
type writerSyncer struct {
	io.Writer
}

func (writerSyncer) Sync() error { return nil }

// loadConfig resolves the project config: an explicit --config path, or
// psu.yaml beside the script.
func loadConfig(configPath, scriptPath string) (*psu.ProjectConfig, error) {
	if configPath != "" {
		return psu.LoadProjectConfig(configPath)
	}
	return psu.FindProjectConfig(scriptPath)
}

// exitCodeForError maps a compile error to the exit-code scheme: I/O
// failures and structural script errors are distinguished via the error's
// kind metadata.
func exitCodeForError(err error) int {
	kind, ok := psu.ErrorKind(err)
	if !ok {
		return ExitCodeIO
	}
	if kind == psu.ErrKindStructural {
		return ExitCodeStructural
	}
	return ExitCodeIO
}

// printWarnings writes each collected warning with its line number.
func printWarnings(warnings []psu.Warning, out io.Writer) {
	for _, w := range warnings {
		fmt.Fprintf(out, FmtWarningLine, w.Line, w.Message)
	}
}

func runVersion(stdout io.Writer) int {
	fmt.Fprintf(stdout, FmtVersionTemplate, Version, runtime.Version())
	return ExitCodeSuccess
}

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	cmd := args[0]
	switch cmd {
	case CmdNameBuild:
		fmt.Fprintln(stdout, HelpBuildUsage)
	case CmdNameCheck:
		fmt.Fprintln(stdout, HelpCheckUsage)
	case CmdNameWatch:
		fmt.Fprintln(stdout, HelpWatchUsage)
	case CmdNameRepl:
		fmt.Fprintln(stdout, HelpReplUsage)
	case CmdNameVersion:
		fmt.Fprintln(stdout, HelpVersionUsage)
	case CmdNameHelp:
		fmt.Fprintln(stdout, HelpHelpUsage)
	default:
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, cmd)
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeUsage
	}

	return ExitCodeSuccess
}
