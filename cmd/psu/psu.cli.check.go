package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	psu "github.com/celesteidev/PseudoScript-Utility"
)

// checkConfig holds parsed check command configuration
type checkConfig struct {
	scriptPath string
	format     string
	strict     bool
	verbose    bool
}

// checkOutput represents JSON output for check
type checkOutput struct {
	Script string      `json:"script"`
	Valid  bool        `json:"valid"`
	Issues []psu.Issue `json:"issues"`
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseCheckFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgNoScript, err)
		return ExitCodeUsage
	}

	data, err := os.ReadFile(cfg.scriptPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgBuildFailed, err)
		return ExitCodeIO
	}

	engine := psu.MustNew(
		psu.WithLogger(buildLogger(cfg.verbose, stderr)),
		psu.WithStrict(cfg.strict),
	)
	result := engine.Check(context.Background(), string(data))

	if cfg.format == OutputFormatJSON {
		return renderCheckJSON(cfg.scriptPath, result, stdout)
	}
	return renderCheckText(cfg.scriptPath, result, stdout)
}

func renderCheckText(script string, result *psu.CheckResult, stdout io.Writer) int {
	// The per-file header is interactive chrome; skip it when piped.
	if isTerminal(stdout) {
		fmt.Fprintf(stdout, FmtCheckHeader, script)
	}

	issues := result.Issues()
	if len(issues) == 0 {
		fmt.Fprintln(stdout, CheckTextValid)
		return ExitCodeSuccess
	}

	for _, issue := range issues {
		fmt.Fprintf(stdout, FmtIssueLine, severityName(issue.Severity), issue.Line, issue.Message)
	}
	fmt.Fprintf(stdout, FmtIssueSummary, len(result.Errors()), len(result.Warnings()))

	return checkExitCode(result)
}

func renderCheckJSON(script string, result *psu.CheckResult, stdout io.Writer) int {
	output := checkOutput{
		Script: script,
		Valid:  result.IsValid(),
		Issues: result.Issues(),
	}
	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return ExitCodeIO
	}
	fmt.Fprintln(stdout, string(jsonBytes))
	return checkExitCode(result)
}

// checkExitCode maps a check result to the exit-code scheme. Error
// findings that carry a warning kind are strict-promoted warnings and take
// the warnings exit code; genuine structural errors dominate.
func checkExitCode(result *psu.CheckResult) int {
	structural := false
	promoted := false
	for _, issue := range result.Errors() {
		if issue.Kind == "" {
			structural = true
		} else {
			promoted = true
		}
	}
	if structural {
		return ExitCodeStructural
	}
	if promoted {
		return ExitCodeWarnings
	}
	return ExitCodeSuccess
}

func severityName(severity psu.Severity) string {
	if severity == psu.SeverityError {
		return SeverityNameError
	}
	return SeverityNameWarning
}

// isTerminal reports whether the writer is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	script, rest, err := splitScriptArg(args)
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(CmdNameCheck, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &checkConfig{scriptPath: script}
	fs.StringVar(&cfg.format, FlagFormat, FlagDefaultFormat, "")
	fs.BoolVar(&cfg.strict, FlagStrict, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")

	if err := fs.Parse(rest); err != nil {
		return nil, err
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}
