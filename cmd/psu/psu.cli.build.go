package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	psu "github.com/celesteidev/PseudoScript-Utility"
)

// buildConfig holds parsed build command configuration
type buildConfig struct {
	scriptPath string
	outDir     string
	configPath string
	strict     bool
	verbose    bool
}

func runBuild(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseBuildFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgNoScript, err)
		return ExitCodeUsage
	}

	project, err := loadConfig(cfg.configPath, cfg.scriptPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadConfig, err)
		return ExitCodeIO
	}

	// Flags override file values.
	outDir := project.OutDir
	if cfg.outDir != "" {
		outDir = cfg.outDir
	}
	strict := project.Strict || cfg.strict

	engine := psu.MustNew(
		psu.WithLogger(buildLogger(cfg.verbose, stderr)),
		psu.WithOutputDir(outDir),
		psu.WithStrict(strict),
	)

	doc, err := engine.CompileFile(context.Background(), cfg.scriptPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgBuildFailed, err)
		return exitCodeForError(err)
	}

	printWarnings(doc.Warnings, stderr)
	fmt.Fprintf(stdout, FmtSuccessBanner, doc.OutputName)

	if strict && doc.HasWarnings() {
		return ExitCodeWarnings
	}
	return ExitCodeSuccess
}

func parseBuildFlags(args []string) (*buildConfig, error) {
	script, rest, err := splitScriptArg(args)
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(CmdNameBuild, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &buildConfig{scriptPath: script}
	fs.StringVar(&cfg.outDir, FlagOutDir, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.BoolVar(&cfg.strict, FlagStrict, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")

	if err := fs.Parse(rest); err != nil {
		return nil, err
	}

	return cfg, nil
}

// splitScriptArg extracts the leading positional script path so flags may
// follow it, as in `psu build site.psu --strict`.
func splitScriptArg(args []string) (string, []string, error) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return "", nil, errors.New(ErrMsgNoScript)
	}
	return args[0], args[1:], nil
}
