package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	psu "github.com/celesteidev/PseudoScript-Utility"
)

// defaultDebounce is the rebuild debounce window when the project config
// does not set one.
const defaultDebounce = 100 * time.Millisecond

// ANSI clear-screen-and-home sequence
const ansiClearScreen = "\033[2J\033[H"

// watchConfig holds parsed watch command configuration
type watchConfig struct {
	scriptPath string
	outDir     string
	configPath string
	verbose    bool
}

func runWatch(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseWatchFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgNoScript, err)
		return ExitCodeUsage
	}

	project, err := loadConfig(cfg.configPath, cfg.scriptPath)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadConfig, err)
		return ExitCodeIO
	}

	outDir := project.OutDir
	if cfg.outDir != "" {
		outDir = cfg.outDir
	}
	debounce := defaultDebounce
	if project.Watch.DebounceMs > 0 {
		debounce = time.Duration(project.Watch.DebounceMs) * time.Millisecond
	}

	engine := psu.MustNew(
		psu.WithLogger(buildLogger(cfg.verbose, stderr)),
		psu.WithOutputDir(outDir),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := &watcher{
		engine:      engine,
		scriptPath:  cfg.scriptPath,
		debounce:    debounce,
		clearScreen: project.Watch.ClearScreen && isTerminal(stdout),
		stdout:      stdout,
		stderr:      stderr,
	}
	return w.watch(ctx)
}

// watcher rebuilds one script on filesystem changes. A build failure is
// reported but never stops the watch; the next change triggers another
// attempt.
type watcher struct {
	engine      *psu.Engine
	scriptPath  string
	debounce    time.Duration
	clearScreen bool
	stdout      io.Writer
	stderr      io.Writer
	lastChange  time.Time
}

func (w *watcher) watch(ctx context.Context) int {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(w.stderr, FmtErrorWithCause, ErrMsgWatchFailed, err)
		return ExitCodeIO
	}
	defer fsWatcher.Close()

	// Watching the directory, not the file, survives editors that replace
	// the file on save.
	dir := filepath.Dir(w.scriptPath)
	if err := fsWatcher.Add(dir); err != nil {
		fmt.Fprintf(w.stderr, FmtErrorWithCause, ErrMsgWatchFailed, err)
		return ExitCodeIO
	}
	fmt.Fprintf(w.stdout, FmtWatchStarted, w.scriptPath)

	w.rebuild()

	for {
		select {
		case <-ctx.Done():
			return ExitCodeSuccess

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return ExitCodeSuccess
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), psu.ScriptExtension) {
				continue
			}
			if time.Since(w.lastChange) < w.debounce {
				continue
			}
			w.lastChange = time.Now()
			w.rebuild()

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return ExitCodeSuccess
			}
			fmt.Fprintf(w.stderr, FmtWatchError, err)
		}
	}
}

func (w *watcher) rebuild() {
	if w.clearScreen {
		fmt.Fprint(w.stdout, ansiClearScreen)
	}
	doc, err := w.engine.CompileFile(context.Background(), w.scriptPath)
	if err != nil {
		fmt.Fprintf(w.stderr, FmtWatchBuildError, err)
		return
	}
	printWarnings(doc.Warnings, w.stderr)
	fmt.Fprintf(w.stdout, FmtWatchRebuilt, doc.OutputName)
}

func parseWatchFlags(args []string) (*watchConfig, error) {
	script, rest, err := splitScriptArg(args)
	if err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(CmdNameWatch, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &watchConfig{scriptPath: script}
	fs.StringVar(&cfg.outDir, FlagOutDir, "", "")
	fs.StringVar(&cfg.configPath, FlagConfig, "", "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")

	if err := fs.Parse(rest); err != nil {
		return nil, err
	}

	return cfg, nil
}
