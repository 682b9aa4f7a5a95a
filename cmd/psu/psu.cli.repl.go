package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	psu "github.com/celesteidev/PseudoScript-Utility"
	"github.com/celesteidev/PseudoScript-Utility/internal"
)

// REPL prompt and meta-command strings
const (
	replPrompt      = "psu> "
	replHistoryFile = ".psu_history"

	replCmdVars  = ":vars"
	replCmdHTML  = ":html"
	replCmdReset = ":reset"
	replCmdHelp  = ":help"
	replExit     = "exit"
	replQuit     = "quit"

	replMsgNoVars    = "no variables defined"
	replMsgReset     = "session reset"
	replMsgInterrupt = "^C"
	replFmtBinding   = "  %s = %s\n"
)

const replBanner = `psu repl - type script lines, they run as you enter them
The psload/psstart header is implicit.
Commands: :vars  :html  :reset  :help   (exit or quit to leave)
`

const replHelpText = `REPL commands:
  :vars    Show defined variables
  :html    Render the buffer with all open blocks closed
  :reset   Discard all state and start over
  :help    Show this help
  exit, quit, Ctrl-D   Leave the REPL`

func runRepl(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	engine := psu.MustNew(psu.WithLogger(buildLogger(false, stderr)))
	session := engine.NewSession(context.Background())

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	line.SetCompleter(func(input string) []string {
		return completeCommands(input)
	})

	historyFile := filepath.Join(os.TempDir(), replHistoryFile)
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Fprint(stdout, replBanner)

	for {
		input, err := line.Prompt(replPrompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Fprintln(stdout, replMsgInterrupt)
				continue
			}
			// Ctrl-D or closed input
			fmt.Fprintln(stdout)
			return ExitCodeSuccess
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == replExit || trimmed == replQuit {
			return ExitCodeSuccess
		}
		if strings.HasPrefix(trimmed, ":") {
			handleReplCommand(trimmed, session, stdout)
			continue
		}
		if trimmed == "" {
			continue
		}

		line.AppendHistory(input)

		result, err := session.Feed(input)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgBuildFailed, err)
			continue
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(stderr, FmtWarningLine, w.Line, w.Message)
		}
		for _, emitted := range result.Lines {
			fmt.Fprintln(stdout, emitted)
		}
	}
}

// handleReplCommand handles REPL meta-commands that start with ':'
func handleReplCommand(cmd string, session *psu.Session, stdout io.Writer) {
	switch cmd {
	case replCmdVars:
		bindings := session.Vars()
		if len(bindings) == 0 {
			fmt.Fprintln(stdout, replMsgNoVars)
			return
		}
		for _, b := range bindings {
			fmt.Fprintf(stdout, replFmtBinding, b.Name, b.Value)
		}
	case replCmdHTML:
		html := session.Render()
		if html != "" {
			fmt.Fprintln(stdout, html)
		}
	case replCmdReset:
		session.Reset()
		fmt.Fprintln(stdout, replMsgReset)
	case replCmdHelp:
		fmt.Fprintln(stdout, replHelpText)
	default:
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, cmd)
	}
}

// completeCommands tab-completes script command names on the current word.
func completeCommands(input string) []string {
	trimmed := strings.TrimLeft(input, " \t")
	prefix := input[:len(input)-len(trimmed)]

	var matches []string
	for _, name := range internal.CommandNames() {
		if strings.HasPrefix(name, trimmed) {
			matches = append(matches, prefix+name)
		}
	}
	return matches
}
