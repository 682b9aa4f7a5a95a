package main

// Command names
const (
	CmdNameBuild   = "build"
	CmdNameCheck   = "check"
	CmdNameWatch   = "watch"
	CmdNameRepl    = "repl"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names
const (
	FlagOutDir  = "out-dir"
	FlagConfig  = "config"
	FlagStrict  = "strict"
	FlagVerbose = "verbose"
	FlagFormat  = "format"
)

// Flag default values
const (
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeUsage      = 1
	ExitCodeIO         = 2
	ExitCodeStructural = 3
	ExitCodeWarnings   = 4
)

// Error messages - ALL must be constants
const (
	ErrMsgNoScript       = "script file required"
	ErrMsgUnknownCommand = "unknown command"
	ErrMsgInvalidFormat  = "invalid output format"
	ErrMsgLoadConfig     = "failed to load project config"
	ErrMsgBuildFailed    = "build failed"
	ErrMsgWatchFailed    = "failed to start watcher"
)

// Output format strings
const (
	FmtErrorWithDetail  = "%s: %s\n"
	FmtErrorWithCause   = "%s: %v\n"
	FmtSuccessBanner    = "--- Successfully generated HTML file: %s ---\n"
	FmtWarningLine      = "warning (line %d): %s\n"
	FmtIssueLine        = "  [%s] line %d: %s\n"
	FmtIssueSummary     = "%d error(s), %d warning(s)\n"
	FmtCheckHeader      = "checking %s\n"
	FmtWatchStarted     = "[WATCH] watching %s\n"
	FmtWatchRebuilt     = "[WATCH] rebuilt %s\n"
	FmtWatchBuildError  = "[WATCH] build error: %v\n"
	FmtWatchError       = "[WATCH] watcher error: %v\n"
	FmtVersionTemplate  = "psu version %s\nGo: %s\n"
)

// Check output text
const (
	CheckTextValid = "script is valid"
)

// Severity names for output
const (
	SeverityNameError   = "ERROR"
	SeverityNameWarning = "WARNING"
)

// CLI metadata
const (
	CLIName = "psu"
)

// Version is injected via ldflags; "dev" otherwise.
var Version = "dev"

// Help text templates
const (
	HelpMainUsage = `psu - PseudoScript Utility: compile .psu markup scripts to static HTML

Usage:
    psu <command> [options]

Commands:
    build       Compile a script and write the HTML artifact
    check       Validate a script without writing anything
    watch       Rebuild the script whenever it changes
    repl        Interactive line-at-a-time interpretation
    version     Show version information
    help        Show help for a command

Use "psu help <command>" for more information about a command.`

	HelpBuildUsage = `Compile a .psu script and write the HTML artifact

Usage:
    psu build <script.psu> [options]

Options:
    --out-dir <dir>     Directory to write the artifact into (default: .)
    --config <file>     Project config file (default: psu.yaml beside the script)
    --strict            Exit non-zero when the script raises warnings
    --verbose           Log interpreter activity to stderr

Examples:
    psu build site.psu
    psu build site.psu --out-dir dist --strict`

	HelpCheckUsage = `Validate a .psu script without writing anything

Usage:
    psu check <script.psu> [options]

Options:
    --format <format>   Output format: text, json (default: text)
    --strict            Report warnings at error severity

Examples:
    psu check site.psu
    psu check site.psu --format json`

	HelpWatchUsage = `Rebuild a .psu script whenever it changes

Usage:
    psu watch <script.psu> [options]

Options:
    --out-dir <dir>     Directory to write the artifact into (default: .)
    --config <file>     Project config file (default: psu.yaml beside the script)
    --verbose           Log interpreter activity to stderr

Press Ctrl-C to stop watching.`

	HelpReplUsage = `Interactive line-at-a-time interpretation

Usage:
    psu repl

The psload/psstart header is implicit; type commands directly.
REPL commands: :vars, :html, :reset, :help. Type exit or quit to leave.`

	HelpVersionUsage = `Show version information

Usage:
    psu version`

	HelpHelpUsage = `Show help for a command

Usage:
    psu help [command]`
)
