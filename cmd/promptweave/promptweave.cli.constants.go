package main

// Command names
const (
	CmdNameRender   = "render"
	CmdNameMessages = "messages"
	CmdNameExtract  = "extract"
	CmdNameLint     = "lint"
	CmdNameVersion  = "version"
)

// Flag names
const (
	FlagVar      = "var"
	FlagVarsFile = "vars"
	FlagOutput   = "output"
	FlagFormat   = "format"
	FlagTags     = "tags"
	FlagVerbose  = "verbose"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = OutputFormatYAML
)

// Output formats
const (
	OutputFormatYAML = "yaml"
	OutputFormatJSON = "json"
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Exit codes
const (
	ExitCodeSuccess   = 0
	ExitCodeError     = 1
	ExitCodeLintIssue = 3
)

// Error messages - ALL must be constants
const (
	ErrMsgReadInputFailed   = "failed to read input"
	ErrMsgReadVarsFailed    = "failed to read variables file"
	ErrMsgParseVarsFailed   = "failed to parse variables file"
	ErrMsgInvalidVarFlag    = "invalid --var value, expected key=value"
	ErrMsgRenderFailed      = "failed to render template"
	ErrMsgParseDocFailed    = "failed to parse document"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgEncodeFailed      = "failed to encode output"
	ErrMsgInvalidFormat     = "invalid output format, expected yaml or json"
	ErrMsgNoTags            = "at least one tag name is required"
)

// Output formatting
const (
	FmtLintIssue = "%s:%d:%d: %s: %s\n"
	FmtVersion   = "promptweave %s\n"
)

// File permissions for output files
const (
	OutputFilePermissions = 0o644
)
