package internal

// SegmentType identifies the kind of a template segment
type SegmentType string

// Segment type constants
const (
	SegmentTypeText SegmentType = "TEXT"
	SegmentTypeExpr SegmentType = "EXPR"
)

// Placeholder delimiter constants - the {{ }} syntax used by prompt templates
const (
	StrPlaceholderOpen  = "{{"
	StrPlaceholderClose = "}}"
)

// Character constants
const (
	CharBacktick    = '`'
	CharBackslash   = '\\'
	CharSingleQuote = '\''
	CharDoubleQuote = '"'
	CharQuestion    = '?'
	CharColon       = ':'
	CharNot         = '!'
	CharNewline     = '\n'
	CharSpace       = ' '
	CharTab         = '\t'
	CharCarriageRet = '\r'
)

// Boolean operator constants
const (
	OpAnd = "&&"
	OpOr  = "||"
)

// VarNameTaskContext is the reserved variable name that renders as empty
// when its value is missing or contains only whitespace.
const VarNameTaskContext = "task_context"

// Notice message constants for degraded-but-tolerated template shapes
const (
	NoticeUnterminatedPlaceholder = "unterminated placeholder treated as literal text"
	NoticeEmptyExpression         = "empty placeholder expression"
)

// Log message constants
const (
	LogMsgScannerCreated = "scanner created"
	LogMsgScanStart      = "scan started"
	LogMsgScanEnd        = "scan completed"
	LogMsgRenderStart    = "render started"
	LogMsgRenderEnd      = "render completed"
	LogMsgCacheHit       = "segment cache hit"
)

// Log field name constants
const (
	LogFieldSource   = "source_len"
	LogFieldSegments = "segments"
	LogFieldNotices  = "notices"
	LogFieldDepth    = "depth"
	LogFieldOutput   = "output_len"
)

// Renderer defaults
const (
	// DefaultMaxDepth bounds recursion through nested ternary branches.
	DefaultMaxDepth = 32

	// DefaultMaxTemplateLength bounds the size of a single template (1 MiB).
	DefaultMaxTemplateLength = 1 << 20
)

// Display truncation constants for String() methods
const (
	MaxStringDisplayLength = 40
	TruncatedStringLength  = 37
	TruncationSuffix       = "..."
)
