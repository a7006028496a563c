package promptweave

import "time"

// Placeholder delimiter constants - the {{ }} syntax used by prompt templates
const (
	PlaceholderOpen  = "{{"
	PlaceholderClose = "}}"
)

// Message role constants - the lowercase values carried on RoleMessage
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Role tag constants - the exact uppercase markers recognized in text.
// Any other casing is inert literal text.
const (
	RoleTagSystem    = "SYSTEM"
	RoleTagUser      = "USER"
	RoleTagAssistant = "ASSISTANT"
)

// VarNameTaskContext is the reserved variable name that renders as empty
// when its value is missing or all-whitespace.
const VarNameTaskContext = "task_context"

// Engine defaults
const (
	// DefaultMaxDepth bounds recursion through nested ternary branches.
	DefaultMaxDepth = 32

	// DefaultMaxTemplateLength bounds template size in bytes (1 MiB).
	DefaultMaxTemplateLength = 1 << 20

	// DefaultParseCacheSize bounds the engine's parse cache.
	DefaultParseCacheSize = 256
)

// YAMLFrontmatterDelimiter is the standard YAML frontmatter delimiter
const YAMLFrontmatterDelimiter = "---"

// DefaultMaxFrontmatterSize bounds the frontmatter block of a document (64 KiB)
const DefaultMaxFrontmatterSize = 64 * 1024

// Template ID constants
const (
	TemplateIDPrefix = "tmpl_"
	TemplateIDLength = 12
)

// Metadata key constants for structured errors
const (
	MetaKeyLine     = "line"
	MetaKeyColumn   = "column"
	MetaKeyOffset   = "offset"
	MetaKeyTemplate = "template"
	MetaKeyVariable = "variable"
	MetaKeyVersion  = "version"
	MetaKeyPath     = "path"
	MetaKeyDriver   = "driver"
)

// Filesystem store constants
const (
	FilesystemDirPermissions  = 0o755
	FilesystemFilePermissions = 0o644
	FilesystemTemplateExt     = ".pw.md"
)

// Postgres store defaults
const (
	PostgresTablePrefix            = "promptweave_"
	PostgresDefaultMaxOpenConns    = 25
	PostgresDefaultMaxIdleConns    = 5
	PostgresDefaultConnMaxLifetime = 5 * time.Minute
	PostgresDefaultConnMaxIdleTime = 5 * time.Minute
	PostgresDefaultQueryTimeout    = 30 * time.Second
)

// Store cache defaults
const (
	DefaultStoreCacheTTL         = 5 * time.Minute
	DefaultStoreCacheMaxEntries  = 1000
	DefaultStoreCacheNegativeTTL = 30 * time.Second
)
