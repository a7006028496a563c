package promptweave

import (
	"strconv"

	"github.com/itsatony/go-cuserr"
)

// Error message constants - all error messages must be constants (NO MAGIC STRINGS)
const (
	// Render errors
	ErrMsgRenderFailed     = "template rendering failed"
	ErrMsgMaxDepthExceeded = "maximum render depth exceeded"
	ErrMsgTemplateTooLarge = "template exceeds maximum length"

	// Document errors
	ErrMsgFrontmatterInvalid  = "invalid document frontmatter"
	ErrMsgFrontmatterUnclosed = "unclosed document frontmatter"
	ErrMsgFrontmatterTooLarge = "document frontmatter too large"

	// Store errors
	ErrMsgTemplateNotFound   = "template not found"
	ErrMsgVersionNotFound    = "template version not found"
	ErrMsgStoreClosed        = "template store is closed"
	ErrMsgEmptyTemplateName  = "template name cannot be empty"
	ErrMsgInvalidStoreRoot   = "invalid store root directory"
	ErrMsgStoreDirUnreadable = "cannot read store directory"
	ErrMsgEmptyConnString    = "connection string cannot be empty"
	ErrMsgConnectionFailed   = "database connection failed"
	ErrMsgMigrationFailed    = "schema migration failed"
	ErrMsgQueryFailed        = "store query failed"
	ErrMsgWatcherFailed      = "filesystem watcher failed"
	ErrMsgInvalidName        = "template name contains invalid characters"
)

// Error code constants for categorization
const (
	ErrCodeRender   = "PROMPTWEAVE_RENDER"
	ErrCodeDocument = "PROMPTWEAVE_DOCUMENT"
	ErrCodeStore    = "PROMPTWEAVE_STORE"
)

// NewRenderError wraps a renderer limit violation with its template context
func NewRenderError(cause error, templateName string) error {
	err := cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderFailed)
	if templateName != "" {
		return err.WithMetadata(MetaKeyTemplate, templateName)
	}
	return err
}

// NewFrontmatterError creates a document frontmatter error
func NewFrontmatterError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeDocument, msg)
	}
	return cuserr.NewValidationError(ErrCodeDocument, msg)
}

// NewTemplateNotFoundError creates a template lookup error
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyTemplate, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplate, name)
}

// NewVersionNotFoundError creates a template version lookup error
func NewVersionNotFoundError(name string, version int) error {
	return cuserr.NewNotFoundError(MetaKeyTemplate, ErrMsgVersionNotFound).
		WithMetadata(MetaKeyTemplate, name).
		WithMetadata(MetaKeyVersion, strconv.Itoa(version))
}

// NewStoreClosedError signals use of a closed template store
func NewStoreClosedError() error {
	return cuserr.NewValidationError(ErrCodeStore, ErrMsgStoreClosed)
}

// NewStoreError creates a generic store error with an optional cause
func NewStoreError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeStore, msg)
	}
	return cuserr.NewValidationError(ErrCodeStore, msg)
}

// NewInvalidNameError creates an invalid template name error
func NewInvalidNameError(name string) error {
	return cuserr.NewValidationError(ErrCodeStore, ErrMsgInvalidName).
		WithMetadata(MetaKeyTemplate, name)
}
