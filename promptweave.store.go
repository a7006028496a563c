package promptweave

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"strings"
	"time"
)

// TemplateID is a unique identifier for a stored template version.
// Uses prefixed random format (e.g., "tmpl_6ByTSYmGzT2c").
type TemplateID string

// StoredTemplate is a template document with storage metadata.
type StoredTemplate struct {
	// ID is the unique identifier for this template version.
	ID TemplateID `json:"id" yaml:"id"`

	// Name is the template name used for lookups.
	Name string `json:"name" yaml:"name"`

	// Source is the raw document source (frontmatter plus body).
	Source string `json:"source" yaml:"source"`

	// Version is the version number (1, 2, 3, ...). Higher is newer.
	Version int `json:"version" yaml:"version"`

	// Metadata contains arbitrary key-value pairs for user-defined data.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Tags for categorization.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// CreatedAt is when this version was created.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// UpdatedAt is when this version was last modified.
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// TemplateStore is the interface for pluggable template storage backends.
// Implementations must be safe for concurrent use.
type TemplateStore interface {
	// Get retrieves the latest version of a template by name.
	Get(ctx context.Context, name string) (*StoredTemplate, error)

	// GetVersion retrieves a specific version of a template.
	GetVersion(ctx context.Context, name string, version int) (*StoredTemplate, error)

	// Save stores a template. If a template with the same name exists, a new
	// version is created. ID, Version, CreatedAt and UpdatedAt are set by
	// the store.
	Save(ctx context.Context, tmpl *StoredTemplate) error

	// Delete removes all versions of a template by name.
	Delete(ctx context.Context, name string) error

	// List returns all template names in sorted order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// newTemplateID generates a random prefixed template ID.
func newTemplateID() TemplateID {
	buf := make([]byte, TemplateIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the platform entropy source is broken
		return TemplateID(TemplateIDPrefix + "00000000000000000000")
	}
	encoded := base64.RawURLEncoding.EncodeToString(buf)
	return TemplateID(TemplateIDPrefix + encoded)
}

// validateTemplateName rejects names that are empty or unsafe as lookup keys
// and filesystem paths.
func validateTemplateName(name string) error {
	if name == "" {
		return NewStoreError(ErrMsgEmptyTemplateName, nil)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return NewInvalidNameError(name)
	}
	return nil
}

// copyStoredTemplate returns a deep copy so callers can't mutate store state.
func copyStoredTemplate(tmpl *StoredTemplate) *StoredTemplate {
	if tmpl == nil {
		return nil
	}
	copied := *tmpl
	if tmpl.Metadata != nil {
		copied.Metadata = make(map[string]string, len(tmpl.Metadata))
		for k, v := range tmpl.Metadata {
			copied.Metadata[k] = v
		}
	}
	if tmpl.Tags != nil {
		copied.Tags = make([]string, len(tmpl.Tags))
		copy(copied.Tags, tmpl.Tags)
	}
	return &copied
}
