package promptweave

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a template source with optional YAML frontmatter. Frontmatter
// carries naming metadata and variable defaults; the body is the template
// text itself.
//
//	---
//	name: greeting
//	defaults:
//	  tone: friendly
//	---
//	{{ tone }} greetings, {{ name }}!
type Document struct {
	Name        string         `yaml:"name,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Tags        []string       `yaml:"tags,omitempty"`
	Defaults    map[string]any `yaml:"defaults,omitempty"`
	Body        string         `yaml:"-"`
}

// ParseDocument splits a template source into frontmatter and body.
// A source without a leading --- delimiter is all body. The frontmatter
// block must close with a --- line and parse as YAML.
func ParseDocument(source string) (*Document, error) {
	// Trim BOM so a delimiter on the first line is always recognized
	content := strings.TrimPrefix(source, "\xef\xbb\xbf")

	if !strings.HasPrefix(content, YAMLFrontmatterDelimiter) {
		return &Document{Body: content}, nil
	}

	// The newline after the opening delimiter stays in the search space so
	// an immediately following closing --- (empty frontmatter) is found.
	afterOpening := content[len(YAMLFrontmatterDelimiter):]

	closeIdx := strings.Index(afterOpening, "\n"+YAMLFrontmatterDelimiter)
	if closeIdx == -1 {
		return nil, NewFrontmatterError(ErrMsgFrontmatterUnclosed, nil)
	}

	fmYAML := afterOpening[:closeIdx]
	if len(fmYAML) > DefaultMaxFrontmatterSize {
		return nil, NewFrontmatterError(ErrMsgFrontmatterTooLarge, nil)
	}

	body := afterOpening[closeIdx+len("\n"+YAMLFrontmatterDelimiter):]
	body = trimLeadingNewline(body)

	var doc Document
	if err := yaml.Unmarshal([]byte(fmYAML), &doc); err != nil {
		return nil, NewFrontmatterError(ErrMsgFrontmatterInvalid, err)
	}
	doc.Body = body
	return &doc, nil
}

// ParseDocumentFile reads and parses a document from a file.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewFrontmatterError(ErrMsgFrontmatterInvalid, err)
	}
	return ParseDocument(string(data))
}

// Source reassembles the document into frontmatter-plus-body form.
// A document with no metadata serializes as its bare body.
func (d *Document) Source() (string, error) {
	if d.Name == "" && d.Description == "" && len(d.Tags) == 0 && len(d.Defaults) == 0 {
		return d.Body, nil
	}

	fm, err := yaml.Marshal(d)
	if err != nil {
		return "", NewFrontmatterError(ErrMsgFrontmatterInvalid, err)
	}

	var sb strings.Builder
	sb.WriteString(YAMLFrontmatterDelimiter)
	sb.WriteByte('\n')
	sb.Write(fm)
	sb.WriteString(YAMLFrontmatterDelimiter)
	sb.WriteByte('\n')
	sb.WriteString(d.Body)
	return sb.String(), nil
}

// trimLeadingNewline removes one leading \n or \r\n
func trimLeadingNewline(s string) string {
	if strings.HasPrefix(s, "\r\n") {
		return s[2:]
	}
	if strings.HasPrefix(s, "\n") {
		return s[1:]
	}
	return s
}
