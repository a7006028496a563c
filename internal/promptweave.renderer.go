package internal

import (
	"strings"

	"go.uber.org/zap"
)

// RendererConfig holds renderer limits
type RendererConfig struct {
	// MaxDepth bounds recursion through nested ternary branches (0 = default).
	MaxDepth int
	// MaxTemplateLength bounds the template size in bytes (0 = default,
	// negative = unlimited).
	MaxTemplateLength int
}

// DefaultRendererConfig returns the default renderer configuration
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		MaxDepth:          DefaultMaxDepth,
		MaxTemplateLength: DefaultMaxTemplateLength,
	}
}

// Renderer substitutes placeholders in template text. It is pure with respect
// to its arguments: the only state it touches is the optional segment cache
// it was constructed with, which is safe for concurrent use.
type Renderer struct {
	config RendererConfig
	cache  *SegmentCache
	logger *zap.Logger
}

// NewRenderer creates a renderer. cache may be nil to scan on every call.
func NewRenderer(config RendererConfig, cache *SegmentCache, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MaxDepth == 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	if config.MaxTemplateLength == 0 {
		config.MaxTemplateLength = DefaultMaxTemplateLength
	}
	return &Renderer{
		config: config,
		cache:  cache,
		logger: logger,
	}
}

// Render substitutes placeholders in the template using the variable map.
// Malformed template shapes never produce an error; only the depth and
// length guards do.
func (r *Renderer) Render(template string, vars map[string]any) (string, error) {
	if r.config.MaxTemplateLength > 0 && len(template) > r.config.MaxTemplateLength {
		detail := template
		if len(detail) > MaxStringDisplayLength {
			detail = detail[:TruncatedStringLength] + TruncationSuffix
		}
		return "", &RenderError{
			Message: ErrMsgTemplateTooLarge,
			Detail:  detail,
		}
	}
	r.logger.Debug(LogMsgRenderStart, zap.Int(LogFieldSource, len(template)))
	out, err := r.render(template, vars, 0)
	if err != nil {
		return "", err
	}
	r.logger.Debug(LogMsgRenderEnd, zap.Int(LogFieldOutput, len(out)))
	return out, nil
}

// render is the recursive core shared by top-level and branch rendering
func (r *Renderer) render(template string, vars map[string]any, depth int) (string, error) {
	if r.config.MaxDepth > 0 && depth > r.config.MaxDepth {
		return "", &RenderError{Message: ErrMsgMaxDepthExceeded}
	}

	segments := r.segments(template)

	var out strings.Builder
	trimNewline := false
	for _, seg := range segments {
		switch seg.Type {
		case SegmentTypeText:
			text := seg.Value
			if trimNewline {
				text = strings.TrimPrefix(text, "\n")
				trimNewline = false
			}
			out.WriteString(text)
		case SegmentTypeExpr:
			value, err := r.evaluate(seg.Value, vars, depth)
			if err != nil {
				return "", err
			}
			// An empty substitution swallows the one newline that
			// immediately follows the placeholder.
			trimNewline = value == ""
			out.WriteString(value)
		}
	}
	return out.String(), nil
}

// evaluate resolves a single raw placeholder expression to its substitution
func (r *Renderer) evaluate(raw string, vars map[string]any, depth int) (string, error) {
	switch node := ParseExpression(raw).(type) {
	case *VarNode:
		return lookupValue(node.Name, vars), nil
	case *TernaryNode:
		branch := node.FalseBranch
		if EvaluateCondition(node.Condition, vars) {
			branch = node.TrueBranch
		}
		if strings.Contains(branch, StrPlaceholderOpen) {
			return r.render(branch, vars, depth+1)
		}
		return branch, nil
	default:
		return "", nil
	}
}

// segments returns the scanned segments for a template, via the cache when
// one is configured
func (r *Renderer) segments(template string) []Segment {
	if r.cache != nil {
		if segs, ok := r.cache.Get(template); ok {
			r.logger.Debug(LogMsgCacheHit, zap.Int(LogFieldSource, len(template)))
			return segs
		}
	}
	segs, _ := Scan(template, r.logger)
	if r.cache != nil {
		r.cache.Put(template, segs)
	}
	return segs
}

// lookupValue resolves a bare variable reference to its text form.
// The reserved task_context variable additionally renders empty when its
// value is all-whitespace, so an absent context block never leaves stray
// newlines in assembled prompts.
func lookupValue(name string, vars map[string]any) string {
	val, ok := vars[name]
	if name == VarNameTaskContext {
		if !ok || strings.TrimSpace(Stringify(val)) == "" {
			return ""
		}
		return Stringify(val)
	}
	if !ok {
		return ""
	}
	return Stringify(val)
}

// RenderError represents a renderer limit violation
type RenderError struct {
	Message string
	Detail  string
}

// Error implements the error interface
func (e *RenderError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// Renderer error messages
const (
	ErrMsgMaxDepthExceeded = "maximum render depth exceeded"
	ErrMsgTemplateTooLarge = "template exceeds maximum length"
)
