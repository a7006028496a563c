package promptweave

import (
	"context"
	"errors"

	"github.com/promptweave/go-promptweave/internal"
	"go.uber.org/zap"
)

// Engine is the main entry point for the promptweave templating system.
// It owns the parse cache and render limits; every other operation in this
// package is a pure function over its arguments.
type Engine struct {
	renderer *internal.Renderer
	cache    *internal.SegmentCache
	config   *engineConfig
	logger   *zap.Logger
}

// New creates a new promptweave Engine with the given options.
func New(opts ...Option) *Engine {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var cache *internal.SegmentCache
	if config.parseCacheSize >= 0 {
		cache = internal.NewSegmentCache(config.parseCacheSize)
	}

	rendererConfig := internal.RendererConfig{
		MaxDepth:          config.maxDepth,
		MaxTemplateLength: config.maxTemplateLength,
	}
	renderer := internal.NewRenderer(rendererConfig, cache, logger)

	return &Engine{
		renderer: renderer,
		cache:    cache,
		config:   config,
		logger:   logger,
	}
}

// Render substitutes placeholders in the template using the variable map.
//
// Malformed template shapes (unmatched delimiters, unparseable ternary
// branches, unknown variables) never produce an error; they degrade to
// literal text or empty substitutions. Only the depth and length guards
// error, wrapped with render context.
func (e *Engine) Render(template string, vars map[string]any) (string, error) {
	out, err := e.renderer.Render(template, vars)
	if err != nil {
		return "", NewRenderError(err, "")
	}
	return out, nil
}

// RenderDocument parses a document (optional YAML frontmatter plus body) and
// renders its body. Frontmatter defaults apply beneath the caller's
// variables: a caller-supplied value always wins.
func (e *Engine) RenderDocument(source string, vars map[string]any) (string, error) {
	doc, err := ParseDocument(source)
	if err != nil {
		return "", err
	}
	merged := mergeVars(doc.Defaults, vars)
	out, err := e.renderer.Render(doc.Body, merged)
	if err != nil {
		return "", NewRenderError(err, doc.Name)
	}
	return out, nil
}

// RenderStored fetches a template by name from the configured store and
// renders it as a document.
func (e *Engine) RenderStored(ctx context.Context, name string, vars map[string]any) (string, error) {
	if e.config.store == nil {
		return "", NewStoreError(ErrMsgNoStoreConfigured, nil)
	}
	stored, err := e.config.store.Get(ctx, name)
	if err != nil {
		return "", err
	}
	return e.RenderDocument(stored.Source, vars)
}

// CacheLen returns the number of templates currently in the parse cache.
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// PurgeCache removes all entries from the parse cache.
func (e *Engine) PurgeCache() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

// EvaluateCondition evaluates a constrained boolean expression against the
// variable map: two operands joined by && or ||, each optionally negated
// with !, or a single optionally-negated variable reference. Any other
// shape looks the entire expression string up as a literal variable name.
func EvaluateCondition(expr string, vars map[string]any) bool {
	return internal.EvaluateCondition(expr, vars)
}

// IsRenderLimitError reports whether err came from the renderer's depth or
// length guard rather than from a store or document problem.
func IsRenderLimitError(err error) bool {
	var renderErr *internal.RenderError
	return errors.As(err, &renderErr)
}

// mergeVars layers caller variables over document defaults
func mergeVars(defaults, vars map[string]any) map[string]any {
	if len(defaults) == 0 {
		return vars
	}
	merged := make(map[string]any, len(defaults)+len(vars))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range vars {
		merged[k] = v
	}
	return merged
}

// Additional error messages
const (
	ErrMsgNoStoreConfigured = "no template store configured"
)
