package promptweave

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	maxDepth          int
	maxTemplateLength int
	parseCacheSize    int
	store             TemplateStore
	logger            *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		maxDepth:          DefaultMaxDepth,
		maxTemplateLength: DefaultMaxTemplateLength,
		parseCacheSize:    DefaultParseCacheSize,
		store:             nil,
		logger:            nil,
	}
}

// WithMaxDepth sets the maximum recursion depth for nested ternary branches.
// Use a negative value for unlimited depth.
// Default: 32
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithMaxTemplateLength sets the maximum template size in bytes.
// Use a negative value for unlimited length.
// Default: 1 MiB
func WithMaxTemplateLength(length int) Option {
	return func(c *engineConfig) {
		c.maxTemplateLength = length
	}
}

// WithParseCacheSize sets the maximum number of templates kept in the
// engine's parse cache. Use a negative value to disable caching.
// Default: 256
func WithParseCacheSize(size int) Option {
	return func(c *engineConfig) {
		c.parseCacheSize = size
	}
}

// WithStore attaches a template store for RenderStored.
// Default: nil (no store)
func WithStore(store TemplateStore) Option {
	return func(c *engineConfig) {
		c.store = store
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
