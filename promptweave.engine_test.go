package promptweave

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEngine_Render(t *testing.T) {
	engine := New()

	tests := []struct {
		name     string
		template string
		vars     map[string]any
		expected string
	}{
		{
			name:     "plain text",
			template: "no placeholders here",
			vars:     nil,
			expected: "no placeholders here",
		},
		{
			name:     "variable substitution",
			template: "Hello {{name}}!",
			vars:     map[string]any{"name": "Ada"},
			expected: "Hello Ada!",
		},
		{
			name:     "ternary with compound condition",
			template: "{{a && b ? `both` : `not both`}}",
			vars:     map[string]any{"a": true, "b": false},
			expected: "not both",
		},
		{
			name:     "empty substitution swallows newline",
			template: "before{{missing}}\nafter",
			vars:     nil,
			expected: "beforeafter",
		},
		{
			name:     "task context absent",
			template: "Task:{{task_context}}\nGo.",
			vars:     nil,
			expected: "Task:Go.",
		},
		{
			name:     "recursive branch rendering",
			template: "{{polite ? `Dear {{name}},` : `{{name}}:`}}",
			vars:     map[string]any{"polite": true, "name": "Grace"},
			expected: "Dear Grace,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Render(tt.template, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestEngine_Render_DepthLimitError(t *testing.T) {
	engine := New(WithMaxDepth(2))

	nested := "bottom"
	for i := 0; i < 4; i++ {
		nested = "{{go ? " + nested + "}}"
	}

	_, err := engine.Render(nested, map[string]any{"go": true})
	require.Error(t, err)
	assert.True(t, IsRenderLimitError(err))
	assert.Contains(t, err.Error(), ErrMsgRenderFailed)
}

func TestEngine_Render_LengthLimitError(t *testing.T) {
	engine := New(WithMaxTemplateLength(16))

	_, err := engine.Render(strings.Repeat("x", 17), nil)
	require.Error(t, err)
	assert.True(t, IsRenderLimitError(err))
}

func TestEngine_Render_OtherErrorsAreNotLimitErrors(t *testing.T) {
	assert.False(t, IsRenderLimitError(errors.New("some other error")))
	assert.False(t, IsRenderLimitError(NewTemplateNotFoundError("x")))
	assert.False(t, IsRenderLimitError(nil))
}

func TestEngine_RenderDocument(t *testing.T) {
	engine := New()

	source := `---
name: greeting
defaults:
  tone: friendly
  name: world
---
{{tone}} greetings, {{name}}!`

	// Defaults fill absent variables.
	result, err := engine.RenderDocument(source, nil)
	require.NoError(t, err)
	assert.Equal(t, "friendly greetings, world!", result)

	// Caller variables win over defaults.
	result, err = engine.RenderDocument(source, map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "friendly greetings, Ada!", result)

	// A bare template is all body.
	result, err = engine.RenderDocument("plain {{x}}", map[string]any{"x": "body"})
	require.NoError(t, err)
	assert.Equal(t, "plain body", result)
}

func TestEngine_RenderDocument_InvalidFrontmatter(t *testing.T) {
	engine := New()

	_, err := engine.RenderDocument("---\nname: [unclosed\n---\nbody", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFrontmatterInvalid)
}

func TestEngine_RenderStored(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	tmpl := &StoredTemplate{
		Name:   "greeting",
		Source: "---\ndefaults:\n  who: world\n---\nHello {{who}}!",
	}
	require.NoError(t, store.Save(ctx, tmpl))

	engine := New(WithStore(store))

	result, err := engine.RenderStored(ctx, "greeting", nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello world!", result)

	result, err = engine.RenderStored(ctx, "greeting", map[string]any{"who": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada!", result)

	_, err = engine.RenderStored(ctx, "missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgTemplateNotFound)
}

func TestEngine_RenderStored_NoStore(t *testing.T) {
	engine := New()

	_, err := engine.RenderStored(context.Background(), "any", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgNoStoreConfigured)
}

func TestEngine_ParseCache(t *testing.T) {
	engine := New(WithParseCacheSize(4))

	_, err := engine.Render("Hello {{name}}", map[string]any{"name": "a"})
	require.NoError(t, err)
	assert.Equal(t, 1, engine.CacheLen())

	_, err = engine.Render("Hello {{name}}", map[string]any{"name": "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, engine.CacheLen())

	_, err = engine.Render("Bye {{name}}", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, engine.CacheLen())

	engine.PurgeCache()
	assert.Equal(t, 0, engine.CacheLen())
}

func TestEngine_ParseCacheDisabled(t *testing.T) {
	engine := New(WithParseCacheSize(-1))

	result, err := engine.Render("Hello {{name}}", map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada", result)
	assert.Equal(t, 0, engine.CacheLen())

	// Purging a disabled cache is a no-op, not a panic.
	engine.PurgeCache()
}

func TestEngine_WithLogger(t *testing.T) {
	engine := New(WithLogger(zap.NewNop()))

	result, err := engine.Render("{{x}}", map[string]any{"x": "ok"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestEvaluateCondition_PublicSurface(t *testing.T) {
	vars := map[string]any{"a": true, "b": false}

	assert.True(t, EvaluateCondition("a", vars))
	assert.False(t, EvaluateCondition("b", vars))
	assert.True(t, EvaluateCondition("!b", vars))
	assert.False(t, EvaluateCondition("a && b", vars))
	assert.True(t, EvaluateCondition("a || b", vars))

	// Over-long operator chains look the whole string up as a variable.
	assert.False(t, EvaluateCondition("a && a && a", vars))
	assert.True(t, EvaluateCondition("a && a && a", map[string]any{"a && a && a": 1}))
}
