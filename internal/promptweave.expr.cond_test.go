package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateCondition_SingleOperand(t *testing.T) {
	vars := map[string]any{
		"yes":   true,
		"no":    false,
		"text":  "hello",
		"empty": "",
		"zero":  0,
		"one":   1,
		"nil":   nil,
	}

	tests := []struct {
		name     string
		expr     string
		expected bool
	}{
		{name: "true bool", expr: "yes", expected: true},
		{name: "false bool", expr: "no", expected: false},
		{name: "non-empty string", expr: "text", expected: true},
		{name: "empty string", expr: "empty", expected: false},
		{name: "zero", expr: "zero", expected: false},
		{name: "non-zero", expr: "one", expected: true},
		{name: "nil value", expr: "nil", expected: false},
		{name: "missing variable", expr: "missing", expected: false},
		{name: "negated true", expr: "!yes", expected: false},
		{name: "negated false", expr: "!no", expected: true},
		{name: "negated missing", expr: "!missing", expected: true},
		{name: "whitespace around name", expr: "  yes  ", expected: true},
		{name: "whitespace after negation", expr: "! yes", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvaluateCondition(tt.expr, vars))
		})
	}
}

func TestEvaluateCondition_TwoOperands(t *testing.T) {
	vars := map[string]any{
		"a": true,
		"b": true,
		"c": false,
	}

	tests := []struct {
		name     string
		expr     string
		expected bool
	}{
		{name: "and both true", expr: "a && b", expected: true},
		{name: "and one false", expr: "a && c", expected: false},
		{name: "and both false", expr: "c && missing", expected: false},
		{name: "or both true", expr: "a || b", expected: true},
		{name: "or one true", expr: "c || a", expected: true},
		{name: "or both false", expr: "c || missing", expected: false},
		{name: "and with negation", expr: "a && !c", expected: true},
		{name: "or with negation", expr: "!a || c", expected: false},
		{name: "no spaces around operator", expr: "a&&b", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvaluateCondition(tt.expr, vars))
		})
	}
}

// Expressions that do not split into exactly two operands fall back to
// looking up the whole expression string as a literal variable name. The
// fallback is load-bearing: callers can (and do) use variable names that
// contain operator characters.
func TestEvaluateCondition_WholeStringFallback(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		vars     map[string]any
		expected bool
	}{
		{
			name:     "three and-operands fall back to lookup",
			expr:     "a && b && c",
			vars:     map[string]any{"a": true, "b": true, "c": true},
			expected: false,
		},
		{
			name:     "three or-operands fall back to lookup",
			expr:     "a || b || c",
			vars:     map[string]any{"a": true},
			expected: false,
		},
		{
			name:     "fallback hits a matching literal key",
			expr:     "a && b && c",
			vars:     map[string]any{"a && b && c": true},
			expected: true,
		},
		{
			name:     "mixed operators split at and first",
			expr:     "a && b || c",
			vars:     map[string]any{"a": true, "b || c": "set"},
			expected: true,
		},
		{
			name:     "mixed operators with falsy right side",
			expr:     "a && b || c",
			vars:     map[string]any{"a": true, "b": true, "c": true},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EvaluateCondition(tt.expr, tt.vars))
		})
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "nil", value: nil, expected: false},
		{name: "true", value: true, expected: true},
		{name: "false", value: false, expected: false},
		{name: "empty string", value: "", expected: false},
		{name: "non-empty string", value: "x", expected: true},
		{name: "string zero is truthy", value: "0", expected: true},
		{name: "int zero", value: 0, expected: false},
		{name: "int non-zero", value: -1, expected: true},
		{name: "int64 zero", value: int64(0), expected: false},
		{name: "uint non-zero", value: uint(7), expected: true},
		{name: "float zero", value: 0.0, expected: false},
		{name: "float non-zero", value: 0.5, expected: true},
		{name: "float32 zero", value: float32(0), expected: false},
		{name: "empty slice is truthy", value: []string{}, expected: true},
		{name: "empty map is truthy", value: map[string]any{}, expected: true},
		{name: "struct is truthy", value: struct{}{}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTruthy(tt.value))
		})
	}
}
