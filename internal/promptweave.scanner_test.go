package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// assertSegmentsMatch compares segment types and values, ignoring positions
func assertSegmentsMatch(t *testing.T, expected, actual []Segment) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Equal(t, expected[i].Type, actual[i].Type, "segment %d type", i)
		assert.Equal(t, expected[i].Value, actual[i].Value, "segment %d value", i)
	}
}

func TestScanner_Scan_PlainText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Segment
	}{
		{
			name:     "empty string",
			input:    "",
			expected: nil,
		},
		{
			name:  "simple text",
			input: "Hello, world!",
			expected: []Segment{
				{Type: SegmentTypeText, Value: "Hello, world!"},
			},
		},
		{
			name:  "multiline text",
			input: "Line 1\nLine 2\nLine 3",
			expected: []Segment{
				{Type: SegmentTypeText, Value: "Line 1\nLine 2\nLine 3"},
			},
		},
		{
			name:  "single braces are literal",
			input: "a { b } c",
			expected: []Segment{
				{Type: SegmentTypeText, Value: "a { b } c"},
			},
		},
		{
			name:  "lone close delimiter is literal",
			input: "a }} b",
			expected: []Segment{
				{Type: SegmentTypeText, Value: "a }} b"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, notices := Scan(tt.input, zap.NewNop())
			assertSegmentsMatch(t, tt.expected, segments)
			assert.Empty(t, notices)
		})
	}
}

func TestScanner_Scan_Placeholders(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Segment
	}{
		{
			name:  "single placeholder",
			input: "{{name}}",
			expected: []Segment{
				{Type: SegmentTypeExpr, Value: "name"},
			},
		},
		{
			name:  "placeholder between text",
			input: "Hello {{name}}!",
			expected: []Segment{
				{Type: SegmentTypeText, Value: "Hello "},
				{Type: SegmentTypeExpr, Value: "name"},
				{Type: SegmentTypeText, Value: "!"},
			},
		},
		{
			name:  "adjacent placeholders",
			input: "{{a}}{{b}}",
			expected: []Segment{
				{Type: SegmentTypeExpr, Value: "a"},
				{Type: SegmentTypeExpr, Value: "b"},
			},
		},
		{
			name:  "whitespace inside delimiters preserved in raw value",
			input: "{{ name }}",
			expected: []Segment{
				{Type: SegmentTypeExpr, Value: " name "},
			},
		},
		{
			name:  "nested placeholder closes at matching delimiter",
			input: "{{outer {{inner}} tail}}",
			expected: []Segment{
				{Type: SegmentTypeExpr, Value: "outer {{inner}} tail"},
			},
		},
		{
			name:  "doubly nested",
			input: "{{a {{b {{c}} }} d}}",
			expected: []Segment{
				{Type: SegmentTypeExpr, Value: "a {{b {{c}} }} d"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, notices := Scan(tt.input, zap.NewNop())
			assertSegmentsMatch(t, tt.expected, segments)
			assert.Empty(t, notices)
		})
	}
}

func TestScanner_Scan_BacktickLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // raw value of the single expected expr segment
	}{
		{
			name:     "close delimiter inside backticks does not close",
			input:    "{{cond ? `x }} y` : `z`}}",
			expected: "cond ? `x }} y` : `z`",
		},
		{
			name:     "open delimiter inside backticks does not nest",
			input:    "{{cond ? `a {{ b` : `c`}}",
			expected: "cond ? `a {{ b` : `c`",
		},
		{
			name:     "escaped backtick stays inside the literal",
			input:    "{{cond ? `a \\` }} b` : `c`}}",
			expected: "cond ? `a \\` }} b` : `c`",
		},
		{
			name:     "multiline literal",
			input:    "{{cond ? `line1\nline2` : ``}}",
			expected: "cond ? `line1\nline2` : ``",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, notices := Scan(tt.input, zap.NewNop())
			require.Len(t, segments, 1)
			assert.Equal(t, SegmentTypeExpr, segments[0].Type)
			assert.Equal(t, tt.expected, segments[0].Value)
			assert.Empty(t, notices)
		})
	}
}

func TestScanner_Scan_Unterminated(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Segment
	}{
		{
			name:  "unterminated opener degrades to literal text",
			input: "see {{oops",
			expected: []Segment{
				{Type: SegmentTypeText, Value: "see {{oops"},
			},
		},
		{
			name:  "bare opener at end of input",
			input: "tail {{",
			expected: []Segment{
				{Type: SegmentTypeText, Value: "tail {{"},
			},
		},
		{
			name:  "complete placeholder before unterminated one",
			input: "{{a}} and {{b",
			expected: []Segment{
				{Type: SegmentTypeExpr, Value: "a"},
				{Type: SegmentTypeText, Value: " and {{b"},
			},
		},
		{
			name:  "unclosed backtick swallows would-be close",
			input: "{{c ? `open }} text",
			expected: []Segment{
				{Type: SegmentTypeText, Value: "{{c ? `open }} text"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segments, notices := Scan(tt.input, zap.NewNop())
			assertSegmentsMatch(t, tt.expected, segments)
			require.Len(t, notices, 1)
			assert.Equal(t, NoticeUnterminatedPlaceholder, notices[0].Message)
		})
	}
}

func TestScanner_Scan_EmptyExpression(t *testing.T) {
	segments, notices := Scan("a{{}}b", zap.NewNop())
	assertSegmentsMatch(t, []Segment{
		{Type: SegmentTypeText, Value: "a"},
		{Type: SegmentTypeExpr, Value: ""},
		{Type: SegmentTypeText, Value: "b"},
	}, segments)
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeEmptyExpression, notices[0].Message)

	segments, notices = Scan("{{   }}", zap.NewNop())
	assertSegmentsMatch(t, []Segment{
		{Type: SegmentTypeExpr, Value: "   "},
	}, segments)
	require.Len(t, notices, 1)
	assert.Equal(t, NoticeEmptyExpression, notices[0].Message)
}

func TestScanner_Scan_Positions(t *testing.T) {
	segments, notices := Scan("ab\n{{x}}cd", zap.NewNop())
	require.Empty(t, notices)
	require.Len(t, segments, 3)

	assert.Equal(t, Position{Offset: 0, Line: 1, Column: 1}, segments[0].Position)
	assert.Equal(t, Position{Offset: 3, Line: 2, Column: 1}, segments[1].Position)
	assert.Equal(t, Position{Offset: 8, Line: 2, Column: 6}, segments[2].Position)
}

func TestScanner_Scan_NoticePosition(t *testing.T) {
	_, notices := Scan("line one\nhas {{broken", zap.NewNop())
	require.Len(t, notices, 1)
	assert.Equal(t, Position{Offset: 13, Line: 2, Column: 5}, notices[0].Position)
}

func TestScanner_NilLoggerDefaultsToNop(t *testing.T) {
	s := NewScanner("{{x}}", nil)
	segments, _ := s.Scan()
	require.Len(t, segments, 1)
}
