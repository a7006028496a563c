package internal

import "fmt"

// Position represents a location in the source template
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// Segment is a contiguous span of a template: either literal text or the raw
// expression found between {{ and }} delimiters.
type Segment struct {
	Type     SegmentType // The kind of segment
	Value    string      // Literal text, or the raw expression without delimiters
	Position Position    // Source position of the segment start
}

// String returns a human-readable representation of the segment
func (s Segment) String() string {
	value := s.Value
	if len(value) > MaxStringDisplayLength {
		value = value[:TruncatedStringLength] + TruncationSuffix
	}
	return fmt.Sprintf("Segment{%s: %q @ %s}", s.Type, value, s.Position)
}

// IsText returns true if this is a literal text segment
func (s Segment) IsText() bool {
	return s.Type == SegmentTypeText
}

// IsExpr returns true if this is an expression segment
func (s Segment) IsExpr() bool {
	return s.Type == SegmentTypeExpr
}

// NewTextSegment creates a literal text segment
func NewTextSegment(content string, pos Position) Segment {
	return Segment{
		Type:     SegmentTypeText,
		Value:    content,
		Position: pos,
	}
}

// NewExprSegment creates an expression segment holding the raw expression
func NewExprSegment(raw string, pos Position) Segment {
	return Segment{
		Type:     SegmentTypeExpr,
		Value:    raw,
		Position: pos,
	}
}

// Notice records a tolerated shape problem found while scanning.
// Notices never stop a render; the lint surface reports them.
type Notice struct {
	Message  string
	Position Position
}

// String returns a human-readable representation of the notice
func (n Notice) String() string {
	return n.Message + " at " + n.Position.String()
}
