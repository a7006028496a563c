package internal

import (
	"strings"

	"go.uber.org/zap"
)

// Scanner splits template source into literal text and placeholder segments.
//
// A placeholder starts at {{ and ends at the matching }}, where matching
// accounts for nested {{ }} pairs. Brace counting is suspended inside
// backtick-delimited literal spans (with \` as escape) so that template
// syntax appearing in literal branch text never closes the placeholder early.
// An opener with no matching close is kept as literal text.
type Scanner struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed)
	logger *zap.Logger
}

// NewScanner creates a scanner for the given template source
func NewScanner(source string, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgScannerCreated, zap.Int(LogFieldSource, len(source)))
	return &Scanner{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Scan processes the source and returns its segments along with notices for
// any tolerated shape problems (unterminated placeholders, empty expressions).
func (s *Scanner) Scan() ([]Segment, []Notice) {
	s.logger.Debug(LogMsgScanStart)
	var segments []Segment
	var notices []Notice

	var text strings.Builder
	textPos := s.currentPosition()

	flushText := func() {
		if text.Len() > 0 {
			segments = append(segments, NewTextSegment(text.String(), textPos))
			text.Reset()
		}
	}

	for !s.isAtEnd() {
		if s.matchStr(StrPlaceholderOpen) {
			openPos := s.currentPosition()
			raw, ok := s.scanPlaceholder()
			if ok {
				flushText()
				if strings.TrimSpace(raw) == "" {
					notices = append(notices, Notice{Message: NoticeEmptyExpression, Position: openPos})
				}
				segments = append(segments, NewExprSegment(raw, openPos))
				textPos = s.currentPosition()
				continue
			}
			// No matching close: the opener degrades to literal text and
			// scanning continues just past it.
			notices = append(notices, Notice{Message: NoticeUnterminatedPlaceholder, Position: openPos})
			if text.Len() == 0 {
				textPos = openPos
			}
			text.WriteString(StrPlaceholderOpen)
			continue
		}

		if text.Len() == 0 {
			textPos = s.currentPosition()
		}
		text.WriteByte(s.advance())
	}

	flushText()
	s.logger.Debug(LogMsgScanEnd,
		zap.Int(LogFieldSegments, len(segments)),
		zap.Int(LogFieldNotices, len(notices)))
	return segments, notices
}

// scanPlaceholder consumes a {{ ... }} span and returns the raw expression
// between the delimiters. On success the scanner is positioned just after
// the closing }}. If no matching close exists, the scanner is restored to
// just past the opening {{ and ok is false.
func (s *Scanner) scanPlaceholder() (raw string, ok bool) {
	savedPos, savedLine, savedColumn := s.pos, s.line, s.column
	s.advanceN(len(StrPlaceholderOpen))

	var sb strings.Builder
	depth := 1
	inLiteral := false

	for !s.isAtEnd() {
		if inLiteral {
			// Escaped backtick stays part of the literal span
			if s.peek() == CharBackslash && s.peekNext() == CharBacktick {
				sb.WriteByte(s.advance())
				sb.WriteByte(s.advance())
				continue
			}
			if s.peek() == CharBacktick {
				inLiteral = false
			}
			sb.WriteByte(s.advance())
			continue
		}

		if s.peek() == CharBacktick {
			inLiteral = true
			sb.WriteByte(s.advance())
			continue
		}

		if s.matchStr(StrPlaceholderOpen) {
			depth++
			sb.WriteString(StrPlaceholderOpen)
			s.advanceN(len(StrPlaceholderOpen))
			continue
		}

		if s.matchStr(StrPlaceholderClose) {
			depth--
			if depth == 0 {
				s.advanceN(len(StrPlaceholderClose))
				return sb.String(), true
			}
			sb.WriteString(StrPlaceholderClose)
			s.advanceN(len(StrPlaceholderClose))
			continue
		}

		sb.WriteByte(s.advance())
	}

	// Unterminated: rewind to the opener and report failure
	s.pos, s.line, s.column = savedPos, savedLine, savedColumn
	s.advanceN(len(StrPlaceholderOpen))
	return "", false
}

// Helper methods

// currentPosition returns the current position
func (s *Scanner) currentPosition() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (s *Scanner) isAtEnd() bool {
	return s.pos >= len(s.source)
}

// peek returns the current character without advancing
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.pos]
}

// peekNext returns the character after the current one without advancing
func (s *Scanner) peekNext() byte {
	if s.pos+1 >= len(s.source) {
		return 0
	}
	return s.source[s.pos+1]
}

// advance consumes and returns the current character
func (s *Scanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.source[s.pos]
	s.pos++
	if ch == CharNewline {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return ch
}

// advanceN advances by n characters
func (s *Scanner) advanceN(n int) {
	for i := 0; i < n && !s.isAtEnd(); i++ {
		s.advance()
	}
}

// matchStr returns true if the remaining source starts with str
func (s *Scanner) matchStr(str string) bool {
	return strings.HasPrefix(s.source[s.pos:], str)
}

// Scan is a convenience function that scans a template in one call.
func Scan(source string, logger *zap.Logger) ([]Segment, []Notice) {
	return NewScanner(source, logger).Scan()
}
