package internal

import "strings"

// ParseExpression classifies a raw placeholder expression as either a bare
// variable reference or a ternary conditional. Parsing never fails: any shape
// that is not a recognizable ternary is a variable reference, and malformed
// branch text degrades to raw trimmed text.
func ParseExpression(raw string) ExprNode {
	qIdx := topLevelIndex(raw, CharQuestion)
	if qIdx < 0 {
		return &VarNode{Name: strings.TrimSpace(raw)}
	}

	condition := strings.TrimSpace(raw[:qIdx])
	trueBranch, falseBranch := splitBranches(raw[qIdx+1:])
	return &TernaryNode{
		Condition:   condition,
		TrueBranch:  trueBranch,
		FalseBranch: falseBranch,
	}
}

// topLevelIndex returns the index of the first occurrence of target that is
// not inside nested {{ }} braces or a backtick span, or -1 if none exists.
func topLevelIndex(s string, target byte) int {
	depth := 0
	inLiteral := false

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if inLiteral {
			if ch == CharBackslash && i+1 < len(s) && s[i+1] == CharBacktick {
				i++
				continue
			}
			if ch == CharBacktick {
				inLiteral = false
			}
			continue
		}

		switch {
		case ch == CharBacktick:
			inLiteral = true
		case strings.HasPrefix(s[i:], StrPlaceholderOpen):
			depth++
			i++
		case strings.HasPrefix(s[i:], StrPlaceholderClose):
			depth--
			i++
		case ch == target && depth == 0:
			return i
		}
	}
	return -1
}

// splitBranches extracts the true and false branch text from everything after
// the top-level '?'. Backtick-delimited branches are preferred (they support
// multi-line text and nested placeholders); single and double quotes are
// accepted for backward compatibility. Undelimited text splits at the first
// ':' outside any quote or backtick span. The false branch defaults to "".
func splitBranches(rest string) (trueBranch, falseBranch string) {
	i := skipSpace(rest, 0)
	if i < len(rest) && isBranchDelim(rest[i]) {
		branch, next, ok := scanDelimited(rest, i)
		if ok {
			j := skipSpace(rest, next)
			if j >= len(rest) || rest[j] != CharColon {
				return branch, ""
			}
			k := skipSpace(rest, j+1)
			if k < len(rest) && isBranchDelim(rest[k]) {
				if falseB, _, ok := scanDelimited(rest, k); ok {
					return branch, falseB
				}
			}
			return branch, strings.TrimSpace(rest[j+1:])
		}
	}

	cIdx := topLevelColonIndex(rest)
	if cIdx < 0 {
		return strings.TrimSpace(rest), ""
	}
	return strings.TrimSpace(rest[:cIdx]), strings.TrimSpace(rest[cIdx+1:])
}

// scanDelimited scans a delimiter-quoted branch starting at s[start] and
// returns the unescaped content plus the index just past the closing
// delimiter. Escaped delimiters (\`, \', \") and \\ are unescaped; other
// backslash sequences pass through untouched. ok is false when no closing
// delimiter exists.
func scanDelimited(s string, start int) (content string, next int, ok bool) {
	delim := s[start]
	var sb strings.Builder

	for i := start + 1; i < len(s); i++ {
		ch := s[i]
		if ch == CharBackslash && i+1 < len(s) && (s[i+1] == delim || s[i+1] == CharBackslash) {
			sb.WriteByte(s[i+1])
			i++
			continue
		}
		if ch == delim {
			return sb.String(), i + 1, true
		}
		sb.WriteByte(ch)
	}
	return "", 0, false
}

// topLevelColonIndex finds the first ':' that is not inside a quoted or
// backtick span and not inside nested {{ }} braces, or -1 if none exists.
func topLevelColonIndex(s string) int {
	depth := 0
	var quote byte

	for i := 0; i < len(s); i++ {
		ch := s[i]

		if quote != 0 {
			if ch == CharBackslash && i+1 < len(s) {
				i++
				continue
			}
			if ch == quote {
				quote = 0
			}
			continue
		}

		switch {
		case isBranchDelim(ch):
			quote = ch
		case strings.HasPrefix(s[i:], StrPlaceholderOpen):
			depth++
			i++
		case strings.HasPrefix(s[i:], StrPlaceholderClose):
			depth--
			i++
		case ch == CharColon && depth == 0:
			return i
		}
	}
	return -1
}

// isBranchDelim reports whether ch can delimit a ternary branch
func isBranchDelim(ch byte) bool {
	return ch == CharBacktick || ch == CharSingleQuote || ch == CharDoubleQuote
}

// skipSpace returns the index of the first non-whitespace character at or
// after i
func skipSpace(s string, i int) int {
	for i < len(s) {
		ch := s[i]
		if ch != CharSpace && ch != CharTab && ch != CharNewline && ch != CharCarriageRet {
			break
		}
		i++
	}
	return i
}
