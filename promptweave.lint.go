package promptweave

import (
	"strings"

	"github.com/promptweave/go-promptweave/internal"
)

// LintSeverity classifies lint findings
type LintSeverity string

// Lint severity constants
const (
	LintSeverityWarning LintSeverity = "warning"
	LintSeverityInfo    LintSeverity = "info"
)

// Lint message constants
const (
	LintMsgUnterminatedPlaceholder = "unterminated placeholder treated as literal text"
	LintMsgEmptyExpression         = "empty placeholder expression"
	LintMsgOperandFallback         = "boolean expression has more than two operands and will be looked up as a literal variable name"
	LintMsgMixedOperators          = "mixing && and || is unsupported; the first operator wins and the other becomes part of an operand name"
)

// LintIssue is a single finding from Lint.
type LintIssue struct {
	Severity LintSeverity `json:"severity" yaml:"severity"`
	Message  string       `json:"message" yaml:"message"`
	Line     int          `json:"line" yaml:"line"`
	Column   int          `json:"column" yaml:"column"`
}

// Lint inspects a template for shapes that render tolerantly but rarely mean
// what the author intended: unterminated placeholders, empty expressions,
// and boolean conditions that trip the whole-string variable-lookup
// fallback. Linting never changes render semantics.
func Lint(template string) []LintIssue {
	segments, notices := internal.Scan(template, nil)

	var issues []LintIssue
	for _, notice := range notices {
		issues = append(issues, LintIssue{
			Severity: LintSeverityWarning,
			Message:  notice.Message,
			Line:     notice.Position.Line,
			Column:   notice.Position.Column,
		})
	}

	for _, seg := range segments {
		if !seg.IsExpr() {
			continue
		}
		ternary, ok := internal.ParseExpression(seg.Value).(*internal.TernaryNode)
		if !ok {
			continue
		}
		issues = append(issues, lintCondition(ternary.Condition, seg.Position)...)
	}
	return issues
}

// lintCondition flags conditions whose operator structure falls back to a
// literal whole-string variable lookup at render time
func lintCondition(cond string, pos internal.Position) []LintIssue {
	hasAnd := strings.Contains(cond, internal.OpAnd)
	hasOr := strings.Contains(cond, internal.OpOr)

	var issues []LintIssue
	if hasAnd && hasOr {
		issues = append(issues, LintIssue{
			Severity: LintSeverityWarning,
			Message:  LintMsgMixedOperators,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	}

	if hasAnd && len(strings.Split(cond, internal.OpAnd)) != 2 {
		issues = append(issues, LintIssue{
			Severity: LintSeverityWarning,
			Message:  LintMsgOperandFallback,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	} else if !hasAnd && hasOr && len(strings.Split(cond, internal.OpOr)) != 2 {
		issues = append(issues, LintIssue{
			Severity: LintSeverityWarning,
			Message:  LintMsgOperandFallback,
			Line:     pos.Line,
			Column:   pos.Column,
		})
	}
	return issues
}
