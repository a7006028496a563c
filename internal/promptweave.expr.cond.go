package internal

import "strings"

// EvaluateCondition evaluates a constrained boolean expression against the
// variable map. Three shapes are supported, checked in this order:
//
//  1. Two operands joined by && (each optionally negated with !)
//  2. Two operands joined by || (each optionally negated with !)
//  3. A single optionally-negated variable reference
//
// When an && or || split does not yield exactly two operands (three or more
// operands, or mixed operators hitting the first split), the entire
// expression string is looked up as a literal variable name. That fallback
// mirrors long-standing behavior callers depend on and is kept on purpose.
func EvaluateCondition(expr string, vars map[string]any) bool {
	expr = strings.TrimSpace(expr)

	if strings.Contains(expr, OpAnd) {
		parts := strings.Split(expr, OpAnd)
		if len(parts) != 2 {
			return lookupTruthy(expr, vars)
		}
		return resolveOperand(parts[0], vars) && resolveOperand(parts[1], vars)
	}

	if strings.Contains(expr, OpOr) {
		parts := strings.Split(expr, OpOr)
		if len(parts) != 2 {
			return lookupTruthy(expr, vars)
		}
		return resolveOperand(parts[0], vars) || resolveOperand(parts[1], vars)
	}

	return resolveOperand(expr, vars)
}

// resolveOperand evaluates a single optionally-negated variable reference
func resolveOperand(operand string, vars map[string]any) bool {
	operand = strings.TrimSpace(operand)
	if strings.HasPrefix(operand, string(CharNot)) {
		return !lookupTruthy(strings.TrimSpace(operand[1:]), vars)
	}
	return lookupTruthy(operand, vars)
}

// lookupTruthy looks a name up in the variable map and coerces to boolean
func lookupTruthy(name string, vars map[string]any) bool {
	val, ok := vars[name]
	if !ok {
		return false
	}
	return IsTruthy(val)
}

// IsTruthy applies standard falsy rules: nil, empty string, numeric zero and
// false are falsy; everything else is truthy.
func IsTruthy(val any) bool {
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
