package internal

import "fmt"

// ExprNode is the interface all parsed placeholder expressions implement
type ExprNode interface {
	// String returns a human-readable representation
	String() string
	exprNode()
}

// VarNode is a bare variable reference, e.g. {{ user_name }}
type VarNode struct {
	Name string
}

func (n *VarNode) exprNode() {}

// String returns a string representation
func (n *VarNode) String() string {
	return fmt.Sprintf("VarNode{%s}", n.Name)
}

// TernaryNode is a conditional expression of the form
// condition ? trueBranch [: falseBranch]. Branches hold literal text that may
// itself contain further placeholders; FalseBranch is empty for the one-armed
// form.
type TernaryNode struct {
	Condition   string
	TrueBranch  string
	FalseBranch string
}

func (n *TernaryNode) exprNode() {}

// String returns a string representation
func (n *TernaryNode) String() string {
	trueB := n.TrueBranch
	if len(trueB) > MaxStringDisplayLength {
		trueB = trueB[:TruncatedStringLength] + TruncationSuffix
	}
	falseB := n.FalseBranch
	if len(falseB) > MaxStringDisplayLength {
		falseB = falseB[:TruncatedStringLength] + TruncationSuffix
	}
	return fmt.Sprintf("TernaryNode{cond=%q, true=%q, false=%q}", n.Condition, trueB, falseB)
}
