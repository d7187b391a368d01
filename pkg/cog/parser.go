package cog

import (
	"fmt"
)

// Node represents an abstract syntax tree (AST) node in a Cog program.
type Node interface {
	String() string
	Position() position
	Eval(*Environment) (Value, error)
}

// a string representation of the Position of a given node,
//	appropriate for an error message
func poss(n Node) string {
	return n.Position().String()
}

type AssignmentNode struct {
	name  string
	value Node
	position
}

func (n AssignmentNode) String() string {
	return fmt.Sprintf("Assign '%s' = (%s)", n.name, n.value)
}

func (n AssignmentNode) Position() position {
	return n.position
}

type BinaryExprNode struct {
	operator     Kind
	leftOperand  Node
	rightOperand Node
	position
}

func (n BinaryExprNode) String() string {
	return fmt.Sprintf("Binary (%s) %s (%s)", n.leftOperand, n.operator, n.rightOperand)
}

func (n BinaryExprNode) Position() position {
	return n.position
}

type FunctionCallNode struct {
	function string
	argument Node
	position
}

func (n FunctionCallNode) String() string {
	return fmt.Sprintf("Call '%s' on (%s)", n.function, n.argument)
}

func (n FunctionCallNode) Position() position {
	return n.position
}

type IdentifierNode struct {
	val string
	position
}

func (n IdentifierNode) String() string {
	return fmt.Sprintf("Identifier '%s'", n.val)
}

func (n IdentifierNode) Position() position {
	return n.position
}

type IntegerLiteralNode struct {
	val IntegerValue
	position
}

func (n IntegerLiteralNode) String() string {
	return fmt.Sprintf("Integer %s", n.val)
}

func (n IntegerLiteralNode) Position() position {
	return n.position
}

type StringLiteralNode struct {
	val string
	position
}

func (n StringLiteralNode) String() string {
	return fmt.Sprintf("String '%s'", n.val)
}

func (n StringLiteralNode) Position() position {
	return n.position
}

// EmptyExpressionNode stands for an expression with no tokens at all,
// such as a blank statement or the argument slot of `print()`.
type EmptyExpressionNode struct {
	position
}

func (n EmptyExpressionNode) String() string {
	return "Empty Expression"
}

func (n EmptyExpressionNode) Position() position {
	return n.position
}

func guardUnexpectedInputEnd(tokens []Tok, idx int) error {
	if idx >= len(tokens) {
		if len(tokens) > 0 {
			return Err{
				ErrSyntax,
				fmt.Sprintf("unexpected end of input at %s", tokens[len(tokens)-1]),
			}
		} else {
			return Err{
				ErrSyntax,
				"unexpected end of input",
			}
		}
	}

	return nil
}

func isUnsupportedOp(t Tok) bool {
	switch t.kind {
	case SubtractOp, MultiplyOp, DivideOp, PowerOp:
		return true
	default:
		return false
	}
}

// parenDepth is the count of opening minus closing parentheses in tokens.
func parenDepth(tokens []Tok) int {
	depth := 0
	for _, tok := range tokens {
		switch tok.kind {
		case LeftParen:
			depth++
		case RightParen:
			depth--
		}
	}
	return depth
}

// plusSplit returns the index of the leftmost '+' that has tokens on both
//	sides, or -1. A split whose halves do not each balance their
//	parentheses is not a sum, and no later '+' is tried.
func plusSplit(tokens []Tok) int {
	for i, tok := range tokens {
		if tok.kind != AddOp {
			continue
		}
		if i == 0 {
			continue
		}
		if i == len(tokens)-1 {
			return -1
		}
		if parenDepth(tokens[:i]) != 0 || parenDepth(tokens[i+1:]) != 0 {
			return -1
		}
		return i
	}
	return -1
}

// Parse transforms the tokens of one statement into a single Node.
//	This implementation uses recursive descent parsing. A statement with
//	no tokens parses to an EmptyExpressionNode.
func Parse(tokens []Tok, debugParser bool) (Node, error) {
	expr, err := parseExpression(tokens)
	if err != nil {
		return nil, err
	}

	if debugParser {
		LogDebug("parse ->", expr.String())
	}
	return expr, nil
}

// parseExpression parses, in priority order, an assignment, a sum split at
//	the leftmost balanced '+', or an atom anchored at the first token.
//	Tokens left over after an atom are dropped, unless they start with an
//	operator other than '+'.
func parseExpression(tokens []Tok) (Node, error) {
	if len(tokens) == 0 {
		return EmptyExpressionNode{}, nil
	}

	if len(tokens) > 2 && tokens[0].kind == Identifier && tokens[1].kind == AssignOp {
		value, err := parseExpression(tokens[2:])
		if err != nil {
			return nil, err
		}

		return AssignmentNode{
			name:     tokens[0].str,
			value:    value,
			position: tokens[0].position,
		}, nil
	}

	if split := plusSplit(tokens); split > 0 {
		left, err := parseExpression(tokens[:split])
		if err != nil {
			return nil, err
		}
		right, err := parseExpression(tokens[split+1:])
		if err != nil {
			return nil, err
		}

		return BinaryExprNode{
			operator:     AddOp,
			leftOperand:  left,
			rightOperand: right,
			position:     tokens[split].position,
		}, nil
	}

	atom, idx, err := parseAtom(tokens)
	if err != nil {
		return nil, err
	}

	if idx < len(tokens) {
		nextTok := tokens[idx]
		switch {
		case isUnsupportedOp(nextTok):
			return nil, Err{
				ErrSyntax,
				fmt.Sprintf("operator %s is not supported", nextTok),
			}
		case nextTok.kind == AssignOp:
			return nil, Err{
				ErrSyntax,
				fmt.Sprintf("unexpected %s following an expression", nextTok),
			}
		}
	}
	return atom, nil
}

func parseAtom(tokens []Tok) (Node, int, error) {
	err := guardUnexpectedInputEnd(tokens, 0)
	if err != nil {
		return nil, 0, err
	}

	tok, idx := tokens[0], 1

	switch tok.kind {
	case StringLiteral:
		return StringLiteralNode{tok.str, tok.position}, idx, nil
	case IntegerLiteral:
		return IntegerLiteralNode{NewInteger(tok.num), tok.position}, idx, nil
	case Identifier:
		if idx < len(tokens) && tokens[idx].kind == LeftParen {
			return parseFunctionCall(tokens)
		}
		return IdentifierNode{tok.str, tok.position}, idx, nil
	default:
		return nil, 0, Err{
			ErrSyntax,
			fmt.Sprintf("unexpected start of expression, found %s", tok),
		}
	}
}

// parseFunctionCall parses `name ( [expression] )` with exactly one
//	argument slot, which runs up to the last ')' of the statement. An
//	empty slot evaluates to None.
func parseFunctionCall(tokens []Tok) (Node, int, error) {
	closing := -1
	for i := len(tokens) - 1; i > 1; i-- {
		if tokens[i].kind == RightParen {
			closing = i
			break
		}
	}
	if closing < 0 {
		return nil, 0, Err{
			ErrSyntax,
			fmt.Sprintf("expected call to %s to close with %s, found end of input at %s",
				tokens[0].str, RightParen, tokens[len(tokens)-1]),
		}
	}

	var argument Node = EmptyExpressionNode{tokens[1].position}
	if closing > 2 {
		expr, err := parseExpression(tokens[2:closing])
		if err != nil {
			return nil, 0, err
		}
		argument = expr
	}

	return FunctionCallNode{
		function: tokens[0].str,
		argument: argument,
		position: tokens[0].position,
	}, closing + 1, nil
}
