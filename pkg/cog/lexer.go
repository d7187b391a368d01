package cog

import (
	"fmt"
	"math/big"
	"strings"
)

// Kind is the sum type of all possible types
// of tokens in a Cog program
type Kind int

const (
	Identifier Kind = iota
	StringLiteral
	IntegerLiteral

	AssignOp
	AddOp
	SubtractOp
	MultiplyOp
	DivideOp
	PowerOp

	LeftParen
	RightParen
)

func (kind Kind) String() string {
	switch kind {
	case Identifier:
		return "identifier"
	case StringLiteral:
		return "string literal"
	case IntegerLiteral:
		return "integer literal"

	case AssignOp:
		return "'='"
	case AddOp:
		return "'+'"
	case SubtractOp:
		return "'-'"
	case MultiplyOp:
		return "'*'"
	case DivideOp:
		return "'/'"
	case PowerOp:
		return "'**'"

	case LeftParen:
		return "'('"
	case RightParen:
		return "')'"

	default:
		return "unknown token"
	}
}

type position struct {
	line int
	col  int
}

func (p position) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// Tok is the monomorphic struct representing all Cog program tokens
// in the lexer.
type Tok struct {
	kind Kind
	// str and num are both present to implement Tok
	// as a monomorphic type for all tokens; will be zero
	// values often.
	str string
	num *big.Int
	position
}

func (tok Tok) String() string {
	switch tok.kind {
	case Identifier, StringLiteral:
		return fmt.Sprintf("%s '%s' [%s]", tok.kind, tok.str, tok.position)
	case IntegerLiteral:
		return fmt.Sprintf("%s %s [%s]", tok.kind, tok.num, tok.position)
	default:
		return fmt.Sprintf("%s [%s]", tok.kind, tok.position)
	}
}

// endsValue reports whether a token can close an operand, in which case
// a following '-' is an operator rather than the sign of a literal.
func (tok Tok) endsValue() bool {
	switch tok.kind {
	case Identifier, StringLiteral, IntegerLiteral, RightParen:
		return true
	default:
		return false
	}
}

func isIdentifierStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentifierChar(c byte) bool {
	return isIdentifierStart(c) || isDigit(c) || c == '-'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Tokenize splits a single line of source into tokens. Column numbers
// in token positions are 1-based.
func Tokenize(line string, lineNo int, debugLexer bool) ([]Tok, error) {
	tokens := make([]Tok, 0)

	commit := func(tok Tok) {
		if debugLexer {
			LogDebug("lex ->", tok.String())
		}
		tokens = append(tokens, tok)
	}
	lastEndsValue := func() bool {
		return len(tokens) > 0 && tokens[len(tokens)-1].endsValue()
	}

	i := 0
	for i < len(line) {
		c := line[i]
		pos := position{lineNo, i + 1}

		switch {
		case isSpace(c):
			i++

		case c == '"' || c == '\'':
			end := strings.IndexByte(line[i+1:], c)
			if end < 0 {
				return nil, Err{
					ErrSyntax,
					fmt.Sprintf("unterminated string literal starting at [%s]", pos),
				}
			}
			commit(Tok{kind: StringLiteral, str: line[i+1 : i+1+end], position: pos})
			i += end + 2

		case isDigit(c) || (c == '-' && i+1 < len(line) && isDigit(line[i+1]) && !lastEndsValue()):
			j := i + 1
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			n, ok := new(big.Int).SetString(line[i:j], 10)
			if !ok {
				return nil, Err{
					ErrAssert,
					fmt.Sprintf("could not parse integer literal %s [%s]", line[i:j], pos),
				}
			}
			commit(Tok{kind: IntegerLiteral, num: n, position: pos})
			i = j

		case isIdentifierStart(c):
			j := i + 1
			for j < len(line) && isIdentifierChar(line[j]) {
				j++
			}
			commit(Tok{kind: Identifier, str: line[i:j], position: pos})
			i = j

		case c == '=':
			commit(Tok{kind: AssignOp, position: pos})
			i++
		case c == '+':
			commit(Tok{kind: AddOp, position: pos})
			i++
		case c == '-':
			commit(Tok{kind: SubtractOp, position: pos})
			i++
		case c == '*':
			if i+1 < len(line) && line[i+1] == '*' {
				commit(Tok{kind: PowerOp, position: pos})
				i += 2
			} else {
				commit(Tok{kind: MultiplyOp, position: pos})
				i++
			}
		case c == '/':
			commit(Tok{kind: DivideOp, position: pos})
			i++
		case c == '(':
			commit(Tok{kind: LeftParen, position: pos})
			i++
		case c == ')':
			commit(Tok{kind: RightParen, position: pos})
			i++

		default:
			return nil, Err{
				ErrSyntax,
				fmt.Sprintf("unexpected character %q [%s]", c, pos),
			}
		}
	}

	return tokens, nil
}
