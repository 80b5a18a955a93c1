package lexer

import "fmt"

type TokenType int

const (
	// TokError is the token emitted during a lexing error.  It signals the end
	// of lexical analysis.
	TokError TokenType = iota

	TokEof // End of input

	TokInt   // An integer literal
	TokIdent // A variable name

	TokPlus   // The ‘+’ operator
	TokMinus  // The ‘-’ operator
	TokStar   // The ‘*’ operator
	TokAssign // The ‘=’ operator

	TokSemi   // The ‘;’ punctuation mark
	TokPOpen  // The ‘(’ punctuation mark
	TokPClose // The ‘)’ punctuation mark
)

type Token struct {
	Kind TokenType
	Val  string // Identifier name, or an error message for TokError
	Num  int    // Value of a TokInt
}

func IsOperator(kind TokenType) bool {
	return kind == TokPlus ||
		kind == TokMinus ||
		kind == TokStar ||
		kind == TokAssign
}

func IsPunct(kind TokenType) bool {
	return kind == TokSemi ||
		kind == TokPOpen ||
		kind == TokPClose
}

func (t Token) String() string {
	switch t.Kind {
	case TokError:
		return "Error: " + t.Val

	case TokEof:
		return "EOF"

	case TokInt:
		return fmt.Sprintf("%d", t.Num)
	case TokIdent:
		return t.Val

	case TokPlus:
		return "+"
	case TokMinus:
		return "-"
	case TokStar:
		return "*"
	case TokAssign:
		return "="

	case TokSemi:
		return ";"
	case TokPOpen:
		return "("
	case TokPClose:
		return ")"
	}

	panic("unreachable")
}
