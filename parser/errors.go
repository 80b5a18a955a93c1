package parser

import (
	"fmt"

	"git.sr.ht/~mango/mint/lexer"
)

type errExpected struct {
	want string
	got  lexer.Token
}

func (e errExpected) Error() string {
	return fmt.Sprintf("Expected %s but got ‘%s’", e.want, e.got)
}

type errLex string

func (e errLex) Error() string {
	return string(e)
}

type errUndefined string

func (e errUndefined) Error() string {
	return fmt.Sprintf("Variable ‘%s’ is used before being assigned",
		string(e))
}

// expected wraps a token that broke a grammar rule.  Error tokens keep the
// lexer's own message instead of the grammar position's.
func expected(want string, got lexer.Token) error {
	if got.Kind == lexer.TokError {
		return errLex(got.Val)
	}
	return errExpected{want, got}
}
