package lexer

import (
	"fmt"
	"io"
)

type lexer struct {
	src      *reader          // Character source
	interned map[string]Token // Identifier tokens cached per name
	Out      chan Token       // Token output channel
}

func New(r io.Reader) *lexer {
	return &lexer{
		src:      newReader(r),
		interned: make(map[string]Token),
		Out:      make(chan Token),
	}
}

func (l *lexer) Run() {
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	close(l.Out)
}

func (l *lexer) emit(t Token) {
	l.Out <- t
}

func (l *lexer) errorf(format string, args ...any) lexFn {
	l.Out <- Token{
		Kind: TokError,
		Val:  fmt.Sprintf(format, args...),
	}
	return nil
}
