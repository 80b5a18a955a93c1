package lexer

import (
	"bufio"
	"io"
)

const eof rune = -1

// reader is the character source for the lexer.  Lines are pulled from the
// underlying input on demand, one whole line at a time, with a single newline
// appended to each.
type reader struct {
	lines *bufio.Scanner
	buf   []rune
}

func newReader(r io.Reader) *reader {
	return &reader{lines: bufio.NewScanner(r)}
}

// peek returns the next unconsumed rune without removing it, or eof once the
// input is exhausted.
func (r *reader) peek() rune {
	for len(r.buf) == 0 && r.lines.Scan() {
		r.buf = append(r.buf, []rune(r.lines.Text())...)
		r.buf = append(r.buf, '\n')
	}

	if len(r.buf) == 0 {
		return eof
	}
	return r.buf[0]
}

// next removes and returns the next rune.  Reading past the end of the input
// yields eof indefinitely.
func (r *reader) next() rune {
	if r.peek() == eof {
		return eof
	}
	c := r.buf[0]
	r.buf = r.buf[1:]
	return c
}
