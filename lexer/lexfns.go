package lexer

import (
	"strings"
	"unicode"
)

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		switch r := l.src.peek(); {
		case r == eof:
			l.emit(Token{Kind: TokEof})
			return nil
		case unicode.IsSpace(r):
			l.src.next()

		case r == '+':
			l.src.next()
			l.emit(Token{Kind: TokPlus})
		case r == '-':
			l.src.next()
			l.emit(Token{Kind: TokMinus})
		case r == '*':
			l.src.next()
			l.emit(Token{Kind: TokStar})
		case r == '=':
			l.src.next()
			l.emit(Token{Kind: TokAssign})

		case r == ';':
			l.src.next()
			l.emit(Token{Kind: TokSemi})
		case r == '(':
			l.src.next()
			l.emit(Token{Kind: TokPOpen})
		case r == ')':
			l.src.next()
			l.emit(Token{Kind: TokPClose})

		case isDigit(r):
			return lexNumeral
		case isNameStart(r):
			return lexIdent

		default:
			return l.errorf("Unrecognized character ‘%c’", r)
		}
	}
}

func lexNumeral(l *lexer) lexFn {
	if l.src.peek() == '0' {
		l.src.next()
		if isDigit(l.src.peek()) {
			return l.errorf("Malformed numeral with a leading zero")
		}
		l.emit(Token{Kind: TokInt, Num: 0})
		return lexDefault
	}

	n := 0
	for isDigit(l.src.peek()) {
		n = n*10 + int(l.src.next()-'0')
	}
	l.emit(Token{Kind: TokInt, Num: n})
	return lexDefault
}

func lexIdent(l *lexer) lexFn {
	sb := strings.Builder{}
	for isNameChar(l.src.peek()) {
		sb.WriteRune(l.src.next())
	}

	name := sb.String()
	t, ok := l.interned[name]
	if !ok {
		t = Token{Kind: TokIdent, Val: name}
		l.interned[name] = t
	}
	l.emit(t)
	return lexDefault
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isNameChar(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsDigit(r) ||
		r == '_'
}
