package lexer

import (
	"strings"
	"testing"
)

func getTokens(s string) []Token {
	l := New(strings.NewReader(s))
	go l.Run()

	xs := []Token{}
	for t := range l.Out {
		xs = append(xs, t)
	}
	return xs
}

func assertKinds(t *testing.T, xs []Token, ys []TokenType) {
	for i := range ys {
		if i >= len(xs) {
			break
		}
		if xs[i].Kind != ys[i] {
			t.Fatalf("Expected token type %d at position %d but got %d",
				ys[i], i, xs[i].Kind)
		}
	}

	if len(xs) != len(ys) {
		t.Fatalf("Expected %d tokens but got %d", len(ys), len(xs))
	}
}

func TestEmitTokenTypes(t *testing.T) {
	xs := getTokens("x = (2 + y_2) * -30;")
	assertKinds(t, xs, []TokenType{
		TokIdent, TokAssign, TokPOpen, TokInt, TokPlus, TokIdent, TokPClose,
		TokStar, TokMinus, TokInt, TokSemi, TokEof,
	})
}

func TestEmitAcrossLines(t *testing.T) {
	xs := getTokens("a = 1;\nb =\n2;")
	assertKinds(t, xs, []TokenType{
		TokIdent, TokAssign, TokInt, TokSemi,
		TokIdent, TokAssign, TokInt, TokSemi, TokEof,
	})
}

func TestNumerals(t *testing.T) {
	xs := getTokens("0 12 345")
	ns := []int{0, 12, 345}

	for i, n := range ns {
		if xs[i].Kind != TokInt || xs[i].Num != n {
			t.Fatalf("Expected literal ‘%d’ but got ‘%s’", n, xs[i])
		}
	}
}

func TestLeadingZero(t *testing.T) {
	xs := getTokens("n = 01;")
	last := xs[len(xs)-1]
	if last.Kind != TokError {
		t.Fatalf("Expected an error token but got ‘%s’", last)
	}
}

func TestZeroAlone(t *testing.T) {
	xs := getTokens("n = 0;")
	assertKinds(t, xs, []TokenType{
		TokIdent, TokAssign, TokInt, TokSemi, TokEof,
	})
}

func TestIdentifiers(t *testing.T) {
	xs := getTokens("foo _bar b4z")
	names := []string{"foo", "_bar", "b4z"}

	for i, name := range names {
		if xs[i].Kind != TokIdent || xs[i].Val != name {
			t.Fatalf("Expected identifier ‘%s’ but got ‘%s’", name, xs[i])
		}
	}
}

func TestInterning(t *testing.T) {
	l := New(strings.NewReader("foo foo"))
	go l.Run()

	x := <-l.Out
	y := <-l.Out
	for range l.Out {
	}

	if x != y {
		t.Fatalf("Expected ‘%s’ and ‘%s’ to be the same token", x, y)
	}
	if n := len(l.interned); n != 1 {
		t.Fatalf("Expected 1 interned identifier but got %d", n)
	}
}

func TestUnrecognizedCharacter(t *testing.T) {
	xs := getTokens("x = 1 $ 2;")
	last := xs[len(xs)-1]
	if last.Kind != TokError {
		t.Fatalf("Expected an error token but got ‘%s’", last)
	}
}

func TestEmpty(t *testing.T) {
	assertKinds(t, getTokens("  \n\t\n"), []TokenType{TokEof})
}

func TestClassifiers(t *testing.T) {
	for _, k := range []TokenType{TokPlus, TokMinus, TokStar, TokAssign} {
		if !IsOperator(k) || IsPunct(k) {
			t.Fatalf("Expected ‘%s’ to classify as an operator", Token{Kind: k})
		}
	}
	for _, k := range []TokenType{TokSemi, TokPOpen, TokPClose} {
		if !IsPunct(k) || IsOperator(k) {
			t.Fatalf("Expected ‘%s’ to classify as punctuation", Token{Kind: k})
		}
	}
	for _, k := range []TokenType{TokError, TokEof, TokInt, TokIdent} {
		if IsOperator(k) || IsPunct(k) {
			t.Fatalf("Expected token type %d to classify as neither", k)
		}
	}
}
