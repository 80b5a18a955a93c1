package parser

import (
	"git.sr.ht/~mango/mint/lexer"
	"git.sr.ht/~mango/mint/pkg/omap"
)

type Parser struct {
	toks  <-chan lexer.Token
	cache *lexer.Token
	vars  omap.Map[string, int]
}

func New(toks <-chan lexer.Token) *Parser {
	return &Parser{
		toks: toks,
		vars: omap.New[string, int](8),
	}
}

func (p *Parser) next() lexer.Token {
	var t lexer.Token
	if p.cache != nil {
		t, p.cache = *p.cache, nil
	} else {
		t = <-p.toks
	}
	return t
}

func (p *Parser) peek() lexer.Token {
	if p.cache == nil {
		t := <-p.toks
		p.cache = &t
	}
	return *p.cache
}
