package parser

import (
	"git.sr.ht/~mango/mint/lexer"
	"git.sr.ht/~mango/mint/pkg/omap"
)

// Run parses and evaluates a whole program block.  On success it returns the
// variable store with every variable in first-assignment order.  A failure
// anywhere discards the block; there is never a partial result.
func (p *Parser) Run() (omap.Map[string, int], error) {
	for p.peek().Kind != lexer.TokEof {
		if err := p.parseAssignment(); err != nil {
			p.drain()
			return omap.Map[string, int]{}, err
		}
	}
	return p.vars, nil
}

// drain consumes the rest of the token stream so the lexer goroutine can
// finish after a failed parse.
func (p *Parser) drain() {
	p.cache = nil
	for range p.toks {
	}
}

func (p *Parser) parseAssignment() error {
	t := p.next()
	if t.Kind != lexer.TokIdent {
		return expected("a variable name", t)
	}
	name := t.Val

	if t := p.next(); t.Kind != lexer.TokAssign {
		return expected("‘=’", t)
	}

	n, err := p.parseExpr()
	if err != nil {
		return err
	}

	if t := p.next(); t.Kind != lexer.TokSemi {
		return expected("‘;’", t)
	}

	p.vars.Set(name, n)
	return nil
}

func (p *Parser) parseExpr() (int, error) {
	x, err := p.parseTerm()
	if err != nil {
		return 0, err
	}

	for {
		switch p.peek().Kind {
		case lexer.TokPlus:
			p.next()
			y, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			x += y
		case lexer.TokMinus:
			p.next()
			y, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			x -= y
		default:
			return x, nil
		}
	}
}

func (p *Parser) parseTerm() (int, error) {
	x, err := p.parseFactor()
	if err != nil {
		return 0, err
	}

	for p.peek().Kind == lexer.TokStar {
		p.next()
		y, err := p.parseFactor()
		if err != nil {
			return 0, err
		}
		x *= y
	}
	return x, nil
}

func (p *Parser) parseFactor() (int, error) {
	sign := 1
	for {
		if k := p.peek().Kind; k == lexer.TokMinus {
			sign = -sign
		} else if k != lexer.TokPlus {
			break
		}
		p.next()
	}

	switch t := p.next(); t.Kind {
	case lexer.TokPOpen:
		n, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		if t := p.next(); t.Kind != lexer.TokPClose {
			return 0, expected("‘)’", t)
		}
		return sign * n, nil

	case lexer.TokInt:
		return sign * t.Num, nil

	case lexer.TokIdent:
		n, ok := p.vars.Get(t.Val)
		if !ok {
			return 0, errUndefined(t.Val)
		}
		return sign * n, nil

	default:
		return 0, expected("a value", t)
	}
}
