// Package expr evaluates plain arithmetic expressions: numbers, the four
// binary operators, a leading sign on a factor, and parentheses. Nothing
// else is accepted, and nothing is ever executed.
package expr

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrIllegalCharacter = errors.New("illegal character")
	ErrNumberTooLarge   = errors.New("number too large")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNotFinite        = errors.New("result is not finite")
	ErrSyntax           = errors.New("syntax error")
)

// DefaultMaxLiteral is the largest number literal allowed by default. It
// leaves room for three-digit numbers built from single digits.
const DefaultMaxLiteral = 999

// An Evaluator evaluates expressions with a cap on number literals. The
// zero value has no cap.
type Evaluator struct {
	MaxLiteral float64
}

func NewEvaluator(maxLiteral float64) *Evaluator {
	return &Evaluator{MaxLiteral: maxLiteral}
}

var defaultEvaluator = NewEvaluator(DefaultMaxLiteral)

// Evaluate evaluates s with the default literal cap.
func Evaluate(s string) (float64, error) {
	return defaultEvaluator.Evaluate(s)
}

// Evaluate returns the value of the expression. × and ÷ are accepted and
// mean * and /.
func (e *Evaluator) Evaluate(s string) (float64, error) {
	toks, err := lex(Normalize(s))
	if err != nil {
		return 0, err
	}
	if e.MaxLiteral > 0 {
		for _, t := range toks {
			if t.typ == tokNumber && t.val > e.MaxLiteral {
				return 0, fmt.Errorf("%w: %v > %v", ErrNumberTooLarge, t.val, e.MaxLiteral)
			}
		}
	}
	p := &parser{toks: toks}
	v, err := p.expression()
	if err != nil {
		return 0, err
	}
	if p.peek().typ != tokEOF {
		return 0, fmt.Errorf("%w: unexpected token at %d", ErrSyntax, p.peek().pos)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// parser is a recursive-descent parser over the grammar
//
//	expression = term { ("+" | "-") term }
//	term       = factor { ("*" | "/") factor }
//	factor     = ( "+" | "-" ) factor | primary
//	primary    = number | "(" expression ")"
type parser struct {
	toks []token
	idx  int
}

func (p *parser) peek() token {
	return p.toks[p.idx]
}

func (p *parser) next() token {
	t := p.toks[p.idx]
	if t.typ != tokEOF {
		p.idx++
	}
	return t
}

func (p *parser) expression() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().typ {
		case tokPlus:
			p.next()
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v += r
		case tokMinus:
			p.next()
			r, err := p.term()
			if err != nil {
				return 0, err
			}
			v -= r
		default:
			return v, nil
		}
	}
}

func (p *parser) term() (float64, error) {
	v, err := p.factor()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek().typ {
		case tokTimes:
			p.next()
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			v *= r
		case tokDivide:
			op := p.next()
			if p.literalZero() {
				return 0, fmt.Errorf("%w at %d", ErrDivisionByZero, op.pos)
			}
			r, err := p.factor()
			if err != nil {
				return 0, err
			}
			v /= r
		default:
			return v, nil
		}
	}
}

// literalZero reports whether the upcoming factor is a literal zero,
// optionally signed.
func (p *parser) literalZero() bool {
	i := p.idx
	for t := p.toks[i].typ; t == tokPlus || t == tokMinus; t = p.toks[i].typ {
		i++
	}
	return p.toks[i].typ == tokNumber && p.toks[i].val == 0
}

func (p *parser) factor() (float64, error) {
	switch p.peek().typ {
	case tokPlus:
		p.next()
		return p.factor()
	case tokMinus:
		p.next()
		v, err := p.factor()
		return -v, err
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.typ {
	case tokNumber:
		return t.val, nil
	case tokLParen:
		v, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.next().typ != tokRParen {
			return 0, fmt.Errorf("%w: missing ) for ( at %d", ErrSyntax, t.pos)
		}
		return v, nil
	case tokEOF:
		return 0, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	return 0, fmt.Errorf("%w: unexpected token at %d", ErrSyntax, t.pos)
}
