package expr

import (
	"fmt"
	"strconv"
	"strings"
)

type tokenType uint8

const (
	tokNumber tokenType = iota
	tokPlus
	tokMinus
	tokTimes
	tokDivide
	tokLParen
	tokRParen
	tokEOF
)

type token struct {
	typ tokenType
	val float64
	pos int
}

var normalizer = strings.NewReplacer("×", "*", "÷", "/")

// Normalize rewrites the tile operators × and ÷ to * and /.
func Normalize(s string) string {
	return normalizer.Replace(s)
}

func allowed(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '+', c == '-', c == '*', c == '/', c == '(', c == ')', c == '.':
		return true
	}
	return false
}

// lex splits a normalized expression into tokens. It is the whitelist
// boundary: anything outside [0-9+\-*/().] is rejected before parsing.
func lex(s string) ([]token, error) {
	for i := 0; i < len(s); i++ {
		if !allowed(s[i]) {
			return nil, fmt.Errorf("%w: %q at %d", ErrIllegalCharacter, s[i], i)
		}
	}
	toks := make([]token, 0, len(s)+1)
	for i := 0; i < len(s); {
		c := s[i]
		switch c {
		case '+', '-':
			// ++ and -- are not a double sign.
			if i+1 < len(s) && s[i+1] == c {
				return nil, fmt.Errorf("%w: %q at %d", ErrSyntax, s[i:i+2], i)
			}
			typ := tokPlus
			if c == '-' {
				typ = tokMinus
			}
			toks = append(toks, token{typ: typ, pos: i})
			i++
		case '*':
			toks = append(toks, token{typ: tokTimes, pos: i})
			i++
		case '/':
			toks = append(toks, token{typ: tokDivide, pos: i})
			i++
		case '(':
			toks = append(toks, token{typ: tokLParen, pos: i})
			i++
		case ')':
			toks = append(toks, token{typ: tokRParen, pos: i})
			i++
		default:
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '.') {
				j++
			}
			lit := s[i:j]
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad number %q", ErrSyntax, lit)
			}
			toks = append(toks, token{typ: tokNumber, val: v, pos: i})
			i = j
		}
	}
	toks = append(toks, token{typ: tokEOF, pos: len(s)})
	return toks, nil
}
