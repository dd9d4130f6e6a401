package expr

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		in       string
		expected float64
	}{
		{"2+3", 5},
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"2×4", 8},
		{"9÷3", 3},
		{"7÷2", 3.5},
		{"10-4-3", 3},
		{"100/10/5", 2},
		{"05", 5},
		{"0/5", 0},
		{"-3+5", 2},
		{"2*-3", -6},
		{"2-+3", -1},
		{"+-4", -4},
		{"((1))", 1},
		{"1.5*2", 3},
		{"999", 999},
		{"2-3*4+12/4", -7},
	}
	for _, tc := range cases {
		v, err := Evaluate(tc.in)
		assert.NoError(t, err, tc.in)
		assert.InDelta(t, tc.expected, v, 1e-9, tc.in)
	}
}

func TestEvaluateRejects(t *testing.T) {
	cases := []struct {
		in  string
		err error
	}{
		{"5/0", ErrDivisionByZero},
		{"5÷0", ErrDivisionByZero},
		{"5/-0", ErrDivisionByZero},
		{"5/00", ErrDivisionByZero},
		{"5/(2-2)", ErrNotFinite},
		{"1000", ErrNumberTooLarge},
		{"1+1000-2", ErrNumberTooLarge},
		{"2 3", ErrIllegalCharacter},
		{"2=3", ErrIllegalCharacter},
		{"alert(1)", ErrIllegalCharacter},
		{"1e5", ErrIllegalCharacter},
		{"", ErrSyntax},
		{"2+", ErrSyntax},
		{"*2", ErrSyntax},
		{"2--3", ErrSyntax},
		{"2++3", ErrSyntax},
		{"(2+3", ErrSyntax},
		{"2+3)", ErrSyntax},
		{"1.2.3", ErrSyntax},
		{".", ErrSyntax},
		{"()", ErrSyntax},
		{"2(3)", ErrSyntax},
	}
	for _, tc := range cases {
		_, err := Evaluate(tc.in)
		assert.True(t, errors.Is(err, tc.err), "%q: got %v, want %v", tc.in, err, tc.err)
	}
}

func TestEvaluatorCap(t *testing.T) {
	is := is.New(t)
	e := NewEvaluator(20)
	_, err := e.Evaluate("21-1")
	is.True(errors.Is(err, ErrNumberTooLarge))
	v, err := e.Evaluate("20+1")
	is.NoErr(err)
	is.Equal(v, 21.0)

	unbounded := &Evaluator{}
	v, err = unbounded.Evaluate("123456*2")
	is.NoErr(err)
	is.Equal(v, 246912.0)
}

func TestNormalize(t *testing.T) {
	is := is.New(t)
	is.Equal(Normalize("3×4÷2"), "3*4/2")
}
