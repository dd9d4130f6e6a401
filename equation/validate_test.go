package equation

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/amath/expr"
)

func defaultValidator() *Validator {
	return NewValidator(expr.DefaultMaxLiteral, DefaultTolerance)
}

func TestValidate(t *testing.T) {
	v := defaultValidator()
	cases := []struct {
		symbols string
		valid   bool
	}{
		{"2 + 3 = 5", true},
		{"2 + 3 = 6", false},
		{"2 + 3", false},
		{"5 = 2 + 3", true},
		{"1 + 1 = 2 = 2", true},
		{"1 = 1 = 5", false},
		{"= 5 = 5", false},
		{"5 = 5 =", false},
		{"6 ×/÷ 2 = 3", true},
		{"6 ×/÷ 2 = 12", true},
		{"6 ± 2 = 4", true},
		{"- 3 + 5 = 2", true},
		{"1 0 = 10", true},
		{"10 = 1 0", true},
		{"1 10 = 11", false},
		{"0 0 = 0", false},
		{"0 5 = 5", true},
		{"5 ÷ 0 = 0", false},
		{"0 ÷ 5 = 0", true},
		{"7 ÷ 2 = 3", false},
		{"1 4 ÷ 4 = 3 + 1 ÷ 2", true},
		{"9 9 9 9 = 9 9 9 9", false},
		{"9 9 9 = 9 9 9", true},
		{"? ? ?", true},
	}
	for _, tc := range cases {
		tiles := mustTiles(t, strings.Fields(tc.symbols)...)
		valid, reading := v.Validate(tiles)
		assert.Equal(t, tc.valid, valid, tc.symbols)
		if valid {
			assert.True(t, v.Balances(reading), tc.symbols)
		} else {
			assert.Empty(t, reading, tc.symbols)
		}
	}
}

func TestValidateBlankAsOperator(t *testing.T) {
	is := is.New(t)
	valid, reading := defaultValidator().Validate(mustTiles(t, "2", "?", "4", "=", "8"))
	is.True(valid)
	is.Equal(reading, "2×4=8")
}

func TestValidateNeedsEquals(t *testing.T) {
	is := is.New(t)
	v := defaultValidator()
	for _, run := range [][]string{
		{"1", "2", "3"},
		{"2", "+", "3"},
		{"±", "5", "×/÷", "1"},
		{"10", "-", "10"},
	} {
		valid, _ := v.Validate(mustTiles(t, run...))
		is.True(!valid)
	}
}

func TestBalances(t *testing.T) {
	is := is.New(t)
	v := defaultValidator()
	is.True(v.Balances("2+3=5"))
	is.True(v.Balances("1÷3=2÷6"))
	is.True(v.Balances("4=4=2×2"))
	is.True(!v.Balances("2+3"))
	is.True(!v.Balances("2 3=23"))
	is.True(!v.Balances("=5"))
	is.True(!v.Balances("5=5+="))
}

func TestBalancesTolerance(t *testing.T) {
	is := is.New(t)
	loose := NewValidator(expr.DefaultMaxLiteral, 0.6)
	is.True(loose.Balances("7÷2=3"))
	is.True(!defaultValidator().Balances("7÷2=3"))
}

func TestValidateLiteralCap(t *testing.T) {
	is := is.New(t)
	small := NewValidator(20, DefaultTolerance)
	valid, _ := small.Validate(mustTiles(t, "2", "1", "=", "2", "1"))
	is.True(!valid)
	valid, _ = small.Validate(mustTiles(t, "20", "=", "20"))
	is.True(valid)
}

func TestValidateMemoized(t *testing.T) {
	is := is.New(t)
	v := NewCachedValidator(expr.DefaultMaxLiteral, DefaultTolerance, 16)
	// Same symbols, different ids.
	a := tilesFrom(t, 1, "1", "2", "=", "12")
	b := tilesFrom(t, 40, "1", "2", "=", "12")
	valid, reading := v.Validate(a)
	is.True(valid)
	is.Equal(reading, "12=12")
	valid, reading = v.Validate(b)
	is.True(valid)
	is.Equal(reading, "12=12")
	hits, misses := v.memo.Stats()
	is.Equal(hits, uint64(1))
	is.Equal(misses, uint64(1))

	// 1 0 and 10 are different runs.
	valid, _ = v.Validate(mustTiles(t, "1", "0", "=", "10"))
	is.True(valid)
	valid, _ = v.Validate(mustTiles(t, "10", "=", "1", "0"))
	is.True(valid)
	valid, _ = v.Validate(mustTiles(t, "10", "=", "1"))
	is.True(!valid)
	is.Equal(v.memo.Len(), 4)
}
