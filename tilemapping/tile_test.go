package tilemapping

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	is := is.New(t)
	for sym, kind := range map[string]Kind{
		"0":     KindNumber,
		"9":     KindNumber,
		"20":    KindNumber,
		"+":     KindOperator,
		"÷":     KindOperator,
		"±":     KindDual,
		"×/÷":   KindDual,
		"=":     KindEquals,
		"blank": KindBlank,
	} {
		k, err := KindOf(sym)
		is.NoErr(err)
		is.Equal(k, kind)
	}
	for _, bad := range []string{"21", "-1", "05", "", "a", "*"} {
		_, err := KindOf(bad)
		is.True(err != nil)
	}
}

func TestParseSymbol(t *testing.T) {
	cases := map[string]string{
		"?":   SymbolBlank,
		"x":   SymbolTimes,
		"*":   SymbolTimes,
		"/":   SymbolDivide,
		"+-":  SymbolPlusMinus,
		"*/":  SymbolTimesDivide,
		"×/÷": SymbolTimesDivide,
		"13":  "13",
		" = ": SymbolEquals,
	}
	for in, expected := range cases {
		sym, err := ParseSymbol(in)
		assert.NoError(t, err, in)
		assert.Equal(t, expected, sym, in)
	}
	_, err := ParseSymbol("42")
	assert.Error(t, err)
}

func TestGlyphs(t *testing.T) {
	is := is.New(t)
	tiles, err := FromSymbols("7", "13", "±", "×/÷", "?", "=")
	is.NoErr(err)
	is.Equal(tiles[0].Glyphs(), []string{"7"})
	is.Equal(tiles[1].Glyphs(), []string{"13"})
	is.Equal(tiles[2].Glyphs(), []string{"+", "-"})
	is.Equal(tiles[3].Glyphs(), []string{"×", "÷"})
	is.Equal(len(tiles[4].Glyphs()), 15)
	is.Equal(tiles[5].Glyphs(), []string{"="})

	is.True(tiles[0].IsDigit())
	is.True(!tiles[1].IsDigit())
	is.True(tiles[1].IsNumeral())
}

func TestFromSymbolsValues(t *testing.T) {
	is := is.New(t)
	tiles, err := FromSymbols("2", "+", "3", "=", "5", "?", "19")
	is.NoErr(err)
	vals := []int{}
	for i, tile := range tiles {
		is.Equal(tile.ID(), TileID(i+1))
		vals = append(vals, tile.Value())
	}
	is.Equal(vals, []int{1, 2, 1, 1, 2, 0, 7})
	is.Equal(UserVisible(tiles), "2+3=5?19")
}

func TestFixedGlyphsDoNotAllocate(t *testing.T) {
	is := is.New(t)
	tiles, err := FromSymbols("7", "20", "=", "÷")
	is.NoErr(err)
	allocs := testing.AllocsPerRun(100, func() {
		for _, tile := range tiles {
			_ = tile.Glyphs()
		}
	})
	is.Equal(allocs, 0.0)
}
