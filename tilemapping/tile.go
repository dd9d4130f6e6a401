package tilemapping

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the category of a tile.
type Kind uint8

const (
	KindNumber Kind = iota
	KindOperator
	KindEquals
	KindDual
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindOperator:
		return "operator"
	case KindEquals:
		return "equals"
	case KindDual:
		return "dual"
	case KindBlank:
		return "blank"
	}
	return "unknown"
}

// Printed symbols of the non-numeric tiles.
const (
	SymbolPlus        = "+"
	SymbolMinus       = "-"
	SymbolTimes       = "×"
	SymbolDivide      = "÷"
	SymbolPlusMinus   = "±"
	SymbolTimesDivide = "×/÷"
	SymbolEquals      = "="
	SymbolBlank       = "blank"
)

// MaxTileNumber is the largest numeral printed on a tile.
const MaxTileNumber = 20

// TileID identifies one physical tile. IDs are unique per drawn instance,
// not per symbol. The zero TileID never refers to a tile.
type TileID uint32

const NoTile TileID = 0

// BlankGlyphs is everything a blank may stand for: one digit or one
// binary operator or the equals sign. Never a dual, never 10-20.
var BlankGlyphs = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	SymbolPlus, SymbolMinus, SymbolTimes, SymbolDivide, SymbolEquals,
}

var (
	plusMinusGlyphs   = []string{SymbolPlus, SymbolMinus}
	timesDivideGlyphs = []string{SymbolTimes, SymbolDivide}
	// fixedGlyphs holds the one-glyph set of every fixed symbol.
	fixedGlyphs = map[string][]string{}
)

func init() {
	for n := 0; n <= MaxTileNumber; n++ {
		s := strconv.Itoa(n)
		fixedGlyphs[s] = []string{s}
	}
	for _, s := range []string{SymbolPlus, SymbolMinus, SymbolTimes, SymbolDivide, SymbolEquals} {
		fixedGlyphs[s] = []string{s}
	}
}

// A Tile is an immutable game tile.
type Tile struct {
	id     TileID
	symbol string
	value  int
	kind   Kind
}

// NewTile creates a tile. The symbol must be a canonical symbol (see
// ParseSymbol).
func NewTile(id TileID, symbol string, value int) (Tile, error) {
	k, err := KindOf(symbol)
	if err != nil {
		return Tile{}, err
	}
	return Tile{id: id, symbol: symbol, value: value, kind: k}, nil
}

func (t Tile) ID() TileID      { return t.id }
func (t Tile) Symbol() string  { return t.symbol }
func (t Tile) Value() int      { return t.value }
func (t Tile) Kind() Kind      { return t.kind }
func (t Tile) IsZero() bool    { return t.id == NoTile && t.symbol == "" }
func (t Tile) String() string  { return t.symbol }
func (t Tile) IsDigit() bool   { return t.kind == KindNumber && len(t.symbol) == 1 }
func (t Tile) IsNumeral() bool { return t.kind == KindNumber }

// Glyphs returns every concrete symbol this tile can stand for in an
// equation. The returned slice must not be modified.
func (t Tile) Glyphs() []string {
	switch t.kind {
	case KindBlank:
		return BlankGlyphs
	case KindDual:
		if t.symbol == SymbolPlusMinus {
			return plusMinusGlyphs
		}
		return timesDivideGlyphs
	}
	if g, ok := fixedGlyphs[t.symbol]; ok {
		return g
	}
	return []string{t.symbol}
}

// KindOf returns the kind of a canonical symbol.
func KindOf(symbol string) (Kind, error) {
	switch symbol {
	case SymbolBlank:
		return KindBlank, nil
	case SymbolEquals:
		return KindEquals, nil
	case SymbolPlusMinus, SymbolTimesDivide:
		return KindDual, nil
	case SymbolPlus, SymbolMinus, SymbolTimes, SymbolDivide:
		return KindOperator, nil
	}
	n, err := strconv.Atoi(symbol)
	if err != nil || n < 0 || n > MaxTileNumber || strconv.Itoa(n) != symbol {
		return 0, fmt.Errorf("unknown tile symbol %q", symbol)
	}
	return KindNumber, nil
}

// ParseSymbol turns user input into a canonical tile symbol. It accepts the
// canonical symbols and ASCII spellings: ? for the blank, * and x for ×,
// / for ÷, +- for ±, and */ for ×/÷.
func ParseSymbol(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "?", "blank", "_":
		return SymbolBlank, nil
	case "*", "x":
		return SymbolTimes, nil
	case "/":
		return SymbolDivide, nil
	case "+-", "+/-":
		return SymbolPlusMinus, nil
	case "*/", "x/", "*/÷", "x/÷":
		return SymbolTimesDivide, nil
	}
	if _, err := KindOf(s); err != nil {
		return "", err
	}
	return s, nil
}

// FromSymbols builds tiles with the default point values and ids 1..n.
// It is meant for tests and for checking ad-hoc equations.
func FromSymbols(symbols ...string) ([]Tile, error) {
	tiles := make([]Tile, len(symbols))
	for i, s := range symbols {
		sym, err := ParseSymbol(s)
		if err != nil {
			return nil, err
		}
		t, err := NewTile(TileID(i+1), sym, DefaultValue(sym))
		if err != nil {
			return nil, err
		}
		tiles[i] = t
	}
	return tiles, nil
}

// UserVisible joins the symbols of the tiles.
func UserVisible(tiles []Tile) string {
	var sb strings.Builder
	for _, t := range tiles {
		if t.kind == KindBlank {
			sb.WriteString("?")
			continue
		}
		sb.WriteString(t.symbol)
	}
	return sb.String()
}
