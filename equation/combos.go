package equation

import (
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/amath/tilemapping"
)

// Juxtaposed separates a tile numeral (10-20) from a number next to it.
// Those never merge, and the evaluator rejects the reading.
const Juxtaposed = " "

func isDigitGlyph(g string) bool {
	return len(g) == 1 && g[0] >= '0' && g[0] <= '9'
}

func isNumberGlyph(g string) bool {
	return g != "" && g[0] >= '0' && g[0] <= '9'
}

// Walk calls fn with every reading of the tiles: every choice of glyph for
// each blank and dual tile. Adjacent single digits always form one number,
// since a reading that leaves two digits side by side can never balance.
// It stops early when fn returns false. Readings may repeat.
func Walk(tiles []tilemapping.Tile, fn func(reading string) bool) {
	if len(tiles) == 0 {
		return
	}
	glyphs := make([]string, len(tiles))
	var sb strings.Builder
	walkGlyphs(tiles, glyphs, 0, &sb, fn)
}

// walkGlyphs fills in glyphs[idx:] positionally, and renders every
// complete reading.
func walkGlyphs(tiles []tilemapping.Tile, glyphs []string, idx int, sb *strings.Builder,
	fn func(string) bool) bool {

	if idx == len(tiles) {
		reading, ok := render(glyphs, sb)
		if !ok {
			return true
		}
		return fn(reading)
	}
	for _, g := range tiles[idx].Glyphs() {
		glyphs[idx] = g
		if !walkGlyphs(tiles, glyphs, idx+1, sb, fn) {
			return false
		}
	}
	return true
}

// render joins the glyphs, merging runs of single digits into numbers.
// It returns false if the reading contains an all-zero number of more than
// one digit, such as 00.
func render(glyphs []string, sb *strings.Builder) (string, bool) {
	sb.Reset()
	digits, allZero := 0, true
	for i, g := range glyphs {
		sb.WriteString(g)
		if !isDigitGlyph(g) {
			if i+1 < len(glyphs) && isNumberGlyph(g) && isNumberGlyph(glyphs[i+1]) {
				sb.WriteString(Juxtaposed)
			}
			continue
		}
		digits++
		allZero = allZero && g == "0"
		next := ""
		if i+1 < len(glyphs) {
			next = glyphs[i+1]
		}
		if isDigitGlyph(next) {
			continue
		}
		// End of a digit group.
		if digits > 1 && allZero {
			return "", false
		}
		digits, allZero = 0, true
		if isNumberGlyph(next) {
			sb.WriteString(Juxtaposed)
		}
	}
	return sb.String(), true
}

// Combinations returns every distinct reading of the tiles, in the order
// they are first generated.
func Combinations(tiles []tilemapping.Tile) []string {
	var all []string
	Walk(tiles, func(reading string) bool {
		all = append(all, reading)
		return true
	})
	return lo.Uniq(all)
}
