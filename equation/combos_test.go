package equation

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
)

func TestCombinationsFixed(t *testing.T) {
	is := is.New(t)
	is.Equal(Combinations(mustTiles(t, "2", "+", "3", "=", "5")), []string{"2+3=5"})
	is.Equal(len(Combinations(nil)), 0)
}

func TestCombinationsDigitMerges(t *testing.T) {
	combos := Combinations(mustTiles(t, "1", "2", "=", "1", "2"))
	assert.ElementsMatch(t, []string{"12=12"}, combos)

	combos = Combinations(mustTiles(t, "1", "2", "3"))
	assert.ElementsMatch(t, []string{"123"}, combos)
}

func TestCombinationsPreserveOrder(t *testing.T) {
	is := is.New(t)
	is.Equal(Combinations(mustTiles(t, "4", "0", "7", "1", "×", "9", "3")), []string{"4071×93"})
}

func TestCombinationsAtomicNumerals(t *testing.T) {
	// 10 never merges with the digits around it.
	assert.ElementsMatch(t, []string{"1 10 1"}, Combinations(mustTiles(t, "1", "10", "1")))
	assert.ElementsMatch(t, []string{"10=10"}, Combinations(mustTiles(t, "10", "=", "1", "0")))
	assert.ElementsMatch(t, []string{"2 12"}, Combinations(mustTiles(t, "2", "12")))
}

func TestCombinationsZeros(t *testing.T) {
	// 00 is never a number, but 05 is.
	assert.Empty(t, Combinations(mustTiles(t, "0", "0", "+", "1")))
	assert.ElementsMatch(t, []string{"05"}, Combinations(mustTiles(t, "0", "5")))
	assert.ElementsMatch(t, []string{"100"}, Combinations(mustTiles(t, "1", "0", "0")))
	assert.Empty(t, Combinations(mustTiles(t, "0", "0", "0")))
	assert.ElementsMatch(t, []string{"0+0"}, Combinations(mustTiles(t, "0", "+", "0")))
}

func TestCombinationsDuals(t *testing.T) {
	assert.ElementsMatch(t, []string{"+×", "+÷", "-×", "-÷"}, Combinations(mustTiles(t, "±", "×/÷")))
}

func TestCombinationsBlank(t *testing.T) {
	is := is.New(t)
	combos := Combinations(mustTiles(t, "?"))
	is.Equal(len(combos), 15)
	assert.Contains(t, combos, "=")
	assert.NotContains(t, combos, "±")
	assert.NotContains(t, combos, "10")

	// A blank digit next to a digit can merge with it.
	combos = Combinations(mustTiles(t, "2", "?"))
	assert.Contains(t, combos, "27")
	assert.Contains(t, combos, "2×")
	// 2 followed by a blank 0 is 20; 00 never appears.
	assert.Contains(t, combos, "20")
	assert.Len(t, combos, 15)
	for _, c := range combos {
		assert.NotContains(t, c, Juxtaposed)
	}
}

func TestWalkManyBlanks(t *testing.T) {
	is := is.New(t)
	tiles := mustTiles(t, "1", "?", "?", "4", "?", "6", "7", "?", "9", "=", "20")
	n := 0
	Walk(tiles, func(reading string) bool {
		n++
		is.True(!strings.Contains(reading, Juxtaposed))
		return true
	})
	// At most one reading per choice of blank glyphs.
	is.True(n <= 15*15*15*15)

	start := time.Now()
	valid, _ := defaultValidator().Validate(tiles)
	is.True(!valid)
	is.True(time.Since(start) < 5*time.Second)
}

func TestWalkStopsEarly(t *testing.T) {
	is := is.New(t)
	n := 0
	Walk(mustTiles(t, "?", "?", "?"), func(string) bool {
		n++
		return n < 5
	})
	is.Equal(n, 5)
}
