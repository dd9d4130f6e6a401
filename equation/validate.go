package equation

import (
	"math"
	"strings"

	"github.com/domino14/amath/cache"
	"github.com/domino14/amath/expr"
	"github.com/domino14/amath/tilemapping"
)

// DefaultTolerance is how close the sides of an equation must be.
const DefaultTolerance = 1e-4

// A Validator decides whether a run of tiles can be read as a true
// equation.
type Validator struct {
	evaluator *expr.Evaluator
	tolerance float64
	// memo maps a run's symbols to its balancing reading, or "" if none.
	memo *cache.Cache[string]
}

func NewValidator(maxLiteral, tolerance float64) *Validator {
	return NewCachedValidator(maxLiteral, tolerance, 0)
}

// NewCachedValidator is NewValidator with a given number of cached runs;
// 0 sizes the cache from the system memory.
func NewCachedValidator(maxLiteral, tolerance float64, cacheSize int) *Validator {
	return &Validator{
		evaluator: expr.NewEvaluator(maxLiteral),
		tolerance: tolerance,
		memo:      cache.New[string](cacheSize),
	}
}

// runKey identifies a run by its symbols alone; ids and values do not
// change the outcome.
func runKey(tiles []tilemapping.Tile) string {
	var sb strings.Builder
	for i, t := range tiles {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(t.Symbol())
	}
	return sb.String()
}

// Validate returns true and the balancing reading if any reading of the
// tiles is a true equation. It returns at the first one found.
func (v *Validator) Validate(tiles []tilemapping.Tile) (bool, string) {
	if len(tiles) == 0 {
		return false, ""
	}
	found, _ := v.memo.Get(runKey(tiles), func(string) (string, error) {
		return v.search(tiles), nil
	})
	return found != "", found
}

func (v *Validator) search(tiles []tilemapping.Tile) string {
	var found string
	Walk(tiles, func(reading string) bool {
		if v.Balances(reading) {
			found = reading
			return false
		}
		return true
	})
	return found
}

// Balances reports whether a concrete reading is a true equation: it has at
// least one =, no side is empty, and every side evaluates to the same
// value.
func (v *Validator) Balances(reading string) bool {
	sides := strings.Split(reading, tilemapping.SymbolEquals)
	if len(sides) < 2 {
		return false
	}
	var first float64
	for i, side := range sides {
		if side == "" {
			return false
		}
		val, err := v.evaluator.Evaluate(side)
		if err != nil {
			return false
		}
		if i == 0 {
			first = val
			continue
		}
		if math.Abs(val-first) >= v.tolerance {
			return false
		}
	}
	return true
}
