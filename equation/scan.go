// Package equation finds the equations on a board, decides whether each
// one is true, and scores it.
package equation

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/amath/board"
	"github.com/domino14/amath/config"
	"github.com/domino14/amath/expr"
	"github.com/domino14/amath/tilemapping"
)

// MinLength is the shortest run that is considered an equation.
const MinLength = 3

// An Equation is one run of MinLength or more tiles in a row or column.
// Score is always computed, valid or not; only valid equations count.
type Equation struct {
	Tiles      []tilemapping.Tile
	Positions  []board.Position
	Expression string
	Horizontal bool
	Valid      bool
	// Reading is the balancing reading that made the equation valid.
	Reading string
	Score   int
}

// Contains reports whether the tile with the id is part of the equation.
func (e *Equation) Contains(id tilemapping.TileID) bool {
	return lo.ContainsBy(e.Tiles, func(t tilemapping.Tile) bool {
		return t.ID() == id
	})
}

// Start is the position of the first tile.
func (e *Equation) Start() board.Position {
	return e.Positions[0]
}

// TotalScore sums the scores of the valid equations.
func TotalScore(eqs []Equation) int {
	return lo.SumBy(lo.Filter(eqs, func(e Equation, _ int) bool {
		return e.Valid
	}), func(e Equation) int {
		return e.Score
	})
}

// A Scanner derives the equations from a board snapshot.
type Scanner struct {
	validator *Validator
	parallel  bool
}

func NewScanner(v *Validator, parallel bool) *Scanner {
	return &Scanner{validator: v, parallel: parallel}
}

// ScannerFromConfig builds a scanner from the max-literal, tolerance,
// validation-cache-size and parallel-scan settings.
func ScannerFromConfig(cfg *config.Config) *Scanner {
	v := NewCachedValidator(cfg.GetFloat64(config.ConfigMaxLiteral), cfg.GetFloat64(config.ConfigTolerance),
		cfg.GetInt(config.ConfigValidationCacheSize))
	return NewScanner(v, cfg.GetBool(config.ConfigParallelScan))
}

var defaultScanner = NewScanner(NewValidator(expr.DefaultMaxLiteral, DefaultTolerance), false)

// Recompute returns every equation on the board, treating the tile with the
// id excluding as absent. Pass tilemapping.NoTile to exclude nothing.
func Recompute(snap *board.Snapshot, excluding tilemapping.TileID) []Equation {
	return defaultScanner.Scan(snap, excluding)
}

// Scan returns every run of MinLength or more tiles: rows first, top to
// bottom, then columns, left to right. The result depends only on the
// snapshot and excluding.
func (s *Scanner) Scan(snap *board.Snapshot, excluding tilemapping.TileID) []Equation {
	var horizontal, vertical []Equation
	if s.parallel {
		g := errgroup.Group{}
		g.Go(func() error {
			horizontal = s.scanLines(snap, excluding, true)
			return nil
		})
		g.Go(func() error {
			vertical = s.scanLines(snap, excluding, false)
			return nil
		})
		if err := g.Wait(); err != nil {
			log.Err(err).Msg("scan-failed")
		}
	} else {
		horizontal = s.scanLines(snap, excluding, true)
		vertical = s.scanLines(snap, excluding, false)
	}
	eqs := append(horizontal, vertical...)
	log.Debug().Int("equations", len(eqs)).Int("valid", lo.CountBy(eqs, func(e Equation) bool {
		return e.Valid
	})).Msg("scanned-board")
	return eqs
}

// scanLines scans all rows (horizontal) or all columns.
func (s *Scanner) scanLines(snap *board.Snapshot, excluding tilemapping.TileID, horizontal bool) []Equation {
	var eqs []Equation
	for line := 0; line < board.Dim; line++ {
		var tiles []tilemapping.Tile
		var positions []board.Position
		closeRun := func() {
			if len(tiles) >= MinLength {
				eqs = append(eqs, s.evaluate(snap, tiles, positions, horizontal))
			}
			tiles, positions = nil, nil
		}
		for i := 0; i < board.Dim; i++ {
			pos := board.Position{Row: line, Col: i}
			if !horizontal {
				pos = board.Position{Row: i, Col: line}
			}
			t, ok := snap.At(pos.Row, pos.Col)
			if !ok || (excluding != tilemapping.NoTile && t.ID() == excluding) {
				closeRun()
				continue
			}
			tiles = append(tiles, t)
			positions = append(positions, pos)
		}
		closeRun()
	}
	return eqs
}

func (s *Scanner) evaluate(snap *board.Snapshot, tiles []tilemapping.Tile,
	positions []board.Position, horizontal bool) Equation {

	valid, reading := s.validator.Validate(tiles)
	return Equation{
		Tiles:      tiles,
		Positions:  positions,
		Expression: tilemapping.UserVisible(tiles),
		Horizontal: horizontal,
		Valid:      valid,
		Reading:    reading,
		Score:      Score(tiles, positions, snap.Bonus),
	}
}
