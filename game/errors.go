package game

import (
	"errors"

	"github.com/domino14/amath/board"
)

var (
	ErrOutOfBounds     = board.ErrOutOfBounds
	ErrOccupied        = board.ErrOccupied
	ErrEmptySquare     = board.ErrEmptySquare
	ErrTileNotFound    = errors.New("tile not found")
	ErrTileLocked      = errors.New("tile was played on an earlier turn")
	ErrNoTilesPlaced   = errors.New("no tiles placed this turn")
	ErrNoEquation      = errors.New("placed tiles do not form an equation")
	ErrInvalidEquation = errors.New("equation does not balance")
	ErrTilesPlaced     = errors.New("tiles have been placed this turn")
	ErrNotEnoughTiles  = errors.New("not enough tiles in the pool")
	ErrGameNotPlaying  = errors.New("game is not in progress")
)
