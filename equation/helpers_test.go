package equation

import (
	"testing"

	"github.com/domino14/amath/board"
	"github.com/domino14/amath/tilemapping"
)

// tilesFrom makes tiles with ids starting at firstID, so that tiles of
// several lines on one board do not share ids.
func tilesFrom(t *testing.T, firstID int, symbols ...string) []tilemapping.Tile {
	t.Helper()
	tiles := make([]tilemapping.Tile, len(symbols))
	for i, s := range symbols {
		sym, err := tilemapping.ParseSymbol(s)
		if err != nil {
			t.Fatal(err)
		}
		tiles[i], err = tilemapping.NewTile(tilemapping.TileID(firstID+i), sym, tilemapping.DefaultValue(sym))
		if err != nil {
			t.Fatal(err)
		}
	}
	return tiles
}

func mustTiles(t *testing.T, symbols ...string) []tilemapping.Tile {
	return tilesFrom(t, 1, symbols...)
}

func line(start board.Position, horizontal bool, n int) []board.Position {
	ps := make([]board.Position, n)
	for i := range ps {
		ps[i] = start
		if horizontal {
			start.Col++
		} else {
			start.Row++
		}
	}
	return ps
}
