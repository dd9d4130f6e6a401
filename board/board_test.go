package board

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/amath/tilemapping"
)

func TestLayout(t *testing.T) {
	is := is.New(t)
	l, err := MakeLayout(AMathBoard)
	is.NoErr(err)
	is.Equal(l.Bonus(Position{0, 0}), Bonus3EQ)
	is.Equal(l.Bonus(Position{7, 7}), BonusStar)
	is.Equal(l.Bonus(Position{1, 1}), Bonus2EQ)
	is.Equal(l.Bonus(Position{1, 5}), Bonus3TS)
	is.Equal(l.Bonus(Position{0, 3}), Bonus2TS)
	is.Equal(l.Bonus(Position{0, 1}), NoBonus)
	is.Equal(l.Bonus(Position{-1, 3}), NoBonus)

	// The layout is symmetric in both axes and along the diagonal.
	for r := 0; r < Dim; r++ {
		for c := 0; c < Dim; c++ {
			is.Equal(l[r][c], l[c][r])
			is.Equal(l[r][c], l[Dim-1-r][c])
		}
	}
}

func TestMakeLayoutErrors(t *testing.T) {
	is := is.New(t)
	_, err := MakeLayout(AMathBoard[:14])
	is.True(err != nil)

	bad := append([]string{}, AMathBoard...)
	bad[3] = strings.Replace(bad[3], "-", "x", 1)
	_, err = MakeLayout(bad)
	is.True(err != nil)
}

func TestMultipliers(t *testing.T) {
	is := is.New(t)
	is.Equal(Bonus2TS.TileMultiplier(), 2)
	is.Equal(Bonus3TS.TileMultiplier(), 3)
	is.Equal(Bonus2EQ.TileMultiplier(), 1)
	is.Equal(Bonus2EQ.EquationMultiplier(), 2)
	is.Equal(Bonus3EQ.EquationMultiplier(), 3)
	is.Equal(BonusStar.EquationMultiplier(), 1)
	is.Equal(BonusStar.TileMultiplier(), 1)
}

func TestFromCoords(t *testing.T) {
	is := is.New(t)
	for in, expected := range map[string]Position{
		"H8":   {7, 7},
		"8H":   {7, 7},
		"a1":   {0, 0},
		"O15":  {14, 14},
		"3-4":  {3, 4},
		"14,0": {14, 0},
	} {
		pos, err := FromCoords(in)
		is.NoErr(err)
		is.Equal(pos, expected)
	}
	_, err := FromCoords("P1")
	is.True(err != nil)
	_, err = FromCoords("A16")
	is.True(errors.Is(err, ErrOutOfBounds))
	is.Equal(Position{7, 7}.Coords(), "H8")
	is.Equal(Position{7, 7}.String(), "7-7")
}

func TestPlaceMoveRemove(t *testing.T) {
	is := is.New(t)
	b := MustMakeBoard(AMathBoard)
	tiles, err := tilemapping.FromSymbols("1", "+", "1")
	is.NoErr(err)

	is.NoErr(b.PlaceTile(Position{7, 7}, tiles[0]))
	err = b.PlaceTile(Position{7, 7}, tiles[1])
	is.True(errors.Is(err, ErrOccupied))
	err = b.PlaceTile(Position{15, 0}, tiles[1])
	is.True(errors.Is(err, ErrOutOfBounds))

	is.NoErr(b.PlaceTile(Position{7, 8}, tiles[1]))
	err = b.MoveTile(Position{7, 8}, Position{7, 7})
	is.True(errors.Is(err, ErrOccupied))
	is.NoErr(b.MoveTile(Position{7, 8}, Position{8, 7}))
	pos, ok := b.Find(tiles[1].ID())
	is.True(ok)
	is.Equal(pos, Position{8, 7})
	is.Equal(b.TilesPlayed(), 2)

	removed, err := b.RemoveTile(Position{7, 7})
	is.NoErr(err)
	is.Equal(removed.ID(), tiles[0].ID())
	_, err = b.RemoveTile(Position{7, 7})
	is.True(errors.Is(err, ErrEmptySquare))

	b.Clear()
	is.True(b.IsEmpty())
}

func TestSnapshotIsACopy(t *testing.T) {
	is := is.New(t)
	b := MustMakeBoard(AMathBoard)
	tiles, err := tilemapping.FromSymbols("1", "+", "1", "=", "2")
	is.NoErr(err)
	is.NoErr(b.PlaceLine(Position{7, 5}, true, tiles))

	snap := b.Snapshot()
	is.Equal(snap.NumTiles(), 5)
	_, err = b.RemoveTile(Position{7, 5})
	is.NoErr(err)
	tile, ok := snap.At(7, 5)
	is.True(ok)
	is.Equal(tile.Symbol(), "1")
	is.Equal(snap.Bonus(Position{7, 7}), BonusStar)

	snap2 := snap.With(Position{0, 0}, tiles[0])
	is.Equal(snap2.NumTiles(), 6)
	is.Equal(snap.NumTiles(), 5)
	_, ok = snap.At(-1, 20)
	is.True(!ok)
}

func TestDisplayText(t *testing.T) {
	is := is.New(t)
	ColorSupport = false
	b := MustMakeBoard(AMathBoard)
	tiles, err := tilemapping.FromSymbols("12", "×/÷", "?")
	is.NoErr(err)
	is.NoErr(b.PlaceLine(Position{0, 0}, true, tiles))
	txt := b.ToDisplayText()
	lines := strings.Split(strings.TrimPrefix(txt, "\n"), "\n")
	is.True(strings.HasPrefix(lines[2], " 1 |12 ×/÷ ? "))
	is.True(strings.Contains(lines[9], " * "))
}
