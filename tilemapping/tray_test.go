package tilemapping

import (
	"testing"

	"github.com/matryer/is"
)

func TestTray(t *testing.T) {
	is := is.New(t)
	tiles, err := FromSymbols("1", "+", "2", "=", "3")
	is.NoErr(err)
	tray := NewTray(tiles...)
	is.Equal(tray.NumTiles(), 5)
	is.Equal(tray.Points(), 1+2+1+1+1)
	is.True(tray.Has(3))

	tile, err := tray.Remove(2)
	is.NoErr(err)
	is.Equal(tile.Symbol(), "+")
	is.Equal(tray.NumTiles(), 4)
	_, err = tray.Remove(2)
	is.True(err != nil)

	tray.Insert(tile, 0)
	is.Equal(UserVisible(tray.Tiles()), "+12=3")
	is.NoErr(tray.Move(2, 100))
	is.Equal(UserVisible(tray.Tiles()), "12=3+")
	is.Equal(tray.String(), "[1]1 [3]2 [4]= [5]3 [2]+")
}
