package tilemapping

import (
	"fmt"
	"strings"
)

// A Tray is the ordered set of tiles a player holds. Order matters only for
// display; the player can rearrange it.
type Tray struct {
	tiles []Tile
}

func NewTray(tiles ...Tile) *Tray {
	t := &Tray{}
	t.Add(tiles...)
	return t
}

func (t *Tray) Add(tiles ...Tile) {
	t.tiles = append(t.tiles, tiles...)
}

// Insert puts the tile at the index, clamped to the tray bounds.
func (t *Tray) Insert(tile Tile, idx int) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(t.tiles) {
		idx = len(t.tiles)
	}
	t.tiles = append(t.tiles, Tile{})
	copy(t.tiles[idx+1:], t.tiles[idx:])
	t.tiles[idx] = tile
}

// Index returns the index of the tile with the id, or -1.
func (t *Tray) Index(id TileID) int {
	for i, tile := range t.tiles {
		if tile.id == id {
			return i
		}
	}
	return -1
}

func (t *Tray) Has(id TileID) bool {
	return t.Index(id) != -1
}

// Get returns the tile with the id.
func (t *Tray) Get(id TileID) (Tile, bool) {
	idx := t.Index(id)
	if idx == -1 {
		return Tile{}, false
	}
	return t.tiles[idx], true
}

// Remove takes the tile with the id out of the tray.
func (t *Tray) Remove(id TileID) (Tile, error) {
	idx := t.Index(id)
	if idx == -1 {
		return Tile{}, fmt.Errorf("tile %d is not in the tray", id)
	}
	tile := t.tiles[idx]
	t.tiles = append(t.tiles[:idx], t.tiles[idx+1:]...)
	return tile, nil
}

// Move moves the tile with the id to the given index.
func (t *Tray) Move(id TileID, idx int) error {
	tile, err := t.Remove(id)
	if err != nil {
		return err
	}
	t.Insert(tile, idx)
	return nil
}

// Tiles returns a copy of the tiles in tray order.
func (t *Tray) Tiles() []Tile {
	ret := make([]Tile, len(t.tiles))
	copy(ret, t.tiles)
	return ret
}

func (t *Tray) NumTiles() int {
	return len(t.tiles)
}

// Points is the sum of the face values of the tiles in the tray.
func (t *Tray) Points() int {
	pts := 0
	for _, tile := range t.tiles {
		pts += tile.value
	}
	return pts
}

func (t *Tray) Clear() {
	t.tiles = nil
}

// String shows each tile with its id, e.g. "[3]7 [9]± [12]?".
func (t *Tray) String() string {
	parts := make([]string, len(t.tiles))
	for i, tile := range t.tiles {
		parts[i] = fmt.Sprintf("[%d]%s", tile.id, UserVisible([]Tile{tile}))
	}
	return strings.Join(parts, " ")
}

// Shuffle rearranges the tray using the pool's random source.
func (t *Tray) Shuffle(p *Pool) {
	p.Shuffle(t.tiles)
}
