package tilemapping

import (
	"errors"
	"fmt"
	"slices"

	"lukechampine.com/frand"
)

var ErrNotInPool = errors.New("tile not in pool")

// A Pool is the bag o' tiles. Tiles are drawn uniformly at random without
// replacement. It is not safe for concurrent use; the game owns it.
type Pool struct {
	symbols []string
	initial []string

	dist       *TileDistribution
	randSource *frand.RNG
	lastID     TileID
}

// NewPool creates a full pool for the distribution. If randSource is nil,
// a fresh entropy-seeded source is used.
func NewPool(td *TileDistribution, randSource *frand.RNG) *Pool {
	if randSource == nil {
		randSource = frand.New()
	}
	initial := make([]string, 0, td.numTiles)
	for _, sym := range td.symbols {
		for i := uint8(0); i < td.distribution[sym]; i++ {
			initial = append(initial, sym)
		}
	}
	p := &Pool{
		initial:    initial,
		dist:       td,
		randSource: randSource,
	}
	p.Refill()
	return p
}

// SeededRandSource returns a deterministic random source, for tests and
// replays.
func SeededRandSource(seed uint64) *frand.RNG {
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(seed >> (8 * i))
	}
	return frand.NewCustom(b[:], 1024, 12)
}

// Refill puts every tile back into the pool.
func (p *Pool) Refill() {
	p.symbols = make([]string, len(p.initial))
	copy(p.symbols, p.initial)
}

// Draw draws at most n tiles from the pool. It draws fewer if there are
// fewer than n tiles left, and even draws no tiles at all.
func (p *Pool) Draw(n int) []Tile {
	if n > len(p.symbols) {
		n = len(p.symbols)
	}
	if n <= 0 {
		return nil
	}
	drawn := make([]Tile, n)
	for i := 0; i < n; i++ {
		idx := p.randSource.Intn(len(p.symbols))
		sym := p.symbols[idx]
		last := len(p.symbols) - 1
		p.symbols[idx] = p.symbols[last]
		p.symbols = p.symbols[:last]

		drawn[i] = p.newTile(sym)
	}
	return drawn
}

// Return puts the tiles back in the pool. The ids are not reused.
func (p *Pool) Return(tiles []Tile) {
	for _, t := range tiles {
		p.symbols = append(p.symbols, t.symbol)
	}
}

// Exchange draws len(tiles) new tiles and then puts the old ones back, so
// a tile can never be drawn straight back.
func (p *Pool) Exchange(tiles []Tile) []Tile {
	drawn := p.Draw(len(tiles))
	p.Return(tiles)
	return drawn
}

func (p *Pool) Remaining() int {
	return len(p.symbols)
}

// Counts returns how many of each symbol are still in the pool.
func (p *Pool) Counts() map[string]int {
	counts := make(map[string]int)
	for _, s := range p.symbols {
		counts[s]++
	}
	return counts
}

// Shuffle shuffles the tiles in place using the pool's random source.
func (p *Pool) Shuffle(tiles []Tile) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := p.randSource.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

func (p *Pool) Distribution() *TileDistribution {
	return p.dist
}

// Take removes the given symbols from the pool and returns them as fresh
// tiles. If any symbol is not available, nothing is removed.
func (p *Pool) Take(symbols ...string) ([]Tile, error) {
	return p.Replace(nil, symbols...)
}

// Replace puts old back in the pool and takes the given symbols out, as
// one step: the symbols may come from old. If any symbol is not available,
// neither the pool nor old is touched.
func (p *Pool) Replace(old []Tile, symbols ...string) ([]Tile, error) {
	remaining := make([]string, len(p.symbols), len(p.symbols)+len(old))
	copy(remaining, p.symbols)
	for _, t := range old {
		remaining = append(remaining, t.symbol)
	}
	for _, s := range symbols {
		idx := slices.Index(remaining, s)
		if idx == -1 {
			return nil, fmt.Errorf("%w: no %q left in the pool", ErrNotInPool, s)
		}
		remaining[idx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	p.symbols = remaining
	tiles := make([]Tile, len(symbols))
	for i, s := range symbols {
		tiles[i] = p.newTile(s)
	}
	return tiles, nil
}

func (p *Pool) newTile(sym string) Tile {
	p.lastID++
	kind, _ := KindOf(sym)
	return Tile{id: p.lastID, symbol: sym, value: p.dist.Score(sym), kind: kind}
}
