package tilemapping

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func newTestPool(t *testing.T, seed uint64) (*Pool, *TileDistribution) {
	td, err := AMathDistribution()
	if err != nil {
		t.Fatal(err)
	}
	return NewPool(td, SeededRandSource(seed)), td
}

func TestPoolDrawsWholeDistribution(t *testing.T) {
	is := is.New(t)
	pool, td := newTestPool(t, 42)
	is.Equal(pool.Remaining(), 100)

	counts := map[string]int{}
	ids := map[TileID]bool{}
	for pool.Remaining() > 0 {
		tiles := pool.Draw(7)
		is.True(len(tiles) > 0)
		for _, tile := range tiles {
			counts[tile.Symbol()]++
			is.True(!ids[tile.ID()])
			ids[tile.ID()] = true
			is.Equal(tile.Value(), td.Score(tile.Symbol()))
		}
	}
	for sym, ct := range td.Distribution() {
		is.Equal(counts[sym], int(ct))
	}
	is.Equal(len(pool.Draw(1)), 0)
}

func TestPoolDrawAtMost(t *testing.T) {
	is := is.New(t)
	pool, _ := newTestPool(t, 1)
	for i := 0; i < 12; i++ {
		is.Equal(len(pool.Draw(8)), 8)
	}
	is.Equal(pool.Remaining(), 4)
	is.Equal(len(pool.Draw(8)), 4)
	is.Equal(pool.Remaining(), 0)
	is.Equal(len(pool.Draw(0)), 0)
	is.Equal(len(pool.Draw(-3)), 0)
}

func TestPoolReturnPreservesDistribution(t *testing.T) {
	is := is.New(t)
	pool, td := newTestPool(t, 7)
	drawn := pool.Draw(30)
	is.Equal(pool.Remaining(), 70)
	swapped := pool.Exchange(drawn[:10])
	is.Equal(len(swapped), 10)
	is.Equal(pool.Remaining(), 70)

	pool.Return(drawn[10:])
	pool.Return(swapped)
	is.Equal(pool.Remaining(), 100)
	counts := pool.Counts()
	for sym, ct := range td.Distribution() {
		is.Equal(counts[sym], int(ct))
	}
}

func TestPoolSeededIsDeterministic(t *testing.T) {
	is := is.New(t)
	p1, _ := newTestPool(t, 99)
	p2, _ := newTestPool(t, 99)
	is.Equal(UserVisible(p1.Draw(20)), UserVisible(p2.Draw(20)))
}

func TestPoolRefill(t *testing.T) {
	is := is.New(t)
	pool, _ := newTestPool(t, 3)
	pool.Draw(50)
	pool.Refill()
	is.Equal(pool.Remaining(), 100)
}

func TestPoolTake(t *testing.T) {
	is := is.New(t)
	pool, _ := newTestPool(t, 3)
	tiles, err := pool.Take("2", "+", "3", "=", "5")
	is.NoErr(err)
	is.Equal(UserVisible(tiles), "2+3=5")
	is.Equal(tiles[4].Value(), 2)
	is.Equal(pool.Remaining(), 95)

	// 20 only appears once.
	_, err = pool.Take("20", "20")
	is.True(errors.Is(err, ErrNotInPool))
	is.Equal(pool.Remaining(), 95)
}

func TestPoolReplace(t *testing.T) {
	is := is.New(t)
	pool, _ := newTestPool(t, 3)
	old, err := pool.Take("20", "1")
	is.NoErr(err)
	is.Equal(pool.Remaining(), 98)

	// The only 20 is in old, so it can be taken again.
	tiles, err := pool.Replace(old, "20", "=")
	is.NoErr(err)
	is.Equal(UserVisible(tiles), "20=")
	is.True(tiles[0].ID() != old[0].ID())
	is.Equal(pool.Remaining(), 98)

	counts := pool.Counts()
	_, err = pool.Replace(tiles, "20", "20")
	is.True(errors.Is(err, ErrNotInPool))
	is.Equal(pool.Remaining(), 98)
	is.Equal(pool.Counts(), counts)
}
