package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestGetLoadsOnce(t *testing.T) {
	is := is.New(t)
	c := New[int](10)
	loads := 0
	load := func(key string) (int, error) {
		loads++
		return len(key), nil
	}
	v, err := c.Get("abc", load)
	is.NoErr(err)
	is.Equal(v, 3)
	v, err = c.Get("abc", load)
	is.NoErr(err)
	is.Equal(v, 3)
	is.Equal(loads, 1)

	hits, misses := c.Stats()
	is.Equal(hits, uint64(1))
	is.Equal(misses, uint64(1))
}

func TestErrorsNotCached(t *testing.T) {
	is := is.New(t)
	c := New[int](10)
	boom := errors.New("boom")
	_, err := c.Get("k", func(string) (int, error) { return 0, boom })
	is.Equal(err, boom)
	is.Equal(c.Len(), 0)
	v, err := c.Get("k", func(string) (int, error) { return 7, nil })
	is.NoErr(err)
	is.Equal(v, 7)
}

func TestClearsWhenFull(t *testing.T) {
	is := is.New(t)
	c := New[string](3)
	for i := 0; i < 3; i++ {
		_, err := c.Get(strconv.Itoa(i), func(k string) (string, error) { return k, nil })
		is.NoErr(err)
	}
	is.Equal(c.Len(), 3)
	_, err := c.Get("x", func(k string) (string, error) { return k, nil })
	is.NoErr(err)
	is.Equal(c.Len(), 1)
}

func TestConcurrentGet(t *testing.T) {
	is := is.New(t)
	c := New[int](0)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				k := strconv.Itoa(i)
				v, err := c.Get(k, func(k string) (int, error) { return strconv.Atoi(k) })
				if err != nil || v != i {
					t.Errorf("got %d, %v for %s", v, err, k)
				}
			}
		}()
	}
	wg.Wait()
	is.Equal(c.Len(), 100)
}

func TestDefaultMaxEntries(t *testing.T) {
	is := is.New(t)
	n := DefaultMaxEntries()
	is.True(n >= minDefaultEntries)
	is.True(n <= maxDefaultEntries)
}
