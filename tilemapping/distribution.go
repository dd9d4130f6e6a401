package tilemapping

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/domino14/amath/cache"
	"github.com/domino14/amath/config"
)

//go:embed data/amath.csv
var amathDistributionCSV []byte

// TileDistribution encodes the tile distribution for the game: how many of
// each symbol are in the pool and what each one is worth.
type TileDistribution struct {
	Name         string
	symbols      []string
	distribution map[string]uint8
	scores       map[string]int
	numTiles     int
}

// ScanDistribution reads a distribution in csv form:
//
//	symbol,quantity,value
func ScanDistribution(data io.Reader) (*TileDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 3
	r.TrimLeadingSpace = true
	td := &TileDistribution{
		distribution: map[string]uint8{},
		scores:       map[string]int{},
	}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		sym := strings.TrimSpace(record[0])
		if _, err := KindOf(sym); err != nil {
			return nil, err
		}
		if _, ok := td.distribution[sym]; ok {
			return nil, fmt.Errorf("symbol %q is listed twice", sym)
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("bad quantity %d for symbol %q", n, sym)
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		td.symbols = append(td.symbols, sym)
		td.distribution[sym] = uint8(n)
		td.scores[sym] = p
		td.numTiles += n
	}
	if td.numTiles == 0 {
		return nil, errors.New("distribution has no tiles")
	}
	return td, nil
}

// AMathDistribution returns the standard 100-tile A-Math distribution.
func AMathDistribution() (*TileDistribution, error) {
	td, err := ScanDistribution(bytes.NewReader(amathDistributionCSV))
	if err != nil {
		return nil, err
	}
	td.Name = "amath"
	return td, nil
}

// loaded holds the distributions read from disk, by path. A file is read
// once per process.
var loaded = cache.New[*TileDistribution](64)

// DistributionFromConfig loads the distribution named by the
// distribution-path setting, or the built-in one if it is not set.
func DistributionFromConfig(cfg *config.Config) (*TileDistribution, error) {
	path := cfg.GetString(config.ConfigDistributionPath)
	if path == "" {
		return AMathDistribution()
	}
	return loaded.Get(path, loadDistribution)
}

// loadDistribution reads a distribution file. Files that are not valid
// UTF-8 are read as ISO 8859-1, which also has ×, ÷ and ±.
func loadDistribution(path string) (*TileDistribution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		data, _, err = transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}
	td, err := ScanDistribution(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	td.Name = path
	log.Debug().Str("path", path).Int("tiles", td.numTiles).Msg("loaded-distribution")
	return td, nil
}

// Score returns the point value of a symbol, or 0 if the symbol is not part
// of this distribution.
func (td *TileDistribution) Score(symbol string) int {
	return td.scores[symbol]
}

// Symbols returns the symbols in the order they were listed.
func (td *TileDistribution) Symbols() []string {
	return td.symbols
}

// Distribution returns the quantity of each symbol.
func (td *TileDistribution) Distribution() map[string]uint8 {
	return td.distribution
}

func (td *TileDistribution) NumTotalTiles() int {
	return td.numTiles
}

var (
	defaultDist     *TileDistribution
	defaultDistOnce sync.Once
)

// DefaultValue is the point value of a symbol in the standard distribution.
func DefaultValue(symbol string) int {
	defaultDistOnce.Do(func() {
		var err error
		defaultDist, err = AMathDistribution()
		if err != nil {
			// The embedded file is part of the binary.
			panic(err)
		}
	})
	return defaultDist.Score(symbol)
}
