package game

import (
	"github.com/domino14/amath/board"
	"github.com/domino14/amath/config"
	"github.com/domino14/amath/equation"
	"github.com/domino14/amath/tilemapping"
)

const (
	// BingoBonus is awarded for playing a full tray in one turn.
	BingoBonus = 40
	// MaxScorelessTurns consecutive exchanges and passes end the game.
	MaxScorelessTurns = 6
)

// GameRules is a simple struct that encapsulates the instantiated objects
// needed to actually play a game.
type GameRules struct {
	cfg      *config.Config
	layout   []string
	dist     *tilemapping.TileDistribution
	scanner  *equation.Scanner
	rackSize int
}

// NewGameRules builds the rules from the config. If dist is nil the
// distribution named by the config is loaded.
func NewGameRules(cfg *config.Config, dist *tilemapping.TileDistribution) (*GameRules, error) {
	if dist == nil {
		var err error
		dist, err = tilemapping.DistributionFromConfig(cfg)
		if err != nil {
			return nil, err
		}
	}
	rackSize := cfg.GetInt(config.ConfigRackSize)
	if rackSize <= 0 {
		rackSize = 8
	}
	return &GameRules{
		cfg:      cfg,
		layout:   board.AMathBoard,
		dist:     dist,
		scanner:  equation.ScannerFromConfig(cfg),
		rackSize: rackSize,
	}, nil
}

func (g *GameRules) Config() *config.Config {
	return g.cfg
}

func (g *GameRules) Distribution() *tilemapping.TileDistribution {
	return g.dist
}

func (g *GameRules) Scanner() *equation.Scanner {
	return g.scanner
}

func (g *GameRules) RackSize() int {
	return g.rackSize
}

// MaxCanExchange is how many tiles may be exchanged with inPool tiles left.
func MaxCanExchange(inPool, traySize int) int {
	return min(inPool, traySize)
}
