// Package game encapsulates the main mechanics of an A-Math game: trays,
// the pool, placing tiles, and committing turns. The equations on the
// board are recomputed after every change.
package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/amath/board"
	"github.com/domino14/amath/config"
	"github.com/domino14/amath/equation"
	"github.com/domino14/amath/stats"
	"github.com/domino14/amath/tilemapping"
)

// Game is the actual internal game structure that controls the entire
// business logic of the game; drawing, placing tiles, scoring turns.
// It is not safe for concurrent use.
type Game struct {
	rules *GameRules
	board *board.GameBoard
	pool  *tilemapping.Pool

	playing PlayState

	onturn         int
	turnnum        int
	scorelessTurns int
	players        playerStates

	// placed holds the tiles put on the board this turn. They can still be
	// moved or taken back; every other tile on the board is locked.
	placed   map[tilemapping.TileID]board.Position
	dragging tilemapping.TileID

	equations []equation.Equation
	history   *History
}

// NewGame is how one instantiates a brand new game. With no names it
// creates two players. rng may be nil for an entropy-seeded source.
func NewGame(cfg *config.Config, dist *tilemapping.TileDistribution, rng *frand.RNG,
	names ...string) (*Game, error) {

	rules, err := NewGameRules(cfg, dist)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names = []string{"player1", "player2"}
	}
	bd, err := board.MakeBoard(rules.layout)
	if err != nil {
		return nil, err
	}
	g := &Game{
		rules:   rules,
		board:   bd,
		pool:    tilemapping.NewPool(rules.dist, rng),
		playing: PlayStateWaiting,
		placed:  map[tilemapping.TileID]board.Position{},
	}
	g.players = make(playerStates, len(names))
	for i, n := range names {
		g.players[i] = newPlayerState(n)
	}
	g.history = newHistory(g.players, rules.dist.Name)
	return g, nil
}

// StartGame clears the board, refills the pool and deals a full tray to
// every player. The first player is on turn.
func (g *Game) StartGame() {
	g.board.Clear()
	g.pool.Refill()
	g.players.resetTrays()
	g.players.resetScore()
	for _, p := range g.players {
		p.tray.Add(g.pool.Draw(g.rules.rackSize)...)
	}
	g.onturn = 0
	g.turnnum = 0
	g.scorelessTurns = 0
	g.placed = map[tilemapping.TileID]board.Position{}
	g.dragging = tilemapping.NoTile
	g.playing = PlayStatePlaying
	g.history = newHistory(g.players, g.rules.dist.Name)
	g.history.PlayState = PlayStatePlaying
	g.recompute()
	log.Debug().Int("pool", g.pool.Remaining()).Str("uid", g.history.UID).Msg("started-game")
}

// Reset throws everything away and starts over.
func (g *Game) Reset() {
	g.StartGame()
}

func (g *Game) curPlayer() *playerState {
	return g.players[g.onturn]
}

func (g *Game) checkPlaying() error {
	if g.playing != PlayStatePlaying {
		return ErrGameNotPlaying
	}
	return nil
}

// recompute rescans the whole board. It runs after every change to the
// board or to the dragged tile.
func (g *Game) recompute() {
	g.equations = g.rules.scanner.Scan(g.board.Snapshot(), g.dragging)
}

// DrawTiles draws up to n tiles from the pool into the tray of the player
// on turn, and returns them.
func (g *Game) DrawTiles(n int) []tilemapping.Tile {
	drawn := g.pool.Draw(n)
	g.curPlayer().tray.Add(drawn...)
	return drawn
}

// SetTrayFor puts the player's tray back in the pool and gives them the
// given symbols instead. It is used to set up positions. If the symbols
// are not available, the tray and the pool are left as they were.
func (g *Game) SetTrayFor(pidx int, symbols []string) error {
	if pidx < 0 || pidx >= len(g.players) {
		return fmt.Errorf("no player %d", pidx)
	}
	canonical := make([]string, len(symbols))
	for i, s := range symbols {
		sym, err := tilemapping.ParseSymbol(s)
		if err != nil {
			return err
		}
		canonical[i] = sym
	}
	return g.players[pidx].replaceTray(g.pool, canonical)
}

// PlaceTile moves a tile from the tray of the player on turn to the board,
// or moves a tile placed this turn to another square.
func (g *Game) PlaceTile(id tilemapping.TileID, pos board.Position) error {
	if err := g.checkPlaying(); err != nil {
		return err
	}
	if !pos.Valid() {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	tray := g.curPlayer().tray
	if from, ok := g.placed[id]; ok {
		if err := g.board.MoveTile(from, pos); err != nil {
			return err
		}
	} else if tile, ok := tray.Get(id); ok {
		if err := g.board.PlaceTile(pos, tile); err != nil {
			return err
		}
		if _, err := tray.Remove(id); err != nil {
			return err
		}
	} else if _, ok := g.board.Find(id); ok {
		return fmt.Errorf("%w: %d", ErrTileLocked, id)
	} else {
		return fmt.Errorf("%w: %d", ErrTileNotFound, id)
	}
	g.placed[id] = pos
	if g.dragging == id {
		g.dragging = tilemapping.NoTile
	}
	g.recompute()
	return nil
}

// RemoveTile takes a tile placed this turn off the board and puts it back
// at the end of the tray.
func (g *Game) RemoveTile(pos board.Position) (tilemapping.Tile, error) {
	if err := g.checkPlaying(); err != nil {
		return tilemapping.Tile{}, err
	}
	t, ok := g.board.GetTile(pos)
	if !ok {
		if !pos.Valid() {
			return tilemapping.Tile{}, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
		}
		return tilemapping.Tile{}, fmt.Errorf("%w: %v", ErrEmptySquare, pos.Coords())
	}
	if _, ok := g.placed[t.ID()]; !ok {
		return tilemapping.Tile{}, fmt.Errorf("%w: %v", ErrTileLocked, pos.Coords())
	}
	if _, err := g.board.RemoveTile(pos); err != nil {
		return tilemapping.Tile{}, err
	}
	delete(g.placed, t.ID())
	g.curPlayer().tray.Add(t)
	if g.dragging == t.ID() {
		g.dragging = tilemapping.NoTile
	}
	g.recompute()
	return t, nil
}

// Recall puts every tile placed this turn back in the tray.
func (g *Game) Recall() {
	for _, pos := range g.placedPositions() {
		t, err := g.board.RemoveTile(pos)
		if err != nil {
			log.Err(err).Str("pos", pos.Coords()).Msg("recall")
			continue
		}
		g.curPlayer().tray.Add(t)
	}
	g.placed = map[tilemapping.TileID]board.Position{}
	g.dragging = tilemapping.NoTile
	g.recompute()
}

// StartDrag marks a tile as being dragged. The board is scanned as if the
// tile were not there until EndDrag or until the tile is placed.
func (g *Game) StartDrag(id tilemapping.TileID) error {
	if err := g.checkPlaying(); err != nil {
		return err
	}
	if _, ok := g.placed[id]; !ok && !g.curPlayer().tray.Has(id) {
		if _, onBoard := g.board.Find(id); onBoard {
			return fmt.Errorf("%w: %d", ErrTileLocked, id)
		}
		return fmt.Errorf("%w: %d", ErrTileNotFound, id)
	}
	g.dragging = id
	g.recompute()
	return nil
}

func (g *Game) EndDrag() {
	if g.dragging == tilemapping.NoTile {
		return
	}
	g.dragging = tilemapping.NoTile
	g.recompute()
}

// Dragging returns the id of the dragged tile, or tilemapping.NoTile.
func (g *Game) Dragging() tilemapping.TileID {
	return g.dragging
}

// Equations returns the equations found by the latest scan.
func (g *Game) Equations() []equation.Equation {
	return g.equations
}

// TotalScore sums the scores of every valid equation on the board.
func (g *Game) TotalScore() int {
	return equation.TotalScore(g.equations)
}

// NewEquations returns the equations that contain a tile placed this turn.
func (g *Game) NewEquations() []equation.Equation {
	return lo.Filter(g.equations, func(e equation.Equation, _ int) bool {
		return lo.SomeBy(e.Tiles, func(t tilemapping.Tile) bool {
			_, ok := g.placed[t.ID()]
			return ok
		})
	})
}

// placedPositions returns the squares of this turn's tiles in board order.
func (g *Game) placedPositions() []board.Position {
	ps := lo.Values(g.placed)
	slices.SortFunc(ps, func(a, b board.Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return ps
}

// CommitTurn scores the tiles placed this turn, locks them, refills the
// tray and passes the turn. Every equation that contains a new tile must
// be valid; the turn scores the sum of those equations.
func (g *Game) CommitTurn() (int, error) {
	if err := g.checkPlaying(); err != nil {
		return 0, err
	}
	if len(g.placed) == 0 {
		return 0, ErrNoTilesPlaced
	}
	g.EndDrag()
	eqs := g.NewEquations()
	if len(eqs) == 0 {
		return 0, ErrNoEquation
	}
	for _, e := range eqs {
		if !e.Valid {
			return 0, fmt.Errorf("%w: %s at %s", ErrInvalidEquation, e.Expression, e.Start().Coords())
		}
	}
	score := lo.SumBy(eqs, func(e equation.Equation) int { return e.Score })
	player := g.curPlayer()
	bingo := len(g.placed) == g.rules.rackSize
	if bingo {
		score += BingoBonus
		player.bingos++
	}

	positions := g.placedPositions()
	placed := make([]PlacedTile, len(positions))
	for i, pos := range positions {
		t, _ := g.board.GetTile(pos)
		placed[i] = PlacedTile{
			Coords: pos.Coords(),
			Symbol: tilemapping.UserVisible([]tilemapping.Tile{t}),
			Value:  t.Value(),
		}
	}
	trayBefore := tilemapping.UserVisible(player.tray.Tiles()) +
		strings.Join(lo.Map(placed, func(p PlacedTile, _ int) string { return p.Symbol }), "")

	player.recordTurn(score)
	g.history.Events = append(g.history.Events, Event{
		Turn:        g.turnnum,
		PlayerIndex: g.onturn,
		Player:      player.Nickname,
		Type:        EventPlay,
		Tray:        trayBefore,
		Placed:      placed,
		Equations:   lo.Map(eqs, func(e equation.Equation, _ int) string { return e.Expression }),
		Bingo:       bingo,
		Score:       score,
		Cumulative:  player.points,
	})
	log.Debug().Str("player", player.Nickname).Int("score", score).
		Int("equations", len(eqs)).Msg("committed-turn")

	g.placed = map[tilemapping.TileID]board.Position{}
	g.scorelessTurns = 0
	player.tray.Add(g.pool.Draw(g.rules.rackSize - player.tray.NumTiles())...)
	if player.tray.NumTiles() == 0 {
		g.endGameOut()
		return score, nil
	}
	g.nextTurn()
	return score, nil
}

// Exchange swaps tray tiles with the pool and ends the turn. New tiles are
// drawn before the old ones go back in.
func (g *Game) Exchange(ids []tilemapping.TileID) error {
	if err := g.checkPlaying(); err != nil {
		return err
	}
	if len(g.placed) > 0 {
		return ErrTilesPlaced
	}
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return fmt.Errorf("%w: nothing to exchange", ErrTileNotFound)
	}
	player := g.curPlayer()
	if len(ids) > MaxCanExchange(g.pool.Remaining(), player.tray.NumTiles()) {
		return fmt.Errorf("%w: %d left, %d requested", ErrNotEnoughTiles, g.pool.Remaining(), len(ids))
	}
	for _, id := range ids {
		if !player.tray.Has(id) {
			return fmt.Errorf("%w: %d", ErrTileNotFound, id)
		}
	}
	trayBefore := tilemapping.UserVisible(player.tray.Tiles())
	old := make([]tilemapping.Tile, len(ids))
	for i, id := range ids {
		old[i], _ = player.tray.Remove(id)
	}
	player.tray.Add(g.pool.Exchange(old)...)
	player.recordTurn(0)
	g.history.Events = append(g.history.Events, Event{
		Turn:        g.turnnum,
		PlayerIndex: g.onturn,
		Player:      player.Nickname,
		Type:        EventExchange,
		Tray:        trayBefore,
		Exchanged:   tilemapping.UserVisible(old),
		Cumulative:  player.points,
	})
	g.scorelessTurn()
	return nil
}

// Pass ends the turn without scoring. Tiles placed this turn go back to
// the tray first.
func (g *Game) Pass() error {
	if err := g.checkPlaying(); err != nil {
		return err
	}
	g.Recall()
	player := g.curPlayer()
	player.recordTurn(0)
	g.history.Events = append(g.history.Events, Event{
		Turn:        g.turnnum,
		PlayerIndex: g.onturn,
		Player:      player.Nickname,
		Type:        EventPass,
		Tray:        tilemapping.UserVisible(player.tray.Tiles()),
		Cumulative:  player.points,
	})
	g.scorelessTurn()
	return nil
}

func (g *Game) scorelessTurn() {
	g.scorelessTurns++
	if g.scorelessTurns >= MaxScorelessTurns {
		g.endGameScoreless()
		return
	}
	g.nextTurn()
}

func (g *Game) nextTurn() {
	g.onturn = (g.onturn + 1) % len(g.players)
	g.turnnum++
}

// endGameOut ends the game after the player on turn used up their tray
// with the pool empty. They get twice the value of every other tray.
func (g *Game) endGameOut() {
	out := g.curPlayer()
	bonus := 0
	for _, p := range g.players {
		if p != out {
			bonus += 2 * p.tray.Points()
		}
	}
	out.points += bonus
	g.history.Events = append(g.history.Events, Event{
		Turn:        g.turnnum,
		PlayerIndex: g.onturn,
		Player:      out.Nickname,
		Type:        EventEndTray,
		Score:       bonus,
		Cumulative:  out.points,
	})
	g.endGame()
}

// endGameScoreless ends the game after too many scoreless turns. Everyone
// loses the value of their own tray.
func (g *Game) endGameScoreless() {
	for i, p := range g.players {
		pts := p.tray.Points()
		p.points -= pts
		g.history.Events = append(g.history.Events, Event{
			Turn:        g.turnnum,
			PlayerIndex: i,
			Player:      p.Nickname,
			Type:        EventEndTray,
			Tray:        tilemapping.UserVisible(p.tray.Tiles()),
			Score:       -pts,
			Cumulative:  p.points,
		})
	}
	g.endGame()
}

func (g *Game) endGame() {
	g.playing = PlayStateGameOver
	g.history.PlayState = PlayStateGameOver
	g.history.FinalScores = lo.Map(g.players, func(p *playerState, _ int) int { return p.points })
	log.Debug().Ints("scores", g.history.FinalScores).Msg("game-over")
}

// ShuffleTray shuffles the tray of the player on turn.
func (g *Game) ShuffleTray() {
	g.curPlayer().tray.Shuffle(g.pool)
}

// MoveTrayTile moves a tray tile to a new index in the tray.
func (g *Game) MoveTrayTile(id tilemapping.TileID, index int) error {
	if err := g.curPlayer().tray.Move(id, index); err != nil {
		return fmt.Errorf("%w: %d", ErrTileNotFound, id)
	}
	return nil
}

func (g *Game) Board() *board.GameBoard {
	return g.board
}

func (g *Game) Pool() *tilemapping.Pool {
	return g.pool
}

func (g *Game) Rules() *GameRules {
	return g.rules
}

func (g *Game) History() *History {
	return g.history
}

func (g *Game) Playing() PlayState {
	return g.playing
}

func (g *Game) PlayerOnTurn() int {
	return g.onturn
}

func (g *Game) Turn() int {
	return g.turnnum
}

func (g *Game) NumPlayers() int {
	return len(g.players)
}

func (g *Game) PlayerName(pidx int) string {
	return g.players[pidx].Nickname
}

// PointsFor returns the score of the player.
func (g *Game) PointsFor(pidx int) int {
	return g.players[pidx].points
}

func (g *Game) BingosFor(pidx int) int {
	return g.players[pidx].bingos
}

// TurnScoresFor returns the statistics over the player's turn scores.
// Exchanges and passes count as zero.
func (g *Game) TurnScoresFor(pidx int) *stats.Statistic {
	return &g.players[pidx].turnScores
}

// TrayFor returns the tiles in the player's tray, in tray order.
func (g *Game) TrayFor(pidx int) []tilemapping.Tile {
	return g.players[pidx].tray.Tiles()
}

// Tray returns the tray of the player on turn.
func (g *Game) Tray() *tilemapping.Tray {
	return g.curPlayer().tray
}

// PlacedThisTurn reports whether the tile was placed this turn.
func (g *Game) PlacedThisTurn(id tilemapping.TileID) bool {
	_, ok := g.placed[id]
	return ok
}
