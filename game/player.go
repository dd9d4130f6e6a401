package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/amath/stats"
	"github.com/domino14/amath/tilemapping"
)

type playerState struct {
	Nickname string

	tray   *tilemapping.Tray
	points int
	bingos int
	turns  int
	// one sample per turn, zero for exchanges and passes
	turnScores stats.Statistic
}

func newPlayerState(nickname string) *playerState {
	return &playerState{
		Nickname: nickname,
		tray:     tilemapping.NewTray(),
	}
}

func (p *playerState) resetScore() {
	p.points = 0
	p.bingos = 0
	p.turns = 0
	p.turnScores.Reset()
}

func (p *playerState) recordTurn(score int) {
	p.points += score
	p.turns++
	p.turnScores.Push(float64(score))
}

// replaceTray returns the tray to the pool and takes the symbols out
// instead. On error nothing changes.
func (p *playerState) replaceTray(pool *tilemapping.Pool, symbols []string) error {
	tiles, err := pool.Replace(p.tray.Tiles(), symbols...)
	if err != nil {
		return err
	}
	log.Debug().Str("old", p.tray.String()).Str("player", p.Nickname).
		Msg("replacing tray")
	p.tray.Clear()
	p.tray.Add(tiles...)
	return nil
}

func (p *playerState) stateString(myturn bool) string {
	onturn := ""
	if myturn {
		onturn = "-> "
	}
	tray := tilemapping.UserVisible(p.tray.Tiles())
	if !myturn {
		tray = ""
	}
	return fmt.Sprintf("%4v%20v%10v %4v", onturn, p.Nickname, tray, p.points)
}

type playerStates []*playerState

func (p playerStates) resetTrays() {
	for idx := range p {
		p[idx].tray.Clear()
	}
}

func (p playerStates) resetScore() {
	for idx := range p {
		p[idx].resetScore()
	}
}
