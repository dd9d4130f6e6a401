package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/amath/tilemapping"
)

func splitSubN(s string, n int) []string {
	var subs []string
	runes := []rune(s)
	for len(runes) > n {
		subs = append(subs, string(runes[:n]))
		runes = runes[n:]
	}
	if len(runes) > 0 {
		subs = append(subs, string(runes))
	}
	return subs
}

func addText(lines []string, row int, hpad int, text string) {
	maxTextSize := 42
	for _, chunk := range splitSubN(text, maxTextSize) {
		if row >= len(lines) {
			return
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
}

func summary(e Event) string {
	switch e.Type {
	case EventPlay:
		s := fmt.Sprintf("%s played %s for %d pts", e.Player, strings.Join(e.Equations, ", "), e.Score)
		if e.Bingo {
			s += " (bingo)"
		}
		return s
	case EventExchange:
		return fmt.Sprintf("%s exchanged %s", e.Player, e.Exchanged)
	case EventPass:
		return fmt.Sprintf("%s passed", e.Player)
	case EventEndTray:
		return fmt.Sprintf("%s: %+d for trays left over", e.Player, e.Score)
	}
	return ""
}

// ToDisplayText turns the current state of the game into a displayable
// string: the board with the players, the pool and the last event next to
// it, and the equations currently on the board below.
func (g *Game) ToDisplayText() string {
	bts := strings.Split(g.board.ToDisplayText(), "\n")
	hpadding := 3
	vpadding := 1
	poolColCount := 14

	log.Debug().Int("onturn", g.onturn).Msg("todisplaytext")
	for pi := range g.players {
		addText(bts, vpadding+pi, hpadding,
			g.players[pi].stateString(g.playing == PlayStatePlaying && g.onturn == pi))
	}

	vpadding += len(g.players) + 1
	counts := g.pool.Counts()
	addText(bts, vpadding, hpadding, fmt.Sprintf("Pool: (%d)", g.pool.Remaining()))
	var inPool []string
	for _, sym := range g.pool.Distribution().Symbols() {
		for i := 0; i < counts[sym]; i++ {
			if sym == tilemapping.SymbolBlank {
				inPool = append(inPool, "?")
			} else {
				inPool = append(inPool, sym)
			}
		}
	}
	for i := 0; i*poolColCount < len(inPool); i++ {
		end := min((i+1)*poolColCount, len(inPool))
		addText(bts, vpadding+1+i, hpadding, strings.Join(inPool[i*poolColCount:end], " "))
	}

	addText(bts, 13, hpadding, fmt.Sprintf("Turn %d:", g.turnnum))
	if n := len(g.history.Events); n > 0 {
		addText(bts, 14, hpadding, summary(g.history.Events[n-1]))
	}
	if g.playing == PlayStateGameOver {
		addText(bts, 17, hpadding, "Game is over.")
	}

	var eqLines []string
	eqs := g.Equations()
	sorted := make([]int, len(eqs))
	for i := range sorted {
		sorted[i] = i
	}
	// Valid equations first, best first.
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := eqs[sorted[i]], eqs[sorted[j]]
		if a.Valid != b.Valid {
			return a.Valid
		}
		return a.Score > b.Score
	})
	for _, i := range sorted {
		e := eqs[i]
		mark := "x"
		if e.Valid {
			mark = "✓"
		}
		eqLines = append(eqLines, fmt.Sprintf("  %s %-4s %-20s %4d", mark, e.Start().Coords(), e.Expression, e.Score))
	}
	if len(eqLines) > 0 {
		bts = append(bts, "Equations:")
		bts = append(bts, eqLines...)
		bts = append(bts, fmt.Sprintf("Total: %d", g.TotalScore()))
	}
	return strings.Join(bts, "\n")
}
