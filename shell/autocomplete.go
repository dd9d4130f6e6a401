package shell

import (
	"slices"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/domino14/amath/board"
)

// ShellCompleter provides context-aware autocomplete for shell commands
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

// argKind says what a positional argument of a command completes to.
type argKind int

const (
	argNone argKind = iota
	argTrayTile
	argPlacedCoords
	argEmptyCoords
	argHelpTopic
)

// commandArgs lists, per command, what each positional argument is. The
// last entry repeats.
var commandArgs = map[string][]argKind{
	"place":    {argTrayTile, argEmptyCoords},
	"move":     {argPlacedCoords, argEmptyCoords},
	"remove":   {argPlacedCoords},
	"drag":     {argTrayTile},
	"exchange": {argTrayTile},
	"order":    {argTrayTile, argNone},
	"help":     {argHelpTopic},
}

var helpTopics = []string{"place", "check", "eval", "script", "symbols"}

func (c *ShellCompleter) commandNames() []string {
	names := make([]string, 0, len(c.sc.handlers)+1)
	for n := range c.sc.handlers {
		names = append(names, n)
	}
	names = append(names, "exit")
	slices.Sort(names)
	return names
}

func (c *ShellCompleter) trayTileIDs() []string {
	if c.sc.game == nil {
		return nil
	}
	var ids []string
	for _, t := range c.sc.game.Tray().Tiles() {
		ids = append(ids, strconv.Itoa(int(t.ID())))
	}
	// Tiles placed this turn can be moved by id too.
	for r := 0; r < board.Dim; r++ {
		for col := 0; col < board.Dim; col++ {
			if t, ok := c.sc.game.Board().GetTile(board.Position{Row: r, Col: col}); ok &&
				c.sc.game.PlacedThisTurn(t.ID()) {
				ids = append(ids, strconv.Itoa(int(t.ID())))
			}
		}
	}
	return ids
}

func (c *ShellCompleter) coords(placed bool) []string {
	if c.sc.game == nil {
		return nil
	}
	var cs []string
	for r := 0; r < board.Dim; r++ {
		for col := 0; col < board.Dim; col++ {
			pos := board.Position{Row: r, Col: col}
			t, ok := c.sc.game.Board().GetTile(pos)
			if placed && ok && c.sc.game.PlacedThisTurn(t.ID()) {
				cs = append(cs, pos.Coords())
			} else if !placed && !ok {
				cs = append(cs, pos.Coords())
			}
		}
	}
	return cs
}

// Do implements the readline.AutoComplete interface
// It provides context-aware autocomplete based on what's been typed
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = c.commandNames()
	} else {
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		// Index of the argument being completed.
		argIdx := len(fields) - 1
		if !endsWithSpace {
			argIdx--
		}
		kinds := commandArgs[fields[0]]
		if len(kinds) > 0 {
			kind := kinds[min(argIdx, len(kinds)-1)]
			switch kind {
			case argTrayTile:
				completions = c.trayTileIDs()
			case argPlacedCoords:
				completions = c.coords(true)
			case argEmptyCoords:
				completions = c.coords(false)
			case argHelpTopic:
				completions = helpTopics
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(strings.ToUpper(completion), strings.ToUpper(prefix)) {
			suffix := completion[len(prefix):]
			matches = append(matches, []rune(suffix))
		}
	}
	return matches, len(prefix)
}
