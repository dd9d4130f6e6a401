package shell

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/kballard/go-shellquote"
	"github.com/samber/lo"

	"github.com/domino14/amath/board"
	"github.com/domino14/amath/config"
	"github.com/domino14/amath/equation"
	"github.com/domino14/amath/game"
	"github.com/domino14/amath/tilemapping"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("no game in progress; start one with `new`")
	errQuit              = errors.New("quit")
)

type Response struct {
	message string
}

func (r *Response) Message() string {
	return r.message
}

func msg(message string) *Response {
	return &Response{message: message}
}

type CmdOptions map[string]string

func (c CmdOptions) Int(key string) (int, error) {
	v, ok := c[key]
	if !ok {
		return 0, errors.New(key + " not found in options")
	}
	return strconv.Atoi(v)
}

func (c CmdOptions) IntDefault(key string, defaultI int) (int, error) {
	if _, ok := c[key]; !ok {
		return defaultI, nil
	}
	return c.Int(key)
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

// extractFields splits a line into a command, its positional arguments and
// its -key value options. Quoting follows shell rules.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := &shellcmd{cmd: fields[0], options: CmdOptions{}}
	for i := 1; i < len(fields); i++ {
		f := fields[i]
		// Options start with -letter; a lone - or -3 is an argument.
		if len(f) > 1 && f[0] == '-' && unicode.IsLetter(rune(f[1])) {
			if i+1 == len(fields) {
				return nil, errWrongOptionSyntax
			}
			cmd.options[f[1:]] = fields[i+1]
			i++
			continue
		}
		cmd.args = append(cmd.args, f)
	}
	return cmd, nil
}

func parseTileID(s string) (tilemapping.TileID, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 10, 32)
	if err != nil || id == 0 {
		return tilemapping.NoTile, fmt.Errorf("%q is not a tile id", s)
	}
	return tilemapping.TileID(id), nil
}

func (sc *ShellController) requireGame() error {
	if sc.game == nil {
		return errNoGame
	}
	return nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	seed, err := cmd.options.IntDefault("seed", 0)
	if err != nil {
		return nil, err
	}
	var rng = sc.rng
	if seed != 0 {
		rng = tilemapping.SeededRandSource(uint64(seed))
	}
	names := cmd.args
	if len(names) == 0 {
		names = []string{"arcadio", "úrsula"}
	}
	g, err := game.NewGame(sc.config, nil, rng, names...)
	if err != nil {
		return nil, err
	}
	g.StartGame()
	sc.game = g
	return msg(g.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) tray(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	return msg(sc.game.Tray().String()), nil
}

func (sc *ShellController) setTray(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: settray <symbol>...")
	}
	if err := sc.game.SetTrayFor(sc.game.PlayerOnTurn(), cmd.args); err != nil {
		return nil, err
	}
	return msg(sc.game.Tray().String()), nil
}

func (sc *ShellController) draw(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	n := sc.game.Rules().RackSize() - sc.game.Tray().NumTiles()
	if len(cmd.args) > 0 {
		var err error
		if n, err = strconv.Atoi(cmd.args[0]); err != nil {
			return nil, err
		}
	}
	drawn := sc.game.DrawTiles(n)
	return msg(fmt.Sprintf("drew %d: %s\n%s", len(drawn),
		tilemapping.UserVisible(drawn), sc.game.Tray().String())), nil
}

func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: place <tile-id> <coords>")
	}
	id, err := parseTileID(cmd.args[0])
	if err != nil {
		return nil, err
	}
	pos, err := board.FromCoords(cmd.args[1])
	if err != nil {
		return nil, err
	}
	if err := sc.game.PlaceTile(id, pos); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) move(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: move <from> <to>")
	}
	from, err := board.FromCoords(cmd.args[0])
	if err != nil {
		return nil, err
	}
	to, err := board.FromCoords(cmd.args[1])
	if err != nil {
		return nil, err
	}
	t, ok := sc.game.Board().GetTile(from)
	if !ok {
		return nil, fmt.Errorf("%w: %s", game.ErrEmptySquare, from.Coords())
	}
	if err := sc.game.PlaceTile(t.ID(), to); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) remove(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: remove <coords>")
	}
	pos, err := board.FromCoords(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if _, err := sc.game.RemoveTile(pos); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) recall(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	sc.game.Recall()
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) drag(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("usage: drag <tile-id>")
	}
	id, err := parseTileID(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := sc.game.StartDrag(id); err != nil {
		return nil, err
	}
	return msg(equationTable(sc.game.Equations())), nil
}

func (sc *ShellController) drop(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	sc.game.EndDrag()
	return msg(equationTable(sc.game.Equations())), nil
}

func equationTable(eqs []equation.Equation) string {
	if len(eqs) == 0 {
		return "No equations on the board."
	}
	var sb strings.Builder
	sb.WriteString("     Start Dir Equation              Valid Score\n")
	for i, e := range eqs {
		dir := "v"
		if e.Horizontal {
			dir = "h"
		}
		fmt.Fprintf(&sb, "%3d: %-5s %-3s %-21s %-5v %5d\n", i+1,
			e.Start().Coords(), dir, e.Expression, e.Valid, e.Score)
	}
	fmt.Fprintf(&sb, "Total: %d", equation.TotalScore(eqs))
	return sb.String()
}

func (sc *ShellController) eqs(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	return msg(equationTable(sc.game.Equations())), nil
}

func (sc *ShellController) score(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	lines := []string{fmt.Sprintf("Board: %d", sc.game.TotalScore())}
	for i := 0; i < sc.game.NumPlayers(); i++ {
		lines = append(lines, fmt.Sprintf("%s: %d", sc.game.PlayerName(i), sc.game.PointsFor(i)))
	}
	return msg(strings.Join(lines, "\n")), nil
}

// turnStats summarizes each player's turn scores. With -hist, it also draws
// a histogram of them.
func (sc *ShellController) turnStats(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	bins, err := cmd.options.IntDefault("hist", 0)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	for i := 0; i < sc.game.NumPlayers(); i++ {
		st := sc.game.TurnScoresFor(i)
		fmt.Fprintf(&sb, "%s: %s\n", sc.game.PlayerName(i), st.Summary())
		if bins > 0 {
			if err := st.WriteHistogram(&sb, bins); err != nil {
				return nil, err
			}
		}
	}
	return msg(strings.TrimRight(sb.String(), "\n")), nil
}

func (sc *ShellController) commit(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	player := sc.game.PlayerName(sc.game.PlayerOnTurn())
	pts, err := sc.game.CommitTurn()
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%s scored %d\n%s", player, pts, sc.game.ToDisplayText())), nil
}

func (sc *ShellController) exchange(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: exchange <tile-id>...")
	}
	ids := make([]tilemapping.TileID, len(cmd.args))
	for i, a := range cmd.args {
		id, err := parseTileID(a)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	if err := sc.game.Exchange(ids); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) pass(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if err := sc.game.Pass(); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) shuffle(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	sc.game.ShuffleTray()
	return msg(sc.game.Tray().String()), nil
}

func (sc *ShellController) order(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: order <tile-id> <index>")
	}
	id, err := parseTileID(cmd.args[0])
	if err != nil {
		return nil, err
	}
	idx, err := strconv.Atoi(cmd.args[1])
	if err != nil {
		return nil, err
	}
	if err := sc.game.MoveTrayTile(id, idx); err != nil {
		return nil, err
	}
	return msg(sc.game.Tray().String()), nil
}

func (sc *ShellController) eval(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: eval <expression>")
	}
	v, err := sc.evaluator.Evaluate(strings.Join(cmd.args, ""))
	if err != nil {
		return nil, err
	}
	return msg(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: check <symbol>...")
	}
	tiles, err := tilemapping.FromSymbols(cmd.args...)
	if err != nil {
		return nil, err
	}
	if valid, reading := sc.validator.Validate(tiles); valid {
		return msg(fmt.Sprintf("%s is valid: %s", tilemapping.UserVisible(tiles), reading)), nil
	}
	n := len(equation.Combinations(tiles))
	return msg(fmt.Sprintf("%s is not valid (%d readings tried)", tilemapping.UserVisible(tiles), n)), nil
}

func (sc *ShellController) export(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	out, err := sc.game.ExportYAML()
	if err != nil {
		return nil, err
	}
	if len(cmd.args) == 0 {
		return msg(string(out)), nil
	}
	if err := os.WriteFile(cmd.args[0], out, 0644); err != nil {
		return nil, err
	}
	return msg("exported to " + cmd.args[0]), nil
}

func (sc *ShellController) gid(cmd *shellcmd) (*Response, error) {
	if err := sc.requireGame(); err != nil {
		return nil, err
	}
	return msg(sc.game.History().UID), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usage()), nil
	}
	return msg(usageTopic(cmd.args[0])), nil
}

func (sc *ShellController) showConfig(cmd *shellcmd) (*Response, error) {
	keys := []string{config.ConfigRackSize, config.ConfigMaxLiteral,
		config.ConfigTolerance, config.ConfigParallelScan, config.ConfigValidationCacheSize,
		config.ConfigDistributionPath}
	return msg(strings.Join(lo.Map(keys, func(k string, _ int) string {
		return fmt.Sprintf("%s: %v", k, sc.config.Get(k))
	}), "\n")), nil
}
