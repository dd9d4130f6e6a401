package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/amath/config"
	"github.com/domino14/amath/equation"
	"github.com/domino14/amath/expr"
	"github.com/domino14/amath/game"
)

type ShellController struct {
	l        *readline.Instance
	config   *config.Config
	execPath string

	game      *game.Game
	rng       *frand.RNG
	evaluator *expr.Evaluator
	validator *equation.Validator

	gitVersion  string
	handlers    map[string]func(*shellcmd) (*Response, error)
	scriptDepth int
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController creates a shell that reads commands with readline.
func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := NewController(cfg, execPath, gitVersion)
	prompt := "amath"
	l, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("\033[31m%s>\033[0m ", prompt),
		HistoryFile:     cfg.GetString(config.ConfigHistoryFile),
		AutoComplete:    NewShellCompleter(sc),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	return sc
}

// NewController creates a controller with no terminal attached. Use it to
// run commands from scripts and tests.
func NewController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	sc := &ShellController{
		config:     cfg,
		execPath:   execPath,
		gitVersion: gitVersion,
		rng:        frand.New(),
		evaluator:  expr.NewEvaluator(cfg.GetFloat64(config.ConfigMaxLiteral)),
		validator: equation.NewCachedValidator(cfg.GetFloat64(config.ConfigMaxLiteral),
			cfg.GetFloat64(config.ConfigTolerance), cfg.GetInt(config.ConfigValidationCacheSize)),
	}
	sc.handlers = map[string]func(*shellcmd) (*Response, error){
		"new":      sc.newGame,
		"show":     sc.show,
		"s":        sc.show,
		"tray":     sc.tray,
		"settray":  sc.setTray,
		"draw":     sc.draw,
		"place":    sc.place,
		"move":     sc.move,
		"remove":   sc.remove,
		"recall":   sc.recall,
		"drag":     sc.drag,
		"drop":     sc.drop,
		"eqs":      sc.eqs,
		"score":    sc.score,
		"stats":    sc.turnStats,
		"commit":   sc.commit,
		"exchange": sc.exchange,
		"pass":     sc.pass,
		"shuffle":  sc.shuffle,
		"order":    sc.order,
		"eval":     sc.eval,
		"check":    sc.check,
		"export":   sc.export,
		"gid":      sc.gid,
		"script":   sc.script,
		"config":   sc.showConfig,
		"help":     sc.help,
	}
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.l.Stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Execute runs one command line and returns what it has to say.
func (sc *ShellController) Execute(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	if cmd.cmd == "exit" || cmd.cmd == "bye" {
		return nil, errQuit
	}
	h, ok := sc.handlers[cmd.cmd]
	if !ok {
		return nil, fmt.Errorf("command %q not found; try `help`", cmd.cmd)
	}
	log.Debug().Str("cmd", cmd.cmd).Strs("args", cmd.args).Msg("executing")
	return h(cmd)
}

// ExecuteLines runs lines that came from the command line rather than the
// REPL, separated by ;, printing to stdout.
func (sc *ShellController) ExecuteLines(w io.Writer, line string) error {
	for _, l := range strings.Split(line, ";") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		resp, err := sc.Execute(l)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return err
		}
		showMessage(resp.message, w)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.Execute(line)
		if errors.Is(err, errQuit) {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		sc.showMessage(resp.message)
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup is called when the program exits.
func (sc *ShellController) Cleanup() {
	log.Debug().Msg("cleaning up shell")
}
