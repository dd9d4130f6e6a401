package shell

import (
	"errors"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

const maxScriptDepth = 4

func getShell(L *lua.LState) *ShellController {
	ud, ok := L.GetGlobal("amath_shell").(*lua.LUserData)
	if !ok {
		L.RaiseError("amath_shell is not set")
	}
	sc, ok := ud.Value.(*ShellController)
	if !ok {
		L.RaiseError("amath_shell is not a shell")
	}
	return sc
}

// luaExec runs one shell command. It returns the message, or nil and the
// error text.
func luaExec(L *lua.LState) int {
	line := L.CheckString(1)
	sc := getShell(L)
	r, err := sc.Execute(line)
	if err != nil {
		log.Debug().Err(err).Str("line", line).Msg("script-command-failed")
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LString(r.message))
	return 1
}

// luaEval evaluates an expression and returns its value, or nil and the
// error text.
func luaEval(L *lua.LState) int {
	v, err := getShell(L).evaluator.Evaluate(L.CheckString(1))
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LNumber(v))
	return 1
}

func luaScore(L *lua.LState) int {
	sc := getShell(L)
	if sc.game == nil {
		L.Push(lua.LNumber(0))
		return 1
	}
	L.Push(lua.LNumber(sc.game.TotalScore()))
	return 1
}

// luaEquations returns the equations on the board as a list of tables
// with expression, coords, valid and score fields.
func luaEquations(L *lua.LState) int {
	sc := getShell(L)
	list := L.NewTable()
	if sc.game != nil {
		for _, e := range sc.game.Equations() {
			t := L.NewTable()
			t.RawSetString("expression", lua.LString(e.Expression))
			t.RawSetString("coords", lua.LString(e.Start().Coords()))
			t.RawSetString("horizontal", lua.LBool(e.Horizontal))
			t.RawSetString("valid", lua.LBool(e.Valid))
			t.RawSetString("score", lua.LNumber(e.Score))
			list.Append(t)
		}
	}
	L.Push(list)
	return 1
}

// script runs a Lua file. The file sees amath_exec, amath_eval,
// amath_score and amath_equations, and can require("json"). If it returns
// a value, that is the response.
func (sc *ShellController) script(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("usage: script <file.lua>")
	}
	if sc.scriptDepth >= maxScriptDepth {
		return nil, errors.New("scripts are nested too deeply")
	}
	sc.scriptDepth++
	defer func() { sc.scriptDepth-- }()

	L := lua.NewState()
	defer L.Close()

	ud := L.NewUserData()
	ud.Value = sc
	L.SetGlobal("amath_shell", ud)
	L.SetGlobal("amath_exec", L.NewFunction(luaExec))
	L.SetGlobal("amath_eval", L.NewFunction(luaEval))
	L.SetGlobal("amath_score", L.NewFunction(luaScore))
	L.SetGlobal("amath_equations", L.NewFunction(luaEquations))
	luajson.Preload(L)

	if err := L.DoFile(cmd.args[0]); err != nil {
		return nil, err
	}
	if L.GetTop() > 0 {
		if ret := L.Get(-1); ret != lua.LNil {
			return msg(lua.LVAsString(ret)), nil
		}
	}
	return msg("ran " + cmd.args[0]), nil
}
