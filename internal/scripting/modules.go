package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// registerModules installs the engine global into v's VM:
//
//	engine.log.debug/info/warn/error(msg)  write to the manager's logger
//	engine.dice.roll(expr)                 {total, dice, modifier}; dice is the die sum
//	engine.random(n)                       uniform integer in [0, n)
//
// Precondition: v.L must be from NewSandboxedState.
// Postcondition: engine global is defined in v.L.
func (m *Manager) registerModules(v *vm) {
	L := v.L
	engine := L.NewTable()

	logTbl := L.NewTable()
	for name, fn := range map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	} {
		L.SetField(logTbl, name, L.NewFunction(func(L *lua.LState) int {
			fn(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	L.SetField(engine, "log", logTbl)

	diceTbl := L.NewTable()
	L.SetField(diceTbl, "roll", L.NewFunction(func(L *lua.LState) int {
		expr, err := dice.Parse(L.CheckString(1))
		if err != nil {
			L.RaiseError("engine.dice.roll: %s", err.Error())
			return 0
		}
		var result dice.RollResult
		if v.src != nil {
			result = dice.Roll(expr, v.src)
		} else {
			result = m.roller.Roll(expr)
		}
		sum := 0
		for _, d := range result.Dice {
			sum += d
		}
		out := L.NewTable()
		L.SetField(out, "total", lua.LNumber(result.Total()))
		L.SetField(out, "dice", lua.LNumber(sum))
		L.SetField(out, "modifier", lua.LNumber(result.Modifier))
		L.Push(out)
		return 1
	}))
	L.SetField(engine, "dice", diceTbl)

	L.SetField(engine, "random", L.NewFunction(func(L *lua.LState) int {
		n := L.CheckInt(1)
		if n <= 0 {
			L.ArgError(1, "n must be positive")
			return 0
		}
		if v.src != nil {
			L.Push(lua.LNumber(v.src.Intn(n)))
		} else {
			L.Push(lua.LNumber(m.roller.Intn(n)))
		}
		return 1
	}))

	L.SetGlobal("engine", engine)
}
