package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
	"github.com/cory-johannsen/skirmish/internal/scripting"
)

func runScript(t *testing.T, mgr *scripting.Manager, luaSrc, hook string, args ...lua.LValue) lua.LValue {
	t.Helper()
	dir := writeTempLua(t, "test.lua", luaSrc)
	profile := "modtest_" + t.Name()
	require.NoError(t, mgr.LoadProfile(profile, dir, 0))
	ret, err := mgr.CallHook(profile, hook, args...)
	require.NoError(t, err)
	return ret
}

func TestEngineLog_WritesToLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	src := dice.NewCryptoSource()
	roller := dice.NewLoggedRoller(src, logger)
	mgr := scripting.NewManager(roller, logger)

	runScript(t, mgr, `
		function do_log()
			engine.log.info("hello from lua")
		end
	`, "do_log")

	found := false
	for _, e := range logs.All() {
		if e.Level == zap.InfoLevel {
			found = true
			break
		}
	}
	assert.True(t, found, "expected Info log entry")
}

func TestEngineLog_AllLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)
	src := dice.NewCryptoSource()
	roller := dice.NewLoggedRoller(src, logger)
	mgr := scripting.NewManager(roller, logger)

	runScript(t, mgr, `
		function do_all_logs()
			engine.log.debug("d")
			engine.log.info("i")
			engine.log.warn("w")
			engine.log.error("e")
		end
	`, "do_all_logs")

	levels := map[string]bool{}
	for _, e := range logs.All() {
		levels[e.Level.String()] = true
	}
	assert.True(t, levels["debug"], "expected debug log")
	assert.True(t, levels["info"], "expected info log")
	assert.True(t, levels["warn"], "expected warn log")
	assert.True(t, levels["error"], "expected error log")
}

func TestEngineDice_Roll_ReturnsTable(t *testing.T) {
	mgr, _ := newTestManager(t)
	ret := runScript(t, mgr, `
		function do_roll()
			local r = engine.dice.roll("1d6")
			if type(r.dice) ~= "number" then error("dice field missing") end
			return r.total
		end
	`, "do_roll")
	n, ok := ret.(lua.LNumber)
	require.True(t, ok, "expected LNumber, got %T", ret)
	assert.GreaterOrEqual(t, int(n), 1)
	assert.LessOrEqual(t, int(n), 6)
}

func TestProperty_DiceRoll_TotalEqualsDicePlusModifier(t *testing.T) {
	mgr, _ := newTestManager(t)
	rapid.Check(t, func(rt *rapid.T) {
		expr := rapid.SampledFrom([]string{"1d6", "2d6", "1d4", "1d8"}).Draw(rt, "expr")
		ret := runScript(t, mgr, `
			function check_invariant(expr)
				local r = engine.dice.roll(expr)
				return r.total == r.dice + r.modifier
			end
		`, "check_invariant", lua.LString(expr))
		assert.Equal(t, lua.LTrue, ret, "total must equal dice + modifier for expr %s", expr)
	})
}

func TestEngineDice_Roll_BadExpression_WarnsAndReturnsNil(t *testing.T) {
	mgr, logs := newTestManager(t)
	ret := runScript(t, mgr, `
		function do_roll() return engine.dice.roll("banana") end
	`, "do_roll")
	assert.Equal(t, lua.LNil, ret)
	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestEngineRandom_InRange(t *testing.T) {
	mgr, _ := newTestManager(t)
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 256).Draw(rt, "n")
		ret := runScript(t, mgr, `
			function pick(n) return engine.random(n) end
		`, "pick", lua.LNumber(n))
		v, ok := ret.(lua.LNumber)
		require.True(rt, ok)
		assert.GreaterOrEqual(rt, int(v), 0)
		assert.Less(rt, int(v), n)
	})
}

func TestEngineRandom_NonPositive_IsRuntimeError(t *testing.T) {
	mgr, logs := newTestManager(t)
	ret := runScript(t, mgr, `
		function pick() return engine.random(0) end
	`, "pick")
	assert.Equal(t, lua.LNil, ret)
	assert.Equal(t, 1, logs.FilterLevelExact(zap.WarnLevel).Len())
}
