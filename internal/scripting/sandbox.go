// Package scripting provides a sandboxed GopherLua execution environment
// for creature behaviour scripts. It depends only on the dice package; the
// combat engine passes plain snapshots in and reads plain values back.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the maximum number of Lua opcodes allowed per
// script load or hook call when no profile-specific limit is configured.
const DefaultInstructionLimit = 100_000

// strippedGlobals are base-library functions a creature script may not reach.
var strippedGlobals = []string{"dofile", "loadfile", "load", "collectgarbage", "require"}

// opcodeBudget cancels itself once Done has been polled limit times.
// GopherLua polls Done once per opcode while a context is set.
type opcodeBudget struct {
	context.Context
	cancel context.CancelFunc
	left   atomic.Int64
}

func (b *opcodeBudget) Done() <-chan struct{} {
	if b.left.Add(-1) <= 0 {
		b.cancel()
	}
	return b.Context.Done()
}

func effectiveLimit(instLimit int) int {
	if instLimit <= 0 {
		return DefaultInstructionLimit
	}
	return instLimit
}

// Rearm gives L a fresh budget of instLimit opcodes. A VM that lives for a
// whole batch is therefore limited per hook call, not over its lifetime.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: the returned cancel func releases the budget; call it once
// the guarded call returns.
func Rearm(L *lua.LState, instLimit int) context.CancelFunc {
	base, cancel := context.WithCancel(context.Background())
	b := &opcodeBudget{Context: base, cancel: cancel}
	b.left.Store(int64(effectiveLimit(instLimit)))
	L.SetContext(b)
	return cancel
}

// NewSandboxedState creates an LState that opens only the base, table,
// string and math libraries, strips the loader globals, and starts with a
// budget of instLimit opcodes.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: Returns a non-nil LState ready for module registration.
// The caller owns the LState and must call L.Close() when done.
func NewSandboxedState(instLimit int) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString, lua.OpenMath} {
		open(L)
	}
	for _, name := range strippedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	// the initial budget expires on its own; later calls Rearm
	_ = Rearm(L, instLimit)
	return L
}
