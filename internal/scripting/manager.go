package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/skirmish/internal/game/dice"
)

// GlobalProfile is the reserved key for shared scripts loaded via LoadGlobal.
// Hook calls fall back to this VM when the named profile has none.
const GlobalProfile = "__global__"

// vm is one sandboxed LState. Its mutex serializes every load and call so
// encounters running on different goroutines can share profiles.
type vm struct {
	mu    sync.Mutex
	L     *lua.LState
	limit int
	// src feeds engine.random and engine.dice during a call; nil uses the
	// manager's roller.
	src dice.Source
}

// Manager owns one sandboxed LState per behaviour profile and exposes hook
// dispatch. It is safe for concurrent use.
type Manager struct {
	mu     sync.RWMutex
	vms    map[string]*vm
	roller *dice.Roller
	logger *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: Returns a non-nil Manager with no profiles.
func NewManager(roller *dice.Roller, logger *zap.Logger) *Manager {
	if roller == nil {
		panic("scripting: NewManager precondition violated: nil roller")
	}
	if logger == nil {
		panic("scripting: NewManager precondition violated: nil logger")
	}
	return &Manager{
		vms:    make(map[string]*vm),
		roller: roller,
		logger: logger,
	}
}

// LoadProfile creates a sandboxed VM for profile, registers the engine.*
// modules, then executes every *.lua file in scriptDir in lexicographic order.
// A profile loaded twice replaces the earlier VM.
//
// Precondition: profile must be non-empty; scriptDir must be a readable directory.
// Postcondition: the profile VM is registered; returns error on Lua load failure.
func (m *Manager) LoadProfile(profile, scriptDir string, instLimit int) error {
	if profile == "" {
		return fmt.Errorf("scripting: empty profile name")
	}
	return m.loadInto(profile, scriptDir, instLimit)
}

// LoadGlobal creates the shared VM that every profile falls back to.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: the global VM is registered; returns error on Lua load failure.
func (m *Manager) LoadGlobal(scriptDir string, instLimit int) error {
	return m.loadInto(GlobalProfile, scriptDir, instLimit)
}

func (m *Manager) loadInto(key, scriptDir string, instLimit int) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, key, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	v := &vm{L: NewSandboxedState(instLimit), limit: instLimit}
	m.registerModules(v)
	for _, path := range luaFiles {
		cancel := Rearm(v.L, v.limit)
		err := v.L.DoFile(path)
		cancel()
		if err != nil {
			v.L.Close()
			return fmt.Errorf("scripting: loading %q for %q: %w", path, key, err)
		}
	}

	m.mu.Lock()
	old := m.vms[key]
	m.vms[key] = v
	m.mu.Unlock()
	if old != nil {
		old.mu.Lock()
		old.L.Close()
		old.mu.Unlock()
	}
	m.logger.Debug("scripting: profile loaded",
		zap.String("profile", key),
		zap.Int("files", len(luaFiles)),
	)
	return nil
}

// HasProfile reports whether a VM, the global one included, is loaded under name.
func (m *Manager) HasProfile(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.vms[name]
	return ok
}

// lookup returns the VM for profile, falling back to the global VM.
func (m *Manager) lookup(profile string) *vm {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.vms[profile]; ok {
		return v
	}
	return m.vms[GlobalProfile]
}

// CallHook calls the named Lua global function in profile's VM, falling back
// to the global VM. Returns (LNil, nil) if the hook is not defined or no VM
// exists. Lua runtime errors, budget exhaustion included, are logged at Warn
// level and never propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(profile, hook string, args ...lua.LValue) (lua.LValue, error) {
	v := m.lookup(profile)
	if v == nil {
		m.logger.Info("scripting: no VM for profile",
			zap.String("profile", profile),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	return m.call(v, profile, hook, func(*lua.LState) []lua.LValue { return args }), nil
}

// call invokes hook with the arguments built by mkArgs inside v's VM.
//
// Precondition: v.mu is held.
func (m *Manager) call(v *vm, profile, hook string, mkArgs func(L *lua.LState) []lua.LValue) lua.LValue {
	L := v.L
	fn := L.GetGlobal(hook)
	if fn.Type() != lua.LTFunction {
		return lua.LNil
	}

	cancel := Rearm(L, v.limit)
	defer cancel()
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, mkArgs(L)...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("profile", profile),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret
}

// Close releases every VM. Later calls find no profile and return LNil.
func (m *Manager) Close() {
	m.mu.Lock()
	vms := m.vms
	m.vms = make(map[string]*vm)
	m.mu.Unlock()
	for _, v := range vms {
		v.mu.Lock()
		v.L.Close()
		v.mu.Unlock()
	}
}
