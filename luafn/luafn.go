// Package luafn exposes global Lua functions as calculator user functions.
package luafn

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Shopify/go-lua"
	"rpncalc/rpn"
)

// Runtime owns a single Lua state. Calls into it are serialized.
type Runtime struct {
	mu       sync.Mutex
	luaState *lua.State
}

func newRuntime() *Runtime {
	state := lua.NewState()
	lua.OpenLibraries(state)
	return &Runtime{luaState: state}
}

// LoadFile runs the script at path and returns the resulting runtime.
func LoadFile(path string) (*Runtime, error) {
	r := newRuntime()
	if err := lua.DoFile(r.luaState, path); err != nil {
		return nil, fmt.Errorf("error loading lua script %v: %w", path, err)
	}
	return r, nil
}

// LoadString runs source and returns the resulting runtime.
func LoadString(source string) (*Runtime, error) {
	r := newRuntime()
	if err := lua.DoString(r.luaState, source); err != nil {
		return nil, fmt.Errorf("error loading lua source: %w", err)
	}
	return r, nil
}

func (r *Runtime) isFunction(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.luaState.Global(name)
	ok := r.luaState.IsFunction(-1)
	r.luaState.Pop(1)
	return ok
}

// Call invokes the global function name with args pushed in order and
// expects a single numeric result.
func (r *Runtime) Call(name string, args []float64) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// leave the stack as we found it
	defer r.luaState.SetTop(0)

	// function plus every argument
	if !r.luaState.CheckStack(len(args) + 1) {
		return 0, errors.New(fmt.Sprintf("too many arguments for lua function %v: %v", name, len(args)))
	}
	r.luaState.Global(name)
	for _, arg := range args {
		r.luaState.PushNumber(arg)
	}
	if err := r.luaState.ProtectedCall(len(args), 1, 0); err != nil {
		return 0, err
	}
	value, ok := r.luaState.ToNumber(r.luaState.Top())
	if !ok {
		return 0, errors.New(fmt.Sprintf("lua function %v did not return a number", name))
	}
	return value, nil
}

// Function adapts the global Lua function name to rpn.Function.
func (r *Runtime) Function(name string) rpn.Function {
	return func(args []float64) (float64, error) {
		return r.Call(name, args)
	}
}

// Register defines every name in functions. All names must refer to global
// Lua functions; nothing is registered otherwise.
func (r *Runtime) Register(functions *rpn.FunctionTable, names ...string) error {
	for _, name := range names {
		if !r.isFunction(name) {
			return errors.New(fmt.Sprintf("lua global %v is not a function", name))
		}
	}
	for _, name := range names {
		functions.Define(name, r.Function(name))
	}
	return nil
}
