package rpn

import (
	"sort"
	"sync"
)

// Function receives the drained stack, bottom value first.
type Function func(args []float64) (float64, error)

// FunctionTable holds user functions. Only embedding code defines them; the
// interactive session has no syntax for it.
type FunctionTable struct {
	mu        sync.RWMutex
	functions map[string]Function
}

func NewFunctionTable() *FunctionTable {
	return &FunctionTable{
		functions: make(map[string]Function),
	}
}

func (f *FunctionTable) Define(name string, fn Function) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.functions[name] = fn
}

func (f *FunctionTable) Lookup(name string) (Function, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn, ok := f.functions[name]
	return fn, ok
}

func (f *FunctionTable) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.functions))
	for name := range f.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
