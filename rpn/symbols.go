package rpn

import (
	"sort"
	"sync"
)

// SymbolTable maps variable names to values. The last definition wins.
type SymbolTable struct {
	mu      sync.RWMutex
	symbols map[string]float64
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]float64),
	}
}

func (s *SymbolTable) Define(name string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.symbols[name] = value
}

func (s *SymbolTable) Lookup(name string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.symbols[name]
	return value, ok
}

func (s *SymbolTable) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
