package mocks

import (
	"os/exec"
	"sync"

	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

// ExecutableFinder is a test double for ports.ExecutableFinder backed by a
// fixed set of available command names.
type ExecutableFinder struct {
	mu        sync.Mutex
	available map[string]string
	lookups   []string
}

// NewExecutableFinder returns a finder where each of names resolves to
// /usr/bin/<name>.
func NewExecutableFinder(names ...string) *ExecutableFinder {
	f := &ExecutableFinder{available: make(map[string]string, len(names))}
	for _, n := range names {
		f.available[n] = "/usr/bin/" + n
	}
	return f
}

// LookPath resolves name or returns an error wrapping exec.ErrNotFound.
func (f *ExecutableFinder) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lookups = append(f.lookups, name)
	if path, ok := f.available[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}

// Lookups returns every name that was probed, in order.
func (f *ExecutableFinder) Lookups() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]string, len(f.lookups))
	copy(out, f.lookups)
	return out
}

var _ ports.ExecutableFinder = (*ExecutableFinder)(nil)
