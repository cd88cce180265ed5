package command

import (
	"os/exec"

	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

// PathFinder resolves executables using the process PATH (and PATHEXT on
// Windows).
type PathFinder struct{}

// NewPathFinder creates a new PathFinder.
func NewPathFinder() *PathFinder {
	return &PathFinder{}
}

// LookPath returns the path of name as exec.LookPath resolves it.
func (f *PathFinder) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

var _ ports.ExecutableFinder = (*PathFinder)(nil)
