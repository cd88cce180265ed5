package vscode

import (
	"github.com/felixgeelhaar/hyperpm/internal/domain/platform"
	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

// CandidateCommands returns the CLI names probed for os, in preference order.
// Unsupported systems have no candidates.
func CandidateCommands(os platform.OS) []string {
	switch os {
	case platform.OSLinux, platform.OSDarwin:
		return []string{"code", "code-insiders"}
	case platform.OSWindows:
		return []string{"code", "code.cmd", "code-insiders", "code-insiders.cmd"}
	default:
		return nil
	}
}

// ResolveCLI returns the first candidate command for os that finder can
// locate. The returned value is the command name, not its resolved path, so
// that it is invoked through the search path like a user would.
func ResolveCLI(os platform.OS, finder ports.ExecutableFinder) (string, bool) {
	for _, name := range CandidateCommands(os) {
		if _, err := finder.LookPath(name); err == nil {
			return name, true
		}
	}
	return "", false
}
