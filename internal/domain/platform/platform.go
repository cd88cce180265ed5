// Package platform identifies the operating system and execution environment
// hyperpm runs in. The editor CLI probe list is keyed on the OS; the
// environment is reported for diagnostics only.
package platform

import (
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// OS represents the operating system type.
type OS string

const (
	// OSDarwin is macOS.
	OSDarwin OS = "darwin"
	// OSLinux is Linux (native, WSL or container).
	OSLinux OS = "linux"
	// OSWindows is Windows.
	OSWindows OS = "windows"
	// OSUnknown is any other GOOS.
	OSUnknown OS = "unknown"
)

// DisplayName returns the name used in log output, e.g. "Darwin".
func (o OS) DisplayName() string {
	switch o {
	case OSDarwin:
		return "Darwin"
	case OSLinux:
		return "Linux"
	case OSWindows:
		return "Windows"
	default:
		return "Unknown"
	}
}

// ParseOS maps a GOOS value onto the three supported platforms.
func ParseOS(goos string) OS {
	switch goos {
	case "darwin":
		return OSDarwin
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// Environment represents the execution environment.
type Environment string

const (
	// EnvNative is a native OS environment.
	EnvNative Environment = "native"
	// EnvWSL is Windows Subsystem for Linux.
	EnvWSL Environment = "wsl"
	// EnvDocker is running inside a container.
	EnvDocker Environment = "docker"
)

// Platform contains detected platform information.
type Platform struct {
	os          OS
	arch        string
	environment Environment
}

// New creates a Platform with specified values.
func New(os OS, arch string, env Environment) *Platform {
	return &Platform{os: os, arch: arch, environment: env}
}

// OS returns the operating system.
func (p *Platform) OS() OS { return p.os }

// Arch returns the architecture.
func (p *Platform) Arch() string { return p.arch }

// Environment returns the execution environment.
func (p *Platform) Environment() Environment { return p.environment }

// IsWSL returns true if running in WSL.
func (p *Platform) IsWSL() bool { return p.environment == EnvWSL }

// String returns a human-readable description such as "linux/amd64/wsl".
func (p *Platform) String() string {
	s := string(p.os) + "/" + p.arch
	if p.environment != EnvNative {
		s += "/" + string(p.environment)
	}
	return s
}

// Detector inspects the running system. The zero value is not usable; use
// NewDetector.
type Detector struct {
	goos     string
	goarch   string
	readFile func(string) ([]byte, error)
	stat     func(string) (fs.FileInfo, error)
}

// NewDetector creates a Detector for the current process.
func NewDetector() *Detector {
	return &Detector{
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
		readFile: os.ReadFile,
		stat:     os.Stat,
	}
}

// Detect returns the current platform.
func Detect() *Platform {
	return NewDetector().Detect()
}

// Detect identifies the platform. It never fails: unreadable probe files
// simply mean a native environment.
func (d *Detector) Detect() *Platform {
	p := &Platform{
		os:          ParseOS(d.goos),
		arch:        d.goarch,
		environment: EnvNative,
	}

	if p.os != OSLinux {
		return p
	}

	switch {
	case d.isWSL():
		p.environment = EnvWSL
	case d.isDocker():
		p.environment = EnvDocker
	}
	return p
}

// isWSL checks /proc/version for the Microsoft kernel signature.
func (d *Detector) isWSL() bool {
	data, err := d.readFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

func (d *Detector) isDocker() bool {
	if _, err := d.stat("/.dockerenv"); err == nil {
		return true
	}

	data, err := d.readFile("/proc/1/cgroup")
	if err != nil {
		return false
	}
	cgroup := string(data)
	return strings.Contains(cgroup, "docker") || strings.Contains(cgroup, "containerd")
}
