package platform

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeDetector(goos string, files map[string]string) *Detector {
	return &Detector{
		goos:   goos,
		goarch: "amd64",
		readFile: func(name string) ([]byte, error) {
			if content, ok := files[name]; ok {
				return []byte(content), nil
			}
			return nil, os.ErrNotExist
		},
		stat: func(name string) (fs.FileInfo, error) {
			if _, ok := files[name]; ok {
				return nil, nil
			}
			return nil, os.ErrNotExist
		},
	}
}

func TestParseOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		goos string
		want OS
	}{
		{"darwin", OSDarwin},
		{"linux", OSLinux},
		{"windows", OSWindows},
		{"freebsd", OSUnknown},
		{"", OSUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseOS(tt.goos))
		})
	}
}

func TestOS_DisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Darwin", OSDarwin.DisplayName())
	assert.Equal(t, "Linux", OSLinux.DisplayName())
	assert.Equal(t, "Windows", OSWindows.DisplayName())
	assert.Equal(t, "Unknown", OSUnknown.DisplayName())
}

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		goos    string
		files   map[string]string
		wantOS  OS
		wantEnv Environment
	}{
		{
			name:    "macOS",
			goos:    "darwin",
			wantOS:  OSDarwin,
			wantEnv: EnvNative,
		},
		{
			name:    "windows",
			goos:    "windows",
			wantOS:  OSWindows,
			wantEnv: EnvNative,
		},
		{
			name:    "native linux",
			goos:    "linux",
			files:   map[string]string{"/proc/version": "Linux version 6.8.0-generic"},
			wantOS:  OSLinux,
			wantEnv: EnvNative,
		},
		{
			name:    "wsl",
			goos:    "linux",
			files:   map[string]string{"/proc/version": "Linux version 5.15.90.1-microsoft-standard-WSL2"},
			wantOS:  OSLinux,
			wantEnv: EnvWSL,
		},
		{
			name:    "docker via dockerenv",
			goos:    "linux",
			files:   map[string]string{"/.dockerenv": ""},
			wantOS:  OSLinux,
			wantEnv: EnvDocker,
		},
		{
			name:    "containerd via cgroup",
			goos:    "linux",
			files:   map[string]string{"/proc/1/cgroup": "0::/system.slice/containerd.service"},
			wantOS:  OSLinux,
			wantEnv: EnvDocker,
		},
		{
			name:    "unknown os skips probes",
			goos:    "plan9",
			files:   map[string]string{"/.dockerenv": ""},
			wantOS:  OSUnknown,
			wantEnv: EnvNative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := fakeDetector(tt.goos, tt.files).Detect()
			assert.Equal(t, tt.wantOS, p.OS())
			assert.Equal(t, tt.wantEnv, p.Environment())
			assert.Equal(t, "amd64", p.Arch())
		})
	}
}

func TestPlatform_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "darwin/arm64", New(OSDarwin, "arm64", EnvNative).String())
	assert.Equal(t, "linux/amd64/wsl", New(OSLinux, "amd64", EnvWSL).String())
	assert.True(t, New(OSLinux, "amd64", EnvWSL).IsWSL())
	assert.False(t, New(OSLinux, "amd64", EnvDocker).IsWSL())
}

func TestDetect_CurrentProcess(t *testing.T) {
	t.Parallel()

	p := Detect()
	assert.NotEmpty(t, p.Arch())
	assert.NotEqual(t, Environment(""), p.Environment())
}
