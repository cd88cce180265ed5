package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when no
// path is given.
const DefaultPath = "hyperpm.yaml"

// Loader loads configuration from the filesystem.
type Loader struct {
	readFile func(string) ([]byte, error)
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{readFile: os.ReadFile}
}

// Load reads the configuration at path over the defaults and validates it.
//
// An empty path means DefaultPath, and a missing default file yields the
// defaults. A missing file that was named explicitly is an error.
func (l *Loader) Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()

	data, err := l.readFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return cfg, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, NewConfigNotFoundError(path)
	case err != nil:
		return nil, NewConfigReadError(path, err)
	}

	if err := Parse(path, data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		var userErr *UserError
		if errors.As(err, &userErr) && userErr.Context != "" {
			userErr.Context = path + ": " + userErr.Context
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data into cfg, choosing TOML for .toml files and YAML
// otherwise. Unknown keys are rejected. Fields absent from data keep their
// current values.
func Parse(path string, data []byte, cfg *Config) error {
	var err error
	if isTOML(path) {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	}
	if err != nil {
		return NewConfigParseError(path, err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
