// Package testutil provides test helpers for hyperpm tests.
package testutil

import (
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ConfigBuilder renders hyperpm config files for tests. Only the fields that
// were set appear in the output, so the loader's defaults fill the rest.
type ConfigBuilder struct {
	refresh map[string]interface{}
	log     map[string]interface{}
}

// NewConfigBuilder creates an empty ConfigBuilder.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		refresh: make(map[string]interface{}),
		log:     make(map[string]interface{}),
	}
}

// WithExtension sets refresh.extension.
func (b *ConfigBuilder) WithExtension(id string) *ConfigBuilder {
	b.refresh["extension"] = id
	return b
}

// WithListTimeout sets refresh.list_timeout.
func (b *ConfigBuilder) WithListTimeout(d time.Duration) *ConfigBuilder {
	b.refresh["list_timeout"] = d.String()
	return b
}

// WithInstallTimeout sets refresh.install_timeout.
func (b *ConfigBuilder) WithInstallTimeout(d time.Duration) *ConfigBuilder {
	b.refresh["install_timeout"] = d.String()
	return b
}

// WithLogLevel sets log.level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.log["level"] = level
	return b
}

// WithLogFormat sets log.format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.log["format"] = format
	return b
}

// WithColor sets log.color.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.log["color"] = enabled
	return b
}

func (b *ConfigBuilder) document() map[string]interface{} {
	doc := make(map[string]interface{})
	if len(b.refresh) > 0 {
		doc["refresh"] = b.refresh
	}
	if len(b.log) > 0 {
		doc["log"] = b.log
	}
	return doc
}

// ToYAML renders the config as YAML.
func (b *ConfigBuilder) ToYAML() string {
	data, err := yaml.Marshal(b.document())
	if err != nil {
		panic(err)
	}
	return string(data)
}

// ToTOML renders the config as TOML.
func (b *ConfigBuilder) ToTOML() string {
	data, err := toml.Marshal(b.document())
	if err != nil {
		panic(err)
	}
	return string(data)
}
