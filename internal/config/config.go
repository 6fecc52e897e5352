// Package config loads application configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks for a config file when none is given.
const DefaultPath = "qa-checklist.yaml"

// Config represents the full application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Storage  StorageConfig  `yaml:"storage" mapstructure:"storage"`
	Template TemplateConfig `yaml:"template" mapstructure:"template"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// StorageConfig configures where the JSON documents live.
type StorageConfig struct {
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
}

// TemplateConfig configures the default checklist template.
type TemplateConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// DefaultConfig returns the built-in defaults. The address matches the
// original deployment so existing bookmarks keep working.
func DefaultConfig() *Config {
	return &Config{
		Server:   ServerConfig{Addr: "127.0.0.1:10101"},
		Storage:  StorageConfig{DataDir: "data"},
		Template: TemplateConfig{Path: "default_checklist.json"},
	}
}

// Load reads configuration from the given path (or DefaultPath when
// empty), falling back to defaults when the file is absent. Environment
// variables prefixed QA_CHECKLIST_ override file values, e.g.
// QA_CHECKLIST_SERVER_ADDR.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("storage.data_dir", cfg.Storage.DataDir)
	v.SetDefault("template.path", cfg.Template.Path)

	v.SetEnvPrefix("QA_CHECKLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file means run on defaults; an
		// explicitly requested file must exist and parse.
		if explicit {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WriteDefault writes the default configuration to a file as YAML.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
