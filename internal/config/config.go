// Package config loads the optional runway project configuration.
//
// A project may carry a runway.toml, runway.yaml/.yml, or
// runway.json/.jsonc file next to its build scripts. The format is
// picked by extension: TOML via BurntSushi/toml, YAML via yaml.v3, and
// JSON/JSONC via tidwall/jsonc (comments and trailing commas stripped)
// feeding encoding/json. Unknown keys are ignored in every format.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/runway/internal/wildcard"
)

// Config holds project-level defaults applied by the CLI.
type Config struct {
	// Env is extra environment applied to spawned programs, overlaid on
	// the parent environment.
	Env map[string]string `toml:"env" yaml:"env" json:"env"`

	// Excludes are wildcard patterns appended to every glob the CLI
	// performs, as additional "|" exclusion sections.
	Excludes []string `toml:"excludes" yaml:"excludes" json:"excludes"`

	// Mode is the default match-mode token for the glob command:
	// "a", "f", or "d".
	Mode string `toml:"mode" yaml:"mode" json:"mode"`

	// LogLevel selects the zerolog level ("debug", "info", ...).
	LogLevel string `toml:"log_level" yaml:"log_level" json:"logLevel"`

	// LogFile, when set, receives a copy of the structured log stream.
	LogFile string `toml:"log_file" yaml:"log_file" json:"logFile"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Mode: "f", LogLevel: "info"}
}

// candidates are the file names Locate probes, in priority order.
var candidates = []string{
	"runway.toml",
	"runway.yaml",
	"runway.yml",
	"runway.json",
	"runway.jsonc",
}

// Locate looks for a configuration file directly inside dir. It does
// not walk upward; the configuration belongs to the directory the tool
// is invoked in.
func Locate(dir string) (string, bool) {
	for _, name := range candidates {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p, true
		}
	}
	return "", false
}

// Load reads and validates a configuration file, dispatching on its
// extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}

	if _, err := wildcard.ParseMode(cfg.Mode); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Environ returns the parent environment overlaid with the configured
// extra variables, in the KEY=VALUE form expected by os/exec. With no
// extra variables it returns nil so spawned programs simply inherit.
func (c *Config) Environ() []string {
	if len(c.Env) == 0 {
		return nil
	}
	env := os.Environ()
	for k, v := range c.Env {
		env = append(env, k+"="+v)
	}
	return env
}
