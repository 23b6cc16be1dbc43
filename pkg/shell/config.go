package shell

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is wsh's configuration, loaded from a YAML file.
type Config struct {
	// Prompt is the prompt template; {cwd} is replaced with the working
	// directory, home-abbreviated.
	Prompt string `yaml:"prompt"`
	// HistorySize bounds the in-memory history; 0 means unbounded.
	HistorySize int `yaml:"history-size"`
	// EnableColors toggles colorized prompt and error output.
	EnableColors bool `yaml:"enable-colors"`
	// Aliases maps alias names to their replacement command lines.
	Aliases map[string]string `yaml:"aliases"`
	// HistoryFile overrides the path of the persistent history database.
	// Empty means ~/.wsh.db; "none" disables persistence.
	HistoryFile string `yaml:"history-file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Prompt:       "➜ {cwd} $ ",
		HistorySize:  1000,
		EnableColors: true,
		Aliases:      map[string]string{},
	}
}

// LoadConfig reads the configuration from path, or from ~/.wsh.yaml when
// path is empty. A missing file yields the defaults; a malformed one is an
// error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".wsh.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Aliases == nil {
		cfg.Aliases = map[string]string{}
	}
	return cfg, nil
}

// historyDBPath resolves the path of the persistent history database, or ""
// when persistence is disabled or no home directory is available.
func (cfg *Config) historyDBPath() string {
	switch cfg.HistoryFile {
	case "none":
		return ""
	case "":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".wsh.db")
	default:
		return cfg.HistoryFile
	}
}
