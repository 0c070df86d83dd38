package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sigs.k8s.io/yaml"

	"gocalc/internal/eval"
	"gocalc/internal/ui"
)

type Config struct {
	Theme     string `json:"theme"`
	Precision uint32 `json:"precision"`
	LogLevel  string `json:"logLevel"`
	LogDir    string `json:"logDir"`
	Journal   bool   `json:"journal"`
	Tape      bool   `json:"tape"`
}

// Default returns the configuration used when no file or flag overrides it.
// Logs go to ~/.gocalc/logs when the home directory is known.
func Default() Config {
	cfg := Config{
		Theme:     "default",
		Precision: eval.DefaultPrecision,
		LogLevel:  "info",
		Tape:      true,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.LogDir = filepath.Join(home, ".gocalc", "logs")
	}
	return cfg
}

// Load reads a YAML file on top of Default. Fields absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, ok := ui.Themes[c.Theme]; !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(ui.ThemeNames(), ", "))
	}
	if c.Precision == 0 || c.Precision > eval.MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d", eval.MaxPrecision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
