package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"record-form/internal/logger"
	"record-form/internal/store"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read when present and no other config path is given.
const DefaultFile = "recordform.yaml"

const (
	EnvConfig   = "RECORDFORM_CONFIG"
	EnvDataFile = "RECORDFORM_DATA_FILE"
	EnvJSONLogs = "RECORDFORM_JSON_LOGS"
	EnvLogLevel = "LOG_LEVEL"
	EnvDebug    = "DEBUG"
)

type Config struct {
	DataFile string       `yaml:"data_file"`
	LogLevel string       `yaml:"log_level"`
	JSONLogs bool         `yaml:"json_logs"`
	Window   WindowConfig `yaml:"window"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func Default() Config {
	return Config{
		DataFile: store.DefaultPath,
		LogLevel: "info",
		Window: WindowConfig{
			Width:  400,
			Height: 300,
		},
	}
}

// Load builds a Config from defaults, an optional YAML file and the
// environment. path wins over RECORDFORM_CONFIG; when neither is set the
// default file is used only if it exists. The result is not validated so
// callers can apply their own overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultFile
		explicit = false
	}

	if err := cfg.readFile(path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvDataFile)); v != "" {
		c.DataFile = v
	}

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	} else if os.Getenv(EnvDebug) == "1" {
		c.LogLevel = "debug"
	}

	if v := os.Getenv(EnvJSONLogs); v != "" {
		c.JSONLogs = v == "true" || v == "1"
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data file must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoggerOptions returns the logging settings carried by c.
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.LogLevel, JSON: c.JSONLogs}
}
