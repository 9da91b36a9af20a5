// Package config loads and saves bignumctl's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable bignumctl and its library packages read at
// startup.
type Config struct {
	// Arithmetic settings
	Arithmetic struct {
		KaratsubaCutoff  int    `toml:"karatsuba_cutoff"`
		DiagnosticStream string `toml:"diagnostic_stream"` // "stderr", "stdout", or a file path
	} `toml:"arithmetic"`

	// REPL settings
	REPL struct {
		HistorySize int    `toml:"history_size"`
		Prompt      string `toml:"prompt"`
		ColorOutput bool   `toml:"color_output"`
	} `toml:"repl"`

	// Server settings
	Server struct {
		Port              int `toml:"port"`
		MaxConcurrentJobs int `toml:"max_concurrent_jobs"`
	} `toml:"server"`

	// Trace settings
	Trace struct {
		OutputFile    string `toml:"output_file"`
		IncludeTiming bool   `toml:"include_timing"`
	} `toml:"trace"`
}

// DefaultConfig returns a Config populated with bignumctl's defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Arithmetic.KaratsubaCutoff = 32
	cfg.Arithmetic.DiagnosticStream = "stderr"

	cfg.REPL.HistorySize = 1000
	cfg.REPL.Prompt = "bignum> "
	cfg.REPL.ColorOutput = true

	cfg.Server.Port = 8080
	cfg.Server.MaxConcurrentJobs = 4

	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.IncludeTiming = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "bignumctl")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "bignumctl")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, falling back to
// defaults if the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// DiagnosticWriter resolves the configured diagnostic_stream setting to
// an io.Writer-capable *os.File, matching bignum.SetDiagnosticStream's
// expected type.
func (c *Config) DiagnosticWriter() (*os.File, error) {
	switch c.Arithmetic.DiagnosticStream {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return os.OpenFile(c.Arithmetic.DiagnosticStream, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	}
}
