package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvConfigPath      = "TEXTKIT_CONFIG"
	EnvCipherShift     = "TEXTKIT_CIPHER_SHIFT"
	EnvTopWords        = "TEXTKIT_TOP_WORDS"
	EnvHistogramHeight = "TEXTKIT_HISTOGRAM_HEIGHT"
)

// CipherConfig configures the shift cipher used for save and decrypt.
type CipherConfig struct {
	Shift int `yaml:"shift" toml:"shift"`
}

// AnalysisConfig configures the text analysis report.
type AnalysisConfig struct {
	TopWords int `yaml:"top_words" toml:"top_words"`
}

// HistogramConfig configures the word frequency bar chart.
type HistogramConfig struct {
	TopWords int    `yaml:"top_words" toml:"top_words"`
	Height   int    `yaml:"height" toml:"height"`
	Color    string `yaml:"color" toml:"color"`
}

// FilesConfig configures document output.
type FilesConfig struct {
	DefaultExtension string `yaml:"default_extension" toml:"default_extension"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Cipher    CipherConfig    `yaml:"cipher" toml:"cipher"`
	Analysis  AnalysisConfig  `yaml:"analysis" toml:"analysis"`
	Histogram HistogramConfig `yaml:"histogram" toml:"histogram"`
	Files     FilesConfig     `yaml:"files" toml:"files"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			if err := applyEnvOverrides(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	cfg := Default()
	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyConfigDefaults(cfg)
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault tries $TEXTKIT_CONFIG, then ./textkit.yaml, then ~/.config/textkit/config.yaml.
// If none exists, it writes defaults to ~/.config/textkit/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		cfg, err := Load(p)
		return cfg, p, err
	}
	cwdPath := "textkit.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := Default()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports the first invalid setting.
func (c *AppConfig) Validate() error {
	if c.Analysis.TopWords <= 0 {
		return fmt.Errorf("analysis.top_words must be positive, got %d", c.Analysis.TopWords)
	}
	if c.Histogram.TopWords <= 0 {
		return fmt.Errorf("histogram.top_words must be positive, got %d", c.Histogram.TopWords)
	}
	if c.Histogram.Height <= 0 {
		return fmt.Errorf("histogram.height must be positive, got %d", c.Histogram.Height)
	}
	if ext := c.Files.DefaultExtension; ext != "" && !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("files.default_extension must start with a dot, got %q", ext)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "textkit", "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() *AppConfig {
	cfg := &AppConfig{
		Cipher:    CipherConfig{Shift: 3},
		Analysis:  AnalysisConfig{TopWords: 5},
		Histogram: HistogramConfig{TopWords: 5, Height: 10, Color: "#1f4e79"},
		Files:     FilesConfig{DefaultExtension: ".txt"},
	}
	return cfg
}

// applyConfigDefaults fills settings a file left at their zero value.
// A zero shift is a valid setting and is kept.
func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Analysis.TopWords == 0 {
		cfg.Analysis.TopWords = 5
	}
	if cfg.Histogram.TopWords == 0 {
		cfg.Histogram.TopWords = 5
	}
	if cfg.Histogram.Height == 0 {
		cfg.Histogram.Height = 10
	}
	if cfg.Histogram.Color == "" {
		cfg.Histogram.Color = "#1f4e79"
	}
	if cfg.Files.DefaultExtension == "" {
		cfg.Files.DefaultExtension = ".txt"
	}
}

func applyEnvOverrides(cfg *AppConfig) error {
	overrides := []struct {
		env string
		dst *int
	}{
		{EnvCipherShift, &cfg.Cipher.Shift},
		{EnvTopWords, &cfg.Analysis.TopWords},
		{EnvHistogramHeight, &cfg.Histogram.Height},
	}
	for _, o := range overrides {
		raw := strings.TrimSpace(os.Getenv(o.env))
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", o.env, err)
		}
		*o.dst = v
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
