package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	DefaultDeck            = "rider-waite-smith"
	DefaultReversedClass   = "reversed"
	DefaultCardSelector    = ".card img"
	DefaultDiagnosticLabel = "Found reversed card:"
	DefaultAddr            = "127.0.0.1:5000"
	DefaultSpreadSize      = 3
	DefaultTextTop         = 800
	DefaultTextBottom      = 900
)

// Config represents the application configuration
type Config struct {
	DefaultDeck string        `toml:"default_deck"`
	Render      RenderConfig  `toml:"render"`
	Server      ServerConfig  `toml:"server"`
	Reverse     ReverseConfig `toml:"reverse"`
}

// RenderConfig controls how card elements are tagged and found again
type RenderConfig struct {
	ReversedClass   string `toml:"reversed_class"`
	CardSelector    string `toml:"card_selector"`
	DiagnosticLabel string `toml:"diagnostic_label"`
}

type ServerConfig struct {
	Addr       string `toml:"addr"`
	SpreadSize int    `toml:"spread_size"`
}

// ReverseConfig holds the caption band kept upright when a card image is rotated
type ReverseConfig struct {
	TextTop    int `toml:"text_top"`
	TextBottom int `toml:"text_bottom"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	return &Config{
		DefaultDeck: DefaultDeck,
		Render: RenderConfig{
			ReversedClass:   DefaultReversedClass,
			CardSelector:    DefaultCardSelector,
			DiagnosticLabel: DefaultDiagnosticLabel,
		},
		Server: ServerConfig{
			Addr:       DefaultAddr,
			SpreadSize: DefaultSpreadSize,
		},
		Reverse: ReverseConfig{
			TextTop:    DefaultTextTop,
			TextBottom: DefaultTextBottom,
		},
	}
}

// applyDefaults fills zero values, so older config files keep working
func (c *Config) applyDefaults() {
	d := Default()
	if c.DefaultDeck == "" {
		c.DefaultDeck = d.DefaultDeck
	}
	if c.Render.ReversedClass == "" {
		c.Render.ReversedClass = d.Render.ReversedClass
	}
	if c.Render.CardSelector == "" {
		c.Render.CardSelector = d.Render.CardSelector
	}
	if c.Render.DiagnosticLabel == "" {
		c.Render.DiagnosticLabel = d.Render.DiagnosticLabel
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.SpreadSize <= 0 {
		c.Server.SpreadSize = d.Server.SpreadSize
	}
	if c.Reverse.TextTop == 0 && c.Reverse.TextBottom == 0 {
		c.Reverse = d.Reverse
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// GetCacheDir returns XDG_CACHE_HOME/arcanaview or the default path
func GetCacheDir() string {
	return filepath.Join(xdgDir("XDG_CACHE_HOME", ".cache"), "arcanaview")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{homeDir}, fallback...)...)
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "tarot", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "arcanaview", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Save writes the config to the config file
func Save(cfg *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDeckPath returns the path to a deck, either in the deck library or a relative path
func GetDeckPath(deckName string) (string, error) {
	deckPath := filepath.Join(GetDeckLibraryPath(), deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// ResolveDeckPath returns the path of the named deck, or of the default deck when name is empty
func ResolveDeckPath(name string) (string, error) {
	if name != "" {
		return GetDeckPath(name)
	}

	cfg, err := LoadConfig()
	if err != nil {
		return "", fmt.Errorf("error getting default deck: %w", err)
	}

	deckPath, err := GetDeckPath(cfg.DefaultDeck)
	if err != nil {
		return "", fmt.Errorf("error loading default deck: %w", err)
	}
	return deckPath, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	cfg.DefaultDeck = deckName
	return Save(cfg)
}
