package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DefaultSpecies string `toml:"default_species"`
	CardsDir       string `toml:"cards_dir"`
	AssetsDir      string `toml:"assets_dir"`
	PresetsFile    string `toml:"presets_file"`
	FontFile       string `toml:"font_file"`
	TokenFile      string `toml:"token_file"`
	SheetDir       string `toml:"sheet_dir"`
	BotCommand     string `toml:"bot_command"`
}

// Default returns the configuration used when no config file exists.
// Relative paths resolve against the working directory.
func Default() *Config {
	return &Config{
		DefaultSpecies: "cyber",
		CardsDir:       "cards",
		AssetsDir:      "base_images",
		PresetsFile:    "presets.toml",
		FontFile:       "junegull.ttf",
		TokenFile:      ".env",
		SheetDir:       os.TempDir(),
		BotCommand:     "/draw",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetCacheDir returns the cardsmith cache directory
func GetCacheDir() string {
	return filepath.Join(GetXDGCacheHome(), "cardsmith")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardsmith", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	_, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	config.fillDefaults()

	return config, nil
}

// fillDefaults restores settings a hand-edited file left empty
func (c *Config) fillDefaults() {
	d := Default()
	if c.DefaultSpecies == "" {
		c.DefaultSpecies = d.DefaultSpecies
	}
	if c.CardsDir == "" {
		c.CardsDir = d.CardsDir
	}
	if c.AssetsDir == "" {
		c.AssetsDir = d.AssetsDir
	}
	if c.PresetsFile == "" {
		c.PresetsFile = d.PresetsFile
	}
	if c.TokenFile == "" {
		c.TokenFile = d.TokenFile
	}
	if c.SheetDir == "" {
		c.SheetDir = d.SheetDir
	}
	if c.BotCommand == "" {
		c.BotCommand = d.BotCommand
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := saveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetDefaultSpecies returns the default species from config
func GetDefaultSpecies() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultSpecies, nil
}

// SetDefaultSpecies sets the default species in the config
func SetDefaultSpecies(species string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultSpecies = species
	return saveConfig(config)
}
