package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOdyssey loads and validates the game configuration.
// Search order: customPath -> ~/.arcade/configs/odyssey.yaml -> ./configs/odyssey.yaml -> embedded default
func LoadOdyssey(customPath string) (OdysseyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return OdysseyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return OdysseyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("odyssey.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "odyssey.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultOdysseyYAML)
	if err != nil {
		return DefaultOdysseyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the reference defaults and validates the result.
// Sections missing from data keep their default values.
func Parse(data []byte) (OdysseyConfig, error) {
	cfg := DefaultOdysseyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return OdysseyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return OdysseyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
