package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load builds the tool configuration. Defaults are applied first, then
// an optional YAML config file, then environment overrides. A .env file
// in the working directory is loaded into the environment when present.
func Load(configFilePath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	path, err := resolveConfigPath(configFilePath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read config file '%s': %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file '%s': %w", path, err)
		}
	}

	if base := os.Getenv(EnvAPIBase); base != "" {
		cfg.APIBaseURL = base
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath determines the configuration file path.
// Priority:
//  1. the --config command-line flag
//  2. the STOAT_WH_CONFIG environment variable
//  3. config.yaml under ~/.config/stoat-wh/
//
// An explicitly requested file must exist; the default location is
// optional.
func resolveConfigPath(configFilePath string) (string, error) {
	if configFilePath != "" {
		if _, err := os.Stat(configFilePath); err != nil {
			return "", fmt.Errorf("config file '%s' not found", configFilePath)
		}
		return configFilePath, nil
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("config file '%s' (from %s) not found", envPath, EnvConfigPath)
		}
		return envPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	path := filepath.Join(home, ".config", "stoat-wh", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}
