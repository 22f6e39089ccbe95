package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the scrooge.json configuration file
type Config struct {
	Name      string    `json:"name"`
	Language  string    `json:"language"`
	Schema    string    `json:"schema"`
	Namespace string    `json:"namespace"`
	Output    string    `json:"output"`
	Dev       DevConfig `json:"dev"`
}

// DevConfig contains watch-mode configuration
type DevConfig struct {
	Watch   []string `json:"watch"`
	Exclude []string `json:"exclude"`
}

// LoadConfig loads the scrooge.json configuration from the current directory or a parent directory
func LoadConfig() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	return loadConfigFromDir(dir)
}

// LoadConfigFromPath loads the scrooge.json configuration from a specific path
func LoadConfigFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults
	if config.Language == "" {
		config.Language = "scala"
	}
	if config.Schema == "" {
		config.Schema = "./schema.json"
	}
	if config.Output == "" {
		config.Output = "./generated"
	}
	if len(config.Dev.Watch) == 0 {
		config.Dev.Watch = []string{"*.json", "**/*.json"}
	}
	if len(config.Dev.Exclude) == 0 {
		config.Dev.Exclude = []string{"generated/", ".git/", "scrooge.json"}
	}

	return &config, nil
}

// loadConfigFromDir searches for scrooge.json in the given directory and its parents
func loadConfigFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, "scrooge.json")
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadConfigFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}

	return nil, "", fmt.Errorf("no scrooge.json found in %s or any parent directory", startDir)
}
