// Package config loads server configuration from an optional YAML file with
// environment overrides for deployment settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Scenarios ScenariosConfig `yaml:"scenarios"`
	Notify    NotifyConfig    `yaml:"notify"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

type ScenariosConfig struct {
	// Path of the saved-scenarios JSON file.
	Path string `yaml:"path"`
}

type NotifyConfig struct {
	FromEmail string `yaml:"from_email"`
}

func DefaultConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080"},
		Scenarios: ScenariosConfig{Path: "scenarios.json"},
	}
}

// Load reads the YAML config at path, returning defaults when the file does
// not exist. Environment variables PORT and FROM_EMAIL override the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if from := os.Getenv("FROM_EMAIL"); from != "" {
		cfg.Notify.FromEmail = from
	}
	return cfg, nil
}
