package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all bot configuration
type Config struct {
	Nick       string `yaml:"nick"`
	Alternate  string `yaml:"alternate"`
	Server     string `yaml:"server"`
	Port       int    `yaml:"port"`
	ServerPass string `yaml:"server_pass"`
	Username   string `yaml:"username"`
	IRCName    string `yaml:"irc_name"`
	Channel    string `yaml:"channel"`
	Secret     string `yaml:"secret"`
	DataDir    string `yaml:"data_dir"`
}

// Load reads and parses a YAML configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Channel == "" {
		return nil, fmt.Errorf("channel must be set")
	}

	// Set defaults
	if cfg.Port == 0 {
		cfg.Port = 6667
	}
	if cfg.Alternate == "" && cfg.Nick != "" {
		cfg.Alternate = cfg.Nick + "_"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "./data"
	}

	return &cfg, nil
}
