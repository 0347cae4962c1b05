package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Tool  ToolConfig  `yaml:"tool"`
	Audio AudioConfig `yaml:"audio"`
	Paths PathsConfig `yaml:"paths"`
}

// ToolConfig contains settings for the external ffmpeg tool
type ToolConfig struct {
	// FFmpegPath overrides tool resolution when set. Consulted after the
	// FFMPEG_PATH environment variable.
	FFmpegPath string `yaml:"ffmpeg_path"`
}

// AudioConfig contains audio extraction settings
type AudioConfig struct {
	Codec string `yaml:"codec"`
}

// PathsConfig contains directory paths for extracted audio
type PathsConfig struct {
	OutputDirectory string `yaml:"output_directory"`
}

// Load reads and parses the configuration from the specified YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to the specified YAML file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
