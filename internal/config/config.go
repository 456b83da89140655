// Package config handles persisted user preferences and environment loading.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"aiss/internal/backend"
)

// Config holds user preferences
type Config struct {
	Provider         string `json:"provider"`          // "openai" or "gemini"; empty means auto-detect
	Model            string `json:"model"`             // optional model override
	BaseURL          string `json:"base_url"`          // optional OpenAI-compatible endpoint
	TimeoutSeconds   int    `json:"timeout_seconds"`   // per-request timeout
	ContextSentences int    `json:"context_sentences"` // background summary length
	NoColor          bool   `json:"no_color"`          // disable styled output
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		ContextSentences: 10,
	}
}

// ConfigDir returns the directory where config is stored
func ConfigDir() (string, error) {
	// Prefer project-local .aiss directory if present or creatable
	if cwd, err := os.Getwd(); err == nil {
		localDir := filepath.Join(cwd, ".aiss")
		if stat, err := os.Stat(localDir); (err == nil && stat.IsDir()) || os.IsNotExist(err) {
			return localDir, nil
		}
	}

	// Fallback to home-level config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aiss"), nil
}

// ConfigFile returns the full path to the config file
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the configuration from disk
func Load() (Config, error) {
	path, err := ConfigFile()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// Save writes the configuration to disk
func Save(cfg Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigFile()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LoadEnv loads a .env file from the working directory if one exists.
// API keys live in the environment, never in the config file.
func LoadEnv() {
	_ = godotenv.Load()
}

// ResolveProvider turns the stored preferences plus environment into a
// usable provider configuration. An explicit provider in the config wins
// over environment auto-detection.
func (c Config) ResolveProvider() (backend.ProviderConfig, error) {
	var pc backend.ProviderConfig

	switch backend.Provider(c.Provider) {
	case backend.ProviderOpenAI:
		pc = backend.ProviderConfig{Provider: backend.ProviderOpenAI, APIKey: os.Getenv("OPENAI_API_KEY")}
	case backend.ProviderGemini:
		pc = backend.ProviderConfig{Provider: backend.ProviderGemini, APIKey: os.Getenv("GEMINI_API_KEY")}
	default:
		detected, err := backend.DetectProvider()
		if err != nil {
			return backend.ProviderConfig{}, err
		}
		pc = detected
	}

	pc.Model = c.Model
	pc.BaseURL = c.BaseURL
	if c.TimeoutSeconds > 0 {
		pc.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
	return pc, nil
}
