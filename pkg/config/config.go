package config

import (
	"strings"
)

const (
	// DefaultSheetPath is the spreadsheet read when no -planilha flag is given.
	DefaultSheetPath = "planilha_tritoes.xlsx"
	// DefaultBaseURL points at Gemini's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultModel   = "gemini-1.5-flash"
)

// Config holds all runtime configuration for the analyst session.
type Config struct {
	SheetPath string
	Verbose   bool
	// MaxPromptBytes rejects questions whose prompt would exceed this size.
	// Zero disables the check.
	MaxPromptBytes int

	APIKey  string
	BaseURL string
	Model   string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		SheetPath:      DefaultSheetPath,
		Verbose:        false,
		MaxPromptBytes: 0,
		BaseURL:        DefaultBaseURL,
		Model:          DefaultModel,
	}
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.SheetPath = strings.TrimSpace(cfg.SheetPath)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	cfg.Model = strings.TrimSpace(cfg.Model)

	if cfg.SheetPath == "" {
		cfg.SheetPath = DefaultSheetPath
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxPromptBytes < 0 {
		cfg.MaxPromptBytes = 0
	}
	return cfg
}
