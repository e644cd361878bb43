package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"horse.fit/inquisitive/internal/language"
)

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"local"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" default:""`
	GoogleAPIKey string `envconfig:"GOOGLE_API_KEY" default:""`
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" default:""`

	GeminiModel string `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	OpenAIModel string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`

	MinWords       int     `envconfig:"MIN_WORDS" default:"5"`
	WorkingLang    string  `envconfig:"WORKING_LANG" default:"en"`
	GenTemperature float32 `envconfig:"GEN_TEMPERATURE" default:"0.7"`
	GenMaxTokens   int     `envconfig:"GEN_MAX_TOKENS" default:"512"`

	TranslationProvider string `envconfig:"TRANSLATION_PROVIDER" default:"google"`
	TranslationEndpoint string `envconfig:"TRANSLATION_ENDPOINT" default:""`
	TranslationModel    string `envconfig:"TRANSLATION_MODEL" default:""`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.GeminiKey() == "" && strings.TrimSpace(c.OpenAIAPIKey) == "" {
		return fmt.Errorf("no generator credentials found: set GEMINI_API_KEY (or GOOGLE_API_KEY) or OPENAI_API_KEY")
	}
	if c.MinWords < 1 {
		return fmt.Errorf("MIN_WORDS must be >= 1")
	}
	if c.GenTemperature < 0 || c.GenTemperature > 2 {
		return fmt.Errorf("GEN_TEMPERATURE must be between 0 and 2")
	}
	if c.GenMaxTokens < 1 {
		return fmt.Errorf("GEN_MAX_TOKENS must be >= 1")
	}
	if language.NormalizeCode(c.WorkingLang) == "" {
		return fmt.Errorf("WORKING_LANG %q is not a valid language code", c.WorkingLang)
	}
	return nil
}

// GeminiKey resolves the primary-provider credential. GEMINI_API_KEY wins;
// GOOGLE_API_KEY is accepted as the legacy alias.
func (c *Config) GeminiKey() string {
	if key := strings.TrimSpace(c.GeminiAPIKey); key != "" {
		return key
	}
	return strings.TrimSpace(c.GoogleAPIKey)
}

// WorkingLanguage returns the normalized working-language code.
func (c *Config) WorkingLanguage() string {
	return language.NormalizeCode(c.WorkingLang)
}
