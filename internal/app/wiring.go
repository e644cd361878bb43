package app

import (
	"strings"

	"github.com/rs/zerolog"

	"horse.fit/inquisitive/internal/config"
	"horse.fit/inquisitive/internal/generator"
	"horse.fit/inquisitive/internal/langdetect"
	"horse.fit/inquisitive/internal/pipeline"
	"horse.fit/inquisitive/internal/translation"
)

// buildPipeline assembles the pipeline from configuration. All provider
// clients are constructed once here and shared read-only by every request.
func buildPipeline(cfg *config.Config, logger zerolog.Logger) (*pipeline.Service, *generator.Service, error) {
	var primary, secondary generator.Provider
	if key := cfg.GeminiKey(); key != "" {
		primary = generator.NewGemini(key, cfg.GeminiModel)
	}
	if key := strings.TrimSpace(cfg.OpenAIAPIKey); key != "" {
		secondary = generator.NewOpenAI(key, cfg.OpenAIModel)
	}

	genSvc := generator.NewService(primary, secondary, generator.Options{
		Temperature: cfg.GenTemperature,
		MaxTokens:   cfg.GenMaxTokens,
	}, logger)

	registry := translation.NewRegistry(cfg.TranslationProvider)
	if err := registry.Register(translation.NewGoogleProvider()); err != nil {
		return nil, nil, err
	}
	if err := registry.Register(translation.NewLocalProvider(cfg.TranslationEndpoint, cfg.TranslationModel)); err != nil {
		return nil, nil, err
	}

	translator, err := registry.Provider("")
	if err != nil {
		return nil, nil, err
	}
	logger.Info().
		Str("translation_provider", translator.Name()).
		Strs("generators", genSvc.Providers()).
		Msg("pipeline assembled")

	pipe := pipeline.NewService(
		langdetect.DetectISO6391,
		translator,
		genSvc,
		cfg.WorkingLanguage(),
		cfg.MinWords,
		logger,
	)
	return pipe, genSvc, nil
}
