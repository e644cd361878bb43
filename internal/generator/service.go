package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Result is a successful generation outcome.
type Result struct {
	// Questions is the trimmed, non-empty numbered list returned by the
	// provider that answered.
	Questions string
	// Provider names the tier that produced the questions.
	Provider string
	// Notices carries user-facing warnings accrued on the way, such as a
	// fallback hop after a primary quota error.
	Notices []string
}

// Service runs the two-tier provider preference: primary first, then the
// secondary with the identical prompt. There are no further tiers and no
// retries; repeated quota errors surface to the caller.
type Service struct {
	primary   Provider
	secondary Provider
	opts      Options
	logger    zerolog.Logger
}

func NewService(primary, secondary Provider, opts Options, logger zerolog.Logger) *Service {
	if opts.MaxTokens <= 0 {
		opts = DefaultOptions()
	}
	return &Service{
		primary:   primary,
		secondary: secondary,
		opts:      opts,
		logger:    logger,
	}
}

// Providers lists the configured tier names in preference order.
func (s *Service) Providers() []string {
	names := make([]string, 0, 2)
	if s.primary != nil {
		names = append(names, s.primary.Name())
	}
	if s.secondary != nil {
		names = append(names, s.secondary.Name())
	}
	return names
}

// Generate produces a numbered list of questions for working-language text.
// A whitespace-only provider response is a failure, never an empty success.
func (s *Service) Generate(ctx context.Context, text string) (*Result, error) {
	if s == nil || (s.primary == nil && s.secondary == nil) {
		return nil, ErrNoProvider
	}

	prompt := BuildPrompt(text)
	var notices []string

	if s.primary != nil {
		questions, err := s.call(ctx, s.primary, prompt)
		if err == nil {
			return &Result{Questions: questions, Provider: s.primary.Name(), Notices: notices}, nil
		}

		notice := fallbackNotice(s.primary.Name(), err)
		s.logger.Warn().
			Err(err).
			Str("provider", s.primary.Name()).
			Str("class", Classify(err).String()).
			Msg("primary generator failed")

		if s.secondary == nil {
			return nil, fmt.Errorf("%w: configure a fallback credential (OPENAI_API_KEY): %w", ErrNoFallback, err)
		}
		notices = append(notices, notice)
	}

	questions, err := s.call(ctx, s.secondary, prompt)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("provider", s.secondary.Name()).
			Msg("fallback generator failed")
		return nil, fmt.Errorf("all generator providers failed: %w", err)
	}

	return &Result{Questions: questions, Provider: s.secondary.Name(), Notices: notices}, nil
}

func (s *Service) call(ctx context.Context, provider Provider, prompt string) (string, error) {
	raw, err := provider.Generate(ctx, prompt, s.opts)
	if err != nil {
		return "", err
	}
	questions := strings.TrimSpace(raw)
	if questions == "" {
		return "", &ProviderError{Provider: provider.Name(), Class: ClassAPI, Err: ErrEmptyResult}
	}
	return questions, nil
}

func fallbackNotice(provider string, err error) string {
	switch Classify(err) {
	case ClassQuota:
		return fmt.Sprintf("%s quota exceeded, falling back", provider)
	case ClassAPI:
		return fmt.Sprintf("%s API error, falling back", provider)
	default:
		return fmt.Sprintf("%s generation failed, falling back", provider)
	}
}
