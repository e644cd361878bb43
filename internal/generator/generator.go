package generator

import "context"

// Provider is one generative-text backend. Generate sends a prompt and
// returns the raw model output.
type Provider interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
	Name() string
}

// Options carries the generation parameters shared by every provider tier.
type Options struct {
	Temperature float32
	MaxTokens   int
}

// DefaultOptions matches the parameters the service was tuned with.
func DefaultOptions() Options {
	return Options{
		Temperature: 0.7,
		MaxTokens:   512,
	}
}
