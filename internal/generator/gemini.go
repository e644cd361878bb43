package generator

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiProvider generates text through the Gemini API.
type GeminiProvider struct {
	apiKey string
	model  string
}

func NewGemini(apiKey, model string) *GeminiProvider {
	return &GeminiProvider{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
	}
}

func (p *GeminiProvider) Name() string { return "gemini" }

func (p *GeminiProvider) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	if p.apiKey == "" {
		return "", &ProviderError{Provider: p.Name(), Class: ClassUnexpected, Err: errors.New("GEMINI_API_KEY is empty")}
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", p.classify(err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.model)
	model.SetTemperature(opts.Temperature)
	if opts.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(opts.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", p.classify(err)
	}

	text := collectText(resp)
	if strings.TrimSpace(text) == "" {
		return "", &ProviderError{Provider: p.Name(), Class: ClassAPI, Err: errors.New("response contained no text parts")}
	}
	return text, nil
}

func (p *GeminiProvider) classify(err error) error {
	class := ClassUnexpected

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		class = ClassAPI
		if apiErr.Code == http.StatusTooManyRequests {
			class = ClassQuota
		}
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "rate_limit_exceeded") {
		class = ClassQuota
	}

	return &ProviderError{Provider: p.Name(), Class: class, Err: err}
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
		// Only the first candidate is requested; stop after it.
		break
	}
	return builder.String()
}

var _ Provider = (*GeminiProvider)(nil)
