package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider generates text through the OpenAI chat completions API.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAI(apiKey, model string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(strings.TrimSpace(apiKey)),
		model:  strings.TrimSpace(model),
	}
}

func (p *OpenAIProvider) Name() string { return "openai" }

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	})
	if err != nil {
		return "", p.classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: p.Name(), Class: ClassAPI, Err: errors.New("response missing choices")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) classify(err error) error {
	class := ClassUnexpected

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		class = ClassAPI
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			class = ClassQuota
		}
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			class = ClassQuota
		}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		class = ClassAPI
		if reqErr.HTTPStatusCode == http.StatusTooManyRequests {
			class = ClassQuota
		}
	}

	return &ProviderError{Provider: p.Name(), Class: class, Err: fmt.Errorf("chat completion: %w", err)}
}

var _ Provider = (*OpenAIProvider)(nil)
