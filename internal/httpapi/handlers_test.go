package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"horse.fit/inquisitive/internal/generator"
	"horse.fit/inquisitive/internal/pipeline"
	"horse.fit/inquisitive/internal/translation"
)

type stubGenerator struct {
	result *generator.Result
	err    error
}

func (g *stubGenerator) Generate(_ context.Context, _ string) (*generator.Result, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.result, nil
}

type stubTranslator struct{}

func (stubTranslator) Translate(_ context.Context, req translation.TranslateRequest) (*translation.TranslateResponse, error) {
	return &translation.TranslateResponse{
		Text:         "[" + req.TargetLang + "] " + req.Text,
		SourceLang:   req.SourceLang,
		TargetLang:   req.TargetLang,
		ProviderName: "stub",
	}, nil
}

func (stubTranslator) Name() string                 { return "stub" }
func (stubTranslator) SupportedLanguages() []string { return []string{"en", "fr"} }

func newTestServer(t *testing.T, gen pipeline.QuestionGenerator) *Server {
	t.Helper()
	pipe := pipeline.NewService(
		func(string) string { return "en" },
		nil,
		gen,
		"en",
		5,
		zerolog.Nop(),
	)
	return NewServer(pipe, []string{"gemini", "openai"}, zerolog.Nop(), Options{})
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e, err := s.newEcho()
	if err != nil {
		t.Fatalf("build server: %v", err)
	}

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &stubGenerator{result: &generator.Result{Questions: "1. Q?", Provider: "gemini"}})
	rec := doRequest(t, s, http.MethodGet, "/api/v1/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Status    string   `json:"status"`
			Providers []string `json:"providers"`
			MinWords  int      `json:"min_words"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.Status != "ok" || resp.Data.MinWords != 5 || len(resp.Data.Providers) != 2 {
		t.Fatalf("unexpected health payload: %+v", resp.Data)
	}
}

func TestHandleQuestions_Success(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &stubGenerator{result: &generator.Result{
		Questions: "1. What did the cat sit on?",
		Provider:  "gemini",
	}})
	rec := doRequest(t, s, http.MethodPost, "/api/v1/questions",
		`{"text": "The cat sat on the mat and looked outside."}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d (%s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Status string           `json:"status"`
		Data   pipeline.Outcome `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("unexpected jsend status: %q", resp.Status)
	}
	if resp.Data.Questions != "1. What did the cat sit on?" || resp.Data.Provider != "gemini" {
		t.Fatalf("unexpected outcome: %+v", resp.Data)
	}
}

func TestHandleQuestions_TargetLang(t *testing.T) {
	t.Parallel()

	pipe := pipeline.NewService(
		func(string) string { return "en" },
		stubTranslator{},
		&stubGenerator{result: &generator.Result{Questions: "1. What did the cat sit on?", Provider: "gemini"}},
		"en",
		5,
		zerolog.Nop(),
	)
	s := NewServer(pipe, []string{"gemini"}, zerolog.Nop(), Options{})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/questions",
		`{"text": "The cat sat on the mat and looked outside.", "target_lang": "fr"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("a target_lang request must be accepted, got %d (%s)", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data pipeline.Outcome `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Data.BackTranslated || resp.Data.Questions != "[fr] 1. What did the cat sit on?" {
		t.Fatalf("expected questions localized to fr, got %+v", resp.Data)
	}
}

func TestHandleQuestions_RejectsShortInput(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &stubGenerator{result: &generator.Result{Questions: "unused", Provider: "gemini"}})
	rec := doRequest(t, s, http.MethodPost, "/api/v1/questions", `{"text": "way too short"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "at least 5") {
		t.Fatalf("rejection must state the exact minimum, got %s", rec.Body.String())
	}
}

func TestHandleQuestions_InvalidPayload(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &stubGenerator{result: &generator.Result{Questions: "unused", Provider: "gemini"}})

	rec := doRequest(t, s, http.MethodPost, "/api/v1/questions", `{"wrong": true}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status for invalid payload: %d", rec.Code)
	}
}

func TestHandleQuestions_TerminalFailure(t *testing.T) {
	t.Parallel()

	s := newTestServer(t, &stubGenerator{err: generator.ErrNoFallback})
	rec := doRequest(t, s, http.MethodPost, "/api/v1/questions",
		`{"text": "The cat sat on the mat and looked outside."}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	var resp jsendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "error" {
		t.Fatalf("terminal failures must be jsend errors, got %q", resp.Status)
	}
}
