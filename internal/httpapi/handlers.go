package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"horse.fit/inquisitive/internal/generator"
	"horse.fit/inquisitive/internal/pipeline"
	"horse.fit/inquisitive/internal/schema"
)

const maxRequestBody = 1 << 20

func (s *Server) handleHealth(c echo.Context) error {
	return success(c, map[string]any{
		"status":       "ok",
		"providers":    s.providers,
		"min_words":    s.pipeline.MinWords(),
		"working_lang": s.pipeline.WorkingLanguage(),
	})
}

func (s *Server) handleQuestions(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxRequestBody))
	if err != nil {
		return fail(c, http.StatusBadRequest, "failed to read request body", nil)
	}

	req, err := schema.ValidateQuestionRequest(body)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error(), nil)
	}

	outcome, err := s.pipeline.Run(c.Request().Context(), pipeline.Request{Text: req.Text, TargetLang: req.TargetLang})
	if err != nil {
		return s.pipelineError(c, err)
	}

	return success(c, outcome)
}

// pipelineError maps the pipeline failure taxonomy onto HTTP responses. No
// raw provider error ever leaves this function unclassified.
func (s *Server) pipelineError(c echo.Context, err error) error {
	var rejected *pipeline.RejectedError
	if errors.As(err, &rejected) {
		return fail(c, http.StatusBadRequest, rejected.Error(), map[string]any{
			"min_words":  rejected.MinWords,
			"word_count": rejected.WordCount,
		})
	}

	switch {
	case errors.Is(err, generator.ErrNoProvider):
		return errorResponse(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, generator.ErrNoFallback),
		errors.Is(err, generator.ErrEmptyResult):
		return errorResponse(c, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error().Err(err).Msg("question generation failed")
		return errorResponse(c, http.StatusBadGateway, "question generation failed: "+err.Error())
	}
}
