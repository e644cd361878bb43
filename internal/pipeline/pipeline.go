package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"horse.fit/inquisitive/internal/generator"
	"horse.fit/inquisitive/internal/language"
	"horse.fit/inquisitive/internal/translation"
	"horse.fit/inquisitive/internal/wordcount"
)

// Notice codes for the soft-warning banners. Each request completes with
// zero or more of these alongside a still-successful result.
const (
	NoticeDetectionFallback     = "detection_fallback"
	NoticeTranslated            = "translated"
	NoticeTranslationSkipped    = "translation_skipped"
	NoticeProviderFallback      = "provider_fallback"
	NoticeBackTranslationFailed = "back_translation_failed"
	NoticeBackTranslated        = "back_translated"
)

// Notice is one user-facing informational or warning banner.
type Notice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Detector returns the ISO 639-1 code of the text's language, or "" when
// detection is inconclusive.
type Detector func(text string) string

// QuestionGenerator produces a numbered question list for working-language text.
type QuestionGenerator interface {
	Generate(ctx context.Context, text string) (*generator.Result, error)
}

// Request is one pipeline invocation. Everything is transient; nothing
// outlives the request/response cycle. TargetLang, when set, overrides the
// detected tag as the localization target.
type Request struct {
	Text       string
	TargetLang string
}

// Outcome is the final result shown to the caller.
type Outcome struct {
	Questions      string   `json:"questions"`
	SourceLang     string   `json:"source_lang"`
	BackTranslated bool     `json:"back_translated"`
	Provider       string   `json:"provider"`
	WordCount      int      `json:"word_count"`
	Notices        []Notice `json:"notices,omitempty"`
}

// RejectedError reports the hard input gate: too few word-tokens. No
// external call is made when the gate rejects.
type RejectedError struct {
	MinWords  int
	WordCount int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("input has %d word(s); at least %d are required", e.WordCount, e.MinWords)
}

// resolvedText pairs a language tag with text in the working language.
// Invariant: when Lang equals the working language the text is the caller's
// original input, byte for byte.
type resolvedText struct {
	Lang string
	Text string
}

// Service orchestrates validate, resolve, generate and localize. It holds
// only read-only collaborators, so concurrent Run calls share no mutable
// state.
type Service struct {
	detect      Detector
	translator  translation.Provider
	generator   QuestionGenerator
	workingLang string
	minWords    int
	logger      zerolog.Logger
}

func NewService(detect Detector, translator translation.Provider, gen QuestionGenerator, workingLang string, minWords int, logger zerolog.Logger) *Service {
	if minWords < 1 {
		minWords = 1
	}
	working := language.NormalizeCode(workingLang)
	if working == "" {
		working = "en"
	}
	return &Service{
		detect:      detect,
		translator:  translator,
		generator:   gen,
		workingLang: working,
		minWords:    minWords,
		logger:      logger,
	}
}

// MinWords returns the configured word-count gate.
func (s *Service) MinWords() int {
	return s.minWords
}

// WorkingLanguage returns the canonical language questions are generated in.
func (s *Service) WorkingLanguage() string {
	return s.workingLang
}

// Run executes the whole pipeline for one request. Detection and both
// translation directions degrade gracefully with notices; only the input
// gate and total generator failure are terminal.
func (s *Service) Run(ctx context.Context, req Request) (*Outcome, error) {
	accepted, count := wordcount.Validate(req.Text, s.minWords)
	if !accepted {
		return nil, &RejectedError{MinWords: s.minWords, WordCount: count}
	}

	resolved, notices := s.resolve(ctx, req.Text)

	target := resolved.Lang
	if override := language.NormalizeCode(req.TargetLang); override != "" {
		target = override
	}

	result, err := s.generator.Generate(ctx, resolved.Text)
	if err != nil {
		return nil, err
	}
	for _, notice := range result.Notices {
		notices = append(notices, Notice{Code: NoticeProviderFallback, Message: notice})
	}

	outcome := &Outcome{
		Questions:      result.Questions,
		SourceLang:     resolved.Lang,
		BackTranslated: false,
		Provider:       result.Provider,
		WordCount:      count,
	}

	s.localize(ctx, outcome, target, &notices)

	outcome.Notices = notices
	return outcome, nil
}

// resolve detects the input language and translates to the working language
// when needed. It never fails: on detection or translation trouble the
// original text is kept and tagged with the working language.
func (s *Service) resolve(ctx context.Context, text string) (resolvedText, []Notice) {
	var notices []Notice

	detected := ""
	if s.detect != nil {
		detected = language.NormalizeCode(s.detect(text))
	}

	if detected == "" {
		notices = append(notices, Notice{
			Code:    NoticeDetectionFallback,
			Message: fmt.Sprintf("language detection was inconclusive; treating the text as %s", s.workingLang),
		})
		return resolvedText{Lang: s.workingLang, Text: text}, notices
	}

	if language.IsWorking(detected, s.workingLang) {
		return resolvedText{Lang: s.workingLang, Text: text}, notices
	}

	if s.translator == nil {
		notices = append(notices, skippedNotice(detected, s.workingLang))
		return resolvedText{Lang: s.workingLang, Text: text}, notices
	}

	resp, err := s.translator.Translate(ctx, translation.TranslateRequest{
		Text:       text,
		SourceLang: detected,
		TargetLang: s.workingLang,
	})
	if err != nil || resp == nil || strings.TrimSpace(resp.Text) == "" {
		s.logger.Warn().
			Err(err).
			Str("detected", detected).
			Msg("forward translation failed, proceeding with original text")
		notices = append(notices, skippedNotice(detected, s.workingLang))
		// Downstream treats this as "no back-translation needed".
		return resolvedText{Lang: s.workingLang, Text: text}, notices
	}

	notices = append(notices, Notice{
		Code:    NoticeTranslated,
		Message: fmt.Sprintf("detected language %s, translated to %s for question generation", detected, s.workingLang),
	})
	return resolvedText{Lang: detected, Text: resp.Text}, notices
}

// localize translates the questions into the target language. Failure or an
// empty back-translation keeps the working-language questions; the user
// always sees the questions in some language.
func (s *Service) localize(ctx context.Context, outcome *Outcome, target string, notices *[]Notice) {
	if language.IsWorking(target, s.workingLang) {
		return
	}

	if s.translator == nil {
		*notices = append(*notices, Notice{
			Code:    NoticeBackTranslationFailed,
			Message: fmt.Sprintf("no translator is configured, showing questions in %s", s.workingLang),
		})
		return
	}

	resp, err := s.translator.Translate(ctx, translation.TranslateRequest{
		Text:       outcome.Questions,
		SourceLang: s.workingLang,
		TargetLang: target,
	})
	// An empty back-translation is a failure too, never blank output.
	if err != nil || resp == nil || strings.TrimSpace(resp.Text) == "" {
		s.logger.Warn().
			Err(err).
			Str("target", target).
			Msg("back translation failed, showing working-language questions")
		*notices = append(*notices, Notice{
			Code:    NoticeBackTranslationFailed,
			Message: fmt.Sprintf("translation to %s failed, showing questions in %s", target, s.workingLang),
		})
		return
	}

	outcome.Questions = resp.Text
	outcome.BackTranslated = true
	*notices = append(*notices, Notice{
		Code:    NoticeBackTranslated,
		Message: fmt.Sprintf("translated questions to %s", target),
	})
}

func skippedNotice(detected, working string) Notice {
	return Notice{
		Code:    NoticeTranslationSkipped,
		Message: fmt.Sprintf("translation from %s failed; proceeding with the original text as %s", detected, working),
	}
}
