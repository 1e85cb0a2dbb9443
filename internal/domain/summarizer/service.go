package summarizer

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/ai-summarizer/internal/domain/textstats"
	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// Service exposes summarization capabilities.
type Service interface {
	Summarize(ctx context.Context, req Request) (Response, error)
	Estimate(text string) textstats.Stats
	Options() Options
}

type service struct {
	cfg       Config
	client    Completer
	estimator *textstats.Estimator
	recorder  Recorder
	logger    *slog.Logger
}

// NewService is a wire provider for the summarizer domain.
func NewService(cfg Config, client Completer, estimator *textstats.Estimator, recorder Recorder, logger *slog.Logger) Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if estimator == nil {
		estimator = textstats.NewEstimator(nil)
	}
	return &service{
		cfg:       cfg,
		client:    client,
		estimator: estimator,
		recorder:  recorder,
		logger:    logger.With("component", "summarizer.service"),
	}
}

func (s *service) Summarize(ctx context.Context, req Request) (Response, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeEmptyInput, "Please paste some text to summarize.", nil)
	}
	sel, err := s.resolveSelection(req)
	if err != nil {
		return Response{}, err
	}
	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	logger := s.logger.With("request_id", requestID)

	start := time.Now()
	resp := Response{
		RequestID:  requestID,
		Selection:  sel,
		InputStats: s.estimator.Estimate(text),
	}

	guarded, truncated := Truncate(text, s.cfg.MaxInputChars)
	if truncated {
		resp.Truncated = true
		resp.Warnings = append(resp.Warnings, TruncationWarning(s.cfg.MaxInputChars))
		logger.Warn("input truncated", "max_chars", s.cfg.MaxInputChars, "input_chars", resp.InputStats.Characters)
	}

	prompt := BuildPrompt(BuildInstructions(sel), guarded)
	logger.Debug("prompt assembled", "length", sel.Length, "tone", sel.Tone, "format", sel.Format, "prompt_bytes", len(prompt))

	completion, err := s.client.Complete(ctx, CompletionRequest{
		Model:       s.cfg.Model,
		Temperature: sel.Temperature,
		Messages:    buildMessages(prompt),
	})
	if err != nil {
		s.recorder.ObserveSummaryFailure(string(sel.Length), string(sel.Format))
		return Response{}, apperrors.Wrap(apperrors.CodeLLM, "chat completion failed", err)
	}

	resp.Summary = completion.Content
	if resp.Summary == "" {
		logger.Warn("completion returned no content")
		resp.Summary = NoResponsePlaceholder
	}
	resp.TokenUsage = completion.Usage
	resp.DurationMs = time.Since(start).Milliseconds()

	s.recorder.ObserveSummary(string(sel.Length), string(sel.Format), truncated, completion.Usage)
	logger.Info("summary generated", "duration_ms", resp.DurationMs, "truncated", truncated)
	return resp, nil
}

func (s *service) Estimate(text string) textstats.Stats {
	return s.estimator.Estimate(text)
}

func (s *service) Options() Options {
	return Options{
		Lengths:       Lengths(),
		Tones:         Tones(),
		Formats:       Formats(),
		Defaults:      s.defaultSelection(),
		Temperature:   Range{Min: MinTemperature, Max: MaxTemperature},
		Model:         s.cfg.Model,
		MaxInputChars: s.cfg.MaxInputChars,
	}
}

func (s *service) defaultSelection() Selection {
	return Selection{
		Length:      LengthShort,
		Tone:        ToneNeutral,
		Format:      FormatBullets,
		Temperature: s.cfg.DefaultTemperature,
	}
}

func (s *service) resolveSelection(req Request) (Selection, error) {
	sel := Selection{
		Length:      ParseLength(req.Length),
		Tone:        ParseTone(req.Tone),
		Format:      ParseFormat(req.Format),
		Temperature: s.cfg.DefaultTemperature,
	}
	if req.Temperature != nil {
		t := *req.Temperature
		if math.IsNaN(float64(t)) || t < MinTemperature || t > MaxTemperature {
			return Selection{}, apperrors.Wrap(apperrors.CodeInvalidInput, "temperature must be between 0 and 1", nil)
		}
		sel.Temperature = t
	}
	if !sel.Length.Valid() || !sel.Tone.Valid() || !sel.Format.Valid() {
		s.logger.Warn("unrecognized option, using fallback instruction", "length", sel.Length, "tone", sel.Tone, "format", sel.Format)
	}
	return sel, nil
}

type noopRecorder struct{}

func (noopRecorder) ObserveSummary(string, string, bool, *metrics.TokenUsage) {}
func (noopRecorder) ObserveSummaryFailure(string, string) {}
