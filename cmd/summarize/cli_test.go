package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-summarizer/internal/domain/acquisition"
	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	"github.com/yanqian/ai-summarizer/internal/domain/textstats"
	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

func init() {
	color.NoColor = true
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-length", "Detailed", "-tone", "Casual", "-temperature", "0", "hello", "world"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "Detailed", opts.length)
	require.Equal(t, "Casual", opts.tone)
	require.Equal(t, string(summarizer.FormatBullets), opts.format)
	require.NotNil(t, opts.temperature)
	require.Zero(t, *opts.temperature)
	require.Equal(t, "hello world", opts.text)

	opts, err = parseFlags(nil, io.Discard)
	require.NoError(t, err)
	require.Nil(t, opts.temperature)
}

func TestExecutePrintsSummaryWarningsAndUsage(t *testing.T) {
	svc := &stubSummarizer{resp: summarizer.Response{
		Summary:    "- Fox jumps over dog.",
		Warnings:   []string{"Input truncated to 8000 characters to fit model context."},
		TokenUsage: &metrics.TokenUsage{PromptTokens: 80, CompletionTokens: 12, TotalTokens: 92},
	}}
	var out bytes.Buffer

	opts := options{text: "The quick brown fox jumps over the lazy dog.", length: "Short"}
	require.NoError(t, execute(context.Background(), opts, svc, newAcquisition(), nil, &out))

	require.Equal(t, "The quick brown fox jumps over the lazy dog.", svc.got.Text)
	require.Equal(t, "Short", svc.got.Length)
	printed := out.String()
	require.Contains(t, printed, "Words: 9 · Estimated tokens: ~12")
	require.Contains(t, printed, "Input truncated to 8000 characters")
	require.Contains(t, printed, "- Fox jumps over dog.")
	require.Contains(t, printed, "Tokens → prompt: 80, completion: 12, total: 92")
}

func TestExecuteReadsFileAndWritesOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(src, []byte("meeting notes"), 0o600))
	dst := filepath.Join(dir, "summary.txt")

	svc := &stubSummarizer{resp: summarizer.Response{Summary: "TL;DR: a meeting happened."}}
	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), options{file: src, out: dst}, svc, newAcquisition(), nil, &out))

	require.Equal(t, "meeting notes", svc.got.Text)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "TL;DR: a meeting happened.", string(data))
	require.NotContains(t, out.String(), "Tokens →")
}

func TestExecuteReadsStdin(t *testing.T) {
	svc := &stubSummarizer{resp: summarizer.Response{Summary: "ok"}}
	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), options{}, svc, newAcquisition(), strings.NewReader("piped text"), &out))
	require.Equal(t, "piped text", svc.got.Text)
}

func TestExecuteSurfacesErrors(t *testing.T) {
	svc := &stubSummarizer{err: apperrors.Wrap(apperrors.CodeEmptyInput, "Please paste some text to summarize.", nil)}
	err := execute(context.Background(), options{}, svc, newAcquisition(), strings.NewReader(""), io.Discard)
	require.True(t, apperrors.IsCode(err, apperrors.CodeEmptyInput))

	err = execute(context.Background(), options{file: filepath.Join(t.TempDir(), "missing.pdf")}, svc, newAcquisition(), nil, io.Discard)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func newAcquisition() *acquisition.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return acquisition.NewService(acquisition.Config{MaxFileBytes: 1 << 20}, nil, textstats.NewEstimator(nil), nil, logger)
}

type stubSummarizer struct {
	resp summarizer.Response
	err  error
	got  summarizer.Request
}

func (s *stubSummarizer) Summarize(ctx context.Context, req summarizer.Request) (summarizer.Response, error) {
	s.got = req
	return s.resp, s.err
}

func (s *stubSummarizer) Estimate(text string) textstats.Stats {
	return textstats.NewEstimator(nil).Estimate(text)
}

func (s *stubSummarizer) Options() summarizer.Options {
	return summarizer.Options{}
}
