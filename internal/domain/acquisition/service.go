package acquisition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/yanqian/ai-summarizer/internal/domain/textstats"
	apperrors "github.com/yanqian/ai-summarizer/pkg/errors"
)

// Config bounds accepted uploads.
type Config struct {
	MaxFileBytes int64
}

// Service turns manual input or uploaded files into source text.
type Service struct {
	cfg       Config
	pdf       PDFReader
	estimator *textstats.Estimator
	recorder  Recorder
	logger    *slog.Logger
}

// MaxFileBytes is the largest upload Extract accepts. Zero means unbounded.
func (s *Service) MaxFileBytes() int64 {
	return s.cfg.MaxFileBytes
}

// NewService constructs a Service.
func NewService(cfg Config, pdf PDFReader, estimator *textstats.Estimator, recorder Recorder, logger *slog.Logger) *Service {
	if estimator == nil {
		estimator = textstats.NewEstimator(nil)
	}
	return &Service{
		cfg:       cfg,
		pdf:       pdf,
		estimator: estimator,
		recorder:  recorder,
		logger:    logger.With("component", "acquisition.service"),
	}
}

// Resolve picks the text for a submission. Non-blank manual text wins over an
// upload, since the text area is what the user last saw and edited.
func (s *Service) Resolve(ctx context.Context, in Input) (Document, error) {
	if strings.TrimSpace(in.Text) != "" || in.Upload == nil {
		return Document{
			Text:   in.Text,
			Source: SourceManual,
			Stats:  s.estimator.Estimate(in.Text),
		}, nil
	}
	return s.Extract(ctx, *in.Upload)
}

// Extract reads the text out of an uploaded .txt or .pdf file.
func (s *Service) Extract(ctx context.Context, up Upload) (Document, error) {
	if len(up.Content) == 0 {
		return Document{}, apperrors.Wrap(apperrors.CodeInvalidInput, "file content cannot be empty", nil)
	}
	if s.cfg.MaxFileBytes > 0 && int64(len(up.Content)) > s.cfg.MaxFileBytes {
		return Document{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("file exceeds maximum allowed size of %d bytes", s.cfg.MaxFileBytes), nil)
	}

	source, ok := detectSource(up)
	if !ok {
		return Document{}, apperrors.Wrap(apperrors.CodeUnsupportedType, "only .txt and .pdf files are supported", nil)
	}

	doc := Document{Source: source, Filename: filepath.Base(up.Filename)}
	switch source {
	case SourcePDF:
		text, pages, err := s.extractPDF(ctx, up.Content)
		s.observe(source, err == nil)
		if err != nil {
			s.logger.Warn("pdf extraction failed", "filename", doc.Filename, "error", err)
			return Document{}, apperrors.Wrap(apperrors.CodeExtractionFailed, "could not read text from PDF", err)
		}
		doc.Text, doc.Pages = text, pages
	default:
		doc.Text = DecodeText(up.Content)
		s.observe(source, true)
	}

	doc.Stats = s.estimator.Estimate(doc.Text)
	s.logger.Info("document extracted", "filename", doc.Filename, "source", doc.Source, "pages", doc.Pages, "characters", doc.Stats.Characters)
	return doc, nil
}

func (s *Service) extractPDF(ctx context.Context, content []byte) (string, int, error) {
	if s.pdf == nil {
		return "", 0, errors.New("pdf reader not configured")
	}
	doc, err := s.pdf.Open(content)
	if err != nil {
		return "", 0, err
	}
	total := doc.NumPage()
	pages := make([]string, 0, total)
	for page := 1; page <= total; page++ {
		if err := ctx.Err(); err != nil {
			return "", total, err
		}
		text, err := doc.PageText(page)
		if err != nil {
			return "", total, fmt.Errorf("page %d: %w", page, err)
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), total, nil
}

func (s *Service) observe(source Source, ok bool) {
	if s.recorder != nil {
		s.recorder.ObserveExtraction(string(source), ok)
	}
}

// DecodeText decodes UTF-8, dropping byte sequences that are not valid.
func DecodeText(content []byte) string {
	return strings.ToValidUTF8(string(content), "")
}

// detectSource trusts the file extension. Only files without one fall back
// to the declared MIME type and then content sniffing.
func detectSource(up Upload) (Source, bool) {
	switch strings.ToLower(filepath.Ext(up.Filename)) {
	case ".txt":
		return SourceText, true
	case ".pdf":
		return SourcePDF, true
	case "":
	default:
		return "", false
	}
	if source, ok := sourceForMime(up.MimeType); ok {
		return source, true
	}
	return sourceForMime(http.DetectContentType(up.Content))
}

func sourceForMime(value string) (Source, bool) {
	mediaType, _, err := mime.ParseMediaType(value)
	if err != nil {
		return "", false
	}
	switch mediaType {
	case "application/pdf":
		return SourcePDF, true
	case "text/plain":
		return SourceText, true
	default:
		return "", false
	}
}
