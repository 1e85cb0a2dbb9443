package bootstrap

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/yanqian/ai-summarizer/internal/domain/acquisition"
	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	"github.com/yanqian/ai-summarizer/internal/domain/textstats"
	"github.com/yanqian/ai-summarizer/internal/infra/config"
	"github.com/yanqian/ai-summarizer/internal/infra/llm/groq"
	"github.com/yanqian/ai-summarizer/internal/infra/pdftext"
	"github.com/yanqian/ai-summarizer/internal/infra/tokenizer"
	"github.com/yanqian/ai-summarizer/pkg/logger"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// CoreSet provides the summarization pipeline shared by the server and the CLI.
var CoreSet = wire.NewSet(
	ProvideLogger,
	ProvideTokenCounter,
	ProvideSummaryConfig,
	ProvideAcquisitionConfig,
	ProvideGroqClient,
	metrics.NewCollector,
	pdftext.NewReader,
	textstats.NewEstimator,
	summarizer.NewService,
	acquisition.NewService,
	wire.Bind(new(summarizer.Completer), new(*groq.Client)),
	wire.Bind(new(summarizer.Recorder), new(*metrics.Collector)),
	wire.Bind(new(acquisition.Recorder), new(*metrics.Collector)),
	wire.Bind(new(acquisition.PDFReader), new(*pdftext.Reader)),
)

// ProvideLogger builds the process logger from the log section.
func ProvideLogger(cfg *config.Config) *slog.Logger {
	return logger.New(logger.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
}

// ProvideTokenCounter returns a tiktoken counter when configured. A tokenizer
// that cannot load only costs the exact token count, so it degrades to nil.
func ProvideTokenCounter(cfg *config.Config, log *slog.Logger) textstats.TokenCounter {
	if cfg.Summary.Tokenizer != "tiktoken" {
		return nil
	}
	counter, err := tokenizer.NewTiktoken(cfg.Summary.Encoding)
	if err != nil {
		log.Warn("tokenizer unavailable, using word based estimate", "encoding", cfg.Summary.Encoding, "error", err)
		return nil
	}
	return counter
}

func ProvideSummaryConfig(cfg *config.Config) summarizer.Config {
	return summarizer.Config{
		Model:              cfg.LLM.Model,
		DefaultTemperature: cfg.Summary.DefaultTemperature,
		MaxInputChars:      cfg.Summary.MaxInputChars,
	}
}

func ProvideAcquisitionConfig(cfg *config.Config) acquisition.Config {
	return acquisition.Config{MaxFileBytes: cfg.Upload.MaxFileBytes}
}

func ProvideGroqClient(cfg *config.Config) (*groq.Client, error) {
	return groq.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Timeout)
}

// Core bundles the domain services for front-ends that do not need HTTP.
type Core struct {
	Summarizer  summarizer.Service
	Acquisition *acquisition.Service
}

// NewCore assembles the pipeline by hand, mirroring CoreSet.
func NewCore(cfg *config.Config, log *slog.Logger) (*Core, error) {
	client, err := ProvideGroqClient(cfg)
	if err != nil {
		return nil, err
	}
	collector := metrics.NewCollector()
	estimator := textstats.NewEstimator(ProvideTokenCounter(cfg, log))
	return &Core{
		Summarizer:  summarizer.NewService(ProvideSummaryConfig(cfg), client, estimator, collector, log),
		Acquisition: acquisition.NewService(ProvideAcquisitionConfig(cfg), pdftext.NewReader(), estimator, collector, log),
	}, nil
}
