// Injector for wire.go, kept in the layout wire emits. Run `go generate ./cmd/app`
// after changing the provider graph; the generated file replaces this one.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"github.com/yanqian/ai-summarizer/internal/bootstrap"
	"github.com/yanqian/ai-summarizer/internal/domain/acquisition"
	"github.com/yanqian/ai-summarizer/internal/domain/summarizer"
	"github.com/yanqian/ai-summarizer/internal/domain/textstats"
	"github.com/yanqian/ai-summarizer/internal/infra/config"
	"github.com/yanqian/ai-summarizer/internal/infra/pdftext"
	"github.com/yanqian/ai-summarizer/internal/interface/http"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// Injectors from wire.go:

func initializeApp() (*bootstrap.App, error) {
	configConfig, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger := bootstrap.ProvideLogger(configConfig)
	summarizerConfig := bootstrap.ProvideSummaryConfig(configConfig)
	client, err := bootstrap.ProvideGroqClient(configConfig)
	if err != nil {
		return nil, err
	}
	tokenCounter := bootstrap.ProvideTokenCounter(configConfig, logger)
	estimator := textstats.NewEstimator(tokenCounter)
	collector := metrics.NewCollector()
	service := summarizer.NewService(summarizerConfig, client, estimator, collector, logger)
	acquisitionConfig := bootstrap.ProvideAcquisitionConfig(configConfig)
	reader := pdftext.NewReader()
	acquisitionService := acquisition.NewService(acquisitionConfig, reader, estimator, collector, logger)
	handler := http.NewHandler(service, acquisitionService, logger)
	server := http.NewRouter(configConfig, handler, collector)
	app := bootstrap.NewApp(configConfig, logger, server)
	return app, nil
}
