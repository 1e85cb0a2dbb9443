package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/ai-summarizer/internal/infra/config"
	"github.com/yanqian/ai-summarizer/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, collector *metrics.Collector) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxFileBytes

	middleware := []gin.HandlerFunc{gin.Recovery(), requestID(), requestLogger(handler.logger)}
	if cfg.Metrics.Enabled {
		middleware = append(middleware, collector.Middleware())
	}
	middleware = append(middleware, corsMiddleware(cfg.HTTP.AllowedOrigins), errorHandlingMiddleware(handler.logger))
	router.Use(middleware...)

	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(collector.Handler()))
	}
	router.GET("/healthz", handler.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/options", handler.Options)
		api.POST("/estimates", handler.Estimate)
		api.POST("/extractions", handler.Extract)
		api.POST("/summaries", handler.Summarize)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
