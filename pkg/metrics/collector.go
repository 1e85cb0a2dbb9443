package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "summarizer"

// Collector owns the Prometheus series exported by the service.
// A nil *Collector is valid and records nothing.
type Collector struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	summaries    *prometheus.CounterVec
	truncations  prometheus.Counter
	tokens       *prometheus.CounterVec
	extractions  *prometheus.CounterVec
}

// NewCollector registers every series on a private registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "endpoint", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"method", "endpoint"}),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summaries_total",
			Help:      "Summaries requested, by length, format and outcome",
		}, []string{"length", "format", "outcome"}),
		truncations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "input_truncations_total",
			Help:      "Inputs cut down to the character cap before prompting",
		}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_tokens_total",
			Help:      "Tokens reported by the inference endpoint, by kind (prompt, completion, total)",
		}, []string{"kind"}),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Document text extractions, by source type and outcome",
		}, []string{"source", "outcome"}),
	}
	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequests,
		c.httpDuration,
		c.summaries,
		c.truncations,
		c.tokens,
		c.extractions,
	)
	return c
}

// Registry exposes the underlying registry, mostly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Middleware records request counts and latencies per route.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if c == nil {
			ctx.Next()
			return
		}
		start := time.Now()
		ctx.Next()

		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		c.httpRequests.WithLabelValues(ctx.Request.Method, endpoint, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.httpDuration.WithLabelValues(ctx.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveSummary records a completed summarization.
func (c *Collector) ObserveSummary(length, format string, truncated bool, usage *TokenUsage) {
	if c == nil {
		return
	}
	c.summaries.WithLabelValues(length, format, "ok").Inc()
	if truncated {
		c.truncations.Inc()
	}
	if usage != nil {
		c.tokens.WithLabelValues("prompt").Add(float64(usage.PromptTokens))
		c.tokens.WithLabelValues("completion").Add(float64(usage.CompletionTokens))
		c.tokens.WithLabelValues("total").Add(float64(usage.TotalTokens))
	}
}

// ObserveSummaryFailure records a summarization the endpoint could not serve.
func (c *Collector) ObserveSummaryFailure(length, format string) {
	if c == nil {
		return
	}
	c.summaries.WithLabelValues(length, format, "error").Inc()
}

// ObserveExtraction records the outcome of reading an uploaded document.
func (c *Collector) ObserveExtraction(source string, ok bool) {
	if c == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	c.extractions.WithLabelValues(source, outcome).Inc()
}
