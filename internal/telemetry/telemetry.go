// Package telemetry provides OpenTelemetry instrumentation for the signal
// engine. It exports Prometheus metrics and provides tracing capabilities.
package telemetry

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "signal-engine"

// Metrics holds all signal-engine Prometheus metrics
type Metrics struct {
	// Classification metrics
	SignalsClassified      *prometheus.CounterVec
	SignalsFailed          *prometheus.CounterVec
	ClassificationDuration *prometheus.HistogramVec
	BatchSize              prometheus.Histogram
	SignalTypeTotal        *prometheus.CounterVec
	ChurnDetected          *prometheus.CounterVec

	// Backpressure metrics
	QueueDepth    prometheus.Gauge
	ActiveWorkers prometheus.Gauge
	WorkDropped   prometheus.Counter
	ThrottleCount prometheus.Counter

	// Engine operation metrics
	QueriesGenerated    prometheus.Counter
	ReviewsAggregated   prometheus.Counter
	TrendsMatched       prometheus.Counter
	MentionsExtracted   prometheus.Counter
	SourceVerifications *prometheus.CounterVec
	VerifyCacheHits     prometheus.Counter
}

// Provider wraps telemetry providers
type Provider struct {
	Tracer  trace.Tracer
	Metrics *Metrics
}

// NewProvider initializes telemetry with Prometheus metrics
func NewProvider() *Provider {
	return &Provider{
		Tracer:  otel.Tracer(serviceName),
		Metrics: initMetrics(),
	}
}

// Handler returns the Prometheus HTTP handler for /metrics endpoint
func (p *Provider) Handler() http.Handler {
	return promhttp.Handler()
}

func initMetrics() *Metrics {
	m := &Metrics{}
	initClassificationMetrics(m)
	initBackpressureMetrics(m)
	initOperationMetrics(m)
	return m
}

func initClassificationMetrics(m *Metrics) {
	m.SignalsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signal_engine_signals_classified_total",
		Help: "Total signals successfully classified",
	}, []string{"platform"})

	m.SignalsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signal_engine_signals_failed_total",
		Help: "Total signals that failed classification",
	}, []string{"platform", "error_code"})

	m.ClassificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "signal_engine_classification_duration_seconds",
		Help:    "Time to classify a single signal",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"platform"})

	m.BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "signal_engine_batch_size",
		Help:    "Number of signals per batch",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 500},
	})

	m.SignalTypeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signal_engine_signal_type_total",
		Help: "Total classified signals by detected signal type",
	}, []string{"signal_type"})

	m.ChurnDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signal_engine_churn_detected_total",
		Help: "Total churn signals detected by severity",
	}, []string{"severity"})
}

func initBackpressureMetrics(m *Metrics) {
	m.QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "signal_engine_queue_depth",
		Help: "Current pending signals in work queue",
	})

	m.ActiveWorkers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "signal_engine_active_workers",
		Help: "Currently active worker goroutines",
	})

	m.WorkDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_engine_work_dropped_total",
		Help: "Work items dropped due to queue full",
	})

	m.ThrottleCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_engine_throttle_count_total",
		Help: "Number of times batch intake was throttled due to backpressure",
	})
}

func initOperationMetrics(m *Metrics) {
	m.QueriesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_engine_queries_generated_total",
		Help: "Total search queries generated",
	})

	m.ReviewsAggregated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_engine_reviews_aggregated_total",
		Help: "Total reviews passed through aggregation",
	})

	m.TrendsMatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_engine_trends_matched_total",
		Help: "Total trends scored against customer triggers",
	})

	m.MentionsExtracted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_engine_competitor_mentions_total",
		Help: "Total competitor mentions extracted",
	})

	m.SourceVerifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "signal_engine_source_verifications_total",
		Help: "Total source verifications by terminal status",
	}, []string{"status"})

	m.VerifyCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "signal_engine_verify_cache_hits_total",
		Help: "Source verifications served from the TTL cache",
	})
}

// RecordClassification records metrics for a single classification
func (p *Provider) RecordClassification(ctx context.Context, platform, signalType string, duration time.Duration) {
	p.Metrics.SignalsClassified.WithLabelValues(platform).Inc()
	p.Metrics.SignalTypeTotal.WithLabelValues(signalType).Inc()
	p.Metrics.ClassificationDuration.WithLabelValues(platform).Observe(duration.Seconds())
}

// RecordClassificationFailure records a failed classification with error code
func (p *Provider) RecordClassificationFailure(ctx context.Context, platform, errorCode string) {
	p.Metrics.SignalsFailed.WithLabelValues(platform, errorCode).Inc()
}

// RecordChurn records a detected churn signal by severity
func (p *Provider) RecordChurn(ctx context.Context, severity string) {
	p.Metrics.ChurnDetected.WithLabelValues(severity).Inc()
}

// RecordSourceVerification records a verification outcome
func (p *Provider) RecordSourceVerification(ctx context.Context, status string) {
	p.Metrics.SourceVerifications.WithLabelValues(status).Inc()
}

// RecordVerifyCacheHit counts a verification served from the TTL cache
func (p *Provider) RecordVerifyCacheHit() {
	p.Metrics.VerifyCacheHits.Inc()
}

// RecordQueriesGenerated adds to the generated-query counter
func (p *Provider) RecordQueriesGenerated(count int) {
	p.Metrics.QueriesGenerated.Add(float64(count))
}

// RecordReviewsAggregated adds to the aggregated-review counter
func (p *Provider) RecordReviewsAggregated(count int) {
	p.Metrics.ReviewsAggregated.Add(float64(count))
}

// RecordTrendsMatched adds to the matched-trend counter
func (p *Provider) RecordTrendsMatched(count int) {
	p.Metrics.TrendsMatched.Add(float64(count))
}

// RecordMentionsExtracted adds to the competitor-mention counter
func (p *Provider) RecordMentionsExtracted(count int) {
	p.Metrics.MentionsExtracted.Add(float64(count))
}

// SetQueueDepth sets the current queue depth
func (p *Provider) SetQueueDepth(depth int) {
	p.Metrics.QueueDepth.Set(float64(depth))
}

// SetActiveWorkers sets the current active worker count
func (p *Provider) SetActiveWorkers(count int) {
	p.Metrics.ActiveWorkers.Set(float64(count))
}

// IncrementWorkDropped increments the dropped work counter
func (p *Provider) IncrementWorkDropped() {
	p.Metrics.WorkDropped.Inc()
}

// IncrementThrottleCount increments the throttle counter
func (p *Provider) IncrementThrottleCount() {
	p.Metrics.ThrottleCount.Inc()
}

// RecordBatchSize records the size of a processed batch
func (p *Provider) RecordBatchSize(size int) {
	p.Metrics.BatchSize.Observe(float64(size))
}

// StartSpan starts a new trace span.
// The caller is responsible for ending the span with span.End().
//
//nolint:spancheck // Caller is responsible for ending the span
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := p.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
	return ctx, span
}
