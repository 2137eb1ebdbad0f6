// Package api exposes the engine operations over a thin gin HTTP surface.
// Every endpoint accepts already-fetched payloads and returns typed,
// synchronous results; fetching and rendering live elsewhere.
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brandsight/signal-engine/internal/competitors"
	"github.com/brandsight/signal-engine/internal/domain"
	"github.com/brandsight/signal-engine/internal/fuzzy"
	"github.com/brandsight/signal-engine/internal/logger"
	"github.com/brandsight/signal-engine/internal/processor"
	"github.com/brandsight/signal-engine/internal/queries"
	"github.com/brandsight/signal-engine/internal/reviews"
	"github.com/brandsight/signal-engine/internal/signals"
	"github.com/brandsight/signal-engine/internal/sourceverify"
	"github.com/brandsight/signal-engine/internal/telemetry"
	"github.com/brandsight/signal-engine/internal/trends"
	"github.com/brandsight/signal-engine/internal/vocabulary"
)

// Default request parameters.
const (
	defaultPainRatingCeiling = 2
	defaultPainLimit         = 10
	defaultMaxBatchSize      = 100
)

// Limits carries the engine tunables the handlers enforce per request.
// Zero values fall back to the built-in defaults.
type Limits struct {
	FuzzyThreshold float64
	MaxBatchSize   int
}

// Handler handles HTTP requests for the signal-engine API
type Handler struct {
	serviceName    string
	serviceVersion string
	limits         Limits

	extractor      *vocabulary.Extractor
	queryGenerator *queries.Generator
	aggregator     *reviews.Aggregator
	trendMatcher   *trends.Matcher
	registry       *competitors.Registry
	classifier     *signals.Classifier
	batchProcessor *processor.BatchProcessor
	verifier       *sourceverify.Verifier
	telemetry      *telemetry.Provider
	logger         logger.Logger
}

// NewHandler creates a new API handler. The telemetry provider may be nil.
func NewHandler(
	serviceName, serviceVersion string,
	limits Limits,
	extractor *vocabulary.Extractor,
	queryGenerator *queries.Generator,
	aggregator *reviews.Aggregator,
	trendMatcher *trends.Matcher,
	registry *competitors.Registry,
	classifier *signals.Classifier,
	batchProcessor *processor.BatchProcessor,
	verifier *sourceverify.Verifier,
	tel *telemetry.Provider,
	log logger.Logger,
) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	if limits.FuzzyThreshold <= 0 {
		limits.FuzzyThreshold = fuzzy.DefaultThreshold
	}
	if limits.MaxBatchSize <= 0 {
		limits.MaxBatchSize = defaultMaxBatchSize
	}
	return &Handler{
		serviceName:    serviceName,
		serviceVersion: serviceVersion,
		limits:         limits,
		extractor:      extractor,
		queryGenerator: queryGenerator,
		aggregator:     aggregator,
		trendMatcher:   trendMatcher,
		registry:       registry,
		classifier:     classifier,
		batchProcessor: batchProcessor,
		verifier:       verifier,
		telemetry:      tel,
		logger:         log,
	}
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.serviceName,
		"version": h.serviceVersion,
	})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Classify handles POST /api/v1/classify
func (h *Handler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.classifier.Classify(req.Signal)

	h.logger.Info("signal classified",
		logger.String("signal_id", req.Signal.ID),
		logger.String("type", string(result.Type)),
	)
	c.JSON(http.StatusOK, ClassifyResponse{Result: result})
}

// ClassifyBatch handles POST /api/v1/classify/batch
func (h *Handler) ClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if len(req.Signals) > h.limits.MaxBatchSize {
		h.badRequest(c, fmt.Errorf("batch of %d signals exceeds the %d-signal limit", len(req.Signals), h.limits.MaxBatchSize))
		return
	}

	results, err := h.batchProcessor.Process(c.Request.Context(), req.Signals)
	if err != nil {
		h.logger.Error("batch classification failed", logger.Error(err))
		if h.telemetry != nil {
			h.telemetry.RecordClassificationFailure(c.Request.Context(), "batch", "processing_error")
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, BatchClassifyResponse{Results: results, Total: len(results)})
}

// Intelligence handles POST /api/v1/intelligence
func (h *Handler) Intelligence(c *gin.Context) {
	var req IntelligenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}
	if len(req.Signals) > h.limits.MaxBatchSize {
		h.badRequest(c, fmt.Errorf("batch of %d signals exceeds the %d-signal limit", len(req.Signals), h.limits.MaxBatchSize))
		return
	}

	intel, results := h.classifier.GenerateMarketIntelligence(req.Signals)
	c.JSON(http.StatusOK, IntelligenceResponse{Intelligence: intel, Results: results})
}

// ExtractVocabulary handles POST /api/v1/vocabulary/extract
func (h *Handler) ExtractVocabulary(c *gin.Context) {
	var req VocabularyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	vocab, err := h.extractor.Extract(&req.Profile)
	if err != nil {
		if errors.Is(err, vocabulary.ErrEmptyProfile) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, VocabularyResponse{Vocabulary: vocab})
}

// ScoreOverlap handles POST /api/v1/vocabulary/overlap
func (h *Handler) ScoreOverlap(c *gin.Context) {
	var req OverlapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	vocab, err := h.extractor.Extract(&req.Profile)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, OverlapResponse{Score: vocabulary.OverlapScore(req.Text, vocab)})
}

// GenerateQueries handles POST /api/v1/queries/generate
func (h *Handler) GenerateQueries(c *gin.Context) {
	var req QueriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	gen := h.queryGenerator
	if req.Budget > 0 {
		gen = queries.NewGenerator(h.logger, queries.WithBudget(req.Budget))
	}
	batch := gen.Generate(&req.Profile)

	if h.telemetry != nil {
		h.telemetry.RecordQueriesGenerated(len(batch))
	}
	c.JSON(http.StatusOK, QueriesResponse{Queries: batch, Total: len(batch)})
}

// AggregateReviews handles POST /api/v1/reviews/aggregate
func (h *Handler) AggregateReviews(c *gin.Context) {
	var req AggregateReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	data := h.aggregator.Aggregate(req.Entity, reviews.NormalizeAll(req.Reviews))

	if h.telemetry != nil {
		h.telemetry.RecordReviewsAggregated(len(req.Reviews))
	}
	c.JSON(http.StatusOK, AggregateReviewsResponse{Data: data})
}

// PainReviews handles POST /api/v1/reviews/pain
func (h *Handler) PainReviews(c *gin.Context) {
	var req PainReviewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	maxRating := req.MaxRating
	if maxRating <= 0 {
		maxRating = defaultPainRatingCeiling
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPainLimit
	}

	ranked := h.aggregator.CompetitorPainReviews(reviews.NormalizeAll(req.Reviews), maxRating)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	c.JSON(http.StatusOK, PainReviewsResponse{Reviews: ranked})
}

// MatchTrends handles POST /api/v1/trends/match
func (h *Handler) MatchTrends(c *gin.Context) {
	var req MatchTrendsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	triggers := trends.ExtractTriggers(&req.Profile)
	results := h.trendMatcher.MatchTrends(req.Trends, triggers)

	if h.telemetry != nil {
		h.telemetry.RecordTrendsMatched(len(req.Trends))
	}
	c.JSON(http.StatusOK, MatchTrendsResponse{Triggers: triggers, Results: results})
}

// VerifySource handles POST /api/v1/sources/verify
func (h *Handler) VerifySource(c *gin.Context) {
	var req VerifySourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	result := h.verifier.Verify(req.Source)

	if h.telemetry != nil {
		h.telemetry.RecordSourceVerification(c.Request.Context(), string(result.Status))
	}
	c.JSON(http.StatusOK, VerifySourceResponse{Result: result})
}

// ExtractMentions handles POST /api/v1/competitors/mentions
func (h *Handler) ExtractMentions(c *gin.Context) {
	var req MentionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	analysis := h.registry.Analyze(req.Text)

	if h.telemetry != nil {
		h.telemetry.RecordMentionsExtracted(len(analysis.Mentions))
	}
	c.JSON(http.StatusOK, MentionsResponse{Analysis: analysis})
}

// ResolveCompetitor handles POST /api/v1/competitors/resolve
func (h *Handler) ResolveCompetitor(c *gin.Context) {
	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	threshold := req.Threshold
	if threshold <= 0 {
		threshold = h.limits.FuzzyThreshold
	}

	resp := ResolveResponse{Input: req.Name}
	canonical, similarity, ok := h.registry.FuzzyResolve(req.Name, threshold)
	if ok {
		resp.CanonicalName = canonical
		resp.Similarity = similarity
		resp.Resolved = true
		switch {
		case similarity < 1:
			resp.MentionType = domain.MentionFuzzy
		case strings.EqualFold(strings.TrimSpace(req.Name), canonical):
			resp.MentionType = domain.MentionDirect
		default:
			resp.MentionType = domain.MentionAlias
		}
	}

	h.logger.Info("competitor name resolved",
		logger.String("input", req.Name),
		logger.Bool("resolved", resp.Resolved),
		logger.Float64("similarity", resp.Similarity),
	)
	c.JSON(http.StatusOK, resp)
}

// RegisterCompetitor handles POST /api/v1/competitors
func (h *Handler) RegisterCompetitor(c *gin.Context) {
	var comp domain.CompetitorAlias
	if err := c.ShouldBindJSON(&comp); err != nil {
		h.badRequest(c, err)
		return
	}
	if comp.CanonicalName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "canonical_name is required"})
		return
	}

	h.registry.Register(comp)
	h.logger.Info("competitor registered", logger.String("canonical_name", comp.CanonicalName))
	c.JSON(http.StatusCreated, comp)
}

// ListCompetitors handles GET /api/v1/competitors
func (h *Handler) ListCompetitors(c *gin.Context) {
	comps := h.registry.Entries()
	c.JSON(http.StatusOK, CompetitorsListResponse{Competitors: comps, Total: len(comps)})
}

// GetStats handles GET /api/v1/stats
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		Service:       h.serviceName,
		Version:       h.serviceVersion,
		Competitors:   h.registry.Size(),
		Concurrency:   h.batchProcessor.Concurrency(),
		VerifierCache: h.verifier.CacheSize(),
	})
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("invalid request", logger.String("path", c.FullPath()), logger.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
