// Package engine orchestrates the validation pipeline: extract claims,
// classify them, resolve cross-source support, run signal detectors and
// the domain overlay, and combine everything into a composite score. The
// pipeline is stateless and single-pass; every step is pure and total
// over its input.
package engine

import (
	"errors"
	"strings"
	"sync/atomic"
	"unicode/utf8"

	"github.com/ppiankov/lithium/internal/cache"
	"github.com/ppiankov/lithium/internal/classify"
	"github.com/ppiankov/lithium/internal/domain"
	"github.com/ppiankov/lithium/internal/extract"
	"github.com/ppiankov/lithium/internal/model"
	"github.com/ppiankov/lithium/internal/score"
	"github.com/ppiankov/lithium/internal/signal"
	"github.com/ppiankov/lithium/internal/support"
)

// ErrInvalidInput is returned for input the pipeline cannot treat as
// text. Everything else (empty content, zero sources, zero claims) is a
// valid input producing a low score, not an error.
var ErrInvalidInput = errors.New("invalid input")

// Request is one validation call
type Request struct {
	Content string
	Sources []string     // Read-only view, used for overlap matching only
	Domain  model.Domain // Defaults to general
	Mode    model.Mode   // Defaults to full
	HTML    bool         // Strip markup before extraction
}

// Engine runs validation calls. It is safe for concurrent use: the only
// shared state is the memoization cache and the read-only configuration,
// which reloads by atomic swap and is never partially visible.
type Engine struct {
	cfg atomic.Pointer[model.Config]

	extractor  *extract.ClaimExtractor
	classifier *classify.Classifier
	resolver   *support.Resolver
	overlay    *domain.Overlay

	memo *cache.Memoizer // nil when caching is disabled
}

// New creates an engine with the given configuration
func New(cfg *model.Config) *Engine {
	e := &Engine{
		extractor:  extract.NewClaimExtractor(),
		classifier: classify.NewClassifier(),
		resolver:   support.NewResolver(),
		overlay:    domain.NewOverlay(),
	}
	e.cfg.Store(cfg)
	if cfg.Cache.Enabled {
		e.memo = cache.NewMemoizer(cache.NewMemoryCache())
	}
	return e
}

// Config returns the active configuration
func (e *Engine) Config() *model.Config {
	return e.cfg.Load()
}

// Reload atomically swaps the configuration. In-flight validations keep
// the table they started with; cached results are dropped because they
// were scored under the old thresholds.
func (e *Engine) Reload(cfg *model.Config) {
	e.cfg.Store(cfg)
	if e.memo != nil {
		e.memo.Clear()
	}
}

// Validate scores one block of text for hallucination risk. Cache hits
// return a shared prior instance; callers must treat results as
// read-only.
func (e *Engine) Validate(req Request) (*model.ValidationResult, error) {
	if !utf8.ValidString(req.Content) {
		return nil, ErrInvalidInput
	}
	for _, s := range req.Sources {
		if !utf8.ValidString(s) {
			return nil, ErrInvalidInput
		}
	}

	if req.Domain == "" {
		req.Domain = model.DomainGeneral
	}
	if req.Mode == "" {
		req.Mode = model.ModeFull
	}
	if !model.KnownMode(req.Mode) {
		return nil, ErrInvalidInput
	}

	// HTML inputs bypass the cache: the fingerprint covers the raw
	// arguments only and must not alias a plain-text call with the same
	// bytes.
	if e.memo == nil || req.HTML {
		return e.run(req), nil
	}

	key := cache.Fingerprint(req.Content, req.Sources, req.Domain, req.Mode)
	return e.memo.Do(key, func() *model.ValidationResult {
		return e.run(req)
	}), nil
}

// run executes the single-pass pipeline
func (e *Engine) run(req Request) *model.ValidationResult {
	cfg := e.cfg.Load()

	// Unknown domains fall back to the general profile with a warning
	// flag; they are not fatal. The scorer raises the flag itself so the
	// warning survives quick mode.
	profile, known := cfg.Profile(req.Domain)
	if !known {
		req.Domain = model.DomainGeneral
	}

	// 1. Extract claim-candidate spans
	var spans []extract.Span
	if req.HTML {
		if s, err := e.extractor.ExtractHTML(req.Content); err == nil {
			spans = s
		}
	} else {
		spans = e.extractor.Extract(req.Content)
	}

	// 2. Classify type and declared confidence
	claims := e.classifier.ClassifyAll(spans)

	// 3. Resolve cross-source support
	for i := range claims {
		claims[i].SupportCount = e.resolver.SupportCount(claims[i].Text, req.Sources)
	}

	// 4. Signal detectors and domain overlay (skipped in quick mode)
	quick := req.Mode == model.ModeQuick
	var (
		detectorFlags []model.SignalFlag
		overlayFlags  []model.SignalFlag
		metrics       signal.Metrics
	)
	if !quick {
		detectors := signal.NewDetectors(cfg.Scoring.AmbiguityCeiling)
		detectorFlags, metrics = detectors.Run(req.Content, claims, req.Sources, meanWeight(cfg, claims))
		overlayFlags = e.overlay.Apply(profile, strings.ToLower(req.Content), claims)
	}

	// 5. Score
	scorer := score.NewScorer(cfg)
	result := scorer.Score(score.Inputs{
		Claims:         claims,
		Flags:          append(detectorFlags, overlayFlags...),
		Profile:        profile,
		SourceCount:    len(req.Sources),
		AmbiguityRatio: metrics.AmbiguityRatio,
		ScopeDefined:   metrics.ScopeDefined,
		Quick:          quick,
		UnknownDomain:  !known,
		Domain:         req.Domain,
		Mode:           req.Mode,
	})

	// 6. Per-claim rationale is a detailed-mode extra
	if req.Mode != model.ModeDetailed {
		for i := range result.Claims {
			result.Claims[i].Rationale = ""
		}
	}

	return result
}

// meanWeight is the mean declared-confidence weight over the claims
func meanWeight(cfg *model.Config, claims []model.Claim) float64 {
	if len(claims) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range claims {
		sum += cfg.Weight(c.Confidence)
	}
	return sum / float64(len(claims))
}
