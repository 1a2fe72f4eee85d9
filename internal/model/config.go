package model

// DomainProfile bundles the thresholds and structural checks applied to
// one content domain. Profiles are loaded once at startup and are
// read-only for the process lifetime; reload swaps the whole Config.
type DomainProfile struct {
	SingletonThreshold float64  `yaml:"singleton_threshold" json:"singleton_threshold"` // Tolerated singleton rate, [0,1]
	MinSources         int      `yaml:"min_sources" json:"min_sources"`                 // Sources needed for cross-validation
	StructureChecks    []string `yaml:"structure_checks" json:"structure_checks"`       // Required-structure check names
	ConfidenceFloor    float64  `yaml:"confidence_floor" json:"confidence_floor"`       // Floor for recommendation claims, [0,1]
}

// Structural check names recognized by the domain overlay
const (
	CheckExecutiveSummary    = "executive_summary"
	CheckHypothesisStatement = "hypothesis_statement"
	CheckPerformanceCitation = "performance_citation"
	CheckCitations           = "citations"
)

// ScoringConfig holds the global scoring thresholds
type ScoringConfig struct {
	PassingScore     float64 `yaml:"passing_score" json:"passing_score"`         // Overall score needed to pass (0-100)
	FlagPenalty      float64 `yaml:"flag_penalty" json:"flag_penalty"`           // QA deduction per raised flag
	ValidationTarget float64 `yaml:"validation_target" json:"validation_target"` // Supported:unsupported ratio target (2:1 rule)
	AmbiguityCeiling float64 `yaml:"ambiguity_ceiling" json:"ambiguity_ceiling"` // Vague-qualifier density above which HIGH_AMBIGUITY fires

	ConfidenceWeights map[ConfidenceLevel]float64 `yaml:"confidence_weights" json:"confidence_weights"`
}

// BatchConfig controls concurrent batch validation
type BatchConfig struct {
	Concurrency   int     `yaml:"concurrency" json:"concurrency"`
	RatePerSecond float64 `yaml:"rate_per_second" json:"rate_per_second"` // 0 disables throttling
}

// CacheConfig controls result memoization
type CacheConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// Config is the full process-wide configuration
type Config struct {
	Scoring ScoringConfig            `yaml:"scoring" json:"scoring"`
	Domains map[Domain]DomainProfile `yaml:"domains" json:"domains"`
	Batch   BatchConfig              `yaml:"batch" json:"batch"`
	Cache   CacheConfig              `yaml:"cache" json:"cache"`
}

// DefaultConfig returns the built-in configuration. The 20% singleton
// threshold, 2-source minimum and 2:1 validation target follow the
// threshold recommendations the scoring model is based on.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			PassingScore:     70,
			FlagPenalty:      10,
			ValidationTarget: 2.0,
			AmbiguityCeiling: 0.1,
			ConfidenceWeights: map[ConfidenceLevel]float64{
				ConfidenceHigh:      1.0,
				ConfidenceMedium:    0.75,
				ConfidenceLow:       0.5,
				ConfidenceUncertain: 0.0,
			},
		},
		Domains: map[Domain]DomainProfile{
			DomainGeneral: {
				SingletonThreshold: 0.2,
				MinSources:         2,
				ConfidenceFloor:    0.5,
			},
			DomainConsulting: {
				SingletonThreshold: 0.2,
				MinSources:         2,
				StructureChecks:    []string{CheckHypothesisStatement, CheckExecutiveSummary},
				ConfidenceFloor:    0.7,
			},
			DomainTechnical: {
				SingletonThreshold: 0.2,
				MinSources:         2,
				StructureChecks:    []string{CheckPerformanceCitation},
				ConfidenceFloor:    0.7,
			},
			DomainResearch: {
				SingletonThreshold: 0.1,
				MinSources:         3,
				StructureChecks:    []string{CheckCitations},
				ConfidenceFloor:    0.8,
			},
		},
		Batch: BatchConfig{
			Concurrency:   4,
			RatePerSecond: 0,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
	}
}

// Profile returns the profile for d, falling back to the general profile
// for unknown domains. The bool reports whether d was recognized.
func (c *Config) Profile(d Domain) (DomainProfile, bool) {
	if p, ok := c.Domains[d]; ok {
		return p, true
	}
	return c.Domains[DomainGeneral], false
}

// Weight returns the scoring weight for a confidence tier
func (c *Config) Weight(l ConfidenceLevel) float64 {
	return c.Scoring.ConfidenceWeights[l]
}
