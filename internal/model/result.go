package model

// SignalFlag tags an issue detected during validation. Flags accumulate
// during a pipeline pass and are never removed.
type SignalFlag string

const (
	FlagHighSingletonRate        SignalFlag = "HIGH_SINGLETON_RATE"
	FlagPoorValidationRatio      SignalFlag = "POOR_VALIDATION_RATIO"
	FlagUnsupportedClaims        SignalFlag = "UNSUPPORTED_CLAIMS"
	FlagComputationalHardness    SignalFlag = "COMPUTATIONAL_INTRACTABILITY"
	FlagUndefinedScope           SignalFlag = "UNDEFINED_SCOPE"
	FlagHighAmbiguity            SignalFlag = "HIGH_AMBIGUITY"
	FlagMissingUncertaintyAck    SignalFlag = "MISSING_UNCERTAINTY_ACKNOWLEDGMENT"
	FlagConfirmationBias         SignalFlag = "CONFIRMATION_BIAS"
	FlagRecencyBias              SignalFlag = "RECENCY_BIAS"
	FlagGeographicBias           SignalFlag = "GEOGRAPHIC_BIAS"
	FlagUnknownDomain            SignalFlag = "UNKNOWN_DOMAIN"
	FlagNoClaims                 SignalFlag = "NO_CLAIMS"
	FlagNeedsExecutiveSummary    SignalFlag = "NEEDS_EXECUTIVE_SUMMARY"
	FlagNeedsHypothesis          SignalFlag = "NEEDS_HYPOTHESIS_STATEMENT"
	FlagNeedsPerformanceCitation SignalFlag = "NEEDS_PERFORMANCE_CITATION"
	FlagNeedsCitations           SignalFlag = "NEEDS_CITATIONS"
)

// FlagSeverity orders flags for recommendation output
type FlagSeverity int

const (
	SeverityInfo FlagSeverity = iota
	SeverityWarning
	SeverityFatal
)

// Severity returns the severity class of a flag. Fatal flags describe
// conditions that on their own make the text unfit to show a user.
func (f SignalFlag) Severity() FlagSeverity {
	switch f {
	case FlagUnsupportedClaims, FlagConfirmationBias, FlagComputationalHardness, FlagPoorValidationRatio:
		return SeverityFatal
	case FlagHighSingletonRate, FlagHighAmbiguity, FlagMissingUncertaintyAck,
		FlagRecencyBias, FlagGeographicBias, FlagNoClaims:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// RiskTier is the coarse hallucination-risk bucket
type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// Domain selects the active rule profile
type Domain string

const (
	DomainGeneral    Domain = "general"
	DomainConsulting Domain = "consulting"
	DomainTechnical  Domain = "technical"
	DomainResearch   Domain = "research"
)

// KnownDomain reports whether d is one of the recognized domains
func KnownDomain(d Domain) bool {
	switch d {
	case DomainGeneral, DomainConsulting, DomainTechnical, DomainResearch:
		return true
	}
	return false
}

// Mode selects how much of the pipeline runs
type Mode string

const (
	ModeQuick    Mode = "quick"    // Extraction + classification + support only
	ModeFull     Mode = "full"     // Complete pipeline
	ModeDetailed Mode = "detailed" // Full pipeline plus per-claim rationale
)

// KnownMode reports whether m is one of the recognized modes
func KnownMode(m Mode) bool {
	switch m {
	case ModeQuick, ModeFull, ModeDetailed:
		return true
	}
	return false
}

// Subscores is the transparent breakdown behind the overall score
type Subscores struct {
	PreValidation float64 `json:"pre_validation"` // Ambiguity, scope, claim-type diversity
	Generation    float64 `json:"generation"`     // Confidence-weighted claim quality
	QA            float64 `json:"qa"`             // 100 minus per-flag penalties
}

// ValidationResult is the complete outcome of one validation call.
// It is immutable once produced; cache hits may return a shared instance.
type ValidationResult struct {
	OverallScore    float64  `json:"overall_score"` // 0-100
	Passed          bool     `json:"passed"`
	RiskTier        RiskTier `json:"risk_tier"`
	RiskScore       float64  `json:"risk_score"` // 0-100, drives the tier
	SingletonRate   float64  `json:"singleton_rate"`
	ValidationRatio float64  `json:"validation_ratio"`
	FullySupported  bool     `json:"fully_supported"` // True when no claim is unsupported

	Subscores Subscores `json:"subscores"`

	ConfidenceDistribution map[ConfidenceLevel]int `json:"confidence_distribution"`

	Flags           []SignalFlag `json:"flags"`
	Claims          []Claim      `json:"claims"`
	Recommendations []string     `json:"recommendations"`

	Domain Domain `json:"domain"`
	Mode   Mode   `json:"mode"`
}

// HasFlag reports whether the result carries the given flag
func (r *ValidationResult) HasFlag(f SignalFlag) bool {
	for _, v := range r.Flags {
		if v == f {
			return true
		}
	}
	return false
}

// BatchSummary is the pure reduction over an ordered batch of results
type BatchSummary struct {
	BestIndex    int     `json:"best_index"`  // Highest overall score
	WorstIndex   int     `json:"worst_index"` // Lowest overall score
	AverageScore float64 `json:"average_score"`

	Passed int `json:"passed"`
	Failed int `json:"failed"`

	RiskDistribution map[RiskTier]int `json:"risk_distribution"`
	CommonFlags      []FlagCount      `json:"common_flags"`
}

// FlagCount pairs a flag with its occurrence count across a batch
type FlagCount struct {
	Flag  SignalFlag `json:"flag"`
	Count int        `json:"count"`
}
