package score

import (
	"math"
	"sort"

	"github.com/ppiankov/lithium/internal/model"
)

// Inputs is everything the scorer needs from the earlier pipeline stages
type Inputs struct {
	Claims      []model.Claim      // Classified claims with resolved support
	Flags       []model.SignalFlag // Accumulated detector + overlay flags
	Profile     model.DomainProfile
	SourceCount int

	AmbiguityRatio float64
	ScopeDefined   bool

	Quick         bool // Quick mode: no detectors or overlay ran
	UnknownDomain bool // Requested domain was not recognized and fell back to general

	Domain model.Domain
	Mode   model.Mode
}

// Scorer combines pipeline signals into the three-stage composite score
type Scorer struct {
	cfg *model.Config
}

// NewScorer creates a scorer bound to the active configuration
func NewScorer(cfg *model.Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes the composite result:
//
//	overall = 0.30*pre_validation + 0.40*generation + 0.30*qa
//
// with every sub-score in [0,100]. The pipeline is pure and total: any
// well-typed input produces a result, never an error.
func (s *Scorer) Score(in Inputs) *model.ValidationResult {
	total := len(in.Claims)

	singletons := 0
	unsupported := 0
	overconfident := 0
	dist := make(map[model.ConfidenceLevel]int)
	for _, c := range in.Claims {
		if c.IsSingleton() {
			singletons++
		}
		if !c.IsSupported() {
			unsupported++
			if c.Confidence == model.ConfidenceHigh {
				overconfident++
			}
		}
		dist[c.Confidence]++
	}

	singletonRate := float64(singletons) / math.Max(1, float64(total))
	supported := total - unsupported
	// Denominator floor of 1 keeps the ratio defined with zero
	// unsupported claims; FullySupported carries the real reading.
	validationRatio := float64(supported) / math.Max(1, float64(unsupported))
	fullySupported := total > 0 && unsupported == 0

	// Quick mode scores on extraction and classification alone: detector
	// and metric flags are not raised and no recommendations are made.
	// The unknown-domain warning is input taxonomy, not a detector
	// output, and is carried in every mode.
	var flags []model.SignalFlag
	if in.UnknownDomain {
		flags = append(flags, model.FlagUnknownDomain)
	}
	if !in.Quick {
		flags = append(flags, s.metricFlags(in, total, unsupported, singletonRate, validationRatio)...)
		flags = append(flags, in.Flags...)
		flags = dedupe(flags)
	}

	pre := s.preValidationScore(in, total)
	gen := s.generationScore(in, singletonRate)
	qa := s.qaScore(in, flags)

	overall := 0.30*pre + 0.40*gen + 0.30*qa

	risk := s.riskScore(in, total, gen, unsupported, overconfident, singletonRate, validationRatio)

	return &model.ValidationResult{
		OverallScore:           round1(overall),
		Passed:                 overall >= s.cfg.Scoring.PassingScore,
		RiskTier:               tierFor(risk),
		RiskScore:              round1(risk),
		SingletonRate:          singletonRate,
		ValidationRatio:        validationRatio,
		FullySupported:         fullySupported,
		Subscores:              model.Subscores{PreValidation: round1(pre), Generation: round1(gen), QA: round1(qa)},
		ConfidenceDistribution: dist,
		Flags:                  flags,
		Claims:                 in.Claims,
		Recommendations:        s.recommendations(in, flags),
		Domain:                 in.Domain,
		Mode:                   in.Mode,
	}
}

// metricFlags raises the flags derived from the support metrics themselves
func (s *Scorer) metricFlags(in Inputs, total, unsupported int, singletonRate, validationRatio float64) []model.SignalFlag {
	var flags []model.SignalFlag

	if total == 0 {
		flags = append(flags, model.FlagNoClaims)
		return flags
	}
	if unsupported > 0 {
		flags = append(flags, model.FlagUnsupportedClaims)
		if validationRatio < 1.0 {
			flags = append(flags, model.FlagPoorValidationRatio)
		}
	}
	// Cross-validation cannot be demanded from a source set too small to
	// provide it, so the singleton flag needs min_sources supplied.
	if in.SourceCount >= in.Profile.MinSources && singletonRate > in.Profile.SingletonThreshold {
		flags = append(flags, model.FlagHighSingletonRate)
	}
	return flags
}

// preValidationScore covers ambiguity, scope presence and claim-type
// diversity. In quick mode the detector metrics are unavailable and are
// treated as neutral.
func (s *Scorer) preValidationScore(in Inputs, total int) float64 {
	pre := 100.0

	if !in.Quick {
		pre -= math.Min(40, in.AmbiguityRatio*400)
		if !in.ScopeDefined {
			pre -= 20
		}
	}

	if total > 0 && allArbitrary(in.Claims) {
		pre -= 30
	}
	if total == 0 {
		pre = 50
	}
	return clamp(pre)
}

// generationScore is confidence-weighted claim quality. A claim's quality
// is its declared-confidence weight calibrated against its support:
// cross-validated claims are floored upward, and an unsupported claim is
// scored by how honestly it hedged — declared high confidence with zero
// support is the strongest hallucination signal and scores zero.
func (s *Scorer) generationScore(in Inputs, singletonRate float64) float64 {
	if len(in.Claims) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range in.Claims {
		w := s.cfg.Weight(c.Confidence)
		var q float64
		switch {
		case c.SupportCount >= 2:
			q = math.Max(w, 0.75)
		case c.SupportCount == 1:
			q = math.Max(w, 0.6)
		default:
			q = math.Min(0.5, 1-w)
		}
		sum += q
	}
	gen := 100 * sum / float64(len(in.Claims))

	if in.SourceCount >= in.Profile.MinSources && singletonRate > in.Profile.SingletonThreshold {
		gen -= (singletonRate - in.Profile.SingletonThreshold) * 50
	}
	return clamp(gen)
}

// qaScore starts at 100 and subtracts a fixed penalty per raised flag
func (s *Scorer) qaScore(in Inputs, flags []model.SignalFlag) float64 {
	if in.Quick {
		return 100
	}
	return clamp(100 - float64(len(flags))*s.cfg.Scoring.FlagPenalty)
}

// riskScore rises monotonically with the singleton rate and the share of
// unsupported and overconfident claims, and falls with the validation
// ratio.
func (s *Scorer) riskScore(in Inputs, total int, gen float64, unsupported, overconfident int, singletonRate, validationRatio float64) float64 {
	if total == 0 {
		// Nothing verifiable was said; elevated but not maximal risk.
		return 50
	}

	unsupportedRate := float64(unsupported) / float64(total)
	overconfidentRate := float64(overconfident) / float64(total)

	singletonExcess := 0.0
	if in.SourceCount >= in.Profile.MinSources {
		singletonExcess = math.Max(0, singletonRate-in.Profile.SingletonThreshold)
	}

	risk := 0.25*(100-gen) +
		35*unsupportedRate +
		25*overconfidentRate +
		15*singletonExcess
	risk -= math.Min(10, validationRatio*2.5)

	return clamp(risk)
}

// tierFor buckets a risk score: LOW below 20, HIGH above 50
func tierFor(risk float64) model.RiskTier {
	switch {
	case risk < 20:
		return model.RiskLow
	case risk <= 50:
		return model.RiskMedium
	default:
		return model.RiskHigh
	}
}

// recommendations maps raised flags to fixed suggestions, ordered by
// descending severity with raise order preserved within a tier
func (s *Scorer) recommendations(in Inputs, flags []model.SignalFlag) []string {
	if in.Quick {
		return nil
	}

	ordered := make([]model.SignalFlag, len(flags))
	copy(ordered, flags)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Severity() > ordered[j].Severity()
	})

	var recs []string
	for _, f := range ordered {
		if text, ok := recommendationText[f]; ok {
			recs = append(recs, text)
		}
	}
	return recs
}

// recommendationText is the fixed flag-to-suggestion lookup
var recommendationText = map[model.SignalFlag]string{
	model.FlagUnsupportedClaims:        "Remove unsupported assertions or add corroborating sources for them.",
	model.FlagPoorValidationRatio:      "Validation ratio below 2:1. Increase supported claims or remove unsupported assertions.",
	model.FlagConfirmationBias:         "One-sided absolute phrasing detected. Add counterexamples or qualify the claims.",
	model.FlagComputationalHardness:    "Contains computationally hard claims. Acknowledge computational limitations explicitly.",
	model.FlagHighSingletonRate:        "High singleton rate. Add cross-validation from additional sources.",
	model.FlagHighAmbiguity:            "High density of vague qualifiers. Quantify or remove ambiguous language.",
	model.FlagMissingUncertaintyAck:    "Add explicit uncertainty acknowledgments for low-confidence claims.",
	model.FlagRecencyBias:              "Newest-is-best phrasing detected. Weigh older evidence on its merits.",
	model.FlagGeographicBias:           "Sources cover a single region while claims are stated as universal. Add geographically diverse sources or narrow the claims.",
	model.FlagUndefinedScope:           "Add a sentence establishing scope, boundaries, or assumptions.",
	model.FlagNoClaims:                 "No verifiable claims were extracted. Add concrete assertions.",
	model.FlagUnknownDomain:            "Unknown domain requested; the general profile was applied.",
	model.FlagNeedsExecutiveSummary:    "Add an executive summary with MECE-structured key findings.",
	model.FlagNeedsHypothesis:          "State the working hypothesis explicitly.",
	model.FlagNeedsPerformanceCitation: "Performance claims need citation markers.",
	model.FlagNeedsCitations:           "Add citations for the claims made.",
}

func allArbitrary(claims []model.Claim) bool {
	for _, c := range claims {
		if c.Type != model.ClaimArbitrary {
			return false
		}
	}
	return true
}

func dedupe(flags []model.SignalFlag) []model.SignalFlag {
	seen := make(map[model.SignalFlag]bool, len(flags))
	out := flags[:0]
	for _, f := range flags {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
