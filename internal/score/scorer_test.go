package score

import (
	"testing"

	"github.com/ppiankov/lithium/internal/model"
)

func generalInputs(cfg *model.Config, claims []model.Claim, sourceCount int) Inputs {
	profile, _ := cfg.Profile(model.DomainGeneral)
	return Inputs{
		Claims:       claims,
		Profile:      profile,
		SourceCount:  sourceCount,
		ScopeDefined: true,
		Domain:       model.DomainGeneral,
		Mode:         model.ModeFull,
	}
}

func TestScorer_ZeroClaims(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	res := s.Score(generalInputs(cfg, nil, 0))

	if res.Passed {
		t.Error("Zero extractable claims must not pass")
	}
	if !res.HasFlag(model.FlagNoClaims) {
		t.Error("Expected NO_CLAIMS flag")
	}
	if res.RiskScore != 50 || res.RiskTier != model.RiskMedium {
		t.Errorf("Expected elevated risk 50/MEDIUM, got %f/%s", res.RiskScore, res.RiskTier)
	}
	if res.Subscores.PreValidation != 50 {
		t.Errorf("Expected neutral pre-validation 50, got %f", res.Subscores.PreValidation)
	}
	if res.FullySupported {
		t.Error("Zero claims is not fully supported")
	}
}

func TestScorer_FullySupportedPasses(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	claims := []model.Claim{
		{Text: "a", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 2},
		{Text: "b", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 2},
	}

	res := s.Score(generalInputs(cfg, claims, 3))

	if !res.Passed {
		t.Errorf("Cross-validated claims should pass, overall %f", res.OverallScore)
	}
	if !res.FullySupported {
		t.Error("Expected FullySupported")
	}
	if res.ValidationRatio != 2 {
		t.Errorf("Expected validation ratio 2 (floor denominator), got %f", res.ValidationRatio)
	}
	if res.RiskTier != model.RiskLow {
		t.Errorf("Expected LOW risk, got %s at %f", res.RiskTier, res.RiskScore)
	}
	if len(res.Flags) != 0 {
		t.Errorf("Expected no flags, got %v", res.Flags)
	}
}

func TestScorer_OverconfidentUnsupportedClaim(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	claims := []model.Claim{
		{Text: "it always works", Type: model.ClaimArbitrary, Confidence: model.ConfidenceHigh, SupportCount: 0},
	}
	in := generalInputs(cfg, claims, 0)
	in.Flags = []model.SignalFlag{model.FlagConfirmationBias}

	res := s.Score(in)

	if res.Passed {
		t.Errorf("Overconfident unsupported claim must fail, overall %f", res.OverallScore)
	}
	if res.RiskTier != model.RiskHigh {
		t.Errorf("Expected HIGH risk, got %s at %f", res.RiskTier, res.RiskScore)
	}
	for _, want := range []model.SignalFlag{
		model.FlagUnsupportedClaims,
		model.FlagPoorValidationRatio,
		model.FlagConfirmationBias,
	} {
		if !res.HasFlag(want) {
			t.Errorf("Expected flag %s, got %v", want, res.Flags)
		}
	}
	// High confidence with zero support is the strongest hallucination
	// signal and contributes nothing to generation quality
	if res.Subscores.Generation != 0 {
		t.Errorf("Expected generation 0, got %f", res.Subscores.Generation)
	}
}

func TestScorer_SingletonPenaltyNeedsEnoughSources(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	claims := []model.Claim{
		{Text: "a", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 1},
		{Text: "b", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 1},
		{Text: "c", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 1},
	}

	// One source cannot provide cross-validation, so the singleton rate is
	// uninformative and must not be penalized
	single := s.Score(generalInputs(cfg, claims, 1))
	if single.HasFlag(model.FlagHighSingletonRate) {
		t.Error("HIGH_SINGLETON_RATE must not fire below min_sources")
	}

	// With enough sources the same rate is a real signal
	many := s.Score(generalInputs(cfg, claims, 3))
	if !many.HasFlag(model.FlagHighSingletonRate) {
		t.Error("Expected HIGH_SINGLETON_RATE with sufficient sources")
	}
	if many.Subscores.Generation >= single.Subscores.Generation {
		t.Errorf("Singleton penalty should lower generation: %f vs %f",
			many.Subscores.Generation, single.Subscores.Generation)
	}
	if single.SingletonRate != 1 || many.SingletonRate != 1 {
		t.Error("Singleton rate itself is independent of source count")
	}
}

func TestScorer_QuickMode(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	claims := []model.Claim{
		{Text: "a", Type: model.ClaimArbitrary, Confidence: model.ConfidenceHigh, SupportCount: 0},
	}
	in := generalInputs(cfg, claims, 0)
	in.Quick = true
	in.Flags = []model.SignalFlag{model.FlagConfirmationBias}

	res := s.Score(in)

	if len(res.Flags) != 0 {
		t.Errorf("Quick mode produces no flags, got %v", res.Flags)
	}
	if len(res.Recommendations) != 0 {
		t.Errorf("Quick mode produces no recommendations, got %v", res.Recommendations)
	}
	if res.Subscores.QA != 100 {
		t.Errorf("Quick mode QA is neutral 100, got %f", res.Subscores.QA)
	}
}

func TestScorer_UnknownDomainWarningSurvivesQuickMode(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	claims := []model.Claim{
		{Text: "a", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 1},
	}
	in := generalInputs(cfg, claims, 1)
	in.Quick = true
	in.UnknownDomain = true

	res := s.Score(in)

	if !res.HasFlag(model.FlagUnknownDomain) {
		t.Errorf("Unknown-domain warning must survive quick mode, got %v", res.Flags)
	}
	if len(res.Flags) != 1 {
		t.Errorf("Quick mode must raise no other flags, got %v", res.Flags)
	}
	if res.Subscores.QA != 100 {
		t.Errorf("Quick mode QA stays neutral, got %f", res.Subscores.QA)
	}
	if len(res.Recommendations) != 0 {
		t.Errorf("Quick mode produces no recommendations, got %v", res.Recommendations)
	}
}

func TestScorer_RiskRisesWithUnsupportedShare(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	supported := []model.Claim{
		{Text: "a", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 2},
		{Text: "b", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 2},
	}
	mixed := []model.Claim{
		supported[0],
		{Text: "b", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 0},
	}

	low := s.Score(generalInputs(cfg, supported, 3))
	high := s.Score(generalInputs(cfg, mixed, 3))

	if high.RiskScore <= low.RiskScore {
		t.Errorf("Risk must rise with the unsupported share: %f vs %f",
			high.RiskScore, low.RiskScore)
	}
}

func TestScorer_RecommendationsOrderedBySeverity(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	claims := []model.Claim{
		{Text: "a", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 0},
	}
	in := generalInputs(cfg, claims, 0)
	in.Flags = []model.SignalFlag{model.FlagUndefinedScope}

	res := s.Score(in)

	if len(res.Recommendations) != 3 {
		t.Fatalf("Expected 3 recommendations, got %v", res.Recommendations)
	}
	// Fatal-severity suggestions come first; the scope note trails
	if res.Recommendations[0] != recommendationText[model.FlagUnsupportedClaims] {
		t.Errorf("Expected unsupported-claims suggestion first, got %q", res.Recommendations[0])
	}
	if res.Recommendations[2] != recommendationText[model.FlagUndefinedScope] {
		t.Errorf("Expected scope suggestion last, got %q", res.Recommendations[2])
	}
}

func TestScorer_FlagsDeduplicated(t *testing.T) {
	cfg := model.DefaultConfig()
	s := NewScorer(cfg)

	claims := []model.Claim{
		{Text: "a", Type: model.ClaimEmpirical, Confidence: model.ConfidenceMedium, SupportCount: 0},
	}
	in := generalInputs(cfg, claims, 0)
	// Detector stage raised the same flag the metrics will raise
	in.Flags = []model.SignalFlag{model.FlagUnsupportedClaims}

	res := s.Score(in)

	count := 0
	for _, f := range res.Flags {
		if f == model.FlagUnsupportedClaims {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected UNSUPPORTED_CLAIMS exactly once, got %v", res.Flags)
	}
}

func TestScorer_PassingThresholdIsInclusive(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Scoring.PassingScore = 100

	s := NewScorer(cfg)
	claims := []model.Claim{
		{Text: "a", Type: model.ClaimEmpirical, Confidence: model.ConfidenceHigh, SupportCount: 2},
		{Text: "b", Type: model.ClaimEmpirical, Confidence: model.ConfidenceHigh, SupportCount: 2},
	}

	res := s.Score(generalInputs(cfg, claims, 3))
	if res.OverallScore != 100 {
		t.Fatalf("Expected overall exactly 100, got %f", res.OverallScore)
	}
	if !res.Passed {
		t.Error("A score equal to the passing threshold passes")
	}
}
