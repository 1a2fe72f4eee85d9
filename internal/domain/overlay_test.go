package domain

import (
	"testing"

	"github.com/ppiankov/lithium/internal/model"
)

func hasFlag(flags []model.SignalFlag, want model.SignalFlag) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

func TestOverlay_ExecutiveSummary(t *testing.T) {
	o := NewOverlay()
	profile := model.DomainProfile{
		StructureChecks: []string{model.CheckExecutiveSummary},
	}

	flags := o.Apply(profile, "the project went well and we learned things", nil)
	if !hasFlag(flags, model.FlagNeedsExecutiveSummary) {
		t.Error("Expected NEEDS_EXECUTIVE_SUMMARY without a summary section")
	}

	flags = o.Apply(profile, "executive summary: revenue grew in both segments", nil)
	if len(flags) != 0 {
		t.Errorf("Expected no flags for text with a summary, got %v", flags)
	}
}

func TestOverlay_HypothesisStatement(t *testing.T) {
	o := NewOverlay()
	profile := model.DomainProfile{
		StructureChecks: []string{model.CheckHypothesisStatement},
	}

	flags := o.Apply(profile, "we ran the experiment and collected results", nil)
	if !hasFlag(flags, model.FlagNeedsHypothesis) {
		t.Error("Expected NEEDS_HYPOTHESIS without a hypothesis statement")
	}

	flags = o.Apply(profile, "our hypothesis is that caching dominates tail latency", nil)
	if len(flags) != 0 {
		t.Errorf("Expected no flags for text with a hypothesis, got %v", flags)
	}
}

func TestOverlay_PerformanceCitation(t *testing.T) {
	o := NewOverlay()
	profile := model.DomainProfile{
		StructureChecks: []string{model.CheckPerformanceCitation},
	}

	perfClaims := []model.Claim{{Text: "The new engine is three times faster"}}

	flags := o.Apply(profile, "the new engine is three times faster", perfClaims)
	if !hasFlag(flags, model.FlagNeedsPerformanceCitation) {
		t.Error("Expected NEEDS_PERFORMANCE_CITATION for an uncited performance claim")
	}

	flags = o.Apply(profile, "the new engine is three times faster [1]", perfClaims)
	if len(flags) != 0 {
		t.Errorf("Bracketed citation should satisfy the check, got %v", flags)
	}

	// No performance claims: the check is vacuously satisfied
	otherClaims := []model.Claim{{Text: "The team shipped the migration"}}
	flags = o.Apply(profile, "the team shipped the migration", otherClaims)
	if len(flags) != 0 {
		t.Errorf("Expected no flags without performance claims, got %v", flags)
	}
}

func TestOverlay_Citations(t *testing.T) {
	o := NewOverlay()
	profile := model.DomainProfile{
		StructureChecks: []string{model.CheckCitations},
	}

	flags := o.Apply(profile, "compaction is the dominant cost", nil)
	if !hasFlag(flags, model.FlagNeedsCitations) {
		t.Error("Expected NEEDS_CITATIONS for uncited research text")
	}

	for _, cited := range []string{
		"compaction is the dominant cost (2019)",
		"smith et al showed compaction dominates",
		"according to the storage survey, compaction dominates",
	} {
		if flags := o.Apply(profile, cited, nil); len(flags) != 0 {
			t.Errorf("Citation form %q should satisfy the check, got %v", cited, flags)
		}
	}
}

func TestOverlay_UnknownCheckSkipped(t *testing.T) {
	o := NewOverlay()
	profile := model.DomainProfile{
		StructureChecks: []string{"peer_review_round", model.CheckCitations},
	}

	flags := o.Apply(profile, "results are reported in smith et al", nil)
	if len(flags) != 0 {
		t.Errorf("Unknown check name must be skipped, got %v", flags)
	}
}

func TestOverlay_ChecksAccumulate(t *testing.T) {
	o := NewOverlay()
	profile := model.DomainProfile{
		StructureChecks: []string{model.CheckExecutiveSummary, model.CheckCitations},
	}

	flags := o.Apply(profile, "things improved", nil)
	if len(flags) != 2 {
		t.Fatalf("Expected both checks to fail, got %v", flags)
	}
	if flags[0] != model.FlagNeedsExecutiveSummary || flags[1] != model.FlagNeedsCitations {
		t.Errorf("Flags should follow profile check order, got %v", flags)
	}
}
