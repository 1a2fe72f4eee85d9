package support

import "testing"

func TestResolver_SupportCount(t *testing.T) {
	r := NewResolver()

	claim := "The database migration reduced query latency across every region"
	sources := []string{
		"Query latency dropped after the database migration in all regions",
		"The migration of the database lowered query latency across the region",
		"An unrelated note about staffing changes",
	}

	count := r.SupportCount(claim, sources)
	if count != 2 {
		t.Errorf("Expected support count 2, got %d", count)
	}
}

func TestResolver_SharedNumericValue(t *testing.T) {
	r := NewResolver()

	claim := "Based on preliminary data, results may vary between 40-60%."
	sources := []string{"Preliminary data indicates 40-60% variance"}

	if count := r.SupportCount(claim, sources); count != 1 {
		t.Errorf("Expected shared numeric value to corroborate, got count %d", count)
	}
}

func TestResolver_NoSources(t *testing.T) {
	r := NewResolver()

	if count := r.SupportCount("The cluster handles a million writes", nil); count != 0 {
		t.Errorf("Expected 0 support with no sources, got %d", count)
	}
}

func TestResolver_TooFewKeyTerms(t *testing.T) {
	r := NewResolver()

	// A claim with fewer than two content-bearing terms cannot be
	// matched meaningfully
	if count := r.SupportCount("it is done", []string{"it is done"}); count != 0 {
		t.Errorf("Expected 0 support for termless claim, got %d", count)
	}
}

func TestResolver_OrderIndependence(t *testing.T) {
	r := NewResolver()

	claim := "Checkpoint intervals control recovery duration"
	a := []string{
		"Recovery duration depends on checkpoint intervals",
		"Nothing relevant here",
		"Checkpoint intervals are the main recovery duration knob",
	}
	b := []string{a[2], a[0], a[1]}

	if r.SupportCount(claim, a) != r.SupportCount(claim, b) {
		t.Error("Support count must be independent of source order")
	}
}

func TestResolver_Deterministic(t *testing.T) {
	r := NewResolver()

	claim := "Compaction throughput improved by 25% after tuning"
	sources := []string{"Tuning improved compaction throughput by 25%"}

	first := r.SupportCount(claim, sources)
	for i := 0; i < 10; i++ {
		if got := r.SupportCount(claim, sources); got != first {
			t.Fatalf("Support count changed between runs: %d then %d", first, got)
		}
	}
}
