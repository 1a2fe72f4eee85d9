package cache

import (
	"sync"
	"testing"

	"github.com/ppiankov/lithium/internal/model"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("content", []string{"s1", "s2"}, model.DomainGeneral, model.ModeFull)
	b := Fingerprint("content", []string{"s1", "s2"}, model.DomainGeneral, model.ModeFull)
	if a != b {
		t.Error("Identical inputs must fingerprint identically")
	}
}

func TestFingerprint_DistinguishesInputs(t *testing.T) {
	base := Fingerprint("content", []string{"s1"}, model.DomainGeneral, model.ModeFull)

	variants := []string{
		Fingerprint("content!", []string{"s1"}, model.DomainGeneral, model.ModeFull),
		Fingerprint("content", []string{"s2"}, model.DomainGeneral, model.ModeFull),
		Fingerprint("content", []string{"s1", "s2"}, model.DomainGeneral, model.ModeFull),
		Fingerprint("content", []string{"s1"}, model.DomainResearch, model.ModeFull),
		Fingerprint("content", []string{"s1"}, model.DomainGeneral, model.ModeDetailed),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("Variant %d collided with the base fingerprint", i)
		}
	}
}

func TestFingerprint_LengthFraming(t *testing.T) {
	// Concatenation-equal but structurally different inputs must not collide
	a := Fingerprint("ab", []string{"c"}, model.DomainGeneral, model.ModeFull)
	b := Fingerprint("a", []string{"bc"}, model.DomainGeneral, model.ModeFull)
	if a == b {
		t.Error("Length framing failed: boundary shift collided")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache()

	if _, found := c.Get("missing"); found {
		t.Error("Empty cache reported a hit")
	}

	result := &model.ValidationResult{OverallScore: 75}
	c.Set("key", result)

	got, found := c.Get("key")
	if !found {
		t.Fatal("Expected a hit after Set")
	}
	if got != result {
		t.Error("Cache must return the same result instance")
	}

	c.Clear()
	if _, found := c.Get("key"); found {
		t.Error("Expected a miss after Clear")
	}
}

func TestMemoizer_ComputesOnce(t *testing.T) {
	m := NewMemoizer(NewMemoryCache())

	calls := 0
	compute := func() *model.ValidationResult {
		calls++
		return &model.ValidationResult{OverallScore: 80}
	}

	first := m.Do("key", compute)
	second := m.Do("key", compute)

	if calls != 1 {
		t.Errorf("Expected one computation, got %d", calls)
	}
	if first != second {
		t.Error("Repeated calls must share the retained instance")
	}
}

func TestMemoizer_ConcurrentCallsShareOneComputation(t *testing.T) {
	m := NewMemoizer(NewMemoryCache())

	var mu sync.Mutex
	calls := 0
	release := make(chan struct{})
	compute := func() *model.ValidationResult {
		mu.Lock()
		calls++
		mu.Unlock()
		<-release
		return &model.ValidationResult{OverallScore: 80}
	}

	const workers = 8
	results := make([]*model.ValidationResult, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Do("key", compute)
		}(i)
	}
	close(release)
	wg.Wait()

	mu.Lock()
	got := calls
	mu.Unlock()
	if got != 1 {
		t.Errorf("Expected concurrent callers to share one computation, got %d", got)
	}
	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatal("Concurrent callers must receive the same instance")
		}
	}
}

func TestMemoizer_Clear(t *testing.T) {
	m := NewMemoizer(NewMemoryCache())

	calls := 0
	compute := func() *model.ValidationResult {
		calls++
		return &model.ValidationResult{}
	}

	m.Do("key", compute)
	m.Clear()
	m.Do("key", compute)

	if calls != 2 {
		t.Errorf("Expected recomputation after Clear, got %d calls", calls)
	}
}
