package signal

import (
	"strings"

	"github.com/ppiankov/lithium/internal/model"
)

// Metrics carries detector measurements the scorer folds into the
// pre-validation sub-score
type Metrics struct {
	AmbiguityRatio float64 // Vague qualifiers per word
	ScopeDefined   bool    // Text establishes boundaries or assumptions
	HasAbstention  bool    // Text acknowledges uncertainty somewhere
}

// Detectors runs the independent, side-effect-free checks over the full
// claim sequence and raw text. Each check yields zero or one flag; flags
// accumulate and never overwrite each other.
type Detectors struct {
	vagueTerms       []string
	scopeTerms       []string
	abstentionTerms  []string
	absoluteTerms    []string
	counterTerms     []string
	recencyTerms     []string
	regionTerms      []string
	universalTerms   []string
	hardnessTerms    []string
	ambiguityCeiling float64
}

// NewDetectors creates detectors with the given ambiguity ceiling
func NewDetectors(ambiguityCeiling float64) *Detectors {
	return &Detectors{
		vagueTerms: []string{
			"some", "many", "various", "several", "numerous",
			"somewhat", "relatively", "fairly", "quite", "maybe", "perhaps",
		},
		scopeTerms: []string{
			"specifically", "limited to", "within", "scope", "boundaries",
			"constraints", "assuming", "we assume", "restricted to", "we focus",
		},
		abstentionTerms: []string{
			"don't know", "uncertain", "cannot determine", "insufficient data",
			"requires further", "unable to", "beyond scope", "cannot verify",
			"further study", "further research", "more data needed",
			"results may vary", "may vary", "preliminary", "not certain",
			"limitations", "caveat",
		},
		absoluteTerms: []string{
			"always", "never", "all ", "none", "every", "no one",
			"100%", "guarantee", "definitely", "certainly", "undeniable",
		},
		counterTerms: []string{
			"however", "on the other hand", "although", "conversely",
			"counterexample", "except", "but ", "nevertheless",
		},
		recencyTerms: []string{
			"latest", "newest", "most recent", "cutting-edge", "state-of-the-art",
		},
		regionTerms: []string{
			"america", "american", "europe", "european", "asia", "asian",
			"africa", "western", "eastern", "united states", "china", "india",
		},
		universalTerms: []string{
			"worldwide", "globally", "universally", "everywhere",
			"all countries", "every country", "always", "all ",
		},
		hardnessTerms: []string{
			"np-hard", "np-complete", "solve np", "polynomial time",
			"factor large", "decrypt", "break encryption",
			"predict perfectly", "guarantee optimal", "perfect optimization",
			"optimize perfectly", "perfectly optimal",
		},
		ambiguityCeiling: ambiguityCeiling,
	}
}

// Run executes every detector and returns the accumulated flags plus the
// measurements used by the scorer. meanWeight is the mean declared
// confidence weight over the claims.
func (d *Detectors) Run(text string, claims []model.Claim, sources []string, meanWeight float64) ([]model.SignalFlag, Metrics) {
	lower := strings.ToLower(text)

	metrics := Metrics{
		AmbiguityRatio: d.AmbiguityRatio(lower),
		ScopeDefined:   d.ScopeDefined(lower),
		HasAbstention:  d.HasAbstention(lower),
	}

	var flags []model.SignalFlag
	if metrics.AmbiguityRatio > d.ambiguityCeiling {
		flags = append(flags, model.FlagHighAmbiguity)
	}
	if !metrics.ScopeDefined {
		flags = append(flags, model.FlagUndefinedScope)
	}
	if meanWeight <= 0.5 && len(claims) > 0 && !metrics.HasAbstention {
		flags = append(flags, model.FlagMissingUncertaintyAck)
	}
	if d.confirmationBias(lower) {
		flags = append(flags, model.FlagConfirmationBias)
	}
	if d.recencyBias(lower) {
		flags = append(flags, model.FlagRecencyBias)
	}
	if d.geographicBias(lower, sources) {
		flags = append(flags, model.FlagGeographicBias)
	}
	if d.computationalHardness(claims) {
		flags = append(flags, model.FlagComputationalHardness)
	}

	return flags, metrics
}

// AmbiguityRatio is the density of unquantified vague qualifiers per word
func (d *Detectors) AmbiguityRatio(lower string) float64 {
	words := strings.Fields(lower)
	if len(words) == 0 {
		return 0
	}
	vague := 0
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?")
		for _, term := range d.vagueTerms {
			if w == term {
				vague++
				break
			}
		}
	}
	return float64(vague) / float64(len(words))
}

// ScopeDefined reports whether any sentence establishes boundaries or
// assumptions
func (d *Detectors) ScopeDefined(lower string) bool {
	return containsAny(lower, d.scopeTerms)
}

// HasAbstention reports whether the text acknowledges uncertainty
func (d *Detectors) HasAbstention(lower string) bool {
	return containsAny(lower, d.abstentionTerms)
}

// confirmationBias fires on one-sided absolute phrasing with no
// counterexample or opposing-view language anywhere in the text
func (d *Detectors) confirmationBias(lower string) bool {
	return containsAny(lower, d.absoluteTerms) && !containsAny(lower, d.counterTerms)
}

// recencyBias fires on newest-is-best phrasing
func (d *Detectors) recencyBias(lower string) bool {
	return containsAny(lower, d.recencyTerms)
}

// geographicBias fires when the text claims universal reach while every
// source that names a region names the same single region
func (d *Detectors) geographicBias(lower string, sources []string) bool {
	if !containsAny(lower, d.universalTerms) {
		return false
	}

	regions := make(map[string]bool)
	found := false
	for _, source := range sources {
		s := strings.ToLower(source)
		for _, region := range d.regionTerms {
			if strings.Contains(s, region) {
				regions[region] = true
				found = true
			}
		}
	}
	return found && len(regions) == 1
}

// computationalHardness fires when any claim asserts an outcome that
// would require solving a known-intractable problem at the stated scale
func (d *Detectors) computationalHardness(claims []model.Claim) bool {
	for _, c := range claims {
		if containsAny(strings.ToLower(c.Text), d.hardnessTerms) {
			return true
		}
	}
	return false
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
