package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/lithium/internal/extract"
	"github.com/ppiankov/lithium/internal/model"
)

// numericPattern matches numeric or statistical assertions: counts,
// percentages, ranges, measurements.
var numericPattern = regexp.MustCompile(`\d`)

// rule is one lexical classification rule. Rules are evaluated in a fixed
// precedence order and the first match wins, so precedence can be
// enumerated directly in tests.
type rule struct {
	claimType model.ClaimType
	name      string
	match     func(lower string) bool
}

// Classifier assigns a type and a declared-confidence tier to claim spans
// using ordered lexical-pattern rules
type Classifier struct {
	rules         []rule
	absoluteTerms []string
	hedgeWords    []string
	hedgePhrases  []string
}

// NewClassifier creates a classifier with the fixed precedence order
// empirical > inferential > hypothetical > arbitrary
func NewClassifier() *Classifier {
	empiricalCues := []string{
		"data shows", "data show", "evidence", "study", "research",
		"measured", "survey", "observed", "according to", "statistics",
	}
	inferentialCues := []string{
		"therefore", "thus", "implies", "because", "hence",
		"it follows", "consequently", "suggests", "indicates that",
	}
	hypotheticalCues := []string{
		"might", "could", "may ", "possibly", "perhaps", "hypothesis",
		"would", "suppose", "potentially", "if ", "in case",
	}

	return &Classifier{
		rules: []rule{
			{
				claimType: model.ClaimEmpirical,
				name:      "numeric-or-measured",
				match: func(lower string) bool {
					return numericPattern.MatchString(lower) || containsAny(lower, empiricalCues)
				},
			},
			{
				claimType: model.ClaimInferential,
				name:      "causal-connective",
				match: func(lower string) bool {
					return containsAny(lower, inferentialCues)
				},
			},
			{
				claimType: model.ClaimHypothetical,
				name:      "modal-conditional",
				match: func(lower string) bool {
					return containsAny(lower, hypotheticalCues)
				},
			},
			// Arbitrary is the terminal rule: no epistemic anchor, or a
			// bare absolute assertion.
			{
				claimType: model.ClaimArbitrary,
				name:      "no-anchor",
				match:     func(string) bool { return true },
			},
		},
		absoluteTerms: []string{
			"always", "never", "all ", "none", "every", "no one",
			"100%", "guarantee", "definitely", "certainly", "undeniable",
			"impossible", "proven fact", "absolute truth",
			"will succeed", "will fail", "cannot fail", "must happen",
		},
		// Single-word hedges match whole tokens so occurrences at span
		// end or before punctuation count too
		hedgeWords: []string{
			"likely", "approximately", "preliminary", "may", "might",
			"could", "possibly", "perhaps", "roughly", "estimated",
			"around", "caveat", "about",
		},
		hedgePhrases: []string{
			"expected to", "subject to change",
		},
	}
}

// Classify builds a Claim from a span by applying the ordered rule list
// for the type and a hedging scan for the declared confidence. The
// support count is resolved later; the claim is immutable after that.
func (c *Classifier) Classify(span extract.Span) model.Claim {
	lower := strings.ToLower(span.Text)

	var (
		claimType model.ClaimType
		ruleName  string
	)
	for _, r := range c.rules {
		if r.match(lower) {
			claimType = r.claimType
			ruleName = r.name
			break
		}
	}

	confidence, confReason := c.assessConfidence(lower)

	return model.Claim{
		Text:       span.Text,
		Start:      span.Start,
		End:        span.End,
		Sentence:   span.Sentence,
		Type:       claimType,
		Confidence: confidence,
		Rationale:  fmt.Sprintf("type:%s(%s) confidence:%s(%s)", claimType, ruleName, confidence, confReason),
	}
}

// ClassifyAll classifies every span, preserving input order
func (c *Classifier) ClassifyAll(spans []extract.Span) []model.Claim {
	claims := make([]model.Claim, 0, len(spans))
	for _, s := range spans {
		claims = append(claims, c.Classify(s))
	}
	return claims
}

// assessConfidence derives the declared-certainty tier from hedging
// density. Absolute language with no hedge reads as high — which is the
// risk-bearing case, not the safe one. Each present hedge band lowers
// the tier: hedged text declares its own uncertainty.
func (c *Classifier) assessConfidence(lower string) (model.ConfidenceLevel, string) {
	hedges := 0
	for _, w := range strings.Fields(lower) {
		w = strings.Trim(w, ".,;:!?")
		for _, term := range c.hedgeWords {
			if w == term {
				hedges++
				break
			}
		}
	}
	for _, phrase := range c.hedgePhrases {
		if strings.Contains(lower, phrase) {
			hedges++
		}
	}

	level := model.ConfidenceMedium
	reason := "neutral"
	if containsAny(lower, c.absoluteTerms) {
		level = model.ConfidenceHigh
		reason = "absolute-language"
	}

	if hedges > 0 {
		level = level.Lower()
		reason = "hedged"
	}
	if hedges >= 3 {
		// Dense hedging is an explicit uncertainty declaration
		level = level.Lower()
		reason = "densely-hedged"
	}

	return level, reason
}

// HasAbsoluteLanguage reports whether the text contains one-sided
// absolute phrasing. Shared with the bias detector.
func (c *Classifier) HasAbsoluteLanguage(text string) bool {
	return containsAny(strings.ToLower(text), c.absoluteTerms)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
