package model

// Claim represents an atomic assertion span extracted from input text
type Claim struct {
	Text         string          `json:"text"`                // The claim text itself
	Start        int             `json:"start"`               // Byte offset of span start in source text
	End          int             `json:"end"`                 // Byte offset of span end in source text
	Sentence     int             `json:"sentence"`            // Sentence index in source (0-based)
	Type         ClaimType       `json:"type"`                // Epistemic category
	Confidence   ConfidenceLevel `json:"confidence"`          // Declared certainty tier
	SupportCount int             `json:"support_count"`       // Distinct sources corroborating the claim
	Rationale    string          `json:"rationale,omitempty"` // Which rules matched (detailed mode only)
}

// IsSingleton reports whether the claim is supported by at most one source
func (c Claim) IsSingleton() bool {
	return c.SupportCount <= 1
}

// IsSupported reports whether at least one source corroborates the claim
func (c Claim) IsSupported() bool {
	return c.SupportCount > 0
}

// ClaimType categorizes the epistemic nature of a claim
type ClaimType string

const (
	ClaimEmpirical    ClaimType = "empirical"    // Cites a measurement or verifiable data
	ClaimInferential  ClaimType = "inferential"  // Logical deduction from stated premises
	ClaimHypothetical ClaimType = "hypothetical" // Speculation, projection, conditionals
	ClaimArbitrary    ClaimType = "arbitrary"    // Bare assertion with no epistemic anchor
)

// ConfidenceLevel is the declared certainty tier of a claim, derived from
// hedging and absolute language. High confidence is not a safe result:
// high declared confidence with zero support is the strongest
// hallucination signal, not a clean bill of health.
type ConfidenceLevel string

const (
	ConfidenceHigh      ConfidenceLevel = "high"
	ConfidenceMedium    ConfidenceLevel = "medium"
	ConfidenceLow       ConfidenceLevel = "low"
	ConfidenceUncertain ConfidenceLevel = "uncertain"
)

// Lower returns the confidence tier one step below the receiver
func (l ConfidenceLevel) Lower() ConfidenceLevel {
	switch l {
	case ConfidenceHigh:
		return ConfidenceMedium
	case ConfidenceMedium:
		return ConfidenceLow
	default:
		return ConfidenceUncertain
	}
}
