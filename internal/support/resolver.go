package support

import (
	"strings"
	"unicode"
)

// similarityFloor is the fraction of a claim's key terms that must appear
// in a source for the source to count as support.
const similarityFloor = 0.5

// Resolver matches claims against a source set by lexical overlap.
// Matching is order-independent over the sources and fully deterministic:
// identical (claim, sources) pairs always produce the same support count.
type Resolver struct {
	ignore map[string]bool
}

// NewResolver creates a new support resolver
func NewResolver() *Resolver {
	return &Resolver{
		ignore: map[string]bool{
			"that": true, "this": true, "with": true, "from": true,
			"which": true, "their": true, "there": true, "these": true,
			"those": true, "about": true, "would": true, "could": true,
			"should": true, "based": true,
		},
	}
}

// SupportCount returns the number of distinct sources that clear the
// similarity floor for the given claim text. A count of 0 means
// unsupported, 1 a singleton, 2 or more cross-validated.
func (r *Resolver) SupportCount(claim string, sources []string) int {
	terms, numeric := r.keyTerms(claim)
	if len(terms)+len(numeric) < 2 {
		return 0
	}

	count := 0
	for _, source := range sources {
		if r.matches(terms, numeric, strings.ToLower(source)) {
			count++
		}
	}
	return count
}

// matches checks one claim against one source. A source supports a claim
// when at least half the claim's key terms appear in it, or when they
// share a numeric value plus at least two key terms: a shared number is
// strong corroboration on its own.
func (r *Resolver) matches(terms []string, numeric []string, source string) bool {
	shared := 0
	sharedNumeric := 0
	for _, term := range terms {
		if strings.Contains(source, term) {
			shared++
		}
	}
	for _, num := range numeric {
		if strings.Contains(source, num) {
			sharedNumeric++
		}
	}

	if float64(shared+sharedNumeric) >= float64(len(terms)+len(numeric))*similarityFloor {
		return true
	}
	return sharedNumeric >= 1 && shared+sharedNumeric >= 2
}

// keyTerms extracts the content-bearing terms of a claim: words of five
// or more characters outside the ignore list, and numeric tokens.
func (r *Resolver) keyTerms(claim string) (terms []string, numeric []string) {
	for _, tok := range strings.Fields(strings.ToLower(claim)) {
		tok = strings.TrimFunc(tok, func(c rune) bool {
			return unicode.IsPunct(c) && c != '-' && c != '%'
		})
		if tok == "" {
			continue
		}
		if strings.IndexFunc(tok, unicode.IsDigit) >= 0 {
			numeric = append(numeric, tok)
			continue
		}
		if len(tok) >= 5 && !r.ignore[tok] {
			terms = append(terms, tok)
		}
	}
	return terms, numeric
}
