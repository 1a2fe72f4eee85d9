// Package domain applies per-domain structural checks on top of the core
// pipeline. A failed check contributes a flag that is folded into the QA
// sub-score; structural omissions are quality signals, never fatal errors.
package domain

import (
	"github.com/ppiankov/lithium/internal/model"
)

// Check is one required-structure check for a domain profile
type Check interface {
	Name() string
	Flag() model.SignalFlag
	Passes(lowerText string, claims []model.Claim) bool
}

// Overlay resolves profile check names to their implementations
type Overlay struct {
	checks map[string]Check
}

// NewOverlay creates an overlay with the built-in structural checks
func NewOverlay() *Overlay {
	o := &Overlay{checks: make(map[string]Check)}
	for _, c := range []Check{
		newExecutiveSummaryCheck(),
		newHypothesisCheck(),
		newPerformanceCitationCheck(),
		newCitationsCheck(),
	} {
		o.checks[c.Name()] = c
	}
	return o
}

// Apply runs the profile's structural checks in the order the profile
// lists them and returns a flag per failed check. Unknown check names are
// skipped: a profile referencing a check this build does not know about
// must not fail every validation.
func (o *Overlay) Apply(profile model.DomainProfile, lowerText string, claims []model.Claim) []model.SignalFlag {
	var flags []model.SignalFlag
	for _, name := range profile.StructureChecks {
		check, ok := o.checks[name]
		if !ok {
			continue
		}
		if !check.Passes(lowerText, claims) {
			flags = append(flags, check.Flag())
		}
	}
	return flags
}
