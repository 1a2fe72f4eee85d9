package domain

import (
	"regexp"
	"strings"

	"github.com/ppiankov/lithium/internal/model"
)

// lexicalCheck passes when any of its markers appears in the text
type lexicalCheck struct {
	name    string
	flag    model.SignalFlag
	markers []string
}

func (c *lexicalCheck) Name() string           { return c.name }
func (c *lexicalCheck) Flag() model.SignalFlag { return c.flag }

func (c *lexicalCheck) Passes(lowerText string, _ []model.Claim) bool {
	return containsAny(lowerText, c.markers)
}

// newExecutiveSummaryCheck requires consulting deliverables to open with
// a summarized, MECE-structured view of the findings
func newExecutiveSummaryCheck() Check {
	return &lexicalCheck{
		name: model.CheckExecutiveSummary,
		flag: model.FlagNeedsExecutiveSummary,
		markers: []string{
			"executive summary", "key findings", "in summary",
			"summary:", "key takeaways", "mece",
		},
	}
}

// newHypothesisCheck requires an explicit hypothesis statement
func newHypothesisCheck() Check {
	return &lexicalCheck{
		name: model.CheckHypothesisStatement,
		flag: model.FlagNeedsHypothesis,
		markers: []string{
			"hypothesis", "we hypothesize", "our thesis",
			"we posit", "working assumption",
		},
	}
}

var citationPattern = regexp.MustCompile(`\[\d+\]|\(\d{4}\)|\bet al\b|\bdoi\b`)

// citationMarkers are prose-level citation cues recognized alongside the
// bracketed/DOI pattern
var citationMarkers = []string{
	"according to", "source:", "sources:", "as reported by", "cited in",
}

func hasCitation(lower string) bool {
	return citationPattern.MatchString(lower) || containsAny(lower, citationMarkers)
}

// performanceCitationCheck requires a citation marker whenever any claim
// asserts a performance outcome. Text with no performance claims passes.
type performanceCitationCheck struct{}

func newPerformanceCitationCheck() Check { return &performanceCitationCheck{} }

func (c *performanceCitationCheck) Name() string           { return model.CheckPerformanceCitation }
func (c *performanceCitationCheck) Flag() model.SignalFlag { return model.FlagNeedsPerformanceCitation }

var performanceTerms = []string{
	"faster", "slower", "latency", "throughput", "performance",
	"x speedup", "times faster", "benchmark", "qps", "requests per second",
}

func (c *performanceCitationCheck) Passes(lowerText string, claims []model.Claim) bool {
	hasPerfClaim := false
	for _, claim := range claims {
		if containsAny(strings.ToLower(claim.Text), performanceTerms) {
			hasPerfClaim = true
			break
		}
	}
	if !hasPerfClaim {
		return true
	}
	return hasCitation(lowerText)
}

// citationsCheck requires at least one citation marker anywhere
type citationsCheck struct{}

func newCitationsCheck() Check { return &citationsCheck{} }

func (c *citationsCheck) Name() string           { return model.CheckCitations }
func (c *citationsCheck) Flag() model.SignalFlag { return model.FlagNeedsCitations }

func (c *citationsCheck) Passes(lowerText string, _ []model.Claim) bool {
	return hasCitation(lowerText)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
