package engine

import (
	"context"
	"sort"

	"github.com/ppiankov/lithium/internal/model"
	"github.com/ppiankov/lithium/internal/worker"
)

// ValidateText adapts Validate to the batch worker interface
func (e *Engine) ValidateText(content string, sources []string, domain model.Domain, mode model.Mode) (*model.ValidationResult, error) {
	return e.Validate(Request{Content: content, Sources: sources, Domain: domain, Mode: mode})
}

// BatchValidate validates each content independently against a shared
// source set, in parallel, and returns results in input order plus the
// summary reduction. A per-item error surfaces as a nil result slot.
func (e *Engine) BatchValidate(ctx context.Context, contents []string, sources []string, domain model.Domain, mode model.Mode) ([]*model.ValidationResult, model.BatchSummary, error) {
	cfg := e.cfg.Load()

	processor := worker.NewBatchProcessor(e, cfg.Batch.Concurrency, cfg.Batch.RatePerSecond)
	outcomes := processor.Process(ctx, contents, sources, domain, mode)

	results := make([]*model.ValidationResult, len(outcomes))
	var firstErr error
	for i, o := range outcomes {
		results[i] = o.Result
		if o.Err != nil && firstErr == nil {
			firstErr = o.Err
		}
	}

	return results, Summarize(results), firstErr
}

// Summarize is the pure reduction over an ordered result sequence:
// best/worst index by overall score, average score, pass counts, risk
// distribution and the most common flags.
func Summarize(results []*model.ValidationResult) model.BatchSummary {
	summary := model.BatchSummary{
		BestIndex:        -1,
		WorstIndex:       -1,
		RiskDistribution: make(map[model.RiskTier]int),
	}

	sum := 0.0
	counted := 0
	flagCounts := make(map[model.SignalFlag]int)
	for i, r := range results {
		if r == nil {
			continue
		}
		counted++
		sum += r.OverallScore

		if summary.BestIndex < 0 || r.OverallScore > results[summary.BestIndex].OverallScore {
			summary.BestIndex = i
		}
		if summary.WorstIndex < 0 || r.OverallScore < results[summary.WorstIndex].OverallScore {
			summary.WorstIndex = i
		}

		if r.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.RiskDistribution[r.RiskTier]++
		for _, f := range r.Flags {
			flagCounts[f]++
		}
	}

	if counted > 0 {
		summary.AverageScore = sum / float64(counted)
	}

	for f, c := range flagCounts {
		summary.CommonFlags = append(summary.CommonFlags, model.FlagCount{Flag: f, Count: c})
	}
	sort.Slice(summary.CommonFlags, func(i, j int) bool {
		if summary.CommonFlags[i].Count != summary.CommonFlags[j].Count {
			return summary.CommonFlags[i].Count > summary.CommonFlags[j].Count
		}
		return summary.CommonFlags[i].Flag < summary.CommonFlags[j].Flag
	})
	if len(summary.CommonFlags) > 5 {
		summary.CommonFlags = summary.CommonFlags[:5]
	}

	return summary
}
