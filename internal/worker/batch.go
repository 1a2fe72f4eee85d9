package worker

import (
	"context"

	"github.com/ppiankov/lithium/internal/model"
)

// Validator validates one text against a shared source set
type Validator interface {
	ValidateText(content string, sources []string, domain model.Domain, mode model.Mode) (*model.ValidationResult, error)
}

// ValidationJob validates one indexed text from a batch
type ValidationJob struct {
	Index     int
	Content   string
	Sources   []string
	Domain    model.Domain
	Mode      model.Mode
	Validator Validator
	Throttle  *Throttle
}

// Execute runs the validation, honoring the batch throttle if one is set
func (j *ValidationJob) Execute(ctx context.Context) Result {
	if err := j.Throttle.Wait(ctx); err != nil {
		return &ValidationOutcome{Index: j.Index, Err: err}
	}

	result, err := j.Validator.ValidateText(j.Content, j.Sources, j.Domain, j.Mode)
	return &ValidationOutcome{Index: j.Index, Result: result, Err: err}
}

// ValidationOutcome is the result of one batch job
type ValidationOutcome struct {
	Index  int
	Result *model.ValidationResult
	Err    error
}

// GetError returns the job error, if any
func (o *ValidationOutcome) GetError() error {
	return o.Err
}

// BatchProcessor validates multiple texts concurrently against a shared
// source set. Each validation is independent; results are returned in
// input order regardless of completion order.
type BatchProcessor struct {
	validator   Validator
	concurrency int
	throttle    *Throttle
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(validator Validator, concurrency int, ratePerSecond float64) *BatchProcessor {
	return &BatchProcessor{
		validator:   validator,
		concurrency: concurrency,
		throttle:    NewThrottle(ratePerSecond),
	}
}

// Process validates every content string and returns outcomes ordered by
// input index
func (b *BatchProcessor) Process(ctx context.Context, contents []string, sources []string, domain model.Domain, mode model.Mode) []*ValidationOutcome {
	if len(contents) == 0 {
		return []*ValidationOutcome{}
	}

	pool := NewPool(b.concurrency, len(contents))
	pool.Start()

	for i, content := range contents {
		pool.Submit(&ValidationJob{
			Index:     i,
			Content:   content,
			Sources:   sources,
			Domain:    domain,
			Mode:      mode,
			Validator: b.validator,
			Throttle:  b.throttle,
		})
	}

	results := pool.Wait()

	ordered := make([]*ValidationOutcome, len(contents))
	for _, r := range results {
		outcome := r.(*ValidationOutcome)
		ordered[outcome.Index] = outcome
	}
	return ordered
}
