package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// Throttle bounds batch throughput in validations per second. A nil
// throttle or a rate of zero means unlimited.
type Throttle struct {
	limiter *rate.Limiter
}

// NewThrottle creates a throttle. ratePerSecond <= 0 disables it.
func NewThrottle(ratePerSecond float64) *Throttle {
	if ratePerSecond <= 0 {
		return nil
	}
	burst := int(ratePerSecond)
	if burst < 1 {
		burst = 1
	}
	return &Throttle{limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst)}
}

// Wait blocks until the next validation may start
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil {
		return nil
	}
	return t.limiter.Wait(ctx)
}
