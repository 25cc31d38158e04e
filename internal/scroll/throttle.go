package scroll

import (
	"context"
	"sync/atomic"
	"time"
)

// FrameThrottle coalesces bursts of triggers into at most one call of fn per
// frame tick. fn is expected to read the latest state itself; the throttle
// carries no payload.
type FrameThrottle struct {
	ticks   <-chan time.Time
	fn      func(time.Time)
	pending atomic.Bool
}

func NewFrameThrottle(ticks <-chan time.Time, fn func(time.Time)) *FrameThrottle {
	return &FrameThrottle{ticks: ticks, fn: fn}
}

// Trigger requests an evaluation on the next tick. It returns false when one
// is already pending.
func (f *FrameThrottle) Trigger() bool {
	return f.pending.CompareAndSwap(false, true)
}

// Pending reports whether an evaluation is scheduled.
func (f *FrameThrottle) Pending() bool {
	return f.pending.Load()
}

// Run services ticks until ctx is done or the tick channel is closed. The
// pending flag is cleared before fn runs so a trigger that lands during fn
// schedules the following frame instead of being lost.
func (f *FrameThrottle) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-f.ticks:
			if !ok {
				return nil
			}
			if f.pending.CompareAndSwap(true, false) {
				f.fn(now)
			}
		}
	}
}
