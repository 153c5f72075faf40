package chord

import (
	"math/rand"
	"time"
)

// newJitteredTicker returns a ticker whose period is perturbed by +/-10%,
// so a fleet of nodes started at the same moment does not run its
// maintenance ticks in lockstep.
func newJitteredTicker(interval time.Duration) *time.Ticker {
	if interval <= 0 {
		interval = time.Millisecond
	}
	jitter := time.Duration(rand.Int63n(int64(interval)/5+1)) - interval/10
	d := interval + jitter
	if d <= 0 {
		d = interval
	}
	return time.NewTicker(d)
}
