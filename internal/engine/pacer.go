package engine

import (
	"time"

	"golang.org/x/time/rate"
)

// Pacer converts wall-clock ticks into a number of steps to play.
//
// Steps accrue at rate per second. Burst is one second of steps, so a
// driver that stalls never catches up by more than a second at once.
//
// Thread-safety: Pacer inherits rate.Limiter's safety, but a Player and its
// Pacer are meant to be driven from one goroutine.
type Pacer struct {
	limiter *rate.Limiter
	rate    int
}

// NewPacer creates a pacer for opsPerSecond, empty at now: the first steps
// become due 1/opsPerSecond after now.
func NewPacer(opsPerSecond int, now time.Time) *Pacer {
	r := max(opsPerSecond, 1)
	limiter := rate.NewLimiter(rate.Limit(r), r)
	limiter.AllowN(now, r)
	return &Pacer{limiter: limiter, rate: r}
}

// Due returns how many whole steps have accrued by now and consumes them.
func (p *Pacer) Due(now time.Time) int {
	n := int(p.limiter.TokensAt(now))
	if n <= 0 {
		return 0
	}
	p.limiter.AllowN(now, n)
	return n
}

// Rate returns the current rate in operations per second.
func (p *Pacer) Rate() int {
	return p.rate
}

// SetRate changes the rate from now on. Values below 1 are clamped to 1.
func (p *Pacer) SetRate(opsPerSecond int, now time.Time) {
	r := max(opsPerSecond, 1)
	p.limiter.SetLimitAt(now, rate.Limit(r))
	p.limiter.SetBurstAt(now, r)
	p.rate = r
}
