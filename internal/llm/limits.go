package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// LimitedProvider throttles calls to a requests-per-second budget and caps
// the duration of each call.
type LimitedProvider struct {
	inner   Provider
	limiter *rate.Limiter
	timeout time.Duration
}

// WithLimits wraps p. A zero rps disables throttling and a zero timeout
// leaves the caller's deadline untouched; with both zero p is returned as is.
func WithLimits(p Provider, rps float64, timeout time.Duration) Provider {
	if rps <= 0 && timeout <= 0 {
		return p
	}
	l := &LimitedProvider{inner: p, timeout: timeout}
	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		l.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return l
}

func (l *LimitedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if l.limiter != nil {
		if err := l.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return l.inner.Generate(ctx, req)
}

func (l *LimitedProvider) Authenticate(ctx context.Context) error {
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}
	return l.inner.Authenticate(ctx)
}

func (l *LimitedProvider) ModelID() string {
	return l.inner.ModelID()
}
