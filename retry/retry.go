package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Policy bounds how an operation is retried: at most MaxAttempts calls,
// Delay between them, and each call limited to Timeout. A timed-out call is
// an ordinary failure.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
	Timeout     time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		Delay:       2 * time.Second,
		Timeout:     30 * time.Second,
	}
}

// Do calls op until it succeeds or the policy is exhausted. It returns the
// number of calls made and the last error.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, int, error) {
	attempts := 0

	maxAttempts := p.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	operation := func() (T, error) {
		attempts++

		callCtx := ctx
		if p.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, p.Timeout)
			defer cancel()
		}

		return op(callCtx)
	}

	notify := func(err error, next time.Duration) {
		slog.WarnContext(ctx, "retrying after failure", "attempt", attempts, "next", next, "error", err)
	}

	res, err := backoff.Retry(
		ctx,
		operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(p.Delay)),
		backoff.WithMaxTries(uint(maxAttempts)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(notify),
	)

	return res, attempts, err
}
