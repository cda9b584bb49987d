package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("flaky")

func fastPolicy(attempts int) Policy {
	return Policy{MaxAttempts: attempts, Delay: time.Millisecond, Timeout: time.Second}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	res, attempts, err := Do(context.Background(), fastPolicy(3), func(ctx context.Context) (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", res)
	assert.Equal(t, 1, attempts)
}

func TestDoRecovers(t *testing.T) {
	calls := 0
	res, attempts, err := Do(context.Background(), fastPolicy(3), func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, errFlaky
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, res)
	assert.Equal(t, 3, attempts)
}

func TestDoExhausts(t *testing.T) {
	calls := 0
	_, attempts, err := Do(context.Background(), fastPolicy(3), func(ctx context.Context) (int, error) {
		calls++
		return 0, errFlaky
	})

	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, 3, calls)
}

func TestDoAtLeastOnce(t *testing.T) {
	_, attempts, err := Do(context.Background(), fastPolicy(0), func(ctx context.Context) (int, error) {
		return 0, errFlaky
	})

	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 1, attempts)
}

func TestDoTimeoutCountsAsFailure(t *testing.T) {
	p := Policy{MaxAttempts: 2, Delay: time.Millisecond, Timeout: 10 * time.Millisecond}

	calls := 0
	res, attempts, err := Do(context.Background(), p, func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return "second", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "second", res)
	assert.Equal(t, 2, attempts)
}

func TestDoStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	p := Policy{MaxAttempts: 5, Delay: time.Hour}

	_, attempts, err := Do(ctx, p, func(ctx context.Context) (int, error) {
		cancel()
		return 0, errFlaky
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.Equal(t, 3, p.MaxAttempts)
	assert.Equal(t, 2*time.Second, p.Delay)
}
