package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound2(t *testing.T) {
	// The primary-company path rounds closes to exactly 2 decimal
	// places; competitor closes bypass round2 entirely.
	raw := []float64{101.236, 99.004}
	want := []float64{101.24, 99.0}

	for i, v := range raw {
		assert.Equal(t, want[i], round2(v))
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 2.68, round2(2.675))
	assert.Equal(t, -2.68, round2(-2.675))
}

func TestNewYahooClientDefaults(t *testing.T) {
	c := NewYahooClient(0, 0)
	assert.Equal(t, 3, c.historyMonths)
	assert.Equal(t, 10*time.Second, c.timeout)

	c = NewYahooClient(6, 2*time.Second)
	assert.Equal(t, 6, c.historyMonths)
	assert.Equal(t, 2*time.Second, c.timeout)
}

func TestRunWithDeadlineReturnsResult(t *testing.T) {
	v, err := runWithDeadline(context.Background(), func() (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestRunWithDeadlinePropagatesError(t *testing.T) {
	wantErr := errors.New("quote lookup failed")
	_, err := runWithDeadline(context.Background(), func() (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestRunWithDeadlineAbandonsSlowFetch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	block := make(chan struct{})
	defer close(block)

	start := time.Now()
	_, err := runWithDeadline(ctx, func() (int, error) {
		<-block
		return 0, nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunWithDeadlineCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block := make(chan struct{})
	defer close(block)

	_, err := runWithDeadline(ctx, func() (int, error) {
		<-block
		return 0, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
