package channelpool

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleAllKeepsInputOrder(t *testing.T) {
	items := []int{5, 1, 4, 2, 3}
	outcomes := SettleAll(context.Background(), 0, items, func(ctx context.Context, n int) (int, error) {
		// later items finish first
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * 10, nil
	})

	require.Len(t, outcomes, len(items))
	for i, o := range outcomes {
		assert.Equal(t, i, o.Index)
		assert.Equal(t, items[i]*10, o.Value)
		assert.True(t, o.Fulfilled())
	}
}

func TestSettleAllWaitsForEveryItem(t *testing.T) {
	var finished atomic.Int32
	boom := errors.New("boom")

	outcomes := SettleAll(context.Background(), 0, []int{0, 1, 2, 3}, func(ctx context.Context, n int) (int, error) {
		if n == 0 {
			return 0, boom
		}
		time.Sleep(10 * time.Millisecond)
		finished.Add(1)
		return n, ctx.Err()
	})

	assert.Equal(t, int32(3), finished.Load())
	assert.Equal(t, []int{1, 2, 3}, Fulfilled(outcomes))

	failed := Rejected(outcomes)
	require.Len(t, failed, 1)
	assert.Equal(t, 0, failed[0].Index)
	assert.ErrorIs(t, failed[0].Err, boom)
}

func TestSettleAllLimit(t *testing.T) {
	var inFlight, peak atomic.Int32

	outcomes := SettleAll(context.Background(), 2, make([]struct{}, 8), func(ctx context.Context, _ struct{}) (bool, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return true, nil
	})

	assert.Len(t, Fulfilled(outcomes), 8)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestSettleAllEmpty(t *testing.T) {
	outcomes := SettleAll(context.Background(), 0, []string(nil), func(ctx context.Context, s string) (string, error) {
		t.Fatal("must not be called")
		return s, nil
	})
	assert.Empty(t, outcomes)
	assert.Empty(t, Fulfilled(outcomes))
	assert.Empty(t, Rejected(outcomes))
}
