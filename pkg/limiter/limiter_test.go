package limiter

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_MinimumLimit(t *testing.T) {
	assert.Equal(t, 1, New(0).Limit())
	assert.Equal(t, 1, New(-3).Limit())
	assert.Equal(t, 8, New(DefaultLimit).Limit())
}

func TestDo_NeverExceedsLimit(t *testing.T) {
	const (
		limit = 3
		calls = 20
	)

	l := New(limit)

	var inFlight, maxInFlight int64
	var wg sync.WaitGroup

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := l.Do(context.Background(), func() error {
				current := atomic.AddInt64(&inFlight, 1)
				for {
					observed := atomic.LoadInt64(&maxInFlight)
					if current <= observed || atomic.CompareAndSwapInt64(&maxInFlight, observed, current) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt64(&inFlight, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, maxInFlight, int64(limit))
	assert.Equal(t, int64(limit), maxInFlight)
}

func TestDo_ReturnsErrorFromFunction(t *testing.T) {
	l := New(1)
	expected := errors.New("falha")

	err := l.Do(context.Background(), func() error { return expected })
	assert.Equal(t, expected, err)

	// a vaga foi liberada mesmo com erro
	err = l.Do(context.Background(), func() error { return nil })
	assert.NoError(t, err)
}

func TestDo_CancelledWhileWaiting(t *testing.T) {
	l := New(1)
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_ = l.Do(context.Background(), func() error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	called := false
	err := l.Do(ctx, func() error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
	close(release)
}

func TestCall(t *testing.T) {
	l := New(2)

	value, err := Call(context.Background(), l, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, value)
}
