package retry

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusError struct {
	code int
}

func (e *statusError) Error() string   { return fmt.Sprintf("status %d", e.code) }
func (e *statusError) StatusCode() int { return e.code }

// instantTimer dispara imediatamente e guarda as esperas pedidas
type instantTimer struct {
	waits []time.Duration
	c     chan time.Time
}

func (t *instantTimer) Start(d time.Duration) {
	t.waits = append(t.waits, d)
	t.c = make(chan time.Time, 1)
	t.c <- time.Now()
}

func (t *instantTimer) Stop() {}

func (t *instantTimer) C() <-chan time.Time { return t.c }

func TestDo_RetriesServerErrorsUntilSuccess(t *testing.T) {
	timer := &instantTimer{}
	policy := DefaultPolicy()
	policy.Timer = timer

	attempts := 0
	err := Do(context.Background(), policy, func() error {
		attempts++
		if attempts < 3 {
			return &statusError{code: 503}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, []time.Duration{200 * time.Millisecond, 400 * time.Millisecond}, timer.waits)
}

func TestDo_ExhaustedBudgetReturnsLastError(t *testing.T) {
	timer := &instantTimer{}
	policy := DefaultPolicy()
	policy.Timer = timer

	attempts := 0
	err := Do(context.Background(), policy, func() error {
		attempts++
		return &statusError{code: 500 + attempts}
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)
	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, 503, code)
	assert.Len(t, timer.waits, 2)
}

func TestDo_ClientErrorIsNotRetried(t *testing.T) {
	timer := &instantTimer{}
	policy := DefaultPolicy()
	policy.Timer = timer

	attempts := 0
	err := Do(context.Background(), policy, func() error {
		attempts++
		return errors.Wrap(&statusError{code: 404}, "fatura não encontrada")
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, timer.waits)
	code, _ := StatusCode(err)
	assert.Equal(t, 404, code)
}

func TestDo_PermanentErrorIsNotRetried(t *testing.T) {
	timer := &instantTimer{}
	policy := DefaultPolicy()
	policy.Timer = timer

	emptyInvoice := errors.New("fatura vazia")

	attempts := 0
	err := Do(context.Background(), policy, func() error {
		attempts++
		return Permanent(errors.Wrap(emptyInvoice, "fatura INV-1"))
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Empty(t, timer.waits)
	assert.ErrorIs(t, err, emptyInvoice)
}

func TestDo_ErrorWithoutStatusIsRetried(t *testing.T) {
	timer := &instantTimer{}
	policy := DefaultPolicy()
	policy.Timer = timer

	attempts := 0
	err := Do(context.Background(), policy, func() error {
		attempts++
		if attempts == 1 {
			return errors.New("connection reset by peer")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDo_RealTimerWaitsBetweenAttempts(t *testing.T) {
	policy := Policy{MaxRetries: 1, InitialInterval: 20 * time.Millisecond}

	var waits []time.Duration
	policy.Notify = func(_ error, d time.Duration) {
		waits = append(waits, d)
	}

	start := time.Now()
	attempts := 0
	err := Do(context.Background(), policy, func() error {
		attempts++
		if attempts == 1 {
			return &statusError{code: 502}
		}
		return nil
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, []time.Duration{20 * time.Millisecond}, waits)
}

func TestDoValue(t *testing.T) {
	policy := DefaultPolicy()
	policy.Timer = &instantTimer{}

	attempts := 0
	value, err := DoValue(context.Background(), policy, func() (string, error) {
		attempts++
		if attempts == 1 {
			return "", &statusError{code: 500}
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", value)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("timeout")))
	assert.True(t, IsRetryable(&statusError{code: 500}))
	assert.True(t, IsRetryable(&statusError{code: 503}))
	assert.False(t, IsRetryable(&statusError{code: 400}))
	assert.False(t, IsRetryable(&statusError{code: 429}))
	assert.False(t, IsRetryable(Permanent(errors.New("vazia"))))
	assert.False(t, IsRetryable(errors.Wrap(Permanent(&statusError{code: 503}), "fatura")))
	assert.Nil(t, Permanent(nil))
}
