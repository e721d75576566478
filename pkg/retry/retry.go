package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
)

const (
	DefaultMaxRetries      = 2
	DefaultInitialInterval = 200 * time.Millisecond
)

// Policy descreve quantas vezes e com que espera uma chamada é repetida
type Policy struct {
	MaxRetries      uint64
	InitialInterval time.Duration

	// Timer e Notify são opcionais; usados principalmente em testes
	Timer  backoff.Timer
	Notify backoff.Notify
}

// DefaultPolicy retorna a política padrão: 3 tentativas, esperas de 200ms e 400ms
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:      DefaultMaxRetries,
		InitialInterval: DefaultInitialInterval,
	}
}

// StatusCoder é implementado por erros que carregam um status HTTP
type StatusCoder interface {
	StatusCode() int
}

// StatusCode extrai o status HTTP de um erro, se houver
func StatusCode(err error) (int, bool) {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode(), true
	}
	return 0, false
}

// PermanentError marca falhas que não mudam com nova tentativa, como uma
// resposta 2xx sem conteúdo utilizável
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }

func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent embrulha err para que Do o devolva sem repetir
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsRetryable indica se a falha é transitória: sem status ou status >= 500,
// e não marcada como permanente
func IsRetryable(err error) bool {
	var permanent *PermanentError
	if errors.As(err, &permanent) {
		return false
	}
	code, ok := StatusCode(err)
	return !ok || code >= 500
}

// Do executa op com backoff exponencial. Falhas não transitórias (4xx)
// são devolvidas na primeira ocorrência; ao esgotar as tentativas, o
// último erro é devolvido.
func Do(ctx context.Context, policy Policy, op func() error) error {
	operation := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.WithContext(backoff.WithMaxRetries(newExponential(policy), policy.MaxRetries), ctx)

	if policy.Timer != nil {
		return backoff.RetryNotifyWithTimer(operation, b, policy.Notify, policy.Timer)
	}
	return backoff.RetryNotify(operation, b, policy.Notify)
}

// DoValue é a versão de Do para chamadas que retornam um valor
func DoValue[T any](ctx context.Context, policy Policy, op func() (T, error)) (T, error) {
	var result T
	err := Do(ctx, policy, func() error {
		value, err := op()
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	return result, err
}

func newExponential(policy Policy) *backoff.ExponentialBackOff {
	interval := policy.InitialInterval
	if interval <= 0 {
		interval = DefaultInitialInterval
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = time.Hour
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
