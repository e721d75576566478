package limiter

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/semaphore"
)

const DefaultLimit = 8

// Limiter limita quantas chamadas ao upstream ficam em andamento ao mesmo
// tempo. A admissão é FIFO e não distingue o tipo de chamada.
type Limiter struct {
	sem   *semaphore.Weighted
	limit int
}

// New cria um Limiter; valores menores que 1 viram 1
func New(limit int) *Limiter {
	if limit < 1 {
		limit = 1
	}

	return &Limiter{
		sem:   semaphore.NewWeighted(int64(limit)),
		limit: limit,
	}
}

// Limit retorna o número máximo de chamadas simultâneas
func (l *Limiter) Limit() int {
	return l.limit
}

// Do aguarda uma vaga, executa fn e libera a vaga
func (l *Limiter) Do(ctx context.Context, fn func() error) error {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return errors.Wrap(err, "limiter: aguardando vaga")
	}
	defer l.sem.Release(1)

	return fn()
}

// Call é a versão de Do para funções que retornam um valor
func Call[T any](ctx context.Context, l *Limiter, fn func() (T, error)) (T, error) {
	var result T
	err := l.Do(ctx, func() error {
		value, err := fn()
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	return result, err
}
