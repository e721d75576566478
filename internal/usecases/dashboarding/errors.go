package dashboarding

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Erros base do contexto de dashboard, para uso com errors.Is
var (
	ErrInvalidQuery = errors.New("invalid dashboard query")
	ErrUpstream     = errors.New("error fetching data from aXcelerate")
)

// ValidationError é devolvido quando os parâmetros da consulta são inválidos.
// Nenhuma chamada ao upstream é feita nesse caso.
type ValidationError struct {
	Code   string            // Código de erro para API
	Fields map[string]string // Campo -> mensagem
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidQuery.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidQuery
}

// OperationalError encerra uma sincronização inteira. O detalhe fica em Err
// e só deve ir para os logs; o chamador recebe apenas uma mensagem genérica.
type OperationalError struct {
	Err      error  // Erro original
	Code     string // Código de erro para API
	Location string // Localidade que estava sendo sincronizada
}

func (e *OperationalError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("%s (location %s): %v", ErrUpstream.Error(), e.Location, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrUpstream.Error(), e.Err)
}

// Is faz com que errors.Is(err, ErrUpstream) funcione para qualquer OperationalError
func (e *OperationalError) Is(target error) bool {
	return target == ErrUpstream
}

func (e *OperationalError) Unwrap() error {
	return e.Err
}

// Cause expõe o erro original para errors.Cause
func (e *OperationalError) Cause() error {
	return e.Err
}

// NewOperationalError cria um OperationalError para a localidade informada
func NewOperationalError(err error, code string, location string) *OperationalError {
	return &OperationalError{
		Err:      err,
		Code:     code,
		Location: location,
	}
}
