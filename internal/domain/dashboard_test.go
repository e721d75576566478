package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSyncQuery_CacheKey(t *testing.T) {
	start := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	query := func(mode RevenueMode, locations ...string) SyncQuery {
		return SyncQuery{Start: start, End: end, Locations: locations, RevenueMode: mode}
	}

	t.Run("Formato estável", func(t *testing.T) {
		assert.Equal(t, "2024-04-01|2024-04-30|8:Brisbane,6:Sydney|enrolment",
			query(RevenueModeEnrolment, "Brisbane", "Sydney").CacheKey())
	})

	t.Run("Separadores dentro do nome não colidem", func(t *testing.T) {
		tests := []struct {
			name string
			a, b SyncQuery
		}{
			{name: "vírgula", a: query(RevenueModeEnrolment, "a,b"), b: query(RevenueModeEnrolment, "a", "b")},
			{name: "barra vertical", a: query(RevenueModeEnrolment, "a|invoice"), b: query(RevenueModeInvoice, "a")},
			{name: "prefixo numérico", a: query(RevenueModeEnrolment, "1:a,1:b"), b: query(RevenueModeEnrolment, "a", "b")},
			{name: "lista vazia e nome vazio", a: query(RevenueModeEnrolment), b: query(RevenueModeEnrolment, "")},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				assert.NotEqual(t, tt.a.CacheKey(), tt.b.CacheKey())
			})
		}
	})

	t.Run("Ordem das localidades faz parte da chave", func(t *testing.T) {
		assert.NotEqual(t,
			query(RevenueModeEnrolment, "Brisbane", "Sydney").CacheKey(),
			query(RevenueModeEnrolment, "Sydney", "Brisbane").CacheKey())
	})
}
