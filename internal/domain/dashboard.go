package domain

import (
	"strconv"
	"strings"
	"time"
)

// RevenueMode define como a receita de uma instância é calculada
type RevenueMode string

const (
	RevenueModeEnrolment RevenueMode = "enrolment"
	RevenueModeInvoice   RevenueMode = "invoice"
)

// UnknownTrainingCategory é usado quando a instância não informa a categoria
const UnknownTrainingCategory = "Unknown"

// SyncQuery são os parâmetros já validados de uma sincronização do dashboard
type SyncQuery struct {
	Start       time.Time
	End         time.Time
	Locations   []string
	RevenueMode RevenueMode
}

// CacheKey identifica de forma determinística o formato da consulta.
// A ordem das localidades faz parte da chave. Cada localidade leva o
// tamanho em bytes como prefixo, então vírgulas e barras no nome não
// colidem com os separadores.
func (q SyncQuery) CacheKey() string {
	builder := strings.Builder{}
	builder.WriteString(q.Start.Format(time.DateOnly))
	builder.WriteString("|")
	builder.WriteString(q.End.Format(time.DateOnly))
	builder.WriteString("|")
	for i, location := range q.Locations {
		if i > 0 {
			builder.WriteString(",")
		}
		builder.WriteString(strconv.Itoa(len(location)))
		builder.WriteString(":")
		builder.WriteString(location)
	}
	builder.WriteString("|")
	builder.WriteString(string(q.RevenueMode))
	return builder.String()
}

// DashboardCard é o resumo normalizado de uma instância de curso
type DashboardCard struct {
	InstanceID       string  `json:"instanceID"`
	TrainingCategory string  `json:"trainingCategory"`
	StartDate        *string `json:"startDate"`
	EndDate          *string `json:"endDate"`
	Numbers          int     `json:"numbers"`
	Capacity         *int    `json:"capacity"`
	Revenue          float64 `json:"revenue"`
}

// LocationCards agrupa os cards por localidade
type LocationCards map[string][]DashboardCard

// CacheEntry é o resultado agregado guardado em cache. Nunca é alterado
// depois de criado.
type CacheEntry struct {
	Data      LocationCards
	Updated   time.Time
	ExpiresAt time.Time
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SyncResult é a resposta entregue ao chamador
type SyncResult struct {
	Cached  bool          `json:"cached"`
	Updated time.Time     `json:"updated"`
	Range   DateRange     `json:"range"`
	Data    LocationCards `json:"data"`
}

// Revenue é o resultado do cálculo de receita de uma instância.
// InvoiceRevenue é nil quando o modo não é fatura ou quando as faturas
// não somaram um valor positivo.
type Revenue struct {
	EnrolmentRevenue float64
	InvoiceRevenue   *float64
	Enrolments       int
}
