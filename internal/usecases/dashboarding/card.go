package dashboarding

import (
	"context"
	"math"

	"github.com/shopspring/decimal"

	axceleratedomain "github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
)

// CardBuilder monta o card do dashboard de uma instância
type CardBuilder struct {
	resolver *RevenueResolver
}

func NewCardBuilder(resolver *RevenueResolver) *CardBuilder {
	return &CardBuilder{resolver: resolver}
}

// BuildCard devolve nil, sem erro e sem chamar o upstream, quando a
// instância não tem id
func (b *CardBuilder) BuildCard(ctx context.Context, instance record.Record, mode domain.RevenueMode) (*domain.DashboardCard, error) {
	instanceID, ok := record.String(instance, axceleratedomain.InstanceIDFields)
	if !ok {
		return nil, nil
	}

	revenue, err := b.resolver.Resolve(ctx, instanceID, mode)
	if err != nil {
		return nil, err
	}

	category, ok := record.String(instance, axceleratedomain.TrainingCategoryFields)
	if !ok {
		category = domain.UnknownTrainingCategory
	}

	numbers := revenue.Enrolments
	if explicit, ok := record.Number(instance, axceleratedomain.NumbersFields); ok {
		numbers = int(math.Round(explicit))
	}

	var capacity *int
	if value, ok := record.Number(instance, axceleratedomain.CapacityFields); ok {
		c := int(math.Round(value))
		capacity = &c
	}

	return &domain.DashboardCard{
		InstanceID:       instanceID,
		TrainingCategory: category,
		StartDate:        record.StringPtr(instance, axceleratedomain.StartDateFields),
		EndDate:          record.StringPtr(instance, axceleratedomain.EndDateFields),
		Numbers:          numbers,
		Capacity:         capacity,
		Revenue:          cardRevenue(revenue, mode),
	}, nil
}

// cardRevenue aplica o fallback invoice -> enrolment e arredonda para centavos
func cardRevenue(revenue domain.Revenue, mode domain.RevenueMode) float64 {
	value := revenue.EnrolmentRevenue
	if mode == domain.RevenueModeInvoice && revenue.InvoiceRevenue != nil {
		value = *revenue.InvoiceRevenue
	}
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
