package dashboarding

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate"
	axceleratedomain "github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
)

// RevenueResolver calcula a receita de uma instância a partir das inscrições
// e, no modo invoice, das faturas referenciadas por elas
type RevenueResolver struct {
	integrator axcelerate.Integrator
}

func NewRevenueResolver(integrator axcelerate.Integrator) *RevenueResolver {
	return &RevenueResolver{integrator: integrator}
}

// Resolve sempre busca as inscrições. Falha nessa busca é devolvida ao
// chamador; falha em uma fatura contribui com zero.
func (r *RevenueResolver) Resolve(ctx context.Context, instanceID string, mode domain.RevenueMode) (domain.Revenue, error) {
	enrolments, err := r.integrator.GetEnrolments(ctx, instanceID)
	if err != nil {
		return domain.Revenue{}, errors.Wrapf(err, "buscando inscrições da instância %s", instanceID)
	}

	revenue := domain.Revenue{
		EnrolmentRevenue: EnrolmentRevenue(enrolments).InexactFloat64(),
		Enrolments:       len(enrolments),
	}

	if mode != domain.RevenueModeInvoice {
		return revenue, nil
	}

	invoiceIDs := InvoiceReferences(enrolments)
	if len(invoiceIDs) == 0 {
		return revenue, nil
	}

	total := r.invoiceRevenue(ctx, instanceID, invoiceIDs)
	if total.IsPositive() {
		value := total.InexactFloat64()
		revenue.InvoiceRevenue = &value
	}

	return revenue, nil
}

func (r *RevenueResolver) invoiceRevenue(ctx context.Context, instanceID string, invoiceIDs []string) decimal.Decimal {
	totals := make([]decimal.Decimal, len(invoiceIDs))

	var group errgroup.Group
	for i, invoiceID := range invoiceIDs {
		group.Go(func() error {
			logger := logrus.WithFields(logrus.Fields{
				"instance_id": instanceID,
				"invoice_id":  invoiceID,
			})
			totals[i] = decimal.Zero

			// roda fora da goroutine do card, então o panic é contido aqui
			defer func() {
				if rec := recover(); rec != nil {
					logger.WithField("panic", fmt.Sprint(rec)).Error("Panic ao buscar fatura, considerando valor zero")
					totals[i] = decimal.Zero
				}
			}()

			invoice, err := r.integrator.GetInvoice(ctx, invoiceID)
			if err != nil {
				logger.WithError(err).Warn("Falha ao buscar fatura, considerando valor zero")
				return nil
			}

			totals[i] = InvoiceTotal(invoice)
			return nil
		})
	}
	_ = group.Wait()

	return decimal.Sum(decimal.Zero, totals...)
}

// EnrolmentRevenue soma o custo de cada inscrição; custo ausente ou
// ilegível conta como zero
func EnrolmentRevenue(enrolments []record.Record) decimal.Decimal {
	total := decimal.Zero
	for _, enrolment := range enrolments {
		if cost, ok := record.Number(enrolment, axceleratedomain.EnrolmentCostFields); ok {
			total = total.Add(decimal.NewFromFloat(cost))
		}
	}
	return total
}

// InvoiceReferences coleta os ids de fatura distintos citados pelas
// inscrições, na ordem em que aparecem. Cada variante pode ser um valor
// único ou uma lista; objetos aninhados contribuem com o próprio id.
func InvoiceReferences(enrolments []record.Record) []string {
	seen := make(map[string]struct{})
	ids := make([]string, 0)

	for _, enrolment := range enrolments {
		for _, value := range record.Values(enrolment, axceleratedomain.InvoiceReferenceFields) {
			var id string
			var ok bool

			if nested, isRecord := record.AsRecord(value); isRecord {
				id, ok = record.String(nested, axceleratedomain.InvoiceIDFields)
			} else {
				id, ok = record.ToString(value)
			}
			if !ok {
				continue
			}

			if _, exists := seen[id]; exists {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids
}

// InvoiceTotal resolve o total de uma fatura: primeiro campo de total
// diferente de zero, senão a soma dos itens, senão o campo genérico de valor
func InvoiceTotal(invoice record.Record) decimal.Decimal {
	for _, name := range axceleratedomain.InvoiceTotalFields {
		if total, ok := record.Number(invoice, record.Fields{name}); ok && total != 0 {
			return decimal.NewFromFloat(total)
		}
	}

	if lines, ok := axceleratedomain.InvoiceLines(invoice); ok {
		sum := decimal.Zero
		for _, line := range lines {
			sum = sum.Add(LineTotal(line))
		}
		if !sum.IsZero() {
			return sum
		}
	}

	if amount, ok := record.Number(invoice, axceleratedomain.InvoiceAmountFields); ok {
		return decimal.NewFromFloat(amount)
	}

	return decimal.Zero
}

// LineTotal usa o total explícito do item ou quantidade x preço unitário.
// Quantidade ausente vale 1 e preço ausente vale 0.
func LineTotal(line record.Record) decimal.Decimal {
	if total, ok := record.Number(line, axceleratedomain.LineTotalFields); ok {
		return decimal.NewFromFloat(total)
	}

	quantity, ok := record.Number(line, axceleratedomain.LineQuantityFields)
	if !ok {
		quantity = 1
	}
	price, ok := record.Number(line, axceleratedomain.LineUnitPriceFields)
	if !ok {
		price = 0
	}

	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(price))
}
