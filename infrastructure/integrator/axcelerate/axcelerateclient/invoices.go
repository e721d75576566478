package axcelerateclient

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	axceleratedomain "github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/retry"
)

var (
	// ErrEmptyInvoice indica que a resposta não continha nenhum objeto de fatura
	ErrEmptyInvoice = errors.New("resposta de fatura sem registro")
	// ErrInvalidInvoiceID indica um identificador que não pode ser usado como segmento de caminho
	ErrInvalidInvoiceID = errors.New("identificador de fatura inválido")
)

// GetInvoice busca uma fatura pelo identificador. Falhas de conteúdo são
// permanentes e não passam por nova tentativa.
func (c *AxcelerateClient) GetInvoice(ctx context.Context, invoiceID string) (record.Record, error) {
	switch strings.TrimSpace(invoiceID) {
	case "", ".", "..":
		return nil, retry.Permanent(errors.Wrapf(ErrInvalidInvoiceID, "fatura %q", invoiceID))
	}

	payload, err := c.get(ctx, []string{"accounting", "invoice", invoiceID}, nil, false)
	if err != nil {
		return nil, err
	}

	invoice, ok := axceleratedomain.UnwrapInvoice(payload)
	if !ok {
		return nil, retry.Permanent(errors.Wrapf(ErrEmptyInvoice, "fatura %s", invoiceID))
	}

	return invoice, nil
}
