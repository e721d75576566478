package axceleratedomain

import "github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"

// UnwrapInvoice aceita a fatura como objeto, embrulhada ({"INVOICE": {...}},
// {"data": [...]}) ou como array, e devolve o primeiro registro encontrado
func UnwrapInvoice(v any) (record.Record, bool) {
	switch raw := v.(type) {
	case []any:
		for _, item := range raw {
			if rec, ok := UnwrapInvoice(item); ok {
				return rec, true
			}
		}
		return nil, false
	}

	rec, ok := record.AsRecord(v)
	if !ok {
		return nil, false
	}

	for _, key := range invoiceWrapperKeys {
		inner, exists := rec[key]
		if !exists {
			continue
		}
		switch inner.(type) {
		case []any, map[string]any, record.Record:
			if unwrapped, ok := UnwrapInvoice(inner); ok {
				return unwrapped, true
			}
		}
	}

	return rec, true
}

// InvoiceLines localiza a coleção de itens da fatura. Os itens podem vir
// como array, como objeto com a lista embrulhada, ou como mapa de itens.
func InvoiceLines(invoice record.Record) ([]record.Record, bool) {
	for _, name := range InvoiceLineCollectionFields {
		raw, exists := invoice[name]
		if !exists || raw == nil {
			continue
		}

		switch v := raw.(type) {
		case []any:
			return record.Records(v), true
		case map[string]any:
			for _, key := range lineWrapperKeys {
				if inner, ok := v[key]; ok {
					return record.Records(inner), true
				}
			}
			lines := record.Records(v)
			if len(lines) == 1 && isLineMap(v) {
				return linesFromMap(v), true
			}
			return lines, true
		}
	}
	return nil, false
}

// isLineMap indica um objeto cujos valores são os próprios itens,
// por exemplo {"1": {...}, "2": {...}}
func isLineMap(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for _, v := range m {
		if _, ok := record.AsRecord(v); !ok {
			return false
		}
	}
	return true
}

func linesFromMap(m map[string]any) []record.Record {
	lines := make([]record.Record, 0, len(m))
	for _, v := range m {
		if rec, ok := record.AsRecord(v); ok {
			lines = append(lines, rec)
		}
	}
	return lines
}
