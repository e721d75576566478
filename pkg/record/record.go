package record

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Record representa um registro bruto (instância, inscrição ou fatura)
// devolvido pela API de treinamentos. O schema varia entre endpoints e
// versões, então os campos são sempre lidos através de Fields.
type Record map[string]any

// Fields é a lista ordenada de variantes de nome de um mesmo campo lógico.
// A primeira variante presente e válida vence.
type Fields []string

// Kind define o formato para o qual o valor extraído é convertido
type Kind int

const (
	KindString Kind = iota
	KindNumber
)

// wrapperKeys são as chaves usadas pela API para embrulhar listas
var wrapperKeys = []string{"data", "DATA", "items", "ITEMS", "results", "RESULTS", "rows", "ROWS"}

// ExtractFirst percorre as variantes em ordem e retorna o primeiro valor
// presente que pode ser convertido para o formato pedido. Valores
// malformados são tratados como ausentes.
func ExtractFirst(rec Record, kind Kind, fields Fields) (any, bool) {
	if rec == nil {
		return nil, false
	}

	for _, name := range fields {
		raw, ok := rec[name]
		if !ok || raw == nil {
			continue
		}

		switch kind {
		case KindString:
			if s, ok := toString(raw); ok {
				return s, true
			}
		case KindNumber:
			if f, ok := toNumber(raw); ok {
				return f, true
			}
		}
	}

	return nil, false
}

// String extrai o primeiro texto não vazio (já sem espaços nas pontas)
func String(rec Record, fields Fields) (string, bool) {
	v, ok := ExtractFirst(rec, KindString, fields)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// StringPtr é como String, mas devolve nil quando o campo está ausente
func StringPtr(rec Record, fields Fields) *string {
	s, ok := String(rec, fields)
	if !ok {
		return nil
	}
	return &s
}

// Number extrai o primeiro valor numérico finito
func Number(rec Record, fields Fields) (float64, bool) {
	v, ok := ExtractFirst(rec, KindNumber, fields)
	if !ok {
		return 0, false
	}
	return v.(float64), true
}

// Values devolve todos os valores de todas as variantes presentes,
// achatando coleções. Usado quando um campo pode ser escalar ou lista.
func Values(rec Record, fields Fields) []any {
	values := make([]any, 0)
	for _, name := range fields {
		raw, ok := rec[name]
		if !ok || raw == nil {
			continue
		}

		switch v := raw.(type) {
		case []any:
			for _, item := range v {
				if item != nil {
					values = append(values, item)
				}
			}
		case []string:
			for _, item := range v {
				values = append(values, item)
			}
		default:
			values = append(values, v)
		}
	}
	return values
}

// AsRecord converte um valor decodificado de JSON em Record quando possível
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, m != nil
	case map[string]any:
		return Record(m), m != nil
	default:
		return nil, false
	}
}

// Records normaliza as formas de lista aceitas pela API: array de objetos,
// objeto com a lista embrulhada em "data"/"items"/... ou um objeto único.
func Records(v any) []Record {
	switch list := v.(type) {
	case nil:
		return []Record{}
	case []Record:
		return list
	case []map[string]any:
		out := make([]Record, 0, len(list))
		for _, item := range list {
			if item != nil {
				out = append(out, Record(item))
			}
		}
		return out
	case []any:
		out := make([]Record, 0, len(list))
		for _, item := range list {
			if rec, ok := AsRecord(item); ok {
				out = append(out, rec)
			}
		}
		return out
	}

	rec, ok := AsRecord(v)
	if !ok {
		return []Record{}
	}

	for _, key := range wrapperKeys {
		if inner, exists := rec[key]; exists {
			switch inner.(type) {
			case []any, []map[string]any, []Record:
				return Records(inner)
			}
		}
	}

	return []Record{rec}
}

// ToString converte um valor escalar em texto, seguindo as mesmas regras
// de ExtractFirst
func ToString(v any) (string, bool) {
	return toString(v)
}

func toString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		s = strings.TrimSpace(s)
		return s, s != ""
	case json.Number:
		return toString(s.String())
	case float64:
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return "", false
		}
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case float32:
		return toString(float64(s))
	case int:
		return strconv.Itoa(s), true
	case int32:
		return strconv.FormatInt(int64(s), 10), true
	case int64:
		return strconv.FormatInt(s, 10), true
	default:
		return "", false
	}
}

func toNumber(v any) (float64, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		return parseNumeric(n.String())
	case string:
		return parseNumeric(n)
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseNumeric remove tudo que não for dígito, ponto ou sinal de menos
// ("$1,795.00" -> "1795.00") antes de converter
func parseNumeric(s string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
