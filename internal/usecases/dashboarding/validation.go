package dashboarding

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/AIMastersDoJo/citclocationsdashboard/internal/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/apiErrors"
)

// DashboardRequest são os parâmetros da consulta como chegam na API
type DashboardRequest struct {
	Start       string   `json:"start" validate:"required,datetime=2006-01-02"`
	End         string   `json:"end" validate:"required,datetime=2006-01-02"`
	Locations   []string `json:"locations" validate:"required,min=1,dive,required"`
	RevenueMode string   `json:"revenueMode" validate:"omitempty,oneof=enrolment invoice"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseSyncQuery valida a requisição e a converte em SyncQuery. O modo de
// receita padrão é enrolment; localidades vazias ou repetidas são descartadas
// mantendo a ordem informada.
func ParseSyncQuery(request DashboardRequest) (domain.SyncQuery, error) {
	request.Start = strings.TrimSpace(request.Start)
	request.End = strings.TrimSpace(request.End)
	request.RevenueMode = strings.TrimSpace(request.RevenueMode)
	request.Locations = normalizeLocations(request.Locations)

	if err := validate.Struct(request); err != nil {
		return domain.SyncQuery{}, toValidationError(err)
	}

	start, err := time.Parse(time.DateOnly, request.Start)
	if err != nil {
		return domain.SyncQuery{}, invalidField("start", "data deve estar no formato YYYY-MM-DD")
	}
	end, err := time.Parse(time.DateOnly, request.End)
	if err != nil {
		return domain.SyncQuery{}, invalidField("end", "data deve estar no formato YYYY-MM-DD")
	}
	if end.Before(start) {
		return domain.SyncQuery{}, &ValidationError{
			Code:   apiErrors.ErrInvalidRequest,
			Fields: map[string]string{"end": "deve ser igual ou posterior a start"},
		}
	}

	mode := domain.RevenueModeEnrolment
	if request.RevenueMode != "" {
		mode = domain.RevenueMode(request.RevenueMode)
	}

	return domain.SyncQuery{
		Start:       start,
		End:         end,
		Locations:   request.Locations,
		RevenueMode: mode,
	}, nil
}

// SplitLocations separa a lista de localidades recebida como "a,b,c"
func SplitLocations(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func normalizeLocations(locations []string) []string {
	if len(locations) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(locations))
	normalized := make([]string, 0, len(locations))
	for _, location := range locations {
		location = strings.TrimSpace(location)
		if location == "" {
			continue
		}
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}
		normalized = append(normalized, location)
	}
	return normalized
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{
		Code:   apiErrors.ErrInvalidFormat,
		Fields: map[string]string{field: message},
	}
}

func toValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.Wrap(err, "validando consulta do dashboard")
	}

	result := &ValidationError{
		Code:   apiErrors.ErrInvalidFormat,
		Fields: make(map[string]string, len(validationErrors)),
	}

	for _, fieldErr := range validationErrors {
		name := fieldErr.Field()
		if strings.HasPrefix(fieldErr.Namespace(), "DashboardRequest.locations[") {
			name = "locations"
		}

		switch fieldErr.Tag() {
		case "required", "min":
			result.Code = apiErrors.ErrMissingRequiredData
			if name == "locations" {
				result.Fields[name] = "informe ao menos uma localidade"
			} else {
				result.Fields[name] = "campo obrigatório"
			}
		case "datetime":
			result.Fields[name] = "data deve estar no formato YYYY-MM-DD"
		case "oneof":
			result.Fields[name] = "valor deve ser um de: " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
		default:
			result.Fields[name] = "valor inválido"
		}
	}

	return result
}
