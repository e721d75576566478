package axcelerateclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/AIMastersDoJo/citclocationsdashboard/internal/config"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 30 * time.Second

// Client executa as chamadas HTTP cruas contra a API do aXcelerate.
// Retentativas e limite de concorrência ficam a cargo do integrador.
type Client interface {
	SearchInstances(ctx context.Context, params SearchInstancesParams) ([]record.Record, error)
	GetEnrolments(ctx context.Context, instanceID string) ([]record.Record, error)
	GetInvoice(ctx context.Context, invoiceID string) (record.Record, error)
}

type AxcelerateClient struct {
	httpClient *http.Client
	config     config.Axcelerate
}

// NewClient cria uma nova instância do cliente do aXcelerate
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Axcelerate.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &AxcelerateClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg.Axcelerate,
	}
}

// StatusError é devolvido quando o aXcelerate responde com status diferente de 2xx
type StatusError struct {
	Code     int
	Status   string
	Endpoint string
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição para %s falhou com status: %s", e.Endpoint, e.Status)
}

// StatusCode permite que a política de retentativa classifique o erro
func (e *StatusError) StatusCode() int {
	return e.Code
}

// get executa um GET autenticado e decodifica o corpo JSON. Cada segmento
// é escapado individualmente; "/" dentro de um segmento não cria subcaminho.
func (c *AxcelerateClient) get(ctx context.Context, segments []string, query url.Values, noCache bool) (any, error) {
	endpointPath := "/" + strings.Join(segments, "/")

	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}

	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = url.PathEscape(segment)
	}
	basePath := strings.TrimSuffix(endpoint.EscapedPath(), "/")
	endpoint.RawPath = basePath + "/" + strings.Join(escaped, "/")
	endpoint.Path = strings.TrimSuffix(endpoint.Path, "/") + endpointPath
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("apitoken", c.config.APIToken)
	req.Header.Set("wstoken", c.config.WSToken)
	req.Header.Set("Accept", "application/json")
	if noCache {
		req.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao executar a requisição para %s", endpointPath)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{
			Code:     resp.StatusCode,
			Status:   resp.Status,
			Endpoint: endpointPath,
			Body:     string(body),
		}
	}

	// json.Number preserva identificadores numéricos acima de 2^53
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil, errors.Wrapf(err, "erro ao decodificar a resposta de %s", endpointPath)
	}

	return payload, nil
}
