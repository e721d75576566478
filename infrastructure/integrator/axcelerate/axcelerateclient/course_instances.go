package axcelerateclient

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
)

const defaultPageSize = 100

type SearchInstancesParams struct {
	Location  string
	StartDate time.Time
	EndDate   time.Time
	PageSize  int
}

// SearchInstances busca as instâncias de uma localidade com início dentro da janela.
// A busca ignora o cache do lado do aXcelerate.
func (c *AxcelerateClient) SearchInstances(ctx context.Context, params SearchInstancesParams) ([]record.Record, error) {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	query := url.Values{}
	query.Set("location", params.Location)
	query.Set("startDate_min", params.StartDate.Format(time.DateOnly))
	query.Set("startDate_max", params.EndDate.Format(time.DateOnly))
	query.Set("displayLength", strconv.Itoa(pageSize))

	payload, err := c.get(ctx, []string{"course", "instance", "search"}, query, true)
	if err != nil {
		return nil, err
	}

	return record.Records(payload), nil
}
