package axcelerateclient

import (
	"context"
	"net/url"

	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
)

// GetEnrolments lista as inscrições de uma instância
func (c *AxcelerateClient) GetEnrolments(ctx context.Context, instanceID string) ([]record.Record, error) {
	query := url.Values{}
	query.Set("instanceID", instanceID)

	payload, err := c.get(ctx, []string{"course", "enrolments"}, query, false)
	if err != nil {
		return nil, err
	}

	return record.Records(payload), nil
}
