package axcelerate

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate/axcelerateclient"
	"github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate/mocks"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/config"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/limiter"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/retry"
)

func testConfig() *config.Config {
	return &config.Config{
		Axcelerate: config.Axcelerate{PageSize: 50},
		Dashboard:  config.Dashboard{MaxConcurrency: 2},
		Retry:      config.Retry{MaxRetries: 2, InitialBackoff: time.Millisecond},
	}
}

// slowClient conta quantas chamadas estão em andamento ao mesmo tempo
type slowClient struct {
	inFlight atomic.Int32
	peak     atomic.Int32
}

func (c *slowClient) enter() func() {
	current := c.inFlight.Add(1)
	for {
		peak := c.peak.Load()
		if current <= peak || c.peak.CompareAndSwap(peak, current) {
			break
		}
	}
	return func() { c.inFlight.Add(-1) }
}

func (c *slowClient) SearchInstances(ctx context.Context, params axcelerateclient.SearchInstancesParams) ([]record.Record, error) {
	return nil, nil
}

func (c *slowClient) GetEnrolments(ctx context.Context, instanceID string) ([]record.Record, error) {
	defer c.enter()()
	time.Sleep(10 * time.Millisecond)
	return []record.Record{{"ENROLID": instanceID}}, nil
}

func (c *slowClient) GetInvoice(ctx context.Context, invoiceID string) (record.Record, error) {
	defer c.enter()()
	time.Sleep(10 * time.Millisecond)
	return record.Record{"INVOICEID": invoiceID}, nil
}

func TestAxcelerateService_LimitsConcurrentCalls(t *testing.T) {
	client := &slowClient{}
	service := New(testConfig(), client, limiter.New(2))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := service.GetEnrolments(context.Background(), "I1")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := service.GetInvoice(context.Background(), "INV1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, client.peak.Load(), int32(2))
	assert.Equal(t, int32(0), client.inFlight.Load())
}

func TestAxcelerateService_RetriesTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	unavailable := &axcelerateclient.StatusError{Code: http.StatusServiceUnavailable, Endpoint: "/course/enrolments"}

	gomock.InOrder(
		client.EXPECT().GetEnrolments(gomock.Any(), "I1").Return(nil, unavailable),
		client.EXPECT().GetEnrolments(gomock.Any(), "I1").Return(nil, unavailable),
		client.EXPECT().GetEnrolments(gomock.Any(), "I1").Return([]record.Record{{"ENROLID": "E1"}}, nil),
	)

	service := New(testConfig(), client, nil)
	enrolments, err := service.GetEnrolments(context.Background(), "I1")

	require.NoError(t, err)
	assert.Len(t, enrolments, 1)
}

func TestAxcelerateService_GivesUpAfterMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	unavailable := &axcelerateclient.StatusError{Code: http.StatusBadGateway, Endpoint: "/accounting/invoice/INV1"}

	client.EXPECT().GetInvoice(gomock.Any(), "INV1").Return(nil, unavailable).Times(3)

	service := New(testConfig(), client, nil)
	_, err := service.GetInvoice(context.Background(), "INV1")

	assert.ErrorIs(t, err, unavailable)
}

func TestAxcelerateService_DoesNotRetryClientErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	notFound := &axcelerateclient.StatusError{Code: http.StatusNotFound, Endpoint: "/accounting/invoice/INV9"}

	client.EXPECT().GetInvoice(gomock.Any(), "INV9").Return(nil, notFound).Times(1)

	service := New(testConfig(), client, nil)
	_, err := service.GetInvoice(context.Background(), "INV9")

	assert.ErrorIs(t, err, notFound)
}

func TestAxcelerateService_DoesNotRetryEmptyInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockClient(ctrl)
	emptyInvoice := retry.Permanent(errors.Wrap(axcelerateclient.ErrEmptyInvoice, "fatura INV7"))

	client.EXPECT().GetInvoice(gomock.Any(), "INV7").Return(nil, emptyInvoice).Times(1)

	service := New(testConfig(), client, nil)
	_, err := service.GetInvoice(context.Background(), "INV7")

	assert.ErrorIs(t, err, axcelerateclient.ErrEmptyInvoice)
}

func TestAxcelerateService_SearchInstancesPassesParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().
		SearchInstances(gomock.Any(), axcelerateclient.SearchInstancesParams{
			Location:  "Sydney",
			StartDate: start,
			EndDate:   end,
			PageSize:  50,
		}).
		Return([]record.Record{{"INSTANCEID": 1}}, nil)

	service := New(testConfig(), client, nil)
	instances, err := service.SearchInstances(context.Background(), "Sydney", start, end)

	require.NoError(t, err)
	assert.Len(t, instances, 1)
}

func TestRetryPolicy(t *testing.T) {
	policy := RetryPolicy(config.Retry{MaxRetries: 0, InitialBackoff: 50 * time.Millisecond})
	assert.Equal(t, uint64(0), policy.MaxRetries)
	assert.Equal(t, 50*time.Millisecond, policy.InitialInterval)

	policy = RetryPolicy(config.Retry{MaxRetries: -1})
	assert.Equal(t, uint64(2), policy.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, policy.InitialInterval)
}
