package axcelerate

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate/axcelerateclient"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/config"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/limiter"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/retry"
)

// Integrator expõe as três consultas ao aXcelerate usadas pelo dashboard.
// Todas são repetidas em falhas transitórias; inscrições e faturas também
// passam pelo limitador de concorrência compartilhado.
type Integrator interface {
	SearchInstances(ctx context.Context, location string, start, end time.Time) ([]record.Record, error)
	GetEnrolments(ctx context.Context, instanceID string) ([]record.Record, error)
	GetInvoice(ctx context.Context, invoiceID string) (record.Record, error)
}

type AxcelerateService struct {
	cfg         *config.Config
	Client      axcelerateclient.Client
	limiter     *limiter.Limiter
	retryPolicy retry.Policy
}

func New(cfg *config.Config, client axcelerateclient.Client, gate *limiter.Limiter) Integrator {
	if gate == nil {
		gate = limiter.New(cfg.Dashboard.MaxConcurrency)
	}

	return &AxcelerateService{
		cfg:         cfg,
		Client:      client,
		limiter:     gate,
		retryPolicy: RetryPolicy(cfg.Retry),
	}
}

// RetryPolicy converte a configuração de retentativas na política usada pelo integrador
func RetryPolicy(cfg config.Retry) retry.Policy {
	policy := retry.DefaultPolicy()
	if cfg.MaxRetries >= 0 {
		policy.MaxRetries = uint64(cfg.MaxRetries)
	}
	if cfg.InitialBackoff > 0 {
		policy.InitialInterval = cfg.InitialBackoff
	}
	return policy
}

func (s *AxcelerateService) SearchInstances(ctx context.Context, location string, start, end time.Time) ([]record.Record, error) {
	params := axcelerateclient.SearchInstancesParams{
		Location:  location,
		StartDate: start,
		EndDate:   end,
		PageSize:  s.cfg.Axcelerate.PageSize,
	}

	policy := s.policyFor(logrus.Fields{"operation": "search_instances", "location": location})

	// Uma busca por localidade; não passa pelo limitador
	return retry.DoValue(ctx, policy, func() ([]record.Record, error) {
		return s.Client.SearchInstances(ctx, params)
	})
}

func (s *AxcelerateService) GetEnrolments(ctx context.Context, instanceID string) ([]record.Record, error) {
	policy := s.policyFor(logrus.Fields{"operation": "get_enrolments", "instance_id": instanceID})

	return retry.DoValue(ctx, policy, func() ([]record.Record, error) {
		return limiter.Call(ctx, s.limiter, func() ([]record.Record, error) {
			return s.Client.GetEnrolments(ctx, instanceID)
		})
	})
}

func (s *AxcelerateService) GetInvoice(ctx context.Context, invoiceID string) (record.Record, error) {
	policy := s.policyFor(logrus.Fields{"operation": "get_invoice", "invoice_id": invoiceID})

	return retry.DoValue(ctx, policy, func() (record.Record, error) {
		return limiter.Call(ctx, s.limiter, func() (record.Record, error) {
			return s.Client.GetInvoice(ctx, invoiceID)
		})
	})
}

// policyFor adiciona à política um log de cada retentativa
func (s *AxcelerateService) policyFor(fields logrus.Fields) retry.Policy {
	policy := s.retryPolicy
	policy.Notify = func(err error, wait time.Duration) {
		logrus.WithError(err).WithFields(fields).WithField("wait", wait.String()).
			Warn("Falha transitória no aXcelerate, tentando novamente")
	}
	return policy
}
