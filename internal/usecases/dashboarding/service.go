package dashboarding

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate"
	axceleratedomain "github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/domain"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/apiErrors"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/utils"
)

type DashboardService interface {
	Sync(ctx context.Context, query domain.SyncQuery) (*domain.SyncResult, error)
}

// Cache é o armazenamento dos resultados agregados por CacheKey
type Cache interface {
	Get(key string) (*domain.CacheEntry, bool)
	Put(key string, data domain.LocationCards) domain.CacheEntry
}

type Service struct {
	integrator axcelerate.Integrator
	cache      Cache
	builder    *CardBuilder
}

func NewService(integrator axcelerate.Integrator, cache Cache) DashboardService {
	return &Service{
		integrator: integrator,
		cache:      cache,
		builder:    NewCardBuilder(NewRevenueResolver(integrator)),
	}
}

// Sync devolve o resultado em cache quando ainda válido. Caso contrário busca
// as instâncias de cada localidade, monta os cards em paralelo e grava o
// agregado no cache. Falha na busca de instâncias aborta tudo e nada é gravado.
func (s *Service) Sync(ctx context.Context, query domain.SyncQuery) (*domain.SyncResult, error) {
	key := query.CacheKey()
	dateRange := domain.DateRange{
		Start: query.Start.Format(time.DateOnly),
		End:   query.End.Format(time.DateOnly),
	}

	if entry, ok := s.cache.Get(key); ok {
		logrus.WithField("cache_key", key).Debug("Dashboard servido do cache")
		return &domain.SyncResult{
			Cached:  true,
			Updated: entry.Updated,
			Range:   dateRange,
			Data:    entry.Data,
		}, nil
	}

	syncID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID da sincronização")
	}

	logger := logrus.WithFields(logrus.Fields{
		"sync_id":      syncID,
		"cache_key":    key,
		"revenue_mode": query.RevenueMode,
	})
	logger.Info("Iniciando sincronização do dashboard")
	startTime := time.Now()

	data := make(domain.LocationCards, len(query.Locations))
	for _, location := range query.Locations {
		cards, err := s.syncLocation(ctx, logger.WithField("location", location), location, query)
		if err != nil {
			logger.WithError(err).WithField("location", location).Error("Erro ao buscar instâncias, sincronização abortada")
			return nil, NewOperationalError(err, apiErrors.ErrExternalService, location)
		}
		data[location] = cards
	}

	entry := s.cache.Put(key, data)

	logger.WithFields(logrus.Fields{
		"locations": len(data),
		"duration":  time.Since(startTime).String(),
	}).Info("Sincronização do dashboard concluída")

	return &domain.SyncResult{
		Cached:  false,
		Updated: entry.Updated,
		Range:   dateRange,
		Data:    entry.Data,
	}, nil
}

// syncLocation monta os cards de uma localidade preservando a ordem das
// instâncias. Cards que falham ou não têm id são descartados.
func (s *Service) syncLocation(ctx context.Context, logger *logrus.Entry, location string, query domain.SyncQuery) ([]domain.DashboardCard, error) {
	instances, err := s.integrator.SearchInstances(ctx, location, query.Start, query.End)
	if err != nil {
		return nil, err
	}

	results := make([]*domain.DashboardCard, len(instances))

	var group errgroup.Group
	for i, instance := range instances {
		group.Go(func() error {
			results[i] = s.buildCard(ctx, logger, instance, query.RevenueMode)
			return nil
		})
	}
	_ = group.Wait()

	cards := make([]domain.DashboardCard, 0, len(results))
	for _, card := range results {
		if card != nil {
			cards = append(cards, *card)
		}
	}

	dropped := len(instances) - len(cards)
	entry := logger.WithFields(logrus.Fields{"instances": len(instances), "cards": len(cards)})
	if dropped > 0 {
		entry.WithField("dropped", dropped).Warn("Alguns cards foram descartados")
	} else {
		entry.Debug("Cards da localidade montados")
	}

	return cards, nil
}

// buildCard isola a falha de um card: erro ou panic viram card descartado
func (s *Service) buildCard(ctx context.Context, logger *logrus.Entry, instance record.Record, mode domain.RevenueMode) (card *domain.DashboardCard) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", fmt.Sprint(r)).Error("Panic ao montar card, card descartado")
			card = nil
		}
	}()

	card, err := s.builder.BuildCard(ctx, instance, mode)
	if err != nil {
		instanceID, _ := record.String(instance, axceleratedomain.InstanceIDFields)
		logger.WithError(err).WithField("instance_id", instanceID).Warn("Erro ao montar card, card descartado")
		return nil
	}

	return card
}
