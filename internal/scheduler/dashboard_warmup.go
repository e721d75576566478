// Package scheduler contém os agendamentos em background da aplicação
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AIMastersDoJo/citclocationsdashboard/internal/config"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/usecases/dashboarding"
)

type DashboardWarmupConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	Locations     []string
	LookaheadDays int
	RevenueMode   string
}

// DashboardWarmupService executa periodicamente a sincronização do dashboard
// para as localidades configuradas, deixando o cache pronto para a primeira
// consulta depois da expiração
type DashboardWarmupService struct {
	scheduler           *gocron.Scheduler
	dashboardService    dashboarding.DashboardService
	config              DashboardWarmupConfig
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	stopOnce            sync.Once
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDashboardWarmupService(dashboardService dashboarding.DashboardService, cfg *config.Config) *DashboardWarmupService {
	warmupConfig := DashboardWarmupConfig{
		CronSchedule:  cfg.DashboardWarmup.CronSchedule,
		SyncEnabled:   cfg.DashboardWarmup.Enabled,
		Locations:     cfg.DashboardWarmup.Locations,
		LookaheadDays: cfg.DashboardWarmup.LookaheadDays,
		RevenueMode:   cfg.DashboardWarmup.RevenueMode,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  warmupConfig.CronSchedule,
		"locations":      warmupConfig.Locations,
		"lookahead_days": warmupConfig.LookaheadDays,
	}).Info("Configuração do aquecimento do dashboard carregada")

	return &DashboardWarmupService{
		scheduler:        gocron.NewScheduler(time.Local),
		dashboardService: dashboardService,
		config:           warmupConfig,
		now:              time.Now,
	}
}

func (s *DashboardWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de aquecimento do dashboard desabilitada por configuração")
		return nil
	}
	if len(s.config.Locations) == 0 {
		logrus.Warn("Cron de aquecimento do dashboard sem localidades configuradas, não será iniciada")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de aquecimento do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.WarmupDashboard(); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento do dashboard")
		}
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar aquecimento do dashboard")
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop encerra o agendador. É chamado tanto pelo cancelamento do contexto
// quanto pelo main; só a primeira chamada tem efeito.
func (s *DashboardWarmupService) Stop() {
	s.stopOnce.Do(func() {
		if !s.scheduler.IsRunning() {
			return
		}
		logrus.Info("Parando cron de aquecimento do dashboard")
		s.scheduler.Stop()
	})
}

// WarmupDashboard sincroniza a janela [hoje, hoje+lookahead]. Se já houver
// uma execução em andamento, retorna sem fazer nada.
func (s *DashboardWarmupService) WarmupDashboard() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Aquecimento do dashboard já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	var err error
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.lastSyncError = ""
		if err != nil {
			s.lastSyncError = err.Error()
		}
		s.syncMutex.Unlock()
	}()

	query, err := dashboarding.ParseSyncQuery(s.request())
	if err != nil {
		return errors.Wrap(err, "configuração de aquecimento inválida")
	}

	logrus.WithField("cache_key", query.CacheKey()).Info("Iniciando aquecimento do dashboard")

	result, err := s.dashboardService.Sync(context.Background(), query)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"cached":    result.Cached,
		"updated":   result.Updated,
		"locations": len(result.Data),
	}).Info("Aquecimento do dashboard concluído")

	return nil
}

func (s *DashboardWarmupService) request() dashboarding.DashboardRequest {
	today := s.now()
	lookahead := s.config.LookaheadDays
	if lookahead < 0 {
		lookahead = 0
	}

	return dashboarding.DashboardRequest{
		Start:       today.Format(time.DateOnly),
		End:         today.AddDate(0, 0, lookahead).Format(time.DateOnly),
		Locations:   s.config.Locations,
		RevenueMode: s.config.RevenueMode,
	}
}

// TriggerManualSync dispara o aquecimento em background
func (s *DashboardWarmupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento do dashboard já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando aquecimento manual do dashboard")
	go func() {
		if err := s.WarmupDashboard(); err != nil {
			logrus.WithError(err).Error("Erro no aquecimento manual do dashboard")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardWarmupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_locations":         s.config.Locations,
		"sync_lookahead_days":    s.config.LookaheadDays,
		"sync_revenue_mode":      s.config.RevenueMode,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
