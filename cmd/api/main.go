package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/cache"
	"github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate"
	"github.com/AIMastersDoJo/citclocationsdashboard/infrastructure/integrator/axcelerate/axcelerateclient"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/api"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/config"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/scheduler"
	"github.com/AIMastersDoJo/citclocationsdashboard/internal/usecases/dashboarding"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/limiter"
	"github.com/AIMastersDoJo/citclocationsdashboard/pkg/log"
)

func main() {
	// Formato padrão até a configuração ser carregada
	log.Setup("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Limitador único para todas as chamadas de inscrições e faturas
	gate := limiter.New(cfg.Dashboard.MaxConcurrency)

	axcelerateClient := axcelerateclient.NewClient(cfg)
	axcelerateIntegrator := axcelerate.New(cfg, axcelerateClient, gate)

	dashboardCache := cache.NewDashboardCache(cfg.Dashboard.CacheTTL, nil)
	dashboardService := dashboarding.NewService(axcelerateIntegrator, dashboardCache)

	logrus.WithFields(logrus.Fields{
		"cache_ttl":       dashboardCache.TTL().String(),
		"max_concurrency": gate.Limit(),
		"max_retries":     cfg.Retry.MaxRetries,
		"initial_backoff": cfg.Retry.InitialBackoff.String(),
	}).Info("Pipeline do dashboard configurado")

	dashboardWarmupService := scheduler.NewDashboardWarmupService(dashboardService, cfg)
	if err := dashboardWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento do dashboard")
	} else {
		logrus.Info("Agendador de aquecimento do dashboard iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, dashboardWarmupService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	dashboardWarmupService.Stop()
}
