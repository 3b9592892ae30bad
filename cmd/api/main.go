package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/finsight/financial-insights-api/infrastructure/dataset"
	"github.com/finsight/financial-insights-api/internal/api"
	"github.com/finsight/financial-insights-api/internal/config"
	"github.com/finsight/financial-insights-api/internal/usecases/dashboard"
	"github.com/finsight/financial-insights-api/internal/usecases/exporting"
	"github.com/finsight/financial-insights-api/internal/usecases/filtering"
	"github.com/finsight/financial-insights-api/internal/usecases/summarizing"
	"github.com/finsight/financial-insights-api/pkg/format"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := loadDataset(cfg.Dataset)
	logrus.Infof("Dataset carregado: %s", dataset.Describe(store))

	formatter, err := format.New(cfg.Display.Locale, cfg.Display.CurrencyCode)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o formatador de métricas")
	}

	resolver := filtering.NewService(store)
	summarizer := summarizing.NewService()
	dashboardService := dashboard.NewService(resolver, summarizer, formatter)
	exporterService := exporting.NewService(cfg.Export.BaseFilename)

	server, err := api.New(cfg, resolver, dashboardService, exporterService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// loadDataset carrega o dataset embarcado ou, quando configurado, um
// arquivo externo com a mesma estrutura
func loadDataset(cfg config.Dataset) dataset.Store {
	if cfg.Path != "" {
		store, err := dataset.NewFromFile(cfg.Path)
		if err != nil {
			logrus.WithError(err).Fatalf("Erro ao carregar o dataset de %s", cfg.Path)
		}
		return store
	}

	store, err := dataset.New()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset embarcado")
	}

	return store
}
