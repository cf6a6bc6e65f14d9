package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trendspotter/insight-engine/infrastructure/dataset"
	"github.com/trendspotter/insight-engine/infrastructure/integrator/gemini"
	"github.com/trendspotter/insight-engine/infrastructure/integrator/gemini/geminiclient"
	"github.com/trendspotter/insight-engine/internal/api"
	"github.com/trendspotter/insight-engine/internal/config"
	"github.com/trendspotter/insight-engine/internal/scheduler"
	"github.com/trendspotter/insight-engine/internal/usecases/analyzing"
	"github.com/trendspotter/insight-engine/internal/usecases/authenticating"
	"github.com/trendspotter/insight-engine/internal/usecases/narrating"
	"github.com/trendspotter/insight-engine/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loader := dataset.NewLoader()

	// Sem chave de API o pipeline roda em modo demonstração, sem narrativas
	geminiClient, err := geminiclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Warn("Cliente Gemini indisponível, executando em modo demonstração")
		geminiClient = nil
	}
	geminiIntegrator := gemini.New(cfg, geminiClient)

	analyzer := analyzing.NewService()
	narrator := narrating.NewService(geminiIntegrator)
	reportService := reporting.NewService(cfg, loader, analyzer, geminiIntegrator, narrator)

	// Primeira execução do pipeline na subida do serviço
	if _, err := reportService.Run(ctx); err != nil {
		if dataset.IsDataError(err) {
			logrus.WithError(err).Fatal("Dataset inválido, abortando")
		}
		logrus.WithError(err).Error("Erro na execução inicial do pipeline de relatórios")
	}

	reportSyncService := scheduler.NewReportSyncService(reportService, cfg)
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reprocessamento de relatórios")
	} else {
		logrus.Info("Agendador de reprocessamento de relatórios iniciado com sucesso")
	}

	authenticator := authenticating.NewService(cfg)

	server, err := api.New(cfg, reportService, reportSyncService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
