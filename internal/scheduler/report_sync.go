package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/trendspotter/insight-engine/internal/config"
	"github.com/trendspotter/insight-engine/internal/usecases/reporting"
)

// ReportSyncConfig representa a configuração do agendador de reprocessamento de relatórios
type ReportSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReportSyncService gerencia o agendamento e execução do reprocessamento do pipeline de relatórios
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	reporter            reporting.Reporter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSyncService cria uma nova instância do serviço de reprocessamento de relatórios
func NewReportSyncService(reporter reporting.Reporter, appConfig *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		SyncEnabled:  appConfig.ReportSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		reporter:    reporter,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reprocessamento agendado de relatórios desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reprocessamento de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncReports(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reprocessamento de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reprocessamento de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara um reprocessamento fora do agendamento, em
// segundo plano. A execução não fica amarrada ao contexto da requisição
// que a disparou.
func (s *ReportSyncService) TriggerManualSync() {
	go s.syncReports(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ReportSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           running,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// syncReports executa o pipeline completo de relatórios
func (s *ReportSyncService) syncReports(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reprocessamento de relatórios já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando reprocessamento do pipeline de relatórios")

	result, err := s.reporter.Run(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao reprocessar o pipeline de relatórios")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"run_id":   result.Summary.RunID,
		"clients":  result.Summary.ClientCount,
		"period":   result.Summary.PeriodLabel,
	}).Info("Reprocessamento do pipeline de relatórios concluído")

	s.lastSyncCompletedAt = time.Now()
}
