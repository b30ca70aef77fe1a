package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ipay-report-api/internal/config"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"github.com/vfg2006/ipay-report-api/pkg/metrics"
)

const (
	refreshStatusSuccess = "success"
	refreshStatusError   = "error"
	refreshStatusSkipped = "skipped"
)

// DatasetRefresher controla o cache da tabela de métricas
type DatasetRefresher interface {
	// Refresh recarrega a tabela ignorando o cache
	Refresh(ctx context.Context) (*domain.Dataset, error)
	// Invalidate descarta o cache atual
	Invalidate()
	// Cached devolve o conjunto em memória, ou nil
	Cached() *domain.Dataset
}

// DatasetRefreshService mantém o cache do conjunto de dados aquecido
type DatasetRefreshService struct {
	scheduler *gocron.Scheduler
	config    config.DatasetRefresh
	refresher DatasetRefresher
	baseCtx   context.Context

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncRows        int
	lastSyncError       string
}

// NewDatasetRefreshService cria o agendador de atualização do conjunto de dados
func NewDatasetRefreshService(refresher DatasetRefresher, cfg config.DatasetRefresh) *DatasetRefreshService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de atualização do conjunto de dados carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		refresher: refresher,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização agendada do conjunto de dados desabilitada por configuração")
		return nil
	}

	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do conjunto de dados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshDataset(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do conjunto de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do conjunto de dados")
		s.scheduler.Stop()
	}()

	return nil
}

// refreshDataset é a execução agendada; é ignorada se já houver outra em andamento
func (s *DatasetRefreshService) refreshDataset(ctx context.Context) {
	if !s.claimSync() {
		metrics.DatasetRefreshes.WithLabelValues(refreshStatusSkipped).Inc()
		logrus.Info("Atualização do conjunto de dados já em andamento, ignorando")
		return
	}
	s.runRefresh(ctx)
}

// claimSync marca a atualização como em andamento; falso se já estava
func (s *DatasetRefreshService) claimSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runRefresh executa a atualização já reivindicada por claimSync.
// Uma falha descarta o cache para que nenhuma cópia antiga continue sendo servida.
func (s *DatasetRefreshService) runRefresh(ctx context.Context) {
	startTime := time.Now()
	dataset, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.refresher.Invalidate()
	}

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false

	if err != nil {
		s.lastSyncError = err.Error()
		metrics.DatasetRefreshes.WithLabelValues(refreshStatusError).Inc()
		logrus.WithError(err).WithField("job", "dataset_refresh").Error("Erro ao atualizar o conjunto de dados")
		return
	}

	s.lastSyncError = ""
	s.lastSyncRows = len(dataset.Rows)
	s.lastSyncCompletedAt = time.Now()
	metrics.DatasetRefreshes.WithLabelValues(refreshStatusSuccess).Inc()

	logrus.WithFields(logrus.Fields{
		"job":      "dataset_refresh",
		"rows":     s.lastSyncRows,
		"duration": time.Since(startTime).String(),
	}).Info("Atualização do conjunto de dados concluída")
}

// TriggerManualSync dispara uma atualização fora do agendamento.
// Devolve falso quando já existe uma em andamento.
func (s *DatasetRefreshService) TriggerManualSync() bool {
	if !s.claimSync() {
		logrus.Info("Atualização do conjunto de dados já em andamento, ignorando solicitação manual")
		return false
	}

	s.syncMutex.Lock()
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual do conjunto de dados")
	go s.runRefresh(ctx)
	return true
}

// IsRunning informa se há uma atualização em andamento
func (s *DatasetRefreshService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_rows":         s.lastSyncRows,
		"last_sync_error":        s.lastSyncError,
		"dataset_cached":         false,
	}

	if cached := s.refresher.Cached(); cached != nil {
		status["dataset_cached"] = true
		status["dataset_loaded_at"] = cached.LoadedAt
		status["dataset_rows"] = len(cached.Rows)
	}
	return status
}
