package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipay-report-api/internal/config"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"github.com/vfg2006/ipay-report-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func TestDatasetRefreshService_refreshDataset(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m *mocks.MockDatasetRefresher)
		wantRows   int
		wantError  string
		wantCached bool
	}{
		{
			name: "Atualização com sucesso guarda a quantidade de linhas",
			setup: func(m *mocks.MockDatasetRefresher) {
				dataset := &domain.Dataset{Rows: make([]domain.DailyProductMetrics, 3)}
				m.EXPECT().Refresh(gomock.Any()).Return(dataset, nil)
				m.EXPECT().Cached().Return(dataset)
			},
			wantRows:   3,
			wantCached: true,
		},
		{
			name: "Falha descarta o cache e fica registrada no status",
			setup: func(m *mocks.MockDatasetRefresher) {
				m.EXPECT().Refresh(gomock.Any()).Return(nil, errors.New("timeout"))
				m.EXPECT().Invalidate()
				m.EXPECT().Cached().Return(nil)
			},
			wantError: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := mocks.NewMockDatasetRefresher(ctrl)
			tt.setup(refresher)

			service := NewDatasetRefreshService(refresher, config.DatasetRefresh{CronSchedule: "*/5 * * * *", Enabled: true})
			service.refreshDataset(context.Background())

			status := service.GetStatus()
			assert.Equal(t, tt.wantRows, status["last_sync_rows"])
			assert.Equal(t, tt.wantError, status["last_sync_error"])
			assert.Equal(t, false, status["sync_running"])
			assert.Equal(t, tt.wantCached, status["dataset_cached"])
			assert.False(t, status["last_sync_started_at"].(time.Time).IsZero())
		})
	}
}

func TestDatasetRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockDatasetRefresher(ctrl)

	release := make(chan struct{})
	refresher.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
		<-release
		return &domain.Dataset{Rows: make([]domain.DailyProductMetrics, 1)}, nil
	}).Times(1)
	refresher.EXPECT().Cached().Return(nil).AnyTimes()

	service := NewDatasetRefreshService(refresher, config.DatasetRefresh{})

	// Duas solicitações seguidas: a segunda já vê a primeira em andamento
	require.True(t, service.TriggerManualSync())
	assert.True(t, service.IsRunning())
	assert.False(t, service.TriggerManualSync(), "segunda solicitação deve ser recusada enquanto a primeira roda")
	assert.False(t, service.GetStatus()["last_sync_started_at"].(time.Time).IsZero())

	close(release)

	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, service.GetStatus()["last_sync_rows"])
}

func TestDatasetRefreshService_AgendadaIgnoradaDuranteManual(t *testing.T) {
	ctrl := gomock.NewController(t)
	refresher := mocks.NewMockDatasetRefresher(ctrl)

	release := make(chan struct{})
	refresher.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Dataset, error) {
		<-release
		return &domain.Dataset{}, nil
	}).Times(1)

	service := NewDatasetRefreshService(refresher, config.DatasetRefresh{})
	require.True(t, service.TriggerManualSync())

	// A execução agendada retorna na hora sem chamar Refresh
	service.refreshDataset(context.Background())

	close(release)
	assert.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 10*time.Millisecond)
}

func TestDatasetRefreshService_Start(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatasetRefresh
		wantErr bool
	}{
		{name: "Desabilitado não agenda", cfg: config.DatasetRefresh{CronSchedule: "inválido", Enabled: false}},
		{name: "Cron válido", cfg: config.DatasetRefresh{CronSchedule: "*/5 * * * *", Enabled: true}},
		{name: "Cron inválido", cfg: config.DatasetRefresh{CronSchedule: "a cada hora", Enabled: true}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			refresher := mocks.NewMockDatasetRefresher(ctrl)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			service := NewDatasetRefreshService(refresher, tt.cfg)
			err := service.Start(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
