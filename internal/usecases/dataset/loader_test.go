package dataset

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipay-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func sampleRows() []domain.DailyProductMetrics {
	return []domain.DailyProductMetrics{
		{Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), Year: 2025, ProductCode: domain.ProductTapCare, Cash: 1000},
		{Date: time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), Year: 2025, ProductCode: domain.ProductTapCare, Cash: 2000},
	}
}

// clock é um relógio manual para controlar a expiração do cache
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLoader(t *testing.T, ttl time.Duration) (*Loader, *mocks.MockProductMetricsRepository, *clock) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductMetricsRepository(ctrl)

	c := &clock{now: time.Date(2025, 1, 12, 8, 0, 0, 0, time.UTC)}
	loader := NewLoader(repo, ttl)
	loader.now = c.Now
	return loader, repo, c
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name      string
		ttl       time.Duration
		advance   time.Duration
		wantCalls int
	}{
		{name: "Segunda leitura dentro do prazo usa o cache", ttl: 5 * time.Minute, advance: time.Minute, wantCalls: 1},
		{name: "Cache expirado consulta de novo", ttl: 5 * time.Minute, advance: 5 * time.Minute, wantCalls: 2},
		{name: "Cache desligado sempre consulta", ttl: 0, advance: 0, wantCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, repo, c := newTestLoader(t, tt.ttl)
			repo.EXPECT().ListAll(gomock.Any()).Return(sampleRows(), nil).Times(tt.wantCalls)

			first, err := loader.Load(context.Background())
			require.NoError(t, err)
			assert.Len(t, first.Rows, 2)
			assert.Equal(t, c.Now(), first.LoadedAt)

			c.Advance(tt.advance)

			second, err := loader.Load(context.Background())
			require.NoError(t, err)
			assert.Len(t, second.Rows, 2)
		})
	}
}

func TestLoader_ErroNaoFicaEmCache(t *testing.T) {
	loader, repo, _ := newTestLoader(t, 5*time.Minute)

	gomock.InOrder(
		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection refused")),
		repo.EXPECT().ListAll(gomock.Any()).Return(sampleRows(), nil),
	)

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, loader.Cached())

	dataset, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, dataset.Rows, 2)
}

func TestLoader_LeiturasSimultaneasCompartilhamConsulta(t *testing.T) {
	loader, repo, _ := newTestLoader(t, 5*time.Minute)

	release := make(chan struct{})
	repo.EXPECT().ListAll(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.DailyProductMetrics, error) {
		<-release
		return sampleRows(), nil
	}).Times(1)

	const readers = 5
	var wg sync.WaitGroup
	results := make(chan *domain.Dataset, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dataset, err := loader.Load(context.Background())
			if err == nil {
				results <- dataset
			}
		}()
	}

	// Dá tempo para todos entrarem na mesma consulta
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	count := 0
	for dataset := range results {
		assert.Len(t, dataset.Rows, 2)
		count++
	}
	assert.Equal(t, readers, count)
}

func TestLoader_InvalidateERefresh(t *testing.T) {
	loader, repo, _ := newTestLoader(t, time.Hour)
	repo.EXPECT().ListAll(gomock.Any()).Return(sampleRows(), nil).Times(3)

	_, err := loader.Load(context.Background())
	require.NoError(t, err)

	loader.Invalidate()
	assert.Nil(t, loader.Cached())

	_, err = loader.Load(context.Background())
	require.NoError(t, err)

	refreshed, err := loader.Refresh(context.Background())
	require.NoError(t, err)
	assert.Same(t, refreshed, loader.Cached())
}

func TestLoader_ContextoCancelado(t *testing.T) {
	loader, repo, _ := newTestLoader(t, time.Minute)

	release := make(chan struct{})
	defer close(release)
	repo.EXPECT().ListAll(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.DailyProductMetrics, error) {
		<-release
		return sampleRows(), nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
