package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ipay-report-api/infrastructure/repository"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"github.com/vfg2006/ipay-report-api/pkg/log"
	"github.com/vfg2006/ipay-report-api/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

const (
	flightKey = "dataset"

	resultHit    = "hit"
	resultMiss   = "miss"
	resultShared = "shared"
	resultError  = "error"
)

// Loader mantém a tabela de métricas em memória por um tempo limitado.
// Falhas nunca são guardadas: a próxima leitura tenta de novo.
type Loader struct {
	repo  repository.ProductMetricsRepository
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu     sync.RWMutex
	cached *domain.Dataset
}

// NewLoader cria o carregador; ttl <= 0 desliga o cache
func NewLoader(repo repository.ProductMetricsRepository, ttl time.Duration) *Loader {
	return &Loader{
		repo: repo,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Load devolve o conjunto de dados em cache ou consulta o banco.
// Leituras simultâneas sem cache compartilham uma única consulta.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	if dataset, ok := l.fresh(); ok {
		metrics.DatasetRequests.WithLabelValues(resultHit).Inc()
		return dataset, nil
	}

	result := l.group.DoChan(flightKey, func() (any, error) {
		// A consulta segue mesmo se quem a iniciou desistir; outros podem estar esperando
		return l.fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-result:
		if res.Err != nil {
			metrics.DatasetRequests.WithLabelValues(resultError).Inc()
			return nil, res.Err
		}
		if res.Shared {
			metrics.DatasetRequests.WithLabelValues(resultShared).Inc()
		} else {
			metrics.DatasetRequests.WithLabelValues(resultMiss).Inc()
		}
		return res.Val.(*domain.Dataset), nil
	}
}

// Refresh recarrega a tabela imediatamente, ignorando o cache
func (l *Loader) Refresh(ctx context.Context) (*domain.Dataset, error) {
	l.group.Forget(flightKey)

	value, err, _ := l.group.Do(flightKey, func() (any, error) {
		return l.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.(*domain.Dataset), nil
}

// Invalidate descarta o cache; a próxima leitura consulta o banco
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cached = nil
}

// Cached devolve o conjunto em memória, mesmo expirado
func (l *Loader) Cached() *domain.Dataset {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.cached
}

func (l *Loader) fresh() (*domain.Dataset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.cached == nil || l.ttl <= 0 {
		return nil, false
	}
	if l.now().Sub(l.cached.LoadedAt) >= l.ttl {
		return nil, false
	}
	return l.cached, true
}

func (l *Loader) fetch(ctx context.Context) (*domain.Dataset, error) {
	start := time.Now()

	rows, err := l.repo.ListAll(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("dataset: erro ao carregar a tabela de métricas")
		return nil, errors.Wrap(err, "erro ao carregar a tabela de métricas")
	}

	dataset := &domain.Dataset{
		Rows:     rows,
		LoadedAt: l.now(),
	}

	l.mu.Lock()
	l.cached = dataset
	l.mu.Unlock()

	elapsed := time.Since(start)
	metrics.ObserveDatasetLoad(len(rows), elapsed, dataset.LoadedAt)
	log.ForContext(ctx).WithFields(log.Fields{
		"rows":        len(rows),
		"duration_ms": elapsed.Milliseconds(),
	}).Info("dataset: tabela de métricas carregada")

	return dataset, nil
}
