package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"github.com/vfg2006/ipay-report-api/pkg/log"
	"github.com/vfg2006/ipay-report-api/pkg/metrics"
)

// DatasetProvider entrega a tabela de métricas já carregada
type DatasetProvider interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// Reporter define as operações de leitura do dashboard
type Reporter interface {
	// Overview monta a página de visão geral
	Overview(ctx context.Context, filters domain.ReportFilters) (*domain.OverviewReport, error)

	// ProductReport monta a página do produto identificado pelo slug
	ProductReport(ctx context.Context, slug string, filters domain.ReportFilters) (*domain.ProductReport, error)

	// DailyDetail monta a tabela diária do produto; mês zero usa o mês corrente
	DailyDetail(ctx context.Context, slug string, filters domain.DetailFilters) (*domain.DailyDetailReport, error)

	// Navigation devolve o menu lateral
	Navigation() []domain.NavigationItem

	// Periods devolve os anos disponíveis no geral e por produto
	Periods(ctx context.Context) (*domain.AvailablePeriods, error)
}

// Options parametriza o serviço de relatórios
type Options struct {
	RevenueTarget float64
	Pages         []domain.ProductPage
}

type Service struct {
	dataset DatasetProvider
	opts    Options
	now     func() time.Time
}

// NewService cria o serviço de relatórios
func NewService(dataset DatasetProvider, opts Options) *Service {
	if len(opts.Pages) == 0 {
		opts.Pages = DefaultPages(nil, DefaultPolicyFee)
	}

	return &Service{
		dataset: dataset,
		opts:    opts,
		now:     time.Now,
	}
}

func (s *Service) Overview(ctx context.Context, filters domain.ReportFilters) (*domain.OverviewReport, error) {
	defer observe(domain.PageOverview)()

	dataset, err := s.load(ctx)
	if err != nil {
		return nil, countError(domain.PageOverview, err)
	}

	report, err := BuildOverview(dataset.Rows, filters, OverviewOptions{RevenueTarget: s.opts.RevenueTarget})
	if err != nil {
		return nil, countError(domain.PageOverview, err)
	}
	return report, nil
}

func (s *Service) ProductReport(ctx context.Context, slug string, filters domain.ReportFilters) (*domain.ProductReport, error) {
	page, err := FindPage(s.opts.Pages, slug)
	if err != nil {
		return nil, err
	}
	defer observe(slug)()

	dataset, err := s.load(ctx)
	if err != nil {
		return nil, countError(slug, err)
	}

	report, err := BuildProductReport(dataset.Rows, page, filters)
	if err != nil {
		return nil, countError(slug, err)
	}
	return report, nil
}

func (s *Service) DailyDetail(ctx context.Context, slug string, filters domain.DetailFilters) (*domain.DailyDetailReport, error) {
	page, err := FindPage(s.opts.Pages, slug)
	if err != nil {
		return nil, err
	}
	defer observe(slug + "_daily")()

	if filters.Month == 0 {
		filters.Month = int(s.now().Month())
	}

	dataset, err := s.load(ctx)
	if err != nil {
		return nil, countError(slug+"_daily", err)
	}

	report, err := BuildDailyDetail(dataset.Rows, page, filters)
	if err != nil {
		return nil, countError(slug+"_daily", err)
	}
	return report, nil
}

func (s *Service) Navigation() []domain.NavigationItem {
	return Navigation(s.opts.Pages)
}

func (s *Service) Periods(ctx context.Context) (*domain.AvailablePeriods, error) {
	dataset, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	periods := &domain.AvailablePeriods{
		Years:        AvailableYears(dataset.Rows),
		ProductYears: make(map[string][]int, len(s.opts.Pages)),
	}

	for _, page := range s.opts.Pages {
		periods.ProductYears[page.ProductCode] = AvailableYears(FilterProduct(dataset.Rows, page.ProductCode))
	}

	if dates := UniqueDates(dataset.Rows); len(dates) > 0 {
		periods.LatestDate = dates[len(dates)-1].Format(time.DateOnly)
	}
	if !dataset.LoadedAt.IsZero() {
		periods.DatasetLoaded = dataset.LoadedAt.Format(time.RFC3339)
	}

	return periods, nil
}

// load lê o conjunto de dados; falhas que não são de relatório viram ErrDatasetLoad
func (s *Service) load(ctx context.Context) (*domain.Dataset, error) {
	dataset, err := s.dataset.Load(ctx)
	if err != nil {
		var reportErr *ReportError
		if errors.As(err, &reportErr) {
			return nil, reportErr
		}

		log.ForContext(ctx).WithError(err).Error("reporting: erro ao carregar o conjunto de dados")
		return nil, NewReportError(ErrDatasetLoad, err.Error())
	}
	return dataset, nil
}

func observe(report string) func() {
	timer := prometheus.NewTimer(metrics.ReportBuildDuration.WithLabelValues(report))
	return func() {
		timer.ObserveDuration()
	}
}

func countError(report string, err error) error {
	code := "unknown"
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		code = reportErr.Code
	}
	metrics.ReportErrors.WithLabelValues(report, code).Inc()
	return err
}
