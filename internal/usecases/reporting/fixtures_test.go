package reporting

import (
	"time"

	"github.com/vfg2006/ipay-report-api/internal/domain"
)

func day(value string) time.Time {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return date
}

// metricsRow cria uma linha com data, ano e produto preenchidos
func metricsRow(date, product string, fill func(*domain.DailyProductMetrics)) domain.DailyProductMetrics {
	row := domain.DailyProductMetrics{
		Date:        day(date),
		Year:        day(date).Year(),
		ProductCode: product,
	}
	if fill != nil {
		fill(&row)
	}
	return row
}

// overviewRows tem três datas em 2025 e histórico de 2024 para a comparação anual
func overviewRows() []domain.DailyProductMetrics {
	return []domain.DailyProductMetrics{
		metricsRow("2024-01-05", domain.ProductCyberRisk, func(r *domain.DailyProductMetrics) {
			r.Cash = 4_000_000
			r.NewPolicies = 40
			r.ActivePolicies = 90
		}),
		metricsRow("2024-02-01", domain.ProductCyberRisk, func(r *domain.DailyProductMetrics) {
			r.Cash = 9_000_000
			r.ActivePolicies = 95
		}),
		metricsRow("2025-01-10", domain.ProductCyberRisk, func(r *domain.DailyProductMetrics) {
			r.Cash = 1_000_000
			r.NewPolicies = 10
			r.Renewals = 5
			r.ExpectedRenewals = 8
			r.ActivePolicies = 100
			r.SuspendedPolicies = 10
			r.Cancellations = 1
		}),
		metricsRow("2025-01-10", "OTHER_X", func(r *domain.DailyProductMetrics) {
			r.Cash = 500_000
			r.NewPolicies = 4
			r.ActivePolicies = 50
		}),
		metricsRow("2025-01-11", domain.ProductCyberRisk, func(r *domain.DailyProductMetrics) {
			r.Cash = 2_000_000
			r.NewPolicies = 20
			r.Renewals = 6
			r.ExpectedRenewals = 10
			r.ActivePolicies = 110
			r.SuspendedPolicies = 12
			r.Cancellations = 2
		}),
		metricsRow("2025-01-11", "OTHER_X", func(r *domain.DailyProductMetrics) {
			r.Cash = 1_000_000
			r.NewPolicies = 5
			r.Renewals = 1
			r.ExpectedRenewals = 1
			r.ActivePolicies = 52
			r.Cancellations = 1
		}),
		metricsRow("2025-01-12", domain.ProductCyberRisk, func(r *domain.DailyProductMetrics) {
			r.Cash = 3_000_000
			r.NewPolicies = 30
			r.ActivePolicies = 120
		}),
	}
}

// tapcareRows cobre março de 2025 com as consultas de 30 dias antes e 5 dias à frente
func tapcareRows() []domain.DailyProductMetrics {
	return []domain.DailyProductMetrics{
		metricsRow("2025-02-01", domain.ProductTapCare, func(r *domain.DailyProductMetrics) {
			r.Cash = 60_000
			r.NewPolicies = 10
			r.Cancellations = 2
		}),
		metricsRow("2025-03-03", domain.ProductTapCare, func(r *domain.DailyProductMetrics) {
			r.Cash = 120_000
			r.NewPolicies = 10
			r.Cancellations = 1
			r.Renewals = 4
			r.ExpectedRenewals = 5
		}),
		metricsRow("2025-03-04", domain.ProductTapCare, func(r *domain.DailyProductMetrics) {
			r.Cancellations = 3
		}),
		metricsRow("2025-03-08", domain.ProductTapCare, func(r *domain.DailyProductMetrics) {
			r.Cash = 30_000
			r.NewPolicies = 2
			r.Renewals = 6
			r.ExpectedRenewals = 10
		}),
		metricsRow("2025-03-08", domain.ProductISafe, func(r *domain.DailyProductMetrics) {
			r.Cash = 999_000
			r.NewPolicies = 99
		}),
	}
}

func pageFor(slug string) domain.ProductPage {
	page, err := FindPage(DefaultPages(nil, DefaultPolicyFee), slug)
	if err != nil {
		panic(err)
	}
	return page
}
