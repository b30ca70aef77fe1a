package reporting

import (
	"github.com/vfg2006/ipay-report-api/internal/domain"
)

// BuildProductReport monta a página de um produto. Todas as páginas de produto
// compartilham a mesma composição; só mudam o código, a taxa e o cartão principal.
func BuildProductReport(rows []domain.DailyProductMetrics, page domain.ProductPage, filters domain.ReportFilters) (*domain.ProductReport, error) {
	productRows := FilterProduct(rows, page.ProductCode)
	years := ResolveYears(productRows, filters)
	selected := FilterYears(productRows, years)

	s, err := newScope(selected, productRows)
	if err != nil {
		return nil, err
	}

	headline := s.newPoliciesKPI()
	if page.Headline == domain.HeadlineGrowth {
		headline = s.growthKPI()
	}

	return &domain.ProductReport{
		Page:  page,
		Years: years,
		Scorecards: s.scorecards(
			s.cashKPI(),
			headline,
			s.activeKPI(true),
			s.cancellationRateKPI(),
			s.renewalRateKPI(),
		),
		Charts: domain.ProductCharts{
			ActiveSplit:         newActiveSplit(page.ProductCode, s.refStock),
			RevenueVsExpected:   MonthlyRevenueVsExpected(productRows, years, page.PolicyFee),
			CancellationByMonth: MonthlyCancellationRate(selected),
			RenewalsVsExpected:  MonthlyRenewalsVsExpected(selected),
		},
	}, nil
}
