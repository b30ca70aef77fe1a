package reporting

import (
	"fmt"

	"github.com/vfg2006/ipay-report-api/internal/domain"
)

// BuildDailyDetail monta a tabela diária de um produto para o mês e ano pedidos.
// As colunas "30NT" e a receita projetada consultam todo o histórico do produto,
// não só o mês exibido.
func BuildDailyDetail(rows []domain.DailyProductMetrics, page domain.ProductPage, filters domain.DetailFilters) (*domain.DailyDetailReport, error) {
	if filters.Month < 1 || filters.Month > 12 {
		return nil, NewReportError(ErrInvalidFilter, fmt.Sprintf("mês %d", filters.Month))
	}

	productRows := FilterProduct(rows, page.ProductCode)
	if filters.Year == 0 {
		if years := AvailableYears(productRows); len(years) > 0 {
			filters.Year = years[0]
		}
	}

	monthRows := filter(productRows, func(row domain.DailyProductMetrics) bool {
		return row.Year == filters.Year && int(row.Date.Month()) == filters.Month
	})
	if len(monthRows) == 0 {
		return nil, NewReportError(ErrNoDetailRows, fmt.Sprintf("%s %02d/%d", page.ProductCode, filters.Month, filters.Year))
	}

	history := NewDailySeries(productRows)
	month := NewDailySeries(monthRows)

	report := &domain.DailyDetailReport{
		Page:        page.Slug,
		ProductCode: page.ProductCode,
		Month:       filters.Month,
		Year:        filters.Year,
		PolicyFee:   page.PolicyFee,
		Headers:     domain.DailyDetailHeaders,
		Rows:        make([]domain.DailyDetailRow, 0),
	}

	var (
		renewals         float64
		expectedRenewals float64
		previousGrowth   *float64
	)

	for _, day := range UniqueDates(monthRows) {
		current := month.At(day, 0)
		past := history.At(day, -lookbackDays)

		row := domain.DailyDetailRow{
			Date:            day,
			Day:             day.Day(),
			Policies:        policiesFor(current.Cash, page.PolicyFee),
			Policies30:      policiesFor(past.Cash, page.PolicyFee),
			Cash:            current.Cash,
			Cash30:          past.Cash,
			ExpectedCash:    ExpectedRevenue(history, day, page.PolicyFee),
			NewPolicies:     current.NewPolicies,
			NewPolicies30:   past.NewPolicies,
			Cancellations:   current.Cancellations,
			Cancellations30: past.Cancellations,
			RenewalRate:     current.RenewalRate(),
			Growth:          current.Growth(),
		}

		row.Trends = domain.DailyTrends{
			Policies:      compareTrend(row.Policies, row.Policies30, true),
			Cash:          compareTrend(row.Cash, row.Cash30, true),
			NewPolicies:   compareTrend(row.NewPolicies, row.NewPolicies30, true),
			Cancellations: compareTrend(row.Cancellations, row.Cancellations30, false),
			Growth:        growthTrend(row.Growth, previousGrowth),
		}
		growth := row.Growth
		previousGrowth = &growth

		report.Rows = append(report.Rows, row)

		totals := &report.Totals
		totals.Policies += row.Policies
		totals.Policies30 += row.Policies30
		totals.Cash += row.Cash
		totals.Cash30 += row.Cash30
		totals.ExpectedCash += row.ExpectedCash
		totals.NewPolicies += row.NewPolicies
		totals.NewPolicies30 += row.NewPolicies30
		totals.Cancellations += row.Cancellations
		totals.Growth += row.Growth

		renewals += current.Renewals
		expectedRenewals += current.ExpectedRenewals
	}

	// Taxa do total é a razão das somas, não a média das taxas diárias
	report.Totals.RenewalRate = Totals{Renewals: renewals, ExpectedRenewals: expectedRenewals}.RenewalRate()

	return report, nil
}

func policiesFor(cash, fee float64) float64 {
	if fee <= 0 {
		return 0
	}
	return cash / fee
}

// compareTrend compara o valor com a referência; referência zero só sobe quando há valor
func compareTrend(current, reference float64, higherIsGood bool) domain.Trend {
	switch {
	case reference == 0:
		if current > 0 {
			return domain.Trend{Direction: domain.DirectionUp, Favorable: higherIsGood}
		}
		return domain.Trend{}
	case current > reference:
		return domain.Trend{Direction: domain.DirectionUp, Favorable: higherIsGood}
	case current < reference:
		return domain.Trend{Direction: domain.DirectionDown, Favorable: !higherIsGood}
	}
	return domain.Trend{}
}

// growthTrend compara com a linha anterior; a primeira linha usa o próprio sinal
func growthTrend(current float64, previous *float64) domain.Trend {
	if previous != nil {
		return compareTrend(current, *previous, true)
	}

	switch {
	case current > 0:
		return domain.Trend{Direction: domain.DirectionUp, Favorable: true}
	case current < 0:
		return domain.Trend{Direction: domain.DirectionDown, Favorable: false}
	}
	return domain.Trend{}
}
