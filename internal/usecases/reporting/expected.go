package reporting

import (
	"slices"
	"sort"
	"time"

	"github.com/vfg2006/ipay-report-api/internal/domain"
)

const (
	// Janela de comparação e de projeção de receita
	lookbackDays = 30
	// Renovações previstas alguns dias à frente já estão cobertas pelo faturamento
	renewalLeadDays  = 5
	renewalRetention = 0.9
	collectionRate   = 0.95
)

// ExpectedRevenue projeta a receita do dia a partir das vendas de 30 dias antes
// e das renovações previstas:
//
//	(novas[d-30] - cancelamentos[d-30] + 0.9*previstas[d] - previstas[d+5]) * taxa * 0.95
//	+ 0.95 * receita[d-30]
func ExpectedRevenue(series DailySeries, date time.Time, policyFee float64) float64 {
	past := series.At(date, -lookbackDays)
	current := series.At(date, 0)
	ahead := series.At(date, renewalLeadDays)

	policies := past.NewPolicies - past.Cancellations + current.ExpectedRenewals*renewalRetention - ahead.ExpectedRenewals
	return policies*policyFee*collectionRate + past.Cash*collectionRate
}

func periodKey(date time.Time) string {
	return date.Format("2006-01")
}

// MonthlyRevenueVsExpected soma realizado e projetado por mês.
// A projeção usa todo o histórico do produto; years filtra apenas os meses exibidos.
func MonthlyRevenueVsExpected(productRows []domain.DailyProductMetrics, years []int, policyFee float64) []domain.PeriodComparison {
	series := NewDailySeries(productRows)

	byPeriod := make(map[string]*domain.PeriodComparison)
	for _, day := range series.Days() {
		if len(years) > 0 && !slices.Contains(years, day.Year()) {
			continue
		}

		key := periodKey(day)
		entry, ok := byPeriod[key]
		if !ok {
			entry = &domain.PeriodComparison{Period: key}
			byPeriod[key] = entry
		}

		entry.Actual += series.At(day, 0).Cash
		entry.Expected += ExpectedRevenue(series, day, policyFee)
	}

	return sortedPeriods(byPeriod)
}

// MonthlyRenewalsVsExpected soma renovações realizadas e previstas por mês
func MonthlyRenewalsVsExpected(rows []domain.DailyProductMetrics) []domain.PeriodComparison {
	byPeriod := make(map[string]*domain.PeriodComparison)
	for _, row := range rows {
		key := periodKey(row.Date)
		entry, ok := byPeriod[key]
		if !ok {
			entry = &domain.PeriodComparison{Period: key}
			byPeriod[key] = entry
		}

		entry.Actual += row.Renewals
		entry.Expected += row.ExpectedRenewals
	}

	return sortedPeriods(byPeriod)
}

// MonthlyCancellationRate calcula a taxa de cancelamento de cada mês; nil sem denominador
func MonthlyCancellationRate(rows []domain.DailyProductMetrics) []domain.PeriodRate {
	byPeriod := make(map[string]*Totals)
	for _, row := range rows {
		key := periodKey(row.Date)
		totals, ok := byPeriod[key]
		if !ok {
			totals = &Totals{}
			byPeriod[key] = totals
		}
		totals.add(row)
	}

	rates := make([]domain.PeriodRate, 0, len(byPeriod))
	for period, totals := range byPeriod {
		rates = append(rates, domain.PeriodRate{
			Period: period,
			Rate:   ratePtr(totals.cancellationRate()),
		})
	}

	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Period < rates[j].Period
	})
	return rates
}

func sortedPeriods(byPeriod map[string]*domain.PeriodComparison) []domain.PeriodComparison {
	periods := make([]domain.PeriodComparison, 0, len(byPeriod))
	for _, entry := range byPeriod {
		periods = append(periods, *entry)
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period < periods[j].Period
	})
	return periods
}

func ratePtr(rate float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &rate
}
