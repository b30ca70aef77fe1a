package reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipay-report-api/internal/domain"
)

func TestBuildOverview(t *testing.T) {
	report, err := BuildOverview(overviewRows(), domain.ReportFilters{}, OverviewOptions{RevenueTarget: 320_000_000_000})
	require.NoError(t, err)

	assert.Equal(t, []int{2025}, report.Years)
	assert.Equal(t, day("2025-01-11"), report.Scorecards.ReferenceDate)
	assert.Equal(t, day("2025-01-10"), report.Scorecards.PreviousDate)
	require.Len(t, report.Scorecards.KPIs, 5)

	t.Run("Receita com meta e comparação anual", func(t *testing.T) {
		cash := report.Scorecards.KPIs[0]

		assert.Equal(t, domain.KPICash, cash.Key)
		assert.Equal(t, 7_500_000.0, cash.Value)
		assert.Equal(t, "7.5 tr", cash.Display)
		assert.Equal(t, 3_000_000.0, cash.Delta)
		assert.Equal(t, "+3.0 tr", cash.DeltaDisplay)

		require.NotNil(t, cash.YOY)
		assert.Equal(t, "Cùng kỳ 2024: 4.0 tr  ▲ +87.5%", cash.YOY.Caption)

		require.NotNil(t, cash.Progress)
		assert.InDelta(t, 7_500_000.0/320_000_000_000, cash.Progress.Ratio, 1e-12)
		assert.Equal(t, "/ 320 tỷ · 0.0%", cash.Progress.Label)
	})

	t.Run("Fluxos somados e estoque na data de referência", func(t *testing.T) {
		assert.Equal(t, 69.0, report.Scorecards.KPIs[1].Value)
		assert.Equal(t, 25.0, report.Scorecards.KPIs[1].Delta)
		assert.Equal(t, 12.0, report.Scorecards.KPIs[2].Value)

		active := report.Scorecards.KPIs[3]
		assert.Equal(t, domain.KPIActiveCustomers, active.Key)
		assert.Equal(t, 162.0, active.Value)
		assert.Equal(t, 12.0, active.Delta)
		assert.Nil(t, active.YOY)
	})

	t.Run("Taxa de cancelamento com variação diária", func(t *testing.T) {
		rate := report.Scorecards.KPIs[4]

		assert.InDelta(t, 4.0/81.0, rate.Value, 1e-9)
		assert.InDelta(t, 3.0/32.0-1.0/19.0, rate.Delta, 1e-9)
		assert.Equal(t, domain.ToneNegative, rate.DeltaTone)
	})

	t.Run("Quebra por grupo de produto", func(t *testing.T) {
		require.Len(t, report.Breakdown, 2)
		assert.Equal(t, domain.ProductDelta{
			Product:       domain.ProductCyberRisk,
			Cash:          2_000_000,
			NewPolicies:   20,
			Renewals:      6,
			ActiveChange:  10,
			Cancellations: 2,
		}, report.Breakdown[0])
		assert.Equal(t, domain.ProductOther, report.Breakdown[1].Product)
		assert.Equal(t, 2.0, report.Breakdown[1].ActiveChange)
	})

	t.Run("Gráficos", func(t *testing.T) {
		charts := report.Charts

		require.Len(t, charts.ActiveByProduct, 1)
		assert.Equal(t, 110.0, charts.ActiveByProduct[0].Active)
		assert.Equal(t, 12.0, charts.ActiveByProduct[0].Suspended)

		assert.Equal(t, []string{domain.ProductCyberRisk, domain.ProductOther}, charts.ProductOrder)

		require.Len(t, charts.CashByMonth, 12)
		assert.Equal(t, 7_500_000.0, charts.CashByMonth[0].Value)
		assert.Zero(t, charts.CashByMonth[1].Value)

		require.Len(t, charts.CancellationByProduct, 1)
		require.NotNil(t, charts.CancellationByProduct[0].Rate)
		assert.InDelta(t, 3.0/71.0, *charts.CancellationByProduct[0].Rate, 1e-9)
	})
}

func TestBuildOverview_Filtros(t *testing.T) {
	t.Run("Todos os anos inclui o histórico nos gráficos por ano", func(t *testing.T) {
		report, err := BuildOverview(overviewRows(), domain.ReportFilters{AllYears: true}, OverviewOptions{})
		require.NoError(t, err)

		assert.Nil(t, report.Years)
		assert.Equal(t, domain.ProductYearValue{Product: domain.ProductCyberRisk, Year: 2024, Value: 13_000_000}, report.Charts.CashByProductYear[0])
		assert.Len(t, report.Charts.CashByMonth, 24)
		assert.Nil(t, report.Scorecards.KPIs[0].Progress)
	})

	t.Run("Filtro de produto afeta só os gráficos mensais", func(t *testing.T) {
		report, err := BuildOverview(overviewRows(), domain.ReportFilters{Products: []string{domain.ProductOther}}, OverviewOptions{})
		require.NoError(t, err)

		assert.Equal(t, 7_500_000.0, report.Scorecards.KPIs[0].Value)
		assert.Equal(t, 1_500_000.0, report.Charts.CashByMonth[0].Value)
	})

	t.Run("Filtro de mês afeta os gráficos por produto", func(t *testing.T) {
		report, err := BuildOverview(overviewRows(), domain.ReportFilters{Months: []int{2}}, OverviewOptions{})
		require.NoError(t, err)

		assert.Empty(t, report.Charts.CashByProductYear)
		assert.Empty(t, report.Charts.CancellationByProduct)
	})

	t.Run("Ano com uma única data", func(t *testing.T) {
		_, err := BuildOverview(overviewRows(), domain.ReportFilters{Years: []int{2023}}, OverviewOptions{})
		assert.True(t, errors.Is(err, ErrInsufficientData))
	})
}
