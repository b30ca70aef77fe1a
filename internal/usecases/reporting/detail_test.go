package reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipay-report-api/internal/domain"
)

func TestBuildDailyDetail(t *testing.T) {
	page := pageFor(domain.PageTapCare)

	report, err := BuildDailyDetail(tapcareRows(), page, domain.DetailFilters{Month: 3, Year: 2025})
	require.NoError(t, err)

	assert.Equal(t, domain.PageTapCare, report.Page)
	assert.Equal(t, domain.ProductTapCare, report.ProductCode)
	assert.Equal(t, domain.DailyDetailHeaders, report.Headers)
	require.Len(t, report.Rows, 3)

	t.Run("Primeira linha com colunas de 30 dias", func(t *testing.T) {
		row := report.Rows[0]

		assert.Equal(t, 3, row.Day)
		assert.Equal(t, 20.0, row.Policies)
		assert.Equal(t, 10.0, row.Policies30)
		assert.Equal(t, 120_000.0, row.Cash)
		assert.Equal(t, 60_000.0, row.Cash30)
		assert.InDelta(t, 71_250, row.ExpectedCash, 1e-6)
		assert.Equal(t, 10.0, row.NewPolicies30)
		assert.Equal(t, 2.0, row.Cancellations30)
		assert.InDelta(t, 0.8, row.RenewalRate, 1e-9)
		assert.Equal(t, 8.0, row.Growth)

		assert.Equal(t, domain.Trend{Direction: domain.DirectionUp, Favorable: true}, row.Trends.Policies)
		assert.Equal(t, domain.Trend{Direction: domain.DirectionUp, Favorable: true}, row.Trends.Cash)
		assert.Equal(t, domain.Trend{}, row.Trends.NewPolicies)
		assert.Equal(t, domain.Trend{Direction: domain.DirectionDown, Favorable: true}, row.Trends.Cancellations)
		assert.Equal(t, domain.Trend{Direction: domain.DirectionUp, Favorable: true}, row.Trends.Growth)
	})

	t.Run("Referência zero e crescimento comparado à linha anterior", func(t *testing.T) {
		row := report.Rows[1]

		assert.Equal(t, domain.Trend{}, row.Trends.Policies)
		assert.Equal(t, domain.Trend{Direction: domain.DirectionUp, Favorable: false}, row.Trends.Cancellations)
		assert.Equal(t, -3.0, row.Growth)
		assert.Equal(t, domain.Trend{Direction: domain.DirectionDown, Favorable: false}, row.Trends.Growth)

		last := report.Rows[2]
		assert.Equal(t, -2.0, last.Growth)
		assert.Equal(t, domain.Trend{Direction: domain.DirectionUp, Favorable: true}, last.Trends.Growth)
		assert.InDelta(t, 51_300, last.ExpectedCash, 1e-6)
	})

	t.Run("Linha de totais", func(t *testing.T) {
		totals := report.Totals

		assert.Equal(t, 25.0, totals.Policies)
		assert.Equal(t, 10.0, totals.Policies30)
		assert.Equal(t, 150_000.0, totals.Cash)
		assert.Equal(t, 60_000.0, totals.Cash30)
		assert.InDelta(t, 122_550, totals.ExpectedCash, 1e-6)
		assert.Equal(t, 12.0, totals.NewPolicies)
		assert.Equal(t, 10.0, totals.NewPolicies30)
		assert.Equal(t, 4.0, totals.Cancellations)
		assert.InDelta(t, 10.0/15.0, totals.RenewalRate, 1e-9)
		assert.Equal(t, 3.0, totals.Growth)
	})
}

func TestBuildDailyDetail_Erros(t *testing.T) {
	page := pageFor(domain.PageTapCare)

	tests := []struct {
		name    string
		filters domain.DetailFilters
		wantErr error
	}{
		{name: "Mês inválido", filters: domain.DetailFilters{Month: 13, Year: 2025}, wantErr: ErrInvalidFilter},
		{name: "Mês sem dados", filters: domain.DetailFilters{Month: 4, Year: 2025}, wantErr: ErrNoDetailRows},
		{name: "Ano sem dados", filters: domain.DetailFilters{Month: 3, Year: 2023}, wantErr: ErrNoDetailRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := BuildDailyDetail(tapcareRows(), page, tt.filters)

			assert.Nil(t, report)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestBuildDailyDetail_AnoPadrao(t *testing.T) {
	report, err := BuildDailyDetail(tapcareRows(), pageFor(domain.PageTapCare), domain.DetailFilters{Month: 2})

	require.NoError(t, err)
	assert.Equal(t, 2025, report.Year)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, 1, report.Rows[0].Day)
}

func TestCompareTrend(t *testing.T) {
	tests := []struct {
		name         string
		current      float64
		reference    float64
		higherIsGood bool
		want         domain.Trend
	}{
		{name: "Igual", current: 5, reference: 5, higherIsGood: true, want: domain.Trend{}},
		{name: "Subiu, maior é melhor", current: 6, reference: 5, higherIsGood: true, want: domain.Trend{Direction: domain.DirectionUp, Favorable: true}},
		{name: "Caiu, menor é melhor", current: 4, reference: 5, higherIsGood: false, want: domain.Trend{Direction: domain.DirectionDown, Favorable: true}},
		{name: "Referência zero e valor negativo", current: -1, reference: 0, higherIsGood: true, want: domain.Trend{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareTrend(tt.current, tt.reference, tt.higherIsGood))
		})
	}
}
