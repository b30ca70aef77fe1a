package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ipay-report-api/internal/domain"
)

func TestYOYCutoff(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		want      string
	}{
		{name: "Data comum", reference: "2025-01-11", want: "2024-01-11"},
		{name: "29 de fevereiro vira 28", reference: "2024-02-29", want: "2023-02-28"},
		{name: "Virada de ano", reference: "2025-12-31", want: "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, day(tt.want), YOYCutoff(day(tt.reference)))
		})
	}
}

func TestYOYWindow(t *testing.T) {
	year, window := YOYWindow(overviewRows(), day("2025-01-11"))

	assert.Equal(t, 2024, year)
	require.Len(t, window, 1)
	assert.Equal(t, day("2024-01-05"), window[0].Date)

	// A janela usa a coluna de ano e não só a data
	rows := []domain.DailyProductMetrics{
		metricsRow("2024-01-02", domain.ProductTapCare, func(r *domain.DailyProductMetrics) { r.Year = 2023 }),
	}
	_, window = YOYWindow(rows, day("2025-01-11"))
	assert.Empty(t, window)
}

func TestNewYOYComparison(t *testing.T) {
	tests := []struct {
		name        string
		current     float64
		baseline    float64
		wantCaption string
		wantChange  *float64
	}{
		{
			name:        "Base zero - sem variação",
			current:     120,
			baseline:    0,
			wantCaption: "Cùng kỳ 2024: N/A",
		},
		{
			name:        "Crescimento",
			current:     120,
			baseline:    100,
			wantCaption: "Cùng kỳ 2024: 100  ▲ +20.0%",
			wantChange:  floatPtr(0.2),
		},
		{
			name:        "Queda",
			current:     80,
			baseline:    100,
			wantCaption: "Cùng kỳ 2024: 100  ▼ -20.0%",
			wantChange:  floatPtr(-0.2),
		},
		{
			name:        "Base negativa usa o valor absoluto",
			current:     10,
			baseline:    -10,
			wantCaption: "Cùng kỳ 2024: -10  ▲ +200.0%",
			wantChange:  floatPtr(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comparison := NewYOYComparison(2024, tt.current, tt.baseline, FormatCount)

			assert.Equal(t, 2024, comparison.Year)
			assert.Equal(t, tt.baseline, comparison.Baseline)
			assert.Equal(t, tt.wantCaption, comparison.Caption)
			if tt.wantChange == nil {
				assert.Nil(t, comparison.ChangePct)
				return
			}
			require.NotNil(t, comparison.ChangePct)
			assert.InDelta(t, *tt.wantChange, *comparison.ChangePct, 1e-9)
		})
	}
}

func TestLatestSnapshot(t *testing.T) {
	assert.Equal(t, Snapshot{}, LatestSnapshot(nil))

	_, window := YOYWindow(overviewRows(), day("2025-03-01"))
	assert.Equal(t, 95.0, LatestSnapshot(window).Active)
}

func floatPtr(v float64) *float64 {
	return &v
}
