package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ipay-report-api/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "Bilhões", value: 1_500_000_000, want: "1.50 tỷ"},
		{name: "Exatamente um bilhão", value: 1_000_000_000, want: "1.00 tỷ"},
		{name: "Milhões", value: 2_500_000, want: "2.5 tr"},
		{name: "Abaixo de um milhão", value: 240_000, want: "0.2 tr"},
		{name: "Zero", value: 0, want: "0.0 tr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.value))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1,234,567", FormatCount(1_234_567.9))
	assert.Equal(t, "999", FormatCount(999))
	assert.Equal(t, "-1,200", FormatCount(-1_200))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.3%", FormatPercent(0.1234, 1))
	assert.Equal(t, "+1.50%", FormatSignedPercent(0.015, 2))
	assert.Equal(t, "-2.00%", FormatSignedPercent(-0.02, 2))
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+0", signed(0, FormatCount))
	assert.Equal(t, "+1,000", signed(1000, FormatCount))
	assert.Equal(t, "-5", signed(-5, FormatCount))

	assert.Equal(t, domain.TonePositive, signTone(0))
	assert.Equal(t, domain.ToneNegative, signTone(-1))
}
