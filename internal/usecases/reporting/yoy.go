package reporting

import (
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/ipay-report-api/internal/domain"
)

// YOYCutoff move a data de referência para o ano anterior; 29/02 vira 28/02
func YOYCutoff(reference time.Time) time.Time {
	year := reference.Year() - 1
	day := reference.Day()
	if reference.Month() == time.February && day == 29 {
		day = 28
	}
	return time.Date(year, reference.Month(), day, 0, 0, 0, 0, time.UTC)
}

// YOYWindow seleciona o mesmo período do ano anterior até a data de corte.
// As linhas devem vir do escopo completo da página, sem filtro de ano.
func YOYWindow(rows []domain.DailyProductMetrics, reference time.Time) (int, []domain.DailyProductMetrics) {
	previousYear := reference.Year() - 1
	cutoff := YOYCutoff(reference)

	window := filter(rows, func(row domain.DailyProductMetrics) bool {
		return row.Year == previousYear && !row.Date.After(cutoff)
	})
	return previousYear, window
}

// LatestSnapshot lê o estoque na última data presente nas linhas
func LatestSnapshot(rows []domain.DailyProductMetrics) Snapshot {
	dates := UniqueDates(rows)
	if len(dates) == 0 {
		return Snapshot{}
	}
	return SnapshotAt(rows, dates[len(dates)-1])
}

// NewYOYComparison monta a comparação anual; base zero não tem variação
func NewYOYComparison(year int, current, baseline float64, format func(float64) string) *domain.YOYComparison {
	comparison := &domain.YOYComparison{
		Year:     year,
		Baseline: baseline,
	}

	if baseline == 0 {
		comparison.Caption = yoyLabel(year) + ": N/A"
		return comparison
	}

	change := (current - baseline) / math.Abs(baseline)
	comparison.ChangePct = &change

	arrow := "▼"
	if change > 0 {
		arrow = "▲"
	}
	comparison.Caption = yoyLabel(year) + ": " + format(baseline) + "  " + arrow + " " + FormatSignedPercent(change, 1)

	return comparison
}

func yoyLabel(year int) string {
	return fmt.Sprintf("Cùng kỳ %d", year)
}
