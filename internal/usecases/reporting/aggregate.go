package reporting

import (
	"sort"
	"time"

	"github.com/vfg2006/ipay-report-api/internal/domain"
)

// Totals acumula apenas as métricas de fluxo
type Totals struct {
	Cash             float64
	NewPolicies      float64
	Renewals         float64
	ExpectedRenewals float64
	Cancellations    float64
}

func (t *Totals) add(row domain.DailyProductMetrics) {
	t.Cash += row.Cash
	t.NewPolicies += row.NewPolicies
	t.Renewals += row.Renewals
	t.ExpectedRenewals += row.ExpectedRenewals
	t.Cancellations += row.Cancellations
}

// CancellationRate = cancelamentos / (novas + renovações); zero sem denominador
func (t Totals) CancellationRate() float64 {
	rate, ok := t.cancellationRate()
	if !ok {
		return 0
	}
	return rate
}

func (t Totals) cancellationRate() (float64, bool) {
	denominator := t.NewPolicies + t.Renewals
	if denominator <= 0 {
		return 0, false
	}
	return t.Cancellations / denominator, true
}

// RenewalRate = renovações / renovações previstas; zero sem denominador
func (t Totals) RenewalRate() float64 {
	if t.ExpectedRenewals <= 0 {
		return 0
	}
	return t.Renewals / t.ExpectedRenewals
}

// Growth é o saldo de clientes: novas − cancelamentos − previstas + renovações
func (t Totals) Growth() float64 {
	return t.NewPolicies - t.Cancellations - t.ExpectedRenewals + t.Renewals
}

// Snapshot acumula as métricas de estoque de uma única data
type Snapshot struct {
	Active    float64
	Suspended float64
}

func (s Snapshot) Total() float64 {
	return s.Active + s.Suspended
}

// ActiveShare é a fração de clientes vigentes; zero quando não há clientes
func (s Snapshot) ActiveShare() float64 {
	if s.Total() <= 0 {
		return 0
	}
	return s.Active / s.Total()
}

func Sum(rows []domain.DailyProductMetrics) Totals {
	var totals Totals
	for _, row := range rows {
		totals.add(row)
	}
	return totals
}

// SnapshotAt soma os estoques das linhas exatamente na data informada
func SnapshotAt(rows []domain.DailyProductMetrics, date time.Time) Snapshot {
	date = domain.DateOnly(date)

	var snapshot Snapshot
	for _, row := range rows {
		if !row.Date.Equal(date) {
			continue
		}
		snapshot.Active += row.ActivePolicies
		snapshot.Suspended += row.SuspendedPolicies
	}
	return snapshot
}

// RowsOn devolve as linhas de uma data
func RowsOn(rows []domain.DailyProductMetrics, date time.Time) []domain.DailyProductMetrics {
	date = domain.DateOnly(date)
	return filter(rows, func(row domain.DailyProductMetrics) bool {
		return row.Date.Equal(date)
	})
}

// UniqueDates devolve as datas distintas em ordem crescente
func UniqueDates(rows []domain.DailyProductMetrics) []time.Time {
	seen := make(map[time.Time]struct{}, len(rows))
	dates := make([]time.Time, 0)
	for _, row := range rows {
		if _, ok := seen[row.Date]; ok {
			continue
		}
		seen[row.Date] = struct{}{}
		dates = append(dates, row.Date)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// ReferenceDates escolhe a data de referência e a anterior.
//
// O relatório é publicado com um dia de atraso, então a referência é a
// penúltima data; a anterior é a antepenúltima ou a primeira quando só há duas.
func ReferenceDates(rows []domain.DailyProductMetrics) (reference, previous time.Time, err error) {
	dates := UniqueDates(rows)
	if len(dates) < 2 {
		return time.Time{}, time.Time{}, NewReportError(ErrInsufficientData, "")
	}

	reference = dates[len(dates)-2]
	previous = dates[0]
	if len(dates) >= 3 {
		previous = dates[len(dates)-3]
	}

	return reference, previous, nil
}

// DailySeries indexa os fluxos diários por data.
// Datas ausentes leem como zero, como uma série diária contínua preenchida.
type DailySeries struct {
	byDate map[time.Time]Totals
	first  time.Time
	last   time.Time
}

func NewDailySeries(rows []domain.DailyProductMetrics) DailySeries {
	series := DailySeries{byDate: make(map[time.Time]Totals)}
	for _, row := range rows {
		totals := series.byDate[row.Date]
		totals.add(row)
		series.byDate[row.Date] = totals

		if series.first.IsZero() || row.Date.Before(series.first) {
			series.first = row.Date
		}
		if row.Date.After(series.last) {
			series.last = row.Date
		}
	}
	return series
}

// At devolve os fluxos da data deslocada em offsetDays dias corridos
func (s DailySeries) At(date time.Time, offsetDays int) Totals {
	return s.byDate[domain.DateOnly(date).AddDate(0, 0, offsetDays)]
}

func (s DailySeries) Empty() bool {
	return len(s.byDate) == 0
}

// Days percorre todos os dias corridos entre a primeira e a última data
func (s DailySeries) Days() []time.Time {
	if s.Empty() {
		return nil
	}

	days := make([]time.Time, 0, int(s.last.Sub(s.first).Hours()/24)+1)
	for day := s.first; !day.After(s.last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}
