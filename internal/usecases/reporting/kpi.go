package reporting

import (
	"math"
	"time"

	"github.com/vfg2006/ipay-report-api/internal/domain"
)

const growthTooltip = "Cấp mới − Hủy − Tái tục dự kiến + Tái tục thực tế"

// scope reúne os recortes que alimentam os cartões de uma página
type scope struct {
	rows      []domain.DailyProductMetrics
	reference time.Time
	previous  time.Time

	totals     Totals
	refTotals  Totals
	prevTotals Totals
	refStock   Snapshot
	prevStock  Snapshot

	yoyYear   int
	yoyRows   []domain.DailyProductMetrics
	yoyTotals Totals
}

// newScope calcula as datas de referência sobre as linhas filtradas e a base
// anual sobre o escopo completo (sem filtro de ano)
func newScope(selected, full []domain.DailyProductMetrics) (*scope, error) {
	reference, previous, err := ReferenceDates(selected)
	if err != nil {
		return nil, err
	}

	refRows := RowsOn(selected, reference)
	prevRows := RowsOn(selected, previous)
	yoyYear, yoyRows := YOYWindow(full, reference)

	return &scope{
		rows:       selected,
		reference:  reference,
		previous:   previous,
		totals:     Sum(selected),
		refTotals:  Sum(refRows),
		prevTotals: Sum(prevRows),
		refStock:   SnapshotAt(refRows, reference),
		prevStock:  SnapshotAt(prevRows, previous),
		yoyYear:    yoyYear,
		yoyRows:    yoyRows,
		yoyTotals:  Sum(yoyRows),
	}, nil
}

func (s *scope) scorecards(kpis ...domain.KPI) domain.Scorecards {
	return domain.Scorecards{
		ReferenceDate: s.reference,
		PreviousDate:  s.previous,
		KPIs:          kpis,
	}
}

func (s *scope) cashKPI() domain.KPI {
	return domain.KPI{
		Key:          domain.KPICash,
		Label:        "Tổng tiền thực thu",
		Value:        s.totals.Cash,
		Display:      FormatCurrency(s.totals.Cash),
		Delta:        s.refTotals.Cash,
		DeltaDisplay: signed(s.refTotals.Cash, FormatCurrency),
		DeltaTone:    domain.TonePositive,
		YOY:          NewYOYComparison(s.yoyYear, s.totals.Cash, s.yoyTotals.Cash, FormatCurrency),
	}
}

// withTarget adiciona a barra de progresso da meta de receita
func withTarget(kpi domain.KPI, target float64) domain.KPI {
	if target <= 0 {
		return kpi
	}

	ratio := math.Min(kpi.Value/target, 1)
	kpi.Progress = &domain.Progress{
		Target: target,
		Ratio:  ratio,
		Label:  printer.Sprintf("/ %.0f tỷ · %s", target/billion, FormatPercent(ratio, 1)),
	}
	return kpi
}

func (s *scope) newPoliciesKPI() domain.KPI {
	return domain.KPI{
		Key:          domain.KPINewPolicies,
		Label:        "Tổng số đơn cấp mới",
		Value:        s.totals.NewPolicies,
		Display:      FormatCount(s.totals.NewPolicies),
		Delta:        s.refTotals.NewPolicies,
		DeltaDisplay: signed(s.refTotals.NewPolicies, FormatCount),
		DeltaTone:    domain.TonePositive,
		YOY:          NewYOYComparison(s.yoyYear, s.totals.NewPolicies, s.yoyTotals.NewPolicies, FormatCount),
	}
}

func (s *scope) renewalsKPI() domain.KPI {
	return domain.KPI{
		Key:          domain.KPIRenewals,
		Label:        "Tổng số đơn tái tục",
		Value:        s.totals.Renewals,
		Display:      FormatCount(s.totals.Renewals),
		Delta:        s.refTotals.Renewals,
		DeltaDisplay: signed(s.refTotals.Renewals, FormatCount),
		DeltaTone:    domain.TonePositive,
		YOY:          NewYOYComparison(s.yoyYear, s.totals.Renewals, s.yoyTotals.Renewals, FormatCount),
	}
}

func (s *scope) growthKPI() domain.KPI {
	growth := s.totals.Growth()
	delta := s.refTotals.Growth()

	return domain.KPI{
		Key:          domain.KPIGrowth,
		Label:        "Số KH tăng trưởng",
		Value:        growth,
		Display:      FormatCount(growth),
		Delta:        delta,
		DeltaDisplay: signed(delta, FormatCount),
		DeltaTone:    signTone(delta),
		Tooltip:      growthTooltip,
		YOY:          NewYOYComparison(s.yoyYear, growth, s.yoyTotals.Growth(), FormatCount),
	}
}

// activeKPI é um estoque: valor na data de referência, variação contra a data anterior
func (s *scope) activeKPI(withYOY bool) domain.KPI {
	delta := s.refStock.Active - s.prevStock.Active

	kpi := domain.KPI{
		Key:          domain.KPIActiveCustomers,
		Label:        "Tổng số KH hiện hữu",
		Value:        s.refStock.Active,
		Display:      FormatCount(s.refStock.Active),
		Delta:        delta,
		DeltaDisplay: signed(delta, FormatCount),
		DeltaTone:    signTone(delta),
	}

	if withYOY {
		baseline := LatestSnapshot(s.yoyRows).Active
		kpi.YOY = NewYOYComparison(s.yoyYear, s.refStock.Active, baseline, FormatCount)
	}

	return kpi
}

// cancellationRateKPI compara a taxa diária da referência com a do dia anterior
func (s *scope) cancellationRateKPI() domain.KPI {
	delta := s.refTotals.CancellationRate() - s.prevTotals.CancellationRate()

	tone := domain.TonePositive
	if delta > 0 {
		tone = domain.ToneNegative
	}

	return domain.KPI{
		Key:          domain.KPICancellationRate,
		Label:        "Tỷ lệ hủy chủ động",
		Value:        s.totals.CancellationRate(),
		Display:      FormatPercent(s.totals.CancellationRate(), 1),
		Delta:        delta,
		DeltaDisplay: FormatSignedPercent(delta, 2),
		DeltaTone:    tone,
	}
}

func (s *scope) renewalRateKPI() domain.KPI {
	rate := s.totals.RenewalRate()
	delta := s.refTotals.RenewalRate() - s.prevTotals.RenewalRate()

	return domain.KPI{
		Key:          domain.KPIRenewalRate,
		Label:        "Tỷ lệ tái tục / dự kiến",
		Value:        rate,
		Display:      FormatPercent(rate, 1),
		Delta:        delta,
		DeltaDisplay: FormatSignedPercent(delta, 2),
		DeltaTone:    signTone(delta),
		YOY: NewYOYComparison(s.yoyYear, rate, s.yoyTotals.RenewalRate(), func(v float64) string {
			return FormatPercent(v, 1)
		}),
	}
}
