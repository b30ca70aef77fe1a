package reporting

import (
	"sort"

	"github.com/vfg2006/ipay-report-api/internal/domain"
)

// OverviewOptions parametriza a página de visão geral
type OverviewOptions struct {
	RevenueTarget float64
}

// BuildOverview monta cartões, quebra por produto e gráficos da visão geral
func BuildOverview(rows []domain.DailyProductMetrics, filters domain.ReportFilters, opts OverviewOptions) (*domain.OverviewReport, error) {
	years := ResolveYears(rows, filters)
	selected := FilterYears(rows, years)

	s, err := newScope(selected, rows)
	if err != nil {
		return nil, err
	}

	monthRows := FilterMonths(selected, filters.Months)
	groupRows := FilterGroups(selected, filters.Products)

	return &domain.OverviewReport{
		Years: years,
		Scorecards: s.scorecards(
			withTarget(s.cashKPI(), opts.RevenueTarget),
			s.newPoliciesKPI(),
			s.renewalsKPI(),
			s.activeKPI(false),
			s.cancellationRateKPI(),
		),
		Breakdown: productBreakdown(s),
		Charts: domain.OverviewCharts{
			ActiveByProduct:       activeByProduct(s),
			CashByProductYear:     cashByProductYear(monthRows),
			ProductOrder:          productOrder(monthRows, func(t Totals) float64 { return t.Cash }),
			CashByMonth:           cashByMonth(groupRows),
			CancellationByProduct: cancellationByProduct(monthRows),
			FlowByProductYear:     flowByProductYear(monthRows),
			FlowProductOrder:      productOrder(monthRows, func(t Totals) float64 { return t.NewPolicies }),
			FlowByMonth:           flowByMonth(groupRows),
		},
	}, nil
}

// productBreakdown detalha a variação da data de referência por grupo de produto
func productBreakdown(s *scope) []domain.ProductDelta {
	refByGroup := make(map[string]*domain.ProductDelta)
	get := func(group string) *domain.ProductDelta {
		delta, ok := refByGroup[group]
		if !ok {
			delta = &domain.ProductDelta{Product: group}
			refByGroup[group] = delta
		}
		return delta
	}

	for _, row := range RowsOn(s.rows, s.reference) {
		delta := get(domain.ProductGroup(row.ProductCode))
		delta.Cash += row.Cash
		delta.NewPolicies += row.NewPolicies
		delta.Renewals += row.Renewals
		delta.Cancellations += row.Cancellations
		delta.ActiveChange += row.ActivePolicies
	}

	// Grupos presentes só no dia anterior também aparecem, com estoque negativo
	for _, row := range RowsOn(s.rows, s.previous) {
		delta := get(domain.ProductGroup(row.ProductCode))
		delta.ActiveChange -= row.ActivePolicies
	}

	breakdown := make([]domain.ProductDelta, 0, len(refByGroup))
	for _, delta := range refByGroup {
		breakdown = append(breakdown, *delta)
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Product < breakdown[j].Product
	})
	return breakdown
}

// activeByProduct divide vigentes e suspensos por produto nomeado na data de referência
func activeByProduct(s *scope) []domain.ActiveSplit {
	byProduct := make(map[string]*Snapshot)
	for _, row := range RowsOn(s.rows, s.reference) {
		if !domain.IsNamedProduct(row.ProductCode) {
			continue
		}
		snapshot, ok := byProduct[row.ProductCode]
		if !ok {
			snapshot = &Snapshot{}
			byProduct[row.ProductCode] = snapshot
		}
		snapshot.Active += row.ActivePolicies
		snapshot.Suspended += row.SuspendedPolicies
	}

	splits := make([]domain.ActiveSplit, 0, len(byProduct))
	for product, snapshot := range byProduct {
		splits = append(splits, newActiveSplit(product, *snapshot))
	}

	sort.Slice(splits, func(i, j int) bool {
		if splits[i].Total == splits[j].Total {
			return splits[i].Product < splits[j].Product
		}
		return splits[i].Total > splits[j].Total
	})
	return splits
}

func newActiveSplit(product string, snapshot Snapshot) domain.ActiveSplit {
	return domain.ActiveSplit{
		Product:     product,
		Active:      snapshot.Active,
		Suspended:   snapshot.Suspended,
		Total:       snapshot.Total(),
		ActiveShare: snapshot.ActiveShare(),
	}
}

type productYear struct {
	product string
	year    int
}

func totalsByProductYear(rows []domain.DailyProductMetrics) map[productYear]*Totals {
	grouped := make(map[productYear]*Totals)
	for _, row := range rows {
		key := productYear{product: domain.ProductGroup(row.ProductCode), year: row.Year}
		totals, ok := grouped[key]
		if !ok {
			totals = &Totals{}
			grouped[key] = totals
		}
		totals.add(row)
	}
	return grouped
}

func sortProductYear(keys []productYear) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].product == keys[j].product {
			return keys[i].year < keys[j].year
		}
		return keys[i].product < keys[j].product
	})
}

func cashByProductYear(rows []domain.DailyProductMetrics) []domain.ProductYearValue {
	grouped := totalsByProductYear(rows)

	keys := make([]productYear, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sortProductYear(keys)

	values := make([]domain.ProductYearValue, 0, len(keys))
	for _, key := range keys {
		values = append(values, domain.ProductYearValue{
			Product: key.product,
			Year:    key.year,
			Value:   grouped[key].Cash,
		})
	}
	return values
}

func flowByProductYear(rows []domain.DailyProductMetrics) []domain.ProductYearFlow {
	grouped := totalsByProductYear(rows)

	keys := make([]productYear, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sortProductYear(keys)

	flows := make([]domain.ProductYearFlow, 0, len(keys))
	for _, key := range keys {
		flows = append(flows, domain.ProductYearFlow{
			Product:       key.product,
			Year:          key.year,
			NewPolicies:   grouped[key].NewPolicies,
			Cancellations: grouped[key].Cancellations,
		})
	}
	return flows
}

// productOrder ordena os grupos pelo total da métrica, do maior para o menor
func productOrder(rows []domain.DailyProductMetrics, metric func(Totals) float64) []string {
	byGroup := make(map[string]*Totals)
	for _, row := range rows {
		group := domain.ProductGroup(row.ProductCode)
		totals, ok := byGroup[group]
		if !ok {
			totals = &Totals{}
			byGroup[group] = totals
		}
		totals.add(row)
	}

	order := make([]string, 0, len(byGroup))
	for group := range byGroup {
		order = append(order, group)
	}

	sort.Slice(order, func(i, j int) bool {
		left, right := metric(*byGroup[order[i]]), metric(*byGroup[order[j]])
		if left == right {
			return order[i] < order[j]
		}
		return left > right
	})
	return order
}

type yearMonth struct {
	year  int
	month int
}

// totalsByMonth agrupa por ano e mês e completa a grade de 12 meses de cada ano
func totalsByMonth(rows []domain.DailyProductMetrics) ([]yearMonth, map[yearMonth]Totals) {
	grouped := make(map[yearMonth]Totals)
	years := make(map[int]struct{})
	for _, row := range rows {
		key := yearMonth{year: row.Year, month: int(row.Date.Month())}
		totals := grouped[key]
		totals.add(row)
		grouped[key] = totals
		years[row.Year] = struct{}{}
	}

	sortedYears := make([]int, 0, len(years))
	for year := range years {
		sortedYears = append(sortedYears, year)
	}
	sort.Ints(sortedYears)

	grid := make([]yearMonth, 0, len(sortedYears)*12)
	for _, year := range sortedYears {
		for month := 1; month <= 12; month++ {
			grid = append(grid, yearMonth{year: year, month: month})
		}
	}
	return grid, grouped
}

func cashByMonth(rows []domain.DailyProductMetrics) []domain.MonthValue {
	grid, grouped := totalsByMonth(rows)

	values := make([]domain.MonthValue, 0, len(grid))
	for _, key := range grid {
		values = append(values, domain.MonthValue{
			Year:  key.year,
			Month: key.month,
			Value: grouped[key].Cash,
		})
	}
	return values
}

func flowByMonth(rows []domain.DailyProductMetrics) []domain.MonthFlow {
	grid, grouped := totalsByMonth(rows)

	flows := make([]domain.MonthFlow, 0, len(grid))
	for _, key := range grid {
		flows = append(flows, domain.MonthFlow{
			Year:          key.year,
			Month:         key.month,
			NewPolicies:   grouped[key].NewPolicies,
			Cancellations: grouped[key].Cancellations,
		})
	}
	return flows
}

// cancellationByProduct calcula a taxa por produto nomeado, da maior para a menor;
// produtos sem denominador ficam no fim com taxa nula
func cancellationByProduct(rows []domain.DailyProductMetrics) []domain.ProductRate {
	byProduct := make(map[string]*Totals)
	for _, row := range rows {
		if !domain.IsNamedProduct(row.ProductCode) {
			continue
		}
		totals, ok := byProduct[row.ProductCode]
		if !ok {
			totals = &Totals{}
			byProduct[row.ProductCode] = totals
		}
		totals.add(row)
	}

	rates := make([]domain.ProductRate, 0, len(byProduct))
	for product, totals := range byProduct {
		rates = append(rates, domain.ProductRate{
			Product: product,
			Rate:    ratePtr(totals.cancellationRate()),
		})
	}

	sort.Slice(rates, func(i, j int) bool {
		left, right := rates[i].Rate, rates[j].Rate
		switch {
		case left == nil && right == nil:
			return rates[i].Product < rates[j].Product
		case left == nil:
			return false
		case right == nil:
			return true
		case *left == *right:
			return rates[i].Product < rates[j].Product
		}
		return *left > *right
	})
	return rates
}
