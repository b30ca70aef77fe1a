package reporting

import (
	"slices"
	"sort"

	"github.com/vfg2006/ipay-report-api/internal/domain"
)

func filter(rows []domain.DailyProductMetrics, keep func(domain.DailyProductMetrics) bool) []domain.DailyProductMetrics {
	filtered := make([]domain.DailyProductMetrics, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// FilterYears mantém as linhas dos anos informados; lista vazia mantém tudo
func FilterYears(rows []domain.DailyProductMetrics, years []int) []domain.DailyProductMetrics {
	if len(years) == 0 {
		return rows
	}
	return filter(rows, func(row domain.DailyProductMetrics) bool {
		return slices.Contains(years, row.Year)
	})
}

// FilterMonths mantém as linhas dos meses (1-12) informados; lista vazia mantém tudo
func FilterMonths(rows []domain.DailyProductMetrics, months []int) []domain.DailyProductMetrics {
	if len(months) == 0 {
		return rows
	}
	return filter(rows, func(row domain.DailyProductMetrics) bool {
		return slices.Contains(months, int(row.Date.Month()))
	})
}

func FilterProduct(rows []domain.DailyProductMetrics, code string) []domain.DailyProductMetrics {
	return filter(rows, func(row domain.DailyProductMetrics) bool {
		return row.ProductCode == code
	})
}

// FilterGroups mantém as linhas cujos grupos de produto foram selecionados
func FilterGroups(rows []domain.DailyProductMetrics, groups []string) []domain.DailyProductMetrics {
	if len(groups) == 0 {
		return rows
	}
	return filter(rows, func(row domain.DailyProductMetrics) bool {
		return slices.Contains(groups, domain.ProductGroup(row.ProductCode))
	})
}

// AvailableYears devolve os anos conhecidos em ordem decrescente; ano 0 é ignorado
func AvailableYears(rows []domain.DailyProductMetrics) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, row := range rows {
		if row.Year == 0 {
			continue
		}
		if _, ok := seen[row.Year]; ok {
			continue
		}
		seen[row.Year] = struct{}{}
		years = append(years, row.Year)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// ResolveYears aplica a regra padrão de seleção de anos.
// Devolve nil quando todos os anos devem ser considerados.
func ResolveYears(rows []domain.DailyProductMetrics, filters domain.ReportFilters) []int {
	if filters.AllYears {
		return nil
	}
	if len(filters.Years) > 0 {
		return filters.Years
	}

	available := AvailableYears(rows)
	if len(available) == 0 {
		return nil
	}
	return available[:1]
}
