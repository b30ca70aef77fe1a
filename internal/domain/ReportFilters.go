package domain

// ReportFilters representa os filtros aceitos pelas páginas de relatório.
//
// Years vazio com AllYears=false significa "ano mais recente do escopo".
type ReportFilters struct {
	Years    []int
	AllYears bool
	Months   []int
	Products []string
}

// DetailFilters seleciona o mês exibido na tabela diária
type DetailFilters struct {
	Month int
	Year  int
}
