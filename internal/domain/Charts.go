package domain

// ActiveSplit é a divisão de clientes entre vigentes e suspensos em uma data
type ActiveSplit struct {
	Product     string  `json:"product,omitempty"`
	Active      float64 `json:"active"`
	Suspended   float64 `json:"suspended"`
	Total       float64 `json:"total"`
	ActiveShare float64 `json:"active_share"`
}

type ProductYearValue struct {
	Product string  `json:"product"`
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
}

type MonthValue struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Value float64 `json:"value"`
}

// ProductRate usa ponteiro para representar taxa indefinida (denominador zero)
type ProductRate struct {
	Product string   `json:"product"`
	Rate    *float64 `json:"rate"`
}

type ProductYearFlow struct {
	Product       string  `json:"product"`
	Year          int     `json:"year"`
	NewPolicies   float64 `json:"new_policies"`
	Cancellations float64 `json:"cancellations"`
}

type MonthFlow struct {
	Year          int     `json:"year"`
	Month         int     `json:"month"`
	NewPolicies   float64 `json:"new_policies"`
	Cancellations float64 `json:"cancellations"`
}

// PeriodComparison compara realizado e esperado em um mês no formato YYYY-MM
type PeriodComparison struct {
	Period   string  `json:"period"`
	Actual   float64 `json:"actual"`
	Expected float64 `json:"expected"`
}

type PeriodRate struct {
	Period string   `json:"period"`
	Rate   *float64 `json:"rate"`
}

// OverviewCharts contém as séries da página de visão geral
type OverviewCharts struct {
	ActiveByProduct       []ActiveSplit      `json:"active_by_product"`
	CashByProductYear     []ProductYearValue `json:"cash_by_product_year"`
	ProductOrder          []string           `json:"product_order"`
	CashByMonth           []MonthValue       `json:"cash_by_month"`
	CancellationByProduct []ProductRate      `json:"cancellation_by_product"`
	FlowByProductYear     []ProductYearFlow  `json:"flow_by_product_year"`
	FlowProductOrder      []string           `json:"flow_product_order"`
	FlowByMonth           []MonthFlow        `json:"flow_by_month"`
}

// ProductCharts contém as séries das páginas de produto
type ProductCharts struct {
	ActiveSplit         ActiveSplit        `json:"active_split"`
	RevenueVsExpected   []PeriodComparison `json:"revenue_vs_expected"`
	CancellationByMonth []PeriodRate       `json:"cancellation_by_month"`
	RenewalsVsExpected  []PeriodComparison `json:"renewals_vs_expected"`
}
