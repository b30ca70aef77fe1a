package domain

// HeadlineMetric define o segundo cartão das páginas de produto
type HeadlineMetric string

const (
	HeadlineNewPolicies HeadlineMetric = "new_policies"
	HeadlineGrowth      HeadlineMetric = "growth"
)

// Slugs das páginas do dashboard
const (
	PageOverview   = "overview"
	PageCyberRisk  = "cyber-risk"
	PageISafe      = "isafe"
	PageTapCare    = "tapcare"
	PageHomesaving = "homesaving"
)

// ProductPage descreve uma página de produto
type ProductPage struct {
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	ProductCode string         `json:"product_code"`
	Headline    HeadlineMetric `json:"headline"`
	PolicyFee   float64        `json:"policy_fee"`
}

// NavigationItem é uma entrada do menu lateral
type NavigationItem struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// OverviewReport é a resposta da página de visão geral
type OverviewReport struct {
	Years      []int          `json:"years"`
	Scorecards Scorecards     `json:"scorecards"`
	Breakdown  []ProductDelta `json:"breakdown"`
	Charts     OverviewCharts `json:"charts"`
}

// ProductReport é a resposta de uma página de produto
type ProductReport struct {
	Page       ProductPage   `json:"page"`
	Years      []int         `json:"years"`
	Scorecards Scorecards    `json:"scorecards"`
	Charts     ProductCharts `json:"charts"`
}
