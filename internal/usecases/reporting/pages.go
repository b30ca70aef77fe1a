package reporting

import (
	"github.com/vfg2006/ipay-report-api/internal/domain"
)

// DefaultPolicyFee é a taxa por apólice quando o produto não tem taxa configurada
const DefaultPolicyFee = 6000

const overviewLabel = "Tổng quan"

// DefaultPages devolve as páginas de produto na ordem do menu.
// fees sobrescreve a taxa por código de produto.
func DefaultPages(fees map[string]float64, defaultFee float64) []domain.ProductPage {
	if defaultFee <= 0 {
		defaultFee = DefaultPolicyFee
	}

	pages := []domain.ProductPage{
		{Slug: domain.PageCyberRisk, Title: "Cyber Risk", ProductCode: domain.ProductCyberRisk, Headline: domain.HeadlineGrowth},
		{Slug: domain.PageISafe, Title: "I-Safe", ProductCode: domain.ProductISafe, Headline: domain.HeadlineNewPolicies},
		{Slug: domain.PageTapCare, Title: "TapCare", ProductCode: domain.ProductTapCare, Headline: domain.HeadlineGrowth},
		{Slug: domain.PageHomesaving, Title: "Nhà và bạn", ProductCode: domain.ProductHomesaving, Headline: domain.HeadlineGrowth},
	}

	for i := range pages {
		pages[i].PolicyFee = defaultFee
		if fee, ok := fees[pages[i].ProductCode]; ok && fee > 0 {
			pages[i].PolicyFee = fee
		}
	}
	return pages
}

// FindPage procura a página de produto pelo slug
func FindPage(pages []domain.ProductPage, slug string) (domain.ProductPage, error) {
	for _, page := range pages {
		if page.Slug == slug {
			return page, nil
		}
	}
	return domain.ProductPage{}, NewReportError(ErrPageNotFound, slug)
}

// Navigation monta o menu lateral: visão geral seguida das páginas de produto
func Navigation(pages []domain.ProductPage) []domain.NavigationItem {
	items := make([]domain.NavigationItem, 0, len(pages)+1)
	items = append(items, domain.NavigationItem{
		Slug:  domain.PageOverview,
		Label: overviewLabel,
		Path:  "/v1/reports/overview",
	})

	for _, page := range pages {
		items = append(items, domain.NavigationItem{
			Slug:  page.Slug,
			Label: page.Title,
			Path:  "/v1/reports/products/" + page.Slug,
		})
	}
	return items
}
