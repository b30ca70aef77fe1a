package domain

import (
	"slices"
	"strings"
	"time"
)

// Códigos de produto com página própria no dashboard
const (
	ProductCyberRisk  = "MIX_01"
	ProductHomesaving = "VTB_HOMESAVING"
	ProductTapCare    = "TAPCARE"
	ProductISafe      = "ISAFE_CYBER"

	// ProductOther agrupa todos os códigos fora da lista nomeada
	ProductOther = "Sản phẩm khác"

	// ProductOtherCode é o apelido ASCII do grupo "outros" aceito na query
	ProductOtherCode = "OTHER"
)

// NamedProducts lista os produtos nomeados em ordem alfabética
var NamedProducts = []string{
	ProductISafe,
	ProductCyberRisk,
	ProductTapCare,
	ProductHomesaving,
}

// ProductGroups retorna os grupos aceitos nos filtros: nomeados + "outros"
func ProductGroups() []string {
	return append(slices.Clone(NamedProducts), ProductOther)
}

// IsNamedProduct indica se o código possui grupo próprio
func IsNamedProduct(code string) bool {
	return slices.Contains(NamedProducts, code)
}

// ProductGroup devolve o grupo de exibição do código de produto
func ProductGroup(code string) string {
	if IsNamedProduct(code) {
		return code
	}
	return ProductOther
}

// ParseProductGroup converte o valor recebido no filtro para o grupo de exibição.
// Aceita o código nomeado em qualquer caixa, OTHER ou o rótulo exato do grupo.
func ParseProductGroup(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == ProductOther || strings.EqualFold(raw, ProductOtherCode) {
		return ProductOther, true
	}

	code := strings.ToUpper(raw)
	if IsNamedProduct(code) {
		return code, true
	}
	return "", false
}

// DailyProductMetrics é uma linha da tabela gold: métricas de um produto em um dia.
//
// Cash, NewPolicies, Renewals, ExpectedRenewals e Cancellations são fluxos e
// podem ser somados em qualquer período. ActivePolicies e SuspendedPolicies
// são estoques e só fazem sentido lidos em uma única data.
type DailyProductMetrics struct {
	Date              time.Time `json:"date"`
	Year              int       `json:"year"`
	ProductCode       string    `json:"product_code"`
	Cash              float64   `json:"cash"`
	NewPolicies       float64   `json:"new_policies"`
	Renewals          float64   `json:"renewals"`
	ExpectedRenewals  float64   `json:"expected_renewals"`
	ActivePolicies    float64   `json:"active_policies"`
	SuspendedPolicies float64   `json:"suspended_policies"`
	Cancellations     float64   `json:"cancellations"`
}

// Dataset é o conteúdo completo da tabela carregado em memória
type Dataset struct {
	Rows     []DailyProductMetrics
	LoadedAt time.Time
}

// DateOnly normaliza uma data para meia-noite UTC, usada como chave diária
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
