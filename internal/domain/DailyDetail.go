package domain

import "time"

// Direction é o sentido da seta exibida ao lado do valor
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionNone Direction = ""
)

// Trend indica o sentido da variação e se ela é favorável
type Trend struct {
	Direction Direction `json:"direction"`
	Favorable bool      `json:"favorable"`
}

type DailyTrends struct {
	Policies      Trend `json:"policies"`
	Cash          Trend `json:"cash"`
	NewPolicies   Trend `json:"new_policies"`
	Cancellations Trend `json:"cancellations"`
	Growth        Trend `json:"growth"`
}

// DailyDetailRow é uma linha da tabela diária de um produto.
// Campos com sufixo 30 referem-se ao mesmo indicador 30 dias antes.
type DailyDetailRow struct {
	Date            time.Time   `json:"date"`
	Day             int         `json:"day"`
	Policies        float64     `json:"policies"`
	Policies30      float64     `json:"policies_30"`
	Cash            float64     `json:"cash"`
	Cash30          float64     `json:"cash_30"`
	ExpectedCash    float64     `json:"expected_cash"`
	NewPolicies     float64     `json:"new_policies"`
	NewPolicies30   float64     `json:"new_policies_30"`
	Cancellations   float64     `json:"cancellations"`
	Cancellations30 float64     `json:"cancellations_30"`
	RenewalRate     float64     `json:"renewal_rate"`
	Growth          float64     `json:"growth"`
	Trends          DailyTrends `json:"trends"`
}

type DailyDetailTotals struct {
	Policies      float64 `json:"policies"`
	Policies30    float64 `json:"policies_30"`
	Cash          float64 `json:"cash"`
	Cash30        float64 `json:"cash_30"`
	ExpectedCash  float64 `json:"expected_cash"`
	NewPolicies   float64 `json:"new_policies"`
	NewPolicies30 float64 `json:"new_policies_30"`
	Cancellations float64 `json:"cancellations"`
	RenewalRate   float64 `json:"renewal_rate"`
	Growth        float64 `json:"growth"`
}

// DailyDetailReport é a tabela diária completa de um mês
type DailyDetailReport struct {
	Page        string            `json:"page"`
	ProductCode string            `json:"product_code"`
	Month       int               `json:"month"`
	Year        int               `json:"year"`
	PolicyFee   float64           `json:"policy_fee"`
	Headers     []string          `json:"headers"`
	Rows        []DailyDetailRow  `json:"rows"`
	Totals      DailyDetailTotals `json:"totals"`
}

// DailyDetailHeaders são os títulos das colunas, na ordem exibida e exportada
var DailyDetailHeaders = []string{
	"Ngày",
	"Số đơn thu được phí",
	"Số đơn 30NT",
	"Tiền thực thu",
	"Tiền TT 30NT",
	"Tiền TT dự kiến",
	"Số đơn cấp mới",
	"Số đơn cấp mới 30NT",
	"Số đơn hủy",
	"Tỷ lệ TT / DK",
	"Số KH tăng trưởng",
}
