package domain

import "time"

// Tone indica a cor semântica de uma variação
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

// Chaves dos indicadores exibidos nos cartões
const (
	KPICash             = "cash"
	KPINewPolicies      = "new_policies"
	KPIRenewals         = "renewals"
	KPIGrowth           = "growth"
	KPIActiveCustomers  = "active_customers"
	KPICancellationRate = "cancellation_rate"
	KPIRenewalRate      = "renewal_rate"
)

// YOYComparison compara o valor atual com o mesmo período do ano anterior
type YOYComparison struct {
	Year      int      `json:"year"`
	Baseline  float64  `json:"baseline"`
	ChangePct *float64 `json:"change_pct"`
	Caption   string   `json:"caption"`
}

// Progress representa o avanço em direção a uma meta
type Progress struct {
	Target float64 `json:"target"`
	Ratio  float64 `json:"ratio"`
	Label  string  `json:"label"`
}

type KPI struct {
	Key          string         `json:"key"`
	Label        string         `json:"label"`
	Value        float64        `json:"value"`
	Display      string         `json:"display"`
	Delta        float64        `json:"delta"`
	DeltaDisplay string         `json:"delta_display"`
	DeltaTone    Tone           `json:"delta_tone"`
	Tooltip      string         `json:"tooltip,omitempty"`
	YOY          *YOYComparison `json:"yoy,omitempty"`
	Progress     *Progress      `json:"progress,omitempty"`
}

// Scorecards agrupa os cartões de uma página com as datas de referência
type Scorecards struct {
	ReferenceDate time.Time `json:"reference_date"`
	PreviousDate  time.Time `json:"previous_date"`
	KPIs          []KPI     `json:"kpis"`
}

// ProductDelta é a variação diária de um grupo de produto na data de referência
type ProductDelta struct {
	Product       string  `json:"product"`
	Cash          float64 `json:"cash"`
	NewPolicies   float64 `json:"new_policies"`
	Renewals      float64 `json:"renewals"`
	ActiveChange  float64 `json:"active_change"`
	Cancellations float64 `json:"cancellations"`
}
