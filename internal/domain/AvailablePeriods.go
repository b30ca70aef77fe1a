package domain

// AvailablePeriods representa os anos disponíveis na tabela, no geral e por produto
type AvailablePeriods struct {
	Years         []int            `json:"years"`          // Anos em ordem decrescente
	ProductYears  map[string][]int `json:"product_years"`  // Anos por código de produto
	LatestDate    string           `json:"latest_date"`    // Última data carregada, formato yyyy-mm-dd
	DatasetLoaded string           `json:"dataset_loaded"` // Momento do último carregamento
}
