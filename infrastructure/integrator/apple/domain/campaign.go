package appledomain

// Money é o formato de valores monetários da API (montante decimal em string + moeda)
type Money struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type Campaign struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Status            string `json:"status"`
	AdamID            int64  `json:"adamId"`
	BudgetAmount      *Money `json:"budgetAmount,omitempty"`
	DailyBudgetAmount *Money `json:"dailyBudgetAmount,omitempty"`

	// Campos preenchidos pela camada de acesso, não pela API
	OrgName      string `json:"org_name,omitempty"`
	FetchedOrgID int64  `json:"fetched_org_id,omitempty"`
}

// Pagination é o bloco de paginação retornado nas listagens
type Pagination struct {
	TotalResults int `json:"totalResults"`
	StartIndex   int `json:"startIndex"`
	ItemsPerPage int `json:"itemsPerPage"`
}
