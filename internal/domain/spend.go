package domain

// UnknownAppID identifica linhas cujo adamId não pôde ser resolvido pela
// lista de campanhas; elas são agregadas, nunca descartadas
const UnknownAppID = "unknown"

// DailySpend é o total de atividade de um dia, somado sobre todas as
// campanhas. As razões derivadas ficam nulas quando o denominador é zero
type DailySpend struct {
	Date        string   `json:"date"`
	Spend       float64  `json:"spend"`
	Impressions int64    `json:"impressions"`
	Clicks      int64    `json:"clicks"`
	Installs    int64    `json:"installs"`
	CPI         *float64 `json:"cpi,omitempty"`
	CTR         *float64 `json:"ctr,omitempty"`
	CVR         *float64 `json:"cvr,omitempty"`
}

// AppSpend é o total de atividade de um (dia, app), com a contagem de
// campanhas distintas que contribuíram para o grupo
type AppSpend struct {
	Date        string   `json:"date"`
	AppID       string   `json:"app_id"`
	Spend       float64  `json:"spend"`
	Impressions int64    `json:"impressions"`
	Clicks      int64    `json:"clicks"`
	Installs    int64    `json:"installs"`
	Campaigns   int      `json:"campaigns"`
	CPI         *float64 `json:"cpi,omitempty"`
	CTR         *float64 `json:"ctr,omitempty"`
	CVR         *float64 `json:"cvr,omitempty"`
}
