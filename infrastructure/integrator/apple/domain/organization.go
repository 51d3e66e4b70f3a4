package appledomain

// Organization representa uma organização anunciante retornada pelo endpoint /acls
type Organization struct {
	OrgID        int64  `json:"orgId"`
	OrgName      string `json:"orgName"`
	Currency     string `json:"currency,omitempty"`
	PaymentModel string `json:"paymentModel,omitempty"`
}
