package appledomain

import "strings"

// ErrorResponse representa a estrutura de erro da API do Apple Search Ads
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody contém a lista de erros retornada pela API
type ErrorBody struct {
	Errors []ErrorDetails `json:"errors"`
}

type ErrorDetails struct {
	MessageCode string `json:"messageCode"`
	Message     string `json:"message"`
	Field       string `json:"field,omitempty"`
}

// Messages concatena as mensagens de erro para log e diagnóstico
func (e *ErrorResponse) Messages() string {
	msgs := make([]string, 0, len(e.Error.Errors))
	for _, detail := range e.Error.Errors {
		msgs = append(msgs, detail.Message)
	}
	return strings.Join(msgs, "; ")
}
