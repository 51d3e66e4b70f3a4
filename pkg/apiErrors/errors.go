package apiErrors

import (
	"errors"
	"fmt"
)

// Códigos de erro do cliente Apple Search Ads
const (
	// Erros de configuração (credenciais)
	ErrMissingCredentials = "CFG_001" // client_id, team_id ou key_id ausente
	ErrMissingPrivateKey  = "CFG_002" // Nenhum material de chave privada disponível
	ErrInvalidPrivateKey  = "CFG_003" // Chave privada não é uma chave EC em PEM válida

	// Erros de autenticação
	ErrTokenExchange  = "AUTH_001" // Endpoint de token retornou não-2xx
	ErrMalformedToken = "AUTH_002" // Resposta do endpoint de token sem access_token

	// Erros de requisição
	ErrRequestFailed = "REQ_001" // Chamada REST retornou não-2xx
)

// APIError é o erro padronizado do cliente, com contexto suficiente
// para diagnóstico sem stack trace (endpoint, status, organização)
type APIError struct {
	Code       string
	Message    string
	Endpoint   string
	StatusCode int
	OrgID      int64
	Body       string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Endpoint != "" {
		msg += fmt.Sprintf(" (endpoint: %s", e.Endpoint)
		if e.StatusCode != 0 {
			msg += fmt.Sprintf(", status: %d", e.StatusCode)
		}
		if e.OrgID != 0 {
			msg += fmt.Sprintf(", orgId: %d", e.OrgID)
		}
		msg += ")"
	}
	if e.Body != "" {
		msg += fmt.Sprintf(": %s", e.Body)
	}
	return msg
}

// NewConfigError cria um erro de configuração (nenhuma chamada de rede foi feita)
func NewConfigError(code, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

// NewAuthError cria um erro de autenticação contra o endpoint de token
func NewAuthError(code, message, endpoint string, statusCode int, body string) *APIError {
	return &APIError{
		Code:       code,
		Message:    message,
		Endpoint:   endpoint,
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewRequestError cria um erro de chamada REST com o contexto da requisição
func NewRequestError(endpoint string, statusCode int, orgID int64, body string) *APIError {
	return &APIError{
		Code:       ErrRequestFailed,
		Message:    "requisição à API falhou",
		Endpoint:   endpoint,
		StatusCode: statusCode,
		OrgID:      orgID,
		Body:       body,
	}
}

// HasCode verifica se err (ou algum erro embrulhado) é um APIError com o código dado
func HasCode(err error, code string) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}

// IsConfigError verifica se o erro é de configuração de credenciais
func IsConfigError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case ErrMissingCredentials, ErrMissingPrivateKey, ErrInvalidPrivateKey:
			return true
		}
	}
	return false
}
