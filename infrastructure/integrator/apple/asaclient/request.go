package asaclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	appledomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/domain"
	"github.com/vfg2006/searchads-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// orgContextHeader identifica a organização anunciante à qual a requisição
// deve ser escopada
const orgContextHeader = "X-AP-Context"

// makeRequest é o ponto único por onde passam todas as chamadas à API REST.
// Anexa o bearer token e, quando orgID é informado, o cabeçalho de contexto
// de organização. Respostas não-2xx viram erro com endpoint, status e corpo.
// Um status 401 provoca uma única repetição com token recém-emitido
func (c *AppleAdsClient) makeRequest(ctx context.Context, method, endpoint string, body any, query url.Values, orgID int64, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("erro ao codificar o corpo da requisição: %w", err)
		}
		payload = encoded
	}

	requestURL := endpoint
	if len(query) > 0 {
		requestURL = endpoint + "?" + query.Encode()
	}

	retried := false
	for {
		responseBody, statusCode, err := c.send(ctx, method, requestURL, payload, orgID)
		if err != nil {
			return err
		}

		if statusCode == http.StatusUnauthorized && !retried {
			// Token considerado expirado; a próxima iteração emite um novo.
			// Uma única repetição: se falhar de novo, o erro sobe
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"org_id":   orgID,
			}).Warn("Requisição rejeitada com 401; repetindo com token novo")

			retried = true
			continue
		}

		if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
			return requestError(endpoint, statusCode, orgID, responseBody)
		}

		if out != nil {
			if err := json.Unmarshal(responseBody, out); err != nil {
				return fmt.Errorf("erro ao decodificar a resposta de %s: %w", endpoint, err)
			}
		}

		return nil
	}
}

// send executa uma única tentativa e devolve corpo e status
func (c *AppleAdsClient) send(ctx context.Context, method, requestURL string, payload []byte, orgID int64) ([]byte, int, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, bodyReader)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	token, err := c.TokenManager.AccessToken()
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	if orgID != 0 {
		req.Header.Set(orgContextHeader, fmt.Sprintf("orgId=%d", orgID))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return responseBody, resp.StatusCode, nil
}

// requestError monta o erro de requisição, preferindo as mensagens
// estruturadas da API quando o corpo for parseável
func requestError(endpoint string, statusCode int, orgID int64, body []byte) error {
	detail := string(body)

	var errorResp appledomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err == nil && len(errorResp.Error.Errors) > 0 {
		detail = errorResp.Messages()
	}

	logrus.WithFields(logrus.Fields{
		"endpoint":    endpoint,
		"status_code": statusCode,
		"org_id":      orgID,
	}).Error("Requisição à API falhou")

	return apiErrors.NewRequestError(endpoint, statusCode, orgID, detail)
}
