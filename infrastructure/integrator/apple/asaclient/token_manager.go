package asaclient

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/pkg/apiErrors"
)

// assertionTTL é a janela de validade da assertion assinada. Curta de
// propósito: uma assertion nova é emitida a cada troca de token
const assertionTTL = time.Hour

const tokenScope = "searchadsorg"

// TokenManager emite assertions assinadas (ES256) e as troca por bearer
// tokens no endpoint OAuth2 da Apple. Nenhuma expiração é rastreada: cada
// chamada re-deriva um token novo, o que é redundante porém idempotente.
// Uma estratégia de cache com expiração pode substituir o corpo de
// AccessToken sem tocar nos chamadores
type TokenManager struct {
	cfg               *config.AppleAds
	credentials       *Credentials
	httpClient        *http.Client
	TokenRefreshMutex sync.Mutex
}

// NewTokenManager cria uma nova instância do gerenciador de tokens
func NewTokenManager(cfg *config.AppleAds, credentials *Credentials) *TokenManager {
	return &TokenManager{
		cfg:         cfg,
		credentials: credentials,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
	}
}

// GenerateAssertion monta e assina a assertion JWT que prova a identidade do
// cliente ao servidor de autorização. Determinística para um mesmo instante
func (tm *TokenManager) GenerateAssertion(now time.Time) (string, error) {
	privateKey, err := jwt.ParseECPrivateKeyFromPEM(tm.credentials.PrivateKey)
	if err != nil {
		return "", apiErrors.NewConfigError(
			apiErrors.ErrInvalidPrivateKey,
			"a chave privada não é uma chave EC em PEM válida: "+err.Error(),
		)
	}

	claims := jwt.MapClaims{
		"sub": tm.credentials.ClientID,
		"iss": tm.credentials.TeamID,
		"aud": tm.cfg.AuthURL,
		"iat": now.Unix(),
		"exp": now.Add(assertionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = tm.credentials.KeyID

	signed, err := token.SignedString(privateKey)
	if err != nil {
		return "", apiErrors.NewConfigError(
			apiErrors.ErrInvalidPrivateKey,
			"erro ao assinar a assertion: "+err.Error(),
		)
	}

	return signed, nil
}

// AccessToken emite uma assertion nova e a troca por um bearer token.
// Tentativa única: falhas do endpoint de token são devolvidas ao chamador
// sem retry. O mutex protege chamadores concorrentes do mesmo cliente
func (tm *TokenManager) AccessToken() (string, error) {
	tm.TokenRefreshMutex.Lock()
	defer tm.TokenRefreshMutex.Unlock()

	assertion, err := tm.GenerateAssertion(time.Now())
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", tm.credentials.ClientID)
	form.Set("client_secret", assertion)
	form.Set("scope", tokenScope)

	req, err := http.NewRequest(http.MethodPost, tm.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.httpClient.Do(req)
	if err != nil {
		return "", apiErrors.NewAuthError(
			apiErrors.ErrTokenExchange,
			"erro ao chamar o endpoint de token: "+err.Error(),
			tm.cfg.TokenURL, 0, "",
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apiErrors.NewAuthError(
			apiErrors.ErrTokenExchange,
			"erro ao ler a resposta do endpoint de token: "+err.Error(),
			tm.cfg.TokenURL, resp.StatusCode, "",
		)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"endpoint":    tm.cfg.TokenURL,
		}).Error("Troca de token rejeitada pelo servidor de autorização")

		return "", apiErrors.NewAuthError(
			apiErrors.ErrTokenExchange,
			"troca de token rejeitada",
			tm.cfg.TokenURL, resp.StatusCode, string(body),
		)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", apiErrors.NewAuthError(
			apiErrors.ErrMalformedToken,
			"erro ao decodificar a resposta do endpoint de token: "+err.Error(),
			tm.cfg.TokenURL, resp.StatusCode, string(body),
		)
	}

	if tokenResp.AccessToken == "" {
		return "", apiErrors.NewAuthError(
			apiErrors.ErrMalformedToken,
			"resposta do endpoint de token sem access_token",
			tm.cfg.TokenURL, resp.StatusCode, string(body),
		)
	}

	return tokenResp.AccessToken, nil
}
