package asaclient

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/pkg/apiErrors"
)

// generateTestKey cria uma chave EC P-256 em PEM para os testes de assinatura
func generateTestKey(t *testing.T) (*ecdsa.PrivateKey, []byte) {
	t.Helper()

	privateKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalECPrivateKey(privateKey)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})
	return privateKey, pemBytes
}

func newTestTokenManager(t *testing.T, cfg *config.AppleAds) (*TokenManager, *ecdsa.PrivateKey) {
	t.Helper()

	privateKey, pemBytes := generateTestKey(t)

	if cfg.AuthURL == "" {
		cfg.AuthURL = "https://appleid.apple.com"
	}
	cfg.RequestTimeout = 5 * time.Second

	return NewTokenManager(cfg, &Credentials{
		ClientID:   "test_client_id",
		TeamID:     "test_team_id",
		KeyID:      "test_key_id",
		PrivateKey: pemBytes,
	}), privateKey
}

func TestGenerateAssertion_Claims(t *testing.T) {
	tokenManager, privateKey := newTestTokenManager(t, &config.AppleAds{})

	now := time.Now()
	assertion, err := tokenManager.GenerateAssertion(now)
	require.NoError(t, err)

	parsed, err := jwt.Parse(assertion, func(token *jwt.Token) (interface{}, error) {
		return &privateKey.PublicKey, nil
	}, jwt.WithValidMethods([]string{"ES256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)

	// A assertion carrega sempre sub=client_id, iss=team_id e a audiência fixa
	assert.Equal(t, "test_client_id", claims["sub"])
	assert.Equal(t, "test_team_id", claims["iss"])
	assert.Equal(t, "https://appleid.apple.com", claims["aud"])
	assert.Equal(t, "test_key_id", parsed.Header["kid"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(assertionTTL), exp.Time, time.Second)
}

func TestGenerateAssertion_ChaveInvalida(t *testing.T) {
	cfg := &config.AppleAds{AuthURL: "https://appleid.apple.com"}
	tokenManager := NewTokenManager(cfg, &Credentials{
		ClientID:   "test",
		TeamID:     "test",
		KeyID:      "test",
		PrivateKey: []byte("nao é PEM"),
	})

	_, err := tokenManager.GenerateAssertion(time.Now())
	require.Error(t, err)
	assert.True(t, apiErrors.HasCode(err, apiErrors.ErrInvalidPrivateKey))
}

func TestAccessToken_TrocaComSucesso(t *testing.T) {
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"grant_type": r.PostFormValue("grant_type"),
			"client_id":  r.PostFormValue("client_id"),
			"scope":      r.PostFormValue("scope"),
		}
		assert.NotEmpty(t, r.PostFormValue("client_secret"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "test_access_token", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	defer server.Close()

	tokenManager, _ := newTestTokenManager(t, &config.AppleAds{TokenURL: server.URL})

	token, err := tokenManager.AccessToken()
	require.NoError(t, err)
	assert.Equal(t, "test_access_token", token)
	assert.Equal(t, map[string]string{
		"grant_type": "client_credentials",
		"client_id":  "test_client_id",
		"scope":      "searchadsorg",
	}, gotForm)
}

func TestAccessToken_RejeitadoPeloServidor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "invalid_client"}`))
	}))
	defer server.Close()

	tokenManager, _ := newTestTokenManager(t, &config.AppleAds{TokenURL: server.URL})

	_, err := tokenManager.AccessToken()
	require.Error(t, err)
	// Tentativa única, sem retry
	assert.True(t, apiErrors.HasCode(err, apiErrors.ErrTokenExchange))
	assert.Contains(t, err.Error(), "status: 400")
}

func TestAccessToken_RespostaSemToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token_type": "Bearer"}`))
	}))
	defer server.Close()

	tokenManager, _ := newTestTokenManager(t, &config.AppleAds{TokenURL: server.URL})

	_, err := tokenManager.AccessToken()
	require.Error(t, err)
	assert.True(t, apiErrors.HasCode(err, apiErrors.ErrMalformedToken))
}
