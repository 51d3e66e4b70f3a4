package asaclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/vfg2006/searchads-manager-api/internal/config"
)

// newTestClient sobe um servidor de teste que atende o endpoint de token em
// /auth/oauth2/token e delega o restante ao handler informado
func newTestClient(t *testing.T, handler http.HandlerFunc) (*AppleAdsClient, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "test_access_token"}`))
	})
	mux.HandleFunc("/", handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	_, pemBytes := generateTestKey(t)

	cfg := &config.Config{
		AppleAds: config.AppleAds{
			AuthURL:        "https://appleid.apple.com",
			TokenURL:       server.URL + "/auth/oauth2/token",
			BaseURL:        server.URL,
			RequestTimeout: 5 * time.Second,
		},
		Report: config.Report{
			PageSize:          1000,
			MaxRangeDays:      90,
			DetailsWindowDays: 30,
		},
	}

	tokenManager := NewTokenManager(&cfg.AppleAds, &Credentials{
		ClientID:   "test_client_id",
		TeamID:     "test_team_id",
		KeyID:      "test_key_id",
		PrivateKey: pemBytes,
	})

	return NewClient(cfg, tokenManager).(*AppleAdsClient), server
}
