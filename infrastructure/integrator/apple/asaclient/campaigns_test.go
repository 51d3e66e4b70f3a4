package asaclient

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCampaigns(t *testing.T) {
	var gotOrgContext string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotOrgContext = r.Header.Get("X-AP-Context")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [
				{"id": 1, "name": "Campaign 1", "status": "ENABLED", "adamId": 123456},
				{"id": 2, "name": "Campaign 2", "status": "PAUSED"}
			],
			"pagination": {"totalResults": 2, "startIndex": 0, "itemsPerPage": 1000}
		}`))
	})

	campaigns, err := client.ListCampaigns(context.Background(), 123)
	require.NoError(t, err)

	// A listagem de campanhas é sempre escopada por organização
	assert.Equal(t, "orgId=123", gotOrgContext)

	require.Len(t, campaigns, 2)
	assert.Equal(t, int64(123), campaigns[0].FetchedOrgID)
	assert.Equal(t, int64(123), campaigns[1].FetchedOrgID)
	assert.Equal(t, "Campaign 2", campaigns[1].Name)
	assert.Equal(t, int64(123456), campaigns[0].AdamID)
}

func TestListCampaigns_PercorreTodasAsPaginas(t *testing.T) {
	requests := 0

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		offset := r.URL.Query().Get("offset")

		w.Header().Set("Content-Type", "application/json")
		switch offset {
		case "0":
			w.Write([]byte(`{
				"data": [{"id": 1, "name": "Campaign 1"}, {"id": 2, "name": "Campaign 2"}],
				"pagination": {"totalResults": 3, "startIndex": 0, "itemsPerPage": 2}
			}`))
		default:
			w.Write([]byte(`{
				"data": [{"id": 3, "name": "Campaign 3"}],
				"pagination": {"totalResults": 3, "startIndex": 2, "itemsPerPage": 2}
			}`))
		}
	})
	client.Cfg.Report.PageSize = 2

	campaigns, err := client.ListCampaigns(context.Background(), 123)
	require.NoError(t, err)

	assert.Equal(t, 2, requests)
	require.Len(t, campaigns, 3)
	// Páginas concatenadas em ordem
	assert.Equal(t, int64(1), campaigns[0].ID)
	assert.Equal(t, int64(3), campaigns[2].ID)
}

func TestListCampaignsAllOrgs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.URL.Path == "/acls" {
			w.Write([]byte(`{
				"data": [
					{"orgId": 1, "orgName": "Org A"},
					{"orgId": 2, "orgName": "Org B"}
				]
			}`))
			return
		}

		orgContext := r.Header.Get("X-AP-Context")
		if orgContext == "orgId=2" {
			// Falha em uma organização não derruba as demais
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": {"errors": [{"message": "indisponível"}]}}`))
			return
		}

		w.Write([]byte(`{
			"data": [{"id": 10, "name": "Campaign A"}],
			"pagination": {"totalResults": 1, "startIndex": 0, "itemsPerPage": 1000}
		}`))
	})

	campaigns, err := client.ListCampaignsAllOrgs(context.Background())
	require.NoError(t, err)

	require.Len(t, campaigns, 1)
	assert.Equal(t, "Org A", campaigns[0].OrgName)
	assert.Equal(t, int64(1), campaigns[0].FetchedOrgID)
}

func TestCampaignsWithDetails_PreencheAdamIDViaRelatorio(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/acls":
			w.Write([]byte(`{"data": [{"orgId": 1, "orgName": "Org A"}]}`))
		case "/campaigns":
			w.Write([]byte(`{
				"data": [
					{"id": 10, "name": "Campaign A", "adamId": 111},
					{"id": 20, "name": "Campaign B"}
				],
				"pagination": {"totalResults": 2, "startIndex": 0, "itemsPerPage": 1000}
			}`))
		case "/reports/campaigns":
			w.Write([]byte(`{
				"data": {
					"reportingDataResponse": {
						"row": [{
							"metadata": {"campaignId": 20, "campaignName": "Campaign B", "adamId": 222},
							"granularity": [{"date": "2024-01-01", "impressions": 1, "taps": 1, "totalInstalls": 1, "localSpend": {"amount": 1.0, "currency": "USD"}}]
						}]
					}
				}
			}`))
		default:
			t.Fatalf("endpoint inesperado: %s", r.URL.Path)
		}
	})

	campaigns, err := client.CampaignsWithDetails(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, campaigns, 2)
	assert.Equal(t, int64(111), campaigns[0].AdamID)
	// AdamID ausente na listagem vem do relatório recente
	assert.Equal(t, int64(222), campaigns[1].AdamID)
}

func TestMakeRequest_RepeteUmaVezApos401(t *testing.T) {
	requests := 0

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": {"errors": [{"message": "token expirado"}]}}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"orgId": 1, "orgName": "Org A"}]}`))
	})

	organizations, err := client.ListOrganizations(context.Background())
	require.NoError(t, err)

	// Exatamente uma repetição com token novo
	assert.Equal(t, 2, requests)
	require.Len(t, organizations, 1)
}

func TestMakeRequest_NaoRepeteDuasVezes(t *testing.T) {
	requests := 0

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(fmt.Sprintf(`{"error": {"errors": [{"message": "tentativa %d"}]}}`, requests)))
	})

	_, err := client.ListOrganizations(context.Background())
	require.Error(t, err)
	assert.Equal(t, 2, requests)
	assert.Contains(t, err.Error(), "status: 401")
}
