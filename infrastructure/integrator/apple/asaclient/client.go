package asaclient

import (
	"context"
	"net/http"
	"time"

	appledomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/domain"
	"github.com/vfg2006/searchads-manager-api/internal/config"
)

type Client interface {
	ListOrganizations(ctx context.Context) ([]appledomain.Organization, error)
	ListCampaigns(ctx context.Context, orgID int64) ([]appledomain.Campaign, error)
	ListCampaignsAllOrgs(ctx context.Context) ([]appledomain.Campaign, error)
	FetchReport(ctx context.Context, startDate, endDate time.Time, granularity string, orgID int64) ([]appledomain.ReportRow, error)
	CampaignsWithDetails(ctx context.Context, fetchAllOrgs bool) ([]appledomain.Campaign, error)
}

type AppleAdsClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	client := &AppleAdsClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient: &http.Client{
			Timeout: cfg.AppleAds.RequestTimeout,
		},
	}
	return client
}
