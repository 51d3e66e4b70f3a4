package asaclient

import (
	"context"
	"fmt"
	"net/http"

	appledomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/domain"
)

type ResponseOrganizations struct {
	Data       []appledomain.Organization `json:"data"`
	Pagination *appledomain.Pagination    `json:"pagination,omitempty"`
}

// ListOrganizations lista as organizações às quais o token tem acesso.
// Chamada sem contexto de organização; lista vazia não é erro
func (c *AppleAdsClient) ListOrganizations(ctx context.Context) ([]appledomain.Organization, error) {
	url := fmt.Sprintf("%s/acls", c.Cfg.AppleAds.BaseURL)

	var response ResponseOrganizations
	if err := c.makeRequest(ctx, http.MethodGet, url, nil, nil, 0, &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return []appledomain.Organization{}, nil
	}

	return response.Data, nil
}
