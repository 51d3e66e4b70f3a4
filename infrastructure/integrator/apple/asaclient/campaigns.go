package asaclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	appledomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/domain"
)

type ResponseCampaigns struct {
	Data       []appledomain.Campaign  `json:"data"`
	Pagination *appledomain.Pagination `json:"pagination,omitempty"`
}

// ListCampaigns lista as campanhas da organização informada, percorrendo
// todas as páginas (limit/offset) até esgotar totalResults. Cada campanha
// sai carimbada com FetchedOrgID da organização consultada
func (c *AppleAdsClient) ListCampaigns(ctx context.Context, orgID int64) ([]appledomain.Campaign, error) {
	endpoint := fmt.Sprintf("%s/campaigns", c.Cfg.AppleAds.BaseURL)

	pageSize := c.Cfg.Report.PageSize
	if pageSize <= 0 {
		pageSize = 1000
	}

	campaigns := make([]appledomain.Campaign, 0)
	offset := 0

	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(pageSize))
		query.Set("offset", strconv.Itoa(offset))

		var response ResponseCampaigns
		if err := c.makeRequest(ctx, http.MethodGet, endpoint, nil, query, orgID, &response); err != nil {
			return nil, err
		}

		for i := range response.Data {
			response.Data[i].FetchedOrgID = orgID
		}
		campaigns = append(campaigns, response.Data...)

		if response.Pagination == nil || len(response.Data) == 0 {
			break
		}

		offset += len(response.Data)
		if offset >= response.Pagination.TotalResults {
			break
		}
	}

	return campaigns, nil
}

// ListCampaignsAllOrgs concatena as campanhas de todas as organizações
// visíveis, anotando cada uma com o nome da organização de origem. Falha em
// uma organização não derruba as demais
func (c *AppleAdsClient) ListCampaignsAllOrgs(ctx context.Context) ([]appledomain.Campaign, error) {
	organizations, err := c.ListOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	campaigns := make([]appledomain.Campaign, 0)
	for _, org := range organizations {
		orgCampaigns, err := c.ListCampaigns(ctx, org.OrgID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"org_id":   org.OrgID,
				"org_name": org.OrgName,
				"error":    err.Error(),
			}).Error("Erro ao listar campanhas da organização; seguindo para a próxima")
			continue
		}

		for i := range orgCampaigns {
			orgCampaigns[i].OrgName = org.OrgName
		}
		campaigns = append(campaigns, orgCampaigns...)
	}

	return campaigns, nil
}

// CampaignsWithDetails lista campanhas e completa o AdamID ausente usando
// um relatório recente: a listagem nem sempre traz o app vinculado, mas as
// linhas de relatório trazem
func (c *AppleAdsClient) CampaignsWithDetails(ctx context.Context, fetchAllOrgs bool) ([]appledomain.Campaign, error) {
	var campaigns []appledomain.Campaign
	var err error

	if fetchAllOrgs {
		campaigns, err = c.ListCampaignsAllOrgs(ctx)
	} else {
		organizations, orgErr := c.ListOrganizations(ctx)
		if orgErr != nil {
			return nil, orgErr
		}
		if len(organizations) == 0 {
			return []appledomain.Campaign{}, nil
		}
		campaigns, err = c.ListCampaigns(ctx, organizations[0].OrgID)
	}
	if err != nil {
		return nil, err
	}

	missing := false
	for i := range campaigns {
		if campaigns[i].AdamID == 0 {
			missing = true
			break
		}
	}
	if !missing {
		return campaigns, nil
	}

	adamIDs, err := c.adamIDsFromRecentReports(ctx, campaigns)
	if err != nil {
		// O backfill é melhor-esforço: a lista de campanhas continua válida
		logrus.WithError(err).Warn("Erro ao resolver adamId via relatório; campanhas seguem sem o vínculo")
		return campaigns, nil
	}

	for i := range campaigns {
		if campaigns[i].AdamID == 0 {
			campaigns[i].AdamID = adamIDs[campaigns[i].ID]
		}
	}

	return campaigns, nil
}

// adamIDsFromRecentReports busca um relatório da janela recente para cada
// organização presente no conjunto e indexa adamId por campanha
func (c *AppleAdsClient) adamIDsFromRecentReports(ctx context.Context, campaigns []appledomain.Campaign) (map[int64]int64, error) {
	windowDays := c.Cfg.Report.DetailsWindowDays
	if windowDays <= 0 {
		windowDays = 30
	}

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -windowDays)

	orgIDs := make(map[int64]struct{})
	for _, campaign := range campaigns {
		if campaign.FetchedOrgID != 0 {
			orgIDs[campaign.FetchedOrgID] = struct{}{}
		}
	}

	adamIDs := make(map[int64]int64)
	for orgID := range orgIDs {
		rows, err := c.FetchReport(ctx, startDate, endDate, appledomain.GranularityDaily, orgID)
		if err != nil {
			return nil, err
		}

		for _, row := range rows {
			if row.AdamID != 0 {
				adamIDs[row.CampaignID] = row.AdamID
			}
		}
	}

	return adamIDs, nil
}
