package spending

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/asaclient"
	appledomain "github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/domain"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/pkg/log"
	"github.com/vfg2006/searchads-manager-api/pkg/utils"
)

// Service implementa a interface Spender sobre o cliente da API
type Service struct {
	cfg    *config.Config
	client asaclient.Client
}

// NewService cria uma nova instância do serviço de agregação de gastos
func NewService(cfg *config.Config, client asaclient.Client) Spender {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// DailySpend busca o relatório dos últimos N dias e agrega por dia, em
// ordem crescente de data. A coluna pública é "clicks" (taps na API).
// Relatório vazio devolve lista vazia: ausência de dados não é erro
func (s *Service) DailySpend(ctx context.Context, days int) ([]*domain.DailySpend, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	orgID, err := s.defaultOrgID(ctx)
	if err != nil {
		return nil, err
	}
	if orgID == 0 {
		log.ForContext(ctx).Warn("Nenhuma organização visível para o token; devolvendo agregado vazio")
		return []*domain.DailySpend{}, nil
	}

	rows, err := s.client.FetchReport(ctx, startDate, endDate, appledomain.GranularityDaily, orgID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o relatório de campanhas")
	}

	byDate := make(map[string]*domain.DailySpend)
	for _, row := range rows {
		group, ok := byDate[row.Date]
		if !ok {
			group = &domain.DailySpend{Date: row.Date}
			byDate[row.Date] = group
		}

		group.Spend += row.Spend
		group.Impressions += row.Impressions
		group.Clicks += row.Taps
		group.Installs += row.Installs
	}

	result := make([]*domain.DailySpend, 0, len(byDate))
	for _, group := range byDate {
		group.Spend = utils.RoundWithTwoDecimalPlace(group.Spend)
		group.CPI = ratio(group.Spend, float64(group.Installs), 1)
		group.CTR = ratio(float64(group.Clicks), float64(group.Impressions), 100)
		group.CVR = ratio(float64(group.Installs), float64(group.Clicks), 100)
		result = append(result, group)
	}

	// Datas em formato ISO ordenam lexicograficamente
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	return result, nil
}

// DailySpendByApp junta as linhas do relatório com o adamId de cada campanha
// e agrega por (dia, app). Campanha sem app resolvível entra no grupo
// "unknown"; a coluna campaigns conta campanhas distintas por grupo
func (s *Service) DailySpendByApp(ctx context.Context, startDate, endDate time.Time, fetchAllOrgs bool) ([]*domain.AppSpend, error) {
	campaigns, err := s.client.CampaignsWithDetails(ctx, fetchAllOrgs)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar a lista de campanhas")
	}

	appByCampaign := make(map[int64]string)
	for _, campaign := range campaigns {
		if campaign.AdamID != 0 {
			appByCampaign[campaign.ID] = strconv.FormatInt(campaign.AdamID, 10)
		}
	}

	orgID, err := s.defaultOrgID(ctx)
	if err != nil {
		return nil, err
	}
	if orgID == 0 {
		return []*domain.AppSpend{}, nil
	}

	rows, err := s.client.FetchReport(ctx, startDate, endDate, appledomain.GranularityDaily, orgID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar o relatório de campanhas")
	}

	type groupKey struct {
		date  string
		appID string
	}

	groups := make(map[groupKey]*domain.AppSpend)
	campaignsPerGroup := make(map[groupKey]map[int64]struct{})

	for _, row := range rows {
		appID, ok := appByCampaign[row.CampaignID]
		if !ok {
			if row.AdamID != 0 {
				appID = strconv.FormatInt(row.AdamID, 10)
			} else {
				appID = domain.UnknownAppID
			}
		}

		key := groupKey{date: row.Date, appID: appID}
		group, ok := groups[key]
		if !ok {
			group = &domain.AppSpend{Date: row.Date, AppID: appID}
			groups[key] = group
			campaignsPerGroup[key] = make(map[int64]struct{})
		}

		group.Spend += row.Spend
		group.Impressions += row.Impressions
		group.Clicks += row.Taps
		group.Installs += row.Installs
		campaignsPerGroup[key][row.CampaignID] = struct{}{}
	}

	result := make([]*domain.AppSpend, 0, len(groups))
	for key, group := range groups {
		group.Spend = utils.RoundWithTwoDecimalPlace(group.Spend)
		group.Campaigns = len(campaignsPerGroup[key])
		group.CPI = ratio(group.Spend, float64(group.Installs), 1)
		group.CTR = ratio(float64(group.Clicks), float64(group.Impressions), 100)
		group.CVR = ratio(float64(group.Installs), float64(group.Clicks), 100)
		result = append(result, group)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].AppID < result[j].AppID
	})

	return result, nil
}

// defaultOrgID resolve a organização padrão (a primeira visível ao token).
// Zero organizações devolve 0 sem erro: é "nenhuma atividade", não falha
func (s *Service) defaultOrgID(ctx context.Context) (int64, error) {
	organizations, err := s.client.ListOrganizations(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao listar organizações")
	}

	if len(organizations) == 0 {
		return 0, nil
	}

	return organizations[0].OrgID, nil
}

// ratio calcula numerador/denominador*escala arredondado em duas casas, ou
// nil quando o denominador não é positivo (indisponível, não erro)
func ratio(numerator, denominator, scale float64) *float64 {
	if denominator <= 0 {
		return nil
	}

	value := utils.RoundWithTwoDecimalPlace(numerator / denominator * scale)
	return &value
}
