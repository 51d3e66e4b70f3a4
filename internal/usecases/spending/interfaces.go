package spending

import (
	"context"
	"time"

	"github.com/vfg2006/searchads-manager-api/internal/domain"
)

// Spender define a interface de agregação de gastos de anúncios
type Spender interface {
	// DailySpend agrega o gasto por dia dos últimos N dias
	DailySpend(ctx context.Context, days int) ([]*domain.DailySpend, error)

	// DailySpendByApp agrega o gasto por (dia, app) no período informado
	DailySpendByApp(ctx context.Context, startDate, endDate time.Time, fetchAllOrgs bool) ([]*domain.AppSpend, error)
}
