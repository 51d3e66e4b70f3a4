package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/asaclient"
	"github.com/vfg2006/searchads-manager-api/internal/config"
	"github.com/vfg2006/searchads-manager-api/internal/domain"
	"github.com/vfg2006/searchads-manager-api/internal/usecases/spending"
	"github.com/vfg2006/searchads-manager-api/pkg/export"
	"github.com/vfg2006/searchads-manager-api/pkg/log"
	"github.com/vfg2006/searchads-manager-api/pkg/utils"
)

// Gera relatórios de gasto (diário ou por app) e exporta em CSV ou XLSX
func main() {
	configureLogger()

	days := flag.Int("days", 7, "Quantidade de dias do período (a partir de hoje)")
	startDate := flag.String("start", "", "Data inicial AAAA-MM-DD (substitui -days, exige -end)")
	endDate := flag.String("end", "", "Data final AAAA-MM-DD")
	byApp := flag.Bool("by-app", false, "Agregar por app (adamId) em vez de por dia")
	allOrgs := flag.Bool("all-orgs", false, "Considerar campanhas de todas as organizações")
	output := flag.String("output", "", "Arquivo de saída (padrão: nome gerado)")
	format := flag.String("format", "csv", "Formato de saída: csv ou xlsx")
	flag.Parse()

	if err := run(*days, *startDate, *endDate, *byApp, *allOrgs, *output, *format); err != nil {
		logrus.WithError(err).Error("Falha ao gerar o relatório de gastos")
		os.Exit(1)
	}
}

func run(days int, startDate, endDate string, byApp, allOrgs bool, output, format string) error {
	if format != "csv" && format != "xlsx" {
		return fmt.Errorf("formato de saída desconhecido: %s", format)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("erro ao carregar a configuração: %w", err)
	}

	credentials, err := asaclient.ResolveCredentials(asaclient.CredentialParams{}, &cfg.AppleAds)
	if err != nil {
		return err
	}

	tokenManager := asaclient.NewTokenManager(&cfg.AppleAds, credentials)
	client := asaclient.NewClient(cfg, tokenManager)
	service := spending.NewService(cfg, client)

	ctx, _ := log.WithCorrelationID(context.Background())

	start, end, err := resolvePeriod(days, startDate, endDate)
	if err != nil {
		return err
	}

	fmt.Printf("Período analisado: %s a %s\n", start.Format(time.DateOnly), end.Format(time.DateOnly))

	if byApp {
		return runByApp(ctx, service, start, end, allOrgs, output, format)
	}

	return runDaily(ctx, service, days, output, format)
}

func runDaily(ctx context.Context, service spending.Spender, days int, output, format string) error {
	rows, err := service.DailySpend(ctx, days)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("Nenhum dado de gasto encontrado para o período")
		return nil
	}

	var totalSpend float64
	var totalInstalls int64
	for _, row := range rows {
		totalSpend += row.Spend
		totalInstalls += row.Installs
	}
	fmt.Printf("Dias com atividade: %d | Gasto total: %.2f | Instalações: %d\n",
		len(rows), totalSpend, totalInstalls)

	if output == "" {
		output = export.DefaultFileName("daily-spend", format)
	}

	if format == "xlsx" {
		if err := export.WriteDailySpendXLSX(output, rows); err != nil {
			return err
		}
	} else {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := export.WriteDailySpendCSV(file, rows); err != nil {
			return err
		}
	}

	fmt.Printf("Relatório exportado para %s\n", output)
	return nil
}

func runByApp(ctx context.Context, service spending.Spender, start, end time.Time, allOrgs bool, output, format string) error {
	rows, err := service.DailySpendByApp(ctx, start, end, allOrgs)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		fmt.Println("Nenhum dado de gasto encontrado para o período")
		return nil
	}

	apps := make(map[string]struct{})
	for _, row := range rows {
		apps[row.AppID] = struct{}{}
	}
	fmt.Printf("Grupos (dia, app): %d | Apps distintos: %d\n", len(rows), len(apps))

	unknown := 0
	for _, row := range rows {
		if row.AppID == domain.UnknownAppID {
			unknown++
		}
	}
	if unknown > 0 {
		fmt.Printf("Aviso: %d grupo(s) sem app resolvido (app_id=%s)\n", unknown, domain.UnknownAppID)
	}

	if output == "" {
		output = export.DefaultFileName("app-spend", format)
	}

	if format == "xlsx" {
		if err := export.WriteAppSpendXLSX(output, rows); err != nil {
			return err
		}
	} else {
		file, err := os.Create(output)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := export.WriteAppSpendCSV(file, rows); err != nil {
			return err
		}
	}

	fmt.Printf("Relatório exportado para %s\n", output)
	return nil
}

func resolvePeriod(days int, startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" && endDate == "" {
		end := time.Now()
		return end.AddDate(0, 0, -days), end, nil
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("data inicial inválida: %w", err)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("data final inválida: %w", err)
	}

	if start.IsZero() || end.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("-start e -end devem ser informados juntos")
	}

	if end.Before(*start) {
		return time.Time{}, time.Time{}, fmt.Errorf("a data inicial não pode ser posterior à data final")
	}

	return *start, *end, nil
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetOutput(os.Stdout)
}
