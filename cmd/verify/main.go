package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/searchads-manager-api/infrastructure/integrator/apple/asaclient"
	"github.com/vfg2006/searchads-manager-api/internal/config"
)

var requiredVars = []string{
	"APPLE_SEARCH_ADS_CLIENT_ID",
	"APPLE_SEARCH_ADS_TEAM_ID",
	"APPLE_SEARCH_ADS_KEY_ID",
	"APPLE_SEARCH_ADS_PRIVATE_KEY_PATH",
}

// Utilitário de verificação de credenciais do Apple Search Ads: valida as
// variáveis de ambiente e a chave privada, autentica e lista as
// organizações. Sai com 0 em caso de sucesso e 1 em caso de falha
func main() {
	configureLogger()

	if err := run(); err != nil {
		logrus.WithError(err).Error("Falha na verificação de credenciais")
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("Verificação de credenciais do Apple Search Ads")
	fmt.Println(strings.Repeat("=", 50))

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("erro ao carregar a configuração: %w", err)
	}

	// 1. Variáveis de ambiente obrigatórias
	fmt.Println("\n1. Verificando variáveis de ambiente:")
	allPresent := true
	for _, name := range requiredVars {
		value := os.Getenv(name)
		if value != "" {
			fmt.Printf("   [ok] %s: %s...\n", name, truncate(value, 20))
		} else {
			fmt.Printf("   [!!] %s: NÃO DEFINIDA\n", name)
			allPresent = false
		}
	}
	if !allPresent {
		return fmt.Errorf("variáveis de ambiente obrigatórias ausentes")
	}

	// 2. Arquivo de chave privada com cabeçalho PEM reconhecível
	fmt.Println("\n2. Verificando a chave privada:")
	keyPath := os.Getenv("APPLE_SEARCH_ADS_PRIVATE_KEY_PATH")
	content, err := os.ReadFile(keyPath)
	if err != nil {
		return fmt.Errorf("erro ao ler a chave privada em %s: %w", keyPath, err)
	}
	if !looksLikePrivateKey(string(content)) {
		return fmt.Errorf("o arquivo %s não parece ser uma chave privada PEM", keyPath)
	}
	fmt.Printf("   [ok] Chave privada encontrada em: %s\n", keyPath)

	// 3. Autenticação
	fmt.Println("\n3. Testando a autenticação:")
	credentials, err := asaclient.ResolveCredentials(asaclient.CredentialParams{}, &cfg.AppleAds)
	if err != nil {
		return err
	}

	tokenManager := asaclient.NewTokenManager(&cfg.AppleAds, credentials)
	token, err := tokenManager.AccessToken()
	if err != nil {
		return err
	}
	fmt.Printf("   [ok] Access token obtido: %s...\n", truncate(token, 20))

	// 4. Listagem de organizações
	fmt.Println("\n4. Buscando organizações:")
	client := asaclient.NewClient(cfg, tokenManager)
	organizations, err := client.ListOrganizations(context.Background())
	if err != nil {
		return err
	}

	if len(organizations) == 0 {
		// Zero organizações não é falha de credencial: contas novas podem
		// não ter nenhuma ainda
		fmt.Println("   [aviso] Nenhuma organização encontrada (pode ser normal para contas novas)")
	} else {
		fmt.Printf("   [ok] %d organização(ões) encontrada(s):\n", len(organizations))
		for _, org := range organizations {
			fmt.Printf("      - %s (ID: %d)\n", org.OrgName, org.OrgID)
			if org.Currency != "" {
				fmt.Printf("        Moeda: %s\n", org.Currency)
			}
			if org.PaymentModel != "" {
				fmt.Printf("        Modelo de pagamento: %s\n", org.PaymentModel)
			}
		}
	}

	fmt.Println("\nCredenciais verificadas com sucesso!")
	return nil
}

func looksLikePrivateKey(content string) bool {
	return strings.Contains(content, "BEGIN PRIVATE KEY") ||
		strings.Contains(content, "BEGIN EC PRIVATE KEY") ||
		strings.Contains(content, "BEGIN RSA PRIVATE KEY")
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max]
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logrus.SetOutput(os.Stdout)
}
