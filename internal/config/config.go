package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	AppleAds AppleAds `mapstructure:",squash"`
	Report   Report   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// AppleAds reúne as configurações de acesso à API do Apple Search Ads
type AppleAds struct {
	ClientID          string        `mapstructure:"apple_search_ads_client_id"`
	TeamID            string        `mapstructure:"apple_search_ads_team_id"`
	KeyID             string        `mapstructure:"apple_search_ads_key_id"`
	PrivateKeyPath    string        `mapstructure:"apple_search_ads_private_key_path"`
	PrivateKeyContent string        `mapstructure:"apple_search_ads_private_key"`
	AuthURL           string        `mapstructure:"apple_search_ads_auth_url"`
	TokenURL          string        `mapstructure:"apple_search_ads_token_url"`
	BaseURL           string        `mapstructure:"apple_search_ads_base_url"`
	RequestTimeout    time.Duration `mapstructure:"apple_search_ads_request_timeout"`
}

type Report struct {
	LookbackDays      int `mapstructure:"spend_report_lookback_days"`
	PageSize          int `mapstructure:"spend_report_page_size"`
	MaxRangeDays      int `mapstructure:"spend_report_max_range_days"`
	DetailsWindowDays int `mapstructure:"spend_report_details_window_days"`
}

func SetDefaults() {
	viper.SetDefault("APPLE_SEARCH_ADS_AUTH_URL", "https://appleid.apple.com")
	viper.SetDefault("APPLE_SEARCH_ADS_TOKEN_URL", "https://appleid.apple.com/auth/oauth2/token")
	viper.SetDefault("APPLE_SEARCH_ADS_BASE_URL", "https://api.searchads.apple.com/api/v5")
	viper.SetDefault("APPLE_SEARCH_ADS_REQUEST_TIMEOUT", "30s")

	viper.SetDefault("SPEND_REPORT_LOOKBACK_DAYS", 7)        // 7 dias de histórico por padrão
	viper.SetDefault("SPEND_REPORT_PAGE_SIZE", 1000)         // Tamanho máximo de página aceito pela API
	viper.SetDefault("SPEND_REPORT_MAX_RANGE_DAYS", 90)      // Limite de período imposto pela API de relatórios
	viper.SetDefault("SPEND_REPORT_DETAILS_WINDOW_DAYS", 30) // Janela usada para resolver adamId ausente

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando apenas variáveis de ambiente")
}
