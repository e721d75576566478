package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Axcelerate      Axcelerate      `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	Retry           Retry           `mapstructure:",squash"`
	DashboardWarmup DashboardWarmup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Axcelerate contém os dados de acesso à API de treinamentos
type Axcelerate struct {
	URL      string        `mapstructure:"axcelerate_url"`
	APIToken string        `mapstructure:"axcelerate_api_token"`
	WSToken  string        `mapstructure:"axcelerate_ws_token"`
	Timeout  time.Duration `mapstructure:"axcelerate_timeout"`
	PageSize int           `mapstructure:"axcelerate_page_size"`
}

type Dashboard struct {
	CacheTTL       time.Duration `mapstructure:"dashboard_cache_ttl"`
	MaxConcurrency int           `mapstructure:"dashboard_max_concurrency"`
}

type Retry struct {
	MaxRetries     int           `mapstructure:"retry_max_retries"`
	InitialBackoff time.Duration `mapstructure:"retry_initial_backoff"`
}

type DashboardWarmup struct {
	CronSchedule  string   `mapstructure:"dashboard_warmup_cron"`
	Enabled       bool     `mapstructure:"dashboard_warmup_enabled"`
	Locations     []string `mapstructure:"dashboard_warmup_locations"`
	LookaheadDays int      `mapstructure:"dashboard_warmup_lookahead_days"`
	RevenueMode   string   `mapstructure:"dashboard_warmup_revenue_mode"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("AXCELERATE_URL", "https://citc.app.axcelerate.com/api")
	viper.SetDefault("AXCELERATE_API_TOKEN", "")
	viper.SetDefault("AXCELERATE_WS_TOKEN", "")
	viper.SetDefault("AXCELERATE_TIMEOUT", "30s")
	viper.SetDefault("AXCELERATE_PAGE_SIZE", 100)

	viper.SetDefault("DASHBOARD_CACHE_TTL", "25s")
	viper.SetDefault("DASHBOARD_MAX_CONCURRENCY", 8)

	viper.SetDefault("RETRY_MAX_RETRIES", 2)         // 3 tentativas no total
	viper.SetDefault("RETRY_INITIAL_BACKOFF", "200ms") // dobra a cada nova tentativa

	viper.SetDefault("DASHBOARD_WARMUP_CRON", "*/5 6-18 * * 1-5") // A cada 5 minutos em horário comercial
	viper.SetDefault("DASHBOARD_WARMUP_ENABLED", false)
	viper.SetDefault("DASHBOARD_WARMUP_LOCATIONS", "")
	viper.SetDefault("DASHBOARD_WARMUP_LOOKAHEAD_DAYS", 14)
	viper.SetDefault("DASHBOARD_WARMUP_REVENUE_MODE", "enrolment")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Server.AllowedOrigins = compact(config.Server.AllowedOrigins)
	config.DashboardWarmup.Locations = compact(config.DashboardWarmup.Locations)

	return config, nil
}

// compact remove itens vazios que sobram de listas como "a,,b,"
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
