package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Meta                Meta                `mapstructure:",squash"`
	GoogleAds           GoogleAds           `mapstructure:",squash"`
	GoHighLevel         GoHighLevel         `mapstructure:",squash"`
	Sheets              Sheets              `mapstructure:",squash"`
	OAuth               OAuth               `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Requester           Requester           `mapstructure:",squash"`
	MetaInsightSync     MetaInsightSync     `mapstructure:",squash"`
	GoogleInsightSync   GoogleInsightSync   `mapstructure:",squash"`
	MonthlyInsightsSync MonthlyInsightsSync `mapstructure:",squash"`
	InsightRetention    InsightRetention    `mapstructure:",squash"`
	SecretKey           string              `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN                    string `mapstructure:"-"`
	Driver                 string `mapstructure:"database_driver"`
	Password               string `mapstructure:"database_password"`
	URL                    string `mapstructure:"database_url"`
	User                   string `mapstructure:"database_user"`
	MaxOpenConns           int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns           int    `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetimeMinutes int    `mapstructure:"database_conn_max_lifetime_minutes"`
}

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

type GoogleAds struct {
	URL            string `mapstructure:"google_ads_url"`
	Version        string `mapstructure:"google_ads_version"`
	DeveloperToken string `mapstructure:"google_ads_developer_token"`
	LoginCustomer  string `mapstructure:"google_ads_login_customer_id"`
}

type GoHighLevel struct {
	URL        string `mapstructure:"ghl_url"`
	APIVersion string `mapstructure:"ghl_api_version"`
}

type Sheets struct {
	URL string `mapstructure:"sheets_url"`
}

// OAuth guarda as credenciais usadas nas trocas de código por token
// (Google usa PKCE; Meta usa o fluxo fb_exchange_token).
type OAuth struct {
	GoogleClientID     string `mapstructure:"google_oauth_client_id"`
	GoogleClientSecret string `mapstructure:"google_oauth_client_secret"`
	GoogleAuthURL      string `mapstructure:"google_oauth_auth_url"`
	GoogleTokenURL     string `mapstructure:"google_oauth_token_url"`
	MetaAuthURL        string `mapstructure:"meta_oauth_auth_url"`
	GHLClientID        string `mapstructure:"ghl_oauth_client_id"`
	GHLClientSecret    string `mapstructure:"ghl_oauth_client_secret"`
	GHLAuthURL         string `mapstructure:"ghl_oauth_auth_url"`
	GHLTokenURL        string `mapstructure:"ghl_oauth_token_url"`
	RedirectURI        string `mapstructure:"oauth_redirect_uri"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Requester configura o cliente HTTP resiliente compartilhado pelos integradores
type Requester struct {
	TimeoutSeconds  int `mapstructure:"requester_timeout_seconds"`
	MaxAttempts     int `mapstructure:"requester_max_attempts"`
	BackoffBaseMs   int `mapstructure:"requester_backoff_base_ms"`
	CacheTTLSeconds int `mapstructure:"requester_cache_ttl_seconds"`
}

type MetaInsightSync struct {
	CronSchedule        string `mapstructure:"meta_insight_sync_cron"`
	LookbackDays        int    `mapstructure:"meta_insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"meta_insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"meta_insight_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"meta_insight_sync_enabled"`
}

type GoogleInsightSync struct {
	CronSchedule        string `mapstructure:"google_insight_sync_cron"`
	LookbackDays        int    `mapstructure:"google_insight_sync_lookback_days"`
	RequestDelaySeconds int    `mapstructure:"google_insight_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"google_insight_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"google_insight_sync_enabled"`
}

type MonthlyInsightsSync struct {
	CronSchedule        string `mapstructure:"monthly_insights_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"monthly_insights_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"monthly_insights_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"monthly_insights_sync_enabled"`
	MonthLookBack       int    `mapstructure:"monthly_insights_sync_month_lookback"`
}

// InsightRetention controla por quantos dias os insights em cache são
// mantidos antes da limpeza pelos agendadores. Zero desabilita a limpeza.
type InsightRetention struct {
	DailyDays   int `mapstructure:"insight_retention_daily_days"`
	MonthlyDays int `mapstructure:"insight_retention_monthly_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/reporting")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME_MINUTES", 30)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("GOOGLE_ADS_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")
	viper.SetDefault("GOOGLE_ADS_DEVELOPER_TOKEN", "your_developer_token")
	viper.SetDefault("GOOGLE_ADS_LOGIN_CUSTOMER_ID", "")

	viper.SetDefault("GHL_URL", "https://services.leadconnectorhq.com")
	viper.SetDefault("GHL_API_VERSION", "2021-07-28")

	viper.SetDefault("SHEETS_URL", "https://sheets.googleapis.com/v4")

	viper.SetDefault("GOOGLE_OAUTH_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("META_OAUTH_AUTH_URL", "https://www.facebook.com/v22.0/dialog/oauth")
	viper.SetDefault("GHL_OAUTH_CLIENT_ID", "")
	viper.SetDefault("GHL_OAUTH_CLIENT_SECRET", "")
	viper.SetDefault("GHL_OAUTH_AUTH_URL", "https://marketplace.gohighlevel.com/oauth/chooselocation")
	viper.SetDefault("GHL_OAUTH_TOKEN_URL", "https://services.leadconnectorhq.com/oauth/token")
	viper.SetDefault("OAUTH_REDIRECT_URI", "http://localhost:3000/oauth/callback")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	// Defaults do cliente HTTP resiliente
	viper.SetDefault("REQUESTER_TIMEOUT_SECONDS", 30)
	viper.SetDefault("REQUESTER_MAX_ATTEMPTS", 3)
	viper.SetDefault("REQUESTER_BACKOFF_BASE_MS", 500)
	viper.SetDefault("REQUESTER_CACHE_TTL_SECONDS", 300) // 5 minutos

	// Defaults para sincronização de insights do Meta
	viper.SetDefault("META_INSIGHT_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("META_INSIGHT_SYNC_LOOKBACK_DAYS", 7)         // 7 dias para buscar dados
	viper.SetDefault("META_INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("META_INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("META_INSIGHT_SYNC_ENABLED", false)

	// Defaults para sincronização de insights do Google Ads
	viper.SetDefault("GOOGLE_INSIGHT_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("GOOGLE_INSIGHT_SYNC_LOOKBACK_DAYS", 7)
	viper.SetDefault("GOOGLE_INSIGHT_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("GOOGLE_INSIGHT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("GOOGLE_INSIGHT_SYNC_ENABLED", false)

	// Defaults para consolidação mensal de insights
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_ENABLED", false)
	viper.SetDefault("MONTHLY_INSIGHTS_SYNC_MONTH_LOOKBACK", 1)

	// Retenção dos insights em cache: um ano para o detalhe diário,
	// dois anos para os consolidados mensais
	viper.SetDefault("INSIGHT_RETENTION_DAILY_DAYS", 365)
	viper.SetDefault("INSIGHT_RETENTION_MONTHLY_DAYS", 730)

	viper.SetDefault("LOG_LEVEL", "debug")
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
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	// O Supabase expõe o banco como um Postgres comum, então a conexão é via DSN
	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
