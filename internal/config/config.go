package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Scraper        Scraper        `mapstructure:",squash"`
	Cache          Cache          `mapstructure:",squash"`
	MonthlyRefresh MonthlyRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type Auth struct {
	Secret             string `mapstructure:"auth_secret"`
	Username           string `mapstructure:"auth_username"`
	PasswordHash       string `mapstructure:"auth_password_hash"`
	TokenExpiryMinutes int    `mapstructure:"auth_token_expiry_minutes"`
}

type Scraper struct {
	BulkURL               string `mapstructure:"scraper_bulk_url"`
	MaxDomainsPerQuery    int    `mapstructure:"scraper_max_domains_per_query"`
	MaxConcurrentGroups   int    `mapstructure:"scraper_max_concurrent_groups"`
	GroupDelaySeconds     int    `mapstructure:"scraper_group_delay_seconds"`
	NavigationTimeoutSecs int    `mapstructure:"scraper_navigation_timeout_seconds"`
	SelectorTimeoutMillis int    `mapstructure:"scraper_selector_timeout_millis"`
	SettleDelayMillis     int    `mapstructure:"scraper_settle_delay_millis"`
	HistoryTimeoutMillis  int    `mapstructure:"scraper_history_timeout_millis"`
	Headless              bool   `mapstructure:"scraper_headless"`
	SourceTag             string `mapstructure:"scraper_source_tag"`
}

type Cache struct {
	TTLDays          int `mapstructure:"cache_ttl_days"`
	ReleaseCutoffDay int `mapstructure:"cache_release_cutoff_day"`
}

type MonthlyRefresh struct {
	CronSchedule    string `mapstructure:"monthly_refresh_cron"`
	Enabled         bool   `mapstructure:"monthly_refresh_enabled"`
	RetentionMonths int    `mapstructure:"monthly_refresh_retention_months"`
	RetentionSweep  bool   `mapstructure:"monthly_refresh_retention_sweep"`
	MaxDailyRetries int    `mapstructure:"monthly_refresh_max_daily_retries"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/traffic")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_USERNAME", "admin")
	viper.SetDefault("AUTH_PASSWORD_HASH", "") // bcrypt; vazio desabilita o login
	viper.SetDefault("AUTH_TOKEN_EXPIRY_MINUTES", 480)

	// Defaults do scraper. A página aceita no máximo 10 domínios por consulta.
	viper.SetDefault("SCRAPER_BULK_URL", "https://www.trafficlookup.io/bulk")
	viper.SetDefault("SCRAPER_MAX_DOMAINS_PER_QUERY", 10)
	viper.SetDefault("SCRAPER_MAX_CONCURRENT_GROUPS", 2) // 2 sessões de navegador simultâneas
	viper.SetDefault("SCRAPER_GROUP_DELAY_SECONDS", 3)   // 3 segundos entre ondas
	viper.SetDefault("SCRAPER_NAVIGATION_TIMEOUT_SECONDS", 45)
	viper.SetDefault("SCRAPER_SELECTOR_TIMEOUT_MILLIS", 4000)
	viper.SetDefault("SCRAPER_SETTLE_DELAY_MILLIS", 2500)
	viper.SetDefault("SCRAPER_HISTORY_TIMEOUT_MILLIS", 2000)
	viper.SetDefault("SCRAPER_HEADLESS", true)
	viper.SetDefault("SCRAPER_SOURCE_TAG", "bulk-lookup")

	// Defaults de cache. A fonte publica os números do mês alguns dias após a virada.
	viper.SetDefault("CACHE_TTL_DAYS", 30)
	viper.SetDefault("CACHE_RELEASE_CUTOFF_DAY", 12)

	viper.SetDefault("MONTHLY_REFRESH_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("MONTHLY_REFRESH_ENABLED", false)
	viper.SetDefault("MONTHLY_REFRESH_RETENTION_MONTHS", 24)
	viper.SetDefault("MONTHLY_REFRESH_RETENTION_SWEEP", false)
	viper.SetDefault("MONTHLY_REFRESH_MAX_DAILY_RETRIES", 3)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
