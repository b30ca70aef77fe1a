package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Report         Report         `mapstructure:",squash"`
	SecretKey      string         `mapstructure:"secret_key"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	AllowedOrigins  []string      `mapstructure:"cors_allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	SSLMode      string `mapstructure:"database_sslmode"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

// Auth guarda a senha compartilhada do painel; o hash bcrypt tem precedência
type Auth struct {
	Password     string        `mapstructure:"app_password"`
	PasswordHash string        `mapstructure:"app_password_hash"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
}

type Dataset struct {
	Table    string        `mapstructure:"dataset_table"`
	CacheTTL time.Duration `mapstructure:"dataset_cache_ttl"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Report struct {
	RevenueTarget    float64            `mapstructure:"revenue_target"`
	DefaultPolicyFee float64            `mapstructure:"default_policy_fee"`
	RawPolicyFees    []string           `mapstructure:"policy_fees"`
	PolicyFees       map[string]float64 `mapstructure:"-"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ipay")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("APP_PASSWORD", "")
	viper.SetDefault("APP_PASSWORD_HASH", "")
	viper.SetDefault("SESSION_TTL", "24h")

	viper.SetDefault("DATASET_TABLE", "gold.ipay_quantity_rev_data")
	viper.SetDefault("DATASET_CACHE_TTL", "5m")

	// Atualização periódica do cache da tabela
	viper.SetDefault("DATASET_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("REVENUE_TARGET", 320_000_000_000) // 320 tỷ
	viper.SetDefault("DEFAULT_POLICY_FEE", 6000)
	viper.SetDefault("POLICY_FEES", "")

	viper.SetDefault("APP_ENV", "development")
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

	config.Report.PolicyFees, err = ParsePolicyFees(config.Report.RawPolicyFees)
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s?sslmode=%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
		config.Database.SSLMode,
	)

	return config, nil
}

// ParsePolicyFees lê entradas no formato CODIGO:taxa, ex. "TAPCARE:6000"
func ParsePolicyFees(entries []string) (map[string]float64, error) {
	fees := make(map[string]float64, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		code, rawFee, found := strings.Cut(entry, ":")
		if !found {
			return nil, errors.Errorf("POLICY_FEES: entrada sem ':' (%s)", entry)
		}

		fee, err := strconv.ParseFloat(strings.TrimSpace(rawFee), 64)
		if err != nil || fee <= 0 {
			return nil, errors.Errorf("POLICY_FEES: taxa inválida para %s (%s)", code, rawFee)
		}

		fees[strings.TrimSpace(code)] = fee
	}
	return fees, nil
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
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
