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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	HealthAPI       HealthAPI       `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	HealthScoreSync HealthScoreSync `mapstructure:",squash"`
	SampleData      SampleData      `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// HealthAPI aponta para a instância remota da API de customer health usada
// pelo client tipado (healthclient). A URL base sempre vem daqui, nunca de
// variável de ambiente lida em tempo de requisição.
type HealthAPI struct {
	BaseURL        string `mapstructure:"health_api_base_url"`
	AccessToken    string `mapstructure:"health_api_access_token"`
	TimeoutSeconds int    `mapstructure:"health_api_timeout_seconds"`
}

type Auth struct {
	TokenExpirationHours int `mapstructure:"auth_token_expiration_hours"`
}

// HealthScoreSync configura o job noturno que recalcula health scores a
// partir de pedidos, tickets e feedback.
type HealthScoreSync struct {
	CronSchedule        string `mapstructure:"health_score_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"health_score_sync_request_delay_seconds"`
	Enabled             bool   `mapstructure:"health_score_sync_enabled"`
}

type SampleData struct {
	DefaultCustomers int `mapstructure:"sample_data_default_customers"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/customer_health")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("HEALTH_API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("HEALTH_API_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("HEALTH_API_TIMEOUT_SECONDS", 30)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_EXPIRATION_HOURS", 24)

	// Defaults para o recálculo noturno de health scores
	viper.SetDefault("HEALTH_SCORE_SYNC_CRON", "0 3 * * *")        // Todos os dias às 3h da manhã
	viper.SetDefault("HEALTH_SCORE_SYNC_REQUEST_DELAY_SECONDS", 0) // Sem pausa entre clientes
	viper.SetDefault("HEALTH_SCORE_SYNC_ENABLED", false)

	viper.SetDefault("SAMPLE_DATA_DEFAULT_CUSTOMERS", 100)

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
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
