package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Twilio    TwilioConfig    `mapstructure:"twilio"`
	AI        AIConfig        `mapstructure:"ai"`
	Survey    SurveyConfig    `mapstructure:"survey"`
	Backup    BackupConfig    `mapstructure:"backup"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Runtime flags set from the command line, not the config file.
	ForceMigrate bool `mapstructure:"-"`
	MigrateOnly  bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

// DatabaseConfig selects the storage backend. Driver is "postgres" or
// "sqlite"; DSN takes precedence when set, otherwise the individual
// fields are assembled into a Postgres DSN. Path is the SQLite file.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	DSN      string `mapstructure:"dsn"`
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"`
}

type RedisConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Host     string
	Port     int
	Password string
	DB       int
}

type TwilioConfig struct {
	AccountSID          string `mapstructure:"account_sid"`
	AuthToken           string `mapstructure:"auth_token"`
	WhatsAppNumber      string `mapstructure:"whatsapp_number"`
	MessagingServiceSID string `mapstructure:"messaging_service_sid"`
	TemplateSID         string `mapstructure:"template_sid"`
	DefaultCountryCode  string `mapstructure:"default_country_code"`
}

type AIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
}

// SurveyConfig carries the public form URL embedded in WhatsApp
// invitations and the pacing for bulk sends.
type SurveyConfig struct {
	FormURL      string        `mapstructure:"form_url"`
	BatchSize    int           `mapstructure:"batch_size"`
	MessageDelay time.Duration `mapstructure:"message_delay"`
	BatchDelay   time.Duration `mapstructure:"batch_delay"`
}

type BackupConfig struct {
	Type          string `mapstructure:"type"` // local or minio
	LocalPath     string `mapstructure:"local_path"`
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioUseSSL   bool   `mapstructure:"minio_use_ssl"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("SIIGO")
	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.driver", "DATABASE_TYPE")
	viper.BindEnv("database.dsn", "DATABASE_URL")
	viper.BindEnv("database.host", "DB_HOST")
	viper.BindEnv("database.port", "DB_PORT")
	viper.BindEnv("database.user", "DB_USER")
	viper.BindEnv("database.password", "DB_PASSWORD")
	viper.BindEnv("database.dbname", "DB_NAME")
	viper.BindEnv("database.path", "DB_PATH")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Twilio
	viper.BindEnv("twilio.account_sid", "TWILIO_ACCOUNT_SID")
	viper.BindEnv("twilio.auth_token", "TWILIO_AUTH_TOKEN")
	viper.BindEnv("twilio.whatsapp_number", "TWILIO_WHATSAPP_NUMBER")
	viper.BindEnv("twilio.messaging_service_sid", "TWILIO_MESSAGING_SERVICE_SID")
	viper.BindEnv("twilio.template_sid", "TWILIO_TEMPLATE_BUTTON_SID")

	// AI
	viper.BindEnv("ai.base_url", "AI_BASE_URL")
	viper.BindEnv("ai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("ai.model", "AI_MODEL")

	// Survey
	viper.BindEnv("survey.form_url", "FORM_URL")

	// Backup / MinIO
	viper.BindEnv("backup.type", "BACKUP_TYPE")
	viper.BindEnv("backup.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("backup.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("backup.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("backup.minio_bucket", "MINIO_BUCKET")

	// Server / Tracing
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.Driver != "sqlite" && cfg.Database.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver %q (expected sqlite or postgres)", cfg.Database.Driver)
	}

	if cfg.Survey.BatchSize <= 0 {
		cfg.Survey.BatchSize = 20
	}
	if cfg.Survey.MessageDelay <= 0 {
		cfg.Survey.MessageDelay = 3 * time.Second
	}
	if cfg.Survey.BatchDelay <= 0 {
		cfg.Survey.BatchDelay = 30 * time.Second
	}

	if cfg.Backup.Type == "local" {
		if _, err := os.Stat(cfg.Backup.LocalPath); os.IsNotExist(err) {
			os.MkdirAll(cfg.Backup.LocalPath, 0755)
		}
	}

	return &cfg, nil
}
