package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env       string
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
	JWT       JWTConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Paging    PagingConfig
	Telemetry TelemetryConfig
	I18n      I18nConfig
	Admin     AdminConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // URL base da API para construir URIs RFC 7807
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	RetryDelay  time.Duration
}

type RedisConfig struct {
	URL string
}

type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type JWTConfig struct {
	Secret         string
	AccessExpiry   time.Duration
	RevokeOnLogout bool
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

// Origins separa a lista de origens por vírgula
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

type PagingConfig struct {
	DefaultSize int
	MaxSize     int
}

type TelemetryConfig struct {
	OTLPEndpoint string
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

type AdminConfig struct {
	Seed     bool
	Name     string
	Email    string
	Password string
	Phone    string
	CPF      string
}

// ErrMissingJWTSecret indica que JWT_SECRET não foi configurado
var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "5000")
	v.SetDefault("API_BASE_URL", "http://localhost:5000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "loja")
	v.SetDefault("DB_PASS", "loja")
	v.SetDefault("DB_NAME", "loja")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_RETRY_DELAY", "5s")

	v.SetDefault("JWT_ACCESS_EXPIRY", "1h")
	v.SetDefault("AUTH_REVOKE_ON_LOGOUT", true)

	v.SetDefault("RABBITMQ_EXCHANGE", "loja.events")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_WINDOW", "15m")
	v.SetDefault("PAGE_SIZE_DEFAULT", 10)
	v.SetDefault("PAGE_SIZE_MAX", 100)
	v.SetDefault("DEFAULT_LANGUAGE", "pt-BR")

	v.SetDefault("SEED_ADMIN", false)
	v.SetDefault("ADMIN_NAME", "Admin")
	v.SetDefault("ADMIN_EMAIL", "admin@loja.com")
	v.SetDefault("ADMIN_PHONE", "99999999999")
	v.SetDefault("ADMIN_CPF", "00000000000")
}

// Load carrega as configurações do ambiente, lendo .env quando existir
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return FromViper(v)
}

// FromViper monta a configuração a partir de uma instância viper
func FromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			RetryDelay:  v.GetDuration("DB_RETRY_DELAY"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
		JWT: JWTConfig{
			Secret:         v.GetString("JWT_SECRET"),
			AccessExpiry:   v.GetDuration("JWT_ACCESS_EXPIRY"),
			RevokeOnLogout: v.GetBool("AUTH_REVOKE_ON_LOGOUT"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Window:   v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Paging: PagingConfig{
			DefaultSize: v.GetInt("PAGE_SIZE_DEFAULT"),
			MaxSize:     v.GetInt("PAGE_SIZE_MAX"),
		},
		Telemetry: TelemetryConfig{
			OTLPEndpoint: v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("LOCALES_DIR"),
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		},
		Admin: AdminConfig{
			Seed:     v.GetBool("SEED_ADMIN"),
			Name:     v.GetString("ADMIN_NAME"),
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
			Phone:    v.GetString("ADMIN_PHONE"),
			CPF:      v.GetString("ADMIN_CPF"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
	}
	if c.JWT.AccessExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive, got %s", c.JWT.AccessExpiry)
	}
	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("invalid rate limit %d/%s", c.RateLimit.Requests, c.RateLimit.Window)
	}
	if c.Admin.Seed && c.Admin.Password == "" {
		return errors.New("ADMIN_PASSWORD is required when SEED_ADMIN is set")
	}
	return nil
}

// IsProduction indica se a aplicação roda em produção
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
