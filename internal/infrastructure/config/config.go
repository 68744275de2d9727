package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/leebenson/conform"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env          string `conform:"trim,lower"`
	Server       ServerConfig
	Database     DatabaseConfig
	Logging      LoggingConfig
	CORS         CORSConfig
	Tinify       TinifyConfig
	Registration RegistrationConfig
	Cache        CacheConfig
	Admin        AdminConfig
}

type ServerConfig struct {
	Port           string `conform:"trim"`
	Host           string `conform:"trim"`
	BaseURL        string `conform:"trim"` // prefixo dos links de paginação e das URIs RFC 7807
	MaxUploadBytes int64
}

type DatabaseConfig struct {
	Host        string `conform:"trim"`
	Port        int
	User        string `conform:"trim"`
	Password    string
	DBName      string `conform:"trim"`
	SSLMode     string `conform:"trim,lower"`
	MaxConns    int
	MinConns    int
	MaxIdleTime int

	// ConnectAttempts limita os pings na inicialização
	ConnectAttempts int
}

type LoggingConfig struct {
	Level string `conform:"trim,lower"`
	File  string `conform:"trim"`
}

type CORSConfig struct {
	AllowedOrigins string `conform:"trim"`
}

type TinifyConfig struct {
	APIKey  string `conform:"trim"`
	BaseURL string `conform:"trim"`
	Timeout time.Duration
}

type RegistrationConfig struct {
	Timeout time.Duration
}

type CacheConfig struct {
	PositionsTTL time.Duration
}

type AdminConfig struct {
	Enabled bool
}

// Load carrega as configurações do ambiente, com .env opcional
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "3000")
	v.SetDefault("API_BASE_URL", "")
	v.SetDefault("MAX_UPLOAD_BYTES", 8<<20)
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TINIFY_API_KEY", "")
	v.SetDefault("TINIFY_BASE_URL", "https://api.tinify.com")
	v.SetDefault("TINIFY_TIMEOUT", "20s")
	v.SetDefault("REGISTRATION_TIMEOUT", "30s")
	v.SetDefault("POSITIONS_CACHE_TTL", "1m")
}

// fromViper lê as chaves já resolvidas. Valores vindos de .env costumam
// trazer espaços sobrando; os campos marcados com conform são normalizados
// antes de qualquer decisão baseada neles.
func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			Host:           v.GetString("HOST"),
			BaseURL:        v.GetString("API_BASE_URL"),
			MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASS"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSL_MODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MinConns:        v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime:     v.GetInt("DB_MAX_IDLE_TIME"),
			ConnectAttempts: v.GetInt("DB_CONNECT_ATTEMPTS"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Tinify: TinifyConfig{
			APIKey:  v.GetString("TINIFY_API_KEY"),
			BaseURL: v.GetString("TINIFY_BASE_URL"),
			Timeout: v.GetDuration("TINIFY_TIMEOUT"),
		},
		Registration: RegistrationConfig{
			Timeout: v.GetDuration("REGISTRATION_TIMEOUT"),
		},
		Cache: CacheConfig{
			PositionsTTL: v.GetDuration("POSITIONS_CACHE_TTL"),
		},
	}

	for _, section := range []any{cfg, &cfg.Server, &cfg.Database, &cfg.Logging, &cfg.CORS, &cfg.Tinify} {
		_ = conform.Strings(section)
	}

	cfg.Admin.Enabled = cfg.Env != "production"
	if v.IsSet("ADMIN_ROUTES_ENABLED") {
		cfg.Admin.Enabled = v.GetBool("ADMIN_ROUTES_ENABLED")
	}

	return cfg
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
