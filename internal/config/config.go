package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	LocalStore LocalStoreConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Gemini     GeminiConfig
	Auth       AuthConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type LocalStoreConfig struct {
	Path string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
}

type GeminiConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	RequestTimeout int
}

type AuthConfig struct {
	SigningKey          string
	TokenTTL            time.Duration
	RequireConfirmation bool
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		LocalStore: LocalStoreConfig{
			Path: viper.GetString("LOCAL_STORE_PATH"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:         viper.GetString("GEMINI_API_KEY"),
			BaseURL:        viper.GetString("GEMINI_BASE_URL"),
			Model:          viper.GetString("GEMINI_MODEL"),
			RequestTimeout: viper.GetInt("GEMINI_REQUEST_TIMEOUT"),
		},
		Auth: AuthConfig{
			SigningKey:          viper.GetString("AUTH_SIGNING_KEY"),
			TokenTTL:            time.Duration(viper.GetInt("AUTH_TOKEN_TTL")) * time.Second,
			RequireConfirmation: viper.GetBool("AUTH_REQUIRE_CONFIRMATION"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.LocalStore.Path == "" {
		cfg.LocalStore.Path = "geodir.db"
	}
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = 5 * time.Minute
	}
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Gemini.RequestTimeout == 0 {
		cfg.Gemini.RequestTimeout = 30
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = time.Hour
	}

	return cfg, nil
}

// UseRemoteBackend возвращает true, если заданы credentials удалённой базы.
// Режим хранилища нигде больше не конфигурируется: переключение происходит
// только по наличию этих значений при старте.
func (c *Config) UseRemoteBackend() bool {
	return c.Database.Host != "" && c.Database.User != "" && c.Database.DBName != ""
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
