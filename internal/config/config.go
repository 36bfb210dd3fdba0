package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Log        LogConfig
	OEREBlex   OEREBlexConfig
	Extract    ExtractConfig
	Geometry   GeometryConfig
	Deployment string
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

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RealEstateCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// OEREBlexConfig - настройки клиента реестра документов
type OEREBlexConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64
	Burst     int
}

// ExtractConfig - параметры построения выписки
type ExtractConfig struct {
	ParallelTopics int
	TopicTimeout   time.Duration
}

// GeometryConfig - движок пересечения геометрий: geos или postgis
type GeometryConfig struct {
	Engine string
}

func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает настройки из env файла path и переменных окружения.
// Отсутствующий файл не является ошибкой: значения берутся из окружения.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RealEstateCacheTTL: time.Duration(v.GetInt("REAL_ESTATE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		OEREBlex: OEREBlexConfig{
			BaseURL:   v.GetString("OEREBLEX_BASE_URL"),
			Timeout:   time.Duration(v.GetInt("OEREBLEX_TIMEOUT")) * time.Second,
			RateLimit: v.GetFloat64("OEREBLEX_RATE_LIMIT"),
			Burst:     v.GetInt("OEREBLEX_BURST"),
		},
		Extract: ExtractConfig{
			ParallelTopics: v.GetInt("EXTRACT_PARALLEL_TOPICS"),
			TopicTimeout:   time.Duration(v.GetInt("EXTRACT_TOPIC_TIMEOUT")) * time.Second,
		},
		Geometry: GeometryConfig{
			Engine: v.GetString("GEOMETRY_ENGINE"),
		},
		Deployment: v.GetString("DEPLOYMENT_FILE"),
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Cache.RealEstateCacheTTL == 0 {
		cfg.Cache.RealEstateCacheTTL = time.Hour
	}
	if cfg.OEREBlex.Timeout == 0 {
		cfg.OEREBlex.Timeout = 10 * time.Second
	}
	if cfg.OEREBlex.RateLimit == 0 {
		cfg.OEREBlex.RateLimit = 10
	}
	if cfg.OEREBlex.Burst == 0 {
		cfg.OEREBlex.Burst = 5
	}
	if cfg.Extract.ParallelTopics == 0 {
		cfg.Extract.ParallelTopics = 4
	}
	if cfg.Extract.TopicTimeout == 0 {
		cfg.Extract.TopicTimeout = 30 * time.Second
	}
	if cfg.Geometry.Engine == "" {
		cfg.Geometry.Engine = "geos"
	}
	if cfg.Deployment == "" {
		cfg.Deployment = "deployment.yml"
	}

	return cfg, nil
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
