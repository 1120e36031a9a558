package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Routing   RoutingConfig
	Geocoding GeocodingConfig
	Advisory  AdvisoryConfig
	Simulator SimulatorConfig
	Worker    WorkerConfig
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
	RouteCacheTTL       time.Duration
	GeocodeCacheTTL     time.Duration
	EnvironmentCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// RoutingConfig - external routing engine (OSRM-compatible)
type RoutingConfig struct {
	BaseURL        string
	Profile        string
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// GeocodingConfig - external geocoder (Nominatim-compatible)
type GeocodingConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
}

// AdvisoryConfig - external hazard/advisory provider
type AdvisoryConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

// SimulatorConfig - navigation simulation parameters
type SimulatorConfig struct {
	TickInterval     time.Duration
	ProximityWindow  float64
	FallbackSegments int
}

type WorkerConfig struct {
	Enabled                    bool
	EnvironmentRefreshInterval time.Duration
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
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RouteCacheTTL:       time.Duration(viper.GetInt("ROUTE_CACHE_TTL")) * time.Second,
			GeocodeCacheTTL:     time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			EnvironmentCacheTTL: time.Duration(viper.GetInt("ENVIRONMENT_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Routing: RoutingConfig{
			BaseURL:        viper.GetString("ROUTING_BASE_URL"),
			Profile:        viper.GetString("ROUTING_PROFILE"),
			RequestTimeout: time.Duration(viper.GetInt("ROUTING_REQUEST_TIMEOUT")) * time.Second,
			MaxRetries:     viper.GetInt("ROUTING_MAX_RETRIES"),
			RetryBaseDelay: time.Duration(viper.GetInt("ROUTING_RETRY_BASE_DELAY")) * time.Millisecond,
		},
		Geocoding: GeocodingConfig{
			BaseURL:        viper.GetString("GEOCODING_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("GEOCODING_REQUEST_TIMEOUT")) * time.Second,
			UserAgent:      viper.GetString("GEOCODING_USER_AGENT"),
		},
		Advisory: AdvisoryConfig{
			BaseURL:        viper.GetString("ADVISORY_BASE_URL"),
			APIKey:         viper.GetString("ADVISORY_API_KEY"),
			RequestTimeout: time.Duration(viper.GetInt("ADVISORY_REQUEST_TIMEOUT")) * time.Second,
			MaxRetries:     viper.GetInt("ADVISORY_MAX_RETRIES"),
			RetryBaseDelay: time.Duration(viper.GetInt("ADVISORY_RETRY_BASE_DELAY")) * time.Millisecond,
		},
		Simulator: SimulatorConfig{
			TickInterval:     time.Duration(viper.GetInt("SIMULATOR_TICK_INTERVAL")) * time.Millisecond,
			ProximityWindow:  viper.GetFloat64("SIMULATOR_PROXIMITY_WINDOW"),
			FallbackSegments: viper.GetInt("SIMULATOR_FALLBACK_SEGMENTS"),
		},
		Worker: WorkerConfig{
			Enabled:                    viper.GetBool("WORKER_ENABLED"),
			EnvironmentRefreshInterval: time.Duration(viper.GetInt("WORKER_ENVIRONMENT_REFRESH_INTERVAL")) * time.Second,
		},
	}

	// Set default values if not provided
	if cfg.Routing.Profile == "" {
		cfg.Routing.Profile = "driving"
	}
	if cfg.Routing.RequestTimeout == 0 {
		cfg.Routing.RequestTimeout = 15 * time.Second
	}
	if cfg.Routing.MaxRetries == 0 {
		cfg.Routing.MaxRetries = 3
	}
	if cfg.Routing.RetryBaseDelay == 0 {
		cfg.Routing.RetryBaseDelay = 1000 * time.Millisecond
	}
	if cfg.Geocoding.RequestTimeout == 0 {
		cfg.Geocoding.RequestTimeout = 10 * time.Second
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = "route-optimizer/1.0"
	}
	if cfg.Advisory.RequestTimeout == 0 {
		cfg.Advisory.RequestTimeout = 20 * time.Second
	}
	if cfg.Advisory.MaxRetries == 0 {
		cfg.Advisory.MaxRetries = 3
	}
	if cfg.Advisory.RetryBaseDelay == 0 {
		cfg.Advisory.RetryBaseDelay = 1000 * time.Millisecond
	}
	if cfg.Simulator.TickInterval == 0 {
		cfg.Simulator.TickInterval = 800 * time.Millisecond
	}
	if cfg.Simulator.ProximityWindow == 0 {
		cfg.Simulator.ProximityWindow = 0.05
	}
	if cfg.Simulator.FallbackSegments == 0 {
		cfg.Simulator.FallbackSegments = 20
	}
	if cfg.Cache.RouteCacheTTL == 0 {
		cfg.Cache.RouteCacheTTL = 300 * time.Second
	}
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 3600 * time.Second
	}
	if cfg.Cache.EnvironmentCacheTTL == 0 {
		cfg.Cache.EnvironmentCacheTTL = 120 * time.Second
	}
	if cfg.Worker.EnvironmentRefreshInterval == 0 {
		cfg.Worker.EnvironmentRefreshInterval = 60 * time.Second
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
