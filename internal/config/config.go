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
	Geocoding GeocodingConfig
	Overpass  OverpassConfig
	Routing   RoutingConfig
	Location  LocationConfig
	Search    SearchConfig
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
	GeocodeCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// GeocodingConfig configures the Nominatim-style geocoding service.
type GeocodingConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout int // seconds
}

// OverpassConfig configures the Overpass POI query service.
type OverpassConfig struct {
	BaseURL        string
	QueryTimeout   int // seconds, embedded in the Overpass QL header
	RequestTimeout int // seconds
}

// RoutingConfig configures the directions service and the straight-line
// fallback policy.
type RoutingConfig struct {
	BaseURL          string
	APIKey           string
	Profile          string
	RequestTimeout   int     // seconds
	FallbackSpeedKmh float64 // assumed average speed for estimated routes
}

// LocationConfig holds device-position acquisition policy.
type LocationConfig struct {
	PositionTimeout time.Duration // max wait for a position
	PositionMaxAge  time.Duration // accepted age of a cached position
}

// SearchConfig holds result-set policy for nearby searches.
type SearchConfig struct {
	MaxPharmacyResults int
	MaxHospitalResults int
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	BatchSize         int
	MaxRetries        int
	BackfillBatchSize int
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
			GeocodeCacheTTL: time.Duration(viper.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Geocoding: GeocodingConfig{
			BaseURL:        viper.GetString("GEOCODING_BASE_URL"),
			UserAgent:      viper.GetString("GEOCODING_USER_AGENT"),
			RequestTimeout: viper.GetInt("GEOCODING_REQUEST_TIMEOUT"),
		},
		Overpass: OverpassConfig{
			BaseURL:        viper.GetString("OVERPASS_BASE_URL"),
			QueryTimeout:   viper.GetInt("OVERPASS_QUERY_TIMEOUT"),
			RequestTimeout: viper.GetInt("OVERPASS_REQUEST_TIMEOUT"),
		},
		Routing: RoutingConfig{
			BaseURL:          viper.GetString("ROUTING_BASE_URL"),
			APIKey:           viper.GetString("ROUTING_API_KEY"),
			Profile:          viper.GetString("ROUTING_PROFILE"),
			RequestTimeout:   viper.GetInt("ROUTING_REQUEST_TIMEOUT"),
			FallbackSpeedKmh: viper.GetFloat64("ROUTING_FALLBACK_SPEED_KMH"),
		},
		Location: LocationConfig{
			PositionTimeout: time.Duration(viper.GetInt("GEO_POSITION_TIMEOUT")) * time.Second,
			PositionMaxAge:  time.Duration(viper.GetInt("GEO_POSITION_MAX_AGE")) * time.Second,
		},
		Search: SearchConfig{
			MaxPharmacyResults: viper.GetInt("SEARCH_MAX_PHARMACY_RESULTS"),
			MaxHospitalResults: viper.GetInt("SEARCH_MAX_HOSPITAL_RESULTS"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			BatchSize:         viper.GetInt("WORKER_BATCH_SIZE"),
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
			BackfillBatchSize: viper.GetInt("WORKER_BACKFILL_BATCH_SIZE"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.GeocodeCacheTTL == 0 {
		cfg.Cache.GeocodeCacheTTL = 24 * time.Hour
	}
	if cfg.Geocoding.BaseURL == "" {
		cfg.Geocoding.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geocoding.UserAgent == "" {
		cfg.Geocoding.UserAgent = "medicall-geo-service/1.0"
	}
	if cfg.Geocoding.RequestTimeout == 0 {
		cfg.Geocoding.RequestTimeout = 10
	}
	if cfg.Overpass.BaseURL == "" {
		cfg.Overpass.BaseURL = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.QueryTimeout == 0 {
		cfg.Overpass.QueryTimeout = 25
	}
	if cfg.Overpass.RequestTimeout == 0 {
		cfg.Overpass.RequestTimeout = 30
	}
	if cfg.Routing.BaseURL == "" {
		cfg.Routing.BaseURL = "https://api.openrouteservice.org"
	}
	if cfg.Routing.Profile == "" {
		cfg.Routing.Profile = "driving-car"
	}
	if cfg.Routing.RequestTimeout == 0 {
		cfg.Routing.RequestTimeout = 15
	}
	if cfg.Routing.FallbackSpeedKmh == 0 {
		cfg.Routing.FallbackSpeedKmh = 50
	}
	if cfg.Location.PositionTimeout == 0 {
		cfg.Location.PositionTimeout = 10 * time.Second
	}
	if cfg.Location.PositionMaxAge == 0 {
		cfg.Location.PositionMaxAge = 5 * time.Minute
	}
	if cfg.Search.MaxPharmacyResults == 0 {
		cfg.Search.MaxPharmacyResults = 20
	}
	if cfg.Search.MaxHospitalResults == 0 {
		cfg.Search.MaxHospitalResults = 15
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "facility-geocode-workers"
	}
	if cfg.Worker.BatchSize == 0 {
		cfg.Worker.BatchSize = 20
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Worker.BackfillBatchSize == 0 {
		cfg.Worker.BackfillBatchSize = 100
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
