package config

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Supported store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Store    StoreConfig
	Mongo    MongoConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Seed     SeedConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// StoreConfig selects the document store backend.
type StoreConfig struct {
	Driver string
}

// MongoConfig holds MongoDB connection values.
type MongoConfig struct {
	URI                   string
	Database              string
	Collection            string
	ConnectTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// SeedConfig toggles the sample data step run at startup.
type SeedConfig struct {
	Enabled bool
}

// Load reads configuration from an optional YAML file named by CONFIG_PATH
// and from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	redisDB, err := cast.ToIntE(v.Get("redis.db"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	driver := strings.ToLower(v.GetString("store.driver"))
	switch driver {
	case DriverMongo, DriverPostgres, DriverRedis:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", driver)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  v.GetString("app.name"),
			Env:                   v.GetString("app.env"),
			Host:                  v.GetString("app.host"),
			Port:                  v.GetString("app.port"),
			Version:               v.GetString("app.version"),
			RequestTimeoutSeconds: v.GetInt("http.request_timeout_seconds"),
		},
		Store: StoreConfig{
			Driver: driver,
		},
		Mongo: MongoConfig{
			URI:                   v.GetString("mongo.uri"),
			Database:              v.GetString("mongo.database"),
			Collection:            v.GetString("mongo.collection"),
			ConnectTimeoutSeconds: v.GetInt("mongo.connect_timeout_seconds"),
		},
		Postgres: PostgresConfig{
			DSN:            v.GetString("postgres.dsn"),
			MaxConns:       v.GetInt32("postgres.max_conns"),
			MinConns:       v.GetInt32("postgres.min_conns"),
			ConnMaxIdleSec: v.GetInt32("postgres.conn_max_idle_seconds"),
			ConnMaxLifeSec: v.GetInt32("postgres.conn_max_life_seconds"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("redis.addr"),
			Password:  v.GetString("redis.password"),
			DB:        redisDB,
			KeyPrefix: v.GetString("redis.key_prefix"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("log.level"),
		},
		Seed: SeedConfig{
			Enabled: v.GetBool("seed.enabled"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "employee-service")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.version", "dev")
	v.SetDefault("http.request_timeout_seconds", 0)

	v.SetDefault("store.driver", DriverMongo)

	v.SetDefault("mongo.uri", "mongodb://localhost/employeeDB")
	v.SetDefault("mongo.database", "employeeDB")
	v.SetDefault("mongo.collection", "employees")
	v.SetDefault("mongo.connect_timeout_seconds", 10)

	v.SetDefault("postgres.dsn", "")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 2)
	v.SetDefault("postgres.conn_max_idle_seconds", 30)
	v.SetDefault("postgres.conn_max_life_seconds", 300)

	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "employees")

	v.SetDefault("log.level", "info")
	v.SetDefault("seed.enabled", true)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return net.JoinHostPort(a.Host, a.Port)
}

// BaseURL returns the URL clients use to reach the server. Wildcard bind
// addresses are reported as localhost.
func (a AppConfig) BaseURL() string {
	host := a.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ConnectTimeout bounds the initial connection attempt.
func (m MongoConfig) ConnectTimeout() time.Duration {
	if m.ConnectTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(m.ConnectTimeoutSeconds) * time.Second
}
