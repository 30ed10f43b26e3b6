package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                    string
	Env                     string
	DBDriver                string
	PostgresConnStr         string
	SQLitePath              string
	MongoURI                string
	MongoDatabase           string
	HistoryBackend          string
	JWTSecret               string
	FirebaseCredentialsPath string
	DiscoveryEndpoint       string
	DiscoveryAPIKey         string
	DiscoveryTimeout        time.Duration
}

const defaultJWTSecret = "supersecretjwtkey"

// Load reads configuration from .env, an optional app.config.json in . or
// ./config, and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	v := viper.New()
	v.SetConfigName("app.config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("db_driver", "sqlite")
	v.SetDefault("sqlite_path", "travel.db")
	v.SetDefault("mongo_database", "travel")
	v.SetDefault("history_backend", "sql")
	v.SetDefault("jwt_secret", defaultJWTSecret)
	v.SetDefault("discovery_timeout", "30s")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:                    v.GetString("port"),
		Env:                     v.GetString("env"),
		DBDriver:                strings.ToLower(v.GetString("db_driver")),
		PostgresConnStr:         v.GetString("postgres_conn_str"),
		SQLitePath:              v.GetString("sqlite_path"),
		MongoURI:                v.GetString("mongo_uri"),
		MongoDatabase:           v.GetString("mongo_database"),
		HistoryBackend:          strings.ToLower(v.GetString("history_backend")),
		JWTSecret:               v.GetString("jwt_secret"),
		FirebaseCredentialsPath: v.GetString("firebase_credentials_path"),
		DiscoveryEndpoint:       v.GetString("discovery_endpoint"),
		DiscoveryAPIKey:         v.GetString("discovery_api_key"),
		DiscoveryTimeout:        v.GetDuration("discovery_timeout"),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "postgres":
		if c.PostgresConnStr == "" {
			return fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
		}
	case "sqlite":
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH environment variable not set")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", c.DBDriver)
	}

	switch c.HistoryBackend {
	case "sql":
	case "mongo":
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI environment variable not set")
		}
	default:
		return fmt.Errorf("unsupported HISTORY_BACKEND %q (want sql or mongo)", c.HistoryBackend)
	}

	if c.DiscoveryTimeout <= 0 {
		return fmt.Errorf("DISCOVERY_TIMEOUT must be positive")
	}
	if c.IsProduction() && c.FirebaseCredentialsPath == "" && c.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	return nil
}

func (c *Config) IsProduction() bool { return c.Env == "production" }
