package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/grbpwr-dashboard/internal/api/http"
	"github.com/jekabolt/grbpwr-dashboard/internal/statistics"
	"github.com/jekabolt/grbpwr-dashboard/internal/store"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/bunt"
	"github.com/jekabolt/grbpwr-dashboard/internal/store/mongo"
	"github.com/jekabolt/grbpwr-dashboard/log"
	"github.com/spf13/viper"
)

const (
	StoreMySQL = "mysql"
	StoreMongo = "mongo"
	StoreBunt  = "bunt"
)

// StoreConfig selects the orders backend.
type StoreConfig struct {
	Type string `mapstructure:"type"`
}

// Config represents the global configuration for the service.
type Config struct {
	Store      StoreConfig       `mapstructure:"store"`
	DB         store.Config      `mapstructure:"mysql"`
	Mongo      mongo.Config      `mapstructure:"mongo"`
	Bunt       bunt.Config       `mapstructure:"bunt"`
	Logger     log.Config        `mapstructure:"logger"`
	HTTP       httpapi.Config    `mapstructure:"http"`
	Statistics statistics.Config `mapstructure:"statistics"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.type", StoreBunt)

	b := bunt.DefaultConfig()
	v.SetDefault("bunt.path", b.Path)

	m := mongo.DefaultConfig()
	v.SetDefault("mongo.database", m.Database)
	v.SetDefault("mongo.collection", m.Collection)
	v.SetDefault("mongo.max_pool_size", m.MaxPoolSize)
	v.SetDefault("mongo.min_pool_size", m.MinPoolSize)
	v.SetDefault("mongo.connect_timeout", m.ConnectTimeout)

	h := httpapi.DefaultConfig()
	v.SetDefault("http.port", h.Port)
	v.SetDefault("http.request_timeout", h.RequestTimeout)
	v.SetDefault("http.rate_limit", h.RateLimit)
	v.SetDefault("http.rate_window", h.RateWindow)

	s := statistics.DefaultConfig()
	v.SetDefault("statistics.window_days", s.WindowDays)
	v.SetDefault("statistics.status_policy", s.StatusPolicy)
	v.SetDefault("statistics.timezone", s.Timezone)
	v.SetDefault("statistics.top_limit", s.TopLimit)
	v.SetDefault("statistics.recent_limit", s.RecentLimit)
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested config keys use double underscore, e.g., MYSQL__DSN for mysql.dsn
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/grbpwr-dashboard")
		v.AddConfigPath("/etc/grbpwr-dashboard")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = mysqlDSNFromEnv()
	}

	switch config.Store.Type {
	case StoreMySQL, StoreMongo, StoreBunt:
	default:
		return nil, fmt.Errorf("unknown store type %q", config.Store.Type)
	}

	return &config, nil
}

// mysqlDSNFromEnv builds a DSN from MYSQL_* env vars.
func mysqlDSNFromEnv() string {
	host := os.Getenv("MYSQL_HOST")
	port := os.Getenv("MYSQL_PORT")
	user := os.Getenv("MYSQL_USER")
	password := os.Getenv("MYSQL_PASSWORD")
	database := os.Getenv("MYSQL_DATABASE")
	if host == "" || user == "" || password == "" || database == "" {
		return ""
	}
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		user, password, host, port, database)
}

// bindEnvVars binds environment variables to config keys
// This allows using both nested keys (MYSQL__DSN) and flat keys (MYSQL_DSN)
func bindEnvVars(v *viper.Viper) {
	// Store
	v.BindEnv("store.type", "STORE_TYPE")

	// MySQL
	v.BindEnv("mysql.dsn", "MYSQL_DSN")
	v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Mongo
	v.BindEnv("mongo.uri", "MONGO_URI", "MONGODB_URI")
	v.BindEnv("mongo.database", "MONGO_DATABASE")
	v.BindEnv("mongo.collection", "MONGO_COLLECTION")

	// Bunt
	v.BindEnv("bunt.path", "BUNT_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Statistics
	v.BindEnv("statistics.window_days", "STATISTICS_WINDOW_DAYS")
	v.BindEnv("statistics.status_policy", "STATISTICS_STATUS_POLICY")
	v.BindEnv("statistics.timezone", "STATISTICS_TIMEZONE")
}
