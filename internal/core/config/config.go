package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// CORSOrigins is the comma-separated list of allowed CORS origins.
	CORSOrigins string `mapstructure:"CORS_ORIGINS" default:"*"`

	// Database holds the SQLite storage configuration.
	Database DatabaseConfig `mapstructure:",squash"`

	// Carrier holds the external carrier API configuration.
	Carrier CarrierConfig `mapstructure:",squash"`

	// Sync holds the scheduled ingestion configuration.
	Sync SyncConfig `mapstructure:",squash"`

	// Tracking holds the tracking-URL export configuration.
	Tracking TrackingConfig `mapstructure:",squash"`

	// Cache holds the optional Redis cache configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// Proxy holds the optional outbound HTTP proxy configuration.
	Proxy ProxyConfig `mapstructure:",squash"`
}

// DatabaseConfig holds SQLite storage details.
type DatabaseConfig struct {
	// Path is the SQLite database file path.
	Path string `mapstructure:"DB_PATH" default:"shipment-sync.db"`
}

// CarrierConfig holds the credentials for the external carrier API.
type CarrierConfig struct {
	// URL is the base URL of the carrier REST API.
	URL string `mapstructure:"CARRIER_API_URL" required:"true"`
	// APIKey is the public key for API access.
	APIKey string `mapstructure:"CARRIER_API_KEY" required:"true"`
	// APISecret is the secret key for API access.
	APISecret string `mapstructure:"CARRIER_API_SECRET" required:"true"`
}

// SyncConfig holds the scheduled ingestion parameters.
type SyncConfig struct {
	// DaysBack is how many days before today the ship-date cutoff starts.
	DaysBack int `mapstructure:"SYNC_DAYS_BACK" default:"1"`
	// IntervalMinutes is how often the scheduled ingestion runs.
	IntervalMinutes int `mapstructure:"SYNC_INTERVAL_MINUTES" default:"60"`
}

// TrackingConfig holds the tracking-URL export parameters.
type TrackingConfig struct {
	// URLTemplate is the carrier tracking page template with a single %s placeholder.
	URLTemplate string `mapstructure:"TRACKING_URL_TEMPLATE" default:"https://tools.usps.com/go/TrackConfirmAction?tLabels=%s"`
	// ChunkSize is the maximum number of tracking numbers per generated URL.
	ChunkSize int `mapstructure:"TRACKING_CHUNK_SIZE" default:"30"`
	// TerminalStatus is the status past which records are excluded from URL
	// generation. Compared case-sensitively.
	TerminalStatus string `mapstructure:"TERMINAL_STATUS" default:"delivered"`
	// ActiveRowCap bounds how many non-terminal records feed URL generation.
	ActiveRowCap int `mapstructure:"ACTIVE_ROW_CAP" default:"2000"`
}

// CacheConfig holds the optional Redis cache settings.
type CacheConfig struct {
	// RedisURL enables the tracking-URL cache when set.
	// Format: redis://[:password@]host[:port][/database]
	RedisURL string `mapstructure:"REDIS_URL"`
	// TrackingURLTTLSeconds is how long the tracking-URL export stays cached.
	TrackingURLTTLSeconds int `mapstructure:"TRACKING_URL_CACHE_TTL" default:"300"`
}

// ProxyConfig holds optional outbound proxy details for carrier requests.
type ProxyConfig struct {
	// Enabled toggles outbound proxying.
	Enabled bool `mapstructure:"PROXY_ENABLED"`
	// Hostname is the proxy server hostname.
	Hostname string `mapstructure:"PROXY_HOSTNAME"`
	// Port is the proxy server port.
	Port int `mapstructure:"PROXY_PORT"`
	// Username is the proxy auth username.
	Username string `mapstructure:"PROXY_USERNAME"`
	// Password is the proxy auth password.
	Password string `mapstructure:"PROXY_PASSWORD"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
