package config

import (
	"errors"
	"reflect"
	"strings"

	"url-reconciler/core/database"
	"url-reconciler/core/logger"
	"url-reconciler/core/reconcile"
	"url-reconciler/core/resolver"
	"url-reconciler/core/server"
	"url-reconciler/core/storage"
	"url-reconciler/feature/sources"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the SQL database used by table sources.
	Database database.Config `mapstructure:"database"`
	// Postgres holds the pgx connection used by postgres sources.
	Postgres sources.PostgresConfig `mapstructure:"postgres"`
	// Sheets holds Google API credentials used by sheets sources.
	Sheets sources.SheetsConfig `mapstructure:"sheets"`
	// Resolver tunes redirect resolution.
	Resolver resolver.Config `mapstructure:"resolver"`
	// Reconcile tunes canonicalization and comparison.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// SourceA is the candidate (short) URL list.
	SourceA sources.Config `mapstructure:"source_a"`
	// SourceB is the reference (long) URL list.
	SourceB sources.Config `mapstructure:"source_b"`
}

// LoadConfig loads configuration from an optional config.yaml, environment
// variables and .env file, in increasing priority.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Map environment variables to nested keys (e.g. RESOLVER_BATCH_SIZE -> resolver.batch_size)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
