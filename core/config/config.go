package config

import (
	"errors"
	"reflect"
	"strings"

	"influencer-scout/core/apify"
	"influencer-scout/core/ledger"
	"influencer-scout/core/logger"
	"influencer-scout/core/server"
	"influencer-scout/core/storage"
	"influencer-scout/feature/youtube"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingCredential marks a missing API token or key. Commands abort
// with it before any network call is made.
var ErrMissingCredential = errors.New("missing credential")

// Catalog holds the filesystem locations of the catalog store.
type Catalog struct {
	// Dir is the directory catalog files are persisted in.
	Dir string `mapstructure:"dir" default:"data"`
	// Sources is the path of the JSON file listing discovery units and
	// filters.
	Sources string `mapstructure:"sources" default:"data/config.json"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Catalog holds the store locations.
	Catalog Catalog `mapstructure:"catalog"`
	// Apify holds the asynchronous job provider settings.
	Apify apify.Config `mapstructure:"apify"`
	// YouTube holds the synchronous Data API settings.
	YouTube youtube.Config `mapstructure:"youtube"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds the optional object-storage publication settings.
	Storage storage.Config `mapstructure:"storage"`
	// Ledger holds the optional run-history settings.
	Ledger ledger.Config `mapstructure:"ledger"`
	// Server holds configuration for the directory HTTP server.
	Server server.Config `mapstructure:"server"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. APIFY_TOKEN -> apify.token)
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

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
