// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL connection settings for the route history.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the connection string for the database driver.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// KafkaConfig holds event publishing settings.
type KafkaConfig struct {
	Brokers []string
	Enabled bool
}

// ORSConfig holds OpenRouteService client settings.
type ORSConfig struct {
	BaseURL string
	APIKey  string
}

// GeocodeConfig holds Nominatim client settings. Nominatim requires an
// identifying User-Agent on every request.
type GeocodeConfig struct {
	BaseURL   string
	UserAgent string
}

// PlacesConfig holds Foursquare discovery settings.
type PlacesConfig struct {
	BaseURL    string
	APIKey     string
	APIVersion string
	Limit      int
}

// LLMConfig holds settings for the relevance predicate and chat assistant.
type LLMConfig struct {
	APIKey string
	Model  string
}

// ServiceConfig holds all configuration for the routes service.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	HistoryBackend string // "postgres" or "memory"
	DBConfig       DatabaseConfig
	KafkaConfig    KafkaConfig
	ORSConfig      ORSConfig
	GeocodeConfig  GeocodeConfig
	PlacesConfig   PlacesConfig
	LLMConfig      LLMConfig
}

// Load reads configuration from ROUTES_-prefixed environment variables with
// sensible defaults for local development.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("ROUTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("service_port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("history_backend", "postgres")

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", 5432)
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "routes")
	v.SetDefault("db_sslmode", "disable")

	v.SetDefault("kafka_brokers", "localhost:9092")
	v.SetDefault("kafka_enabled", true)

	v.SetDefault("ors_base_url", "https://api.openrouteservice.org")
	v.SetDefault("geocode_base_url", "https://nominatim.openstreetmap.org")
	v.SetDefault("geocode_user_agent", "service-routes/1.0")
	v.SetDefault("places_base_url", "https://places-api.foursquare.com")
	v.SetDefault("places_api_version", "2025-06-17")
	v.SetDefault("places_limit", 50)
	v.SetDefault("llm_model", "claude-haiku-4-5")

	cfg := &ServiceConfig{
		Port:           ":" + v.GetString("service_port"),
		AppEnv:         v.GetString("app_env"),
		HistoryBackend: v.GetString("history_backend"),
		DBConfig: DatabaseConfig{
			Host:     v.GetString("db_host"),
			Port:     v.GetInt("db_port"),
			User:     v.GetString("db_user"),
			Password: v.GetString("db_password"),
			DBName:   v.GetString("db_name"),
			SSLMode:  v.GetString("db_sslmode"),
		},
		KafkaConfig: KafkaConfig{
			Brokers: strings.Split(v.GetString("kafka_brokers"), ","),
			Enabled: v.GetBool("kafka_enabled"),
		},
		ORSConfig: ORSConfig{
			BaseURL: v.GetString("ors_base_url"),
			APIKey:  v.GetString("ors_api_key"),
		},
		GeocodeConfig: GeocodeConfig{
			BaseURL:   v.GetString("geocode_base_url"),
			UserAgent: v.GetString("geocode_user_agent"),
		},
		PlacesConfig: PlacesConfig{
			BaseURL:    v.GetString("places_base_url"),
			APIKey:     v.GetString("places_api_key"),
			APIVersion: v.GetString("places_api_version"),
			Limit:      v.GetInt("places_limit"),
		},
		LLMConfig: LLMConfig{
			APIKey: v.GetString("llm_api_key"),
			Model:  v.GetString("llm_model"),
		},
	}

	if cfg.ORSConfig.APIKey == "" {
		return nil, fmt.Errorf("ROUTES_ORS_API_KEY is required")
	}

	return cfg, nil
}
