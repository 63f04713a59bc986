package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Upload  UploadConfig
	Google  GoogleConfig
	Gemini  GeminiConfig
	Places  PlacesConfig
	Metrics MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in production mode.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Debug reports whether verbose upstream logging is enabled.
func (l *LogConfig) Debug() bool {
	return strings.EqualFold(l.Level, "debug")
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds settings for staging uploaded flyers.
type UploadConfig struct {
	TempDir       string `mapstructure:"temp_dir"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload size limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// GoogleConfig holds the credential shared by the Gemini and Places clients.
type GoogleConfig struct {
	APIKey string `mapstructure:"api_key"`
}

// GeminiConfig holds settings for the vision/language model client.
type GeminiConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// PlacesConfig holds settings for the places/geocoding client.
type PlacesConfig struct {
	APIKey        string `mapstructure:"api_key"`
	BaseURL       string `mapstructure:"base_url"`
	Language      string `mapstructure:"language"`
	TimeoutSecs   int    `mapstructure:"timeout_secs"`
	MaxCandidates int    `mapstructure:"max_candidates"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from environment variables with the FLYERSCAN_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FLYERSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "180s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "info")

	// CORS defaults (Next.js dev servers)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:3001")

	// Upload defaults
	v.SetDefault("upload.temp_dir", "")
	v.SetDefault("upload.max_file_size_mb", 20)

	// Google credential
	v.SetDefault("google.api_key", "")

	// Gemini defaults
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-1.5-flash")
	v.SetDefault("gemini.endpoint", "")
	v.SetDefault("gemini.timeout_secs", 120)

	// Places defaults
	v.SetDefault("places.api_key", "")
	v.SetDefault("places.base_url", "https://maps.googleapis.com/maps/api/place")
	v.SetDefault("places.language", "en")
	v.SetDefault("places.timeout_secs", 15)
	v.SetDefault("places.max_candidates", 5)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string][]string{
		"server.port":             {"FLYERSCAN_SERVER_PORT"},
		"server.read_timeout":     {"FLYERSCAN_SERVER_READ_TIMEOUT"},
		"server.write_timeout":    {"FLYERSCAN_SERVER_WRITE_TIMEOUT"},
		"server.shutdown_timeout": {"FLYERSCAN_SERVER_SHUTDOWN_TIMEOUT"},
		"server.environment":      {"FLYERSCAN_SERVER_ENVIRONMENT"},
		"log.level":               {"FLYERSCAN_LOG_LEVEL"},
		"cors.allowed_origins":    {"FLYERSCAN_CORS_ALLOWED_ORIGINS"},
		"upload.temp_dir":         {"FLYERSCAN_UPLOAD_TEMP_DIR"},
		"upload.max_file_size_mb": {"FLYERSCAN_UPLOAD_MAX_FILE_SIZE_MB"},
		// The frontend's .env.local exports the key under its public name.
		"google.api_key":        {"FLYERSCAN_GOOGLE_API_KEY", "NEXT_PUBLIC_GOOGLE_API_KEY"},
		"gemini.api_key":        {"FLYERSCAN_GEMINI_API_KEY"},
		"gemini.model":          {"FLYERSCAN_GEMINI_MODEL"},
		"gemini.endpoint":       {"FLYERSCAN_GEMINI_ENDPOINT"},
		"gemini.timeout_secs":   {"FLYERSCAN_GEMINI_TIMEOUT_SECS"},
		"places.api_key":        {"FLYERSCAN_PLACES_API_KEY"},
		"places.base_url":       {"FLYERSCAN_PLACES_BASE_URL"},
		"places.language":       {"FLYERSCAN_PLACES_LANGUAGE"},
		"places.timeout_secs":   {"FLYERSCAN_PLACES_TIMEOUT_SECS"},
		"places.max_candidates": {"FLYERSCAN_PLACES_MAX_CANDIDATES"},
		"metrics.enabled":       {"FLYERSCAN_METRICS_ENABLED"},
		"metrics.path":          {"FLYERSCAN_METRICS_PATH"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FLYERSCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FLYERSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Upload = UploadConfig{
		TempDir:       v.GetString("upload.temp_dir"),
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Google = GoogleConfig{
		APIKey: v.GetString("google.api_key"),
	}
	cfg.Gemini = GeminiConfig{
		APIKey:      v.GetString("gemini.api_key"),
		Model:       v.GetString("gemini.model"),
		Endpoint:    v.GetString("gemini.endpoint"),
		TimeoutSecs: v.GetInt("gemini.timeout_secs"),
	}
	cfg.Places = PlacesConfig{
		APIKey:        v.GetString("places.api_key"),
		BaseURL:       v.GetString("places.base_url"),
		Language:      v.GetString("places.language"),
		TimeoutSecs:   v.GetInt("places.timeout_secs"),
		MaxCandidates: v.GetInt("places.max_candidates"),
	}
	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}

	cfg.applyCredentialFallback()

	return cfg, nil
}

// applyCredentialFallback hands the shared Google key to any client
// that has no key of its own.
func (c *Config) applyCredentialFallback() {
	if c.Gemini.APIKey == "" {
		c.Gemini.APIKey = c.Google.APIKey
	}
	if c.Places.APIKey == "" {
		c.Places.APIKey = c.Google.APIKey
	}
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
