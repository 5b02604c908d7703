package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the FarmAssist server.
type Config struct {
	Port      int
	Version   string
	Vision    VisionConfig
	Places    PlacesConfig
	Upload    UploadConfig
	Advisory  AdvisoryConfig
	Telemetry TelemetryConfig
}

type VisionConfig struct {
	APIKey   string
	Model    string
	Endpoint string
}

type PlacesConfig struct {
	APIKey   string
	Endpoint string
}

type UploadConfig struct {
	// Dir is where uploaded images are spooled; each file lives only for
	// the duration of its request.
	Dir string
	// MaxBytes caps the multipart form size.
	MaxBytes int64
}

type AdvisoryConfig struct {
	// File optionally points at a JSON file merged over the built-in
	// advisory table at startup.
	File string
}

type TelemetryConfig struct {
	Enabled      bool
	OTLPEndpoint string
	ServiceName  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envInt("FARMASSIST_PORT", 8080),
		Version: envStr("FARMASSIST_VERSION", "0.2.0"),
		Vision: VisionConfig{
			APIKey:   envStr("GEMINI_API_KEY", ""),
			Model:    envStr("GEMINI_MODEL", "gemini-3-flash-preview"),
			Endpoint: envStr("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com"),
		},
		Places: PlacesConfig{
			APIKey:   envStr("GOOGLE_MAPS_API_KEY", ""),
			Endpoint: envStr("PLACES_ENDPOINT", "https://maps.googleapis.com"),
		},
		Upload: UploadConfig{
			Dir:      envStr("FARMASSIST_UPLOAD_DIR", "uploads"),
			MaxBytes: envInt64("FARMASSIST_UPLOAD_MAX_BYTES", 10<<20),
		},
		Advisory: AdvisoryConfig{
			File: envStr("FARMASSIST_ADVISORY_FILE", ""),
		},
		Telemetry: TelemetryConfig{
			Enabled:      envBool("OTEL_ENABLED", false),
			OTLPEndpoint: envStr("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName:  envStr("OTEL_SERVICE_NAME", "farmassist-server"),
		},
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
