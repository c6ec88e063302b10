package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Role names the process a Config is validated for.
type Role string

const (
	RoleDispatch Role = "dispatch"
	RoleGateway  Role = "gateway"
	RoleMigrate  Role = "migrate"
)

type Config struct {
	Env          string `mapstructure:"ENV"`
	Port         string `mapstructure:"PORT"`
	AdminPort    string `mapstructure:"ADMIN_PORT"`
	GRPCAddr     string `mapstructure:"GRPC_ADDR"`
	DispatchAddr string `mapstructure:"DISPATCH_ADDR"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32  `mapstructure:"DB_MIN_CONNS"`

	RedisURL          string        `mapstructure:"REDIS_URL"`
	DirectoryCacheTTL time.Duration `mapstructure:"DIRECTORY_CACHE_TTL"`

	EventBufferSize int           `mapstructure:"EVENT_BUFFER_SIZE"`
	SSEPingInterval time.Duration `mapstructure:"SSE_PING_INTERVAL"`
	DialTimeout     time.Duration `mapstructure:"DIAL_TIMEOUT"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	ClinicalAPIBaseURL  string `mapstructure:"CLINICAL_API_BASE_URL"`
	ClinicalAPIAuthURL  string `mapstructure:"CLINICAL_API_AUTH_URL"`
	ClinicalAPIUsername string `mapstructure:"CLINICAL_API_USERNAME"`
	ClinicalAPIPassword string `mapstructure:"CLINICAL_API_PASSWORD"`

	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

var keys = []string{
	"ENV", "PORT", "ADMIN_PORT", "GRPC_ADDR", "DISPATCH_ADDR",
	"DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"REDIS_URL", "DIRECTORY_CACHE_TTL",
	"EVENT_BUFFER_SIZE", "SSE_PING_INTERVAL", "DIAL_TIMEOUT", "REQUEST_TIMEOUT",
	"CORS_ORIGINS",
	"CLINICAL_API_BASE_URL", "CLINICAL_API_AUTH_URL", "CLINICAL_API_USERNAME", "CLINICAL_API_PASSWORD",
	"OTEL_EXPORTER_OTLP_ENDPOINT",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("ADMIN_PORT", "8081")
	v.SetDefault("GRPC_ADDR", ":9090")
	v.SetDefault("DISPATCH_ADDR", "localhost:9090")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("DIRECTORY_CACHE_TTL", "10m")
	v.SetDefault("EVENT_BUFFER_SIZE", 64)
	v.SetDefault("SSE_PING_INTERVAL", "20s")
	v.SetDefault("DIAL_TIMEOUT", "5s")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")

	// Bind env vars explicitly so Unmarshal picks them up
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.CORSOrigins) == 1 && strings.Contains(cfg.CORSOrigins[0], ",") {
		cfg.CORSOrigins = strings.Split(cfg.CORSOrigins[0], ",")
	}
	for i, o := range cfg.CORSOrigins {
		cfg.CORSOrigins[i] = strings.TrimSpace(o)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// ClinicalAPIEnabled reports whether patient lookups can be served.
func (c *Config) ClinicalAPIEnabled() bool {
	return c.ClinicalAPIBaseURL != "" && c.ClinicalAPIAuthURL != ""
}

// Validate checks the settings the given role cannot start without.
func (c *Config) Validate(role Role) error {
	switch role {
	case RoleDispatch, RoleMigrate:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for %s", role)
		}
	case RoleGateway:
		if c.DispatchAddr == "" {
			return fmt.Errorf("DISPATCH_ADDR is required for gateway")
		}
	default:
		return fmt.Errorf("unknown role %q", role)
	}

	if role == RoleDispatch {
		if c.EventBufferSize <= 0 {
			return fmt.Errorf("EVENT_BUFFER_SIZE must be positive, got %d", c.EventBufferSize)
		}
		if (c.ClinicalAPIBaseURL == "") != (c.ClinicalAPIAuthURL == "") {
			return fmt.Errorf("CLINICAL_API_BASE_URL and CLINICAL_API_AUTH_URL must be set together")
		}
	}
	if role == RoleGateway && c.SSEPingInterval <= 0 {
		return fmt.Errorf("SSE_PING_INTERVAL must be positive, got %s", c.SSEPingInterval)
	}
	return nil
}
