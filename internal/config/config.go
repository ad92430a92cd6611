package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"slices"
	"strings"
	"time"
	_ "time/tzdata" // weather.timezone must resolve in minimal containers

	"gopkg.in/yaml.v3"
)

// Session source kinds.
const (
	SessionNone   = "none"
	SessionStatic = "static"
	SessionStore  = "store"
	SessionJWT    = "jwt"
)

// Config holds the dunerides API configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	CORS     CORSConfig     `yaml:"cors"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Search   SearchConfig   `yaml:"search"`
	Weather  WeatherConfig  `yaml:"weather"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// CORSConfig lists the front-end origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AuthConfig selects where guards read sessions from.
type AuthConfig struct {
	SessionSource string           `yaml:"session_source"` // none, static, store, jwt
	CookieName    string           `yaml:"cookie_name"`
	LoginPath     string           `yaml:"login_path"`
	KeyPrefix     string           `yaml:"key_prefix"` // store source only
	JWTSecret     string           `yaml:"jwt_secret"`
	JWTIssuer     string           `yaml:"jwt_issuer"`
	StaticUser    StaticUserConfig `yaml:"static_user"`
}

// StaticUserConfig is the user reported by the static source. Empty ID means anonymous.
type StaticUserConfig struct {
	ID    string `yaml:"id"`
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
}

// DatabaseConfig holds session store connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
	LookupTimeoutMs  int      `yaml:"lookup_timeout_ms"`
}

// CatalogConfig points at the catalog file. Empty path uses the built-in catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// SearchConfig holds search settings.
type SearchConfig struct {
	IncludePosts bool `yaml:"include_posts"`
}

// WeatherConfig holds mock weather settings.
type WeatherConfig struct {
	Location  string `yaml:"location"`
	Timezone  string `yaml:"timezone"`
	LatencyMs *int   `yaml:"latency_ms"` // nil = default 500, 0 = no delay
}

// Latency returns the configured simulated latency.
func (w WeatherConfig) Latency() time.Duration {
	if w.LatencyMs == nil {
		return 500 * time.Millisecond
	}
	return time.Duration(*w.LatencyMs) * time.Millisecond
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	return Parse(data)
}

// Parse decodes YAML config data, expanding ${VAR} references first.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Auth.SessionSource == "" {
		c.Auth.SessionSource = SessionNone
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "session"
	}
	if c.Auth.LoginPath == "" {
		c.Auth.LoginPath = "/login"
	}
	if c.Auth.KeyPrefix == "" {
		c.Auth.KeyPrefix = "session:"
	}
	// unset ${VAR} entries expand to empty strings
	c.Database.Addrs = slices.DeleteFunc(c.Database.Addrs, func(a string) bool { return a == "" })
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Database.LookupTimeoutMs <= 0 {
		c.Database.LookupTimeoutMs = 250
	}
	if c.Weather.Timezone == "" {
		c.Weather.Timezone = "UTC"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}

	switch c.Auth.SessionSource {
	case SessionNone, SessionStatic:
	case SessionStore:
		if len(c.Database.Addrs) == 0 {
			return fmt.Errorf("database.addrs is required for session_source %q", SessionStore)
		}
	case SessionJWT:
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("auth.jwt_secret is required for session_source %q", SessionJWT)
		}
	default:
		return fmt.Errorf(
			"auth.session_source must be one of none, static, store, jwt, got %q",
			c.Auth.SessionSource,
		)
	}

	if !strings.HasPrefix(c.Auth.LoginPath, "/") {
		return fmt.Errorf("auth.login_path must be an absolute path, got %q", c.Auth.LoginPath)
	}

	if c.Weather.LatencyMs != nil && *c.Weather.LatencyMs < 0 {
		return fmt.Errorf("weather.latency_ms must not be negative, got %d", *c.Weather.LatencyMs)
	}
	if _, err := time.LoadLocation(c.Weather.Timezone); err != nil {
		return fmt.Errorf("weather.timezone: %w", err)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
