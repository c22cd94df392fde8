package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const envPrefix = "HACKHUB_"

// ErrNilConfig is returned when a nil config is passed to a function that
// requires one.
var ErrNilConfig = errors.New("nil config")

// CORSConfig is the CORS configuration for the HTTP server.
type CORSConfig struct {
	AllowedHeaders []string `env:"ALLOWED_HEADERS" yaml:"allowed_headers"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	AllowedMethods []string `env:"ALLOWED_METHODS" yaml:"allowed_methods"`
}

// HTTPConfig is the HTTP configuration for the server.
type HTTPConfig struct {
	// ListenAddr is the address on which the HTTP server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`

	// TLSKeyPath is the path to the TLS private key.
	TLSKeyPath string `env:"TLS_KEY_PATH" yaml:"tls_key_path"`

	// TLSCertPath is the path to the TLS certificate.
	TLSCertPath string `env:"TLS_CERT_PATH" yaml:"tls_cert_path"`

	// PublicURL is the public URL of the HTTP server.
	PublicURL string `env:"PUBLIC_URL" yaml:"public_url"`

	// CORS holds the cross-origin settings of the API.
	CORS CORSConfig `envPrefix:"CORS_" yaml:"cors"`
}

// StatsConfig is the configuration for the stats server.
type StatsConfig struct {
	// ListenAddr is the address on which the stats server will listen.
	ListenAddr string `env:"LISTEN_ADDR" yaml:"listen_addr"`
}

// LogConfig is the logger configuration.
type LogConfig struct {
	// Format is the format of the logs.
	// Valid values are "json", "logfmt", and "text".
	Format string `env:"FORMAT" yaml:"format"`

	// Time format for the log `ts` field.
	// Format must be described in Golang's time format.
	TimeFormat string `env:"TIME_FORMAT" yaml:"time_format"`

	// Path to a file to write logs to.
	// If not set, logs will be written to stderr.
	Path string `env:"PATH" yaml:"path"`
}

// DBConfig is the database connection configuration.
type DBConfig struct {
	// Driver is the driver for the database.
	Driver string `env:"DRIVER" yaml:"driver"`

	// DataSource is the database data source name.
	DataSource string `env:"DATA_SOURCE" yaml:"data_source"`
}

// AuthConfig is the bearer token configuration.
type AuthConfig struct {
	// JWTSecret is the HS256 key used to sign and verify tokens.
	JWTSecret string `env:"JWT_SECRET" yaml:"jwt_secret"`

	// Issuer is the expected token issuer. Empty accepts any issuer.
	Issuer string `env:"ISSUER" yaml:"issuer"`

	// TokenTTL is the default lifetime of tokens issued by the CLI.
	TokenTTL time.Duration `env:"TOKEN_TTL" yaml:"token_ttl"`
}

// JobsConfig is the configuration for cron jobs.
type JobsConfig struct {
	// HackathonStatus is the schedule of the hackathon status sweep.
	HackathonStatus string `env:"HACKATHON_STATUS" yaml:"hackathon_status"`
}

// WebhookConfig is the configuration for outgoing webhooks.
type WebhookConfig struct {
	// Timeout is the per-delivery request timeout.
	Timeout time.Duration `env:"TIMEOUT" yaml:"timeout"`

	// Workers is the maximum number of concurrent deliveries.
	Workers int `env:"WORKERS" yaml:"workers"`
}

// CacheConfig is the configuration for in-memory caches.
type CacheConfig struct {
	// Size is the maximum number of cached hackathons.
	Size int `env:"SIZE" yaml:"size"`
}

// Config is the configuration for Hackhub.
type Config struct {
	// Name is the name of the server.
	Name string `env:"NAME" yaml:"name"`

	// HTTP is the configuration for the HTTP server.
	HTTP HTTPConfig `envPrefix:"HTTP_" yaml:"http"`

	// Stats is the configuration for the stats server.
	Stats StatsConfig `envPrefix:"STATS_" yaml:"stats"`

	// Log is the logger configuration.
	Log LogConfig `envPrefix:"LOG_" yaml:"log"`

	// DB is the database configuration.
	DB DBConfig `envPrefix:"DB_" yaml:"db"`

	// Auth is the token configuration.
	Auth AuthConfig `envPrefix:"AUTH_" yaml:"auth"`

	// Jobs is the configuration for cron jobs
	Jobs JobsConfig `envPrefix:"JOBS_" yaml:"jobs"`

	// Webhook is the configuration for outgoing webhooks.
	Webhook WebhookConfig `envPrefix:"WEBHOOK_" yaml:"webhook"`

	// Cache is the configuration for in-memory caches.
	Cache CacheConfig `envPrefix:"CACHE_" yaml:"cache"`

	// InitialAdmins is a list of user IDs that are promoted to admin on start.
	InitialAdmins []string `env:"INITIAL_ADMINS" envSeparator:"," yaml:"initial_admins"`

	// DataPath is the path to the directory where Hackhub will store its data.
	DataPath string `env:"DATA_PATH" yaml:"-"`
}

// Environ returns the config as a list of environment variables.
func (c *Config) Environ() []string {
	envs := []string{}
	if c == nil {
		return envs
	}

	// TODO: do this dynamically
	envs = append(envs, []string{
		fmt.Sprintf("HACKHUB_DATA_PATH=%s", c.DataPath),
		fmt.Sprintf("HACKHUB_NAME=%s", c.Name),
		fmt.Sprintf("HACKHUB_INITIAL_ADMINS=%s", strings.Join(c.InitialAdmins, ",")),
		fmt.Sprintf("HACKHUB_HTTP_LISTEN_ADDR=%s", c.HTTP.ListenAddr),
		fmt.Sprintf("HACKHUB_HTTP_TLS_KEY_PATH=%s", c.HTTP.TLSKeyPath),
		fmt.Sprintf("HACKHUB_HTTP_TLS_CERT_PATH=%s", c.HTTP.TLSCertPath),
		fmt.Sprintf("HACKHUB_HTTP_PUBLIC_URL=%s", c.HTTP.PublicURL),
		fmt.Sprintf("HACKHUB_HTTP_CORS_ALLOWED_HEADERS=%s", strings.Join(c.HTTP.CORS.AllowedHeaders, ",")),
		fmt.Sprintf("HACKHUB_HTTP_CORS_ALLOWED_ORIGINS=%s", strings.Join(c.HTTP.CORS.AllowedOrigins, ",")),
		fmt.Sprintf("HACKHUB_HTTP_CORS_ALLOWED_METHODS=%s", strings.Join(c.HTTP.CORS.AllowedMethods, ",")),
		fmt.Sprintf("HACKHUB_STATS_LISTEN_ADDR=%s", c.Stats.ListenAddr),
		fmt.Sprintf("HACKHUB_LOG_FORMAT=%s", c.Log.Format),
		fmt.Sprintf("HACKHUB_LOG_TIME_FORMAT=%s", c.Log.TimeFormat),
		fmt.Sprintf("HACKHUB_LOG_PATH=%s", c.Log.Path),
		fmt.Sprintf("HACKHUB_DB_DRIVER=%s", c.DB.Driver),
		fmt.Sprintf("HACKHUB_DB_DATA_SOURCE=%s", c.DB.DataSource),
		fmt.Sprintf("HACKHUB_AUTH_ISSUER=%s", c.Auth.Issuer),
		fmt.Sprintf("HACKHUB_AUTH_TOKEN_TTL=%s", c.Auth.TokenTTL),
		fmt.Sprintf("HACKHUB_JOBS_HACKATHON_STATUS=%s", c.Jobs.HackathonStatus),
		fmt.Sprintf("HACKHUB_WEBHOOK_TIMEOUT=%s", c.Webhook.Timeout),
		fmt.Sprintf("HACKHUB_WEBHOOK_WORKERS=%d", c.Webhook.Workers),
		fmt.Sprintf("HACKHUB_CACHE_SIZE=%d", c.Cache.Size),
	}...)

	return envs
}

// IsDebug returns true if the server is running in debug mode.
func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("HACKHUB_DEBUG"))
	return debug
}

// IsVerbose returns true if the server is running in verbose mode.
// Verbose mode is only enabled if debug mode is enabled.
func IsVerbose() bool {
	verbose, _ := strconv.ParseBool(os.Getenv("HACKHUB_VERBOSE"))
	return IsDebug() && verbose
}

// parseFile parses the given file as a configuration file.
// The file must be in YAML format.
func parseFile(cfg *Config, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer f.Close() // nolint: errcheck
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	return cfg.Validate()
}

// ParseFile parses the config from the default file path.
// This also calls Validate() on the config.
func (c *Config) ParseFile() error {
	return parseFile(c, c.ConfigPath())
}

// parseEnv parses the environment variables as a configuration file. A
// .env file in the data directory is loaded first; variables already set in
// the environment win.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(filepath.Join(cfg.DataPath, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env file: %w", err)
	}

	// Merge initial admins and origins from both config file and environment variables.
	initialAdmins := append([]string{}, cfg.InitialAdmins...)
	origins := append([]string{}, cfg.HTTP.CORS.AllowedOrigins...)

	// Override with environment variables
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix: envPrefix,
	}); err != nil {
		return fmt.Errorf("parse environment variables: %w", err)
	}

	if os.Getenv(envPrefix+"INITIAL_ADMINS") != "" {
		cfg.InitialAdmins = append(cfg.InitialAdmins, initialAdmins...)
	}
	if os.Getenv(envPrefix+"HTTP_CORS_ALLOWED_ORIGINS") != "" {
		cfg.HTTP.CORS.AllowedOrigins = append(origins, cfg.HTTP.CORS.AllowedOrigins...)
	}

	return cfg.Validate()
}

// ParseEnv parses the config from the environment variables.
// This also calls Validate() on the config.
func (c *Config) ParseEnv() error {
	return parseEnv(c)
}

// Parse parses the config from the default file path and environment variables.
// This also calls Validate() on the config.
func (c *Config) Parse() error {
	if err := c.ParseFile(); err != nil {
		return err
	}

	return c.ParseEnv()
}

// writeConfig writes the configuration to the given file.
func writeConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(newConfigFile(cfg)), 0o600) // nolint: errcheck, gosec
}

// WriteConfig writes the configuration to the default file.
func (c *Config) WriteConfig() error {
	return writeConfig(c, c.ConfigPath())
}

// DefaultDataPath returns the path to the data directory.
// It uses the HACKHUB_DATA_PATH environment variable if set, otherwise it
// uses "data".
func DefaultDataPath() string {
	dp := os.Getenv("HACKHUB_DATA_PATH")
	if dp == "" {
		dp = "data"
	}

	return dp
}

// ConfigPath returns the path to the config file. HACKHUB_CONFIG_LOCATION
// takes precedence when it points to an existing file.
func (c *Config) ConfigPath() string { // nolint:revive
	if path := os.Getenv("HACKHUB_CONFIG_LOCATION"); path != "" && exist(path) {
		return path
	}

	return filepath.Join(c.DataPath, "config.yaml")
}

func exist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exist returns true if the config file exists.
func (c *Config) Exist() bool {
	return exist(c.ConfigPath())
}

// DefaultConfig returns the default Config. All the path values are relative
// to the data directory.
// Use Validate() to validate the config and ensure absolute paths.
func DefaultConfig() *Config {
	return &Config{
		Name:     "Hackhub",
		DataPath: DefaultDataPath(),
		HTTP: HTTPConfig{
			ListenAddr: ":8080",
			PublicURL:  "http://localhost:8080",
			CORS: CORSConfig{
				AllowedHeaders: []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
				AllowedOrigins: []string{"http://localhost:8080"},
				AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			},
		},
		Stats: StatsConfig{
			ListenAddr: "localhost:8081",
		},
		Log: LogConfig{
			Format:     "text",
			TimeFormat: time.DateTime,
		},
		DB: DBConfig{
			Driver: "sqlite",
			DataSource: "hackhub.db" +
				"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		},
		Auth: AuthConfig{
			Issuer:   "hackhub",
			TokenTTL: 24 * time.Hour,
		},
		Jobs: JobsConfig{
			HackathonStatus: "@every 1m",
		},
		Webhook: WebhookConfig{
			Timeout: 30 * time.Second,
			Workers: 4,
		},
		Cache: CacheConfig{
			Size: 256,
		},
	}
}

// Validate validates the configuration.
// It updates the configuration with absolute paths.
func (c *Config) Validate() error {
	// Use absolute paths
	if !filepath.IsAbs(c.DataPath) {
		dp, err := filepath.Abs(c.DataPath)
		if err != nil {
			return err
		}
		c.DataPath = dp
	}

	c.HTTP.PublicURL = strings.TrimSuffix(c.HTTP.PublicURL, "/")

	if c.HTTP.TLSKeyPath != "" && !filepath.IsAbs(c.HTTP.TLSKeyPath) {
		c.HTTP.TLSKeyPath = filepath.Join(c.DataPath, c.HTTP.TLSKeyPath)
	}

	if c.HTTP.TLSCertPath != "" && !filepath.IsAbs(c.HTTP.TLSCertPath) {
		c.HTTP.TLSCertPath = filepath.Join(c.DataPath, c.HTTP.TLSCertPath)
	}

	if c.Log.Path != "" && !filepath.IsAbs(c.Log.Path) {
		c.Log.Path = filepath.Join(c.DataPath, c.Log.Path)
	}

	if strings.HasPrefix(c.DB.Driver, "sqlite") && !filepath.IsAbs(c.DB.DataSource) {
		c.DB.DataSource = filepath.Join(c.DataPath, c.DB.DataSource)
	}

	if c.Webhook.Workers < 0 {
		return fmt.Errorf("webhook workers must not be negative: %d", c.Webhook.Workers)
	}

	// Validate and deduplicate admin IDs.
	admins := make([]string, 0, len(c.InitialAdmins))
	seen := map[string]struct{}{}
	for _, a := range c.InitialAdmins {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		id, err := uuid.Parse(a)
		if err != nil {
			return fmt.Errorf("invalid initial admin %q: %w", a, err)
		}
		if _, ok := seen[id.String()]; ok {
			continue
		}
		seen[id.String()] = struct{}{}
		admins = append(admins, id.String())
	}

	c.InitialAdmins = admins

	return nil
}

// AdminIDs returns the user IDs promoted to admin on start.
func (c *Config) AdminIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.InitialAdmins))
	for _, a := range c.InitialAdmins {
		if id, err := uuid.Parse(a); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
