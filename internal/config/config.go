package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It is read from a yaml file and every value can be overridden with the
// environment variable named in its env tag.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSOrigins lists the allowed browser origins. Empty allows any origin.
		CORSOrigins []string `env:"HTTP_CORS_ORIGINS" env-separator:"," yaml:"corsOrigins"`
		// RateLimit is the sustained number of trigger requests allowed per account each second
		RateLimit float64 `env:"HTTP_RATE_LIMIT" env-default:"0.5" yaml:"rateLimit"`
		// RateBurst is the number of trigger requests an account may burst above RateLimit
		RateBurst int `env:"HTTP_RATE_BURST" env-default:"3" yaml:"rateBurst"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"leadgen" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis holds the cache connection settings
	Redis struct {
		// Addr is the host:port of the redis server
		Addr string `env:"REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
		// Password for redis authentication
		Password string `env:"REDIS_PASSWORD" env-default:"" yaml:"password"`
		// DB is the redis logical database number
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// LocationTTL controls how long validated locations stay cached
		LocationTTL time.Duration `env:"REDIS_LOCATION_TTL" env-default:"24h" yaml:"locationTTL"`
	} `yaml:"redis"`

	// JWT holds the keys used to verify and issue identity tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key used to verify bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
		// Issuer is the expected iss claim. Empty skips the check.
		Issuer string `env:"JWT_ISSUER" env-default:"" yaml:"issuer"`
	} `yaml:"jwt"`

	// Webhooks configures the external search and email generation workflows
	Webhooks struct {
		// SearchURL is the endpoint that starts a search run
		SearchURL string `env:"WEBHOOKS_SEARCH_URL" env-default:"" yaml:"searchURL"`
		// EmailsURL is the endpoint that generates email drafts
		EmailsURL string `env:"WEBHOOKS_EMAILS_URL" env-default:"" yaml:"emailsURL"`
		// Token is the bearer token sent to both endpoints
		Token string `env:"WEBHOOKS_TOKEN" env-default:"" yaml:"token"`
		// Timeout bounds a single webhook call
		Timeout time.Duration `env:"WEBHOOKS_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// RefreshAfter is how long clients wait before reloading after a trigger
		RefreshAfter time.Duration `env:"WEBHOOKS_REFRESH_AFTER" env-default:"2s" yaml:"refreshAfter"`
		// DedupeWindow is how long a repeated trigger for the same account is rejected
		DedupeWindow time.Duration `env:"WEBHOOKS_DEDUPE_WINDOW" env-default:"10s" yaml:"dedupeWindow"`
	} `yaml:"webhooks"`

	// Leads configures lead listing
	Leads struct {
		// DefaultPageSize is used when a request does not pick one
		DefaultPageSize int `env:"LEADS_DEFAULT_PAGE_SIZE" env-default:"50" yaml:"defaultPageSize"`
	} `yaml:"leads"`

	// Retention configures the exported draft sweep
	Retention struct {
		// Schedule is a five field cron expression
		Schedule string `env:"RETENTION_SCHEDULE" env-default:"0 3 * * *" yaml:"schedule"`
		// MaxAge is how long exported drafts are kept
		MaxAge time.Duration `env:"RETENTION_MAX_AGE" env-default:"720h" yaml:"maxAge"`
	} `yaml:"retention"`

	// Worker configures the background job queue
	Worker struct {
		// MaxWorkers is the number of concurrent jobs of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"4" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// Client configures the CLI commands that talk to a running server
	Client struct {
		// APIURL is the base URL of the server
		APIURL string `env:"CLIENT_API_URL" env-default:"http://localhost:8080" yaml:"apiURL"`
		// Token is the bearer token sent by the CLI
		Token string `env:"CLIENT_TOKEN" env-default:"" yaml:"token"`
	} `yaml:"client"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
