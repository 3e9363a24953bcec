package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the scan pipeline, the optional
// metrics server, and the optional PostgreSQL findings store.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Scanner contains the settings governing the fetch-and-validate pipeline
	Scanner struct {
		// Concurrency is the process-wide cap on in-flight HTTP probes across all domains
		Concurrency int `env:"SCANNER_CONCURRENCY" env-default:"100" yaml:"concurrency"`
		// RequestTimeout bounds a single candidate probe end to end
		RequestTimeout time.Duration `env:"SCANNER_REQUEST_TIMEOUT" env-default:"7s" yaml:"requestTimeout"`
		// OutputFile is the CSV file confirmed findings are appended to
		OutputFile string `env:"SCANNER_OUTPUT_FILE" env-default:"swagger_results.csv" yaml:"outputFile"`
		// UserAgent is sent with every probe request
		UserAgent string `env:"SCANNER_USER_AGENT" env-default:"swaggerhunter" yaml:"userAgent"`
		// MaxBodyBytes caps how much of a response body is read when validating
		MaxBodyBytes int64 `env:"SCANNER_MAX_BODY_BYTES" env-default:"10485760" yaml:"maxBodyBytes"`
	} `yaml:"scanner"`

	// Metrics contains the optional metrics/debug HTTP server configuration
	Metrics struct {
		// Enabled starts the metrics server for the duration of the scan
		Enabled bool `env:"METRICS_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the address and port the metrics server will listen on
		Addr string `env:"METRICS_ADDR" env-default:":9090" yaml:"addr"`
		// Path defines the URL path where Prometheus metrics are exposed
		Path string `env:"METRICS_PATH" env-default:"/metrics" yaml:"path"`
		// ReadTimeout is the maximum duration for reading an entire request
		ReadTimeout time.Duration `env:"METRICS_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"METRICS_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"METRICS_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"METRICS_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
	} `yaml:"metrics"`

	// Database contains the optional PostgreSQL findings store configuration
	Database struct {
		// Enabled turns on durable finding persistence alongside the CSV sink
		Enabled bool `env:"DATABASE_ENABLED" env-default:"false" yaml:"enabled"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"swaggerhunter" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`
}

// Load reads configuration from the given yaml file plus environment
// overrides. A missing file is not an error: the tool is usable without any
// config on disk, so in that case only environment variables and defaults
// apply.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
