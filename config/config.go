package config

import (
	"errors"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"io"
	"io/fs"
	"strings"
	"time"
)

// Prefix of every environment variable read by Load
const Prefix = "MONEYPARSER"

// Config holds the configuration data
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	Address string `envconfig:"ADDRESS" default:"0.0.0.0"`
	Port    int    `envconfig:"PORT" default:"8080"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"5s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"logfmt"`
}

// Load reads the configuration from the environment, after loading a .env
// file from the working directory if one exists.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		// a missing default .env is fine, anything else is not
		if len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env files: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("processing env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}
	if _, ok := levels[strings.ToLower(c.LogLevel)]; !ok {
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "logfmt", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be logfmt or json", c.LogFormat))
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 || c.ShutdownTimeout <= 0 {
		problems = append(problems, "timeouts must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ListenAddr host:port for the HTTP server
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

var levels = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
}

// NewLogger builds the process logger writing to w, filtered to c.LogLevel.
func (c *Config) NewLogger(w io.Writer) log.Logger {
	w = log.NewSyncWriter(w)

	var logger log.Logger
	if strings.ToLower(c.LogFormat) == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}

	opt, ok := levels[strings.ToLower(c.LogLevel)]
	if !ok {
		opt = level.AllowInfo()
	}
	logger = level.NewFilter(logger, opt)
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
