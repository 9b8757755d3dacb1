package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvAddr          = "AGENTHUB_ADDR"
	EnvResponseDelay = "AGENTHUB_RESPONSE_DELAY"
	EnvUploadDelay   = "AGENTHUB_UPLOAD_DELAY"
	EnvFixtures      = "AGENTHUB_FIXTURES"
	EnvLogLevel      = "AGENTHUB_LOG_LEVEL"

	DefaultAddr          = ":8080"
	DefaultResponseDelay = 1500 * time.Millisecond
	DefaultUploadDelay   = 2 * time.Second
)

type Config struct {
	Addr          string
	ResponseDelay time.Duration
	UploadDelay   time.Duration
	FixturesPath  string
	LogLevel      zapcore.Level
}

var (
	configInstance *Config
	once           sync.Once
)

func InitConfig() (*Config, error) {
	var initErr error

	once.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err := config.Build()
		if err != nil {
			logger = zap.NewNop()
			initErr = fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		// Load .env file
		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				logger.Debug("No .env file found; falling back to system environment variables")
			} else {
				initErr = fmt.Errorf("failed to load .env file: %w", err)
				logger.Error("Config file load error", zap.Error(err))
				return
			}
		} else {
			logger.Debug("Successfully loaded .env file")
		}

		cfg, err := FromEnv(os.Getenv)
		if err != nil {
			initErr = err
			return
		}
		configInstance = cfg
	})

	if initErr != nil {
		return nil, initErr
	}
	if configInstance == nil {
		return nil, fmt.Errorf("configuration initialization failed unexpectedly")
	}

	return configInstance, nil
}

// FromEnv builds a Config from the lookup function, applying defaults for
// unset variables.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Addr:          DefaultAddr,
		ResponseDelay: DefaultResponseDelay,
		UploadDelay:   DefaultUploadDelay,
		FixturesPath:  getenv(EnvFixtures),
		LogLevel:      zapcore.WarnLevel,
	}

	if addr := getenv(EnvAddr); addr != "" {
		cfg.Addr = addr
	}

	var err error
	if cfg.ResponseDelay, err = duration(getenv, EnvResponseDelay, cfg.ResponseDelay); err != nil {
		return nil, err
	}
	if cfg.UploadDelay, err = duration(getenv, EnvUploadDelay, cfg.UploadDelay); err != nil {
		return nil, err
	}

	if level := getenv(EnvLogLevel); level != "" {
		if cfg.LogLevel, err = zapcore.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
	}

	return cfg, nil
}

// NewLogger builds the development logger at the configured level, or debug
// when verbose is set. Output goes to stderr unless paths are given.
func (c *Config) NewLogger(verbose bool, paths ...string) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(c.LogLevel)
	if verbose {
		config.Level.SetLevel(zap.DebugLevel)
	}
	if len(paths) > 0 {
		config.OutputPaths = paths
		config.ErrorOutputPaths = paths
	}
	return config.Build()
}

func duration(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration %s", key, raw)
	}
	return d, nil
}
