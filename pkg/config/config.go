package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppEnv   string `yaml:"app_env"`
	LogLevel string `yaml:"log_level"`

	// APIBaseURL is the root of the Recirculate REST backend, including the
	// common path prefix (e.g. https://api.recirculate.shop/api).
	APIBaseURL     string        `yaml:"api_base_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// StateDir holds client-local durable state (cart, session).
	StateDir string `yaml:"state_dir"`

	CheckoutStepTimeout time.Duration `yaml:"checkout_step_timeout"`
	CheckoutFanoutLimit int           `yaml:"checkout_fanout_limit"`
}

// Load builds the config from defaults, an optional YAML file at
// $STOREFRONT_CONFIG (falling back to ~/.config/storefront/config.yaml),
// then env vars. Later sources win.
func Load() Config {
	cfg := Config{
		AppEnv:              "dev",
		LogLevel:            "info",
		APIBaseURL:          "http://localhost:8000/api",
		RequestTimeout:      30 * time.Second,
		StateDir:            defaultStateDir(),
		CheckoutStepTimeout: 15 * time.Second,
		CheckoutFanoutLimit: 10,
	}

	if path := configFilePath(); path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(raw, &cfg)
		}
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.APIBaseURL = getEnv("STOREFRONT_API_URL", cfg.APIBaseURL)
	cfg.StateDir = getEnv("STOREFRONT_STATE_DIR", cfg.StateDir)
	cfg.RequestTimeout = getEnvDuration("STOREFRONT_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.CheckoutStepTimeout = getEnvDuration("STOREFRONT_CHECKOUT_STEP_TIMEOUT", cfg.CheckoutStepTimeout)
	cfg.CheckoutFanoutLimit = getEnvInt("STOREFRONT_CHECKOUT_FANOUT_LIMIT", cfg.CheckoutFanoutLimit)

	return cfg
}

func configFilePath() string {
	if p := os.Getenv("STOREFRONT_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "storefront", "config.yaml")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storefront"
	}
	return filepath.Join(home, ".local", "share", "storefront")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
