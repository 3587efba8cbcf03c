package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type (
	Config struct {
		App          App          `json:"app"`
		RateService  RateService  `json:"rate_service"`
		GoogleSheets GoogleSheets `json:"google_sheets"`
		Session      Session      `json:"session"`
	}

	App struct {
		Env             string        `json:"env"`
		Name            string        `json:"name"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		LogLevel        string        `json:"log_level"`
	}

	// RateService configures the National Bank of Georgia client.
	RateService struct {
		BaseURL            string                   `json:"base_url"`
		Timeout            time.Duration            `json:"timeout"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
	}

	ExponentialBackOffConfig struct {
		MaxRetries        uint64        `json:"max_retries"`
		InitialInterval   time.Duration `json:"initial_interval"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
	}

	GoogleSheets struct {
		CredentialsPath string `json:"credentials_path"`
	}

	Session struct {
		// SkipLanguageSelection starts sessions at the template-request state
		// for single-language deployments.
		SkipLanguageSelection bool `json:"skip_language_selection"`
	}
)

// Load reads the json config file at path; environment variables
// (TAXDECL_APP_HTTP_PORT, ...) override file values.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("TAXDECL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.name", "go-tax-declaration")
	v.SetDefault("app.http_port", 8080)
	v.SetDefault("app.http_timeout", "30s")
	v.SetDefault("app.graceful_timeout", "10s")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("rate_service.base_url", "https://nbg.gov.ge")
	v.SetDefault("rate_service.timeout", "10s")
	v.SetDefault("rate_service.exponential_backoff.max_retries", 3)
	v.SetDefault("rate_service.exponential_backoff.initial_interval", "200ms")
	v.SetDefault("rate_service.exponential_backoff.backoff_multiplier", 2.0)
	v.SetDefault("rate_service.exponential_backoff.max_backoff_time", "15s")
}
