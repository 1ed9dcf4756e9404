package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cockroachdb/errors"
)

// Config holds application configuration
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Central Bank key rate, shown for reference only
	CBRURL         string        `env:"CBR_URL" envDefault:"https://www.cbr.ru/DailyInfoWebServ/DailyInfo.asmx"`
	CBRTimeout     time.Duration `env:"CBR_TIMEOUT" envDefault:"10s"`
	KeyRateRefresh string        `env:"KEY_RATE_REFRESH" envDefault:"@every 6h"`

	// Per-client limits on POST /check
	CheckRatePerMinute int `env:"CHECK_RATE_PER_MINUTE" envDefault:"30"`
	CheckRateBurst     int `env:"CHECK_RATE_BURST" envDefault:"5"`
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}

	if cfg.Port == "" {
		return nil, errors.New("PORT is required")
	}
	if cfg.CBRURL == "" {
		return nil, errors.New("CBR_URL is required")
	}
	if cfg.KeyRateRefresh == "" {
		return nil, errors.New("KEY_RATE_REFRESH is required")
	}
	if cfg.CheckRatePerMinute <= 0 {
		return nil, errors.Newf("CHECK_RATE_PER_MINUTE must be positive, got %d", cfg.CheckRatePerMinute)
	}
	if cfg.CheckRateBurst <= 0 {
		return nil, errors.Newf("CHECK_RATE_BURST must be positive, got %d", cfg.CheckRateBurst)
	}

	return cfg, nil
}
