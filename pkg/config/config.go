package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Telegram struct {
		Token   string `env:"TELEGRAM_TOKEN,BOT_TOKEN" env-required:"true"`
		Workers int    `env:"TELEGRAM_WORKERS" env-default:"64"`
		Debug   bool   `env:"TELEGRAM_DEBUG" env-default:"false"`
	}
	Fetcher struct {
		Binary   string        `env:"YTDLP_PATH" env-default:"yt-dlp"`
		TempRoot string        `env:"FETCH_TEMP_ROOT"`
		Timeout  time.Duration `env:"FETCH_TIMEOUT" env-default:"3m"`
	}
	Cleaner struct {
		SweepInterval time.Duration `env:"CLEANER_SWEEP_INTERVAL" env-default:"30m"`
		MaxAge        time.Duration `env:"CLEANER_MAX_AGE" env-default:"2h"`
	}
}

var (
	once    sync.Once
	cfg     *Config
	loadErr error
)

// New reads the configuration from the environment once per process.
func New() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = Load()
	})
	return cfg, loadErr
}

// Load reads a fresh configuration from the environment.
func Load() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		help, _ := cleanenv.GetDescription(c, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}
	if c.Telegram.Token == "" {
		return nil, errors.New("TELEGRAM_TOKEN (or BOT_TOKEN) is empty")
	}
	return c, nil
}
