package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env                string `env:"APP_ENV" env-default:"development"`
		Port               int    `env:"APP_PORT" env-default:"8000"`
		SentryUrl          string `env:"SENTRY_URL"`
		DefaultPosterTitle string `env:"DEFAULT_POSTER_TITLE" env-default:"Event"`
	}
	Postgres struct {
		Port     int    `env:"POSTGRES_PORT" env-default:"5432"`
		Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
		User     string `env:"POSTGRES_USER"`
		Pass     string `env:"POSTGRES_PASS"`
		Name     string `env:"POSTGRES_NAME"`
		SslMode  string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
		MinConns int32  `env:"POSTGRES_MIN_CONNS" env-default:"1"`
		MaxConns int32  `env:"POSTGRES_MAX_CONNS" env-default:"10"`
	}
	Telegram struct {
		Token string `env:"TELEGRAM_TOKEN"`
	}
	Photo struct {
		LocalPrefixes string `env:"LOCAL_PHOTO_PREFIXES" env-default:"/posters/,posters/,/uploads/,uploads/"`
	}
	Admin struct {
		IDs string `env:"ADMIN_IDS"`
	}
	Upload struct {
		Dir string `env:"UPLOAD_DIR" env-default:"uploads/stories"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// GetDSN returns a keyword/value connection string for database/sql + lib/pq.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("dbname=%s user=%s password=%s host=%s port=%d sslmode=%s",
		c.Postgres.Name, c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.SslMode,
	)
}

// GetURL returns a URL-form connection string for pgxpool.
func (c *Config) GetURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Postgres.User, c.Postgres.Pass, c.Postgres.Host, c.Postgres.Port, c.Postgres.Name, c.Postgres.SslMode,
	)
}
