package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Storage
	HTTPServer
	Kindness
	RateLimit
	Env string `env:"APP_ENV" env-default:"development"`
}

type Storage struct {
	Driver     string        `env:"STORAGE_DRIVER" env-default:"postgres"`
	User       string        `env:"POSTGRES_USER" env-default:"postgres"`
	Pass       string        `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Host       string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port       string        `env:"POSTGRES_PORT" env-default:"5432"`
	DB         string        `env:"POSTGRES_DB" env-default:"hushboard"`
	Timeout    time.Duration `env:"POSTGRES_TIMEOUT" env-default:"5s"`
	Migrations string        `env:"POSTGRES_MIGRATIONS" env-default:"./migrations"`
	SQLitePath string        `env:"SQLITE_PATH" env-default:"./hushboard.db"`
}

type HTTPServer struct {
	BindAddress     string        `env:"BIND_ADDRESS" env-default:"localhost"`
	BindPort        string        `env:"BIND_PORT" env-default:"8000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" env-default:"5s"`
}

type Kindness struct {
	Enabled   bool          `env:"ENABLE_KINDNESS_POINTS" env-default:"true"`
	SecretKey string        `env:"SECRET_KEY" env-default:"dev-secret"`
	TokenTTL  time.Duration `env:"KINDNESS_TOKEN_TTL" env-default:"5m"`
}

type RateLimit struct {
	Enabled   bool `env:"ENABLE_RATE_LIMITING" env-default:"false"`
	PerMinute int  `env:"RATE_LIMIT_PER_MINUTE" env-default:"60"`
}

func New(env string) (*Config, error) {
	conf := &Config{}

	if err := godotenv.Overload(env); err != nil {
		return nil, fmt.Errorf("godotenv.Overload: %v", err)
	}

	if err := cleanenv.ReadEnv(conf); err != nil {
		return nil, fmt.Errorf("cleanenv.Readenv: %v", err)
	}

	return conf, nil
}
