package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is populated from the environment, with an optional YAML file when
// CONFIG_PATH is set. Every field has a usable default so the service starts
// with nothing configured at all.
type Config struct {
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	HTTPServer `yaml:"http_server"`
	Kafka      `yaml:"kafka"`
	RateLimit  `yaml:"rate_limit"`
}

type HTTPServer struct {
	Port         string        `yaml:"port" env:"PORT" env-default:"3000"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Kafka struct {
	// Brokers empty means lifecycle event publishing is disabled.
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
}

type RateLimit struct {
	ReadPerSecond  float64 `yaml:"read_per_second" env:"RATE_LIMIT_READ_PER_SECOND" env-default:"10"`
	ReadBurst      int     `yaml:"read_burst" env:"RATE_LIMIT_READ_BURST" env-default:"20"`
	WritePerSecond float64 `yaml:"write_per_second" env:"RATE_LIMIT_WRITE_PER_SECOND" env-default:"2"`
	WriteBurst     int     `yaml:"write_burst" env:"RATE_LIMIT_WRITE_BURST" env-default:"5"`
}

// MustLoad reads the config or exits; if this returns, the config is valid.
func MustLoad() *Config {
	var cfg Config

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Fatalf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Fatalf("cannot read config: %s", err)
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}
	return &cfg
}
