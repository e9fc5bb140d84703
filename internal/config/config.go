package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type API struct {
	BaseURL   string        `yaml:"base_url" env:"API_BASE_URL" env-required:"true"`
	Timeout   time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"API_USER_AGENT" env-default:"cellsync-pos/1.0"`
}

type Session struct {
	Backend   string `yaml:"backend" env:"SESSION_BACKEND" env-default:"memory"`
	Namespace string `yaml:"namespace" env:"SESSION_NAMESPACE" env-default:"cellsync"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type LoginLimit struct {
	MaxAttempts int           `yaml:"max_attempts" env:"LOGIN_MAX_ATTEMPTS" env-default:"5"`
	Window      time.Duration `yaml:"window" env:"LOGIN_WINDOW" env-default:"15m"`
}

type Catalog struct {
	Source string `yaml:"source" env:"CATALOG_SOURCE" env-default:"api"`
	File   string `yaml:"file" env:"CATALOG_FILE"`
	Cached bool   `yaml:"cached" env:"CATALOG_CACHED" env-default:"false"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type StatusServer struct {
	Addr string `yaml:"address" env:"STATUS_ADDR"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"cellsync-pos"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT" env-default:"http://localhost:4318/v1/traces"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

type Store struct {
	Name           string `yaml:"name" env:"STORE_NAME" env-default:"CellSync"`
	CurrencySymbol string `yaml:"currency_symbol" env:"STORE_CURRENCY_SYMBOL" env-default:"R$"`
}

type Config struct {
	Env          string       `yaml:"env" env:"ENV" env-default:"local"`
	API          API          `yaml:"api"`
	Session      Session      `yaml:"session"`
	RedisConnect RedisConnect `yaml:"redis"`
	LoginLimit   LoginLimit   `yaml:"login_limit"`
	Catalog      Catalog      `yaml:"catalog"`
	Cache        CacheConfig  `yaml:"cache"`
	StatusServer StatusServer `yaml:"status_server"`
	Otel         Otel         `yaml:"otel"`
	Log          Log          `yaml:"log"`
	Store        Store        `yaml:"store"`
}

func MustLoad() *Config {

	var configPath string

	configPath = os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {

			log.Fatal("Config path is not set")

		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {

	switch c.Session.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported session backend %q", c.Session.Backend)
	}

	switch c.Catalog.Source {
	case "api":
	case "file":
		if c.Catalog.File == "" {
			return fmt.Errorf("catalog source is file but catalog.file is empty")
		}
	default:
		return fmt.Errorf("unsupported catalog source %q", c.Catalog.Source)
	}

	if c.LoginLimit.MaxAttempts < 0 {
		return fmt.Errorf("login_limit.max_attempts must not be negative, got %d", c.LoginLimit.MaxAttempts)
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("api timeout must be positive, got %s", c.API.Timeout)
	}

	return nil
}

// UsesRedis reports whether any component needs a redis connection.
func (c *Config) UsesRedis() bool {
	return c.Session.Backend == "redis" || c.Catalog.Cached
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s",
		r.Username, r.Password, r.Host, r.Port)
}
