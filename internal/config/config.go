package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

type Config struct {
	LogLevel          string        `yaml:"log-level"           env:"LOG_LEVEL"           env-default:"info"`
	HTTPPort          string        `yaml:"http-port"           env:"HTTP_PORT"           env-default:"9090"`
	SocketPort        string        `yaml:"socket-port"         env:"SOCKET_PORT"         env-default:"7777"`
	Store             Store         `yaml:"store"`
	Redis             Redis         `yaml:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"./tictactoe.db"`
	ComputerDelay     time.Duration `yaml:"computer-delay"      env:"COMPUTER_DELAY"      env-default:"1s"`
	AllowedOrigins    []string      `yaml:"allowed-origins"     env:"ALLOWED_ORIGINS"     env-separator:","`
}

type Store struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path and applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Store.Driver {
	case StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("unknown store driver %q", that.Store.Driver)
	}

	if that.ComputerDelay < 0 {
		return fmt.Errorf("computer-delay must not be negative, got %s", that.ComputerDelay)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
