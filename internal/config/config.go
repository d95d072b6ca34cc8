package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host     string
	Port     int
	MaxBatch int
}

type AuthConfig struct {
	AccessSecret string
}

type ScanConfig struct {
	Workers int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Auth        AuthConfig
	Scan        ScanConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:     v.GetString("HTTP_HOST"),
			Port:     v.GetInt("HTTP_PORT"),
			MaxBatch: v.GetInt("HTTP_MAX_BATCH"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
		Scan: ScanConfig{
			Workers: v.GetInt("SCAN_WORKERS"),
		},
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.HTTP.MaxBatch == 0 {
		cfg.HTTP.MaxBatch = 64
	}
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = 8
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Auth.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.HTTP.MaxBatch < 0 {
		return fmt.Errorf("HTTP_MAX_BATCH must be positive")
	}
	if cfg.Scan.Workers < 0 {
		return fmt.Errorf("SCAN_WORKERS must be positive")
	}
	return nil
}
