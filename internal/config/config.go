package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	Log     Log
	HTTP    HTTP
	Probe   Probe
	Metrics Metrics
	Model   Model
}

type App struct {
	Name string `env:"APP_NAME" envDefault:"insurance-premium-api"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}

// Client is the configuration of the premium-client command.
type Client struct {
	APIURL string `env:"PREMIUM_API_URL" envDefault:"http://127.0.0.1:8000"`
	Log    Log
}

func LoadClient() (Client, error) {
	_ = godotenv.Load()

	var config Client

	if err := env.Parse(&config); err != nil {
		return Client{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
