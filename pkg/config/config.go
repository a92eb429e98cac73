package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	KafkaBrokers    string        `envconfig:"KAFKA_BROKERS" default:""`
	DeliveryCharge  string        `envconfig:"DELIVERY_CHARGE" default:"29"`
	TaxRate         string        `envconfig:"TAX_RATE" default:"0.10"`
	ProcessingDelay time.Duration `envconfig:"PROCESSING_DELAY" default:"1500ms"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
