package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type OrderbookConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	OrderDB      `yaml:"order_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	RedisCache   `yaml:"redis-cache"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type RedisCache struct {
	Addr       string `yaml:"addr"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

func MustLoad() *OrderbookConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ORDERBOOK_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ORDERBOOK_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg OrderbookConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
