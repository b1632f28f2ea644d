package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/klim4ka-cmyk/expense-bot/internal/logger"
	"gopkg.in/yaml.v3"
)

const configFile = "data/config.yaml"

// Имена обязательных переменных окружения.
const (
	EnvToken              = "TELEGRAM_BOT_TOKEN"
	EnvConnectionStringDB = "DATABASE_URL"
)

// Config Настраиваемые параметры (необязательный файл data/config.yaml).
type Config struct {
	MetricsAddress string `yaml:"metrics_address"` // Адрес HTTP-сервера метрик.
	UpdateTimeout  int    `yaml:"update_timeout"`  // Таймаут long polling (в секундах).
	DBMaxOpenConns int    `yaml:"db_max_open_conns"`
	DBMaxIdleConns int    `yaml:"db_max_idle_conns"`
}

type Service struct {
	config             Config
	token              string
	connectionStringDB string
}

// New Читает настройки. Токен бота и строка подключения к БД берутся только из
// окружения (при необходимости из .env); их отсутствие — ошибка запуска.
func New() (*Service, error) {
	_ = godotenv.Load()

	s := &Service{
		config: Config{
			MetricsAddress: "0.0.0.0:8080",
			UpdateTimeout:  60,
			DBMaxOpenConns: 10,
			DBMaxIdleConns: 5,
		},
	}

	rawYAML, err := os.ReadFile(configFile)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
			logger.Error("Error to unmarshal config data", "err", err)
			return nil, fmt.Errorf("unmarshaling config error: %w", err)
		}
	case os.IsNotExist(err):
		logger.Info("Config file not found, using defaults", "file", configFile)
	default:
		logger.Error("Error read config file", "err", err)
		return nil, fmt.Errorf("reading config error: %w", err)
	}

	s.token = os.Getenv(EnvToken)
	if s.token == "" {
		return nil, errors.New(EnvToken + " is not set")
	}

	s.connectionStringDB = os.Getenv(EnvConnectionStringDB)
	if s.connectionStringDB == "" {
		return nil, errors.New(EnvConnectionStringDB + " is not set")
	}

	return s, nil
}

func (s *Service) Token() string {
	return s.token
}

func (s *Service) ConnectionStringDB() string {
	return s.connectionStringDB
}

func (s *Service) GetConfig() Config {
	return s.config
}
