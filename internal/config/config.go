package config

import (
	"github.com/caarlos0/env"
	"github.com/rinserepeat/ordertrack/internal/logger"
	"go.uber.org/zap"
)

type Config struct {
	SpreadsheetID string `env:"SPREADSHEET_ID"`

	CredentialsFile string `env:"GOOGLE_CREDENTIALS_FILE"`

	LogLevel string `env:"LOG_LEVEL"`
}

func InitConfig() *Config {
	flags := Flags{}
	flags.Init()

	cfg := Config{
		SpreadsheetID:   flags.spreadsheetID,
		CredentialsFile: flags.credentialsFile,
		LogLevel:        flags.logLevel,
	}
	cfg.parseEnv()

	return &cfg
}

func (cfg *Config) parseEnv() {
	err := env.Parse(cfg)
	if err != nil {
		logger.Log.Warn("Getting an error while parsing the configuration", zap.String("err", err.Error()))
	}
}
