package app

import (
	"github.com/yungbote/crm-backend/internal/platform/envutil"
)

type Config struct {
	HTTPAddr    string
	LogMode     string
	Environment string
	Version     string
}

func LoadConfig() Config {
	return Config{
		HTTPAddr:    ":" + envutil.String("PORT", "8080"),
		LogMode:     envutil.String("LOG_MODE", "development"),
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),
	}
}
