package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Currency CurrencyConfig
	Menu     MenuConfig
	Log      LogConfig
}

type CurrencyConfig struct {
	Prefix string
}

type MenuConfig struct {
	File string // optional path overriding the built-in menu
}

type LogConfig struct {
	Debug bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Currency: CurrencyConfig{
			Prefix: getEnv("CURRENCY_PREFIX", "Rp"),
		},
		Menu: MenuConfig{
			File: getEnv("MENU_FILE", ""),
		},
		Log: LogConfig{
			Debug: parseBool(getEnv("DEBUG", "")),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	v = strings.TrimSpace(v)
	return v == "1" || strings.EqualFold(v, "true")
}
