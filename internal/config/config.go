package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                  string
	DatabaseURL          string // postgres:// DSN, or a local SQLite file path
	TemplateDir          string // directory holding <document_type>.html templates
	StorageDir           string // root of uploaded scan images
	DefaultDepositPeriod string // fallback when a document's deposit period is unparseable
	LogLevel             string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	env := viper.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		Env:                  env,
		DatabaseURL:          viper.GetString("DATABASE_URL"),
		TemplateDir:          withDefault(viper.GetString("TEMPLATE_DIR"), "templates"),
		StorageDir:           withDefault(viper.GetString("STORAGE_DIR"), "storage"),
		DefaultDepositPeriod: withDefault(viper.GetString("DEFAULT_DEPOSIT_PERIOD"), "3 ខែ"),
		LogLevel:             withDefault(viper.GetString("LOG_LEVEL"), "info"),
	}, nil
}

func withDefault(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
