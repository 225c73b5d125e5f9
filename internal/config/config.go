package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Env               string `mapstructure:"ENV"`
	DataDir           string `mapstructure:"DATA_DIR"`
	StoreBackend      string `mapstructure:"STORE_BACKEND"`
	SQLitePath        string `mapstructure:"SQLITE_PATH"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DBMaxConns        int32  `mapstructure:"DB_MAX_CONNS"`
	DBMinConns        int32  `mapstructure:"DB_MIN_CONNS"`
	DropboxClientID   string `mapstructure:"DROPBOX_CLIENT_ID"`
	DropboxRemotePath string `mapstructure:"DROPBOX_REMOTE_PATH"`
	CallbackAddr      string `mapstructure:"CALLBACK_ADDR"`
	AutoSync          bool   `mapstructure:"AUTO_SYNC"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("ENV", "development")
	v.SetDefault("DATA_DIR", "./clinicdesk-data")
	v.SetDefault("STORE_BACKEND", "sqlite")
	v.SetDefault("DB_MAX_CONNS", 4)
	v.SetDefault("DB_MIN_CONNS", 1)
	v.SetDefault("CALLBACK_ADDR", "127.0.0.1:53682")
	v.SetDefault("AUTO_SYNC", true)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("DATA_DIR")
	v.BindEnv("STORE_BACKEND")
	v.BindEnv("SQLITE_PATH")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("DROPBOX_CLIENT_ID")
	v.BindEnv("DROPBOX_REMOTE_PATH")
	v.BindEnv("CALLBACK_ADDR")
	v.BindEnv("AUTO_SYNC")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, "clinicdesk.db")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration can actually open a store.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case "memory", "file", "sqlite", "postgres":
	default:
		return fmt.Errorf("STORE_BACKEND must be \"memory\", \"file\", \"sqlite\" or \"postgres\", got %q", c.StoreBackend)
	}
	if c.StoreBackend == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND is \"postgres\"")
	}
	return nil
}
