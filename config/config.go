// Package config loads process configuration from flags and the
// environment. Flags provide defaults; environment variables win.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	// Environment selects the collection-name suffix (dev, staging, prod).
	Environment string `mapstructure:"environment"`
	// HTTPAddr is the API listen address.
	HTTPAddr string `mapstructure:"http_addr"`
	// DatabaseURL is passed through to the process environment for
	// collaborating tooling; the handlers themselves do not use it.
	DatabaseURL string `mapstructure:"database_url"`
	// Local switches the backing store to the embedded database.
	Local bool `mapstructure:"local"`
	// LocalDataDir persists the embedded database; empty keeps it in memory.
	LocalDataDir string `mapstructure:"local_data_dir"`
	LogLevel     string `mapstructure:"log_level"`
}

func Load() (Config, error) {
	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags.String("environment", "dev", "deployment environment, selects collection names")
	flags.String("http-addr", ":8080", "API listen address")
	flags.String("database-url", "", "database connection passthrough")
	flags.Bool("local", false, "use the embedded local store instead of DynamoDB")
	flags.String("local-data-dir", "", "directory for the local store, empty for in-memory")
	flags.String("log-level", "info", "log level")
	_ = flags.Parse(os.Args[1:])

	v := viper.New()
	v.SetEnvPrefix("HIBISCUS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	// The deployment platform provisions these two under their plain names.
	_ = v.BindEnv("environment", "ENVIRONMENT")
	_ = v.BindEnv("database-url", "DATABASE_URL")
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	cfg := Config{
		Environment:  v.GetString("environment"),
		HTTPAddr:     v.GetString("http-addr"),
		DatabaseURL:  v.GetString("database-url"),
		Local:        v.GetBool("local"),
		LocalDataDir: v.GetString("local-data-dir"),
		LogLevel:     v.GetString("log-level"),
	}
	if cfg.Environment == "" {
		return Config{}, fmt.Errorf("environment must not be empty")
	}
	return cfg, nil
}
