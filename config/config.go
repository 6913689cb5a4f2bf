package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type catalogAPI struct {
	BaseURL           string        `mapstructure:"base_url"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
}

type catalog struct {
	PageSize int `mapstructure:"page_size"`
}

type admin struct {
	StatsPollInterval time.Duration `mapstructure:"stats_poll_interval"`
}

type Config struct {
	LogLevel   slog.Level `mapstructure:"log_level"`
	CatalogAPI catalogAPI `mapstructure:"catalog_api"`
	Catalog    catalog    `mapstructure:"catalog"`
	Admin      admin      `mapstructure:"admin"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	viper.SetDefault("catalog_api.request_timeout", "10s")
	viper.SetDefault("catalog_api.requests_per_second", 10.0)
	viper.SetDefault("catalog_api.burst", 5)
	viper.SetDefault("catalog.page_size", 12)
	viper.SetDefault("admin.stats_poll_interval", "10s")

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q

	CatalogAPI:
	BaseURL=%q
	RequestTimeout=%q
	RequestsPerSecond=%v
	Burst=%d

	Catalog:
	PageSize=%d

	Admin:
	StatsPollInterval=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.CatalogAPI.BaseURL,
		c.CatalogAPI.RequestTimeout,
		c.CatalogAPI.RequestsPerSecond,
		c.CatalogAPI.Burst,
		c.Catalog.PageSize,
		c.Admin.StatsPollInterval,
	)
}
