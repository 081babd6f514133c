package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/wfunc/hangman/words"
)

type Config struct {
	Server  ServerConfig   `mapstructure:"server"`
	Log     LogConfig      `mapstructure:"log"`
	Catalog []CatalogEntry `mapstructure:"catalog"`
}

type ServerConfig struct {
	HTTPAddress    string        `mapstructure:"http_address"`
	RPCAddress     string        `mapstructure:"rpc_address"`
	MetricsAddress string        `mapstructure:"metrics_address"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	SweepInterval  time.Duration `mapstructure:"sweep_interval"`
	// Heartbeat is the client heartbeat period; a connection silent for
	// twice this long is dropped. Zero disables the read deadline.
	Heartbeat      time.Duration `mapstructure:"heartbeat_interval"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CatalogEntry is one configured (word, hint) pair. An empty catalog
// falls back to the built-in word list.
type CatalogEntry struct {
	Word string `mapstructure:"word"`
	Hint string `mapstructure:"hint"`
}

func LoadConfig(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("hangman")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.http_address", ":8080")
	v.SetDefault("server.rpc_address", ":9090")
	v.SetDefault("server.metrics_address", ":9100")
	v.SetDefault("server.idle_timeout", 30*time.Minute)
	v.SetDefault("server.sweep_interval", time.Minute)
	v.SetDefault("server.heartbeat_interval", 30*time.Second)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WordCatalog builds the configured catalog, or the built-in one when none is configured.
func (c *Config) WordCatalog() (*words.Catalog, error) {
	if len(c.Catalog) == 0 {
		return words.Default(), nil
	}
	entries := make([]words.Entry, len(c.Catalog))
	for i, e := range c.Catalog {
		entries[i] = words.Entry{Word: e.Word, Hint: e.Hint}
	}
	return words.NewCatalog(entries)
}
