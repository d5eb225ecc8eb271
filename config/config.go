package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	MongoURI        string
	MongoDatabase   string
	LogLevel        slog.Level
	RequestTimeout  time.Duration
	AdapterTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from flags and environment variables, with
// environment taking precedence over defaults and flags over environment.
func Load() Config {
	v := viper.New()
	v.SetDefault("port", "5001")
	v.SetDefault("mongodb_uri", "")
	v.SetDefault("mongodb_database", "ecomcart")
	v.SetDefault("log_level", "info")
	v.AutomaticEnv()

	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	flags.String("port", v.GetString("port"), "HTTP listen port")
	flags.String("mongodb-uri", v.GetString("mongodb_uri"), "MongoDB connection string (empty disables persistence)")
	flags.String("mongodb-database", v.GetString("mongodb_database"), "MongoDB database name")
	flags.String("log-level", v.GetString("log_level"), "log level: debug, info, warn, error")
	_ = flags.Parse(os.Args[1:])

	bind(v, flags, "port", "port")
	bind(v, flags, "mongodb_uri", "mongodb-uri")
	bind(v, flags, "mongodb_database", "mongodb-database")
	bind(v, flags, "log_level", "log-level")

	return Config{
		Port:            v.GetString("port"),
		MongoURI:        v.GetString("mongodb_uri"),
		MongoDatabase:   v.GetString("mongodb_database"),
		LogLevel:        parseLevel(v.GetString("log_level")),
		RequestTimeout:  30 * time.Second,
		AdapterTimeout:  3 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// AdapterEnabled reports whether a MongoDB connection should be attempted.
// A missing or non-mongodb value disables the adapter entirely.
func (c Config) AdapterEnabled() bool {
	return strings.Contains(c.MongoURI, "mongodb")
}

func bind(v *viper.Viper, flags *pflag.FlagSet, key, flag string) {
	if f := flags.Lookup(flag); f != nil && f.Changed {
		_ = v.BindPFlag(key, f)
	}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
