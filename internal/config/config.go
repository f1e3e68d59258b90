package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App     AppConfig
	GraphQL GraphQLConfig
	Cache   CacheConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	SeedData    bool
}

type GraphQLConfig struct {
	Path       string
	Playground bool
}

type CacheConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

var errInvalidEnv = errors.New("invalid environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var invalid []string
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optBool := func(key string, def bool) bool {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optSeconds := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return time.Duration(v) * time.Second
	}

	cfg.App = AppConfig{
		AppName:     opt("APP_NAME", "freelance-directory"),
		Environment: opt("APP_ENV", "development"),
		HTTPPort:    opt("HTTP_PORT", opt("PORT", "4000")),
		SeedData:    optBool("SEED_DATA", true),
	}

	cfg.GraphQL = GraphQLConfig{
		Path:       opt("GRAPHQL_PATH", "/graphql"),
		Playground: optBool("GRAPHQL_PLAYGROUND", true),
	}
	if !strings.HasPrefix(cfg.GraphQL.Path, "/") {
		invalid = append(invalid, "GRAPHQL_PATH")
	}

	cfg.Cache = CacheConfig{
		Enabled:  optBool("CACHE_ENABLED", false),
		Host:     opt("REDIS_HOST", "localhost"),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
		TTL:      optSeconds("REDIS_TTL", 600*time.Second),
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
