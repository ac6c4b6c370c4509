package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment, optionally seeded from a
// .env file. A missing .env file is not an error; system environment
// variables always win.
func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	if len(envFilePath) == 0 {
		envFilePath = []string{".env"}
	}
	for _, path := range envFilePath {
		if err := godotenv.Load(path); err != nil {
			logger.Warn("no env file found", "path", path)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		break
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("app config loaded",
		"env", cfg.Env,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"rate_limit_window", cfg.RateLimit.Window,
	)
	return &cfg, nil
}

// maskValue hides most of a secret-bearing value in logs.
func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
