// Package config loads per-environment settings from dotenv files,
// falling back to the process environment when none exists.
package config

import (
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

// LoadEnv loads config/envs/.env.<env>, or the file named by
// REVIEWLENS_ENV_FILE when set. Variables already present in the
// environment win over file values.
func LoadEnv(env string) {
	envFile := os.Getenv("REVIEWLENS_ENV_FILE")
	if envFile == "" {
		envFile = "config/envs/.env." + env
	}
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment",
			slog.String("file", envFile))
	}
}
