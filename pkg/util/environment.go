package util

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// LoadDotEnv pulls a .env file from the working directory into the process environment
// without overriding variables that are already set
func LoadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}
}

func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		pair := strings.SplitN(variable, "=", 2)

		environmentVariables[pair[0]] = pair[1]
	}

	return environmentVariables
}

// GetEnvironmentDuration parses a Go duration variable, falling back to the default when unset or invalid
func GetEnvironmentDuration(name string, fallback time.Duration) time.Duration {
	value := GetEnvironmentVariables()[name]
	if value == "" {
		return fallback
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		log.Warn().Str("variable", name).Str("value", value).Msg("Invalid duration, using default")
		return fallback
	}

	return duration
}
