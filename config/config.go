// Package config reads runtime settings from environment variables,
// with an optional .env file for local runs.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config collects the settings shared by the play and selfplay modes.
type Config struct {
	Rows          int
	Columns       int
	WinLength     int
	Seed          uint64
	Opponent      string
	Script        string
	RenderMode    string
	Episodes      int
	NetworkConfig string
	RemoteURL     string
	OutDir        string
}

// Load reads the configuration, letting a local .env file fill in
// variables that are not already set. Everything missing falls back to
// the classic 6x7 game against a random opponent.
func Load() *Config {
	// A missing .env is fine; variables may come from the real
	// environment.
	_ = godotenv.Load()

	return &Config{
		Rows:          GetEnvAsInt("ROWS", 6),
		Columns:       GetEnvAsInt("COLUMNS", 7),
		WinLength:     GetEnvAsInt("WIN_LENGTH", 4),
		Seed:          GetEnvAsUint("SEED", 0),
		Opponent:      GetEnv("OPPONENT", "random"),
		Script:        GetEnv("SCRIPT", ""),
		RenderMode:    GetEnv("RENDER_MODE", "human"),
		Episodes:      GetEnvAsInt("EPISODES", 100),
		NetworkConfig: GetEnv("NETWORK_CONFIG", ""),
		RemoteURL:     GetEnv("REMOTE_URL", ""),
		OutDir:        GetEnv("OUT_DIR", "runs"),
	}
}

// GetEnv returns the variable's value, or defaultValue when unset.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsInt returns the variable parsed as an int, or defaultValue
// when unset or malformed.
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer for %s: %q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsUint returns the variable parsed as a uint64, or
// defaultValue when unset or malformed.
func GetEnvAsUint(key string, defaultValue uint64) uint64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid unsigned integer for %s: %q, using default %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
