package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ROWS", "COLUMNS", "WIN_LENGTH", "SEED", "OPPONENT", "EPISODES"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, 6, cfg.Rows)
	require.Equal(t, 7, cfg.Columns)
	require.Equal(t, 4, cfg.WinLength)
	require.Equal(t, uint64(0), cfg.Seed)
	require.Equal(t, "random", cfg.Opponent)
	require.Equal(t, "human", cfg.RenderMode)
	require.Equal(t, 100, cfg.Episodes)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ROWS", "8")
	t.Setenv("COLUMNS", "9")
	t.Setenv("WIN_LENGTH", "5")
	t.Setenv("SEED", "12345")
	t.Setenv("OPPONENT", "neural")
	t.Setenv("SCRIPT", "3,3,0")
	t.Setenv("EPISODES", "10")
	t.Setenv("NETWORK_CONFIG", "weights.json")

	cfg := Load()
	require.Equal(t, 8, cfg.Rows)
	require.Equal(t, 9, cfg.Columns)
	require.Equal(t, 5, cfg.WinLength)
	require.Equal(t, uint64(12345), cfg.Seed)
	require.Equal(t, "neural", cfg.Opponent)
	require.Equal(t, "3,3,0", cfg.Script)
	require.Equal(t, 10, cfg.Episodes)
	require.Equal(t, "weights.json", cfg.NetworkConfig)
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("parses valid integers", func(t *testing.T) {
		t.Setenv("SOME_INT", "42")
		require.Equal(t, 42, GetEnvAsInt("SOME_INT", 7))
	})

	t.Run("falls back on junk", func(t *testing.T) {
		t.Setenv("SOME_INT", "not-a-number")
		require.Equal(t, 7, GetEnvAsInt("SOME_INT", 7))
	})

	t.Run("falls back when unset", func(t *testing.T) {
		t.Setenv("SOME_INT", "")
		require.Equal(t, 7, GetEnvAsInt("SOME_INT", 7))
	})
}

func TestGetEnvAsUint(t *testing.T) {
	t.Run("parses valid values", func(t *testing.T) {
		t.Setenv("SOME_SEED", "18446744073709551615")
		require.Equal(t, uint64(18446744073709551615), GetEnvAsUint("SOME_SEED", 1))
	})

	t.Run("rejects negatives", func(t *testing.T) {
		t.Setenv("SOME_SEED", "-5")
		require.Equal(t, uint64(1), GetEnvAsUint("SOME_SEED", 1))
	})
}
