package opponent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"connectfour/game"
)

func smallNetworkConfig() NetworkConfig {
	// Sized for a 2x3 board: 2 planes x 2 rows x 3 columns.
	return NetworkConfig{
		InputSize:    12,
		HiddenLayers: []int{4},
		Columns:      3,
	}
}

func TestNeural(t *testing.T) {
	t.Run("always picks a legal column", func(t *testing.T) {
		pick, err := Neural(smallNetworkConfig())
		require.NoError(t, err)

		b := game.NewBoard(2, 3, 2)
		_, err = b.Drop(1, game.Yellow)
		require.NoError(t, err)

		column, err := pick(b.Observation(game.Red), b.LegalColumns())
		require.NoError(t, err)
		require.GreaterOrEqual(t, column, 0)
		require.Less(t, column, 3)
	})

	t.Run("respects the legal mask", func(t *testing.T) {
		pick, err := Neural(smallNetworkConfig())
		require.NoError(t, err)

		b := game.NewBoard(2, 3, 2)
		column, err := pick(b.Observation(game.Red), []bool{false, true, false})
		require.NoError(t, err)
		require.Equal(t, 1, column)
	})

	t.Run("fails with no legal column", func(t *testing.T) {
		pick, err := Neural(smallNetworkConfig())
		require.NoError(t, err)

		b := game.NewBoard(2, 3, 2)
		_, err = pick(b.Observation(game.Red), []bool{false, false, false})
		require.Error(t, err)
	})

	t.Run("rejects a mis-sized observation", func(t *testing.T) {
		pick, err := Neural(smallNetworkConfig())
		require.NoError(t, err)

		b := game.NewBoard(6, 7, 4)
		_, err = pick(b.Observation(game.Red), make([]bool, 3))
		require.ErrorContains(t, err, "network expects")
	})

	t.Run("rejects a mis-sized mask", func(t *testing.T) {
		pick, err := Neural(smallNetworkConfig())
		require.NoError(t, err)

		b := game.NewBoard(2, 3, 2)
		_, err = pick(b.Observation(game.Red), make([]bool, 7))
		require.ErrorContains(t, err, "network scores")
	})

	t.Run("rejects broken configs", func(t *testing.T) {
		_, err := Neural(NetworkConfig{InputSize: 0, Columns: 3})
		require.Error(t, err)
		_, err = Neural(NetworkConfig{InputSize: 12, Columns: 0})
		require.Error(t, err)
	})
}

func TestLoadNetworkConfig(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "network.json")
		data := []byte(`{"input_size": 84, "hidden_layers": [32, 16], "columns": 7}`)
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := LoadNetworkConfig(path)
		require.NoError(t, err)
		require.Equal(t, 84, cfg.InputSize)
		require.Equal(t, []int{32, 16}, cfg.HiddenLayers)
		require.Equal(t, 7, cfg.Columns)
		require.Nil(t, cfg.Weights)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadNetworkConfig(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
		_, err := LoadNetworkConfig(path)
		require.ErrorContains(t, err, "parsing network config")
	})
}

func TestNeuralFactory(t *testing.T) {
	factory, err := NeuralFactory(smallNetworkConfig())
	require.NoError(t, err)

	b := game.NewBoard(2, 3, 2)
	for episode := 0; episode < 3; episode++ {
		pick := factory()
		column, err := pick(b.Observation(game.Red), b.LegalColumns())
		require.NoError(t, err)
		require.Contains(t, []int{0, 1, 2}, column)
	}
}
