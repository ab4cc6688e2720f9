package opponent

import (
	"encoding/json"
	"os"

	deep "github.com/patrikeh/go-deep"
	"github.com/pkg/errors"

	"connectfour/env"
	"connectfour/game"
)

// NetworkConfig describes a column-scoring network: the observation
// vector length it consumes, its hidden layer sizes, the column count
// it scores, and optionally the trained weights to load. Without
// weights the network plays with its random initialization, which is
// handy as a baseline.
type NetworkConfig struct {
	InputSize    int           `json:"input_size"`
	HiddenLayers []int         `json:"hidden_layers"`
	Columns      int           `json:"columns"`
	Weights      [][][]float64 `json:"weights,omitempty"`
}

// LoadNetworkConfig reads a JSON network description, typically the
// artifact of an external training run.
func LoadNetworkConfig(path string) (NetworkConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NetworkConfig{}, errors.Wrapf(err, "reading network config %s", path)
	}
	var cfg NetworkConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return NetworkConfig{}, errors.Wrapf(err, "parsing network config %s", path)
	}
	return cfg, nil
}

// Neural builds a learned-policy opponent: each query runs one forward
// pass scoring every column and the best-scoring legal column is
// played. No search, no lookahead.
func Neural(cfg NetworkConfig) (env.Opponent, error) {
	if cfg.InputSize < 1 {
		return nil, errors.Errorf("input size must be positive, got %d", cfg.InputSize)
	}
	if cfg.Columns < 1 {
		return nil, errors.Errorf("column count must be positive, got %d", cfg.Columns)
	}

	layout := append(append([]int{}, cfg.HiddenLayers...), cfg.Columns)
	network := deep.NewNeural(&deep.Config{
		Inputs:     cfg.InputSize,
		Layout:     layout,
		Activation: deep.ActivationReLU,
		Mode:       deep.ModeRegression,
		Weight:     deep.NewNormal(0.0, 0.1),
		Bias:       true,
	})
	if cfg.Weights != nil {
		network.ApplyWeights(cfg.Weights)
	}

	return func(obs game.Observation, legal []bool) (int, error) {
		input := obs.Vector()
		if len(input) != cfg.InputSize {
			return 0, errors.Errorf("observation has %d values, network expects %d", len(input), cfg.InputSize)
		}
		if len(legal) != cfg.Columns {
			return 0, errors.Errorf("board has %d columns, network scores %d", len(legal), cfg.Columns)
		}

		scores := network.Predict(input)
		best, found := 0, false
		for column, ok := range legal {
			if !ok {
				continue
			}
			if !found || scores[column] > scores[best] {
				best, found = column, true
			}
		}
		if !found {
			return 0, errors.New("no legal column to score")
		}
		return best, nil
	}, nil
}

// NeuralFactory builds the network once and replays it every episode;
// the policy itself is stateless between moves.
func NeuralFactory(cfg NetworkConfig) (env.OpponentFactory, error) {
	pick, err := Neural(cfg)
	if err != nil {
		return nil, err
	}
	return func() env.Opponent {
		return pick
	}, nil
}
