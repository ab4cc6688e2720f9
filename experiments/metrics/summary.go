package metrics

import (
	"gonum.org/v1/gonum/stat"

	"connectfour/game"
)

// Summary aggregates the records of one run into headline numbers.
type Summary struct {
	Episodes     int
	AgentWins    int
	OpponentWins int
	Draws        int
	WinRate      float64
	MeanReward   float64
	MeanSteps    float64
	StdDevSteps  float64
}

// Summarize reduces a run's episode records. Win rate counts agent
// wins over all episodes, draws included.
func Summarize(records []EpisodeRecord) Summary {
	s := Summary{Episodes: len(records)}
	if len(records) == 0 {
		return s
	}

	rewards := make([]float64, len(records))
	steps := make([]float64, len(records))
	for i, record := range records {
		rewards[i] = record.Reward
		steps[i] = float64(record.Steps)
		switch record.Outcome {
		case game.YellowWins:
			s.AgentWins++
		case game.RedWins:
			s.OpponentWins++
		case game.Draw:
			s.Draws++
		}
	}

	s.WinRate = float64(s.AgentWins) / float64(s.Episodes)
	s.MeanReward = stat.Mean(rewards, nil)
	s.MeanSteps = stat.Mean(steps, nil)
	// Sample standard deviation needs at least two episodes.
	if len(steps) > 1 {
		s.StdDevSteps = stat.StdDev(steps, nil)
	}
	return s
}
