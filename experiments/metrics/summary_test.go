package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"connectfour/game"
)

func record(outcome game.Outcome, reward float64, steps int) EpisodeRecord {
	return EpisodeRecord{
		EpisodeMetric: EpisodeMetric{
			Outcome: outcome,
			Reward:  reward,
			Steps:   steps,
		},
	}
}

func TestSummarize(t *testing.T) {
	records := []EpisodeRecord{
		record(game.YellowWins, 1, 10),
		record(game.YellowWins, 1, 6),
		record(game.RedWins, -1, 9),
		record(game.Draw, 0, 21),
	}

	s := Summarize(records)

	require.Equal(t, 4, s.Episodes)
	require.Equal(t, 2, s.AgentWins)
	require.Equal(t, 1, s.OpponentWins)
	require.Equal(t, 1, s.Draws)
	require.InDelta(t, 0.5, s.WinRate, 1e-9)
	require.InDelta(t, 0.25, s.MeanReward, 1e-9)
	require.InDelta(t, 11.5, s.MeanSteps, 1e-9)
	require.Greater(t, s.StdDevSteps, 0.0)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	require.Equal(t, 0, s.Episodes)
	require.Equal(t, 0.0, s.WinRate)
	require.Equal(t, 0.0, s.MeanReward)
}

func TestSummarizeSingleEpisode(t *testing.T) {
	s := Summarize([]EpisodeRecord{record(game.RedWins, -1, 7)})
	require.Equal(t, 1, s.Episodes)
	require.Equal(t, 0.0, s.WinRate)
	require.InDelta(t, -1.0, s.MeanReward, 1e-9)
	require.InDelta(t, 7.0, s.MeanSteps, 1e-9)
	// One sample has no spread.
	require.Equal(t, 0.0, s.StdDevSteps)
}
