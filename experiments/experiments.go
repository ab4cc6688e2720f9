// Package experiments plays batches of episodes against the bundled
// opponents and records how a uniform-random agent fares, which is the
// baseline any learned policy has to beat.
package experiments

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"connectfour/env"
	"connectfour/experiments/metrics"
	"connectfour/opponent"
)

// Config sizes one selfplay run.
type Config struct {
	Name      string
	Episodes  int
	Rows      int
	Columns   int
	WinLength int
	Seed      uint64
	Opponent  string // Label for the records
	Factory   env.OpponentFactory
	OutDir    string // Empty disables CSV output
}

// Run plays cfg.Episodes games of a uniform-random agent against the
// configured opponent, one after another, and returns every episode
// record plus the run summary. With OutDir set the records also land
// in a timestamped directory as CSV.
func Run(cfg Config) ([]metrics.EpisodeRecord, metrics.Summary, error) {
	if cfg.Episodes < 1 {
		return nil, metrics.Summary{}, errors.Errorf("episodes must be at least 1, got %d", cfg.Episodes)
	}

	e, err := env.New(cfg.Factory,
		env.WithRows(cfg.Rows),
		env.WithColumns(cfg.Columns),
		env.WithWinLength(cfg.WinLength),
		env.WithRand(rand.New(rand.NewSource(cfg.Seed))),
	)
	if err != nil {
		return nil, metrics.Summary{}, errors.Wrap(err, "building environment")
	}
	agent := opponent.Random(rand.New(rand.NewSource(cfg.Seed + 1)))

	log.Info().Msgf("starting %s run: %d episodes on %dx%d (win %d) against %s...",
		cfg.Name, cfg.Episodes, cfg.Rows, cfg.Columns, cfg.WinLength, cfg.Opponent)

	records := []metrics.EpisodeRecord{}
	for i := 0; i < cfg.Episodes; i++ {
		metric, err := playEpisode(e, agent)
		if err != nil {
			return nil, metrics.Summary{}, errors.Wrapf(err, "episode %d", i+1)
		}
		records = append(records, metrics.EpisodeRecord{
			ID:            i + 1,
			Opponent:      cfg.Opponent,
			EpisodeMetric: metric,
		})

		log.Debug().Msgf("completed episode %d of %d: %s in %d steps",
			i+1, cfg.Episodes, metric.Outcome, metric.Steps)
	}

	summary := metrics.Summarize(records)
	log.Info().Msgf("completed %s run: win rate %.2f, mean reward %.2f, mean steps %.1f",
		cfg.Name, summary.WinRate, summary.MeanReward, summary.MeanSteps)

	if cfg.OutDir != "" {
		if err := writeRecords(cfg, records, summary); err != nil {
			return nil, metrics.Summary{}, err
		}
	}
	return records, summary, nil
}

// playEpisode drives one full episode with the given agent policy.
func playEpisode(e *env.Env, agent env.Opponent) (metrics.EpisodeMetric, error) {
	collector := metrics.NewCollector()

	obs, err := e.Reset()
	if err != nil {
		return metrics.EpisodeMetric{}, errors.Wrap(err, "resetting episode")
	}
	collector.Start(e.Board().Moves() > 0)

	for e.State() == env.InProgress {
		column, err := agent(obs, e.ActionMask())
		if err != nil {
			return metrics.EpisodeMetric{}, errors.Wrap(err, "querying agent")
		}
		result, err := e.Step(column)
		if err != nil {
			return metrics.EpisodeMetric{}, errors.Wrap(err, "stepping episode")
		}
		collector.AddStep(result.Reward)
		obs = result.Observation
	}

	return collector.Complete(e.Outcome()), nil
}

func writeRecords(cfg Config, records []metrics.EpisodeRecord, summary metrics.Summary) error {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Name)
	if err != nil {
		return errors.Wrap(err, "creating metrics writer")
	}
	if err := writer.WriteEpisodeRecords(records); err != nil {
		return errors.Wrap(err, "writing episode records")
	}
	if err := writer.WriteSummary(summary); err != nil {
		return errors.Wrap(err, "writing summary")
	}
	log.Info().Msgf("stored %d episode records under %s", len(records), writer.BaseDir())
	return nil
}
