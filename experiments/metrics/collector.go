package metrics

import (
	"time"

	"connectfour/game"
)

// EpisodeMetric captures the measurements of one episode.
type EpisodeMetric struct {
	OpponentFirst bool
	Steps         int
	Reward        float64 // Final reward, agent perspective
	Outcome       game.Outcome
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}

// Collector accumulates one episode's metric between Start and
// Complete. Reuse across episodes is fine; Start wipes the slate.
type Collector struct {
	metric EpisodeMetric
}

func NewCollector() *Collector {
	return &Collector{}
}

// Start stamps the episode's beginning and records who opened it.
func (c *Collector) Start(opponentFirst bool) {
	c.metric = EpisodeMetric{
		OpponentFirst: opponentFirst,
		StartTime:     time.Now(),
	}
}

// AddStep counts one full agent-opponent exchange; the last reward
// recorded before Complete is the episode's final reward.
func (c *Collector) AddStep(reward float64) {
	c.metric.Steps++
	c.metric.Reward = reward
}

// Complete stamps the episode's end and returns the finished metric.
func (c *Collector) Complete(outcome game.Outcome) EpisodeMetric {
	c.metric.Outcome = outcome
	c.metric.EndTime = time.Now()
	c.metric.Duration = c.metric.EndTime.Sub(c.metric.StartTime)
	return c.metric
}
