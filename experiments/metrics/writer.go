package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// EpisodeRecord is one row of a run's results: which run-level
// opponent was configured plus the episode's own measurements.
type EpisodeRecord struct {
	ID       int
	Opponent string
	EpisodeMetric
}

type Writer struct {
	baseDir string
}

func NewWriter(outDir, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outDir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// BaseDir returns the directory this run's files land in.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

func (w *Writer) WriteEpisodeRecords(records []EpisodeRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "episode_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create episode records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "opponent", "opponent_first", "steps", "reward", "outcome", "start_time", "end_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write episode records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Opponent,
			strconv.FormatBool(record.OpponentFirst),
			strconv.Itoa(record.Steps),
			strconv.FormatFloat(record.Reward, 'f', -1, 64),
			record.Outcome.String(),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write episode record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteSummary(summary Summary) error {
	// Create a file
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"episodes", "agent_wins", "opponent_wins", "draws", "win_rate", "mean_reward", "mean_steps", "stddev_steps"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	row := []string{
		strconv.Itoa(summary.Episodes),
		strconv.Itoa(summary.AgentWins),
		strconv.Itoa(summary.OpponentWins),
		strconv.Itoa(summary.Draws),
		strconv.FormatFloat(summary.WinRate, 'f', 4, 64),
		strconv.FormatFloat(summary.MeanReward, 'f', 4, 64),
		strconv.FormatFloat(summary.MeanSteps, 'f', 2, 64),
		strconv.FormatFloat(summary.StdDevSteps, 'f', 2, 64),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write summary row: %w", err)
	}

	return nil
}
