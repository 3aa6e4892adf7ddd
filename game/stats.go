package game

import (
	"sync"
	"time"
)

// Stats accumulates per-run results for the current session. A run is one
// life, from (re)start to the self-collision that ends it. Nothing is
// persisted between sessions.
type Stats struct {
	mutex sync.RWMutex
	runs  []RunRecord
}

// RunRecord holds the outcome of a single run.
type RunRecord struct {
	Score     int
	StartTime time.Time
	EndTime   time.Time
}

// NewStats creates an empty session record.
func NewStats() *Stats {
	return &Stats{runs: make([]RunRecord, 0)}
}

// AddRun records a finished run.
func (s *Stats) AddRun(score int, start, end time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.runs = append(s.runs, RunRecord{
		Score:     score,
		StartTime: start,
		EndTime:   end,
	})
}

// Runs returns the number of finished runs.
func (s *Stats) Runs() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.runs)
}

// HighScore returns the best score over all finished runs.
func (s *Stats) HighScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	high := 0
	for _, run := range s.runs {
		if run.Score > high {
			high = run.Score
		}
	}
	return high
}

// AverageScore returns the mean score over all finished runs.
func (s *Stats) AverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.runs) == 0 {
		return 0
	}
	var total float64
	for _, run := range s.runs {
		total += float64(run.Score)
	}
	return total / float64(len(s.runs))
}

// AverageDuration returns the mean run duration in seconds.
func (s *Stats) AverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.runs) == 0 {
		return 0
	}
	var total float64
	for _, run := range s.runs {
		total += run.EndTime.Sub(run.StartTime).Seconds()
	}
	return total / float64(len(s.runs))
}

// LastScores returns up to n most recent run scores, oldest first.
func (s *Stats) LastScores(n int) []int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	start := 0
	if len(s.runs) > n {
		start = len(s.runs) - n
	}
	scores := make([]int, 0, len(s.runs)-start)
	for _, run := range s.runs[start:] {
		scores = append(scores, run.Score)
	}
	return scores
}
