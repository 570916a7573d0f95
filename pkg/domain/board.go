package domain

import (
	"errors"
	"time"
)

// ErrRunInProgress is returned when a synchronous run is requested while another run is active
var ErrRunInProgress = errors.New("run in progress")

// Board represents a notice board feed
type Board struct {
	ID   string
	URL  string
	Name string // display name, used in notification titles
}

// DisplayName returns board name, falls back to board id
func (b Board) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.ID
}

// NotifyStats counts notification outcomes for a batch of entries
type NotifyStats struct {
	Sent          int
	Failed        int
	TokensCleared int
}

// Add accumulates other stats into s
func (s *NotifyStats) Add(other NotifyStats) {
	s.Sent += other.Sent
	s.Failed += other.Failed
	s.TokensCleared += other.TokensCleared
}

// RunStats summarizes a single crawl run over all boards
type RunStats struct {
	RunID          string        `json:"run_id"`
	StartedAt      time.Time     `json:"started_at"`
	Duration       time.Duration `json:"duration"`
	Boards         int           `json:"boards"`
	FailedBoards   []string      `json:"failed_boards,omitempty"`
	EntriesParsed  int           `json:"entries_parsed"`
	NewEntries     int           `json:"new_entries"`
	Notifications  int           `json:"notifications"`
	FailedNotifies int           `json:"failed_notifies"`
	TokensCleared  int           `json:"tokens_cleared"`
}
