// Package scheduler runs board crawls periodically and on demand, never two at once.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/jonboulle/clockwork"

	"github.com/umputun/noticrawl/pkg/domain"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner crawls boards
type Runner interface {
	Run(ctx context.Context, boards []domain.Board) domain.RunStats
}

// Scheduler manages periodic crawl runs
type Scheduler struct {
	runner   Runner
	boards   []domain.Board
	interval time.Duration
	clock    clockwork.Clock

	runMu   sync.Mutex // serializes runs
	mu      sync.RWMutex
	last    *domain.RunStats
	running bool

	trigger chan struct{}
	wg      sync.WaitGroup
	cancel  context.CancelFunc
}

// Params defines scheduler dependencies and settings
type Params struct {
	Runner   Runner
	Boards   []domain.Board
	Interval time.Duration
	Clock    clockwork.Clock
}

// NewScheduler creates a new scheduler, interval defaults to 10 minutes
func NewScheduler(params Params) *Scheduler {
	if params.Interval <= 0 {
		params.Interval = 10 * time.Minute
	}
	if params.Clock == nil {
		params.Clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		runner:   params.Runner,
		boards:   params.Boards,
		interval: params.Interval,
		clock:    params.Clock,
		trigger:  make(chan struct{}, 1),
	}
}

// Start runs the first crawl immediately and then every interval, until Stop or ctx is done
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go s.worker(ctx)
	lgr.Printf("[INFO] scheduler started with interval %v, %d boards", s.interval, len(s.boards))
}

// Stop gracefully stops the scheduler, waits for the active run to complete
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Trigger asks the worker for an extra run. Returns false if a triggered run is already pending
func (s *Scheduler) Trigger() bool {
	select {
	case s.trigger <- struct{}{}:
		lgr.Printf("[INFO] crawl run triggered")
		return true
	default:
		return false
	}
}

// RunNow crawls all boards synchronously. Doesn't wait for an active run, returns domain.ErrRunInProgress instead
func (s *Scheduler) RunNow(ctx context.Context) (domain.RunStats, error) {
	if !s.runMu.TryLock() {
		return domain.RunStats{}, domain.ErrRunInProgress
	}
	defer s.runMu.Unlock()
	return s.run(ctx), nil
}

// LastRun returns stats of the last completed run
func (s *Scheduler) LastRun() (domain.RunStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return domain.RunStats{}, false
	}
	return *s.last, true
}

// Running reports whether a run is active
func (s *Scheduler) Running() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Interval returns period between scheduled runs
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

func (s *Scheduler) worker(ctx context.Context) {
	defer s.wg.Done()

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	// run immediately on start
	s.serialRun(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			s.serialRun(ctx)
		case <-s.trigger:
			s.serialRun(ctx)
		}
	}
}

// serialRun waits for the active run, if any, and runs again
func (s *Scheduler) serialRun(ctx context.Context) {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	if ctx.Err() != nil {
		return
	}
	s.run(ctx)
}

// run must be called with runMu held
func (s *Scheduler) run(ctx context.Context) domain.RunStats {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()

	stats := s.runner.Run(ctx, s.boards)

	s.mu.Lock()
	s.running = false
	s.last = &stats
	s.mu.Unlock()
	return stats
}
