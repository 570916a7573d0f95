package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/noticrawl/pkg/domain"
	"github.com/umputun/noticrawl/pkg/scheduler/mocks"
)

var boards = []domain.Board{{ID: "academic", URL: "https://example.com/a"}, {ID: "job", URL: "https://example.com/b"}}

func countingRunner() *mocks.RunnerMock {
	var n atomic.Int32
	return &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, b []domain.Board) domain.RunStats {
			n.Add(1)
			return domain.RunStats{RunID: "run", Boards: len(b), NewEntries: int(n.Load())}
		},
	}
}

func TestNewScheduler(t *testing.T) {
	s := NewScheduler(Params{Runner: countingRunner(), Boards: boards, Interval: 5 * time.Minute})
	assert.Equal(t, 5*time.Minute, s.Interval())
	assert.Len(t, s.boards, 2)

	s = NewScheduler(Params{Runner: countingRunner()})
	assert.Equal(t, 10*time.Minute, s.Interval(), "default interval")
	assert.NotNil(t, s.clock)

	_, ok := s.LastRun()
	assert.False(t, ok)
	assert.False(t, s.Running())
}

func TestScheduler_StartStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	runner := countingRunner()
	s := NewScheduler(Params{Runner: runner, Boards: boards, Interval: time.Minute, Clock: clock})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Start(ctx)

	// first run happens immediately
	require.Eventually(t, func() bool { return len(runner.RunCalls()) == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, clock.BlockUntilContext(ctx, 1))

	clock.Advance(time.Minute)
	require.Eventually(t, func() bool { return len(runner.RunCalls()) == 2 }, time.Second, 5*time.Millisecond)

	clock.Advance(time.Minute)
	require.Eventually(t, func() bool { return len(runner.RunCalls()) == 3 }, time.Second, 5*time.Millisecond)

	s.Stop()
	clock.Advance(time.Minute)
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, runner.RunCalls(), 3, "no runs after stop")

	assert.Equal(t, boards, runner.RunCalls()[0].Boards)
	last, ok := s.LastRun()
	require.True(t, ok)
	assert.Equal(t, 3, last.NewEntries)
}

func TestScheduler_Trigger(t *testing.T) {
	clock := clockwork.NewFakeClock()
	runner := countingRunner()
	s := NewScheduler(Params{Runner: runner, Boards: boards, Interval: time.Hour, Clock: clock})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Start(ctx)
	defer s.Stop()

	require.Eventually(t, func() bool { return len(runner.RunCalls()) == 1 }, time.Second, 5*time.Millisecond)

	assert.True(t, s.Trigger())
	require.Eventually(t, func() bool { return len(runner.RunCalls()) == 2 }, time.Second, 5*time.Millisecond)
}

func TestScheduler_Trigger_Pending(t *testing.T) {
	s := NewScheduler(Params{Runner: countingRunner(), Boards: boards})
	// worker not started, the first trigger stays pending
	assert.True(t, s.Trigger())
	assert.False(t, s.Trigger())
}

func TestScheduler_RunNow(t *testing.T) {
	runner := countingRunner()
	s := NewScheduler(Params{Runner: runner, Boards: boards})

	stats, err := s.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Boards)
	assert.Len(t, runner.RunCalls(), 1)

	last, ok := s.LastRun()
	require.True(t, ok)
	assert.Equal(t, stats, last)
}

func TestScheduler_RunNow_NoOverlap(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var active, maxActive atomic.Int32
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context, b []domain.Board) domain.RunStats {
			cur := active.Add(1)
			if cur > maxActive.Load() {
				maxActive.Store(cur)
			}
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
			active.Add(-1)
			return domain.RunStats{}
		},
	}
	s := NewScheduler(Params{Runner: runner, Boards: boards})

	done := make(chan error, 1)
	go func() {
		_, err := s.RunNow(context.Background())
		done <- err
	}()
	<-started
	assert.True(t, s.Running())

	_, err := s.RunNow(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRunInProgress))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, s.Running())
	assert.Equal(t, int32(1), maxActive.Load())
	assert.Len(t, runner.RunCalls(), 1)
}

func TestScheduler_StopCanceledContext(t *testing.T) {
	runner := countingRunner()
	s := NewScheduler(Params{Runner: runner, Boards: boards, Clock: clockwork.NewFakeClock()})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	require.Eventually(t, func() bool { return len(runner.RunCalls()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()
	s.Stop()
	assert.Len(t, runner.RunCalls(), 1)
}
