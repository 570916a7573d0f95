// Package crawler runs the board pipeline: read feed, pick new entries, notify subscribers.
package crawler

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"

	"github.com/umputun/noticrawl/pkg/domain"
)

//go:generate moq -out mocks/feed_reader.go -pkg mocks -skip-ensure -fmt goimports . FeedReader
//go:generate moq -out mocks/deduplicator.go -pkg mocks -skip-ensure -fmt goimports . Deduplicator
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier
//go:generate moq -out mocks/stats_recorder.go -pkg mocks -skip-ensure -fmt goimports . StatsRecorder

// FeedReader returns normalized entries of a board feed
type FeedReader interface {
	Read(ctx context.Context, board domain.Board) ([]domain.Entry, error)
}

// Deduplicator filters and persists entries not seen before
type Deduplicator interface {
	FilterNew(ctx context.Context, boardID string, entries []domain.Entry) []domain.NewEntry
}

// Notifier delivers new entries to board subscribers
type Notifier interface {
	Notify(ctx context.Context, board domain.Board, entries []domain.NewEntry) domain.NotifyStats
}

// StatsRecorder receives stats of each completed run
type StatsRecorder interface {
	RecordRun(stats domain.RunStats)
}

// Crawler processes boards one by one. A failure or panic on one board
// is logged and doesn't stop the remaining boards.
type Crawler struct {
	reader   FeedReader
	dedup    Deduplicator
	notifier Notifier
	recorder StatsRecorder
	clock    clockwork.Clock
}

// Config holds crawler dependencies, Recorder and Clock are optional
type Config struct {
	Reader       FeedReader
	Deduplicator Deduplicator
	Notifier     Notifier
	Recorder     StatsRecorder
	Clock        clockwork.Clock
}

// boardResult is the outcome of a single board crawl
type boardResult struct {
	parsed int
	added  int
	notify domain.NotifyStats
}

// New makes a crawler
func New(cfg Config) *Crawler {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &Crawler{
		reader:   cfg.Reader,
		dedup:    cfg.Deduplicator,
		notifier: cfg.Notifier,
		recorder: cfg.Recorder,
		clock:    cfg.Clock,
	}
}

// Run crawls all boards sequentially, in the given order, and returns run stats.
// Canceled context stops the run before the next board.
func (c *Crawler) Run(ctx context.Context, boards []domain.Board) domain.RunStats {
	stats := domain.RunStats{RunID: uuid.NewString(), StartedAt: c.clock.Now()}
	ids := lo.Map(boards, func(b domain.Board, _ int) string { return b.ID })
	lgr.Printf("[INFO] run %s started, boards: %s", stats.RunID, strings.Join(ids, ", "))

	for _, board := range boards {
		if err := ctx.Err(); err != nil {
			lgr.Printf("[WARN] run %s interrupted before board %s: %v", stats.RunID, board.ID, err)
			break
		}

		stats.Boards++
		res, err := c.crawlBoard(ctx, board)
		stats.EntriesParsed += res.parsed
		stats.NewEntries += res.added
		stats.Notifications += res.notify.Sent
		stats.FailedNotifies += res.notify.Failed
		stats.TokensCleared += res.notify.TokensCleared
		if err != nil {
			lgr.Printf("[ERROR] run %s, board %s failed: %v", stats.RunID, board.ID, err)
			stats.FailedBoards = append(stats.FailedBoards, board.ID)
			continue
		}
		lgr.Printf("[DEBUG] run %s, board %s: %d entries, %d new, %d sent", stats.RunID, board.ID,
			res.parsed, res.added, res.notify.Sent)
	}

	stats.Duration = c.clock.Since(stats.StartedAt)
	lgr.Printf("[INFO] run %s completed in %v, boards %d (failed %d), entries %d, new %d, sent %d, failed %d, tokens cleared %d",
		stats.RunID, stats.Duration, stats.Boards, len(stats.FailedBoards), stats.EntriesParsed, stats.NewEntries,
		stats.Notifications, stats.FailedNotifies, stats.TokensCleared)

	if c.recorder != nil {
		c.recorder.RecordRun(stats)
	}
	return stats
}

// crawlBoard runs the pipeline for a single board, panics are turned into errors
func (c *Crawler) crawlBoard(ctx context.Context, board domain.Board) (res boardResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			lgr.Printf("[DEBUG] board %s panic stack: %s", board.ID, debug.Stack())
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	entries, err := c.reader.Read(ctx, board)
	if err != nil {
		return res, fmt.Errorf("read feed: %w", err)
	}
	res.parsed = len(entries)

	added := c.dedup.FilterNew(ctx, board.ID, entries)
	res.added = len(added)
	if len(added) == 0 {
		return res, nil
	}

	lgr.Printf("[INFO] board %s: %d new articles", board.ID, len(added))
	res.notify = c.notifier.Notify(ctx, board, added)
	return res, nil
}
