package crawler

import (
	"context"
	"errors"

	"github.com/go-pkgz/lgr"
	"github.com/jonboulle/clockwork"

	"github.com/umputun/noticrawl/pkg/domain"
	"github.com/umputun/noticrawl/pkg/feed"
)

//go:generate moq -out mocks/article_store.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor

// ArticleStore keeps articles seen on boards
type ArticleStore interface {
	Exists(ctx context.Context, boardID, articleID string) (bool, error)
	Create(ctx context.Context, article *domain.Article) error
}

// Extractor fetches article text from the article page
type Extractor interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Deduper picks entries not seen before and persists them.
// Entries are expected newest first, so by default the scan stops on the first seen entry.
type Deduper struct {
	store     ArticleStore
	extractor Extractor
	clock     clockwork.Clock
	fullScan  bool
}

// DeduperConfig holds deduper dependencies, Extractor is optional
type DeduperConfig struct {
	Store     ArticleStore
	Extractor Extractor
	Clock     clockwork.Clock
	FullScan  bool // skip seen entries instead of stopping on the first one
}

// NewDeduper makes a deduper, real clock is used if none provided
func NewDeduper(cfg DeduperConfig) *Deduper {
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	return &Deduper{store: cfg.Store, extractor: cfg.Extractor, clock: cfg.Clock, fullScan: cfg.FullScan}
}

// FilterNew returns entries not stored before, in feed order. Each returned entry is already persisted.
// Failures are per entry: an entry without article id or failed to check/store is logged and left out.
func (d *Deduper) FilterNew(ctx context.Context, boardID string, entries []domain.Entry) []domain.NewEntry {
	res := []domain.NewEntry{}
	seen := false
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			lgr.Printf("[WARN] board %s: dedup interrupted at entry %d of %d: %v", boardID, i, len(entries), err)
			break
		}

		articleID, ok := feed.ArticleID(entry.Link)
		if !ok {
			lgr.Printf("[WARN] board %s: no article id in link %q, entry %q skipped", boardID, entry.Link, entry.Title)
			continue
		}

		exists, err := d.store.Exists(ctx, boardID, articleID)
		if err != nil {
			lgr.Printf("[WARN] board %s: failed to check article %s: %v", boardID, articleID, err)
			continue
		}

		if exists {
			if !d.fullScan {
				lgr.Printf("[DEBUG] board %s: article %s seen before, stop at entry %d of %d", boardID, articleID, i+1, len(entries))
				break
			}
			seen = true
			continue
		}

		if seen {
			lgr.Printf("[WARN] board %s: new article %s after seen one, feed is not ordered newest first", boardID, articleID)
		}

		entry = d.enrich(ctx, entry)
		if err := d.store.Create(ctx, domain.NewArticle(entry, articleID, d.clock.Now())); err != nil {
			if errors.Is(err, domain.ErrArticleExists) {
				lgr.Printf("[WARN] board %s: article %s stored concurrently, skipped", boardID, articleID)
				continue
			}
			lgr.Printf("[WARN] board %s: failed to store article %s: %v", boardID, articleID, err)
			continue
		}

		lgr.Printf("[DEBUG] board %s: new article %s %q", boardID, articleID, entry.Title)
		res = append(res, domain.NewEntry{Entry: entry, ArticleID: articleID})
	}
	return res
}

// enrich fills empty description with the extracted article text
func (d *Deduper) enrich(ctx context.Context, entry domain.Entry) domain.Entry {
	if d.extractor == nil || entry.Description != "" || entry.Link == "" {
		return entry
	}
	text, err := d.extractor.Extract(ctx, entry.Link)
	if err != nil {
		lgr.Printf("[WARN] failed to extract content from %s: %v", entry.Link, err)
		return entry
	}
	entry.Description = feed.CleanText(text)
	return entry
}
