package feed

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/noticrawl/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// Fetcher retrieves raw feed payloads
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Reader fetches and parses board feeds
type Reader struct {
	fetcher Fetcher
}

// NewReader makes a reader on top of the fetcher
func NewReader(fetcher Fetcher) *Reader {
	return &Reader{fetcher: fetcher}
}

// Read returns normalized entries of the board feed, in feed order.
// Fetch and parse failures are returned with an empty slice, logging is up to the caller
func (r *Reader) Read(ctx context.Context, board domain.Board) ([]domain.Entry, error) {
	lgr.Printf("[DEBUG] reading board %s from %s", board.ID, board.URL)

	payload, err := r.fetcher.Fetch(ctx, board.URL)
	if err != nil {
		return []domain.Entry{}, fmt.Errorf("fetch board %s: %w", board.ID, err)
	}

	entries, err := Parse(board.ID, payload)
	if err != nil {
		return entries, fmt.Errorf("parse board %s: %w", board.ID, err)
	}

	if len(entries) == 0 {
		lgr.Printf("[DEBUG] no items in board %s", board.ID)
	}
	return entries, nil
}
