package crawler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/noticrawl/pkg/crawler/mocks"
	"github.com/umputun/noticrawl/pkg/domain"
)

// memStore makes article store mock backed by a map
func memStore(seed ...string) (*mocks.ArticleStoreMock, map[string]*domain.Article) {
	var mu sync.Mutex
	data := map[string]*domain.Article{}
	for _, k := range seed {
		data[k] = &domain.Article{}
	}
	return &mocks.ArticleStoreMock{
		ExistsFunc: func(ctx context.Context, boardID, articleID string) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			_, ok := data[boardID+"/"+articleID]
			return ok, nil
		},
		CreateFunc: func(ctx context.Context, article *domain.Article) error {
			mu.Lock()
			defer mu.Unlock()
			key := article.BoardID + "/" + article.ArticleID
			if _, ok := data[key]; ok {
				return domain.ErrArticleExists
			}
			data[key] = article
			return nil
		},
	}, data
}

func entry(boardID, id string) domain.Entry {
	return domain.Entry{
		BoardID:     boardID,
		Title:       "notice " + id,
		Link:        fmt.Sprintf("https://www.gachon.ac.kr/bbs/kor/%s/artclView.do", id),
		Author:      domain.DefaultAuthor,
		Description: "description " + id,
	}
}

func TestDeduper_FilterNew(t *testing.T) {
	store, data := memStore()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 12, 16, 0, 0, 0, time.UTC))
	d := NewDeduper(DeduperConfig{Store: store, Clock: clock})

	entries := []domain.Entry{entry("b1", "103"), entry("b1", "102"), entry("b1", "101")}
	res := d.FilterNew(context.Background(), "b1", entries)

	require.Len(t, res, 3)
	assert.Equal(t, "103", res[0].ArticleID)
	assert.Equal(t, "102", res[1].ArticleID)
	assert.Equal(t, "101", res[2].ArticleID)
	assert.Equal(t, "notice 103", res[0].Title)

	require.Len(t, data, 3)
	stored := data["b1/103"]
	assert.Equal(t, "b1", stored.BoardID)
	assert.Equal(t, "notice 103", stored.Title)
	assert.Equal(t, clock.Now(), stored.CreatedAt)
}

func TestDeduper_FilterNew_Idempotent(t *testing.T) {
	store, data := memStore()
	d := NewDeduper(DeduperConfig{Store: store, Clock: clockwork.NewFakeClock()})
	entries := []domain.Entry{entry("b1", "3"), entry("b1", "2"), entry("b1", "1")}

	first := d.FilterNew(context.Background(), "b1", entries)
	assert.Len(t, first, 3)

	second := d.FilterNew(context.Background(), "b1", entries)
	assert.NotNil(t, second)
	assert.Empty(t, second)
	assert.Len(t, data, 3)
	assert.Len(t, store.CreateCalls(), 3, "no creates on second pass")
}

func TestDeduper_FilterNew_EarlyStop(t *testing.T) {
	store, _ := memStore("b1/2")
	d := NewDeduper(DeduperConfig{Store: store, Clock: clockwork.NewFakeClock()})

	entries := []domain.Entry{entry("b1", "4"), entry("b1", "3"), entry("b1", "2"), entry("b1", "1")}
	res := d.FilterNew(context.Background(), "b1", entries)

	require.Len(t, res, 2)
	assert.Equal(t, "4", res[0].ArticleID)
	assert.Equal(t, "3", res[1].ArticleID)

	// entries after the first seen one are never queried
	require.Len(t, store.ExistsCalls(), 3)
	assert.Equal(t, "2", store.ExistsCalls()[2].ArticleID)
	assert.Len(t, store.CreateCalls(), 2)
}

func TestDeduper_FilterNew_FullScan(t *testing.T) {
	store, data := memStore("b1/3")
	d := NewDeduper(DeduperConfig{Store: store, Clock: clockwork.NewFakeClock(), FullScan: true})

	entries := []domain.Entry{entry("b1", "4"), entry("b1", "3"), entry("b1", "2")}
	res := d.FilterNew(context.Background(), "b1", entries)

	require.Len(t, res, 2)
	assert.Equal(t, "4", res[0].ArticleID)
	assert.Equal(t, "2", res[1].ArticleID)
	assert.Len(t, store.ExistsCalls(), 3)
	assert.Len(t, data, 3)
}

func TestDeduper_FilterNew_NoArticleID(t *testing.T) {
	store, _ := memStore()
	d := NewDeduper(DeduperConfig{Store: store, Clock: clockwork.NewFakeClock()})

	bad := domain.Entry{BoardID: "b1", Title: "no id", Link: "https://www.gachon.ac.kr/kor/index.do"}
	res := d.FilterNew(context.Background(), "b1", []domain.Entry{entry("b1", "2"), bad, entry("b1", "1")})

	require.Len(t, res, 2)
	assert.Equal(t, "2", res[0].ArticleID)
	assert.Equal(t, "1", res[1].ArticleID)
	assert.Len(t, store.ExistsCalls(), 2, "entry without id never reaches the store")
}

func TestDeduper_FilterNew_PersistenceFailure(t *testing.T) {
	store := &mocks.ArticleStoreMock{
		ExistsFunc: func(ctx context.Context, boardID, articleID string) (bool, error) {
			if articleID == "3" {
				return false, errors.New("db gone")
			}
			return false, nil
		},
		CreateFunc: func(ctx context.Context, article *domain.Article) error {
			if article.ArticleID == "2" {
				return errors.New("disk full")
			}
			return nil
		},
	}
	d := NewDeduper(DeduperConfig{Store: store, Clock: clockwork.NewFakeClock()})

	entries := []domain.Entry{entry("b1", "4"), entry("b1", "3"), entry("b1", "2"), entry("b1", "1")}
	res := d.FilterNew(context.Background(), "b1", entries)

	require.Len(t, res, 2)
	assert.Equal(t, "4", res[0].ArticleID)
	assert.Equal(t, "1", res[1].ArticleID)
	assert.Len(t, store.ExistsCalls(), 4)
	assert.Len(t, store.CreateCalls(), 3)
}

func TestDeduper_FilterNew_CreateConflict(t *testing.T) {
	store := &mocks.ArticleStoreMock{
		ExistsFunc: func(ctx context.Context, boardID, articleID string) (bool, error) { return false, nil },
		CreateFunc: func(ctx context.Context, article *domain.Article) error {
			if article.ArticleID == "2" {
				return fmt.Errorf("create article: %w", domain.ErrArticleExists)
			}
			return nil
		},
	}
	d := NewDeduper(DeduperConfig{Store: store, Clock: clockwork.NewFakeClock()})

	res := d.FilterNew(context.Background(), "b1", []domain.Entry{entry("b1", "2"), entry("b1", "1")})
	require.Len(t, res, 1)
	assert.Equal(t, "1", res[0].ArticleID)
}

func TestDeduper_FilterNew_Empty(t *testing.T) {
	store, _ := memStore()
	d := NewDeduper(DeduperConfig{Store: store})

	res := d.FilterNew(context.Background(), "b1", nil)
	assert.NotNil(t, res)
	assert.Empty(t, res)
	assert.Empty(t, store.ExistsCalls())
}

func TestDeduper_FilterNew_CanceledContext(t *testing.T) {
	store, _ := memStore()
	d := NewDeduper(DeduperConfig{Store: store, Clock: clockwork.NewFakeClock()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := d.FilterNew(ctx, "b1", []domain.Entry{entry("b1", "1")})
	assert.Empty(t, res)
	assert.Empty(t, store.ExistsCalls())
}

func TestDeduper_FilterNew_Extraction(t *testing.T) {
	store, data := memStore()
	extractor := &mocks.ExtractorMock{
		ExtractFunc: func(ctx context.Context, url string) (string, error) {
			if url == entry("b1", "2").Link {
				return "", errors.New("timeout")
			}
			return "  extracted\n\ttext  ", nil
		},
	}
	d := NewDeduper(DeduperConfig{Store: store, Extractor: extractor, Clock: clockwork.NewFakeClock()})

	withDesc := entry("b1", "3")
	noDesc := entry("b1", "1")
	noDesc.Description = ""
	failing := entry("b1", "2")
	failing.Description = ""

	res := d.FilterNew(context.Background(), "b1", []domain.Entry{withDesc, failing, noDesc})
	require.Len(t, res, 3)
	assert.Equal(t, "description 3", res[0].Description, "description kept, no extraction")
	assert.Empty(t, res[1].Description, "extraction failure keeps entry")
	assert.Equal(t, "extracted text", res[2].Description)
	assert.Equal(t, "extracted text", data["b1/1"].Description)
	assert.Len(t, extractor.ExtractCalls(), 2)
}
