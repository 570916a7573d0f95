package server

import (
	"context"

	"github.com/umputun/noticrawl/pkg/domain"
	"github.com/umputun/noticrawl/pkg/repository"
)

// RepositoryAdapter adapts repositories to server.Database interface
type RepositoryAdapter struct {
	repos *repository.Repositories
}

// NewRepositoryAdapter creates a new repository adapter
func NewRepositoryAdapter(repos *repository.Repositories) *RepositoryAdapter {
	return &RepositoryAdapter{repos: repos}
}

// RecentArticles returns latest stored articles of the board
func (r *RepositoryAdapter) RecentArticles(ctx context.Context, boardID string, limit int) ([]domain.Article, error) {
	return r.repos.Article.Recent(ctx, boardID, limit)
}

// CountArticles returns number of stored articles, all boards if boardID is empty
func (r *RepositoryAdapter) CountArticles(ctx context.Context, boardID string) (int64, error) {
	return r.repos.Article.Count(ctx, boardID)
}

// GetSubscriber returns subscriber by user id
func (r *RepositoryAdapter) GetSubscriber(ctx context.Context, userID string) (*domain.Subscriber, error) {
	return r.repos.Subscriber.Get(ctx, userID)
}

// UpsertSubscriber creates or updates subscriber
func (r *RepositoryAdapter) UpsertSubscriber(ctx context.Context, sub domain.Subscriber) error {
	return r.repos.Subscriber.Upsert(ctx, sub)
}

// DeleteSubscriber removes subscriber
func (r *RepositoryAdapter) DeleteSubscriber(ctx context.Context, userID string) error {
	return r.repos.Subscriber.Delete(ctx, userID)
}

// CountSubscribers returns number of subscribers
func (r *RepositoryAdapter) CountSubscribers(ctx context.Context) (int64, error) {
	return r.repos.Subscriber.Count(ctx)
}
