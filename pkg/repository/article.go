package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/noticrawl/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	db *sqlx.DB
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	BoardID     string         `db:"board_id"`
	ArticleID   string         `db:"article_id"`
	Title       string         `db:"title"`
	Link        string         `db:"link"`
	PublishedAt sql.NullString `db:"published_at"`
	Author      string         `db:"author"`
	Description string         `db:"description"`
	CreatedAt   time.Time      `db:"created_at"`
}

// NewArticleRepository creates a new article repository
func NewArticleRepository(db *sqlx.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Exists checks if the article is already stored for the board
func (r *ArticleRepository) Exists(ctx context.Context, boardID, articleID string) (bool, error) {
	var exists bool
	query := r.db.Rebind("SELECT EXISTS(SELECT 1 FROM articles WHERE board_id = ? AND article_id = ?)")
	if err := r.db.GetContext(ctx, &exists, query, boardID, articleID); err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new article. Returns domain.ErrArticleExists if the
// (board, article) key is already stored, the stored record is left untouched
func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	rec := &articleSQL{
		BoardID:     article.BoardID,
		ArticleID:   article.ArticleID,
		Title:       article.Title,
		Link:        article.Link,
		PublishedAt: sql.NullString{String: article.PublishedAt, Valid: article.PublishedAt != ""},
		Author:      article.Author,
		Description: article.Description,
		CreatedAt:   article.CreatedAt.UTC(),
	}

	query := `
		INSERT INTO articles (
			board_id, article_id, title, link, published_at, author, description, created_at
		) VALUES (
			:board_id, :article_id, :title, :link, :published_at, :author, :description, :created_at
		)
		ON CONFLICT (board_id, article_id) DO NOTHING
	`

	var affected int64
	err := retryOnLock(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, rec)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("create article %s/%s: %w", article.BoardID, article.ArticleID, err)
	}
	if affected == 0 {
		return fmt.Errorf("create article %s/%s: %w", article.BoardID, article.ArticleID, domain.ErrArticleExists)
	}
	return nil
}

// Get retrieves a single article
func (r *ArticleRepository) Get(ctx context.Context, boardID, articleID string) (*domain.Article, error) {
	var rec articleSQL
	query := r.db.Rebind("SELECT * FROM articles WHERE board_id = ? AND article_id = ?")
	if err := r.db.GetContext(ctx, &rec, query, boardID, articleID); err != nil {
		return nil, fmt.Errorf("get article %s/%s: %w", boardID, articleID, err)
	}
	return rec.toDomain(), nil
}

// Recent returns the latest stored articles of the board, newest first
func (r *ArticleRepository) Recent(ctx context.Context, boardID string, limit int) ([]domain.Article, error) {
	query := r.db.Rebind(`
		SELECT * FROM articles
		WHERE board_id = ?
		ORDER BY created_at DESC, article_id DESC
		LIMIT ?
	`)
	var recs []articleSQL
	if err := r.db.SelectContext(ctx, &recs, query, boardID, limit); err != nil {
		return nil, fmt.Errorf("get recent articles: %w", err)
	}

	articles := make([]domain.Article, len(recs))
	for i := range recs {
		articles[i] = *recs[i].toDomain()
	}
	return articles, nil
}

// Count returns number of stored articles for the board, all boards if boardID is empty
func (r *ArticleRepository) Count(ctx context.Context, boardID string) (int64, error) {
	var count int64
	var err error
	if boardID == "" {
		err = r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM articles")
	} else {
		err = r.db.GetContext(ctx, &count, r.db.Rebind("SELECT COUNT(*) FROM articles WHERE board_id = ?"), boardID)
	}
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return count, nil
}

func (a *articleSQL) toDomain() *domain.Article {
	return &domain.Article{
		BoardID:     a.BoardID,
		ArticleID:   a.ArticleID,
		Title:       a.Title,
		Link:        a.Link,
		PublishedAt: a.PublishedAt.String,
		Author:      a.Author,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}
