package domain

import (
	"errors"
	"time"
)

// DefaultAuthor is used when a feed item has no author
const DefaultAuthor = "익명"

// ErrArticleExists is returned by the store when the (board, article) key is already taken
var ErrArticleExists = errors.New("article already exists")

// Entry represents a single normalized item parsed from a board feed
type Entry struct {
	BoardID     string
	Title       string
	Link        string
	PublishedAt string // ISO-like, empty if the feed has no pubDate
	Author      string
	Description string
}

// NewEntry is an entry confirmed as new and persisted during the current run
type NewEntry struct {
	Entry
	ArticleID string
}

// Article represents a persisted entry, unique by (BoardID, ArticleID)
type Article struct {
	BoardID     string
	ArticleID   string
	Title       string
	Link        string
	PublishedAt string
	Author      string
	Description string
	CreatedAt   time.Time
}

// NewArticle makes an article record from the entry
func NewArticle(entry Entry, articleID string, createdAt time.Time) *Article {
	return &Article{
		BoardID:     entry.BoardID,
		ArticleID:   articleID,
		Title:       entry.Title,
		Link:        entry.Link,
		PublishedAt: entry.PublishedAt,
		Author:      entry.Author,
		Description: entry.Description,
		CreatedAt:   createdAt,
	}
}
