package feed

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed/rss"

	"github.com/umputun/noticrawl/pkg/domain"
)

// Parse decodes RSS 2.0 payload into normalized entries of the board.
// The returned slice is never nil, it is empty on any error
func Parse(boardID string, payload []byte) ([]domain.Entry, error) {
	entries := []domain.Entry{}
	if len(bytes.TrimSpace(payload)) == 0 {
		return entries, errors.New("empty payload")
	}

	parser := rss.Parser{}
	feed, err := parser.Parse(bytes.NewReader(payload))
	if err != nil {
		return entries, fmt.Errorf("parse rss: %w", err)
	}

	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		entry := domain.Entry{
			BoardID:     boardID,
			Title:       CleanText(item.Title),
			Link:        strings.TrimSpace(item.Link),
			PublishedAt: PubDateISO(item.PubDate),
			Author:      CleanText(item.Author),
			Description: CleanText(item.Description),
		}
		if entry.Author == "" {
			entry.Author = domain.DefaultAuthor
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CleanText strips CDATA markers and collapses whitespace runs into a single space
func CleanText(s string) string {
	if strings.Contains(s, "<![CDATA[") {
		s = strings.Replace(s, "<![CDATA[", "", 1)
		s = strings.Replace(s, "]]>", "", 1)
	}
	return strings.Join(strings.Fields(s), " ")
}

// PubDateISO converts "2025.03.12 15:53:29" to "2025-03-12T15:53:29".
// It is a literal substitution, the date is not validated
func PubDateISO(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.Replace(strings.ReplaceAll(s, ".", "-"), " ", "T", 1)
}
