// Package notify delivers new board articles to subscribers as push messages.
package notify

import (
	"context"
	"errors"
	"html"
	"regexp"
	"strings"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"
	"github.com/samber/lo"

	"github.com/umputun/noticrawl/pkg/domain"
	"github.com/umputun/noticrawl/pkg/feed"
)

//go:generate moq -out mocks/subscriber_directory.go -pkg mocks -skip-ensure -fmt goimports . SubscriberDirectory
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// DefaultBodyLimit is the max number of characters of message body
const DefaultBodyLimit = 100

const ellipsis = "..."

// line breaks and block closers, separated by space before markup is stripped
var reBlockEnd = regexp.MustCompile(`(?i)<(br|hr)\b[^>]*>|</(p|div|li|tr|td|th|h[1-6]|ul|ol|table|blockquote)\s*>`)

// Mode selects delivery target
type Mode string

// delivery modes
const (
	ModeToken Mode = "token" // message per subscriber push token
	ModeTopic Mode = "topic" // message per board topic
)

// SubscriberDirectory provides board subscribers
type SubscriberDirectory interface {
	FindByBoard(ctx context.Context, boardID string) ([]domain.Subscriber, error)
	ClearPushToken(ctx context.Context, userID string) error
}

// Sender delivers push messages, errors are *domain.PushError
type Sender interface {
	Send(ctx context.Context, msg domain.PushMessage) (string, error)
	SendTopic(ctx context.Context, topic string, msg domain.PushMessage) (string, error)
}

// Dispatcher sends a push message per new entry to board subscribers.
// With nil sender it does nothing.
type Dispatcher struct {
	directory   SubscriberDirectory
	sender      Sender
	mode        Mode
	topicPrefix string
	bodyLimit   int
	policy      *bluemonday.Policy
}

// Config holds dispatcher parameters
type Config struct {
	Directory   SubscriberDirectory
	Sender      Sender
	Mode        Mode
	TopicPrefix string
	BodyLimit   int
}

// NewDispatcher makes a dispatcher, token mode and DefaultBodyLimit used by default
func NewDispatcher(cfg Config) *Dispatcher {
	if cfg.Mode == "" {
		cfg.Mode = ModeToken
	}
	if cfg.BodyLimit <= 0 {
		cfg.BodyLimit = DefaultBodyLimit
	}
	return &Dispatcher{
		directory:   cfg.Directory,
		sender:      cfg.Sender,
		mode:        cfg.Mode,
		topicPrefix: cfg.TopicPrefix,
		bodyLimit:   cfg.BodyLimit,
		policy:      bluemonday.StrictPolicy(),
	}
}

// Notify sends new entries of the board. Failures are isolated per entry and per subscriber,
// stale tokens are cleared in the directory.
func (d *Dispatcher) Notify(ctx context.Context, board domain.Board, entries []domain.NewEntry) domain.NotifyStats {
	stats := domain.NotifyStats{}
	if len(entries) == 0 {
		return stats
	}
	if d.sender == nil {
		lgr.Printf("[DEBUG] push disabled, %d new entries of board %s not sent", len(entries), board.ID)
		return stats
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			lgr.Printf("[WARN] board %s: notify interrupted: %v", board.ID, ctx.Err())
			break
		}
		msg := d.message(board, entry)
		if d.mode == ModeTopic {
			stats.Add(d.sendTopic(ctx, board, entry, msg))
			continue
		}
		stats.Add(d.sendSubscribers(ctx, board, entry, msg))
	}
	return stats
}

// sendSubscribers delivers the message to each board subscriber with push token
func (d *Dispatcher) sendSubscribers(ctx context.Context, board domain.Board, entry domain.NewEntry, msg domain.PushMessage) domain.NotifyStats {
	stats := domain.NotifyStats{}
	subs, err := d.directory.FindByBoard(ctx, board.ID)
	if err != nil {
		lgr.Printf("[WARN] board %s: failed to get subscribers for article %s: %v", board.ID, entry.ArticleID, err)
		return stats
	}

	notifiable := lo.Filter(subs, func(s domain.Subscriber, _ int) bool { return s.Notifiable() })
	if len(notifiable) == 0 {
		lgr.Printf("[DEBUG] board %s: no subscribers with push token for article %s", board.ID, entry.ArticleID)
		return stats
	}

	for _, sub := range notifiable {
		msg.Token = sub.PushToken
		id, err := d.sender.Send(ctx, msg)
		if err == nil {
			lgr.Printf("[DEBUG] board %s: article %s sent to %s, message %s", board.ID, entry.ArticleID, sub.UserID, id)
			stats.Sent++
			continue
		}

		stats.Failed++
		var perr *domain.PushError
		if !errors.As(err, &perr) || !perr.StaleToken() {
			lgr.Printf("[WARN] board %s: failed to send article %s to %s: %v", board.ID, entry.ArticleID, sub.UserID, err)
			continue
		}

		lgr.Printf("[INFO] stale push token of %s (%s), clearing", sub.UserID, perr.Kind)
		if err := d.directory.ClearPushToken(ctx, sub.UserID); err != nil {
			lgr.Printf("[WARN] failed to clear push token of %s: %v", sub.UserID, err)
			continue
		}
		stats.TokensCleared++
	}
	return stats
}

// sendTopic delivers the message to the board topic
func (d *Dispatcher) sendTopic(ctx context.Context, board domain.Board, entry domain.NewEntry, msg domain.PushMessage) domain.NotifyStats {
	topic := d.topicPrefix + board.ID
	id, err := d.sender.SendTopic(ctx, topic, msg)
	if err != nil {
		lgr.Printf("[WARN] board %s: failed to send article %s to topic %s: %v", board.ID, entry.ArticleID, topic, err)
		return domain.NotifyStats{Failed: 1}
	}
	lgr.Printf("[DEBUG] board %s: article %s sent to topic %s, message %s", board.ID, entry.ArticleID, topic, id)
	return domain.NotifyStats{Sent: 1}
}

// message builds push message for the entry, without token
func (d *Dispatcher) message(board domain.Board, entry domain.NewEntry) domain.PushMessage {
	return domain.PushMessage{
		Title: "[" + board.DisplayName() + "] " + entry.Title,
		Body:  Truncate(d.plainText(entry.Description), d.bodyLimit),
		Data: map[string]string{
			"boardId":   board.ID,
			"articleId": entry.ArticleID,
			"link":      entry.Link,
		},
	}
}

// plainText strips markup and decodes entities
func (d *Dispatcher) plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	s = reBlockEnd.ReplaceAllString(s, "$0 ")
	return feed.CleanText(html.UnescapeString(d.policy.Sanitize(s)))
}

// Truncate cuts s to limit characters and adds ellipsis if anything was cut
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
