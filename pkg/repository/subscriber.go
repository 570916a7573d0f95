package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/noticrawl/pkg/domain"
)

// SubscriberRepository handles subscriber-related database operations
type SubscriberRepository struct {
	db *sqlx.DB
}

// subscriberSQL represents a subscriber for SQL operations
type subscriberSQL struct {
	UserID    string    `db:"user_id"`
	PushToken string    `db:"push_token"`
	CreatedAt time.Time `db:"created_at"`
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(db *sqlx.DB) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// FindByBoard returns all subscribers of the board, including ones without push token
func (r *SubscriberRepository) FindByBoard(ctx context.Context, boardID string) ([]domain.Subscriber, error) {
	query := r.db.Rebind(`
		SELECT s.user_id, s.push_token, s.created_at
		FROM subscribers s
		JOIN subscriptions sub ON sub.user_id = s.user_id
		WHERE sub.board_id = ?
		ORDER BY s.user_id
	`)
	var recs []subscriberSQL
	if err := r.db.SelectContext(ctx, &recs, query, boardID); err != nil {
		return nil, fmt.Errorf("find subscribers of %s: %w", boardID, err)
	}

	res := make([]domain.Subscriber, len(recs))
	for i, rec := range recs {
		res[i] = domain.Subscriber{UserID: rec.UserID, PushToken: rec.PushToken, CreatedAt: rec.CreatedAt}
	}
	return res, nil
}

// ClearPushToken resets subscriber's push token, the subscriber and its subscriptions are kept
func (r *SubscriberRepository) ClearPushToken(ctx context.Context, userID string) error {
	query := r.db.Rebind("UPDATE subscribers SET push_token = '' WHERE user_id = ?")

	var affected int64
	err := retryOnLock(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, userID)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("clear push token of %s: %w", userID, err)
	}
	if affected == 0 {
		return fmt.Errorf("clear push token of %s: %w", userID, domain.ErrSubscriberNotFound)
	}
	return nil
}

// Upsert creates or updates the subscriber and replaces its board subscriptions
func (r *SubscriberRepository) Upsert(ctx context.Context, sub domain.Subscriber) error {
	if sub.UserID == "" {
		return errors.New("upsert subscriber: empty user id")
	}
	createdAt := sub.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	err := retryOnLock(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		upsert := tx.Rebind(`
			INSERT INTO subscribers (user_id, push_token, created_at) VALUES (?, ?, ?)
			ON CONFLICT (user_id) DO UPDATE SET push_token = excluded.push_token
		`)
		if _, err := tx.ExecContext(ctx, upsert, sub.UserID, sub.PushToken, createdAt.UTC()); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM subscriptions WHERE user_id = ?"), sub.UserID); err != nil {
			return err
		}

		insert := tx.Rebind("INSERT INTO subscriptions (user_id, board_id) VALUES (?, ?) ON CONFLICT DO NOTHING")
		for _, boardID := range sub.Boards {
			if _, err := tx.ExecContext(ctx, insert, sub.UserID, boardID); err != nil {
				return err
			}
		}

		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("upsert subscriber %s: %w", sub.UserID, err)
	}
	return nil
}

// Get returns the subscriber with its boards
func (r *SubscriberRepository) Get(ctx context.Context, userID string) (*domain.Subscriber, error) {
	var rec subscriberSQL
	query := r.db.Rebind("SELECT user_id, push_token, created_at FROM subscribers WHERE user_id = ?")
	if err := r.db.GetContext(ctx, &rec, query, userID); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("get subscriber %s: %w", userID, domain.ErrSubscriberNotFound)
		}
		return nil, fmt.Errorf("get subscriber %s: %w", userID, err)
	}

	var boards []string
	boardsQuery := r.db.Rebind("SELECT board_id FROM subscriptions WHERE user_id = ?")
	if err := r.db.SelectContext(ctx, &boards, boardsQuery, userID); err != nil {
		return nil, fmt.Errorf("get boards of %s: %w", userID, err)
	}
	sort.Strings(boards)

	return &domain.Subscriber{UserID: rec.UserID, PushToken: rec.PushToken, Boards: boards, CreatedAt: rec.CreatedAt}, nil
}

// Delete removes the subscriber and all its subscriptions
func (r *SubscriberRepository) Delete(ctx context.Context, userID string) error {
	var affected int64
	err := retryOnLock(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM subscriptions WHERE user_id = ?"), userID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM subscribers WHERE user_id = ?"), userID)
		if err != nil {
			return err
		}
		if affected, err = res.RowsAffected(); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("delete subscriber %s: %w", userID, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete subscriber %s: %w", userID, domain.ErrSubscriberNotFound)
	}
	return nil
}

// Count returns number of registered subscribers
func (r *SubscriberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM subscribers"); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}
