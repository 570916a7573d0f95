package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrSubscriberNotFound is returned when no subscriber matches the user id
var ErrSubscriberNotFound = errors.New("subscriber not found")

// Subscriber represents a push recipient registered for one or more boards
type Subscriber struct {
	UserID    string
	PushToken string // empty means not notifiable
	Boards    []string
	CreatedAt time.Time
}

// Notifiable reports whether the subscriber has a push token
func (s Subscriber) Notifiable() bool {
	return s.PushToken != ""
}

// PushMessage is a single push notification. Data is delivered to the client
// as {notification: {title, body}, data: {boardId, articleId, link}}
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// PushErrorKind classifies push delivery failures
type PushErrorKind int

// push error kinds
const (
	PushErrorOther PushErrorKind = iota
	PushErrorInvalidToken
	PushErrorTokenNotRegistered
)

// String returns kind name
func (k PushErrorKind) String() string {
	switch k {
	case PushErrorInvalidToken:
		return "invalid-token"
	case PushErrorTokenNotRegistered:
		return "token-not-registered"
	default:
		return "other"
	}
}

// PushError is returned by push senders, Kind is decided by the sender
type PushError struct {
	Kind PushErrorKind
	Err  error
}

func (e *PushError) Error() string {
	return fmt.Sprintf("push %s: %v", e.Kind, e.Err)
}

func (e *PushError) Unwrap() error {
	return e.Err
}

// StaleToken reports whether the token will never be deliverable again
func (e *PushError) StaleToken() bool {
	return e.Kind == PushErrorInvalidToken || e.Kind == PushErrorTokenNotRegistered
}
