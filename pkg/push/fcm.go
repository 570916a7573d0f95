// Package push sends notifications with Firebase Cloud Messaging.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
	"github.com/go-pkgz/lgr"
	"google.golang.org/api/option"

	"github.com/umputun/noticrawl/pkg/domain"
)

// ErrNoCredentials is returned when no firebase credentials configured
var ErrNoCredentials = errors.New("no firebase credentials")

// FCM sends push messages to device tokens and topics
type FCM struct {
	client messageClient
}

// messageClient is the part of messaging.Client used by FCM
type messageClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Options defines FCM parameters, one of CredentialsFile or CredentialsJSON is required
// unless ClientOptions provide the credentials
type Options struct {
	CredentialsFile string
	CredentialsJSON string
	ProjectID       string // taken from credentials if empty
	ClientOptions   []option.ClientOption
}

// NewFCM makes firebase app and messaging client
func NewFCM(ctx context.Context, opts Options) (*FCM, error) {
	clientOpts := append([]option.ClientOption{}, opts.ClientOptions...)
	switch {
	case opts.CredentialsJSON != "":
		clientOpts = append(clientOpts, option.WithCredentialsJSON([]byte(opts.CredentialsJSON)))
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	case len(opts.ClientOptions) == 0:
		return nil, ErrNoCredentials
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: opts.ProjectID}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}
	lgr.Printf("[INFO] firebase messaging initialized")
	return &FCM{client: client}, nil
}

// Send delivers the message to msg.Token. Errors are *domain.PushError
func (f *FCM) Send(ctx context.Context, msg domain.PushMessage) (string, error) {
	m := fcmMessage(msg)
	m.Token = msg.Token
	id, err := f.client.Send(ctx, m)
	if err != nil {
		return "", classify(err)
	}
	return id, nil
}

// SendTopic delivers the message to all devices subscribed to the topic. Errors are *domain.PushError
func (f *FCM) SendTopic(ctx context.Context, topic string, msg domain.PushMessage) (string, error) {
	m := fcmMessage(msg)
	m.Topic = topic
	id, err := f.client.Send(ctx, m)
	if err != nil {
		return "", classify(err)
	}
	return id, nil
}

func fcmMessage(msg domain.PushMessage) *messaging.Message {
	return &messaging.Message{
		Notification: &messaging.Notification{Title: msg.Title, Body: msg.Body},
		Data:         msg.Data,
	}
}

// classify maps firebase error codes to push error kinds.
// INVALID_ARGUMENT is a token error only if the response blames message.token,
// the same code is used for oversized payloads and malformed fields
func classify(err error) *domain.PushError {
	switch {
	case messaging.IsUnregistered(err):
		return &domain.PushError{Kind: domain.PushErrorTokenNotRegistered, Err: err}
	case messaging.IsInvalidArgument(err) && tokenViolation(err):
		return &domain.PushError{Kind: domain.PushErrorInvalidToken, Err: err}
	default:
		return &domain.PushError{Kind: domain.PushErrorOther, Err: err}
	}
}

// tokenViolation checks google.rpc.BadRequest details of the error response for message.token field
func tokenViolation(err error) bool {
	resp := errorutils.HTTPResponse(err)
	if resp == nil || resp.Body == nil {
		return false
	}
	defer resp.Body.Close()

	var errResp struct {
		Error struct {
			Details []struct {
				Type            string `json:"@type"`
				FieldViolations []struct {
					Field string `json:"field"`
				} `json:"fieldViolations"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		return false
	}
	for _, d := range errResp.Error.Details {
		if d.Type != "type.googleapis.com/google.rpc.BadRequest" {
			continue
		}
		for _, v := range d.FieldViolations {
			if v.Field == "message.token" {
				return true
			}
		}
	}
	return false
}
