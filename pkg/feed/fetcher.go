package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-pkgz/repeater/v2"
)

// maxPayloadSize limits feed body size, a page of 50 notices is well below it
const maxPayloadSize = 10 * 1024 * 1024

// errPermanent marks fetch errors not worth retrying
var errPermanent = errors.New("permanent fetch error")

// HTTPFetcher retrieves raw feed payloads over HTTP
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
	retries   int
	delay     time.Duration
}

// NewHTTPFetcher creates a new feed fetcher. Each request is bounded by timeout,
// failed requests are repeated up to retries times with backoff
func NewHTTPFetcher(timeout time.Duration, userAgent string, retries int) *HTTPFetcher {
	if retries < 1 {
		retries = 1
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
		retries:   retries,
		delay:     500 * time.Millisecond,
	}
}

// Fetch retrieves feed content from the given URL
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte
	retrier := repeater.NewBackoff(f.retries, f.delay, repeater.WithMaxDelay(5*time.Second))
	err := retrier.Do(ctx, func() error {
		data, err := f.fetch(ctx, url)
		if err != nil {
			return err
		}
		body = data
		return nil
	}, errPermanent)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return body, nil
}

func (f *HTTPFetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", errPermanent, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError, resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status code: %d", errPermanent, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return data, nil
}
