package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	t.Run("valid feed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "noticrawl-test", r.Header.Get("User-Agent"))
			assert.NotEmpty(t, r.Header.Get("Accept-Language"))
			assert.Contains(t, r.Header.Get("Accept"), "application/rss+xml")
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = w.Write([]byte(boardFeed))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "noticrawl-test", 1)
		data, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, boardFeed, string(data))
	})

	t.Run("server error is retried", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(boardFeed))
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "", 3)
		fetcher.delay = time.Millisecond
		data, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, boardFeed, string(data))
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("persistent server error", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "", 3)
		fetcher.delay = time.Millisecond
		data, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 500")
		assert.Nil(t, data)
		assert.Greater(t, atomic.LoadInt32(&calls), int32(1))
	})

	t.Run("not found is not retried", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(5*time.Second, "", 3)
		fetcher.delay = time.Millisecond
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code: 404")
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		fetcher := NewHTTPFetcher(20*time.Millisecond, "", 1)
		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("invalid url", func(t *testing.T) {
		fetcher := NewHTTPFetcher(5*time.Second, "", 2)
		_, err := fetcher.Fetch(context.Background(), "://not-a-url")
		require.Error(t, err)
	})
}
