package feed

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/noticrawl/pkg/domain"
	"github.com/umputun/noticrawl/pkg/feed/mocks"
)

func TestReader_Read(t *testing.T) {
	board := domain.Board{ID: "bachelor", URL: "https://www.gachon.ac.kr/bbs/kor/475/rssList.do?row=50", Name: "학사"}

	t.Run("entries in feed order", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{FetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte(boardFeed), nil
		}}
		entries, err := NewReader(fetcher).Read(context.Background(), board)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "https://www.gachon.ac.kr/bbs/kor/475/123456/artclView.do", entries[0].Link)
		assert.Equal(t, "https://www.gachon.ac.kr/bbs/kor/475/123455/artclView.do", entries[1].Link)
		assert.Equal(t, "bachelor", entries[1].BoardID)

		require.Len(t, fetcher.FetchCalls(), 1)
		assert.Equal(t, board.URL, fetcher.FetchCalls()[0].URL)
	})

	t.Run("fetch failure", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{FetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return nil, errors.New("connection refused")
		}}
		entries, err := NewReader(fetcher).Read(context.Background(), board)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch board bachelor")
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("malformed payload", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{FetchFunc: func(ctx context.Context, url string) ([]byte, error) {
			return []byte("<html>oops</html>"), nil
		}}
		entries, err := NewReader(fetcher).Read(context.Background(), board)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse board bachelor")
		assert.Empty(t, entries)
	})
}

func TestReader_Read_FailuresNotLogged(t *testing.T) {
	buf := bytes.Buffer{}
	lgr.Setup(lgr.Out(&buf), lgr.Err(&buf))
	defer lgr.Setup()

	board := domain.Board{ID: "job", URL: "https://www.gachon.ac.kr/bbs/kor/480/rssList.do?row=50"}
	payloads := map[string]func(ctx context.Context, url string) ([]byte, error){
		"fetch": func(ctx context.Context, url string) ([]byte, error) { return nil, errors.New("timeout") },
		"parse": func(ctx context.Context, url string) ([]byte, error) { return []byte("<html>oops</html>"), nil },
	}
	for name, fn := range payloads {
		_, err := NewReader(&mocks.FetcherMock{FetchFunc: fn}).Read(context.Background(), board)
		require.Error(t, err, name)
	}
	assert.NotContains(t, buf.String(), "WARN")
	assert.NotContains(t, buf.String(), "ERROR")
}
