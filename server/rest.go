package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/umputun/noticrawl/pkg/domain"
)

const (
	defaultArticlesLimit = 20
	maxArticlesLimit     = 100
)

type boardResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Articles int64  `json:"articles"`
}

type articleResponse struct {
	BoardID     string    `json:"board_id"`
	ArticleID   string    `json:"article_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt string    `json:"published_at,omitempty"`
	Author      string    `json:"author"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type subscriberRequest struct {
	PushToken string   `json:"push_token"`
	Boards    []string `json:"boards"`
}

type subscriberResponse struct {
	UserID    string    `json:"user_id"`
	PushToken string    `json:"push_token"`
	Boards    []string  `json:"boards"`
	CreatedAt time.Time `json:"created_at"`
}

// statusHandler returns server status with the last crawl run
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	articles, err := s.db.CountArticles(ctx, "")
	if err != nil {
		log.Printf("[ERROR] failed to count articles: %v", err)
		renderError(w, r, errors.New("failed to count articles"), http.StatusInternalServerError)
		return
	}
	subscribers, err := s.db.CountSubscribers(ctx)
	if err != nil {
		log.Printf("[ERROR] failed to count subscribers: %v", err)
		renderError(w, r, errors.New("failed to count subscribers"), http.StatusInternalServerError)
		return
	}

	status := map[string]any{
		"status":      "ok",
		"version":     s.version,
		"time":        time.Now().UTC(),
		"boards":      len(s.boards),
		"articles":    articles,
		"subscribers": subscribers,
	}
	if s.scheduler != nil {
		status["interval"] = s.scheduler.Interval().String()
		status["running"] = s.scheduler.Running()
		if last, ok := s.scheduler.LastRun(); ok {
			status["last_run"] = last
		}
	}
	renderJSON(w, r, http.StatusOK, status)
}

// runHandler asks the scheduler for an immediate crawl run.
// With wait=1 the run is done synchronously and its stats returned
func (s *Server) runHandler(w http.ResponseWriter, r *http.Request) {
	if s.scheduler == nil {
		renderError(w, r, errors.New("scheduler is not available"), http.StatusServiceUnavailable)
		return
	}
	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		stats, err := s.scheduler.RunNow(r.Context())
		if errors.Is(err, domain.ErrRunInProgress) {
			renderError(w, r, err, http.StatusConflict)
			return
		}
		if err != nil {
			log.Printf("[ERROR] failed to run crawl: %v", err)
			renderError(w, r, errors.New("failed to run crawl"), http.StatusInternalServerError)
			return
		}
		log.Printf("[INFO] crawl run %s done via api", stats.RunID)
		renderJSON(w, r, http.StatusOK, stats)
		return
	}
	if !s.scheduler.Trigger() {
		renderError(w, r, errors.New("run already pending"), http.StatusConflict)
		return
	}
	log.Printf("[INFO] crawl run triggered via api")
	renderJSON(w, r, http.StatusAccepted, map[string]string{"status": "triggered"})
}

// boardsHandler lists configured boards with the number of stored articles
func (s *Server) boardsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res := make([]boardResponse, 0, len(s.boards))
	for _, b := range s.boards {
		count, err := s.db.CountArticles(ctx, b.ID)
		if err != nil {
			log.Printf("[ERROR] failed to count articles of %s: %v", b.ID, err)
			renderError(w, r, fmt.Errorf("failed to count articles of %s", b.ID), http.StatusInternalServerError)
			return
		}
		res = append(res, boardResponse{ID: b.ID, Name: b.DisplayName(), URL: b.URL, Articles: count})
	}
	renderJSON(w, r, http.StatusOK, res)
}

// articlesHandler returns recently stored articles of a board, newest first
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	boardID := r.PathValue("id")
	if _, ok := s.boardsIdx[boardID]; !ok {
		renderError(w, r, fmt.Errorf("unknown board %q", boardID), http.StatusNotFound)
		return
	}

	limit := defaultArticlesLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			renderError(w, r, errors.New("invalid limit"), http.StatusBadRequest)
			return
		}
		limit = min(l, maxArticlesLimit)
	}

	articles, err := s.db.RecentArticles(r.Context(), boardID, limit)
	if err != nil {
		log.Printf("[ERROR] failed to get articles of %s: %v", boardID, err)
		renderError(w, r, errors.New("failed to get articles"), http.StatusInternalServerError)
		return
	}

	res := lo.Map(articles, func(a domain.Article, _ int) articleResponse {
		return articleResponse{
			BoardID:     a.BoardID,
			ArticleID:   a.ArticleID,
			Title:       a.Title,
			Link:        a.Link,
			PublishedAt: a.PublishedAt,
			Author:      a.Author,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
		}
	})
	renderJSON(w, r, http.StatusOK, res)
}

// getSubscriberHandler returns subscriber with its boards
func (s *Server) getSubscriberHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	sub, err := s.db.GetSubscriber(r.Context(), userID)
	if err != nil {
		s.renderStoreError(w, r, "get subscriber", err)
		return
	}
	renderJSON(w, r, http.StatusOK, toSubscriberResponse(sub))
}

// putSubscriberHandler registers subscriber or replaces its token and boards
func (s *Server) putSubscriberHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := strings.TrimSpace(r.PathValue("id"))
	if userID == "" {
		renderError(w, r, errors.New("user id is required"), http.StatusBadRequest)
		return
	}

	var req subscriberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	boards := lo.Uniq(req.Boards)
	if unknown := lo.Filter(boards, func(id string, _ int) bool { _, ok := s.boardsIdx[id]; return !ok }); len(unknown) > 0 {
		renderError(w, r, fmt.Errorf("unknown boards: %s", strings.Join(unknown, ", ")), http.StatusBadRequest)
		return
	}

	sub := domain.Subscriber{UserID: userID, PushToken: strings.TrimSpace(req.PushToken), Boards: boards}
	if err := s.db.UpsertSubscriber(ctx, sub); err != nil {
		s.renderStoreError(w, r, "upsert subscriber", err)
		return
	}

	stored, err := s.db.GetSubscriber(ctx, userID)
	if err != nil {
		s.renderStoreError(w, r, "get subscriber", err)
		return
	}
	log.Printf("[INFO] subscriber %s registered for %d boards", userID, len(stored.Boards))
	renderJSON(w, r, http.StatusOK, toSubscriberResponse(stored))
}

// deleteSubscriberHandler removes subscriber and its subscriptions
func (s *Server) deleteSubscriberHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if err := s.db.DeleteSubscriber(r.Context(), userID); err != nil {
		s.renderStoreError(w, r, "delete subscriber", err)
		return
	}
	log.Printf("[INFO] subscriber %s deleted", userID)
	w.WriteHeader(http.StatusNoContent)
}

// renderStoreError maps missing subscriber to 404, everything else to 500
func (s *Server) renderStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, domain.ErrSubscriberNotFound) {
		renderError(w, r, domain.ErrSubscriberNotFound, http.StatusNotFound)
		return
	}
	log.Printf("[ERROR] failed to %s: %v", op, err)
	renderError(w, r, fmt.Errorf("failed to %s", op), http.StatusInternalServerError)
}

func toSubscriberResponse(sub *domain.Subscriber) subscriberResponse {
	boards := sub.Boards
	if boards == nil {
		boards = []string{}
	}
	return subscriberResponse{UserID: sub.UserID, PushToken: sub.PushToken, Boards: boards, CreatedAt: sub.CreatedAt}
}
