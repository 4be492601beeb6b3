package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/model"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
	"github.com/jichangee/ai-chat/internal/rss"
)

func (h *Handler) ListFeeds(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListFeeds")

	feeds, err := h.repository.ListFeeds(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list feeds: %v", err))
		h.fail(w, "list feeds", err)
		return
	}

	resp := api.FeedsResponse{Feeds: make([]api.Feed, 0, len(feeds))}
	for _, f := range feeds {
		resp.Feeds = append(resp.Feeds, toAPIFeed(f))
	}

	h.writeJSON(w, resp, http.StatusOK)
}

func (h *Handler) CreateFeed(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateFeed")

	var req api.CreateFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateFeed(&req); err != nil {
		logger.Warn(fmt.Sprintf("feed validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("feed validation failed: %v", err), http.StatusBadRequest)
		return
	}

	feed := model.Feed{
		Name:     strings.TrimSpace(req.Name),
		URL:      strings.TrimSpace(req.Url),
		IsActive: true,
	}
	if req.IsActive != nil {
		feed.IsActive = *req.IsActive
	}

	created, err := h.repository.CreateFeed(r.Context(), feed)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create feed: %v", err))
		h.fail(w, "create feed", err)
		return
	}

	h.writeJSON(w, api.FeedResponse{Feed: toAPIFeed(*created)}, http.StatusCreated)
}

func (h *Handler) UpdateFeed(w http.ResponseWriter, r *http.Request, feedId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateFeed")

	id, err := parseID("feed_id", feedId)
	if err != nil {
		h.fail(w, "update feed", err)
		return
	}

	var req api.UpdateFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateUpdateFeed(&req); err != nil {
		logger.Warn(fmt.Sprintf("feed validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("feed validation failed: %v", err), http.StatusBadRequest)
		return
	}

	upd := model.FeedUpdate{IsActive: req.IsActive}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		upd.Name = &name
	}
	if req.Url != nil {
		u := strings.TrimSpace(*req.Url)
		upd.URL = &u
	}

	updated, err := h.repository.UpdateFeed(r.Context(), id, upd)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update feed %s: %v", id, err))
		h.fail(w, "update feed", err)
		return
	}

	h.writeJSON(w, api.FeedResponse{Feed: toAPIFeed(*updated)}, http.StatusOK)
}

func (h *Handler) DeleteFeed(w http.ResponseWriter, r *http.Request, feedId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteFeed")

	id, err := parseID("feed_id", feedId)
	if err != nil {
		h.fail(w, "delete feed", err)
		return
	}

	if err := h.repository.DeleteFeed(r.Context(), id); err != nil {
		logger.Error(fmt.Sprintf("failed to delete feed %s: %v", id, err))
		h.fail(w, "delete feed", err)
		return
	}

	h.writeSuccess(w, "")
}

func (h *Handler) GetLatestFeedItem(w http.ResponseWriter, r *http.Request, feedId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetLatestFeedItem")

	id, err := parseID("feed_id", feedId)
	if err != nil {
		h.fail(w, "get latest item", err)
		return
	}

	preview, err := h.poller.Latest(r.Context(), id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to preview feed %s: %v", id, err))
		h.fail(w, "get latest item", err)
		return
	}

	h.writeJSON(w, api.LatestFeedItemResponse{
		Content:  preview.Content,
		Metadata: map[string]interface{}(preview.Metadata),
	}, http.StatusOK)
}

func (h *Handler) FetchFeeds(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("FetchFeeds")

	h.poll(w, r, logger, rss.ModeManual)
}

func (h *Handler) CronRSS(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CronRSS")

	if secret := h.cfg.RSS.CronSecret; secret != "" && r.Header.Get("Authorization") != "Bearer "+secret {
		logger.Warn("cron request with a wrong secret")
		h.writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	h.poll(w, r, logger, rss.ModeScheduled)
}

func (h *Handler) poll(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface, mode rss.Mode) {
	summary, err := h.poller.PollAll(r.Context(), mode)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to poll feeds: %v", err))
		h.fail(w, "fetch feeds", err)
		return
	}

	resp := toAPISummary(summary)
	resp.Message = fmt.Sprintf("fetched %d new items", summary.NewItems)
	logger.Info(resp.Message)

	h.writeJSON(w, resp, http.StatusOK)
}
