package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/lib/pq"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/model"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
)

func (h *Handler) ListBots(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListBots")

	bots, err := h.repository.ListBots(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list bots: %v", err))
		h.fail(w, "list bots", err)
		return
	}

	resp := api.BotsResponse{Bots: make([]api.Bot, 0, len(bots))}
	for _, b := range bots {
		resp.Bots = append(resp.Bots, toAPIBot(b))
	}

	h.writeJSON(w, resp, http.StatusOK)
}

func (h *Handler) CreateBot(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateBot")

	var req api.CreateBotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateCreateBot(&req); err != nil {
		logger.Warn(fmt.Sprintf("bot validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("bot validation failed: %v", err), http.StatusBadRequest)
		return
	}

	bot := model.Bot{
		Name:            strings.TrimSpace(req.Name),
		SystemPrompt:    req.SystemPrompt,
		TriggerKeywords: pq.StringArray{},
		Model:           model.DefaultBotModel,
		Temperature:     model.DefaultBotTemperature,
		APIKey:          strings.TrimSpace(req.ApiKey),
		BaseURL:         h.cfg.Responder.DefaultBaseURL,
		IsActive:        true,
	}
	if req.Avatar != nil {
		bot.Avatar = *req.Avatar
	}
	if req.TriggerKeywords != nil {
		bot.TriggerKeywords = pq.StringArray(*req.TriggerKeywords)
	}
	if req.Model != nil && *req.Model != "" {
		bot.Model = *req.Model
	}
	if req.Temperature != nil {
		bot.Temperature = *req.Temperature
	}
	if req.BaseUrl != nil && *req.BaseUrl != "" {
		bot.BaseURL = *req.BaseUrl
	}
	if req.IsActive != nil {
		bot.IsActive = *req.IsActive
	}

	created, err := h.repository.CreateBot(r.Context(), bot)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create bot: %v", err))
		h.fail(w, "create bot", err)
		return
	}

	h.writeJSON(w, api.BotResponse{Bot: toAPIBot(*created)}, http.StatusCreated)
}

func (h *Handler) UpdateBot(w http.ResponseWriter, r *http.Request, botId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateBot")

	id, err := parseID("bot_id", botId)
	if err != nil {
		h.fail(w, "update bot", err)
		return
	}

	var req api.UpdateBotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateUpdateBot(&req); err != nil {
		logger.Warn(fmt.Sprintf("bot validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("bot validation failed: %v", err), http.StatusBadRequest)
		return
	}

	upd := model.BotUpdate{
		Avatar:          req.Avatar,
		SystemPrompt:    req.SystemPrompt,
		TriggerKeywords: req.TriggerKeywords,
		Model:           req.Model,
		Temperature:     req.Temperature,
		BaseURL:         req.BaseUrl,
		IsActive:        req.IsActive,
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		upd.Name = &name
	}
	// The key is never sent back, so an empty value keeps the stored one.
	if req.ApiKey != nil && strings.TrimSpace(*req.ApiKey) != "" {
		key := strings.TrimSpace(*req.ApiKey)
		upd.APIKey = &key
	}

	updated, err := h.repository.UpdateBot(r.Context(), id, upd)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update bot %s: %v", id, err))
		h.fail(w, "update bot", err)
		return
	}

	h.writeJSON(w, api.BotResponse{Bot: toAPIBot(*updated)}, http.StatusOK)
}

func (h *Handler) DeleteBot(w http.ResponseWriter, r *http.Request, botId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteBot")

	id, err := parseID("bot_id", botId)
	if err != nil {
		h.fail(w, "delete bot", err)
		return
	}

	if err := h.repository.DeleteBot(r.Context(), id); err != nil {
		logger.Error(fmt.Sprintf("failed to delete bot %s: %v", id, err))
		h.fail(w, "delete bot", err)
		return
	}

	h.writeSuccess(w, "")
}

func (h *Handler) TestBot(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("TestBot")

	var req api.TestBotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateTestBot(&req); err != nil {
		h.writeError(w, fmt.Sprintf("bot validation failed: %v", err), http.StatusBadRequest)
		return
	}

	modelName := model.DefaultBotModel
	if req.Model != nil && *req.Model != "" {
		modelName = *req.Model
	}

	if err := h.botTester.Ping(r.Context(), req.ApiKey, req.BaseUrl, modelName); err != nil {
		logger.Warn(fmt.Sprintf("bot test against %s failed: %v", req.BaseUrl, err))
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeSuccess(w, "connection ok")
}
