package rest

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/infra"
	"github.com/jichangee/ai-chat/internal/model"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
	"github.com/jichangee/ai-chat/internal/pkg/tx"
)

func defaultRule() model.NotificationRule {
	return model.NotificationRule{Keywords: pq.StringArray{}}
}

func (h *Handler) GetNotificationRule(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetNotificationRule")

	var rule *model.NotificationRule
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		var err error
		rule, err = h.repository.GetNotificationRule(ctx)
		if errors.Is(err, model.ErrNotFound) {
			rule, err = h.repository.SaveNotificationRule(ctx, defaultRule())
		}
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get notification rule: %v", err))
		h.fail(w, "get notification rule", err)
		return
	}

	h.writeJSON(w, api.NotificationRuleResponse{Rule: toAPIRule(*rule)}, http.StatusOK)
}

func (h *Handler) UpdateNotificationRule(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UpdateNotificationRule")

	var req api.UpdateNotificationRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateNotificationRule(&req); err != nil {
		logger.Warn(fmt.Sprintf("notification rule validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("notification rule validation failed: %v", err), http.StatusBadRequest)
		return
	}

	var saved *model.NotificationRule
	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		rule := defaultRule()
		existing, err := h.repository.GetNotificationRule(ctx)
		switch {
		case err == nil:
			if req.Keywords == nil && req.BarkUrl == nil && req.IsActive == nil {
				return &model.ValidationError{Reason: "no fields to update"}
			}
			rule = *existing
		case !errors.Is(err, model.ErrNotFound):
			return err
		}

		if req.Keywords != nil {
			rule.Keywords = pq.StringArray(*req.Keywords)
		}
		if req.BarkUrl != nil {
			rule.BarkURL = *req.BarkUrl
		}
		if req.IsActive != nil {
			rule.IsActive = *req.IsActive
		}

		saved, err = h.repository.SaveNotificationRule(ctx, rule)
		return err
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to update notification rule: %v", err))
		h.fail(w, "update notification rule", err)
		return
	}

	h.writeJSON(w, api.NotificationRuleResponse{Rule: toAPIRule(*saved)}, http.StatusOK)
}

func (h *Handler) TestNotification(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("TestNotification")

	var req api.TestNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.notifier.Test(r.Context(), req.BarkUrl); err != nil {
		logger.Error(fmt.Sprintf("failed to send test notification: %v", err))
		h.fail(w, "send test notification", err)
		return
	}

	h.writeSuccess(w, "test notification sent")
}

func (h *Handler) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("VerifyPassword")

	var req api.VerifyPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		h.writeError(w, "password cannot be empty", http.StatusBadRequest)
		return
	}

	if h.cfg.Auth.Password == "" {
		logger.Error("password check requested but AUTH_PASSWORD is not set")
		h.writeError(w, "access password is not configured, set AUTH_PASSWORD", http.StatusInternalServerError)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.Auth.Password)) != 1 {
		logger.Warn("wrong password")
		h.writeError(w, "wrong password", http.StatusUnauthorized)
		return
	}

	token, expiresAt, err := h.sessions.Issue(sessionSubject)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to issue session: %v", err))
		h.writeError(w, "failed to issue session", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     config.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(h.cfg.Auth.CookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	h.writeSuccess(w, "")
}

func (h *Handler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	authenticated := h.cfg.Auth.Password == "" || infra.Authenticated(r, h.sessions)
	h.writeJSON(w, api.AuthCheckResponse{Authenticated: authenticated}, http.StatusOK)
}
