package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/client/responder"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/fanout"
	"github.com/jichangee/ai-chat/internal/model"
	"github.com/jichangee/ai-chat/internal/rss"
)

const sessionSubject = "owner"

var _ api.ServerInterface = (*Handler)(nil)

type Handler struct {
	repository DBRepo
	chat       ChatService
	botTester  BotTester
	notifier   Notifier
	poller     FeedPoller
	validator  Validator
	sessions   SessionIssuer
	cfg        *config.Config
}

func New(
	repo DBRepo,
	chat ChatService,
	botTester BotTester,
	notifier Notifier,
	poller FeedPoller,
	validator Validator,
	sessions SessionIssuer,
	cfg *config.Config,
) *Handler {
	return &Handler{
		repository: repo,
		chat:       chat,
		botTester:  botTester,
		notifier:   notifier,
		poller:     poller,
		validator:  validator,
		sessions:   sessions,
		cfg:        cfg,
	}
}

// ErrorHandler answers parameter binding failures of the generated router.
func ErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	writeError(w, err.Error(), http.StatusBadRequest)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	writeError(w, message, statusCode)
}

func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}

func (h *Handler) writeSuccess(w http.ResponseWriter, message string) {
	resp := api.SuccessResponse{Success: true}
	if message != "" {
		resp.Message = &message
	}
	h.writeJSON(w, resp, http.StatusOK)
}

func statusFor(err error) int {
	var (
		ve *model.ValidationError
		be *fanout.BatchError
		re *responder.Error
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound), errors.Is(err, rss.ErrNoItems):
		return http.StatusNotFound
	case errors.Is(err, model.ErrDuplicate):
		return http.StatusConflict
	case errors.As(err, &be), errors.As(err, &re):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// messageFor keeps client errors readable and prefixes the rest with what failed.
func messageFor(action string, err error) string {
	if statusFor(err) < http.StatusInternalServerError {
		return err.Error()
	}
	return fmt.Sprintf("failed to %s: %v", action, err)
}

func (h *Handler) fail(w http.ResponseWriter, action string, err error) {
	h.writeError(w, messageFor(action, err), statusFor(err))
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &model.ValidationError{Field: field, Reason: "must be a uuid"}
	}
	return id, nil
}
