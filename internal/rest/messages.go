package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jichangee/ai-chat/internal/api"
	"github.com/jichangee/ai-chat/internal/config"
	"github.com/jichangee/ai-chat/internal/fanout"
	"github.com/jichangee/ai-chat/internal/model"
	logger_lib "github.com/jichangee/ai-chat/internal/pkg/logger"
	"github.com/jichangee/ai-chat/internal/service"
)

const ndjsonContentType = "application/x-ndjson"

func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request, params api.GetMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetMessages")

	limit, offset := service.DefaultHistoryLimit, 0
	if params.Limit != nil {
		limit = *params.Limit
	}
	if params.Offset != nil {
		offset = *params.Offset
	}

	page, err := h.chat.History(r.Context(), limit, offset)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get messages: %v", err))
		h.fail(w, "get messages", err)
		return
	}

	h.writeJSON(w, api.MessagesPage{
		Messages: toAPIMessages(page.Messages),
		HasMore:  page.HasMore,
	}, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Warn(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	sendReq := service.SendRequest{Content: req.Content}
	if req.Stream != nil {
		sendReq.Stream = *req.Stream
	}
	if req.QuotedMessageId != nil && *req.QuotedMessageId != "" {
		id, err := uuid.Parse(*req.QuotedMessageId)
		if err != nil {
			h.writeError(w, "quoted_message_id: must be a uuid", http.StatusBadRequest)
			return
		}
		sendReq.QuotedMessageID = &id
	}

	reply, err := h.chat.Send(r.Context(), sendReq)
	var batchErr *fanout.BatchError
	if errors.As(err, &batchErr) && reply != nil && reply.Batch != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		msg := batchErr.Error()
		h.writeJSON(w, api.SendMessageResponse{
			UserMessage: toAPIMessage(reply.Batch.UserMessage),
			AiMessages:  toAPIMessages(reply.Batch.AIMessages),
			Error:       &msg,
		}, http.StatusBadGateway)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.fail(w, "send message", err)
		return
	}

	if reply.Mode == fanout.ModeStream {
		h.streamEvents(w, r, reply.Events)
		return
	}

	h.writeJSON(w, api.SendMessageResponse{
		UserMessage: toAPIMessage(reply.Batch.UserMessage),
		AiMessages:  toAPIMessages(reply.Batch.AIMessages),
	}, http.StatusOK)
}

// streamEvents writes one JSON event per line and flushes after each. It
// returns once the orchestrator closes the channel, which also happens when
// the client goes away.
func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request, events <-chan model.Event) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("streamEvents")

	w.Header().Set("Content-Type", ndjsonContentType)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	if flusher != nil {
		flusher.Flush()
	}

	enc := json.NewEncoder(w)
	broken := false
	for ev := range events {
		if broken {
			continue
		}
		if err := enc.Encode(toAPIEvent(ev)); err != nil {
			logger.Warn(fmt.Sprintf("client stream write failed: %v", err))
			broken = true
			continue
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request, messageId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteMessage")

	id, err := parseID("message_id", messageId)
	if err != nil {
		h.fail(w, "delete message", err)
		return
	}

	if _, err := h.chat.Delete(r.Context(), id); err != nil {
		logger.Error(fmt.Sprintf("failed to delete message %s: %v", id, err))
		h.fail(w, "delete message", err)
		return
	}

	h.writeSuccess(w, "")
}
